package seed

import (
	"fmt"
	"os"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset is a declarative seed file. Unlike the random factory data,
// presets give demos stable handles and credentials.
type Preset struct {
	Users []PresetUser `yaml:"users"`
}

// PresetUser declares one seeded account with an optional profile and posts.
type PresetUser struct {
	Name     string         `yaml:"name"`
	Email    string         `yaml:"email"`
	Password string         `yaml:"password"`
	Profile  *PresetProfile `yaml:"profile"`
	Posts    []string       `yaml:"posts"`
}

// PresetProfile declares the profile fields for a preset user.
type PresetProfile struct {
	Handle         string            `yaml:"handle"`
	Status         string            `yaml:"status"`
	Company        string            `yaml:"company"`
	Location       string            `yaml:"location"`
	Bio            string            `yaml:"bio"`
	GithubUsername string            `yaml:"github_username"`
	Skills         []string          `yaml:"skills"`
	Social         map[string]string `yaml:"social"`
}

// LoadPreset parses a preset YAML file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %q: %w", path, err)
	}

	var preset Preset
	if err := yaml.Unmarshal(raw, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset %q: %w", path, err)
	}
	return &preset, nil
}

// Apply inserts the preset's users, profiles, and posts.
func (p *Preset) Apply(db *gorm.DB) error {
	for _, pu := range p.Users {
		if pu.Email == "" || pu.Password == "" {
			return fmt.Errorf("preset user %q needs email and password", pu.Name)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(pu.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &models.User{
			Name:     pu.Name,
			Email:    pu.Email,
			Password: string(hashed),
			Avatar:   service.GravatarURL(pu.Email),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create preset user %q: %w", pu.Email, err)
		}

		if pu.Profile != nil {
			profile := &models.Profile{
				UserID:         user.ID,
				Handle:         pu.Profile.Handle,
				Status:         pu.Profile.Status,
				Company:        pu.Profile.Company,
				Location:       pu.Profile.Location,
				Bio:            pu.Profile.Bio,
				GithubUsername: pu.Profile.GithubUsername,
				Skills:         pu.Profile.Skills,
				Social:         pu.Profile.Social,
				Experience:     []models.Experience{},
				Education:      []models.Education{},
			}
			if err := db.Create(profile).Error; err != nil {
				return fmt.Errorf("failed to create preset profile %q: %w", pu.Profile.Handle, err)
			}
		}

		for _, text := range pu.Posts {
			post := &models.Post{
				Text:     text,
				Name:     user.Name,
				Avatar:   user.Avatar,
				UserID:   user.ID,
				Likes:    []models.Like{},
				Comments: []models.Comment{},
			}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("failed to create preset post for %q: %w", pu.Email, err)
			}
		}
	}
	return nil
}
