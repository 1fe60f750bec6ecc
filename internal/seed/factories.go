// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"strings"
	"time"

	"devconnect/internal/collection"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory creates realistic fake records for development databases.
type Factory struct {
	db *gorm.DB
}

// NewFactory returns a Factory bound to the given database.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser inserts a fake user. The password is "password123" for every
// seeded account so demo logins work.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	email := gofakeit.Email()
	user := &models.User{
		Name:   name,
		Email:  email,
		Avatar: service.GravatarURL(email),
	}
	for _, override := range overrides {
		override(user)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// CreateProfile inserts a profile for the given user with a handful of
// experience and education entries.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         user.ID,
		Handle:         handleFromName(user.Name),
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Status:         gofakeit.JobTitle(),
		Skills:         fakeSkills(),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: gofakeit.Username(),
		Social: map[string]string{
			"twitter":  "https://twitter.com/" + gofakeit.Username(),
			"linkedin": "https://linkedin.com/in/" + gofakeit.Username(),
		},
		Experience: fakeExperience(),
		Education:  fakeEducation(),
	}
	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// CreatePost inserts a post authored by the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:     gofakeit.Paragraph(1, 2, 8, " "),
		Name:     user.Name,
		Avatar:   user.Avatar,
		UserID:   user.ID,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// AddLike prepends a like marker for the given user and saves the post.
func (f *Factory) AddLike(post *models.Post, user *models.User) error {
	post.Likes = collection.Prepend(post.Likes, models.Like{
		ID:     collection.NewID(),
		UserID: user.ID,
	})
	return f.db.Save(post).Error
}

// AddComment prepends a fake comment from the given user and saves the post.
func (f *Factory) AddComment(post *models.Post, user *models.User) error {
	post.Comments = collection.Prepend(post.Comments, models.Comment{
		ID:        collection.NewID(),
		Text:      gofakeit.Sentence(10),
		Name:      user.Name,
		Avatar:    user.Avatar,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	})
	return f.db.Save(post).Error
}

func handleFromName(name string) string {
	handle := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	return fmt.Sprintf("%s%d", handle, gofakeit.Number(10, 9999))
}

func fakeSkills() []string {
	all := []string{
		"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL",
		"HTML", "CSS", "React", "Node.js", "Docker", "Kubernetes",
		"PostgreSQL", "Redis", "GraphQL", "AWS",
	}
	gofakeit.ShuffleStrings(all)
	n := gofakeit.Number(3, 6)
	return append([]string{}, all[:n]...)
}

func fakeExperience() []models.Experience {
	n := gofakeit.Number(1, 3)
	entries := make([]models.Experience, 0, n)
	for i := 0; i < n; i++ {
		from := gofakeit.DateRange(
			time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-1, 0, 0))
		entry := models.Experience{
			ID:          collection.NewID(),
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from.Format("2006-01-02"),
			Description: gofakeit.Sentence(10),
		}
		if i > 0 {
			entry.To = from.AddDate(gofakeit.Number(1, 3), 0, 0).Format("2006-01-02")
		} else {
			entry.Current = true
		}
		entries = append(entries, entry)
	}
	return entries
}

func fakeEducation() []models.Education {
	from := gofakeit.DateRange(
		time.Now().AddDate(-14, 0, 0), time.Now().AddDate(-6, 0, 0))
	return []models.Education{{
		ID:           collection.NewID(),
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from.Format("2006-01-02"),
		To:           from.AddDate(4, 0, 0).Format("2006-01-02"),
	}}
}
