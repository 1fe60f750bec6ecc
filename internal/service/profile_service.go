package service

import (
	"context"
	"errors"
	"strings"

	"devconnect/internal/collection"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// ProfileService orchestrates profile mutations. Every operation is
// scoped to the acting user's own profile: the lookup key is the acting
// user id, so cross-user mutation is structurally impossible.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService returns a ProfileService backed by the given repositories.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// GetByUser returns the profile owned by the given user.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetByHandle returns the profile with the given handle.
func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile", handle)
	}
	return profile, nil
}

// List returns all profiles, newest first.
func (s *ProfileService) List(ctx context.Context) ([]*models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the acting user's profile or partially merges the
// supplied fields into the existing one. On create, a handle already
// owned by a different profile aborts before anything is persisted.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in validation.ProfileInput) (*models.Profile, error) {
	if res := validation.ValidateProfile(in); !res.IsValid {
		return nil, models.NewFieldValidationError(res.Errors)
	}

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	if existing != nil && err == nil {
		if in.Handle != existing.Handle {
			if err := s.checkHandleFree(ctx, in.Handle, existing.ID); err != nil {
				return nil, err
			}
		}
		applyProfileFields(existing, in)
		if err := s.profileRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	// No profile yet: the handle must not belong to anyone else.
	if err := s.checkHandleFree(ctx, in.Handle, 0); err != nil {
		return nil, err
	}

	profile := &models.Profile{UserID: userID}
	applyProfileFields(profile, in)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddExperience validates and prepends a new experience entry, then
// re-persists and returns the whole updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in validation.ExperienceInput) (*models.Profile, error) {
	if res := validation.ValidateExperience(in); !res.IsValid {
		return nil, models.NewFieldValidationError(res.Errors)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := models.Experience{
		ID:          collection.NewID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	profile.Experience = collection.Prepend(profile.Experience, exp)

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveExperience removes one experience entry by id. An unknown id is
// a not-found outcome and leaves the list untouched.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID uint, expID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	trimmed, ok := collection.RemoveByID(profile.Experience, expID)
	if !ok {
		return nil, models.NewNotFoundError("Experience", expID)
	}
	profile.Experience = trimmed

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddEducation validates and prepends a new education entry, then
// re-persists and returns the whole updated profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in validation.EducationInput) (*models.Profile, error) {
	if res := validation.ValidateEducation(in); !res.IsValid {
		return nil, models.NewFieldValidationError(res.Errors)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := models.Education{
		ID:           collection.NewID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	profile.Education = collection.Prepend(profile.Education, edu)

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveEducation removes one education entry by id. An unknown id is a
// not-found outcome and leaves the list untouched.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID uint, eduID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	trimmed, ok := collection.RemoveByID(profile.Education, eduID)
	if !ok {
		return nil, models.NewNotFoundError("Education", eduID)
	}
	profile.Education = trimmed

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteAccount removes the acting user's profile together with the
// account itself.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// checkHandleFree fails with a conflict when the handle belongs to a
// profile other than ownID.
func (s *ProfileService) checkHandleFree(ctx context.Context, handle string, ownID uint) error {
	other, err := s.profileRepo.GetByHandle(ctx, handle)
	if err != nil {
		return err
	}
	if other != nil && other.ID != ownID {
		return models.NewConflictError("Handle already exists")
	}
	return nil
}

// applyProfileFields merges only the supplied (non-empty) fields into
// the profile; omitted fields keep their prior value. Skills arrives as
// a comma-delimited string and becomes an ordered list.
func applyProfileFields(p *models.Profile, in validation.ProfileInput) {
	p.Handle = in.Handle
	p.Status = in.Status
	p.Skills = splitSkills(in.Skills)

	if in.Company != "" {
		p.Company = in.Company
	}
	if in.Website != "" {
		p.Website = in.Website
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		p.GithubUsername = in.GithubUsername
	}

	social := map[string]string{}
	for platform, url := range map[string]string{
		"youtube":   in.Youtube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.Linkedin,
		"instagram": in.Instagram,
	} {
		if url != "" {
			social[platform] = url
		}
	}
	if len(social) > 0 {
		if p.Social == nil {
			p.Social = map[string]string{}
		}
		for platform, url := range social {
			p.Social[platform] = url
		}
	}
}

func splitSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func isNotFound(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == models.CodeNotFound
}
