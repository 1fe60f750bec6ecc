package service

import (
	"context"
	"testing"

	"devconnect/internal/collection"
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn    func(context.Context, uint) (*models.Profile, error)
	getByHandleFn    func(context.Context, string) (*models.Profile, error)
	listFn           func(context.Context) ([]*models.Profile, error)
	createFn         func(context.Context, *models.Profile) error
	saveFn           func(context.Context, *models.Profile) error
	deleteByUserIDFn func(context.Context, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.getByHandleFn(ctx, handle)
}
func (s *profileRepoStub) List(ctx context.Context) ([]*models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Save(ctx context.Context, profile *models.Profile) error {
	return s.saveFn(ctx, profile)
}
func (s *profileRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return nil, models.NewNotFoundError("Profile", userID)
		},
		getByHandleFn:    func(_ context.Context, _ string) (*models.Profile, error) { return nil, nil },
		listFn:           func(_ context.Context) ([]*models.Profile, error) { return nil, nil },
		createFn:         func(_ context.Context, _ *models.Profile) error { return nil },
		saveFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		deleteByUserIDFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func validProfileInput() validation.ProfileInput {
	return validation.ProfileInput{
		Handle: "janedoe",
		Status: "Developer",
		Skills: "Go, SQL , React",
	}
}

func TestProfileService_Upsert_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates profile and splits skills", func(t *testing.T) {
		t.Parallel()

		var created *models.Profile
		repo := noopProfileRepo()
		repo.createFn = func(_ context.Context, p *models.Profile) error {
			p.ID = 11
			created = p
			return nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		profile, err := svc.Upsert(context.Background(), 5, validProfileInput())
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(5), profile.UserID)
		assert.Equal(t, "janedoe", profile.Handle)
		assert.Equal(t, []string{"Go", "SQL", "React"}, profile.Skills)
	})

	t.Run("taken handle aborts before create", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByHandleFn = func(_ context.Context, handle string) (*models.Profile, error) {
			return &models.Profile{ID: 99, Handle: handle}, nil
		}
		createCalled := false
		repo.createFn = func(_ context.Context, _ *models.Profile) error {
			createCalled = true
			return nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		_, err := svc.Upsert(context.Background(), 5, validProfileInput())
		assertCode(t, err, models.CodeConflict)
		assert.False(t, createCalled)
	})

	t.Run("invalid input returns field errors", func(t *testing.T) {
		t.Parallel()

		svc := NewProfileService(noopProfileRepo(), noopUserRepo())
		_, err := svc.Upsert(context.Background(), 5, validation.ProfileInput{})
		assertCode(t, err, models.CodeValidation)
	})
}

func TestProfileService_Upsert_Update(t *testing.T) {
	t.Parallel()

	existingProfile := func() *models.Profile {
		return &models.Profile{
			ID:       11,
			UserID:   5,
			Handle:   "janedoe",
			Status:   "Developer",
			Company:  "Acme",
			Bio:      "old bio",
			Skills:   []string{"Go"},
			Social:   map[string]string{"twitter": "https://twitter.com/jane"},
		}
	}

	t.Run("partial merge keeps omitted fields", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return existingProfile(), nil
		}
		var saved *models.Profile
		repo.saveFn = func(_ context.Context, p *models.Profile) error {
			saved = p
			return nil
		}

		in := validProfileInput()
		in.Location = "Berlin"

		svc := NewProfileService(repo, noopUserRepo())
		profile, err := svc.Upsert(context.Background(), 5, in)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Berlin", profile.Location)
		assert.Equal(t, "Acme", profile.Company)
		assert.Equal(t, "old bio", profile.Bio)
		assert.Equal(t, "https://twitter.com/jane", profile.Social["twitter"])
	})

	t.Run("social links merge per platform", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return existingProfile(), nil
		}

		in := validProfileInput()
		in.Youtube = "https://youtube.com/@jane"

		svc := NewProfileService(repo, noopUserRepo())
		profile, err := svc.Upsert(context.Background(), 5, in)
		require.NoError(t, err)
		assert.Equal(t, "https://youtube.com/@jane", profile.Social["youtube"])
		assert.Equal(t, "https://twitter.com/jane", profile.Social["twitter"])
	})

	t.Run("handle change to a taken handle is a conflict", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return existingProfile(), nil
		}
		repo.getByHandleFn = func(_ context.Context, handle string) (*models.Profile, error) {
			return &models.Profile{ID: 42, Handle: handle}, nil
		}
		saveCalled := false
		repo.saveFn = func(_ context.Context, _ *models.Profile) error {
			saveCalled = true
			return nil
		}

		in := validProfileInput()
		in.Handle = "someoneelse"

		svc := NewProfileService(repo, noopUserRepo())
		_, err := svc.Upsert(context.Background(), 5, in)
		assertCode(t, err, models.CodeConflict)
		assert.False(t, saveCalled)
	})

	t.Run("keeping own handle is not a conflict", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return existingProfile(), nil
		}
		repo.getByHandleFn = func(_ context.Context, _ string) (*models.Profile, error) {
			t.Fatal("handle lookup should be skipped when the handle is unchanged")
			return nil, nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		_, err := svc.Upsert(context.Background(), 5, validProfileInput())
		require.NoError(t, err)
	})
}

func TestProfileService_Experience(t *testing.T) {
	t.Parallel()

	profileWith := func(exp ...models.Experience) *models.Profile {
		return &models.Profile{ID: 11, UserID: 5, Handle: "janedoe", Experience: exp}
	}

	validExp := validation.ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2020-01-01",
	}

	t.Run("add prepends newest first", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return profileWith(models.Experience{ID: "old", Title: "Intern"}), nil
		}
		var saved *models.Profile
		repo.saveFn = func(_ context.Context, p *models.Profile) error {
			saved = p
			return nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		profile, err := svc.AddExperience(context.Background(), 5, validExp)
		require.NoError(t, err)
		require.NotNil(t, saved)
		require.Len(t, profile.Experience, 2)
		assert.Equal(t, "Engineer", profile.Experience[0].Title)
		assert.NotEmpty(t, profile.Experience[0].ID)
		assert.Equal(t, "old", profile.Experience[1].ID)
	})

	t.Run("remove by id", func(t *testing.T) {
		t.Parallel()

		gone := collection.NewID()
		kept := collection.NewID()
		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return profileWith(
				models.Experience{ID: gone},
				models.Experience{ID: kept},
			), nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		profile, err := svc.RemoveExperience(context.Background(), 5, gone)
		require.NoError(t, err)
		require.Len(t, profile.Experience, 1)
		assert.Equal(t, kept, profile.Experience[0].ID)
	})

	t.Run("remove unknown id is not found and does not persist", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return profileWith(models.Experience{ID: "keep"}), nil
		}
		repo.saveFn = func(_ context.Context, _ *models.Profile) error {
			t.Fatal("save must not be called for a not-found removal")
			return nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		_, err := svc.RemoveExperience(context.Background(), 5, "missing")
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("add validates required fields", func(t *testing.T) {
		t.Parallel()

		svc := NewProfileService(noopProfileRepo(), noopUserRepo())
		_, err := svc.AddExperience(context.Background(), 5, validation.ExperienceInput{})
		assertCode(t, err, models.CodeValidation)
	})
}

func TestProfileService_Education(t *testing.T) {
	t.Parallel()

	t.Run("add prepends newest first", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return &models.Profile{
				ID: 11, UserID: 5,
				Education: []models.Education{{ID: "old", School: "Old School"}},
			}, nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		profile, err := svc.AddEducation(context.Background(), 5, validation.EducationInput{
			School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2014-09-01",
		})
		require.NoError(t, err)
		require.Len(t, profile.Education, 2)
		assert.Equal(t, "MIT", profile.Education[0].School)
		assert.Equal(t, "old", profile.Education[1].ID)
	})

	t.Run("remove unknown id is not found", func(t *testing.T) {
		t.Parallel()

		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return &models.Profile{ID: 11, UserID: 5}, nil
		}

		svc := NewProfileService(repo, noopUserRepo())
		_, err := svc.RemoveEducation(context.Background(), 5, "missing")
		assertCode(t, err, models.CodeNotFound)
	})
}

func TestProfileService_GetByHandle_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(noopProfileRepo(), noopUserRepo())
	_, err := svc.GetByHandle(context.Background(), "ghost")
	assertCode(t, err, models.CodeNotFound)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	t.Parallel()

	profileDeleted := false
	userDeleted := false

	profileRepo := noopProfileRepo()
	profileRepo.deleteByUserIDFn = func(_ context.Context, userID uint) error {
		assert.Equal(t, uint(5), userID)
		profileDeleted = true
		return nil
	}
	userRepo := noopUserRepo()
	userRepo.deleteFn = func(_ context.Context, id uint) error {
		assert.Equal(t, uint(5), id)
		userDeleted = true
		return nil
	}

	svc := NewProfileService(profileRepo, userRepo)
	require.NoError(t, svc.DeleteAccount(context.Background(), 5))
	assert.True(t, profileDeleted)
	assert.True(t, userDeleted)
}
