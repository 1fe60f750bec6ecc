// Package service contains the mutation orchestrators. Each operation
// validates its input, loads the owning document, applies the edit in
// memory, re-persists, and returns a typed outcome. The load→mutate→
// persist sequence is deliberately not transactional; concurrent writes
// to the same document are last-write-wins.
package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService orchestrates registration and credential verification.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account. The avatar URL is derived from the
// email via Gravatar at registration time.
func (s *UserService) Register(ctx context.Context, in validation.RegisterInput) (*models.User, error) {
	if res := validation.ValidateRegister(in); !res.IsValid {
		return nil, models.NewFieldValidationError(res.Errors)
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Avatar:   GravatarURL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies login credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, in validation.LoginInput) (*models.User, error) {
	if res := validation.ValidateLogin(in); !res.IsValid {
		return nil, models.NewFieldValidationError(res.Errors)
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// Current returns the acting user's account.
func (s *UserService) Current(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GravatarURL returns the Gravatar image URL for an email address
// (200px, PG-rated, "mystery man" fallback).
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
