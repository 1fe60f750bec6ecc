// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile
// @Summary Current user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByUser(c.Context(), actingUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile
// @Summary Create or update the current user's profile
// @Description Creates the profile when absent, otherwise merges the supplied fields
// @Tags profile
// @Accept json
// @Produce json
// @Param request body validation.ProfileInput true "Profile payload"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /profile [post]
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req validation.ProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.Context(), actingUserID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetAllProfiles handles GET /api/profile/all
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} models.Profile
// @Router /profile/all [get]
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByHandle handles GET /api/profile/handle/:handle
// @Summary Profile by handle
// @Tags profile
// @Produce json
// @Param handle path string true "Profile handle"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/handle/{handle} [get]
func (s *Server) GetProfileByHandle(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if handle == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid handle"))
	}

	profile, err := s.profileService.GetByHandle(c.Context(), handle)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetProfileByUser handles GET /api/profile/user/:user_id
// @Summary Profile by owning user
// @Tags profile
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/user/{user_id} [get]
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "user_id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience handles POST /api/profile/experience
// @Summary Add an experience entry
// @Description Prepends the entry and returns the whole updated profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body validation.ExperienceInput true "Experience payload"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /profile/experience [post]
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req validation.ExperienceInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.Context(), actingUserID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id
// @Summary Remove an experience entry
// @Tags profile
// @Produce json
// @Param exp_id path string true "Experience entry ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /profile/experience/{exp_id} [delete]
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID := c.Params("exp_id")
	if expID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid experience ID"))
	}

	profile, err := s.profileService.RemoveExperience(c.Context(), actingUserID(c), expID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles POST /api/profile/education
// @Summary Add an education entry
// @Description Prepends the entry and returns the whole updated profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body validation.EducationInput true "Education payload"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /profile/education [post]
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req validation.EducationInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.Context(), actingUserID(c), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id
// @Summary Remove an education entry
// @Tags profile
// @Produce json
// @Param edu_id path string true "Education entry ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /profile/education/{edu_id} [delete]
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID := c.Params("edu_id")
	if eduID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid education ID"))
	}

	profile, err := s.profileService.RemoveEducation(c.Context(), actingUserID(c), eduID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile
// @Summary Delete the current user's profile and account
// @Tags profile
// @Produce json
// @Success 200 {object} object{message=string}
// @Security BearerAuth
// @Router /profile [delete]
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.Context(), actingUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
