package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edudigital/internal/api/dto"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/service"
)

// ProfileHandler lets any signed-in user manage their profile.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get GET /user/profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	user, err := h.profiles.GetProfile(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewUserResponse(user))
}

// Update PUT /user/profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.ProfileUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	user, err := h.profiles.UpdateProfile(c.UserContext(), principal, domain.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		Specialties: req.Specialties,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, dto.NewUserResponse(user))
}
