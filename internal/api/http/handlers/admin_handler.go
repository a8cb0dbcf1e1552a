package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edudigital/internal/api/dto"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/service"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	stats    *service.StatsService
	profiles *service.ProfileService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(stats *service.StatsService, profiles *service.ProfileService) *AdminHandler {
	return &AdminHandler{stats: stats, profiles: profiles}
}

// Stats GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.stats.PlatformStats(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, stats)
}

// Summary GET /admin/summary.
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.stats.PlatformSummary(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, summary)
}

// ListUsers GET /admin/users?role=&page=&limit=.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var role *domain.Role
	if raw := c.Query("role"); raw != "" {
		parsed, err := domain.ParseRole(raw)
		if err != nil {
			return apperrors.NewValidationError("invalid role", map[string]any{"role": raw})
		}
		role = &parsed
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	users, err := h.profiles.ListUsers(c.UserContext(), role, page, limit)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return data(c, http.StatusOK, items)
}
