package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/edudigital/internal/domain"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

// RequireRole ensures the principal holds one of the allowed roles and reports
// the authorized or forbidden decision. It must run after Handle.
func (m *AuthMiddleware) RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("missing credential")
		}
		if err := m.guard.Authorize(*principal, allowed...); err != nil {
			m.record(c, OutcomeForbidden)
			return rejection(err)
		}
		m.record(c, OutcomeAuthorized)
		return c.Next()
	}
}

// RequireAnyRole lets any authenticated principal through.
func (m *AuthMiddleware) RequireAnyRole() fiber.Handler {
	return m.RequireRole()
}
