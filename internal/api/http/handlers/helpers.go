package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/edudigital/internal/api/dto"
	"github.com/spec-kit/edudigital/internal/auth"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

// currentPrincipal returns the principal stored by the auth middleware.
func currentPrincipal(c *fiber.Ctx) (auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal == nil {
		return auth.Principal{}, apperrors.NewUnauthorized("missing credential")
	}
	return *principal, nil
}

// bindJSON parses the body into dst and runs its validation tags.
func bindJSON(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return dto.Validate(dst)
}

// pathID returns a route parameter that must be a UUID.
func pathID(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperrors.NewValidationError("invalid "+name, map[string]any{name: raw})
	}
	return raw, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid "+key, map[string]any{key: raw})
	}
	return v, nil
}

func data(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(fiber.Map{"data": payload})
}
