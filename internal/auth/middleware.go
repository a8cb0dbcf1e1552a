package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

const principalKey = "auth_principal"

// OutcomeRecorder observes guard decisions.
type OutcomeRecorder interface {
	RecordAuthOutcome(ctx context.Context, outcome string)
}

// AuthMiddleware validates bearer tokens and stores the principal for handlers.
type AuthMiddleware struct {
	guard          *Guard
	cookieName     string
	cookieFallback bool
	recorder       OutcomeRecorder
}

// MiddlewareOption customizes AuthMiddleware.
type MiddlewareOption func(*AuthMiddleware)

// WithCookieFallback reads the named cookie when no Authorization header is sent.
func WithCookieFallback(name string) MiddlewareOption {
	return func(m *AuthMiddleware) {
		if name == "" {
			return
		}
		m.cookieName = name
		m.cookieFallback = true
	}
}

// WithOutcomeRecorder reports every authentication decision to r.
func WithOutcomeRecorder(r OutcomeRecorder) MiddlewareOption {
	return func(m *AuthMiddleware) {
		m.recorder = r
	}
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(guard *Guard, opts ...MiddlewareOption) *AuthMiddleware {
	m := &AuthMiddleware{guard: guard}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle enforces authentication for protected routes. It reports only
// unauthenticated decisions; RequireRole and RequireAnyRole report the rest.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" && m.cookieFallback {
		if cookie := c.Cookies(m.cookieName); cookie != "" {
			header = bearerPrefix + cookie
		}
	}

	decision := m.guard.Check(header)
	if !decision.Allowed() {
		m.record(c, decision.Outcome)
		return rejection(decision.Err)
	}

	c.Locals(principalKey, &decision.Principal)
	return c.Next()
}

func (m *AuthMiddleware) record(c *fiber.Ctx, outcome Outcome) {
	if m.recorder != nil {
		m.recorder.RecordAuthOutcome(c.UserContext(), outcome.String())
	}
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func rejection(err error) error {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return apperrors.NewUnauthorized("missing credential")
	case errors.Is(err, ErrInsufficientPrivilege):
		return apperrors.NewForbidden("insufficient privilege")
	default:
		return apperrors.NewUnauthorized("invalid credential")
	}
}
