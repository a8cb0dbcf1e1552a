package auth

import (
	"fmt"
	"strings"

	"github.com/spec-kit/edudigital/internal/domain"
)

const bearerPrefix = "Bearer "

// Outcome is the terminal state of a guard check.
type Outcome int

const (
	OutcomeUnauthenticated Outcome = iota
	OutcomeForbidden
	OutcomeAuthorized
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeAuthorized:
		return "authorized"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Decision is the result of a guard check. Principal is set whenever the
// credential decoded, including Forbidden outcomes.
type Decision struct {
	Outcome   Outcome
	Principal Principal
	Err       error
}

// Allowed reports whether the protected operation may proceed.
func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAuthorized
}

// Guard decides whether a request may run a protected operation. It keeps no
// mutable state and is safe for concurrent use.
type Guard struct {
	codec Codec
}

// NewGuard constructs a guard over the given codec.
func NewGuard(codec Codec) *Guard {
	return &Guard{codec: codec}
}

// Check runs the full state machine against an Authorization header value.
// With no required roles any authenticated principal is authorized.
func (g *Guard) Check(authorization string, required ...domain.Role) Decision {
	principal, err := g.Authenticate(authorization)
	if err != nil {
		return Decision{Outcome: OutcomeUnauthenticated, Err: err}
	}
	if err := g.Authorize(principal, required...); err != nil {
		return Decision{Outcome: OutcomeForbidden, Principal: principal, Err: err}
	}
	return Decision{Outcome: OutcomeAuthorized, Principal: principal}
}

// Authenticate extracts and decodes the bearer credential.
func (g *Guard) Authenticate(authorization string) (Principal, error) {
	token, ok := BearerToken(authorization)
	if !ok {
		return Principal{}, ErrMissingCredential
	}
	return g.codec.Decode(token)
}

// Authorize enforces exact role membership.
func (g *Guard) Authorize(principal Principal, required ...domain.Role) error {
	if len(required) == 0 {
		return nil
	}
	for _, role := range required {
		if principal.Role == role {
			return nil
		}
	}
	return ErrInsufficientPrivilege
}

// BearerToken strips the "Bearer " prefix from an Authorization header value.
func BearerToken(authorization string) (string, bool) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(authorization[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
