package auth

import "github.com/spec-kit/edudigital/internal/domain"

// Principal is the identity reconstructed from a bearer credential for the
// lifetime of one request. It is never persisted.
type Principal struct {
	Subject string
	Role    domain.Role
	ID      string
}

func newPrincipal(subject string, role domain.Role) Principal {
	return Principal{Subject: subject, Role: role, ID: domain.UserIDFromEmail(subject)}
}

// Codec issues and parses bearer credentials.
type Codec interface {
	Encode(subject string, role domain.Role) (string, error)
	Decode(token string) (Principal, error)
}
