package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/edudigital/internal/domain"
)

func codecs() map[string]Codec {
	return map[string]Codec{
		"jwt":    NewTokenManager("secret", time.Hour),
		"legacy": NewLegacyCodec(),
	}
}

func TestGuardCheck(t *testing.T) {
	for name, codec := range codecs() {
		t.Run(name, func(t *testing.T) {
			guard := NewGuard(codec)
			studentToken, err := codec.Encode("sam@example.com", domain.RoleStudent)
			require.NoError(t, err)
			teacherToken, err := codec.Encode("alice@example.com", domain.RoleTeacher)
			require.NoError(t, err)

			t.Run("no header", func(t *testing.T) {
				for _, required := range [][]domain.Role{nil, {domain.RoleAdmin}, {domain.RoleStudent}} {
					d := guard.Check("", required...)
					assert.Equal(t, OutcomeUnauthenticated, d.Outcome)
					assert.ErrorIs(t, d.Err, ErrMissingCredential)
				}
			})

			t.Run("wrong prefix", func(t *testing.T) {
				for _, header := range []string{"Basic " + studentToken, "bearer " + studentToken, studentToken, "Bearer ", "Bearer"} {
					d := guard.Check(header)
					assert.Equal(t, OutcomeUnauthenticated, d.Outcome, header)
					assert.ErrorIs(t, d.Err, ErrMissingCredential, header)
				}
			})

			t.Run("undecodable token", func(t *testing.T) {
				d := guard.Check("Bearer not-base64-!!")
				assert.Equal(t, OutcomeUnauthenticated, d.Outcome)
				assert.ErrorIs(t, d.Err, ErrInvalidCredential)
			})

			t.Run("wrong role", func(t *testing.T) {
				d := guard.Check("Bearer "+studentToken, domain.RoleTeacher)
				assert.Equal(t, OutcomeForbidden, d.Outcome)
				assert.ErrorIs(t, d.Err, ErrInsufficientPrivilege)
				assert.Equal(t, "sam@example.com", d.Principal.Subject)
			})

			t.Run("matching role", func(t *testing.T) {
				d := guard.Check("Bearer "+teacherToken, domain.RoleTeacher)
				require.True(t, d.Allowed())
				assert.Equal(t, domain.RoleTeacher, d.Principal.Role)
				assert.Equal(t, "alice@example.com", d.Principal.Subject)
				assert.NoError(t, d.Err)
			})

			t.Run("no role required", func(t *testing.T) {
				d := guard.Check("Bearer " + studentToken)
				assert.Equal(t, OutcomeAuthorized, d.Outcome)
			})

			t.Run("admin is not a superset", func(t *testing.T) {
				adminToken, err := codec.Encode("root@example.com", domain.RoleAdmin)
				require.NoError(t, err)
				d := guard.Check("Bearer "+adminToken, domain.RoleTeacher)
				assert.Equal(t, OutcomeForbidden, d.Outcome)
			})

			t.Run("any of several roles", func(t *testing.T) {
				d := guard.Check("Bearer "+teacherToken, domain.RoleStudent, domain.RoleTeacher)
				assert.True(t, d.Allowed())
			})
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = BearerToken("Token abc")
	assert.False(t, ok)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "authorized", OutcomeAuthorized.String())
	assert.Equal(t, "forbidden", OutcomeForbidden.String())
	assert.Equal(t, "unauthenticated", OutcomeUnauthenticated.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}
