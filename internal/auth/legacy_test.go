package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/edudigital/internal/domain"
)

func fixedLegacyCodec(at time.Time) *LegacyCodec {
	return &LegacyCodec{now: func() time.Time { return at }}
}

func TestLegacyCodecRoundTrip(t *testing.T) {
	codec := NewLegacyCodec()
	subjects := []string{"alice@example.com", "x", "weird:subject@example.com", "ünïcode@example.com"}

	for _, subject := range subjects {
		for _, role := range domain.Roles() {
			token, err := codec.Encode(subject, role)
			require.NoError(t, err)

			principal, err := codec.Decode(token)
			require.NoError(t, err, "%s/%s", subject, role)
			assert.Equal(t, subject, principal.Subject)
			assert.Equal(t, role, principal.Role)
			assert.Equal(t, domain.UserIDFromEmail(subject), principal.ID)
		}
	}
}

func TestLegacyCodecEncodeFormat(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	token, err := fixedLegacyCodec(at).Encode("alice@example.com", domain.RoleTeacher)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com:teacher:1700000000123", string(raw))
}

func TestLegacyCodecEncodeDoesNotValidate(t *testing.T) {
	token, err := NewLegacyCodec().Encode("", domain.Role("wizard"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLegacyCodecDecodeRejectsMalformed(t *testing.T) {
	codec := NewLegacyCodec()
	emptySubject, _ := codec.Encode("", domain.RoleStudent)
	emptyRole, _ := codec.Encode("alice@example.com", "")
	unknownRole, _ := codec.Encode("alice@example.com", domain.Role("root"))

	inputs := map[string]string{
		"empty":          "",
		"not base64":     "not-base64-!!",
		"empty subject":  emptySubject,
		"empty role":     emptyRole,
		"unknown role":   unknownRole,
		"single field":   base64.StdEncoding.EncodeToString([]byte("alice@example.com")),
		"only delimiter": base64.StdEncoding.EncodeToString([]byte(":")),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(input)
			assert.ErrorIs(t, err, ErrInvalidCredential)
		})
	}
}

func TestLegacyCodecDecodeTwoFields(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("bob@example.com:admin"))
	principal, err := NewLegacyCodec().Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", principal.Subject)
	assert.Equal(t, domain.RoleAdmin, principal.Role)
}

func TestLegacyCodecDecodeSplitsFromTheRight(t *testing.T) {
	codec := NewLegacyCodec()

	// The last field is the timestamp and the one before it the role, so a
	// trailing extra field shifts the role out of position.
	token := base64.StdEncoding.EncodeToString([]byte("a:teacher:1:2"))
	_, err := codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	token = base64.StdEncoding.EncodeToString([]byte("a:b:student:1700000000123"))
	principal, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a:b", principal.Subject)
	assert.Equal(t, domain.RoleStudent, principal.Role)
}

func TestLegacyCodecTamperNeverPanics(t *testing.T) {
	codec := NewLegacyCodec()
	token, err := codec.Encode("alice@example.com", domain.RoleTeacher)
	require.NoError(t, err)

	alphabet := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := 0; i < len(token); i++ {
		for _, replacement := range []byte{alphabet[(i*7)%len(alphabet)], '!', '='} {
			if token[i] == replacement {
				continue
			}
			tampered := []byte(token)
			tampered[i] = replacement

			assert.NotPanics(t, func() {
				principal, err := codec.Decode(string(tampered))
				if err == nil {
					assert.True(t, principal.Role.Valid())
					assert.NotEmpty(t, principal.Subject)
				}
			})
		}
	}
}
