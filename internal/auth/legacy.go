package auth

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/edudigital/internal/domain"
)

const legacyDelimiter = ":"

// LegacyCodec reproduces the unsigned "base64(subject:role:millis)" token.
// Anyone can mint a valid token offline, and tokens never expire, so it is
// only meant for migrating clients that still hold such tokens.
type LegacyCodec struct {
	now func() time.Time
}

// NewLegacyCodec builds the unsigned codec.
func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{now: time.Now}
}

// Encode never fails; subject and role are not validated.
func (c *LegacyCodec) Encode(subject string, role domain.Role) (string, error) {
	raw := strings.Join([]string{subject, string(role), strconv.FormatInt(c.now().UnixMilli(), 10)}, legacyDelimiter)
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// Decode recovers subject and role. With three or more fields the last one is
// the timestamp and is ignored, the one before it is the role, and the rest is
// the subject, so subjects containing the delimiter survive a round trip.
func (c *LegacyCodec) Decode(token string) (Principal, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	fields := strings.Split(string(raw), legacyDelimiter)
	var subject, role string
	switch {
	case len(fields) < 2:
		return Principal{}, fmt.Errorf("%w: expected subject and role", ErrInvalidCredential)
	case len(fields) == 2:
		subject, role = fields[0], fields[1]
	default:
		n := len(fields)
		subject = strings.Join(fields[:n-2], legacyDelimiter)
		role = fields[n-2]
	}

	if subject == "" || role == "" {
		return Principal{}, fmt.Errorf("%w: empty subject or role", ErrInvalidCredential)
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return newPrincipal(subject, parsed), nil
}
