package auth

import (
	"fmt"
	"time"
)

// NewCodec selects the token codec for the configured mode ("jwt" or "legacy").
func NewCodec(mode, secret string, ttl time.Duration) (Codec, error) {
	switch mode {
	case "jwt", "":
		return NewTokenManager(secret, ttl), nil
	case "legacy":
		return NewLegacyCodec(), nil
	default:
		return nil, fmt.Errorf("unknown token mode %q", mode)
	}
}
