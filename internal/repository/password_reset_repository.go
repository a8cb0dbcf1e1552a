package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const passwordResetPrefix = "edu:pwreset:"

// ErrResetTokenNotFound is returned when a reset token is unknown, expired or already used.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// PasswordResetRepository stores single-use reset tokens.
type PasswordResetRepository interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the user id and deletes the token atomically.
	Consume(ctx context.Context, token string) (string, error)
}

type passwordResetRepository struct {
	client redis.Cmdable
}

// NewPasswordResetRepository constructs a Redis-backed repository; expiry is
// delegated to key TTLs.
func NewPasswordResetRepository(client redis.Cmdable) PasswordResetRepository {
	return &passwordResetRepository{client: client}
}

func (r *passwordResetRepository) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, passwordResetPrefix+token, userID, ttl).Err()
}

func (r *passwordResetRepository) Consume(ctx context.Context, token string) (string, error) {
	userID, err := r.client.GetDel(ctx, passwordResetPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrResetTokenNotFound
	}
	return userID, err
}
