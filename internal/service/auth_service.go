package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/config"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/events"
	"github.com/spec-kit/edudigital/internal/repository"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

// AuthService coordinates registration, login and password flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	codec      auth.Codec
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Codec             auth.Codec
	Dispatcher        events.Dispatcher
	Logger            *zap.Logger
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

// AuthResult is returned by flows that issue a credential.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt *time.Time
}

type expiringCodec interface {
	GenerateToken(subject string, role domain.Role) (string, time.Time, error)
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		codec:      deps.Codec,
		dispatcher: deps.Dispatcher,
		logger:     nopIfNil(deps.Logger),
		bcryptCost: cfg.BcryptCost,
		resetTTL:   cfg.PasswordResetTTL(),
	}
}

// Register creates a self-service account and signs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if !in.Role.SelfRegistrable() {
		return nil, apperrors.NewForbidden("role cannot self-register")
	}
	user, err := s.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// CreateUser stores an account of any role without issuing a token.
func (s *AuthService) CreateUser(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if !in.Role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"userType": string(in.Role)})
	}
	email := domain.NormalizeEmail(in.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !apperrors.IsNoRows(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		ID:           domain.UserIDFromEmail(email),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates an account. When expected is set the account must hold
// that role, mirroring the role picker on the login form.
func (s *AuthService) Login(ctx context.Context, email, password string, expected *domain.Role) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNoRows(err) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if expected != nil && *expected != user.Role {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.issue(user)
}

// RequestPasswordReset stores a reset token when the e-mail belongs to an
// account. Unknown addresses succeed silently so callers cannot probe accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNoRows(err) {
			s.logger.Debug("password reset for unknown email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := s.resets.Save(ctx, token, user.ID, s.resetTTL); err != nil {
		return err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventPasswordResetRequested,
		events.Actor{UserID: user.ID, Email: user.Email, Role: user.Role},
		events.PasswordResetRequestedPayload{Token: token, ExpiresAt: time.Now().Add(s.resetTTL)},
	))
	return nil
}

// ConfirmPasswordReset consumes the token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return apperrors.NewValidationError("token expired or used", nil)
		}
		return err
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// ChangePassword verifies the current password before updating to the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, principal auth.Principal, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, principal.ID)
	if err != nil {
		if apperrors.IsNoRows(err) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	result := &AuthResult{User: user}
	if codec, ok := s.codec.(expiringCodec); ok {
		token, exp, err := codec.GenerateToken(user.Email, user.Role)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		result.Token, result.ExpiresAt = token, &exp
		return result, nil
	}
	token, err := s.codec.Encode(user.Email, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	result.Token = token
	return result, nil
}
