package service

import (
	"context"
	"strings"

	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/repository"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

const maxUserPage = 100

// ProfileService reads and edits user profiles.
type ProfileService struct {
	users repository.UserRepository
}

// NewProfileService builds the service.
func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// GetProfile returns the caller's account.
func (s *ProfileService) GetProfile(ctx context.Context, principal auth.Principal) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// UpdateProfile replaces the caller's editable fields.
func (s *ProfileService) UpdateProfile(ctx context.Context, principal auth.Principal, update domain.ProfileUpdate) (*domain.User, error) {
	update.FirstName = strings.TrimSpace(update.FirstName)
	update.LastName = strings.TrimSpace(update.LastName)
	if update.FirstName == "" || update.LastName == "" {
		return nil, apperrors.NewValidationError("firstName and lastName are required", nil)
	}
	user, err := s.users.UpdateProfile(ctx, principal.ID, update)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// ListUsers pages through accounts, optionally narrowed to one role.
func (s *ProfileService) ListUsers(ctx context.Context, role *domain.Role, page, limit int) ([]domain.User, error) {
	if role != nil && !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": string(*role)})
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxUserPage {
		limit = maxUserPage
	}
	return s.users.List(ctx, role, limit, (page-1)*limit)
}
