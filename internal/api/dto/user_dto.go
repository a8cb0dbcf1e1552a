package dto

import (
	"time"

	"github.com/spec-kit/edudigital/internal/domain"
)

// RegisterRequest payload for POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	UserType  string `json:"userType" validate:"required,role"`
}

// LoginRequest payload for POST /auth/login. UserType is optional and, when
// sent, must match the account's role.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"omitempty,role"`
}

// PasswordResetRequest payload for POST /auth/password/reset/request.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest payload for POST /auth/password/reset/confirm.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// PasswordChangeRequest payload for POST /auth/password/change.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}

// ProfileUpdateRequest payload for PUT /user/profile.
type ProfileUpdateRequest struct {
	FirstName   string   `json:"firstName" validate:"notblank,max=100"`
	LastName    string   `json:"lastName" validate:"notblank,max=100"`
	Bio         *string  `json:"bio" validate:"omitempty,max=2000"`
	AvatarURL   *string  `json:"avatarUrl" validate:"omitempty,url"`
	Specialties []string `json:"specialties" validate:"omitempty,max=20,dive,notblank"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	UserType    string    `json:"userType"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Specialties []string  `json:"specialties"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
	Redirect  string       `json:"redirect"`
	User      UserResponse `json:"user"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	specialties := u.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		UserType:    string(u.Role),
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		Specialties: specialties,
		CreatedAt:   u.CreatedAt,
	}
}
