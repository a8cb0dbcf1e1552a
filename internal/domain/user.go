package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// userNamespace scopes user ids derived from e-mail addresses.
var userNamespace = uuid.MustParse("6f1c3c1e-3c4b-4d8e-9a57-2f0d1c9e7b42")

// User is an account of any role.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	AvatarURL    *string
	Bio          *string
	Specialties  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserIDFromEmail derives the stable user id for an e-mail address.
func UserIDFromEmail(email string) string {
	return uuid.NewSHA1(userNamespace, []byte(NormalizeEmail(email))).String()
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	Bio         *string
	AvatarURL   *string
	Specialties []string
}
