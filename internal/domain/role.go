package domain

import "fmt"

// Role is the closed set of account categories. Checks are exact equality;
// there is no privilege hierarchy between roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Roles lists every known role.
func Roles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleAdmin}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts raw text into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// DashboardPath returns the client landing page for the role.
func (r Role) DashboardPath() string {
	switch r {
	case RoleStudent:
		return "/dashboard/student"
	case RoleTeacher:
		return "/dashboard/teacher"
	case RoleAdmin:
		return "/dashboard/admin"
	default:
		return "/login"
	}
}

// SelfRegistrable reports whether accounts with this role may sign up on their own.
func (r Role) SelfRegistrable() bool {
	switch r {
	case RoleStudent, RoleTeacher:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}
