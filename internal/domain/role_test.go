package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles() {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	for _, raw := range []string{"", "Student", "ADMIN", "superuser"} {
		_, err := ParseRole(raw)
		assert.Error(t, err, raw)
	}
}

func TestRoleDashboardPath(t *testing.T) {
	assert.Equal(t, "/dashboard/student", RoleStudent.DashboardPath())
	assert.Equal(t, "/dashboard/teacher", RoleTeacher.DashboardPath())
	assert.Equal(t, "/dashboard/admin", RoleAdmin.DashboardPath())
	assert.Equal(t, "/login", Role("guest").DashboardPath())
}

func TestRoleSelfRegistrable(t *testing.T) {
	assert.True(t, RoleStudent.SelfRegistrable())
	assert.True(t, RoleTeacher.SelfRegistrable())
	assert.False(t, RoleAdmin.SelfRegistrable())
}

func TestUserIDFromEmail(t *testing.T) {
	id := UserIDFromEmail("Alice@Example.com ")
	assert.Equal(t, id, UserIDFromEmail("alice@example.com"))
	assert.NotEqual(t, id, UserIDFromEmail("bob@example.com"))
	assert.Len(t, id, 36)
}
