package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"student", "teacher", "admin"} {
		role, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), role)
		assert.True(t, role.IsValid())
	}

	for _, invalid := range []string{"", "Student", "superuser", "ADMIN"} {
		_, err := ParseRole(invalid)
		assert.Error(t, err, "role %q should be rejected", invalid)
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleTeacher.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("guest").IsValid())
}
