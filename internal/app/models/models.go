package models

import "github.com/campushub/backend/internal/pkg/apperrors"

// Role defines the closed set of user roles. Role dispatch must be
// exhaustive: anything outside the three constants is rejected at the
// authorization boundary, never silently passed through.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), nil
	default:
		return "", apperrors.ErrInvalidRole
	}
}

// IsValid reports whether the role is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}
