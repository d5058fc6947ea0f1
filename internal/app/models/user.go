package models

import "time"

// AuthUser defines the identity record based on the 'auth_users' table.
// The role is immutable after registration; no update path writes it.
type AuthUser struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// MergedProfile is the identity joined with its role profile, as returned
// to the authenticated caller. The department fields stay nil for admins.
type MergedProfile struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	Role           Role    `json:"role"`
	Name           string  `json:"name"`
	DepartmentID   *int64  `json:"deptId,omitempty"`
	DepartmentName *string `json:"deptName,omitempty"`
}
