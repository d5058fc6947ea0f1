package models

import "time"

// Admin defines the admin profile based on the 'admins' table.
type Admin struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email,omitempty"` // joined from auth_users
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// SystemStats holds the dashboard row counts.
type SystemStats struct {
	Students    int64 `json:"students"`
	Teachers    int64 `json:"teachers"`
	Courses     int64 `json:"courses"`
	Departments int64 `json:"departments"`
	Enrollments int64 `json:"enrollments"`
}
