package models

// Teacher defines the teacher profile based on the 'teachers' table.
type Teacher struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	DepartmentID *int64  `json:"deptId,omitempty" db:"dept_id"`
	Department   *string `json:"deptName,omitempty"` // joined, no db column
	Email        string  `json:"email,omitempty"`    // joined from auth_users
}
