package models

// Student defines the student profile based on the 'students' table.
// The row shares its primary key with the owning auth_users row and is
// removed by the FK cascade when the identity is deleted.
type Student struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	DepartmentID *int64  `json:"deptId,omitempty" db:"dept_id"`
	Department   *string `json:"deptName,omitempty"` // joined, no db column
	Email        string  `json:"email,omitempty"`    // joined from auth_users
}
