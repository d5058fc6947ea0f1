package models

// Course defines the course model based on the 'courses' table. Department
// and teacher references are optional associations, not ownership: deleting
// either sets the reference to NULL.
type Course struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"`
	DepartmentID *int64  `json:"deptId,omitempty" db:"dept_id"`
	TeacherID    *int64  `json:"teacherId,omitempty" db:"teacher_id"`
	Department   *string `json:"deptName,omitempty"`    // joined, no db column
	Teacher      *string `json:"teacherName,omitempty"` // joined, no db column
}
