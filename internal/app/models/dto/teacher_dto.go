package dto

// UpdateTeacherRequest is a sparse profile update for teachers.
type UpdateTeacherRequest struct {
	Name         *string `json:"name,omitempty"`
	DepartmentID *int64  `json:"deptId,omitempty"`
}
