package dto

// UpdateStudentRequest is a sparse profile update: only fields present in
// the request are rewritten, nil pointers leave the column untouched.
type UpdateStudentRequest struct {
	Name         *string `json:"name,omitempty"`
	DepartmentID *int64  `json:"deptId,omitempty"`
}

// StudentListFilter carries the optional list filters. CourseID narrows the
// listing to students enrolled in that course and takes precedence over
// DepartmentID, matching the query contract.
type StudentListFilter struct {
	DepartmentID *int64 `form:"dept_id"`
	CourseID     *int64 `form:"course_id"`
}
