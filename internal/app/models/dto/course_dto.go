package dto

// CreateCourseRequest creates a course; department and teacher references
// are optional associations.
type CreateCourseRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description,omitempty"`
	DepartmentID *int64  `json:"deptId,omitempty"`
	TeacherID    *int64  `json:"teacherId,omitempty"`
}

// UpdateCourseRequest is a sparse course update.
type UpdateCourseRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DepartmentID *int64  `json:"deptId,omitempty"`
	TeacherID    *int64  `json:"teacherId,omitempty"`
}

// CourseListFilter carries the optional list filters; dept_id wins when
// both are supplied, matching the query contract.
type CourseListFilter struct {
	DepartmentID *int64 `form:"dept_id"`
	TeacherID    *int64 `form:"teacher_id"`
}
