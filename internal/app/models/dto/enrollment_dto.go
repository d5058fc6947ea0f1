package dto

// EnrollRequest identifies the course to enroll in or leave; the student
// is always taken from the verified token, never from the body.
type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}
