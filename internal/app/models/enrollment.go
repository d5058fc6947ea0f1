package models

import "time"

// Enrollment is the join record linking a student to a course. The
// (student_id, course_id) pair is unique; the database constraint is the
// safety mechanism, application checks only produce friendlier errors.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}

// EnrollmentRecord is the admin view of an enrollment, joined to the
// student and course names, ordered by enrollment time descending.
type EnrollmentRecord struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	StudentName string    `json:"studentName"`
	CourseID    int64     `json:"courseId"`
	CourseName  string    `json:"courseName"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}

// EnrolledCourse is a course enriched with department/teacher names and the
// caller's enrollment timestamp, as returned by the my-courses listing.
type EnrolledCourse struct {
	Course
	EnrolledAt time.Time `json:"enrolledAt"`
}
