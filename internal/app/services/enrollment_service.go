package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// EnrollmentStore is the ledger persistence the enrollment service depends on.
type EnrollmentStore interface {
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	Create(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	Delete(ctx context.Context, studentID, courseID int64) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error)
	ListAll(ctx context.Context) ([]*models.EnrollmentRecord, error)
}

// CourseChecker verifies course references before enrollment.
type CourseChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// EnrollmentService handles the student-course enrollment ledger.
type EnrollmentService struct {
	enrollments EnrollmentStore
	courses     CourseChecker
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollments EnrollmentStore, courses CourseChecker, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		courses:     courses,
		logger:      logger,
	}
}

// Enroll records the student in the course. The pre-check gives a friendly
// duplicate error; the database pair constraint catches the race where two
// identical requests pass the check together.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if courseID <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}

	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	enrollment, err := s.enrollments.Create(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", studentID).Int64("courseId", courseID).Msg("Student enrolled")
	return enrollment, nil
}

// Unenroll removes the student's enrollment in the course.
func (s *EnrollmentService) Unenroll(ctx context.Context, studentID, courseID int64) error {
	if courseID <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}

	if err := s.enrollments.Delete(ctx, studentID, courseID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", studentID).Int64("courseId", courseID).Msg("Student unenrolled")
	return nil
}

// GetMyCourses lists the caller's enrolled courses, newest first.
func (s *EnrollmentService) GetMyCourses(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	courses, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}
	return courses, nil
}

// GetAll lists the full enrollment ledger for admins, newest first.
func (s *EnrollmentService) GetAll(ctx context.Context) ([]*models.EnrollmentRecord, error) {
	records, err := s.enrollments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return records, nil
}
