package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for the enrollment ledger.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Exists reports whether the student already holds the course.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}

// Create records an enrollment. The unique pair constraint is the real
// guard; a concurrent duplicate surfaces here as ErrAlreadyEnrolled.
func (r *EnrollmentRepository) Create(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{StudentID: studentID, CourseID: courseID}
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, enrolled_at`,
		studentID, courseID).Scan(&enrollment.ID, &enrollment.EnrolledAt)

	if err != nil {
		if dberrors.IsUniqueConstraintError(err, "enrollments_student_course_key") {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		// The student row vanished between the token check and the insert.
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return enrollment, nil
}

// Delete removes the student's enrollment in the course.
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// ListByStudent retrieves the courses a student is enrolled in, most
// recent enrollment first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.description, c.dept_id, c.teacher_id, d.name, t.name, e.enrolled_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		LEFT JOIN departments d ON c.dept_id = d.id
		LEFT JOIN teachers t ON c.teacher_id = t.id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrolled courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.EnrolledCourse
	for rows.Next() {
		var course models.EnrolledCourse
		err := rows.Scan(&course.ID, &course.Name, &course.Description,
			&course.DepartmentID, &course.TeacherID, &course.Department, &course.Teacher,
			&course.EnrolledAt)
		if err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ListAll retrieves the full ledger with student and course names joined,
// most recent enrollment first.
func (r *EnrollmentRepository) ListAll(ctx context.Context) ([]*models.EnrollmentRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.student_id, s.name, e.course_id, c.name, e.enrolled_at
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		ORDER BY e.enrolled_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var records []*models.EnrollmentRecord
	for rows.Next() {
		var record models.EnrollmentRecord
		err := rows.Scan(&record.ID, &record.StudentID, &record.StudentName,
			&record.CourseID, &record.CourseName, &record.EnrolledAt)
		if err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
