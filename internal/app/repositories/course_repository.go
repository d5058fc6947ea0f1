package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseSelect = `
	SELECT c.id, c.name, c.description, c.dept_id, c.teacher_id, d.name, t.name
	FROM courses c
	LEFT JOIN departments d ON c.dept_id = d.id
	LEFT JOIN teachers t ON c.teacher_id = t.id`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(&course.ID, &course.Name, &course.Description,
		&course.DepartmentID, &course.TeacherID, &course.Department, &course.Teacher)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetAll retrieves courses, optionally filtered by department or teacher.
func (r *CourseRepository) GetAll(ctx context.Context, deptID, teacherID *int64) ([]*models.Course, error) {
	query := courseSelect
	var args []interface{}
	var conditions []string

	if deptID != nil {
		args = append(args, *deptID)
		conditions = append(conditions, fmt.Sprintf("c.dept_id = $%d", len(args)))
	}
	if teacherID != nil {
		args = append(args, *teacherID)
		conditions = append(conditions, fmt.Sprintf("c.teacher_id = $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY c.name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID with names joined in.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx, courseSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// Exists reports whether a course row exists.
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course: %w", err)
	}
	return exists, nil
}

// Create inserts a course and returns its generated ID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (name, description, dept_id, teacher_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		course.Name, course.Description, course.DepartmentID, course.TeacherID).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	course.ID = id
	return id, nil
}

// Update rewrites only the columns present in the request.
func (r *CourseRepository) Update(ctx context.Context, id int64, name, description *string, deptID, teacherID *int64) error {
	builder := helpers.NewUpdateBuilder("courses")
	builder.SetIfNotNil("name", name)
	builder.SetIfNotNil("description", description)
	if deptID != nil {
		builder.Set("dept_id", *deptID)
	}
	if teacherID != nil {
		builder.Set("teacher_id", *teacherID)
	}

	if !builder.HasUpdates() {
		return apperrors.NewValidationError("no fields to update")
	}

	query, args := builder.Build("id", id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course; enrollments referencing it cascade away.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
