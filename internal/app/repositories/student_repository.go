package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// StudentRepository handles database operations for student profiles.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetAll retrieves students, optionally filtered by department or by
// enrollment in a specific course. The course filter takes precedence.
func (r *StudentRepository) GetAll(ctx context.Context, deptID, courseID *int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.dept_id, d.name
		FROM students s
		LEFT JOIN departments d ON s.dept_id = d.id`
	var args []interface{}

	switch {
	case courseID != nil:
		query = `
			SELECT DISTINCT s.id, s.name, s.dept_id, d.name
			FROM students s
			LEFT JOIN departments d ON s.dept_id = d.id
			JOIN enrollments e ON s.id = e.student_id
			WHERE e.course_id = $1`
		args = append(args, *courseID)
	case deptID != nil:
		query += ` WHERE s.dept_id = $1`
		args = append(args, *deptID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.DepartmentID, &student.Department); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID with the department name joined.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.name, s.dept_id, d.name
		FROM students s
		LEFT JOIN departments d ON s.dept_id = d.id
		WHERE s.id = $1`,
		id).Scan(&student.ID, &student.Name, &student.DepartmentID, &student.Department)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetProfile retrieves a student's own profile with the email joined in.
func (r *StudentRepository) GetProfile(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.name, s.dept_id, d.name, au.email
		FROM students s
		LEFT JOIN departments d ON s.dept_id = d.id
		JOIN auth_users au ON au.id = s.id
		WHERE s.id = $1`,
		id).Scan(&student.ID, &student.Name, &student.DepartmentID, &student.Department, &student.Email)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &student, nil
}

// Update rewrites only the columns present in the request.
func (r *StudentRepository) Update(ctx context.Context, id int64, name *string, deptID *int64) error {
	builder := helpers.NewUpdateBuilder("students")
	builder.SetIfNotNil("name", name)
	if deptID != nil {
		builder.Set("dept_id", *deptID)
	}

	if !builder.HasUpdates() {
		return apperrors.NewValidationError("no fields to update")
	}

	query, args := builder.Build("id", id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
