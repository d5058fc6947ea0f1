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

// TeacherRepository handles database operations for teacher profiles.
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// GetAll retrieves teachers, optionally filtered by department.
func (r *TeacherRepository) GetAll(ctx context.Context, deptID *int64) ([]*models.Teacher, error) {
	query := `
		SELECT t.id, t.name, t.dept_id, d.name
		FROM teachers t
		LEFT JOIN departments d ON t.dept_id = d.id`
	var args []interface{}

	if deptID != nil {
		query += ` WHERE t.dept_id = $1`
		args = append(args, *deptID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(&teacher.ID, &teacher.Name, &teacher.DepartmentID, &teacher.Department); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// GetByID retrieves a teacher by ID with the department name joined.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.name, t.dept_id, d.name
		FROM teachers t
		LEFT JOIN departments d ON t.dept_id = d.id
		WHERE t.id = $1`,
		id).Scan(&teacher.ID, &teacher.Name, &teacher.DepartmentID, &teacher.Department)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetProfile retrieves a teacher's own profile with the email joined in.
func (r *TeacherRepository) GetProfile(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.name, t.dept_id, d.name, au.email
		FROM teachers t
		LEFT JOIN departments d ON t.dept_id = d.id
		JOIN auth_users au ON au.id = t.id
		WHERE t.id = $1`,
		id).Scan(&teacher.ID, &teacher.Name, &teacher.DepartmentID, &teacher.Department, &teacher.Email)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher profile: %w", err)
	}

	return &teacher, nil
}

// Update rewrites only the columns present in the request.
func (r *TeacherRepository) Update(ctx context.Context, id int64, name *string, deptID *int64) error {
	builder := helpers.NewUpdateBuilder("teachers")
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
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}
