package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// AdminRepository handles database operations for admin profiles.
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// GetAll retrieves all admins with their emails joined in.
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.name, au.email, au.created_at
		FROM admins a
		JOIN auth_users au ON au.id = a.id
		ORDER BY a.id`)
	if err != nil {
		return nil, fmt.Errorf("error listing admins: %w", err)
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(&admin.ID, &admin.Name, &admin.Email, &admin.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, &admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.name, au.email, au.created_at
		FROM admins a
		JOIN auth_users au ON au.id = a.id
		WHERE a.id = $1`,
		id).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// UpdateName renames an admin profile.
func (r *AdminRepository) UpdateName(ctx context.Context, id int64, name string) error {
	tag, err := r.db.Exec(ctx, `UPDATE admins SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("error updating admin: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// GetSystemStats counts the main entities in one round trip.
func (r *AdminRepository) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	var stats models.SystemStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM enrollments)`).
		Scan(&stats.Students, &stats.Teachers, &stats.Courses, &stats.Departments, &stats.Enrollments)

	if err != nil {
		return nil, fmt.Errorf("error collecting stats: %w", err)
	}

	return &stats, nil
}
