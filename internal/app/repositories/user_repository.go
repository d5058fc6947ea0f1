package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// UserRepository handles identity rows and the identity+profile pair.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM auth_users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// CreateWithProfile inserts the identity row and its role profile as one
// transaction. A failure on either insert rolls back both; no orphaned
// identity can remain.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.AuthUser, name string, deptID *int64) (int64, error) {
	var userID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO auth_users (email, password, role)
			VALUES ($1, $2, $3)
			RETURNING id`,
			user.Email, user.Password, user.Role).Scan(&userID)
		if err != nil {
			return fmt.Errorf("error creating identity: %w", err)
		}

		switch user.Role {
		case models.RoleStudent:
			_, err = tx.Exec(ctx, `INSERT INTO students (id, name, dept_id) VALUES ($1, $2, $3)`,
				userID, name, deptID)
		case models.RoleTeacher:
			_, err = tx.Exec(ctx, `INSERT INTO teachers (id, name, dept_id) VALUES ($1, $2, $3)`,
				userID, name, deptID)
		case models.RoleAdmin:
			_, err = tx.Exec(ctx, `INSERT INTO admins (id, name) VALUES ($1, $2)`,
				userID, name)
		default:
			return apperrors.ErrInvalidRole
		}
		if err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}

		return nil
	})

	if err != nil {
		if dberrors.IsUniqueConstraintError(err, "auth_users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, err
	}

	user.ID = userID
	return userID, nil
}

// GetByEmail retrieves an identity by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.AuthUser, error) {
	user := &models.AuthUser{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, role, created_at
		FROM auth_users
		WHERE email = $1`,
		email).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetMergedProfile retrieves the merged identity+profile view for a user.
// Students and teachers include the department reference; admins do not.
func (r *UserRepository) GetMergedProfile(ctx context.Context, userID int64, role models.Role) (*models.MergedProfile, error) {
	profile := &models.MergedProfile{ID: userID, Role: role}

	var err error
	switch role {
	case models.RoleStudent:
		err = r.db.QueryRow(ctx, `
			SELECT s.name, s.dept_id, d.name, au.email
			FROM students s
			LEFT JOIN departments d ON s.dept_id = d.id
			JOIN auth_users au ON au.id = s.id
			WHERE s.id = $1`,
			userID).Scan(&profile.Name, &profile.DepartmentID, &profile.DepartmentName, &profile.Email)
	case models.RoleTeacher:
		err = r.db.QueryRow(ctx, `
			SELECT t.name, t.dept_id, d.name, au.email
			FROM teachers t
			LEFT JOIN departments d ON t.dept_id = d.id
			JOIN auth_users au ON au.id = t.id
			WHERE t.id = $1`,
			userID).Scan(&profile.Name, &profile.DepartmentID, &profile.DepartmentName, &profile.Email)
	case models.RoleAdmin:
		err = r.db.QueryRow(ctx, `
			SELECT a.name, au.email
			FROM admins a
			JOIN auth_users au ON au.id = a.id
			WHERE a.id = $1`,
			userID).Scan(&profile.Name, &profile.Email)
	default:
		return nil, apperrors.ErrInvalidRole
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving merged profile: %w", err)
	}

	return profile, nil
}

// Delete removes the identity row; the FK cascade removes the profile and
// any enrollments.
func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM auth_users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
