package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

var defaultDepartments = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"History",
}

// CreateDefaultData inserts the default departments and a bootstrap admin
// account on first startup. Every statement is idempotent, re-running it
// against a populated database changes nothing.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	for _, name := range defaultDepartments {
		_, err := db.Exec(ctx, `
			INSERT INTO departments (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("error seeding department %q: %w", name, err)
		}
	}
	lgr.Info().Int("count", len(defaultDepartments)).Msg("Default departments ensured")

	return createBootstrapAdmin(ctx, db, lgr)
}

// createBootstrapAdmin creates the initial admin if no admin exists yet.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD with local defaults.
func createBootstrapAdmin(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	var adminCount int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&adminCount); err != nil {
		return fmt.Errorf("error counting admins: %w", err)
	}
	if adminCount > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@campushub.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		lgr.Warn().Msg("ADMIN_PASSWORD not set, using the default bootstrap password")
	}

	var emailTaken bool
	if err := db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM auth_users WHERE email = $1)`, email).Scan(&emailTaken); err != nil {
		return fmt.Errorf("error checking bootstrap admin email: %w", err)
	}
	if emailTaken {
		lgr.Warn().Str("email", email).Msg("Bootstrap admin email already belongs to another account, skipping")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing bootstrap admin password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var adminID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO auth_users (email, password, role)
		VALUES ($1, $2, 'admin')
		RETURNING id`, email, hash).Scan(&adminID)
	if err != nil {
		// Another instance registered the email between the check and
		// the insert.
		if dberrors.IsUniqueViolation(err) {
			lgr.Warn().Str("email", email).Msg("Bootstrap admin email already belongs to another account, skipping")
			return nil
		}
		return fmt.Errorf("error creating bootstrap admin identity: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO admins (id, name) VALUES ($1, 'Administrator')`, adminID); err != nil {
		return fmt.Errorf("error creating bootstrap admin profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing seed transaction: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Bootstrap admin created")
	return nil
}
