package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "auth_users_email_key"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueConstraintError(t *testing.T) {
	pairErr := &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_student_course_key"}

	assert.True(t, IsUniqueConstraintError(pairErr, "enrollments_student_course_key"))
	assert.False(t, IsUniqueConstraintError(pairErr, "auth_users_email_key"))
	assert.False(t, IsUniqueConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "enrollments_student_course_key"}, "enrollments_student_course_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsForeignKeyViolation(fkErr))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("wrapped: %w", fkErr)))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
