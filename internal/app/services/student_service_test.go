package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/pkg/apperrors"
)

// fakeIdentityRemover mirrors the FK cascade: deleting the identity also
// drops the student's enrollment rows.
type fakeIdentityRemover struct {
	users       map[int64]bool
	enrollments *fakeEnrollmentStore
}

func (f *fakeIdentityRemover) Delete(_ context.Context, userID int64) error {
	if !f.users[userID] {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, userID)
	for key := range f.enrollments.rows {
		if key.studentID == userID {
			delete(f.enrollments.rows, key)
		}
	}
	return nil
}

func TestDeleteAccountCascadesEnrollments(t *testing.T) {
	store := newFakeEnrollmentStore()
	enrollmentSvc := newTestEnrollmentService(store, 10, 11)

	_, err := enrollmentSvc.Enroll(context.Background(), 5, 10)
	require.NoError(t, err)
	_, err = enrollmentSvc.Enroll(context.Background(), 5, 11)
	require.NoError(t, err)
	_, err = enrollmentSvc.Enroll(context.Background(), 6, 10)
	require.NoError(t, err)

	remover := &fakeIdentityRemover{users: map[int64]bool{5: true, 6: true}, enrollments: store}
	studentSvc := NewStudentService(nil, remover, nil, zerolog.Nop())

	require.NoError(t, studentSvc.DeleteAccount(context.Background(), 5))

	courses, err := enrollmentSvc.GetMyCourses(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, courses)

	// The other student's enrollment survives.
	records, err := enrollmentSvc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(6), records[0].StudentID)
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	remover := &fakeIdentityRemover{users: map[int64]bool{}, enrollments: newFakeEnrollmentStore()}
	studentSvc := NewStudentService(nil, remover, nil, zerolog.Nop())

	err := studentSvc.DeleteAccount(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
