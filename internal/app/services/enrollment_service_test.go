package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type enrollmentKey struct {
	studentID int64
	courseID  int64
}

// fakeEnrollmentStore enforces the pair uniqueness the way the database
// constraint would.
type fakeEnrollmentStore struct {
	rows   map[enrollmentKey]*models.Enrollment
	nextID int64

	// raceOnCreate simulates a concurrent duplicate slipping in between the
	// service's existence check and the insert.
	raceOnCreate bool

	// missingStudent simulates the student row being deleted before the
	// insert, the way the foreign key would report it.
	missingStudent bool
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{rows: make(map[enrollmentKey]*models.Enrollment), nextID: 1}
}

func (f *fakeEnrollmentStore) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	if f.raceOnCreate {
		return false, nil
	}
	_, ok := f.rows[enrollmentKey{studentID, courseID}]
	return ok, nil
}

func (f *fakeEnrollmentStore) Create(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if f.missingStudent {
		return nil, apperrors.ErrStudentNotFound
	}
	key := enrollmentKey{studentID, courseID}
	if _, ok := f.rows[key]; ok {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	enrollment := &models.Enrollment{
		ID:         f.nextID,
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: time.Now().Add(time.Duration(f.nextID) * time.Second),
	}
	f.nextID++
	f.rows[key] = enrollment
	return enrollment, nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, studentID, courseID int64) error {
	key := enrollmentKey{studentID, courseID}
	if _, ok := f.rows[key]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.rows, key)
	return nil
}

func (f *fakeEnrollmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	var courses []*models.EnrolledCourse
	for key, enrollment := range f.rows {
		if key.studentID == studentID {
			course := &models.EnrolledCourse{EnrolledAt: enrollment.EnrolledAt}
			course.ID = key.courseID
			courses = append(courses, course)
		}
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].EnrolledAt.After(courses[j].EnrolledAt)
	})
	return courses, nil
}

func (f *fakeEnrollmentStore) ListAll(_ context.Context) ([]*models.EnrollmentRecord, error) {
	var records []*models.EnrollmentRecord
	for key, enrollment := range f.rows {
		records = append(records, &models.EnrollmentRecord{
			ID:         enrollment.ID,
			StudentID:  key.studentID,
			CourseID:   key.courseID,
			EnrolledAt: enrollment.EnrolledAt,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].EnrolledAt.After(records[j].EnrolledAt)
	})
	return records, nil
}

type fakeCourseChecker struct {
	known map[int64]bool
}

func (f *fakeCourseChecker) Exists(_ context.Context, id int64) (bool, error) {
	return f.known[id], nil
}

func newTestEnrollmentService(store *fakeEnrollmentStore, courseIDs ...int64) *EnrollmentService {
	known := make(map[int64]bool, len(courseIDs))
	for _, id := range courseIDs {
		known[id] = true
	}
	return NewEnrollmentService(store, &fakeCourseChecker{known: known}, zerolog.Nop())
}

func TestEnroll(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10)

	enrollment, err := svc.Enroll(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), enrollment.StudentID)
	assert.Equal(t, int64(10), enrollment.CourseID)
	assert.False(t, enrollment.EnrolledAt.IsZero())
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc := newTestEnrollmentService(newFakeEnrollmentStore(), 10)

	_, err := svc.Enroll(context.Background(), 5, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnrollDuplicate(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10)

	_, err := svc.Enroll(context.Background(), 5, 10)
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), 5, 10)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

// Two identical requests can both pass the existence pre-check; the insert
// itself must still surface the duplicate.
func TestEnrollDuplicateRace(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10)

	_, err := svc.Enroll(context.Background(), 5, 10)
	require.NoError(t, err)

	store.raceOnCreate = true
	_, err = svc.Enroll(context.Background(), 5, 10)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

// The foreign key surfaces a deleted student as a not-found, and the
// service passes it through unchanged.
func TestEnrollStudentDeletedConcurrently(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10)

	store.missingStudent = true
	_, err := svc.Enroll(context.Background(), 5, 10)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEnrollSameCourseDifferentStudents(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10)

	_, err := svc.Enroll(context.Background(), 5, 10)
	require.NoError(t, err)
	_, err = svc.Enroll(context.Background(), 6, 10)
	require.NoError(t, err)
}

func TestUnenroll(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10)

	_, err := svc.Enroll(context.Background(), 5, 10)
	require.NoError(t, err)

	require.NoError(t, svc.Unenroll(context.Background(), 5, 10))

	err = svc.Unenroll(context.Background(), 5, 10)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestGetMyCoursesNewestFirst(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10, 11, 12)

	for _, courseID := range []int64{10, 11, 12} {
		_, err := svc.Enroll(context.Background(), 5, courseID)
		require.NoError(t, err)
	}
	_, err := svc.Enroll(context.Background(), 6, 10)
	require.NoError(t, err)

	courses, err := svc.GetMyCourses(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, int64(12), courses[0].ID)
	assert.Equal(t, int64(10), courses[2].ID)
}

func TestGetAllLedger(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := newTestEnrollmentService(store, 10, 11)

	_, err := svc.Enroll(context.Background(), 5, 10)
	require.NoError(t, err)
	_, err = svc.Enroll(context.Background(), 6, 11)
	require.NoError(t, err)

	records, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(6), records[0].StudentID)
}
