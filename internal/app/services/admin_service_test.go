package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type fakeAdminStore struct {
	admins map[int64]*models.Admin
	counts models.SystemStats
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]*models.Admin)}
}

func (f *fakeAdminStore) GetAll(_ context.Context) ([]*models.Admin, error) {
	var admins []*models.Admin
	for _, admin := range f.admins {
		admins = append(admins, admin)
	}
	return admins, nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) UpdateName(_ context.Context, id int64, name string) error {
	admin, ok := f.admins[id]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	admin.Name = name
	return nil
}

func (f *fakeAdminStore) GetSystemStats(_ context.Context) (*models.SystemStats, error) {
	stats := f.counts
	return &stats, nil
}

func TestSystemStatsZeroOnEmptyDatabase(t *testing.T) {
	svc := NewAdminService(newFakeAdminStore(), zerolog.Nop())

	stats, err := svc.GetSystemStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Students)
	assert.Zero(t, stats.Teachers)
	assert.Zero(t, stats.Courses)
	assert.Zero(t, stats.Departments)
	assert.Zero(t, stats.Enrollments)
}

func TestSystemStats(t *testing.T) {
	store := newFakeAdminStore()
	store.counts = models.SystemStats{Students: 3, Teachers: 2, Courses: 4, Departments: 1, Enrollments: 7}
	svc := NewAdminService(store, zerolog.Nop())

	stats, err := svc.GetSystemStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Students)
	assert.Equal(t, int64(7), stats.Enrollments)
}

func TestAdminUpdateProfile(t *testing.T) {
	store := newFakeAdminStore()
	store.admins[1] = &models.Admin{ID: 1, Name: "Old Name"}
	svc := NewAdminService(store, zerolog.Nop())

	require.NoError(t, svc.UpdateProfile(context.Background(), 1, "  New Name  "))
	assert.Equal(t, "New Name", store.admins[1].Name)
}

func TestAdminUpdateProfileRejectsEmptyName(t *testing.T) {
	store := newFakeAdminStore()
	store.admins[1] = &models.Admin{ID: 1, Name: "Old Name"}
	svc := NewAdminService(store, zerolog.Nop())

	err := svc.UpdateProfile(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
