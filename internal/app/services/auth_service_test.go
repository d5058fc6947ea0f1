package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

// fakeIdentityStore keeps identities in memory, keyed by email.
type fakeIdentityStore struct {
	users    map[string]*models.AuthUser
	profiles map[int64]string
	nextID   int64

	// raceOnCreate simulates a concurrent registration slipping in between
	// the email pre-check and the insert.
	raceOnCreate bool
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{
		users:    make(map[string]*models.AuthUser),
		profiles: make(map[int64]string),
		nextID:   1,
	}
}

func (f *fakeIdentityStore) EmailExists(_ context.Context, email string) (bool, error) {
	if f.raceOnCreate {
		return false, nil
	}
	_, exists := f.users[email]
	return exists, nil
}

func (f *fakeIdentityStore) CreateWithProfile(_ context.Context, user *models.AuthUser, name string, _ *int64) (int64, error) {
	if _, exists := f.users[user.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	f.profiles[user.ID] = name
	return user.ID, nil
}

func (f *fakeIdentityStore) GetByEmail(_ context.Context, email string) (*models.AuthUser, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeIdentityStore) GetMergedProfile(_ context.Context, userID int64, role models.Role) (*models.MergedProfile, error) {
	name, ok := f.profiles[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	for _, user := range f.users {
		if user.ID == userID {
			return &models.MergedProfile{ID: userID, Email: user.Email, Role: role, Name: name}, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// fakeDepartmentChecker accepts a fixed set of department IDs.
type fakeDepartmentChecker struct {
	known map[int64]bool
}

func (f *fakeDepartmentChecker) Exists(_ context.Context, id int64) (bool, error) {
	return f.known[id], nil
}

func newTestAuthService(store *fakeIdentityStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test.app",
	})
	departments := &fakeDepartmentChecker{known: map[int64]bool{1: true}}
	return NewAuthService(store, departments, jwtService, zerolog.Nop())
}

func TestRegisterStudent(t *testing.T) {
	store := newFakeIdentityStore()
	svc := newTestAuthService(store)

	deptID := int64(1)
	user, token, expiresIn, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:         "Ada Lovelace",
		Email:        "Ada@Example.com",
		Password:     "secret123",
		Role:         "student",
		DepartmentID: &deptID,
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "student", user.Role)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	stored := store.users["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	svc := newTestAuthService(newFakeIdentityStore())

	_, _, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterRejectsUnknownDepartment(t *testing.T) {
	svc := newTestAuthService(newFakeIdentityStore())

	deptID := int64(99)
	_, _, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:         "Ada",
		Email:        "ada@example.com",
		Password:     "secret123",
		Role:         "student",
		DepartmentID: &deptID,
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newTestAuthService(newFakeIdentityStore())

	_, _, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "12345",
		Role:     "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeIdentityStore()
	svc := newTestAuthService(store)

	req := &dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: "student"}
	_, _, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

// Two identical registrations can both pass the email pre-check; the
// unique constraint on the insert must still surface the duplicate.
func TestRegisterDuplicateEmailRace(t *testing.T) {
	store := newFakeIdentityStore()
	svc := newTestAuthService(store)

	req := &dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: "student"}
	_, _, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	store.raceOnCreate = true
	_, _, _, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeIdentityStore()
	svc := newTestAuthService(store)

	_, _, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: "teacher",
	})
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ada@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "teacher", user.Role)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEmpty(t, token)
}

// An unknown email and a wrong password must be indistinguishable to the
// caller, otherwise login becomes an account-probing oracle.
func TestLoginFailuresAreUniform(t *testing.T) {
	store := newFakeIdentityStore()
	svc := newTestAuthService(store)

	_, _, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: "student",
	})
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	_, _, _, wrongPassErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ada@example.com", Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestCurrentUser(t *testing.T) {
	store := newFakeIdentityStore()
	svc := newTestAuthService(store)

	registered, _, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123", Role: "student",
	})
	require.NoError(t, err)

	profile, err := svc.CurrentUser(context.Background(), registered.ID, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "Ada", profile.Name)

	_, err = svc.CurrentUser(context.Background(), registered.ID, models.Role("ghost"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}
