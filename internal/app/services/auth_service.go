package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IdentityStore is the identity persistence the auth service depends on.
type IdentityStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateWithProfile(ctx context.Context, user *models.AuthUser, name string, deptID *int64) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.AuthUser, error)
	GetMergedProfile(ctx context.Context, userID int64, role models.Role) (*models.MergedProfile, error)
}

// DepartmentChecker verifies department references during registration.
type DepartmentChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// AuthService handles registration, login and the current-user lookup.
type AuthService struct {
	users       IdentityStore
	departments DepartmentChecker
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users IdentityStore, departments DepartmentChecker, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:       users,
		departments: departments,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// validateRegistration checks the request fields before touching the database.
func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	if len(req.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters long")
	}
	return nil
}

// Register creates the identity and its role profile, then issues a session
// token so the caller is signed in immediately.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthUserData, string, int64, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, "", 0, err
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, "", 0, apperrors.NewValidationError("role must be student, teacher or admin")
	}

	var deptID *int64
	if role != models.RoleAdmin && req.DepartmentID != nil {
		exists, err := s.departments.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return nil, "", 0, fmt.Errorf("error checking department: %w", err)
		}
		if !exists {
			return nil, "", 0, apperrors.ErrDepartmentNotFound
		}
		deptID = req.DepartmentID
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Pre-check for a friendly error; the unique constraint on the insert
	// still guards against a concurrent registration.
	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return nil, "", 0, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.AuthUser{
		Email:    email,
		Password: hash,
		Role:     role,
	}

	userID, err := s.users.CreateWithProfile(ctx, user, strings.TrimSpace(req.Name), deptID)
	if err != nil {
		return nil, "", 0, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(userID, user.Email, string(role))
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userId", userID).Str("role", string(role)).Msg("User registered")

	return &dto.AuthUserData{
		ID:    userID,
		Email: user.Email,
		Role:  string(role),
		Name:  strings.TrimSpace(req.Name),
	}, token, expiresIn, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password produce the same error on purpose.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthUserData, string, int64, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	profile, err := s.users.GetMergedProfile(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", 0, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")

	return &dto.AuthUserData{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
		Name:  profile.Name,
	}, token, expiresIn, nil
}

// CurrentUser returns the merged identity+profile view for verified claims.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64, role models.Role) (*models.MergedProfile, error) {
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	profile, err := s.users.GetMergedProfile(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
