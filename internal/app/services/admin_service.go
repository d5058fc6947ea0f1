package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// AdminStore is the admin persistence the service depends on.
type AdminStore interface {
	GetAll(ctx context.Context) ([]*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	UpdateName(ctx context.Context, id int64, name string) error
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
}

// AdminService handles admin listing, profile and system statistics.
type AdminService struct {
	adminRepo AdminStore
	logger    zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo AdminStore, logger zerolog.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// GetAll lists all admins.
func (s *AdminService) GetAll(ctx context.Context) ([]*models.Admin, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admins: %w", err)
	}
	return admins, nil
}

// GetByID retrieves a single admin.
func (s *AdminService) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid admin ID")
	}
	return s.adminRepo.GetByID(ctx, id)
}

// GetProfile retrieves the caller's own admin profile.
func (s *AdminService) GetProfile(ctx context.Context, userID int64) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, userID)
}

// UpdateProfile renames the caller's admin profile.
func (s *AdminService) UpdateProfile(ctx context.Context, userID int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	return s.adminRepo.UpdateName(ctx, userID, strings.TrimSpace(name))
}

// GetSystemStats returns the dashboard row counts.
func (s *AdminService) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	stats, err := s.adminRepo.GetSystemStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving system stats: %w", err)
	}
	return stats, nil
}
