package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations.
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// GetAll retrieves all departments.
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetByID retrieves a department by ID.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid department ID")
	}
	return s.departmentRepo.GetByID(ctx, id)
}

// Create adds a new department.
func (s *DepartmentService) Create(ctx context.Context, name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	id, err := s.departmentRepo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("departmentId", id).Str("name", name).Msg("Department created")
	return &models.Department{ID: id, Name: name}, nil
}

// Update renames a department.
func (s *DepartmentService) Update(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	return s.departmentRepo.Update(ctx, id, name)
}

// Delete removes a department. Members and courses keep existing with the
// department reference cleared.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("departmentId", id).Msg("Department deleted")
	return nil
}
