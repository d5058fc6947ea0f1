package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// IdentityRemover deletes an identity row together with its dependents.
type IdentityRemover interface {
	Delete(ctx context.Context, userID int64) error
}

// StudentService handles student listing, profile and account operations.
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	userRepo       IdentityRemover
	departmentRepo *repositories.DepartmentRepository
	logger         zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	userRepo IdentityRemover,
	departmentRepo *repositories.DepartmentRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// GetAll lists students. The course filter wins when both are present.
func (s *StudentService) GetAll(ctx context.Context, filter *dto.StudentListFilter) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx, filter.DepartmentID, filter.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a single student.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}
	return s.studentRepo.GetByID(ctx, id)
}

// GetProfile retrieves the caller's own student profile.
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*models.Student, error) {
	return s.studentRepo.GetProfile(ctx, userID)
}

// UpdateProfile applies a sparse update to the caller's student profile.
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentRequest) error {
	if req.DepartmentID != nil {
		exists, err := s.departmentRepo.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return fmt.Errorf("error checking department: %w", err)
		}
		if !exists {
			return apperrors.ErrDepartmentNotFound
		}
	}

	return s.studentRepo.Update(ctx, userID, req.Name, req.DepartmentID)
}

// DeleteAccount removes the caller's identity; the profile and any
// enrollments cascade away with it.
func (s *StudentService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Msg("Student account deleted")
	return nil
}
