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

// TeacherService handles teacher listing, profile and account operations.
type TeacherService struct {
	teacherRepo    *repositories.TeacherRepository
	userRepo       *repositories.UserRepository
	departmentRepo *repositories.DepartmentRepository
	courseRepo     *repositories.CourseRepository
	logger         zerolog.Logger
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(
	teacherRepo *repositories.TeacherRepository,
	userRepo *repositories.UserRepository,
	departmentRepo *repositories.DepartmentRepository,
	courseRepo *repositories.CourseRepository,
	logger zerolog.Logger,
) *TeacherService {
	return &TeacherService{
		teacherRepo:    teacherRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
		logger:         logger,
	}
}

// GetAll lists teachers, optionally filtered by department.
func (s *TeacherService) GetAll(ctx context.Context, deptID *int64) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAll(ctx, deptID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// GetByID retrieves a single teacher.
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid teacher ID")
	}
	return s.teacherRepo.GetByID(ctx, id)
}

// GetProfile retrieves the caller's own teacher profile.
func (s *TeacherService) GetProfile(ctx context.Context, userID int64) (*models.Teacher, error) {
	return s.teacherRepo.GetProfile(ctx, userID)
}

// UpdateProfile applies a sparse update to the caller's teacher profile.
func (s *TeacherService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateTeacherRequest) error {
	if req.DepartmentID != nil {
		exists, err := s.departmentRepo.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return fmt.Errorf("error checking department: %w", err)
		}
		if !exists {
			return apperrors.ErrDepartmentNotFound
		}
	}

	return s.teacherRepo.Update(ctx, userID, req.Name, req.DepartmentID)
}

// GetCourses lists the courses assigned to the teacher.
func (s *TeacherService) GetCourses(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx, nil, &teacherID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving taught courses: %w", err)
	}
	return courses, nil
}

// Delete removes a teacher by ID on behalf of an admin. The target must
// actually be a teacher; admins cannot delete arbitrary identities here.
// Courses the teacher was assigned to remain with the reference cleared
// by the schema.
func (s *TeacherService) Delete(ctx context.Context, teacherID int64) error {
	if _, err := s.teacherRepo.GetByID(ctx, teacherID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, teacherID); err != nil {
		return err
	}
	s.logger.Info().Int64("teacherId", teacherID).Msg("Teacher removed by admin")
	return nil
}
