package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// CourseService handles course catalog operations.
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	departmentRepo *repositories.DepartmentRepository
	teacherRepo    *repositories.TeacherRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	departmentRepo *repositories.DepartmentRepository,
	teacherRepo *repositories.TeacherRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
		teacherRepo:    teacherRepo,
		logger:         logger,
	}
}

// checkReferences verifies the department and teacher a course points at.
func (s *CourseService) checkReferences(ctx context.Context, deptID, teacherID *int64) error {
	if deptID != nil {
		exists, err := s.departmentRepo.Exists(ctx, *deptID)
		if err != nil {
			return fmt.Errorf("error checking department: %w", err)
		}
		if !exists {
			return apperrors.ErrDepartmentNotFound
		}
	}

	if teacherID != nil {
		if _, err := s.teacherRepo.GetByID(ctx, *teacherID); err != nil {
			return err
		}
	}

	return nil
}

// GetAll lists courses, optionally filtered by department or teacher.
func (s *CourseService) GetAll(ctx context.Context, filter *dto.CourseListFilter) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx, filter.DepartmentID, filter.TeacherID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetByID retrieves a course by ID.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}
	return s.courseRepo.GetByID(ctx, id)
}

// Create adds a new course to the catalog.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	if err := s.checkReferences(ctx, req.DepartmentID, req.TeacherID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		TeacherID:    req.TeacherID,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", id).Str("name", course.Name).Msg("Course created")
	return s.courseRepo.GetByID(ctx, id)
}

// Update applies a sparse update to a course.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}

	if err := s.checkReferences(ctx, req.DepartmentID, req.TeacherID); err != nil {
		return err
	}

	return s.courseRepo.Update(ctx, id, req.Name, req.Description, req.DepartmentID, req.TeacherID)
}

// Delete removes a course and, through the schema, its enrollments.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}
