package services

import (
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/auth"
)

// Services bundles the business-logic layer.
type Services struct {
	AuthService       *AuthService
	StudentService    *StudentService
	TeacherService    *TeacherService
	AdminService      *AdminService
	DepartmentService *DepartmentService
	CourseService     *CourseService
	EnrollmentService *EnrollmentService
}

// NewServices wires all services onto the repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.DepartmentRepository,
			jwtService,
			logger,
		),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.UserRepository,
			repos.DepartmentRepository,
			logger,
		),
		TeacherService: NewTeacherService(
			repos.TeacherRepository,
			repos.UserRepository,
			repos.DepartmentRepository,
			repos.CourseRepository,
			logger,
		),
		AdminService: NewAdminService(
			repos.AdminRepository,
			logger,
		),
		DepartmentService: NewDepartmentService(
			repos.DepartmentRepository,
			logger,
		),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.DepartmentRepository,
			repos.TeacherRepository,
			logger,
		),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository,
			repos.CourseRepository,
			logger,
		),
	}
}
