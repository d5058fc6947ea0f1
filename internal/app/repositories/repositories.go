package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all data-access objects around the shared pool.
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	AdminRepository      *AdminRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates all repositories sharing a single pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		AdminRepository:      NewAdminRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
