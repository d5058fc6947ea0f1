package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	adminController *controllers.AdminController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.Authenticate())

	authenticated.GET("/auth/me", authController.Me)

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.GetAll)

		studentOnly := students.Group("")
		studentOnly.Use(authMiddleware.RequireRoles(models.RoleStudent))
		{
			studentOnly.GET("/me/profile", studentController.GetProfile)
			studentOnly.PUT("/me", studentController.UpdateProfile)
			studentOnly.DELETE("/me", studentController.DeleteAccount)
		}

		students.GET("/:id", studentController.GetByID)
	}

	teachers := authenticated.Group("/teachers")
	{
		teachers.GET("", teacherController.GetAll)

		teacherOnly := teachers.Group("")
		teacherOnly.Use(authMiddleware.RequireRoles(models.RoleTeacher))
		{
			teacherOnly.GET("/me/profile", teacherController.GetProfile)
			teacherOnly.GET("/me/courses", teacherController.GetMyCourses)
			teacherOnly.PUT("/me", teacherController.UpdateProfile)
		}

		teachers.GET("/:id", teacherController.GetByID)
		teachers.DELETE("/:id", authMiddleware.RequireRoles(models.RoleAdmin), teacherController.Delete)
	}

	admins := authenticated.Group("/admins")
	admins.Use(authMiddleware.RequireRoles(models.RoleAdmin))
	{
		admins.GET("", adminController.GetAll)
		admins.GET("/me/profile", adminController.GetProfile)
		admins.GET("/stats", adminController.GetStats)
		admins.PUT("/me", adminController.UpdateProfile)
		admins.GET("/:id", adminController.GetByID)
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", departmentController.GetAll)
		departments.GET("/:id", departmentController.GetByID)

		departmentsAdmin := departments.Group("")
		departmentsAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
		{
			departmentsAdmin.POST("", departmentController.Create)
			departmentsAdmin.PUT("/:id", departmentController.Update)
			departmentsAdmin.DELETE("/:id", departmentController.Delete)
		}
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.GetAll)
		courses.GET("/:id", courseController.GetByID)

		coursesStaff := courses.Group("")
		coursesStaff.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		{
			coursesStaff.POST("", courseController.Create)
			coursesStaff.PUT("/:id", courseController.Update)
		}

		courses.DELETE("/:id", authMiddleware.RequireRoles(models.RoleAdmin), courseController.Delete)
	}

	enrollments := authenticated.Group("/enrollments")
	{
		enrollments.GET("", authMiddleware.RequireRoles(models.RoleAdmin), enrollmentController.GetAll)

		enrollmentsStudent := enrollments.Group("")
		enrollmentsStudent.Use(authMiddleware.RequireRoles(models.RoleStudent))
		{
			enrollmentsStudent.GET("/my-courses", enrollmentController.GetMyCourses)
			enrollmentsStudent.POST("/enroll", enrollmentController.Enroll)
			enrollmentsStudent.DELETE("/unenroll/:courseId", enrollmentController.Unenroll)
		}
	}
}
