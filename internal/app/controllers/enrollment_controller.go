package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// EnrollmentController handles the enrollment ledger endpoints.
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// GetAll lists the full ledger
// @Summary List all enrollments
// @Description Admin view of every enrollment with student and course names, newest first
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EnrollmentRecord} "Enrollments"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAll(ctx *gin.Context) {
	records, err := c.enrollmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}

// GetMyCourses lists the caller's enrolled courses
// @Summary List own enrolled courses
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EnrolledCourse} "Enrolled courses"
// @Router /enrollments/my-courses [get]
func (c *EnrollmentController) GetMyCourses(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	courses, err := c.enrollmentService.GetMyCourses(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// Enroll records the caller in a course
// @Summary Enroll in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrolled"
// @Failure 400 {object} dto.APIResponse "Already enrolled"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /enrollments/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	userID, _ := middleware.UserID(ctx)
	enrollment, err := c.enrollmentService.Enroll(ctx, userID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment, "Enrolled"))
}

// Unenroll removes the caller from a course
// @Summary Unenroll from a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Unenrolled"
// @Failure 404 {object} dto.APIResponse "Enrollment not found"
// @Router /enrollments/unenroll/{courseId} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, _ := middleware.UserID(ctx)
	if err := c.enrollmentService.Unenroll(ctx, userID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Unenrolled"))
}
