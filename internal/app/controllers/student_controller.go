package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// StudentController handles student listing and self-service endpoints.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAll lists students
// @Summary List students
// @Description Lists students, optionally filtered by department or course enrollment
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param dept_id query int false "Filter by department"
// @Param course_id query int false "Filter by enrolled course (wins over dept_id)"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Router /students [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	var filter dto.StudentListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	students, err := c.studentService.GetAll(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}

// GetByID retrieves one student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// GetProfile retrieves the caller's student profile
// @Summary Get own student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile"
// @Router /students/me/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	student, err := c.studentService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// UpdateProfile applies a sparse update to the caller's profile
// @Summary Update own student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Profile updated"
// @Failure 400 {object} dto.APIResponse "No fields to update"
// @Router /students/me [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	userID, _ := middleware.UserID(ctx)
	if err := c.studentService.UpdateProfile(ctx, userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile updated"))
}

// DeleteAccount removes the caller's account
// @Summary Delete own account
// @Description Removes the identity; profile and enrollments cascade away
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Account deleted"
// @Router /students/me [delete]
func (c *StudentController) DeleteAccount(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	if err := c.studentService.DeleteAccount(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Account deleted"))
}
