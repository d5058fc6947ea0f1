package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// TeacherController handles teacher listing and self-service endpoints.
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// GetAll lists teachers
// @Summary List teachers
// @Description Lists teachers, optionally filtered by department
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param dept_id query int false "Filter by department"
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers"
// @Router /teachers [get]
func (c *TeacherController) GetAll(ctx *gin.Context) {
	var deptID *int64
	if raw := ctx.Query("dept_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "dept_id must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		deptID = &id
	}

	teachers, err := c.teacherService.GetAll(ctx, deptID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teachers, ""))
}

// GetByID retrieves one teacher
// @Summary Get teacher by ID
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacher, err := c.teacherService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher, ""))
}

// GetProfile retrieves the caller's teacher profile
// @Summary Get own teacher profile
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Profile"
// @Router /teachers/me/profile [get]
func (c *TeacherController) GetProfile(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	teacher, err := c.teacherService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher, ""))
}

// GetMyCourses lists the courses the caller teaches
// @Summary List own courses
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses"
// @Router /teachers/me/courses [get]
func (c *TeacherController) GetMyCourses(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	courses, err := c.teacherService.GetCourses(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// UpdateProfile applies a sparse update to the caller's profile
// @Summary Update own teacher profile
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Profile updated"
// @Router /teachers/me [put]
func (c *TeacherController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	userID, _ := middleware.UserID(ctx)
	if err := c.teacherService.UpdateProfile(ctx, userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile updated"))
}

// Delete removes a teacher account by ID
// @Summary Delete a teacher
// @Description Admin-only removal of a teacher account; their courses remain unassigned
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse "Teacher deleted"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *TeacherController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.teacherService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Teacher deleted"))
}
