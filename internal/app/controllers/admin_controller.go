package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// AdminController handles admin listing, profile and system statistics.
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetAll lists admins
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Admin} "Admins"
// @Router /admins [get]
func (c *AdminController) GetAll(ctx *gin.Context) {
	admins, err := c.adminService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admins, ""))
}

// GetByID retrieves one admin
// @Summary Get admin by ID
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Admin ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin, err := c.adminService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin, ""))
}

// GetProfile retrieves the caller's admin profile
// @Summary Get own admin profile
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Profile"
// @Router /admins/me/profile [get]
func (c *AdminController) GetProfile(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	admin, err := c.adminService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin, ""))
}

// UpdateProfile renames the caller's admin profile
// @Summary Update own admin profile
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAdminRequest true "New name"
// @Success 200 {object} dto.APIResponse "Profile updated"
// @Router /admins/me [put]
func (c *AdminController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	userID, _ := middleware.UserID(ctx)
	if err := c.adminService.UpdateProfile(ctx, userID, req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile updated"))
}

// GetStats returns system row counts
// @Summary System statistics
// @Description Row counts for students, teachers, courses, departments and enrollments
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.SystemStats} "Stats"
// @Router /admins/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.GetSystemStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
