package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// AuthController handles registration, login, logout and the current user.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// setSessionCookie attaches the session token as an http-only cookie so
// browser clients never touch the token from script.
func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
}

// Register handles account creation
// @Summary Register a new account
// @Description Creates an identity plus its role profile and signs the caller in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AuthUserData} "Account created"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate email"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, token, expiresIn, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, token, int(expiresIn))
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "Registration successful"))
}

// Login handles credential verification
// @Summary Log in
// @Description Verifies credentials and starts a cookie session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthUserData} "Logged in"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, token, expiresIn, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, token, int(expiresIn))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, "Login successful"))
}

// Logout clears the session cookie
// @Summary Log out
// @Description Clears the session cookie; the token itself simply expires
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logout successful"))
}

// Me returns the authenticated caller's merged profile
// @Summary Get current user
// @Description Returns the identity merged with its role profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.MergedProfile} "Current user"
// @Failure 401 {object} dto.APIResponse "Not authenticated"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)
	role, _ := middleware.UserRole(ctx)

	profile, err := c.authService.CurrentUser(ctx, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, ""))
}
