package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test.app",
	})
}

func newProtectedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{m.Authenticate()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		role, _ := UserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthenticateMissingToken(t *testing.T) {
	router := newProtectedRouter(NewAuthMiddleware(newTestJWTService()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
}

func TestAuthenticateWithCookie(t *testing.T) {
	jwtService := newTestJWTService()
	router := newProtectedRouter(NewAuthMiddleware(jwtService))

	token, _, err := jwtService.GenerateToken(5, "s@example.com", "student")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
	assert.Contains(t, w.Body.String(), `"role":"student"`)
}

func TestAuthenticateWithBearerHeader(t *testing.T) {
	jwtService := newTestJWTService()
	router := newProtectedRouter(NewAuthMiddleware(jwtService))

	token, _, err := jwtService.GenerateToken(9, "t@example.com", "teacher")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"teacher"`)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "test.app",
	})
	router := newProtectedRouter(NewAuthMiddleware(newTestJWTService()))

	token, _, err := expired.GenerateToken(5, "s@example.com", "student")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestAuthenticateRejectsUnknownRole(t *testing.T) {
	jwtService := newTestJWTService()
	router := newProtectedRouter(NewAuthMiddleware(jwtService))

	token, _, err := jwtService.GenerateToken(5, "s@example.com", "superuser")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A gate reached without verified claims must answer 403, not 401.
func TestRequireRolesWithoutClaims(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService())
	router := gin.New()
	router.GET("/admin-only", m.RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_006")
}

func TestRequireRolesAllows(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService)
	router := newProtectedRouter(m, m.RequireRoles(models.RoleAdmin, models.RoleTeacher))

	token, _, err := jwtService.GenerateToken(3, "a@example.com", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesForbidsStudent(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService)
	router := newProtectedRouter(m, m.RequireRoles(models.RoleAdmin))

	token, _, err := jwtService.GenerateToken(5, "s@example.com", "student")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_006")
}
