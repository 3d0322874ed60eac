package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-store/config"
	"food-store/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 7,
		"email":   "ana@example.com",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)
	return signed
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	router := gin.New()
	router.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("user_role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	router.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func get(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newAuthTestRouter()
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "").Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newAuthTestRouter()
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "Token abc").Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := newAuthTestRouter()
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "Bearer not.a.jwt").Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router := newAuthTestRouter()
	token := signTestToken(t, models.RoleClient)

	rec := get(router, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	assert.Contains(t, rec.Body.String(), `"role":"client"`)
}

func TestAdminMiddlewareRejectsClient(t *testing.T) {
	router := newAuthTestRouter()
	token := signTestToken(t, models.RoleClient)
	assert.Equal(t, http.StatusForbidden, get(router, "/admin", "Bearer "+token).Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	router := newAuthTestRouter()
	token := signTestToken(t, models.RoleAdmin)
	assert.Equal(t, http.StatusOK, get(router, "/admin", "Bearer "+token).Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router := newAuthTestRouter()

	claims := jwt.MapClaims{
		"user_id": 7,
		"role":    models.RoleClient,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "Bearer "+signed).Code)
}
