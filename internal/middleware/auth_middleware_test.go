package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemumsa/backend/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, exp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "kemumsa.test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		id, ok := SubjectID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id, "name": SubjectName(c)})
	})
	router.GET("/admin", m.JWTAuth(), m.RoleRequired(auth.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtService
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	token, _, err := jwtService.GenerateToken(7, "Jane Doe", auth.RoleMember)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, -time.Minute)

	token, _, err := jwtService.GenerateToken(7, "Jane Doe", auth.RoleMember)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	adminToken, _, err := jwtService.GenerateToken(1, "admin", auth.RoleAdmin)
	require.NoError(t, err)
	memberToken, _, err := jwtService.GenerateToken(2, "Jane", auth.RoleMember)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
