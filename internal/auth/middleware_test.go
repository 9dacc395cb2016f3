package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-booking-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := NewSessionService("test-secret", time.Hour, time.Hour)
	require.NoError(t, err)
	mw := NewMiddleware(svc)

	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		claims, _ := ClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	router.GET("/admin", mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, svc
}

func issueToken(t *testing.T, svc *SessionService, role models.RoleName, withTenant bool) string {
	t.Helper()
	profile := &models.Profile{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "ana@estudio.com",
	}
	if withTenant {
		tenantID := uuid.New()
		profile.ActiveTenantID = &tenantID
	}
	pair, err := svc.IssueTokenPair(profile, &models.Role{Name: role})
	require.NoError(t, err)
	return pair.AccessToken
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)
	recorder := doRequest(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Missing Authorization header")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)
	recorder := doRequest(router, "/me", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t)
	recorder := doRequest(router, "/me", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Unauthorized: invalid session")
}

func TestRequireAuthValidToken(t *testing.T) {
	router, svc := setupAuthRouter(t)
	token := issueToken(t, svc, models.RoleEmployee, true)
	recorder := doRequest(router, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "employee")
}

func TestRequireAdmin(t *testing.T) {
	router, svc := setupAuthRouter(t)

	t.Run("admin with tenant passes", func(t *testing.T) {
		token := issueToken(t, svc, models.RoleAdmin, true)
		recorder := doRequest(router, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		token := issueToken(t, svc, models.RoleEmployee, true)
		recorder := doRequest(router, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "solo los admins pueden invitar empleados")
	})

	t.Run("admin without active tenant is forbidden", func(t *testing.T) {
		token := issueToken(t, svc, models.RoleAdmin, false)
		recorder := doRequest(router, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
