package auth

import (
	"net/http"
	"strings"

	apperrors "studio-booking-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by the middleware
const (
	ContextClaims   = "session_claims"
	ContextUserID   = "user_id"
	ContextEmail    = "email"
	ContextTenantID = "tenant_id"
	ContextRole     = "role"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	sessions *SessionService
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(sessions *SessionService) *Middleware {
	return &Middleware{sessions: sessions}
}

// RequireAuth validates the bearer token and sets the session claims on the
// request context. The claims are trusted as-is: the token signature is the
// only boundary, no role or tenant is re-derived here.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RequireAdmin validates the bearer token and rejects callers whose claims do
// not carry an active tenant with the admin role.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if claims.TenantID == "" || !IsAdmin(claims) {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminRequired.Error()})
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func (m *Middleware) claimsFromRequest(c *gin.Context) (*SessionClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, apperrors.ErrMissingAuthHeader
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, apperrors.ErrInvalidSession
	}

	claims, err := m.sessions.ValidateJWT(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}
	return claims, nil
}

func setClaims(c *gin.Context, claims *SessionClaims) {
	c.Set(ContextClaims, claims)
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextTenantID, claims.TenantID)
	c.Set(ContextRole, claims.Role)
}

// ClaimsFromContext returns the session claims set by the middleware
func ClaimsFromContext(c *gin.Context) (*SessionClaims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*SessionClaims)
	return claims, ok
}
