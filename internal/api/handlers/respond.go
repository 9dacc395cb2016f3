package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "studio-booking-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps a service error to its HTTP status. Raw messages go on
// the wire; the dashboard translation layer matches on them.
func respondError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError

	switch {
	case apperrors.IsAuthentication(err) ||
		errors.Is(err, apperrors.ErrInvalidRefreshToken) ||
		errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvitationInvalid) ||
		errors.Is(err, apperrors.ErrEmailMismatch) ||
		errors.Is(err, apperrors.ErrInvalidOTP) ||
		errors.Is(err, apperrors.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case strings.HasPrefix(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
