package handlers

import (
	"net/http"

	"studio-booking-backend/internal/auth"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication and sessions
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RefreshRequest carries the opaque refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// EmailRequest carries a bare email address
type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// SignUp registers a new user
// @Summary Sign up with email and password
// @Description Register a new account. Passwords must be at least 8 characters.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.SignUpRequest true "Sign up data"
// @Success 201 {object} service.SessionResponse "Account created, session opened"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req service.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authService.SignUp(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// SignIn authenticates email and password
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.SignInRequest true "Credentials"
// @Success 200 {object} service.SessionResponse "Session opened"
// @Failure 401 {object} ErrorResponse "Invalid login credentials"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req service.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authService.SignIn(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SignOut invalidates the refresh token
// @Summary Sign out
// @Tags auth
// @Accept json
// @Produce json
// @Param token body RefreshRequest true "Refresh token to invalidate"
// @Success 200 {object} map[string]interface{} "Signed out"
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.authService.SignOut(req.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSession returns the profile behind the bearer token
// @Summary Get current session
// @Tags auth
// @Produce json
// @Success 200 {object} service.SessionResponse "Current session"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	session, err := h.authService.GetSession(claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Refresh rotates the refresh token and mints a new access token
// @Summary Refresh session
// @Description Exchange the refresh token for a new token pair. Claims are
// @Description re-read from the database, so tenant switches and invitation
// @Description acceptances become visible here.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body RefreshRequest true "Refresh token"
// @Success 200 {object} service.SessionResponse "New session"
// @Failure 401 {object} ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authService.RefreshSession(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ResetPassword issues a one-time reset code by mail
// @Summary Request a password reset code
// @Description Always returns 200 for unknown emails so the endpoint cannot
// @Description be used to probe for accounts.
// @Tags auth
// @Accept json
// @Produce json
// @Param email body EmailRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Code sent if the account exists"
// @Failure 429 {object} ErrorResponse "Resend throttle"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyOTP exchanges a reset code for a recovery session
// @Summary Verify a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param code body service.VerifyOTPRequest true "Email and 6-digit code"
// @Success 200 {object} service.SessionResponse "Recovery session"
// @Failure 400 {object} ErrorResponse "Wrong or expired code"
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req service.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authService.VerifyOTP(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateUser updates the current user's password
// @Summary Update the current user's credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param update body service.UpdatePasswordRequest true "New password"
// @Success 200 {object} map[string]interface{} "Password updated"
// @Failure 400 {object} ErrorResponse "Password too short"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/user [put]
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	var req service.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.UpdatePassword(claims, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckEmail reports whether an email is registered
// @Summary Check whether an email has an account
// @Tags auth
// @Accept json
// @Produce json
// @Param email body EmailRequest true "Email to check"
// @Success 200 {object} map[string]interface{} "exists flag"
// @Router /auth/check-email [post]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.authService.CheckEmailExists(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// GoogleStart redirects to the Google consent screen
// @Summary Start the Google OAuth flow
// @Tags auth
// @Produce json
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse "OAuth not configured"
// @Router /auth/google/start [get]
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	url, err := h.authService.GoogleAuthURL()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback finishes the Google OAuth flow
// @Summary Google OAuth callback
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} service.SessionResponse "Session opened"
// @Failure 400 {object} ErrorResponse "Missing code"
// @Failure 500 {object} ErrorResponse "Exchange failed"
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	session, err := h.authService.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
