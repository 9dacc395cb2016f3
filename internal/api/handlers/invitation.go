package handlers

import (
	"net/http"
	"net/url"

	"studio-booking-backend/internal/auth"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler handles HTTP requests for invitations
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// inviteBody is bound loosely so missing fields produce the endpoint's own
// error message instead of a binding error.
type inviteBody struct {
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
}

// InviteEmployee issues an invitation into the caller's active studio
// @Summary Invite an employee
// @Description Admin-only. Emails with an existing account are added to the
// @Description studio directly (method "direct"); unknown emails receive a
// @Description magic-link mail (method "email"). The redirect origin is the
// @Description Origin header, then the Referer host, then a configured
// @Description default.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invite body service.InviteRequest true "Email and role"
// @Success 200 {object} service.InviteResponse "Invitation issued"
// @Failure 400 {object} ErrorResponse "Se requiere email y roleId"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 409 {object} ErrorResponse "Este usuario ya es miembro del estudio"
// @Failure 500 {object} ErrorResponse "Storage or mail failure"
// @Security BearerAuth
// @Router /invite-employee [post]
func (h *InvitationHandler) InviteEmployee(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	var body inviteBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.RoleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere email y roleId"})
		return
	}

	roleID, err := uuid.Parse(body.RoleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	resp, err := h.invitationService.Invite(claims, &service.InviteRequest{
		Email:  body.Email,
		RoleID: roleID,
	}, redirectOrigin(c))
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Este usuario ya es miembro del estudio"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// redirectOrigin resolves where the magic link should land: the Origin
// header, else the scheme+host of the Referer. Empty means the configured
// default applies downstream.
func redirectOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	if referer := c.GetHeader("Referer"); referer != "" {
		if u, err := url.Parse(referer); err == nil && u.Scheme != "" && u.Host != "" {
			return u.Scheme + "://" + u.Host
		}
	}
	return ""
}

// GetByToken returns the public invitation view
// @Summary Look up an invitation by token
// @Description Public. Unknown tokens are 404; stale invitations resolve
// @Description with is_valid=false so the page can explain why.
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token (UUID)"
// @Success 200 {object} service.InvitationInfoResponse "Invitation details"
// @Failure 400 {object} ErrorResponse "Malformed token"
// @Failure 404 {object} ErrorResponse "Unknown token"
// @Router /invitations/{token} [get]
func (h *InvitationHandler) GetByToken(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation token"})
		return
	}

	info, err := h.invitationService.GetByToken(token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Accept finishes onboarding for the authenticated caller
// @Summary Accept an invitation
// @Description Requires the magic-link session. Validates the password form,
// @Description then joins the caller to the studio, stores names and
// @Description credentials and marks the invitation accepted in one
// @Description transaction. Returns fresh tokens for the new membership.
// @Tags invitations
// @Accept json
// @Produce json
// @Param token path string true "Invitation token (UUID)"
// @Param form body service.AcceptInvitationRequest true "Onboarding form"
// @Success 200 {object} service.SessionResponse "Membership active, new session"
// @Failure 400 {object} ErrorResponse "Form invalid or invitation stale"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /invitations/{token}/accept [post]
func (h *InvitationHandler) Accept(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation token"})
		return
	}

	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.invitationService.Accept(claims, token, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetPending lists the open invitations of the active studio
// @Summary List pending invitations
// @Description Admin-only. Pending means not yet accepted and not expired.
// @Tags invitations
// @Produce json
// @Success 200 {array} service.PendingInvitationResponse "Pending invitations"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) GetPending(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	pending, err := h.invitationService.GetPending(claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}
