package handlers

import (
	"net/http"

	"studio-booking-backend/internal/auth"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for studios
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// SwitchTenantRequest selects the studio to activate
type SwitchTenantRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
}

// CreateTenant creates a studio with the caller as admin
// @Summary Create a studio
// @Description Creates the studio, names the caller, inserts the admin
// @Description membership and activates the studio, in one transaction. The
// @Description response carries fresh tokens because the caller's claims
// @Description changed.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Studio data"
// @Success 201 {object} service.SessionResponse "Studio created, new session"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.tenantService.CreateTenantWithAdmin(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetMyTenants lists the caller's studios
// @Summary List my studios
// @Tags tenants
// @Produce json
// @Success 200 {array} service.TenantResponse "Studios the caller belongs to"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) GetMyTenants(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	tenants, err := h.tenantService.GetMyTenants(claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// SwitchTenant activates another studio for the caller
// @Summary Switch the active studio
// @Description Membership is required. The returned tokens carry the new
// @Description tenant claims; tokens minted before the switch keep the old
// @Description ones until refreshed.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body SwitchTenantRequest true "Target studio"
// @Success 200 {object} service.SessionResponse "New session for the studio"
// @Failure 400 {object} ErrorResponse "Invalid tenant id"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Security BearerAuth
// @Router /tenants/switch [post]
func (h *TenantHandler) SwitchTenant(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	var req SwitchTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID"})
		return
	}

	session, err := h.tenantService.SwitchActiveTenant(claims, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
