package handlers

import (
	"net/http"

	"studio-booking-backend/internal/auth"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for the team view
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetEmployees lists the members of the active studio
// @Summary List studio employees
// @Tags team
// @Produce json
// @Success 200 {array} service.EmployeeResponse "Members of the active studio"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "No active studio"
// @Security BearerAuth
// @Router /team/employees [get]
func (h *TeamHandler) GetEmployees(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	employees, err := h.teamService.GetTenantEmployees(claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}
