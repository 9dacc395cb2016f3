package auth

import (
	"studio-booking-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the JWT claims of a session token. TenantID and
// Role mirror the server-side active tenant/role of the profile at mint time;
// they are authoritative only until the next server-side claim mutation, after
// which the token must be refreshed.
type SessionClaims struct {
	UserID   string `json:"user_id" example:"6f1e1bc2-6f96-44c6-9e6f-6a86a2a3f001"`
	Email    string `json:"email" example:"ana@estudio.com"`
	TenantID string `json:"tenant_id,omitempty" example:"9adf0be1-33c5-4f5b-8f40-1af0a0a7d202"`
	Role     string `json:"role,omitempty" example:"admin"`
	jwt.RegisteredClaims
}

// RoleLabels maps role identifiers to the Spanish labels shown in the
// dashboard. "viewer" is a retired name still present in tokens minted before
// the rename; it displays as employee.
var RoleLabels = map[models.RoleName]string{
	models.RoleAdmin:    "Administrador",
	models.RoleManager:  "Manager",
	models.RoleEmployee: "Empleado",
	models.RoleViewer:   "Empleado",
}

// RoleFromClaims derives the tenant role from session claims, defaulting to
// employee when the claim is absent or unrecognized. Cheap and side-effect
// free; callers recompute it on every use.
func RoleFromClaims(claims *SessionClaims) models.RoleName {
	if claims == nil {
		return models.RoleEmployee
	}
	role := models.RoleName(claims.Role)
	if !role.IsValid() && role != models.RoleViewer {
		return models.RoleEmployee
	}
	if role == models.RoleViewer {
		return models.RoleEmployee
	}
	return role
}

// RoleLabel returns the display label for a raw role identifier. Unknown
// roles pass through unchanged.
func RoleLabel(role string) string {
	if label, ok := RoleLabels[models.RoleName(role)]; ok {
		return label
	}
	return role
}

// IsAdmin reports whether the claims carry admin-level access
func IsAdmin(claims *SessionClaims) bool {
	return RoleFromClaims(claims) == models.RoleAdmin
}

// CanManageBookings reports whether the claims allow creating bookings.
// Admins and managers can; employees only read the calendar.
func CanManageBookings(claims *SessionClaims) bool {
	role := RoleFromClaims(claims)
	return role == models.RoleAdmin || role == models.RoleManager
}
