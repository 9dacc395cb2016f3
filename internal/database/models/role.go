package models

// RoleName identifies one of the closed set of tenant roles.
type RoleName string

const (
	RoleAdmin    RoleName = "admin"
	RoleManager  RoleName = "manager"
	RoleEmployee RoleName = "employee"

	// RoleViewer is a retired legacy name. It is never seeded; it only
	// appears in session claims minted before the rename and is displayed
	// as employee.
	RoleViewer RoleName = "viewer"
)

// IsValid checks if the RoleName is one of the seeded roles
func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Role is a row of the small closed role set seeded at migration time.
type Role struct {
	BaseModel
	Name RoleName `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
