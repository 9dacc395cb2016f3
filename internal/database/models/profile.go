package models

import (
	"github.com/google/uuid"
)

// Profile represents an authenticated user. Email is stored lowercased.
// PasswordHash is empty while the user is passwordless (invited via
// magic-link and not yet onboarded).
//
// ActiveTenantID and ActiveRoleID are the server-side source of the
// tenant_id/role session claims: tokens minted after a mutation of these
// columns carry the new values, tokens minted before keep the old ones until
// refreshed.
type Profile struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName      string     `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName       string     `json:"last_name" gorm:"size:100" validate:"max=100"`
	Phone          string     `json:"phone" gorm:"size:30" validate:"max=30"`
	PasswordHash   string     `json:"-" gorm:"size:100"`
	ActiveTenantID *uuid.UUID `json:"active_tenant_id,omitempty" gorm:"type:uuid;index"`
	ActiveRoleID   *uuid.UUID `json:"active_role_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Memberships []TenantMember `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// FullName returns the display name for the profile
func (p *Profile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Email
	}
}

// HasPassword reports whether the profile has completed credential setup
func (p *Profile) HasPassword() bool {
	return p.PasswordHash != ""
}
