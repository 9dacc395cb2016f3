package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantInvitation records an invite of an email address into a tenant.
//
// The (tenant_id, email) pair is the natural key: a second invite to the same
// email in the same tenant upserts the existing row (token and accepted_at
// reset, role and inviter overwritten) instead of duplicating it.
// AcceptedAt nil means pending; non-nil means accepted, including the
// instantaneous acceptance written for users added directly.
type TenantInvitation struct {
	BaseModel
	TenantID   uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_tenant_invitations_tenant_email" validate:"required"`
	Email      string     `json:"email" gorm:"not null;size:255;uniqueIndex:idx_tenant_invitations_tenant_email" validate:"required,email,max=255"`
	RoleID     uuid.UUID  `json:"role_id" gorm:"type:uuid;not null" validate:"required"`
	InvitedBy  uuid.UUID  `json:"invited_by" gorm:"type:uuid;not null" validate:"required"`
	Token      uuid.UUID  `json:"token" gorm:"type:uuid;uniqueIndex;not null"`
	ExpiresAt  time.Time  `json:"expires_at" gorm:"not null"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Role   Role   `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for TenantInvitation
func (TenantInvitation) TableName() string {
	return "tenant_invitations"
}

// BeforeCreate assigns the id and a fresh token
func (inv *TenantInvitation) BeforeCreate(tx *gorm.DB) error {
	if err := inv.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if inv.Token == uuid.Nil {
		inv.Token = uuid.New()
	}
	return nil
}

// IsValid reports whether the invitation can still be accepted: not yet
// accepted and not past its expiry window.
func (inv *TenantInvitation) IsValid(now time.Time) bool {
	return inv.AcceptedAt == nil && now.Before(inv.ExpiresAt)
}
