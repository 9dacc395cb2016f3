package models

import (
	"github.com/google/uuid"
)

// TenantMember links a profile to a tenant with a role. The composite unique
// index enforces at most one active membership per (user, tenant) pair.
type TenantMember struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_tenant_members_user_tenant" validate:"required"`
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_tenant_members_user_tenant;index" validate:"required"`
	RoleID   uuid.UUID `json:"role_id" gorm:"type:uuid;not null" validate:"required"`

	// Relationships
	User   Profile `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tenant Tenant  `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Role   Role    `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for TenantMember
func (TenantMember) TableName() string {
	return "tenant_members"
}
