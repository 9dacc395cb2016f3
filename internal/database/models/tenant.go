package models

// Tenant represents a studio. It is created exclusively through the
// create-tenant-with-admin flow and never mutated directly afterwards.
type Tenant struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`

	// Relationships
	Members     []TenantMember     `json:"members,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Invitations []TenantInvitation `json:"invitations,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Bookings    []Booking          `json:"bookings,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
