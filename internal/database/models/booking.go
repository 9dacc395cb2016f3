package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus defines the lifecycle states of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the BookingStatus is valid
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a calendar entry scoped to a tenant, consumed by the dashboard
// calendar view.
type Booking struct {
	BaseModel
	TenantID      uuid.UUID     `json:"tenant_id" gorm:"type:uuid;not null;index:idx_bookings_tenant_starts" validate:"required"`
	CustomerName  string        `json:"customer_name" gorm:"not null;size:200" validate:"required,max=200"`
	CustomerEmail string        `json:"customer_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	StartsAt      time.Time     `json:"starts_at" gorm:"not null;index:idx_bookings_tenant_starts" validate:"required"`
	EndsAt        time.Time     `json:"ends_at" gorm:"not null" validate:"required"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'confirmed'"`
	CreatedBy     uuid.UUID     `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
