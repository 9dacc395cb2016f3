package testutils

import (
	"fmt"
	"time"

	"studio-booking-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     fmt.Sprintf("usuario-%s@estudio.com", id.String()[:8]),
		FirstName: "Ana",
		LastName:  "García",
		Phone:     "+34 600 000 000",
	}
}

// WithEmail sets a custom email for the profile
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	profile := f.Create()
	profile.Email = email
	return profile
}

// WithPassword sets a bcrypt hash of the given password
func (f *ProfileFactory) WithPassword(password string) *models.Profile {
	profile := f.Create()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	profile.PasswordHash = string(hash)
	return profile
}

// WithActiveTenant points the profile at an active studio and role
func (f *ProfileFactory) WithActiveTenant(tenantID, roleID uuid.UUID) *models.Profile {
	profile := f.Create()
	profile.ActiveTenantID = &tenantID
	profile.ActiveRoleID = &roleID
	return profile
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Estudio Luna",
		Slug: "estudio-luna-" + id.String()[:8],
	}
}

// WithName sets a custom name and slug for the tenant
func (f *TenantFactory) WithName(name, slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	tenant.Slug = slug
	return tenant
}

// MembershipFactory provides methods to create test TenantMember data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership linking the given user, tenant and role
func (f *MembershipFactory) Create(userID, tenantID, roleID uuid.UUID) *models.TenantMember {
	return &models.TenantMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:   userID,
		TenantID: tenantID,
		RoleID:   roleID,
	}
}

// InvitationFactory provides methods to create test TenantInvitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending invitation for the given tenant
func (f *InvitationFactory) Create(tenantID, roleID, invitedBy uuid.UUID) *models.TenantInvitation {
	id := uuid.New()
	return &models.TenantInvitation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:  tenantID,
		Email:     fmt.Sprintf("invitada-%s@estudio.com", id.String()[:8]),
		RoleID:    roleID,
		InvitedBy: invitedBy,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
}

// Expired creates an invitation whose expiry is already in the past
func (f *InvitationFactory) Expired(tenantID, roleID, invitedBy uuid.UUID) *models.TenantInvitation {
	invitation := f.Create(tenantID, roleID, invitedBy)
	invitation.ExpiresAt = time.Now().Add(-time.Hour)
	return invitation
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a one-hour confirmed booking starting at the given time
func (f *BookingFactory) Create(tenantID, createdBy uuid.UUID, startsAt time.Time) *models.Booking {
	return &models.Booking{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:     tenantID,
		CustomerName: "María Pérez",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(time.Hour),
		Status:       models.BookingStatusConfirmed,
		CreatedBy:    createdBy,
	}
}

// WithStatus sets a custom status on the booking
func (f *BookingFactory) WithStatus(tenantID, createdBy uuid.UUID, startsAt time.Time, status models.BookingStatus) *models.Booking {
	booking := f.Create(tenantID, createdBy, startsAt)
	booking.Status = status
	return booking
}

// FactorySet groups all factories for convenience
type FactorySet struct {
	Profile    *ProfileFactory
	Tenant     *TenantFactory
	Membership *MembershipFactory
	Invitation *InvitationFactory
	Booking    *BookingFactory
}

// NewFactorySet creates a FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Profile:    NewProfileFactory(),
		Tenant:     NewTenantFactory(),
		Membership: NewMembershipFactory(),
		Invitation: NewInvitationFactory(),
		Booking:    NewBookingFactory(),
	}
}
