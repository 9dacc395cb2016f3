package repository

import (
	"time"

	"studio-booking-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	EmailExists(email string) (bool, error)
	Update(profile *models.Profile) error
	SetPassword(id uuid.UUID, passwordHash string) error
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	GetByUserID(userID uuid.UUID) ([]models.Tenant, error)
	SlugExists(slug string) (bool, error)
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Role, error)
	GetByName(name models.RoleName) (*models.Role, error)
	GetAll() ([]models.Role, error)
}

// MembershipRepositoryInterface defines the interface for tenant membership operations
type MembershipRepositoryInterface interface {
	Exists(userID, tenantID uuid.UUID) (bool, error)
	GetByUserAndTenant(userID, tenantID uuid.UUID) (*models.TenantMember, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.TenantMember, error)
	Delete(userID, tenantID uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Upsert(invitation *models.TenantInvitation) (*models.TenantInvitation, error)
	GetByToken(token uuid.UUID) (*models.TenantInvitation, error)
	GetByTenantAndEmail(tenantID uuid.UUID, email string) (*models.TenantInvitation, error)
	GetPendingByTenant(tenantID uuid.UUID, now time.Time) ([]models.TenantInvitation, error)
}

// BookingRepositoryInterface defines the interface for booking repository operations
type BookingRepositoryInterface interface {
	Create(booking *models.Booking) error
	GetByID(id uuid.UUID) (*models.Booking, error)
	GetByTenantAndRange(tenantID uuid.UUID, from, to time.Time) ([]models.Booking, error)
}

// OnboardingUpdate carries the profile fields written during invitation
// acceptance.
type OnboardingUpdate struct {
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash string
}

// OnboardingRepositoryInterface groups the multi-row workflows that must be
// atomic: they mirror the server-side procedures of the original system
// (create_new_tenant_with_admin, accept_invitation, switch_active_tenant and
// the direct-add branch of invite-employee), each executed in one database
// transaction.
type OnboardingRepositoryInterface interface {
	CreateTenantWithAdmin(tenant *models.Tenant, userID, adminRoleID uuid.UUID, firstName, lastName string) error
	DirectAdd(membership *models.TenantMember, invitation *models.TenantInvitation) error
	AcceptInvitation(token, userID uuid.UUID, update OnboardingUpdate, now time.Time) (*models.TenantInvitation, error)
	SwitchActiveTenant(userID, tenantID uuid.UUID) (*models.TenantMember, error)
}
