package repository

import (
	"errors"

	"studio-booking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for tenant memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Exists reports whether a membership links the user to the tenant
func (r *MembershipRepository) Exists(userID, tenantID uuid.UUID) (bool, error) {
	_, err := r.GetByUserAndTenant(userID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetByUserAndTenant retrieves the membership for a (user, tenant) pair
func (r *MembershipRepository) GetByUserAndTenant(userID, tenantID uuid.UUID) (*models.TenantMember, error) {
	var member models.TenantMember
	err := r.db.First(&member, "user_id = ? AND tenant_id = ?", userID, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTenantID retrieves all memberships of a tenant with profiles and roles
func (r *MembershipRepository) GetByTenantID(tenantID uuid.UUID) ([]models.TenantMember, error) {
	var members []models.TenantMember
	err := r.db.
		Preload("User").
		Preload("Role").
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Delete removes the membership for a (user, tenant) pair
func (r *MembershipRepository) Delete(userID, tenantID uuid.UUID) error {
	return r.db.Delete(&models.TenantMember{}, "user_id = ? AND tenant_id = ?", userID, tenantID).Error
}
