package repository

import (
	"errors"
	"strings"
	"time"

	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvitationRepository handles database operations for tenant invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Upsert inserts or replaces the invitation keyed by (tenant_id, email).
// On conflict the token, role, inviter, expiry and accepted_at are
// overwritten; the identity key never changes. The returned row is re-read so
// the caller always sees the token actually stored.
func (r *InvitationRepository) Upsert(invitation *models.TenantInvitation) (*models.TenantInvitation, error) {
	invitation.Email = strings.ToLower(invitation.Email)
	if invitation.Token == uuid.Nil {
		invitation.Token = uuid.New()
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"role_id", "invited_by", "token", "expires_at", "accepted_at", "updated_at",
		}),
	}).Create(invitation).Error
	if err != nil {
		return nil, err
	}

	return r.GetByTenantAndEmail(invitation.TenantID, invitation.Email)
}

// GetByToken retrieves an invitation by its token, with tenant and role
func (r *InvitationRepository) GetByToken(token uuid.UUID) (*models.TenantInvitation, error) {
	var invitation models.TenantInvitation
	err := r.db.
		Preload("Tenant").
		Preload("Role").
		First(&invitation, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

// GetByTenantAndEmail retrieves the invitation for the natural key
func (r *InvitationRepository) GetByTenantAndEmail(tenantID uuid.UUID, email string) (*models.TenantInvitation, error) {
	var invitation models.TenantInvitation
	err := r.db.First(&invitation, "tenant_id = ? AND email = ?", tenantID, strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

// GetPendingByTenant retrieves invitations that are neither accepted nor
// expired for a tenant
func (r *InvitationRepository) GetPendingByTenant(tenantID uuid.UUID, now time.Time) ([]models.TenantInvitation, error) {
	var invitations []models.TenantInvitation
	err := r.db.
		Preload("Role").
		Where("tenant_id = ? AND accepted_at IS NULL AND expires_at > ?", tenantID, now).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}
