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

// OnboardingRepository executes the multi-row membership workflows in single
// database transactions. These were atomic server-side procedures in the
// system this service replaces; keeping them atomic here closes the
// partial-failure window between a membership insert and its audit
// invitation row.
type OnboardingRepository struct {
	db *gorm.DB
}

// NewOnboardingRepository creates a new onboarding repository
func NewOnboardingRepository(db *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

// CreateTenantWithAdmin creates the tenant, writes the founder's name onto
// their profile, inserts the admin membership and makes the new tenant the
// founder's active one.
func (r *OnboardingRepository) CreateTenantWithAdmin(tenant *models.Tenant, userID, adminRoleID uuid.UUID, firstName, lastName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}

		member := &models.TenantMember{
			UserID:   userID,
			TenantID: tenant.ID,
			RoleID:   adminRoleID,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"active_tenant_id": tenant.ID,
			"active_role_id":   adminRoleID,
		}
		if firstName != "" {
			updates["first_name"] = firstName
		}
		if lastName != "" {
			updates["last_name"] = lastName
		}
		return tx.Model(&models.Profile{}).Where("id = ?", userID).Updates(updates).Error
	})
}

// DirectAdd inserts the membership for an already-registered user and upserts
// the invitation row marked accepted for the audit trail, atomically.
func (r *OnboardingRepository) DirectAdd(membership *models.TenantMember, invitation *models.TenantInvitation) error {
	invitation.Email = strings.ToLower(invitation.Email)
	if invitation.Token == uuid.Nil {
		invitation.Token = uuid.New()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(membership).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"role_id", "invited_by", "accepted_at", "updated_at",
			}),
		}).Create(invitation).Error
	})
}

// AcceptInvitation links the authenticated user to the invited tenant, writes
// the onboarding profile fields, marks the invitation accepted and switches
// the user's active tenant, all in one transaction.
//
// A second call with the same token and user succeeds without further writes,
// so a client that lost the response can safely retry.
func (r *OnboardingRepository) AcceptInvitation(token, userID uuid.UUID, update OnboardingUpdate, now time.Time) (*models.TenantInvitation, error) {
	var invitation models.TenantInvitation

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invitation, "token = ?", token).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvitationNotFound
		}
		if err != nil {
			return err
		}

		var profile models.Profile
		if err := tx.First(&profile, "id = ?", userID).Error; err != nil {
			return err
		}
		if !strings.EqualFold(profile.Email, invitation.Email) {
			return apperrors.ErrEmailMismatch
		}

		if !invitation.IsValid(now) {
			// Retry of an acceptance that already went through.
			if invitation.AcceptedAt != nil {
				var count int64
				if err := tx.Model(&models.TenantMember{}).
					Where("user_id = ? AND tenant_id = ?", userID, invitation.TenantID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return nil
				}
			}
			return apperrors.ErrInvitationInvalid
		}

		member := &models.TenantMember{
			UserID:   userID,
			TenantID: invitation.TenantID,
			RoleID:   invitation.RoleID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "tenant_id"}},
			DoNothing: true,
		}).Create(member).Error; err != nil {
			return err
		}

		profileUpdates := map[string]interface{}{
			"first_name":       update.FirstName,
			"last_name":        update.LastName,
			"phone":            update.Phone,
			"active_tenant_id": invitation.TenantID,
			"active_role_id":   invitation.RoleID,
		}
		if update.PasswordHash != "" {
			profileUpdates["password_hash"] = update.PasswordHash
		}
		if err := tx.Model(&models.Profile{}).Where("id = ?", userID).Updates(profileUpdates).Error; err != nil {
			return err
		}

		invitation.AcceptedAt = &now
		return tx.Model(&models.TenantInvitation{}).
			Where("id = ?", invitation.ID).
			Update("accepted_at", now).Error
	})
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// SwitchActiveTenant verifies the membership and points the user's active
// tenant and role at it. Callers must mint fresh session tokens afterwards;
// existing tokens keep the old claims until then.
func (r *OnboardingRepository) SwitchActiveTenant(userID, tenantID uuid.UUID) (*models.TenantMember, error) {
	var member models.TenantMember

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&member, "user_id = ? AND tenant_id = ?", userID, tenantID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotTenantMember
		}
		if err != nil {
			return err
		}

		return tx.Model(&models.Profile{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"active_tenant_id": tenantID,
			"active_role_id":   member.RoleID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}
