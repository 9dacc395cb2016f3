package repository

import (
	"errors"
	"strings"

	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile. Email is normalized to lowercase.
func (r *ProfileRepository) Create(profile *models.Profile) error {
	profile.Email = strings.ToLower(profile.Email)
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by its lowercased email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// EmailExists reports whether a profile exists for the lowercased email
func (r *ProfileRepository) EmailExists(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Update saves all fields of a profile
func (r *ProfileRepository) Update(profile *models.Profile) error {
	profile.Email = strings.ToLower(profile.Email)
	return r.db.Save(profile).Error
}

// SetPassword updates only the password hash
func (r *ProfileRepository) SetPassword(id uuid.UUID, passwordHash string) error {
	result := r.db.Model(&models.Profile{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
