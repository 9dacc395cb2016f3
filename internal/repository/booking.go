package repository

import (
	"time"

	"studio-booking-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByTenantAndRange retrieves the bookings of a tenant overlapping the
// [from, to) window, ordered by start time
func (r *BookingRepository) GetByTenantAndRange(tenantID uuid.UUID, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("tenant_id = ? AND starts_at < ? AND ends_at > ?", tenantID, to, from).
		Order("starts_at").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
