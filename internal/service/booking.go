package service

import (
	"fmt"
	"time"

	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BookingService handles the calendar read model of a studio
type BookingService struct {
	bookings  repository.BookingRepositoryInterface
	validator *validator.Validate
}

// NewBookingService creates a new booking service
func NewBookingService(bookings repository.BookingRepositoryInterface, validator *validator.Validate) *BookingService {
	return &BookingService{
		bookings:  bookings,
		validator: validator,
	}
}

// CreateBookingRequest represents the data needed to create a booking
type CreateBookingRequest struct {
	CustomerName  string    `json:"customer_name" validate:"required,max=200"`
	CustomerEmail string    `json:"customer_email" validate:"omitempty,email,max=255"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	EndsAt        time.Time `json:"ends_at" validate:"required"`
	Status        *string   `json:"status" example:"confirmed"` // Optional: defaults to "confirmed". Valid values: pending, confirmed, cancelled
}

// BookingRangeRequest bounds the calendar window. Zero values default to the
// current week.
type BookingRangeRequest struct {
	From time.Time `json:"from" form:"from"`
	To   time.Time `json:"to" form:"to"`
}

// BookingResponse represents the response data for a booking
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	StartsAt      string    `json:"starts_at"`
	EndsAt        string    `json:"ends_at"`
	Status        string    `json:"status"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatedAt     string    `json:"created_at"`
}

// Create records a booking in the caller's active studio
func (s *BookingService) Create(claims *auth.SessionClaims, req *CreateBookingRequest) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !auth.CanManageBookings(claims) {
		return nil, apperrors.ErrManagerRequired
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, apperrors.ErrNotTenantMember
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	status := models.BookingStatusConfirmed
	if req.Status != nil {
		status = models.BookingStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be one of pending, confirmed, cancelled")
		}
	}

	booking := &models.Booking{
		TenantID:      tenantID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Status:        status,
		CreatedBy:     userID,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// ListRange returns the bookings of the active studio inside the window,
// defaulting to the current week when no bounds are given
func (s *BookingService) ListRange(claims *auth.SessionClaims, req *BookingRangeRequest) ([]BookingResponse, error) {
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, apperrors.ErrNotTenantMember
	}

	from, to := req.From, req.To
	if from.IsZero() || to.IsZero() {
		from, to = currentWeek(time.Now())
	}
	if !to.After(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	bookings, err := s.bookings.GetByTenantAndRange(tenantID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *toBookingResponse(&bookings[i]))
	}
	return responses, nil
}

// currentWeek returns the Monday 00:00 to next-Monday 00:00 window around now
func currentWeek(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	year, month, day := now.AddDate(0, 0, -(weekday - 1)).Date()
	monday := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return monday, monday.AddDate(0, 0, 7)
}

func toBookingResponse(booking *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID,
		TenantID:      booking.TenantID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		StartsAt:      booking.StartsAt.Format(time.RFC3339),
		EndsAt:        booking.EndsAt.Format(time.RFC3339),
		Status:        string(booking.Status),
		CreatedBy:     booking.CreatedBy,
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
	}
}
