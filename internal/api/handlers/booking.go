package handlers

import (
	"net/http"
	"time"

	"studio-booking-backend/internal/auth"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for the booking calendar
type BookingHandler struct {
	bookingService service.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// ListBookings lists the bookings of a calendar window
// @Summary List bookings in a window
// @Description RFC3339 bounds; both default to the current week when absent.
// @Tags bookings
// @Produce json
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} service.BookingResponse "Bookings in the window"
// @Failure 400 {object} ErrorResponse "Malformed bounds"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	var req service.BookingRangeRequest
	var err error
	if raw := c.Query("from"); raw != "" {
		if req.From, err = time.Parse(time.RFC3339, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp"})
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		if req.To, err = time.Parse(time.RFC3339, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' timestamp"})
			return
		}
	}

	bookings, err := h.bookingService.ListRange(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking records a booking in the active studio
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body service.CreateBookingRequest true "Booking data"
// @Success 201 {object} service.BookingResponse "Booking created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not an admin or manager"
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrInvalidSession)
		return
	}

	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.Create(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}
