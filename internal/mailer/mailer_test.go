package mailer

import (
	"testing"

	"studio-booking-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

// TestExpiryLineFollowsConfiguredWindow tests that the mail copy reflects
// the configured invitation expiry instead of a fixed number
func TestExpiryLineFollowsConfiguredWindow(t *testing.T) {
	assert.Equal(t, "El enlace expira en 7 días.", expiryLine(7))
	assert.Equal(t, "El enlace expira en 14 días.", expiryLine(14))
	assert.Equal(t, "El enlace expira en 1 día.", expiryLine(1))
}

// TestNewCarriesInvitationExpiry tests that the mailer picks the window up
// from configuration
func TestNewCarriesInvitationExpiry(t *testing.T) {
	m := New(&config.Config{InvitationExpiryDays: 14})
	assert.Equal(t, 14, m.expiryDays)
}

// TestDisabledMailerSkipsDelivery tests that an unconfigured relay logs
// instead of dialing
func TestDisabledMailerSkipsDelivery(t *testing.T) {
	m := New(&config.Config{InvitationExpiryDays: 7})
	assert.NoError(t, m.SendInvitation("ana@estudio.com", "Estudio Luna", "https://panel.example.com/accept-invite?token=x"))
	assert.NoError(t, m.SendPasswordReset("ana@estudio.com", "123456"))
}
