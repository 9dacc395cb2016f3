package auth

import (
	"testing"

	apperrors "studio-booking-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPIssueAndVerify(t *testing.T) {
	store := NewOTPStore()

	code, err := store.Issue("ana@estudio.com")
	require.NoError(t, err)
	assert.Len(t, code, otpLength)

	// email comparison is case-insensitive
	assert.NoError(t, store.Verify("Ana@Estudio.com", code))

	// codes are single use
	assert.ErrorIs(t, store.Verify("ana@estudio.com", code), apperrors.ErrInvalidOTP)
}

func TestOTPVerifyWrongCode(t *testing.T) {
	store := NewOTPStore()

	_, err := store.Issue("ana@estudio.com")
	require.NoError(t, err)

	assert.ErrorIs(t, store.Verify("ana@estudio.com", "000000"), apperrors.ErrInvalidOTP)
}

func TestOTPResendThrottle(t *testing.T) {
	store := NewOTPStore()

	_, err := store.Issue("ana@estudio.com")
	require.NoError(t, err)

	_, err = store.Issue("ana@estudio.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "for security purposes")
}

func TestOTPUnknownEmail(t *testing.T) {
	store := NewOTPStore()
	assert.ErrorIs(t, store.Verify("nadie@estudio.com", "123456"), apperrors.ErrInvalidOTP)
}
