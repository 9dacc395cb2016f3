package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	apperrors "studio-booking-backend/internal/errors"
)

const (
	otpLength = 6
	otpTTL    = 15 * time.Minute

	// Minimum delay between two codes for the same email, mirroring the
	// "for security purposes" throttle of the original auth backend.
	otpResendDelay = time.Minute
)

type otpEntry struct {
	Code      string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// OTPStore issues and verifies the short numeric codes used by the password
// reset flow. Codes are single-use and expire after 15 minutes.
type OTPStore struct {
	mu      sync.Mutex
	entries map[string]*otpEntry
}

// NewOTPStore creates a new OTP store
func NewOTPStore() *OTPStore {
	return &OTPStore{entries: make(map[string]*otpEntry)}
}

// Issue generates a code for the email, replacing any previous one. Issuing
// again within the resend window is rejected.
func (s *OTPStore) Issue(email string) (string, error) {
	email = strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.entries[email]; ok && now.Sub(existing.IssuedAt) < otpResendDelay {
		return "", fmt.Errorf("for security purposes, you can only request this once every %d seconds", int(otpResendDelay.Seconds()))
	}

	code, err := generateNumericCode(otpLength)
	if err != nil {
		return "", err
	}

	s.entries[email] = &otpEntry{
		Code:      code,
		ExpiresAt: now.Add(otpTTL),
		IssuedAt:  now,
	}
	return code, nil
}

// Verify consumes the code for the email. Wrong, expired or missing codes
// all fail the same way.
func (s *OTPStore) Verify(email, code string) error {
	email = strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok || entry.Code != code {
		return apperrors.ErrInvalidOTP
	}
	delete(s.entries, email)

	if time.Now().After(entry.ExpiresAt) {
		return fmt.Errorf("otp expired")
	}
	return nil
}

func generateNumericCode(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		sb.WriteString(n.String())
	}
	return sb.String(), nil
}
