package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "studio-booking-backend"

// refreshTokenData stores the server-side state behind an opaque refresh token
type refreshTokenData struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenPair is the credential set handed to a client after any operation that
// mints or refreshes a session.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64  `json:"expiresIn" example:"3600"`
	RefreshToken string `json:"refreshToken"`
}

// SessionService mints and validates session tokens. Access tokens are HS256
// JWTs carrying the tenant/role claims; refresh tokens are opaque and tracked
// in an in-memory store, rotated on every use.
type SessionService struct {
	jwtSecret       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration

	refreshTokens map[string]*refreshTokenData
	tokenMutex    sync.RWMutex
}

// NewSessionService creates a new session service
func NewSessionService(jwtSecret string, accessTokenTTL, refreshTokenTTL time.Duration) (*SessionService, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	if accessTokenTTL <= 0 {
		accessTokenTTL = time.Hour
	}
	if refreshTokenTTL <= 0 {
		refreshTokenTTL = 30 * 24 * time.Hour
	}
	return &SessionService{
		jwtSecret:       []byte(jwtSecret),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		refreshTokens:   make(map[string]*refreshTokenData),
	}, nil
}

// IssueTokenPair mints an access token whose claims reflect the profile's
// current active tenant and role, plus a fresh refresh token.
func (s *SessionService) IssueTokenPair(profile *models.Profile, role *models.Role) (*TokenPair, error) {
	accessToken, err := s.generateJWT(profile, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &refreshTokenData{
		UserID:    profile.ID.String(),
		Email:     profile.Email,
		ExpiresAt: now.Add(s.refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &TokenPair{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
	}, nil
}

// ConsumeRefreshToken validates and invalidates a refresh token, returning
// the user id it belongs to. The caller re-reads the profile so the next
// access token picks up any claim mutation since the last mint.
func (s *SessionService) ConsumeRefreshToken(refreshToken string) (string, error) {
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()

	tokenData, exists := s.refreshTokens[refreshToken]
	if !exists {
		return "", apperrors.ErrInvalidRefreshToken
	}
	delete(s.refreshTokens, refreshToken)

	if time.Now().After(tokenData.ExpiresAt) {
		return "", apperrors.ErrRefreshTokenExpired
	}
	return tokenData.UserID, nil
}

// Invalidate drops a refresh token (sign-out). Unknown tokens are a no-op.
func (s *SessionService) Invalidate(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// ValidateJWT validates and parses an access token
func (s *SessionService) ValidateJWT(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *SessionService) generateJWT(profile *models.Profile, role *models.Role) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: profile.ID.String(),
		Email:  profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   profile.ID.String(),
		},
	}
	if profile.ActiveTenantID != nil {
		claims.TenantID = profile.ActiveTenantID.String()
	}
	if role != nil {
		claims.Role = string(role.Name)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a password against its bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
