package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/logger"
	"studio-booking-backend/internal/mailer"
	"studio-booking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AuthService handles sign-up, sign-in and session lifecycle
type AuthService struct {
	profiles  repository.ProfileRepositoryInterface
	roles     repository.RoleRepositoryInterface
	sessions  *auth.SessionService
	otp       *auth.OTPStore
	google    *auth.GoogleClient
	mail      mailer.Mailer
	validator *validator.Validate
	log       *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	profiles repository.ProfileRepositoryInterface,
	roles repository.RoleRepositoryInterface,
	sessions *auth.SessionService,
	otp *auth.OTPStore,
	google *auth.GoogleClient,
	mail mailer.Mailer,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		profiles:  profiles,
		roles:     roles,
		sessions:  sessions,
		otp:       otp,
		google:    google,
		mail:      mail,
		validator: validator,
		log:       logger.New(),
	}
}

// SignUpRequest represents the data needed to register a user
type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// SignInRequest represents the credentials for password sign-in
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest represents the data for the password recovery exchange
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// UpdatePasswordRequest represents a credential update for the current user
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse represents the profile data returned alongside a session
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          string     `json:"phone,omitempty"`
	ActiveTenantID *uuid.UUID `json:"active_tenant_id,omitempty"`
	Role           string     `json:"role,omitempty"`
	RoleLabel      string     `json:"role_label,omitempty"`
	HasPassword    bool       `json:"has_password"`
	CreatedAt      string     `json:"created_at"`
}

// SessionResponse bundles the profile with its freshly minted token pair.
// Session is nil for read-only session fetches that mint nothing.
type SessionResponse struct {
	User    UserResponse    `json:"user"`
	Session *auth.TokenPair `json:"session,omitempty"`
}

// SignUp registers a profile with email and password and opens a session
func (s *AuthService) SignUp(req *SignUpRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.profiles.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProfileExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.profiles.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.log.WithField("email", email).Info("user signed up")
	return s.openSession(profile)
}

// SignIn authenticates email+password credentials and opens a session
func (s *AuthService) SignIn(req *SignInRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.profiles.GetByEmail(strings.ToLower(req.Email))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !profile.HasPassword() || !auth.CheckPassword(profile.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.openSession(profile)
}

// SignOut invalidates the refresh token. Unknown tokens are a no-op.
func (s *AuthService) SignOut(refreshToken string) {
	s.sessions.Invalidate(refreshToken)
}

// GetSession returns the profile behind verified claims without minting
// new tokens
func (s *AuthService) GetSession(claims *auth.SessionClaims) (*SessionResponse, error) {
	profile, role, err := s.loadProfileWithRole(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{User: s.userResponse(profile, role)}, nil
}

// RefreshSession rotates the refresh token and mints an access token from
// the profile's current active tenant/role, making server-side claim
// mutations visible.
func (s *AuthService) RefreshSession(refreshToken string) (*SessionResponse, error) {
	userID, err := s.sessions.ConsumeRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	profile, role, err := s.loadProfileWithRole(userID)
	if err != nil {
		return nil, err
	}
	return openSessionResponse(s.sessions, profile, role)
}

// CheckEmailExists reports whether a profile is registered for the email
func (s *AuthService) CheckEmailExists(email string) (bool, error) {
	return s.profiles.EmailExists(strings.ToLower(strings.TrimSpace(email)))
}

// RequestPasswordReset issues a one-time code and mails it. Unknown emails
// succeed silently so the endpoint cannot be used to probe for accounts;
// only the resend throttle surfaces as an error.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.profiles.EmailExists(email)
	if err != nil {
		s.log.WithError(err).Error("failed to check email for password reset")
		return nil
	}
	if !exists {
		return nil
	}

	code, err := s.otp.Issue(email)
	if err != nil {
		return err
	}

	if err := s.mail.SendPasswordReset(email, code); err != nil {
		s.log.WithError(err).WithField("email", email).Error("failed to send password reset mail")
	}
	return nil
}

// VerifyOTP exchanges a valid reset code for a recovery session
func (s *AuthService) VerifyOTP(req *VerifyOTPRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(req.Email)
	if err := s.otp.Verify(email, req.Code); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.openSession(profile)
}

// UpdatePassword rehashes and stores a new password for the current user
func (s *AuthService) UpdatePassword(claims *auth.SessionClaims, req *UpdatePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperrors.ErrInvalidSession
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.profiles.SetPassword(userID, hash)
}

// GoogleAuthURL builds the authorization redirect for the Google code flow
func (s *AuthService) GoogleAuthURL() (string, error) {
	if s.google == nil || !s.google.Configured() {
		return "", apperrors.NewUpstreamError("google oauth is not configured")
	}
	state, err := auth.GenerateState()
	if err != nil {
		return "", err
	}
	return s.google.AuthURL(state), nil
}

// GoogleCallback exchanges the authorization code, finds or creates the
// profile for the Google account and opens a session
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*SessionResponse, error) {
	if s.google == nil || !s.google.Configured() {
		return nil, apperrors.NewUpstreamError("google oauth is not configured")
	}

	gp, err := s.google.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewUpstreamError(err.Error())
	}

	email := strings.ToLower(gp.Email)
	profile, err := s.profiles.GetByEmail(email)
	if apperrors.IsNotFound(err) {
		profile = &models.Profile{
			Email:     email,
			FirstName: gp.GivenName,
			LastName:  gp.FamilyName,
		}
		if err := s.profiles.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		s.log.WithField("email", email).Info("profile created from google sign-in")
	} else if err != nil {
		return nil, err
	}

	return s.openSession(profile)
}

// openSession resolves the profile's active role and mints a token pair
func (s *AuthService) openSession(profile *models.Profile) (*SessionResponse, error) {
	role, err := activeRole(s.roles, profile)
	if err != nil {
		return nil, err
	}
	return openSessionResponse(s.sessions, profile, role)
}

func (s *AuthService) loadProfileWithRole(rawUserID string) (*models.Profile, *models.Role, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidSession
	}
	profile, err := s.profiles.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	role, err := activeRole(s.roles, profile)
	if err != nil {
		return nil, nil, err
	}
	return profile, role, nil
}

func (s *AuthService) userResponse(profile *models.Profile, role *models.Role) UserResponse {
	return buildUserResponse(profile, role)
}

// activeRole resolves the profile's active role pointer, tolerating a stale
// pointer left behind by a role purge.
func activeRole(roles repository.RoleRepositoryInterface, profile *models.Profile) (*models.Role, error) {
	if profile.ActiveRoleID == nil {
		return nil, nil
	}
	role, err := roles.GetByID(*profile.ActiveRoleID)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	return role, err
}

// openSessionResponse mints a token pair for the profile/role and wraps it
// with the profile data. Shared by every operation that must hand the client
// fresh tokens after a server-side claim mutation.
func openSessionResponse(sessions *auth.SessionService, profile *models.Profile, role *models.Role) (*SessionResponse, error) {
	pair, err := sessions.IssueTokenPair(profile, role)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{
		User:    buildUserResponse(profile, role),
		Session: pair,
	}, nil
}

func buildUserResponse(profile *models.Profile, role *models.Role) UserResponse {
	resp := UserResponse{
		ID:             profile.ID,
		Email:          profile.Email,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Phone:          profile.Phone,
		ActiveTenantID: profile.ActiveTenantID,
		HasPassword:    profile.HasPassword(),
		CreatedAt:      profile.CreatedAt.Format(time.RFC3339),
	}
	if role != nil {
		resp.Role = string(role.Name)
		resp.RoleLabel = auth.RoleLabel(string(role.Name))
	}
	return resp
}
