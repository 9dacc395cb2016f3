package service

import (
	"context"

	"studio-booking-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for the auth service
type AuthServiceInterface interface {
	SignUp(req *SignUpRequest) (*SessionResponse, error)
	SignIn(req *SignInRequest) (*SessionResponse, error)
	SignOut(refreshToken string)
	GetSession(claims *auth.SessionClaims) (*SessionResponse, error)
	RefreshSession(refreshToken string) (*SessionResponse, error)
	CheckEmailExists(email string) (bool, error)
	RequestPasswordReset(email string) error
	VerifyOTP(req *VerifyOTPRequest) (*SessionResponse, error)
	UpdatePassword(claims *auth.SessionClaims, req *UpdatePasswordRequest) error
	GoogleAuthURL() (string, error)
	GoogleCallback(ctx context.Context, code string) (*SessionResponse, error)
}

// TenantServiceInterface defines the interface for the tenant service
type TenantServiceInterface interface {
	CreateTenantWithAdmin(claims *auth.SessionClaims, req *CreateTenantRequest) (*SessionResponse, error)
	GetMyTenants(claims *auth.SessionClaims) ([]TenantResponse, error)
	SwitchActiveTenant(claims *auth.SessionClaims, tenantID uuid.UUID) (*SessionResponse, error)
}

// InvitationServiceInterface defines the interface for the invitation service
type InvitationServiceInterface interface {
	Invite(claims *auth.SessionClaims, req *InviteRequest, origin string) (*InviteResponse, error)
	GetByToken(token uuid.UUID) (*InvitationInfoResponse, error)
	Accept(claims *auth.SessionClaims, token uuid.UUID, req *AcceptInvitationRequest) (*SessionResponse, error)
	GetPending(claims *auth.SessionClaims) ([]PendingInvitationResponse, error)
}

// TeamServiceInterface defines the interface for the team service
type TeamServiceInterface interface {
	GetTenantEmployees(claims *auth.SessionClaims) ([]EmployeeResponse, error)
}

// BookingServiceInterface defines the interface for the booking service
type BookingServiceInterface interface {
	Create(claims *auth.SessionClaims, req *CreateBookingRequest) (*BookingResponse, error)
	ListRange(claims *auth.SessionClaims, req *BookingRangeRequest) ([]BookingResponse, error)
}
