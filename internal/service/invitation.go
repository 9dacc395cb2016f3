package service

import (
	"fmt"
	"strings"
	"time"

	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/config"
	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/logger"
	"studio-booking-backend/internal/mailer"
	"studio-booking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InviteMethodDirect and InviteMethodEmail name the two issuance branches:
// direct adds an existing account to the studio immediately, email sends a
// magic link to an address with no account yet.
const (
	InviteMethodDirect = "direct"
	InviteMethodEmail  = "email"
)

// InvitationService handles invitation issuance and acceptance
type InvitationService struct {
	invitations repository.InvitationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	profiles    repository.ProfileRepositoryInterface
	tenants     repository.TenantRepositoryInterface
	roles       repository.RoleRepositoryInterface
	onboarding  repository.OnboardingRepositoryInterface
	sessions    *auth.SessionService
	mail        mailer.Mailer
	validator   *validator.Validate
	log         *logger.Logger

	inviteExpiry  time.Duration
	defaultOrigin string
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	invitations repository.InvitationRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	roles repository.RoleRepositoryInterface,
	onboarding repository.OnboardingRepositoryInterface,
	sessions *auth.SessionService,
	mail mailer.Mailer,
	validator *validator.Validate,
	cfg *config.Config,
) *InvitationService {
	return &InvitationService{
		invitations:   invitations,
		memberships:   memberships,
		profiles:      profiles,
		tenants:       tenants,
		roles:         roles,
		onboarding:    onboarding,
		sessions:      sessions,
		mail:          mail,
		validator:     validator,
		log:           logger.New(),
		inviteExpiry:  cfg.InvitationExpiry(),
		defaultOrigin: cfg.DefaultInviteOrigin,
	}
}

// InviteRequest is the invite-employee request body. The roleId key is
// camelCase because it is part of the endpoint's external contract.
type InviteRequest struct {
	Email  string    `json:"email" validate:"required,email,max=255"`
	RoleID uuid.UUID `json:"roleId" validate:"required"`
}

// InviteResponse reports which issuance branch handled the invite
type InviteResponse struct {
	Success bool   `json:"success"`
	Method  string `json:"method" example:"email"`
}

// InvitationInfoResponse is the public view of an invitation, rendered by
// the acceptance page before the user authenticates
type InvitationInfoResponse struct {
	Email      string `json:"email"`
	RoleName   string `json:"role_name"`
	TenantName string `json:"tenant_name"`
	IsValid    bool   `json:"is_valid"`
}

// AcceptInvitationRequest carries the onboarding form of the acceptance page
type AcceptInvitationRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Phone           string `json:"phone" validate:"max=30"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// PendingInvitationResponse represents an invitation awaiting acceptance
type PendingInvitationResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	RoleName  string    `json:"role_name"`
	InvitedBy uuid.UUID `json:"invited_by"`
	CreatedAt string    `json:"created_at"`
	ExpiresAt string    `json:"expires_at"`
}

// Spanish form-validation copy of the acceptance page, preserved verbatim.
var (
	errPasswordMismatch = &apperrors.ValidationError{Message: "Las contraseñas no coinciden."}
	errPasswordTooShort = &apperrors.ValidationError{Message: "La contraseña debe tener al menos 8 caracteres."}
)

// Invite issues an invitation into the caller's active studio. When the
// email already has an account the user is added directly inside one
// transaction; otherwise an invitation row is upserted on (tenant_id, email)
// and a magic-link mail is dispatched to origin/accept-invite?token=...
func (s *InvitationService) Invite(claims *auth.SessionClaims, req *InviteRequest, origin string) (*InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}
	inviterID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	role, err := s.roles.GetByID(req.RoleID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := time.Now()

	profile, err := s.profiles.GetByEmail(email)
	switch {
	case err == nil:
		return s.inviteDirect(profile, tenantID, inviterID, role.ID, email, now)
	case apperrors.IsNotFound(err):
		return s.inviteByEmail(tenantID, inviterID, role.ID, email, origin, now)
	default:
		return nil, err
	}
}

// inviteDirect adds an existing account as a member and records the
// invitation as instantly accepted, both in one transaction.
func (s *InvitationService) inviteDirect(profile *models.Profile, tenantID, inviterID, roleID uuid.UUID, email string, now time.Time) (*InviteResponse, error) {
	exists, err := s.memberships.Exists(profile.ID, tenantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrMembershipExists
	}

	membership := &models.TenantMember{
		UserID:   profile.ID,
		TenantID: tenantID,
		RoleID:   roleID,
	}
	invitation := &models.TenantInvitation{
		TenantID:   tenantID,
		Email:      email,
		RoleID:     roleID,
		InvitedBy:  inviterID,
		ExpiresAt:  now.Add(s.inviteExpiry),
		AcceptedAt: &now,
	}
	if err := s.onboarding.DirectAdd(membership, invitation); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"tenant_id": tenantID,
		"user_id":   profile.ID,
	}).Info("existing user added to tenant directly")

	return &InviteResponse{Success: true, Method: InviteMethodDirect}, nil
}

// inviteByEmail upserts the invitation row and mails the magic link
func (s *InvitationService) inviteByEmail(tenantID, inviterID, roleID uuid.UUID, email, origin string, now time.Time) (*InviteResponse, error) {
	invitation := &models.TenantInvitation{
		TenantID:  tenantID,
		Email:     email,
		RoleID:    roleID,
		InvitedBy: inviterID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(s.inviteExpiry),
	}

	saved, err := s.invitations.Upsert(invitation)
	if apperrors.IsNotFound(err) {
		return nil, apperrors.NewUpstreamError("Error al crear la invitación")
	}
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenants.GetByID(tenantID)
	if err != nil {
		return nil, err
	}

	if origin == "" {
		origin = s.defaultOrigin
	}
	acceptURL := fmt.Sprintf("%s/accept-invite?token=%s", strings.TrimRight(origin, "/"), saved.Token)

	if err := s.mail.SendInvitation(email, tenant.Name, acceptURL); err != nil {
		return nil, apperrors.NewUpstreamError(err.Error())
	}

	s.log.WithFields(map[string]interface{}{
		"tenant_id": tenantID,
		"email":     email,
	}).Info("invitation mail dispatched")

	return &InviteResponse{Success: true, Method: InviteMethodEmail}, nil
}

// GetByToken returns the public invitation view for the acceptance page.
// Unknown tokens are a not-found; known-but-stale ones report is_valid=false
// so the page can explain instead of rendering the form.
func (s *InvitationService) GetByToken(token uuid.UUID) (*InvitationInfoResponse, error) {
	invitation, err := s.invitations.GetByToken(token)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.GetByID(invitation.RoleID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenants.GetByID(invitation.TenantID)
	if err != nil {
		return nil, err
	}

	return &InvitationInfoResponse{
		Email:      invitation.Email,
		RoleName:   string(role.Name),
		TenantName: tenant.Name,
		IsValid:    invitation.IsValid(time.Now()),
	}, nil
}

// Accept finishes onboarding for the authenticated caller: password rules
// are checked before any write, then a single transaction joins the caller
// to the studio, stores names and credentials and marks the invitation
// accepted. The response carries fresh tokens for the new membership.
func (s *InvitationService) Accept(claims *auth.SessionClaims, token uuid.UUID, req *AcceptInvitationRequest) (*SessionResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, errPasswordMismatch
	}
	if len(req.Password) < 8 {
		return nil, errPasswordTooShort
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	invitation, err := s.onboarding.AcceptInvitation(token, userID, repository.OnboardingUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PasswordHash: hash,
	}, time.Now())
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"tenant_id": invitation.TenantID,
		"user_id":   userID,
	}).Info("invitation accepted")

	profile, err := s.profiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.GetByID(invitation.RoleID)
	if err != nil {
		return nil, err
	}
	return openSessionResponse(s.sessions, profile, role)
}

// GetPending lists the open invitations of the caller's active studio
func (s *InvitationService) GetPending(claims *auth.SessionClaims) ([]PendingInvitationResponse, error) {
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, apperrors.ErrNotTenantMember
	}

	invitations, err := s.invitations.GetPendingByTenant(tenantID, time.Now())
	if err != nil {
		return nil, err
	}

	roleNames, err := s.roleNames()
	if err != nil {
		return nil, err
	}

	responses := make([]PendingInvitationResponse, 0, len(invitations))
	for i := range invitations {
		inv := &invitations[i]
		responses = append(responses, PendingInvitationResponse{
			ID:        inv.ID,
			Email:     inv.Email,
			RoleName:  roleNames[inv.RoleID],
			InvitedBy: inv.InvitedBy,
			CreatedAt: inv.CreatedAt.Format(time.RFC3339),
			ExpiresAt: inv.ExpiresAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *InvitationService) roleNames() (map[uuid.UUID]string, error) {
	roles, err := s.roles.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(roles))
	for _, role := range roles {
		names[role.ID] = string(role.Name)
	}
	return names, nil
}
