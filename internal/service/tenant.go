package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/logger"
	"studio-booking-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TenantService handles studio creation, listing and switching
type TenantService struct {
	tenants    repository.TenantRepositoryInterface
	profiles   repository.ProfileRepositoryInterface
	roles      repository.RoleRepositoryInterface
	onboarding repository.OnboardingRepositoryInterface
	sessions   *auth.SessionService
	validator  *validator.Validate
	log        *logger.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(
	tenants repository.TenantRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	roles repository.RoleRepositoryInterface,
	onboarding repository.OnboardingRepositoryInterface,
	sessions *auth.SessionService,
	validator *validator.Validate,
) *TenantService {
	return &TenantService{
		tenants:    tenants,
		profiles:   profiles,
		roles:      roles,
		onboarding: onboarding,
		sessions:   sessions,
		validator:  validator,
		log:        logger.New(),
	}
}

// CreateTenantRequest represents the data needed to create a studio
type CreateTenantRequest struct {
	TenantName string `json:"tenant_name" validate:"required,min=1,max=200"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
}

// TenantResponse represents the response data for a tenant
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt string    `json:"created_at"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a studio name into a url-safe slug
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStrip.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "studio"
	}
	return slug
}

// CreateTenantWithAdmin creates a studio, makes the caller its admin and
// sets it as the caller's active tenant, all in one transaction. The
// response carries fresh tokens because the caller's claims changed.
func (s *TenantService) CreateTenantWithAdmin(claims *auth.SessionClaims, req *CreateTenantRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	adminRole, err := s.roles.GetByName(models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(slugify(req.TenantName))
	if err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		Name: strings.TrimSpace(req.TenantName),
		Slug: slug,
	}
	if err := s.onboarding.CreateTenantWithAdmin(tenant, userID, adminRole.ID, req.FirstName, req.LastName); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"tenant_id": tenant.ID,
		"slug":      tenant.Slug,
		"user_id":   userID,
	}).Info("tenant created")

	profile, err := s.profiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return openSessionResponse(s.sessions, profile, adminRole)
}

// GetMyTenants lists the studios the caller belongs to
func (s *TenantService) GetMyTenants(claims *auth.SessionClaims) ([]TenantResponse, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	tenants, err := s.tenants.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, toTenantResponse(&tenants[i]))
	}
	return responses, nil
}

// SwitchActiveTenant moves the caller's active tenant to another studio they
// belong to. Tokens minted before the switch keep the old claims until
// refreshed, so the response carries a fresh pair.
func (s *TenantService) SwitchActiveTenant(claims *auth.SessionClaims, tenantID uuid.UUID) (*SessionResponse, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	membership, err := s.onboarding.SwitchActiveTenant(userID, tenantID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.GetByID(membership.RoleID)
	if err != nil {
		return nil, err
	}
	return openSessionResponse(s.sessions, profile, role)
}

// uniqueSlug appends a numeric suffix until the slug is free
func (s *TenantService) uniqueSlug(base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		exists, err := s.tenants.SlugExists(slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func toTenantResponse(tenant *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		CreatedAt: tenant.CreatedAt.Format(time.RFC3339),
	}
}
