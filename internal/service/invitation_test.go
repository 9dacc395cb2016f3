package service_test

import (
	"errors"
	"testing"
	"time"

	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/config"
	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/mocks"
	"studio-booking-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockInvitations *mocks.MockInvitationRepositoryInterface
	mockMemberships *mocks.MockMembershipRepositoryInterface
	mockProfiles    *mocks.MockProfileRepositoryInterface
	mockTenants     *mocks.MockTenantRepositoryInterface
	mockRoles       *mocks.MockRoleRepositoryInterface
	mockOnboarding  *mocks.MockOnboardingRepositoryInterface
	mockMailer      *mocks.MockMailer
	sessions        *auth.SessionService
	svc             *service.InvitationService

	tenantID uuid.UUID
	userID   uuid.UUID
	roleID   uuid.UUID
	claims   *auth.SessionClaims
}

// SetupTest sets up the test suite
func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvitations = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockTenants = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockRoles = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.mockOnboarding = mocks.NewMockOnboardingRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)

	var err error
	suite.sessions, err = auth.NewSessionService("test-secret", time.Hour, 24*time.Hour)
	suite.Require().NoError(err)

	cfg := &config.Config{
		InvitationExpiryDays: 7,
		DefaultInviteOrigin:  "http://localhost:5173",
	}
	suite.svc = service.NewInvitationService(
		suite.mockInvitations,
		suite.mockMemberships,
		suite.mockProfiles,
		suite.mockTenants,
		suite.mockRoles,
		suite.mockOnboarding,
		suite.sessions,
		suite.mockMailer,
		validator.New(),
		cfg,
	)

	suite.tenantID = uuid.New()
	suite.userID = uuid.New()
	suite.roleID = uuid.New()
	suite.claims = &auth.SessionClaims{
		UserID:   suite.userID.String(),
		Email:    "ana@estudio.com",
		TenantID: suite.tenantID.String(),
		Role:     "admin",
	}
}

// TearDownTest cleans up after each test
func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationServiceTestSuite) employeeRole() *models.Role {
	role := &models.Role{Name: models.RoleEmployee}
	role.ID = suite.roleID
	return role
}

// TestInviteDirectAddsExistingUser tests the direct branch for an email that
// already has an account
func (suite *InvitationServiceTestSuite) TestInviteDirectAddsExistingUser() {
	existing := &models.Profile{Email: "pedro@estudio.com"}
	existing.ID = uuid.New()

	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockProfiles.EXPECT().GetByEmail("pedro@estudio.com").Return(existing, nil)
	suite.mockMemberships.EXPECT().Exists(existing.ID, suite.tenantID).Return(false, nil)
	suite.mockOnboarding.EXPECT().
		DirectAdd(gomock.Any(), gomock.Any()).
		DoAndReturn(func(membership *models.TenantMember, invitation *models.TenantInvitation) error {
			assert.Equal(suite.T(), existing.ID, membership.UserID)
			assert.Equal(suite.T(), suite.tenantID, membership.TenantID)
			assert.Equal(suite.T(), suite.roleID, membership.RoleID)
			assert.NotNil(suite.T(), invitation.AcceptedAt)
			assert.Equal(suite.T(), "pedro@estudio.com", invitation.Email)
			return nil
		})

	resp, err := suite.svc.Invite(suite.claims, &service.InviteRequest{
		Email:  "Pedro@Estudio.com",
		RoleID: suite.roleID,
	}, "")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), service.InviteMethodDirect, resp.Method)
}

// TestInviteDirectRejectsExistingMember tests that inviting a user who
// already belongs to the studio conflicts
func (suite *InvitationServiceTestSuite) TestInviteDirectRejectsExistingMember() {
	existing := &models.Profile{Email: "pedro@estudio.com"}
	existing.ID = uuid.New()

	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockProfiles.EXPECT().GetByEmail("pedro@estudio.com").Return(existing, nil)
	suite.mockMemberships.EXPECT().Exists(existing.ID, suite.tenantID).Return(true, nil)

	resp, err := suite.svc.Invite(suite.claims, &service.InviteRequest{
		Email:  "pedro@estudio.com",
		RoleID: suite.roleID,
	}, "")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

// TestInviteEmailSendsMagicLink tests the email branch for an unknown address
func (suite *InvitationServiceTestSuite) TestInviteEmailSendsMagicLink() {
	token := uuid.New()

	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockProfiles.EXPECT().GetByEmail("nueva@estudio.com").Return(nil, apperrors.ErrProfileNotFound)
	suite.mockInvitations.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(inv *models.TenantInvitation) (*models.TenantInvitation, error) {
			assert.Nil(suite.T(), inv.AcceptedAt)
			assert.Equal(suite.T(), suite.tenantID, inv.TenantID)
			saved := *inv
			saved.Token = token
			return &saved, nil
		})

	tenant := &models.Tenant{Name: "Estudio Luna", Slug: "estudio-luna"}
	tenant.ID = suite.tenantID
	suite.mockTenants.EXPECT().GetByID(suite.tenantID).Return(tenant, nil)

	suite.mockMailer.EXPECT().
		SendInvitation("nueva@estudio.com", "Estudio Luna", "https://app.example.com/accept-invite?token="+token.String()).
		Return(nil)

	resp, err := suite.svc.Invite(suite.claims, &service.InviteRequest{
		Email:  "nueva@estudio.com",
		RoleID: suite.roleID,
	}, "https://app.example.com")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), service.InviteMethodEmail, resp.Method)
}

// TestInviteEmailFallsBackToDefaultOrigin tests the redirect origin fallback
func (suite *InvitationServiceTestSuite) TestInviteEmailFallsBackToDefaultOrigin() {
	token := uuid.New()

	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockProfiles.EXPECT().GetByEmail("nueva@estudio.com").Return(nil, apperrors.ErrProfileNotFound)
	suite.mockInvitations.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(inv *models.TenantInvitation) (*models.TenantInvitation, error) {
			saved := *inv
			saved.Token = token
			return &saved, nil
		})

	tenant := &models.Tenant{Name: "Estudio Luna"}
	tenant.ID = suite.tenantID
	suite.mockTenants.EXPECT().GetByID(suite.tenantID).Return(tenant, nil)

	suite.mockMailer.EXPECT().
		SendInvitation("nueva@estudio.com", "Estudio Luna", "http://localhost:5173/accept-invite?token="+token.String()).
		Return(nil)

	_, err := suite.svc.Invite(suite.claims, &service.InviteRequest{
		Email:  "nueva@estudio.com",
		RoleID: suite.roleID,
	}, "")

	assert.NoError(suite.T(), err)
}

// TestInviteEmailUpsertMissReturnsCreationError tests the storage failure
// message of the email branch
func (suite *InvitationServiceTestSuite) TestInviteEmailUpsertMissReturnsCreationError() {
	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockProfiles.EXPECT().GetByEmail("nueva@estudio.com").Return(nil, apperrors.ErrProfileNotFound)
	suite.mockInvitations.EXPECT().Upsert(gomock.Any()).Return(nil, apperrors.ErrInvitationNotFound)

	_, err := suite.svc.Invite(suite.claims, &service.InviteRequest{
		Email:  "nueva@estudio.com",
		RoleID: suite.roleID,
	}, "")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), "Error al crear la invitación", err.Error())
	assert.True(suite.T(), apperrors.IsUpstream(err))
}

// TestInviteEmailMailFailurePropagatesRawMessage tests that a mailer failure
// surfaces with its raw message
func (suite *InvitationServiceTestSuite) TestInviteEmailMailFailurePropagatesRawMessage() {
	token := uuid.New()

	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockProfiles.EXPECT().GetByEmail("nueva@estudio.com").Return(nil, apperrors.ErrProfileNotFound)
	suite.mockInvitations.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(inv *models.TenantInvitation) (*models.TenantInvitation, error) {
			saved := *inv
			saved.Token = token
			return &saved, nil
		})

	tenant := &models.Tenant{Name: "Estudio Luna"}
	tenant.ID = suite.tenantID
	suite.mockTenants.EXPECT().GetByID(suite.tenantID).Return(tenant, nil)
	suite.mockMailer.EXPECT().
		SendInvitation(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp dial timeout"))

	_, err := suite.svc.Invite(suite.claims, &service.InviteRequest{
		Email:  "nueva@estudio.com",
		RoleID: suite.roleID,
	}, "")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), "smtp dial timeout", err.Error())
	assert.True(suite.T(), apperrors.IsUpstream(err))
}

// TestGetByTokenValid tests the public invitation view for a live invitation
func (suite *InvitationServiceTestSuite) TestGetByTokenValid() {
	token := uuid.New()
	invitation := &models.TenantInvitation{
		TenantID:  suite.tenantID,
		Email:     "nueva@estudio.com",
		RoleID:    suite.roleID,
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	tenant := &models.Tenant{Name: "Estudio Luna"}
	tenant.ID = suite.tenantID

	suite.mockInvitations.EXPECT().GetByToken(token).Return(invitation, nil)
	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockTenants.EXPECT().GetByID(suite.tenantID).Return(tenant, nil)

	info, err := suite.svc.GetByToken(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "nueva@estudio.com", info.Email)
	assert.Equal(suite.T(), "employee", info.RoleName)
	assert.Equal(suite.T(), "Estudio Luna", info.TenantName)
	assert.True(suite.T(), info.IsValid)
}

// TestGetByTokenExpiredReportsInvalid tests that a stale invitation still
// resolves but reports is_valid=false
func (suite *InvitationServiceTestSuite) TestGetByTokenExpiredReportsInvalid() {
	token := uuid.New()
	invitation := &models.TenantInvitation{
		TenantID:  suite.tenantID,
		Email:     "nueva@estudio.com",
		RoleID:    suite.roleID,
		Token:     token,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	tenant := &models.Tenant{Name: "Estudio Luna"}
	tenant.ID = suite.tenantID

	suite.mockInvitations.EXPECT().GetByToken(token).Return(invitation, nil)
	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)
	suite.mockTenants.EXPECT().GetByID(suite.tenantID).Return(tenant, nil)

	info, err := suite.svc.GetByToken(token)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), info.IsValid)
}

// TestGetByTokenUnknown tests that an unknown token is a not-found
func (suite *InvitationServiceTestSuite) TestGetByTokenUnknown() {
	token := uuid.New()
	suite.mockInvitations.EXPECT().GetByToken(token).Return(nil, apperrors.ErrInvitationNotFound)

	info, err := suite.svc.GetByToken(token)

	assert.Nil(suite.T(), info)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestAcceptRejectsPasswordMismatchBeforeAnyWrite tests the form validation
// order: no repository call may happen when passwords differ
func (suite *InvitationServiceTestSuite) TestAcceptRejectsPasswordMismatchBeforeAnyWrite() {
	resp, err := suite.svc.Accept(suite.claims, uuid.New(), &service.AcceptInvitationRequest{
		FirstName:       "Ana",
		LastName:        "García",
		Password:        "contraseña1",
		PasswordConfirm: "contraseña2",
	})

	assert.Nil(suite.T(), resp)
	var vErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &vErr)
	assert.Equal(suite.T(), "Las contraseñas no coinciden.", vErr.Message)
}

// TestAcceptRejectsShortPassword tests the minimum length rule
func (suite *InvitationServiceTestSuite) TestAcceptRejectsShortPassword() {
	resp, err := suite.svc.Accept(suite.claims, uuid.New(), &service.AcceptInvitationRequest{
		FirstName:       "Ana",
		LastName:        "García",
		Password:        "corta",
		PasswordConfirm: "corta",
	})

	assert.Nil(suite.T(), resp)
	var vErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &vErr)
	assert.Equal(suite.T(), "La contraseña debe tener al menos 8 caracteres.", vErr.Message)
}

// TestAcceptSuccessIssuesFreshSession tests the happy path: the onboarding
// transaction runs and the response carries tokens for the new membership
func (suite *InvitationServiceTestSuite) TestAcceptSuccessIssuesFreshSession() {
	token := uuid.New()
	invitation := &models.TenantInvitation{
		TenantID: suite.tenantID,
		Email:    "ana@estudio.com",
		RoleID:   suite.roleID,
		Token:    token,
	}

	suite.mockOnboarding.EXPECT().
		AcceptInvitation(token, suite.userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, update interface{}, _ time.Time) (*models.TenantInvitation, error) {
			return invitation, nil
		})

	profile := &models.Profile{Email: "ana@estudio.com", FirstName: "Ana", LastName: "García"}
	profile.ID = suite.userID
	activeTenant := suite.tenantID
	activeRole := suite.roleID
	profile.ActiveTenantID = &activeTenant
	profile.ActiveRoleID = &activeRole

	suite.mockProfiles.EXPECT().GetByID(suite.userID).Return(profile, nil)
	suite.mockRoles.EXPECT().GetByID(suite.roleID).Return(suite.employeeRole(), nil)

	resp, err := suite.svc.Accept(suite.claims, token, &service.AcceptInvitationRequest{
		FirstName:       "Ana",
		LastName:        "García",
		Phone:           "+34600111222",
		Password:        "contraseña-larga",
		PasswordConfirm: "contraseña-larga",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.Session)
	assert.NotEmpty(suite.T(), resp.Session.AccessToken)
	assert.Equal(suite.T(), "employee", resp.User.Role)
	assert.Equal(suite.T(), "Empleado", resp.User.RoleLabel)

	claims, err := suite.sessions.ValidateJWT(resp.Session.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.tenantID.String(), claims.TenantID)
	assert.Equal(suite.T(), "employee", claims.Role)
}

// TestAcceptPropagatesInvitationErrors tests that terminal invitation states
// surface unchanged
func (suite *InvitationServiceTestSuite) TestAcceptPropagatesInvitationErrors() {
	token := uuid.New()
	suite.mockOnboarding.EXPECT().
		AcceptInvitation(token, suite.userID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvitationInvalid)

	resp, err := suite.svc.Accept(suite.claims, token, &service.AcceptInvitationRequest{
		FirstName:       "Ana",
		LastName:        "García",
		Password:        "contraseña-larga",
		PasswordConfirm: "contraseña-larga",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationInvalid)
}

// TestGetPending tests the pending invitation listing
func (suite *InvitationServiceTestSuite) TestGetPending() {
	invitations := []models.TenantInvitation{
		{
			TenantID:  suite.tenantID,
			Email:     "uno@estudio.com",
			RoleID:    suite.roleID,
			InvitedBy: suite.userID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		},
	}
	suite.mockInvitations.EXPECT().GetPendingByTenant(suite.tenantID, gomock.Any()).Return(invitations, nil)
	suite.mockRoles.EXPECT().GetAll().Return([]models.Role{*suite.employeeRole()}, nil)

	pending, err := suite.svc.GetPending(suite.claims)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), pending, 1)
	assert.Equal(suite.T(), "uno@estudio.com", pending[0].Email)
	assert.Equal(suite.T(), "employee", pending[0].RoleName)
}

// TestGetPendingWithoutActiveTenant tests that a session without a tenant
// claim is rejected
func (suite *InvitationServiceTestSuite) TestGetPendingWithoutActiveTenant() {
	claims := &auth.SessionClaims{UserID: suite.userID.String(), Email: "ana@estudio.com"}

	pending, err := suite.svc.GetPending(claims)

	assert.Nil(suite.T(), pending)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTenantMember)
}

// TestInvitationServiceTestSuite runs the test suite
func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
