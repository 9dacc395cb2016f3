//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// OnboardingRepositoryTestSuite tests the transactional membership workflows
type OnboardingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OnboardingRepository
	profiles      *ProfileRepository
	roles         *RoleRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OnboardingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOnboardingRepository(suite.baseTestSuite.DB)
	suite.profiles = NewProfileRepository(suite.baseTestSuite.DB)
	suite.roles = NewRoleRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OnboardingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OnboardingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OnboardingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OnboardingRepositoryTestSuite) adminRole() *models.Role {
	role, err := suite.roles.GetByName(models.RoleAdmin)
	suite.Require().NoError(err)
	return role
}

func (suite *OnboardingRepositoryTestSuite) employeeRole() *models.Role {
	role, err := suite.roles.GetByName(models.RoleEmployee)
	suite.Require().NoError(err)
	return role
}

// TestCreateTenantWithAdmin tests that tenant, membership, name and active
// pointers land together
func (suite *OnboardingRepositoryTestSuite) TestCreateTenantWithAdmin() {
	founder := suite.factories.Profile.Create()
	founder.FirstName = ""
	founder.LastName = ""
	suite.NoError(suite.profiles.Create(founder))

	tenant := suite.factories.Tenant.WithName("Estudio Luna", "estudio-luna")
	admin := suite.adminRole()

	err := suite.repo.CreateTenantWithAdmin(tenant, founder.ID, admin.ID, "Ana", "García")
	suite.NoError(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TenantMember{}).
		Where("user_id = ? AND tenant_id = ? AND role_id = ?", founder.ID, tenant.ID, admin.ID).
		Count(&count).Error)
	suite.Equal(int64(1), count)

	reloaded, err := suite.profiles.GetByID(founder.ID)
	suite.NoError(err)
	suite.Equal("Ana", reloaded.FirstName)
	suite.Equal("García", reloaded.LastName)
	suite.Require().NotNil(reloaded.ActiveTenantID)
	suite.Equal(tenant.ID, *reloaded.ActiveTenantID)
	suite.Require().NotNil(reloaded.ActiveRoleID)
	suite.Equal(admin.ID, *reloaded.ActiveRoleID)
}

// TestCreateTenantWithAdminRollsBack tests that a failed membership insert
// leaves no tenant behind
func (suite *OnboardingRepositoryTestSuite) TestCreateTenantWithAdminRollsBack() {
	tenant := suite.factories.Tenant.WithName("Estudio Sol", "estudio-sol")

	founder := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(founder))
	suite.NoError(suite.repo.CreateTenantWithAdmin(tenant, founder.ID, suite.adminRole().ID, "Ana", "García"))

	duplicate := suite.factories.Tenant.WithName("Estudio Sol", "estudio-sol")
	err := suite.repo.CreateTenantWithAdmin(duplicate, founder.ID, suite.adminRole().ID, "Ana", "García")
	suite.Error(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Tenant{}).
		Where("slug = ?", "estudio-sol").
		Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestDirectAdd tests that membership and accepted invitation row land
// together
func (suite *OnboardingRepositoryTestSuite) TestDirectAdd() {
	admin := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(admin))
	employee := suite.factories.Profile.WithEmail("pedro@estudio.com")
	suite.NoError(suite.profiles.Create(employee))

	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	role := suite.employeeRole()
	now := time.Now()

	membership := suite.factories.Membership.Create(employee.ID, tenant.ID, role.ID)
	invitation := suite.factories.Invitation.Create(tenant.ID, role.ID, admin.ID)
	invitation.Email = employee.Email
	invitation.AcceptedAt = &now

	err := suite.repo.DirectAdd(membership, invitation)
	suite.NoError(err)

	exists, err := NewMembershipRepository(suite.baseTestSuite.DB).Exists(employee.ID, tenant.ID)
	suite.NoError(err)
	suite.True(exists)

	stored, err := NewInvitationRepository(suite.baseTestSuite.DB).GetByTenantAndEmail(tenant.ID, employee.Email)
	suite.NoError(err)
	suite.NotNil(stored.AcceptedAt)
}

// TestDirectAddDuplicateMembershipRollsBack tests that the invitation row is
// not written when the membership insert fails
func (suite *OnboardingRepositoryTestSuite) TestDirectAddDuplicateMembershipRollsBack() {
	admin := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(admin))
	employee := suite.factories.Profile.WithEmail("pedro@estudio.com")
	suite.NoError(suite.profiles.Create(employee))

	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	role := suite.employeeRole()
	now := time.Now()

	first := suite.factories.Membership.Create(employee.ID, tenant.ID, role.ID)
	firstInv := suite.factories.Invitation.Create(tenant.ID, role.ID, admin.ID)
	firstInv.Email = employee.Email
	firstInv.AcceptedAt = &now
	suite.NoError(suite.repo.DirectAdd(first, firstInv))

	second := suite.factories.Membership.Create(employee.ID, tenant.ID, role.ID)
	secondInv := suite.factories.Invitation.Create(tenant.ID, role.ID, admin.ID)
	secondInv.Email = "otra@estudio.com"
	secondInv.AcceptedAt = &now

	err := suite.repo.DirectAdd(second, secondInv)
	suite.Error(err)

	_, err = NewInvitationRepository(suite.baseTestSuite.DB).GetByTenantAndEmail(tenant.ID, "otra@estudio.com")
	suite.Error(err)
}

func (suite *OnboardingRepositoryTestSuite) seedInvitation(email string) (*models.TenantInvitation, *models.Tenant) {
	admin := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(admin))

	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	invitation := suite.factories.Invitation.Create(tenant.ID, suite.employeeRole().ID, admin.ID)
	invitation.Email = email
	saved, err := NewInvitationRepository(suite.baseTestSuite.DB).Upsert(invitation)
	suite.Require().NoError(err)
	return saved, tenant
}

// TestAcceptInvitation tests the whole acceptance transaction
func (suite *OnboardingRepositoryTestSuite) TestAcceptInvitation() {
	invitee := suite.factories.Profile.WithEmail("nueva@estudio.com")
	suite.NoError(suite.profiles.Create(invitee))

	invitation, tenant := suite.seedInvitation("nueva@estudio.com")
	now := time.Now()

	accepted, err := suite.repo.AcceptInvitation(invitation.Token, invitee.ID, OnboardingUpdate{
		FirstName:    "Nueva",
		LastName:     "Empleada",
		Phone:        "+34 600 111 222",
		PasswordHash: "x",
	}, now)
	suite.NoError(err)
	suite.Equal(tenant.ID, accepted.TenantID)

	exists, err := NewMembershipRepository(suite.baseTestSuite.DB).Exists(invitee.ID, tenant.ID)
	suite.NoError(err)
	suite.True(exists)

	reloaded, err := suite.profiles.GetByID(invitee.ID)
	suite.NoError(err)
	suite.Equal("Nueva", reloaded.FirstName)
	suite.Require().NotNil(reloaded.ActiveTenantID)
	suite.Equal(tenant.ID, *reloaded.ActiveTenantID)

	stored, err := NewInvitationRepository(suite.baseTestSuite.DB).GetByToken(invitation.Token)
	suite.NoError(err)
	suite.NotNil(stored.AcceptedAt)
}

// TestAcceptInvitationCaseInsensitiveEmail tests that the email comparison
// ignores case
func (suite *OnboardingRepositoryTestSuite) TestAcceptInvitationCaseInsensitiveEmail() {
	// Written raw so the stored email keeps its mixed case
	invitee := suite.factories.Profile.WithEmail("Nueva@Estudio.com")
	suite.NoError(suite.baseTestSuite.DB.Create(invitee).Error)

	invitation, _ := suite.seedInvitation("nueva@estudio.com")

	_, err := suite.repo.AcceptInvitation(invitation.Token, invitee.ID, OnboardingUpdate{
		FirstName: "Nueva",
		LastName:  "Empleada",
	}, time.Now())
	suite.NoError(err)
}

// TestAcceptInvitationEmailMismatch tests that another account cannot use the
// token
func (suite *OnboardingRepositoryTestSuite) TestAcceptInvitationEmailMismatch() {
	intruder := suite.factories.Profile.WithEmail("otra@estudio.com")
	suite.NoError(suite.profiles.Create(intruder))

	invitation, _ := suite.seedInvitation("nueva@estudio.com")

	_, err := suite.repo.AcceptInvitation(invitation.Token, intruder.ID, OnboardingUpdate{
		FirstName: "Otra",
		LastName:  "Persona",
	}, time.Now())
	suite.ErrorIs(err, apperrors.ErrEmailMismatch)
}

// TestAcceptInvitationRetryIsIdempotent tests that retrying a completed
// acceptance succeeds without duplicating the membership
func (suite *OnboardingRepositoryTestSuite) TestAcceptInvitationRetryIsIdempotent() {
	invitee := suite.factories.Profile.WithEmail("nueva@estudio.com")
	suite.NoError(suite.profiles.Create(invitee))

	invitation, tenant := suite.seedInvitation("nueva@estudio.com")
	update := OnboardingUpdate{FirstName: "Nueva", LastName: "Empleada"}

	_, err := suite.repo.AcceptInvitation(invitation.Token, invitee.ID, update, time.Now())
	suite.NoError(err)

	_, err = suite.repo.AcceptInvitation(invitation.Token, invitee.ID, update, time.Now())
	suite.NoError(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TenantMember{}).
		Where("user_id = ? AND tenant_id = ?", invitee.ID, tenant.ID).
		Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestAcceptInvitationExpired tests that an expired unaccepted invitation is
// rejected
func (suite *OnboardingRepositoryTestSuite) TestAcceptInvitationExpired() {
	invitee := suite.factories.Profile.WithEmail("nueva@estudio.com")
	suite.NoError(suite.profiles.Create(invitee))

	admin := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(admin))
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	invitation := suite.factories.Invitation.Expired(tenant.ID, suite.employeeRole().ID, admin.ID)
	invitation.Email = "nueva@estudio.com"
	saved, err := NewInvitationRepository(suite.baseTestSuite.DB).Upsert(invitation)
	suite.Require().NoError(err)

	_, err = suite.repo.AcceptInvitation(saved.Token, invitee.ID, OnboardingUpdate{
		FirstName: "Nueva",
		LastName:  "Empleada",
	}, time.Now())
	suite.ErrorIs(err, apperrors.ErrInvitationInvalid)
}

// TestAcceptInvitationUnknownToken tests the not-found mapping
func (suite *OnboardingRepositoryTestSuite) TestAcceptInvitationUnknownToken() {
	invitee := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(invitee))

	_, err := suite.repo.AcceptInvitation(uuid.New(), invitee.ID, OnboardingUpdate{
		FirstName: "Nadie",
		LastName:  "Nada",
	}, time.Now())
	suite.ErrorIs(err, apperrors.ErrInvitationNotFound)
}

// TestSwitchActiveTenant tests the membership check and pointer update
func (suite *OnboardingRepositoryTestSuite) TestSwitchActiveTenant() {
	user := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(user))

	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	role := suite.employeeRole()
	membership := suite.factories.Membership.Create(user.ID, tenant.ID, role.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(membership).Error)

	member, err := suite.repo.SwitchActiveTenant(user.ID, tenant.ID)
	suite.NoError(err)
	suite.Equal(role.ID, member.RoleID)

	reloaded, err := suite.profiles.GetByID(user.ID)
	suite.NoError(err)
	suite.Require().NotNil(reloaded.ActiveTenantID)
	suite.Equal(tenant.ID, *reloaded.ActiveTenantID)
	suite.Require().NotNil(reloaded.ActiveRoleID)
	suite.Equal(role.ID, *reloaded.ActiveRoleID)
}

// TestSwitchActiveTenantRoundTrip tests that switching A to B and back to A
// restores the original active tenant and role without touching memberships
func (suite *OnboardingRepositoryTestSuite) TestSwitchActiveTenantRoundTrip() {
	user := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(user))

	tenantA := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenantA).Error)
	tenantB := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenantB).Error)

	adminRole := suite.adminRole()
	employeeRole := suite.employeeRole()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.Create(user.ID, tenantA.ID, adminRole.ID)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Membership.Create(user.ID, tenantB.ID, employeeRole.ID)).Error)

	_, err := suite.repo.SwitchActiveTenant(user.ID, tenantA.ID)
	suite.NoError(err)
	_, err = suite.repo.SwitchActiveTenant(user.ID, tenantB.ID)
	suite.NoError(err)
	member, err := suite.repo.SwitchActiveTenant(user.ID, tenantA.ID)
	suite.NoError(err)
	suite.Equal(adminRole.ID, member.RoleID)

	reloaded, err := suite.profiles.GetByID(user.ID)
	suite.NoError(err)
	suite.Require().NotNil(reloaded.ActiveTenantID)
	suite.Equal(tenantA.ID, *reloaded.ActiveTenantID)
	suite.Require().NotNil(reloaded.ActiveRoleID)
	suite.Equal(adminRole.ID, *reloaded.ActiveRoleID)

	var memberships int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TenantMember{}).
		Where("user_id = ?", user.ID).
		Count(&memberships).Error)
	suite.Equal(int64(2), memberships)
}

// TestSwitchActiveTenantNotMember tests that non-members cannot switch in
func (suite *OnboardingRepositoryTestSuite) TestSwitchActiveTenantNotMember() {
	user := suite.factories.Profile.Create()
	suite.NoError(suite.profiles.Create(user))

	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)

	_, err := suite.repo.SwitchActiveTenant(user.ID, tenant.ID)
	suite.ErrorIs(err, apperrors.ErrNotTenantMember)

	reloaded, err := suite.profiles.GetByID(user.ID)
	suite.NoError(err)
	suite.Nil(reloaded.ActiveTenantID)
}

// TestOnboardingRepositoryTestSuite runs the test suite
func TestOnboardingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingRepositoryTestSuite))
}
