//go:build integration
// +build integration

package repository

import (
	"testing"

	"studio-booking-backend/internal/database/models"
	"studio-booking-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet

	tenant *models.Tenant
	user   *models.Profile
	role   *models.Role
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenant = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)

	suite.user = suite.factories.Profile.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.user).Error)

	role, err := NewRoleRepository(suite.baseTestSuite.DB).GetByName(models.RoleEmployee)
	suite.NoError(err)
	suite.role = role
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestExists tests the membership lookup
func (suite *MembershipRepositoryTestSuite) TestExists() {
	exists, err := suite.repo.Exists(suite.user.ID, suite.tenant.ID)
	suite.NoError(err)
	suite.False(exists)

	membership := suite.factories.Membership.Create(suite.user.ID, suite.tenant.ID, suite.role.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(membership).Error)

	exists, err = suite.repo.Exists(suite.user.ID, suite.tenant.ID)
	suite.NoError(err)
	suite.True(exists)
}

// TestUniquePerUserAndTenant tests that the same user cannot join a studio
// twice
func (suite *MembershipRepositoryTestSuite) TestUniquePerUserAndTenant() {
	first := suite.factories.Membership.Create(suite.user.ID, suite.tenant.ID, suite.role.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(first).Error)

	second := suite.factories.Membership.Create(suite.user.ID, suite.tenant.ID, suite.role.ID)
	err := suite.baseTestSuite.DB.Create(second).Error
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByTenantID tests the preloaded, ordered member listing
func (suite *MembershipRepositoryTestSuite) TestGetByTenantID() {
	other := suite.factories.Profile.WithEmail("pedro@estudio.com")
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	m1 := suite.factories.Membership.Create(suite.user.ID, suite.tenant.ID, suite.role.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(m1).Error)
	m2 := suite.factories.Membership.Create(other.ID, suite.tenant.ID, suite.role.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(m2).Error)

	members, err := suite.repo.GetByTenantID(suite.tenant.ID)
	suite.NoError(err)
	suite.Len(members, 2)

	// User and Role come preloaded so callers can render the team view
	// without extra queries
	suite.Equal(suite.user.Email, members[0].User.Email)
	suite.Equal(models.RoleEmployee, members[0].Role.Name)
}

// TestDelete tests removing a membership
func (suite *MembershipRepositoryTestSuite) TestDelete() {
	membership := suite.factories.Membership.Create(suite.user.ID, suite.tenant.ID, suite.role.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(membership).Error)

	suite.NoError(suite.repo.Delete(suite.user.ID, suite.tenant.ID))

	exists, err := suite.repo.Exists(suite.user.ID, suite.tenant.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
