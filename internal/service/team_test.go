package service_test

import (
	"testing"

	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/mocks"
	"studio-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberships *mocks.MockMembershipRepositoryInterface
	mockProfiles    *mocks.MockProfileRepositoryInterface
	mockRoles       *mocks.MockRoleRepositoryInterface
	svc             *service.TeamService

	tenantID uuid.UUID
	claims   *auth.SessionClaims
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockRoles = mocks.NewMockRoleRepositoryInterface(suite.ctrl)

	suite.svc = service.NewTeamService(suite.mockMemberships, suite.mockProfiles, suite.mockRoles)

	suite.tenantID = uuid.New()
	suite.claims = &auth.SessionClaims{
		UserID:   uuid.NewString(),
		Email:    "ana@estudio.com",
		TenantID: suite.tenantID.String(),
		Role:     "admin",
	}
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetTenantEmployees tests the team listing with preloaded profiles
func (suite *TeamServiceTestSuite) TestGetTenantEmployees() {
	adminRole := models.Role{Name: models.RoleAdmin}
	adminRole.ID = uuid.New()
	employeeRole := models.Role{Name: models.RoleEmployee}
	employeeRole.ID = uuid.New()

	ana := models.Profile{Email: "ana@estudio.com", FirstName: "Ana", LastName: "García"}
	ana.ID = uuid.New()
	pedro := models.Profile{Email: "pedro@estudio.com", FirstName: "Pedro"}
	pedro.ID = uuid.New()

	members := []models.TenantMember{
		{UserID: ana.ID, TenantID: suite.tenantID, RoleID: adminRole.ID, User: ana},
		{UserID: pedro.ID, TenantID: suite.tenantID, RoleID: employeeRole.ID, User: pedro},
	}

	suite.mockMemberships.EXPECT().GetByTenantID(suite.tenantID).Return(members, nil)
	suite.mockRoles.EXPECT().GetAll().Return([]models.Role{adminRole, employeeRole}, nil)

	employees, err := suite.svc.GetTenantEmployees(suite.claims)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), employees, 2)
	assert.Equal(suite.T(), "Ana García", employees[0].FullName)
	assert.Equal(suite.T(), "admin", employees[0].RoleName)
	assert.Equal(suite.T(), "Administrador", employees[0].RoleLabel)
	assert.Equal(suite.T(), "Pedro", employees[1].FullName)
	assert.Equal(suite.T(), "Empleado", employees[1].RoleLabel)
}

// TestGetTenantEmployeesLoadsMissingProfiles tests the fallback profile load
// when the membership rows come without their relation
func (suite *TeamServiceTestSuite) TestGetTenantEmployeesLoadsMissingProfiles() {
	employeeRole := models.Role{Name: models.RoleEmployee}
	employeeRole.ID = uuid.New()

	pedro := &models.Profile{Email: "pedro@estudio.com", FirstName: "Pedro"}
	pedro.ID = uuid.New()

	members := []models.TenantMember{
		{UserID: pedro.ID, TenantID: suite.tenantID, RoleID: employeeRole.ID},
	}

	suite.mockMemberships.EXPECT().GetByTenantID(suite.tenantID).Return(members, nil)
	suite.mockRoles.EXPECT().GetAll().Return([]models.Role{employeeRole}, nil)
	suite.mockProfiles.EXPECT().GetByID(pedro.ID).Return(pedro, nil)

	employees, err := suite.svc.GetTenantEmployees(suite.claims)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), employees, 1)
	assert.Equal(suite.T(), "pedro@estudio.com", employees[0].Email)
}

// TestGetTenantEmployeesWithoutActiveTenant tests the tenantless session case
func (suite *TeamServiceTestSuite) TestGetTenantEmployeesWithoutActiveTenant() {
	claims := &auth.SessionClaims{UserID: uuid.NewString(), Email: "ana@estudio.com"}

	employees, err := suite.svc.GetTenantEmployees(claims)

	assert.Nil(suite.T(), employees)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTenantMember)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
