package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-booking-backend/internal/api/handlers"
	"studio-booking-backend/internal/auth"
	"studio-booking-backend/internal/database/models"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/mocks"
	"studio-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBookingServiceInterface
	mockTeam    *mocks.MockTeamServiceInterface
	sessions    *auth.SessionService
	router      *gin.Engine
	token       string
}

// SetupTest sets up the test suite
func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBookingServiceInterface(suite.ctrl)
	suite.mockTeam = mocks.NewMockTeamServiceInterface(suite.ctrl)

	var err error
	suite.sessions, err = auth.NewSessionService("test-secret", time.Hour, 24*time.Hour)
	suite.Require().NoError(err)

	authMiddleware := auth.NewMiddleware(suite.sessions)
	bookingHandler := handlers.NewBookingHandler(suite.mockService)
	teamHandler := handlers.NewTeamHandler(suite.mockTeam)

	suite.router = gin.New()
	group := suite.router.Group("/api/v1", authMiddleware.RequireAuth())
	group.GET("/bookings", bookingHandler.ListBookings)
	group.POST("/bookings", bookingHandler.CreateBooking)
	group.GET("/team/employees", teamHandler.GetEmployees)

	tenantID := uuid.New()
	profile := &models.Profile{Email: "ana@estudio.com", ActiveTenantID: &tenantID}
	profile.ID = uuid.New()
	role := &models.Role{Name: models.RoleAdmin}
	role.ID = uuid.New()
	pair, err := suite.sessions.IssueTokenPair(profile, role)
	suite.Require().NoError(err)
	suite.token = pair.AccessToken
}

// TearDownTest cleans up after each test
func (suite *BookingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BookingHandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestListBookingsWithRange tests that the query window reaches the service
func (suite *BookingHandlerTestSuite) TestListBookingsWithRange() {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	suite.mockService.EXPECT().
		ListRange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *auth.SessionClaims, req *service.BookingRangeRequest) ([]service.BookingResponse, error) {
			assert.True(suite.T(), from.Equal(req.From))
			assert.True(suite.T(), to.Equal(req.To))
			return []service.BookingResponse{}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bookings?from="+from.Format(time.RFC3339)+"&to="+to.Format(time.RFC3339), nil)
	w := suite.do(req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestListBookingsBadTimestamp tests the malformed timestamp guard
func (suite *BookingHandlerTestSuite) TestListBookingsBadTimestamp() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?from=ayer", nil)
	w := suite.do(req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateBooking tests the happy path
func (suite *BookingHandlerTestSuite) TestCreateBooking() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *auth.SessionClaims, req *service.CreateBookingRequest) (*service.BookingResponse, error) {
			assert.Equal(suite.T(), "María Pérez", req.CustomerName)
			return &service.BookingResponse{ID: uuid.New(), CustomerName: req.CustomerName, Status: "confirmed"}, nil
		})

	payload, _ := json.Marshal(map[string]interface{}{
		"customer_name": "María Pérez",
		"starts_at":     "2026-03-02T10:00:00Z",
		"ends_at":       "2026-03-02T11:00:00Z",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

// TestCreateBookingInvalidWindow tests the 400 mapping when the booking ends
// before it starts
func (suite *BookingHandlerTestSuite) TestCreateBookingInvalidWindow() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidTimeRange)

	payload, _ := json.Marshal(map[string]interface{}{
		"customer_name": "María Pérez",
		"starts_at":     "2026-03-02T11:00:00Z",
		"ends_at":       "2026-03-02T10:00:00Z",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetEmployees tests the team listing
func (suite *BookingHandlerTestSuite) TestGetEmployees() {
	suite.mockTeam.EXPECT().
		GetTenantEmployees(gomock.Any()).
		Return([]service.EmployeeResponse{
			{Email: "ana@estudio.com", RoleName: "admin", RoleLabel: "Administrador"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/team/employees", nil)
	w := suite.do(req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp []service.EmployeeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	assert.Equal(suite.T(), "Administrador", resp[0].RoleLabel)
}

// TestBookingHandlerTestSuite runs the test suite
func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
