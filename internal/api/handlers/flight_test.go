package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airline-crew-backend/internal/api/handlers"
	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/mocks"
	"airline-crew-backend/internal/repository"
	"airline-crew-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// FlightHandlerTestSuite defines the test suite for flight endpoints
type FlightHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockFlightServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *FlightHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockFlightServiceInterface(suite.ctrl)

	handler := handlers.NewFlightHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(5))
		c.Next()
	})
	suite.router.POST("/flights", handler.CreateFlight)
	suite.router.GET("/flights", handler.ListFlights)
	suite.router.GET("/flights/needing-crew", handler.GetFlightsNeedingCrew)
	suite.router.GET("/flights/schedule/daily", handler.GetDailySchedule)
	suite.router.GET("/flights/by-number/:number", handler.GetFlightByNumber)
	suite.router.GET("/flights/:id", handler.GetFlight)
	suite.router.PUT("/flights/:id", handler.UpdateFlight)
	suite.router.PATCH("/flights/:id/status", handler.UpdateFlightStatus)
	suite.router.DELETE("/flights/:id", handler.DeleteFlight)
	suite.router.GET("/flights/:id/crew-summary", handler.GetFlightCrewSummary)
}

// TearDownTest cleans up after each test
func (suite *FlightHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FlightHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FlightHandlerTestSuite) TestCreateFlight() {
	departure := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(req *service.CreateFlightRequest, createdBy *uint) (*service.FlightResponse, error) {
			assert.Equal(suite.T(), "PS101", req.FlightNumber)
			assert.NotNil(suite.T(), createdBy)
			assert.Equal(suite.T(), uint(5), *createdBy)
			return &service.FlightResponse{ID: 1, FlightNumber: "PS101", Status: models.FlightStatusScheduled}, nil
		})

	w := suite.request(http.MethodPost, "/flights", gin.H{
		"flight_number":  "PS101",
		"departure_city": "Kyiv",
		"arrival_city":   "Warsaw",
		"departure_time": departure,
		"arrival_time":   departure.Add(2 * time.Hour),
		"aircraft_type":  "Boeing 737",
		"crew_required":  4,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *FlightHandlerTestSuite) TestCreateFlightDuplicateNumber() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrFlightNumberExists)

	departure := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	w := suite.request(http.MethodPost, "/flights", gin.H{
		"flight_number":  "PS101",
		"departure_city": "Kyiv",
		"arrival_city":   "Warsaw",
		"departure_time": departure,
		"arrival_time":   departure.Add(2 * time.Hour),
		"aircraft_type":  "Boeing 737",
		"crew_required":  4,
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *FlightHandlerTestSuite) TestGetFlightNotFound() {
	suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrFlightNotFound)

	w := suite.request(http.MethodGet, "/flights/99", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *FlightHandlerTestSuite) TestGetFlightByNumber() {
	suite.mockService.EXPECT().GetByNumber("PS101").Return(&service.FlightResponse{
		ID: 1, FlightNumber: "PS101",
	}, nil)

	w := suite.request(http.MethodGet, "/flights/by-number/PS101", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *FlightHandlerTestSuite) TestListFlightsWithFilters() {
	suite.mockService.EXPECT().
		List(gomock.Any(), 2, 10).
		DoAndReturn(func(filter repository.FlightFilter, page, pageSize int) (*service.FlightListResponse, error) {
			assert.NotNil(suite.T(), filter.Status)
			assert.Equal(suite.T(), models.FlightStatusScheduled, *filter.Status)
			assert.Equal(suite.T(), "Kyiv", filter.City)
			assert.NotNil(suite.T(), filter.DepartureFrom)
			return &service.FlightListResponse{Page: page, PageSize: pageSize}, nil
		})

	w := suite.request(http.MethodGet,
		"/flights?status=SCHEDULED&city=Kyiv&departure_from=2026-09-01T00:00:00Z&page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *FlightHandlerTestSuite) TestListFlightsRejectsUnknownStatus() {
	w := suite.request(http.MethodGet, "/flights?status=BOARDING", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FlightHandlerTestSuite) TestListFlightsRejectsMalformedTime() {
	w := suite.request(http.MethodGet, "/flights?departure_from=yesterday", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FlightHandlerTestSuite) TestGetDailySchedule() {
	suite.mockService.EXPECT().
		GetDailySchedule(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)).
		Return([]service.FlightResponse{{ID: 1, FlightNumber: "PS101"}}, nil)

	w := suite.request(http.MethodGet, "/flights/schedule/daily?date=2026-09-10", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *FlightHandlerTestSuite) TestGetDailyScheduleRejectsBadDate() {
	w := suite.request(http.MethodGet, "/flights/schedule/daily?date=10-09-2026", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FlightHandlerTestSuite) TestUpdateFlightStatus() {
	suite.mockService.EXPECT().
		UpdateStatus(uint(1), models.FlightStatusDelayed).
		Return(&service.FlightResponse{ID: 1, Status: models.FlightStatusDelayed}, nil)

	w := suite.request(http.MethodPatch, "/flights/1/status", gin.H{"status": "DELAYED"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *FlightHandlerTestSuite) TestUpdateFlightStatusRejectsUnknown() {
	suite.mockService.EXPECT().
		UpdateStatus(uint(1), models.FlightStatus("BOARDING")).
		Return(nil, apperrors.ErrInvalidStatus)

	w := suite.request(http.MethodPatch, "/flights/1/status", gin.H{"status": "BOARDING"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FlightHandlerTestSuite) TestDeleteDepartedFlight() {
	suite.mockService.EXPECT().Delete(uint(1)).Return(apperrors.ErrFlightAlreadyDeparted)

	w := suite.request(http.MethodDelete, "/flights/1", nil)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *FlightHandlerTestSuite) TestDeleteStaffedFlight() {
	suite.mockService.EXPECT().Delete(uint(1)).Return(apperrors.ErrFlightHasAssignments)

	w := suite.request(http.MethodDelete, "/flights/1", nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *FlightHandlerTestSuite) TestGetFlightCrewSummary() {
	suite.mockService.EXPECT().CrewSummary(uint(1)).Return(&service.FlightCrewSummaryResponse{
		FlightID:       1,
		FlightNumber:   "PS101",
		CrewRequired:   4,
		AssignedCount:  2,
		StaffingStatus: "PARTIALLY_STAFFED",
	}, nil)

	w := suite.request(http.MethodGet, "/flights/1/crew-summary", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var summary service.FlightCrewSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(suite.T(), "PARTIALLY_STAFFED", summary.StaffingStatus)
}

// TestFlightHandlerTestSuite runs the test suite
func TestFlightHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FlightHandlerTestSuite))
}
