package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"airline-crew-backend/internal/api/handlers"
	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/mocks"
	"airline-crew-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for assignment endpoints
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssignmentServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *AssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssignmentServiceInterface(suite.ctrl)

	handler := handlers.NewAssignmentHandler(suite.mockService)

	suite.router = gin.New()
	// Stand-in for the auth middleware: every request acts as user 5
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(5))
		c.Next()
	})
	suite.router.POST("/assignments", handler.CreateAssignment)
	suite.router.GET("/assignments/:id", handler.GetAssignment)
	suite.router.GET("/assignments", handler.ListAssignments)
	suite.router.POST("/assignments/:id/confirm", handler.ConfirmAssignment)
	suite.router.POST("/assignments/:id/cancel", handler.CancelAssignment)
	suite.router.DELETE("/assignments/:id", handler.DeleteAssignment)
	suite.router.POST("/flights/:id/auto-assign", handler.AutoAssignCrew)
	suite.router.GET("/flights/:id/available-crew", handler.GetAvailableCrew)
	suite.router.GET("/crew/:id/assignments", handler.GetCrewMemberAssignments)
}

// TearDownTest cleans up after each test
func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
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

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment() {
	suite.mockService.EXPECT().
		Create(&service.CreateAssignmentRequest{FlightID: 1, CrewMemberID: 7}, uint(5)).
		Return(&service.AssignmentResponse{
			ID: 33, FlightID: 1, CrewMemberID: 7, Status: models.AssignmentStatusAssigned, AssignedBy: 5,
		}, nil)

	w := suite.request(http.MethodPost, "/assignments", gin.H{"flight_id": 1, "crew_member_id": 7})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var resp service.AssignmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), uint(33), resp.ID)
	assert.Equal(suite.T(), uint(5), resp.AssignedBy)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignmentMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/assignments", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignmentConflict() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), uint(5)).
		Return(nil, apperrors.ErrDuplicateAssignment)

	w := suite.request(http.MethodPost, "/assignments", gin.H{"flight_id": 1, "crew_member_id": 7})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignmentIneligibleCrew() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), uint(5)).
		Return(nil, apperrors.NewEligibilityError("marked unavailable"))

	w := suite.request(http.MethodPost, "/assignments", gin.H{"flight_id": 1, "crew_member_id": 7})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignmentNotFound() {
	suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrAssignmentNotFound)

	w := suite.request(http.MethodGet, "/assignments/99", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignmentInvalidID() {
	w := suite.request(http.MethodGet, "/assignments/abc", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestConfirmAssignment() {
	suite.mockService.EXPECT().Confirm(uint(10)).Return(&service.AssignmentResponse{
		ID: 10, Status: models.AssignmentStatusConfirmed,
	}, nil)

	w := suite.request(http.MethodPost, "/assignments/10/confirm", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestConfirmCancelledAssignment() {
	suite.mockService.EXPECT().Confirm(uint(10)).Return(nil,
		apperrors.NewInvalidTransitionError(string(models.AssignmentStatusCancelled), string(models.AssignmentStatusConfirmed)))

	w := suite.request(http.MethodPost, "/assignments/10/confirm", nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCancelAssignmentWithReason() {
	suite.mockService.EXPECT().Cancel(uint(10), "crew member sick").Return(&service.AssignmentResponse{
		ID: 10, Status: models.AssignmentStatusCancelled, Notes: "crew member sick",
	}, nil)

	w := suite.request(http.MethodPost, "/assignments/10/cancel", gin.H{"reason": "crew member sick"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCancelAssignmentWithoutBody() {
	suite.mockService.EXPECT().Cancel(uint(10), "").Return(&service.AssignmentResponse{
		ID: 10, Status: models.AssignmentStatusCancelled,
	}, nil)

	w := suite.request(http.MethodPost, "/assignments/10/cancel", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestDeleteAssignmentAfterDeparture() {
	suite.mockService.EXPECT().Delete(uint(10)).Return(apperrors.ErrFlightAlreadyDeparted)

	w := suite.request(http.MethodDelete, "/assignments/10", nil)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestDeleteAssignment() {
	suite.mockService.EXPECT().Delete(uint(10)).Return(nil)

	w := suite.request(http.MethodDelete, "/assignments/10", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestAutoAssignCrew() {
	suite.mockService.EXPECT().
		AutoAssign(gomock.Any(), uint(1), uint(5)).
		Return([]service.AssignmentResponse{
			{ID: 50, FlightID: 1, CrewMemberID: 2, Status: models.AssignmentStatusAssigned},
			{ID: 51, FlightID: 1, CrewMemberID: 4, Status: models.AssignmentStatusAssigned},
		}, nil)

	w := suite.request(http.MethodPost, "/flights/1/auto-assign", nil)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var created []service.AssignmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(suite.T(), created, 2)
}

func (suite *AssignmentHandlerTestSuite) TestAutoAssignCrewPartialResultStillCreated() {
	suite.mockService.EXPECT().
		AutoAssign(gomock.Any(), uint(1), uint(5)).
		Return([]service.AssignmentResponse{}, nil)

	w := suite.request(http.MethodPost, "/flights/1/auto-assign", nil)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestAutoAssignCrewOnCompletedFlight() {
	suite.mockService.EXPECT().
		AutoAssign(gomock.Any(), uint(1), uint(5)).
		Return(nil, apperrors.ErrFlightNotAssignable)

	w := suite.request(http.MethodPost, "/flights/1/auto-assign", nil)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAvailableCrew() {
	suite.mockService.EXPECT().AvailableCrew(uint(1)).Return([]service.CrewMemberResponse{
		{ID: 2, Position: models.PositionPilot},
	}, nil)

	w := suite.request(http.MethodGet, "/flights/1/available-crew", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetCrewMemberAssignmentsActiveOnly() {
	suite.mockService.EXPECT().GetByCrewMember(uint(7), true).Return([]service.AssignmentResponse{}, nil)

	w := suite.request(http.MethodGet, "/crew/7/assignments?active_only=true", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestStorageErrorMapsToServiceUnavailable() {
	suite.mockService.EXPECT().GetByID(uint(10)).Return(nil, apperrors.NewStorageError("get assignment", assert.AnError))

	w := suite.request(http.MethodGet, "/assignments/10", nil)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

// TestAssignmentHandlerTestSuite runs the test suite
func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
