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

// CrewHandlerTestSuite defines the test suite for crew endpoints
type CrewHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCrewServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *CrewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCrewServiceInterface(suite.ctrl)

	handler := handlers.NewCrewHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/crew", handler.CreateCrewMember)
	suite.router.GET("/crew", handler.ListCrewMembers)
	suite.router.GET("/crew/:id", handler.GetCrewMember)
	suite.router.PUT("/crew/:id", handler.UpdateCrewMember)
	suite.router.PATCH("/crew/:id/availability", handler.SetCrewAvailability)
	suite.router.DELETE("/crew/:id", handler.DeleteCrewMember)
	suite.router.GET("/crew/:id/workload", handler.GetCrewWorkload)
}

// TearDownTest cleans up after each test
func (suite *CrewHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CrewHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
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

func (suite *CrewHandlerTestSuite) TestCreateCrewMember() {
	suite.mockService.EXPECT().
		Create(&service.CreateCrewMemberRequest{
			EmployeeCode:    "EMP0001",
			FirstName:       "Oleh",
			LastName:        "Petrenko",
			Position:        models.PositionPilot,
			ExperienceYears: 8,
		}).
		Return(&service.CrewMemberResponse{ID: 1, EmployeeCode: "EMP0001", Position: models.PositionPilot}, nil)

	w := suite.request(http.MethodPost, "/crew", gin.H{
		"employee_code":    "EMP0001",
		"first_name":       "Oleh",
		"last_name":        "Petrenko",
		"position":         "PILOT",
		"experience_years": 8,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *CrewHandlerTestSuite) TestCreateCrewMemberDuplicateCode() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrEmployeeCodeExists)

	w := suite.request(http.MethodPost, "/crew", gin.H{
		"employee_code": "EMP0001",
		"first_name":    "Oleh",
		"last_name":     "Petrenko",
		"position":      "PILOT",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *CrewHandlerTestSuite) TestGetCrewMemberNotFound() {
	suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrCrewMemberNotFound)

	w := suite.request(http.MethodGet, "/crew/99", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CrewHandlerTestSuite) TestListCrewMembersWithPositionFilter() {
	suite.mockService.EXPECT().
		List(gomock.Any(), 1, 20).
		DoAndReturn(func(position *models.CrewPosition, page, pageSize int) (*service.CrewMemberListResponse, error) {
			assert.NotNil(suite.T(), position)
			assert.Equal(suite.T(), models.PositionEngineer, *position)
			return &service.CrewMemberListResponse{Page: page, PageSize: pageSize}, nil
		})

	w := suite.request(http.MethodGet, "/crew?position=ENGINEER", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *CrewHandlerTestSuite) TestListCrewMembersRejectsUnknownPosition() {
	w := suite.request(http.MethodGet, "/crew?position=NAVIGATOR", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CrewHandlerTestSuite) TestSetCrewAvailability() {
	suite.mockService.EXPECT().SetAvailability(uint(7), false).Return(&service.CrewMemberResponse{
		ID: 7, IsAvailable: false,
	}, nil)

	w := suite.request(http.MethodPatch, "/crew/7/availability", gin.H{"is_available": false})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.CrewMemberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(suite.T(), resp.IsAvailable)
}

func (suite *CrewHandlerTestSuite) TestSetCrewAvailabilityRequiresFlag() {
	w := suite.request(http.MethodPatch, "/crew/7/availability", gin.H{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CrewHandlerTestSuite) TestGetCrewWorkload() {
	suite.mockService.EXPECT().
		Workload(uint(7), gomock.Any(), gomock.Any()).
		Return(&service.CrewWorkloadResponse{CrewMemberID: 7, FlightCount: 2, TotalHours: 5}, nil)

	w := suite.request(http.MethodGet,
		"/crew/7/workload?start=2026-09-01T00:00:00Z&end=2026-09-08T00:00:00Z", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *CrewHandlerTestSuite) TestGetCrewWorkloadRequiresRange() {
	w := suite.request(http.MethodGet, "/crew/7/workload", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CrewHandlerTestSuite) TestGetCrewWorkloadRejectsInvertedRange() {
	w := suite.request(http.MethodGet,
		"/crew/7/workload?start=2026-09-08T00:00:00Z&end=2026-09-01T00:00:00Z", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CrewHandlerTestSuite) TestDeleteCrewMember() {
	suite.mockService.EXPECT().Delete(uint(7)).Return(nil)

	w := suite.request(http.MethodDelete, "/crew/7", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestCrewHandlerTestSuite runs the test suite
func TestCrewHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CrewHandlerTestSuite))
}
