package service_test

import (
	"testing"
	"time"

	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/mocks"
	"airline-crew-backend/internal/repository"
	"airline-crew-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FlightServiceTestSuite defines the test suite for FlightService
type FlightServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockFlightRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	service            *service.FlightService
}

// SetupTest sets up the test suite
func (suite *FlightServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockFlightRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.service = service.NewFlightService(suite.mockRepo, suite.mockAssignmentRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *FlightServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FlightServiceTestSuite) validCreateRequest() *service.CreateFlightRequest {
	departure := time.Now().Add(72 * time.Hour).Truncate(time.Minute)
	return &service.CreateFlightRequest{
		FlightNumber:  "PS101",
		DepartureCity: "Kyiv",
		ArrivalCity:   "Warsaw",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		AircraftType:  "Boeing 737",
		CrewRequired:  4,
	}
}

func (suite *FlightServiceTestSuite) TestCreateFlightSuccess() {
	req := suite.validCreateRequest()
	createdBy := uint(5)

	suite.mockRepo.EXPECT().GetByNumber("PS101").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.Flight) error {
		f.ID = 1
		return nil
	})

	resp, err := suite.service.Create(req, &createdBy)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(1), resp.ID)
	assert.Equal(suite.T(), "Kyiv - Warsaw", resp.Route)
	assert.Equal(suite.T(), models.FlightStatusScheduled, resp.Status)
	assert.InDelta(suite.T(), 2.0, resp.DurationHours, 0.001)
}

func (suite *FlightServiceTestSuite) TestCreateFlightDuplicateNumber() {
	req := suite.validCreateRequest()
	existing := &models.Flight{BaseModel: models.BaseModel{ID: 9}, FlightNumber: "PS101"}

	suite.mockRepo.EXPECT().GetByNumber("PS101").Return(existing, nil)

	_, err := suite.service.Create(req, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFlightNumberExists)
}

func (suite *FlightServiceTestSuite) TestCreateFlightArrivalBeforeDeparture() {
	req := suite.validCreateRequest()
	req.ArrivalTime = req.DepartureTime.Add(-time.Hour)

	_, err := suite.service.Create(req, nil)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *FlightServiceTestSuite) TestCreateFlightArrivalEqualsDeparture() {
	req := suite.validCreateRequest()
	req.ArrivalTime = req.DepartureTime

	_, err := suite.service.Create(req, nil)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *FlightServiceTestSuite) TestCreateFlightCrewRequiredTooSmall() {
	req := suite.validCreateRequest()
	req.CrewRequired = 1

	_, err := suite.service.Create(req, nil)

	assert.Error(suite.T(), err)
}

func (suite *FlightServiceTestSuite) TestGetByIDNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFlightNotFound)
}

func (suite *FlightServiceTestSuite) TestGetByNumberNotFound() {
	suite.mockRepo.EXPECT().GetByNumber("XX999").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByNumber("XX999")

	assert.ErrorIs(suite.T(), err, apperrors.ErrFlightNotFound)
}

func (suite *FlightServiceTestSuite) TestListNormalizesPagination() {
	status := models.FlightStatusScheduled
	filter := repository.FlightFilter{Status: &status}

	// Out-of-range paging falls back to the defaults
	suite.mockRepo.EXPECT().GetAll(filter, 20, 0).Return([]models.Flight{}, int64(0), nil)

	resp, err := suite.service.List(filter, 0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func (suite *FlightServiceTestSuite) TestUpdateRejectsInvertedWindow() {
	departure := time.Now().Add(72 * time.Hour)
	flight := &models.Flight{
		BaseModel:     models.BaseModel{ID: 1},
		FlightNumber:  "PS101",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		CrewRequired:  4,
		Status:        models.FlightStatusScheduled,
	}
	suite.mockRepo.EXPECT().GetByID(uint(1)).Return(flight, nil)

	badArrival := departure.Add(-time.Hour)
	_, err := suite.service.Update(1, &service.UpdateFlightRequest{ArrivalTime: &badArrival})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *FlightServiceTestSuite) TestUpdateRejectsCrewRequiredBelowMinimum() {
	departure := time.Now().Add(72 * time.Hour)
	flight := &models.Flight{
		BaseModel:     models.BaseModel{ID: 1},
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		CrewRequired:  4,
	}
	suite.mockRepo.EXPECT().GetByID(uint(1)).Return(flight, nil)

	one := 1
	_, err := suite.service.Update(1, &service.UpdateFlightRequest{CrewRequired: &one})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *FlightServiceTestSuite) TestUpdateStatusRejectsUnknownStatus() {
	_, err := suite.service.UpdateStatus(1, models.FlightStatus("BOARDING"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *FlightServiceTestSuite) TestUpdateStatus() {
	departure := time.Now().Add(72 * time.Hour)
	flight := &models.Flight{
		BaseModel:     models.BaseModel{ID: 1},
		FlightNumber:  "PS101",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		Status:        models.FlightStatusScheduled,
	}
	suite.mockRepo.EXPECT().GetByID(uint(1)).Return(flight, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.UpdateStatus(1, models.FlightStatusDelayed)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.FlightStatusDelayed, resp.Status)
}

func (suite *FlightServiceTestSuite) TestDeleteDepartedFlightFails() {
	flight := &models.Flight{
		BaseModel:     models.BaseModel{ID: 1},
		DepartureTime: time.Now().Add(-time.Hour),
		ArrivalTime:   time.Now().Add(time.Hour),
	}
	suite.mockRepo.EXPECT().GetByID(uint(1)).Return(flight, nil)

	err := suite.service.Delete(1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFlightAlreadyDeparted)
}

func (suite *FlightServiceTestSuite) TestDeleteStaffedFlightFails() {
	flight := &models.Flight{
		BaseModel:     models.BaseModel{ID: 1},
		FlightNumber:  "PS101",
		DepartureTime: time.Now().Add(72 * time.Hour),
		ArrivalTime:   time.Now().Add(74 * time.Hour),
		CrewRequired:  4,
	}
	suite.mockRepo.EXPECT().GetByID(uint(1)).Return(flight, nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveForFlight(uint(1)).Return(int64(2), nil)

	err := suite.service.Delete(1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFlightHasAssignments)
}

func (suite *FlightServiceTestSuite) TestDeleteUnstaffedFlight() {
	flight := &models.Flight{
		BaseModel:     models.BaseModel{ID: 1},
		FlightNumber:  "PS101",
		DepartureTime: time.Now().Add(72 * time.Hour),
		ArrivalTime:   time.Now().Add(74 * time.Hour),
		CrewRequired:  4,
	}
	suite.mockRepo.EXPECT().GetByID(uint(1)).Return(flight, nil)
	suite.mockAssignmentRepo.EXPECT().CountActiveForFlight(uint(1)).Return(int64(0), nil)
	suite.mockRepo.EXPECT().Delete(uint(1)).Return(nil)

	err := suite.service.Delete(1)

	assert.NoError(suite.T(), err)
}

func (suite *FlightServiceTestSuite) TestCrewSummaryStaffingStates() {
	tests := []struct {
		name     string
		assigned int64
		expected string
	}{
		{"fully staffed", 4, "FULLY_STAFFED"},
		{"over staffed still fully staffed", 5, "FULLY_STAFFED"},
		{"partially staffed", 2, "PARTIALLY_STAFFED"},
		{"not staffed", 0, "NOT_STAFFED"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			departure := time.Now().Add(72 * time.Hour)
			flight := &models.Flight{
				BaseModel:     models.BaseModel{ID: 1},
				FlightNumber:  "PS101",
				DepartureTime: departure,
				ArrivalTime:   departure.Add(2 * time.Hour),
				CrewRequired:  4,
			}
			suite.mockRepo.EXPECT().GetByID(uint(1)).Return(flight, nil)
			suite.mockAssignmentRepo.EXPECT().CountActiveByPositionForFlight(uint(1)).Return(map[models.CrewPosition]int{}, nil)
			suite.mockAssignmentRepo.EXPECT().CountActiveForFlight(uint(1)).Return(tt.assigned, nil)

			summary, err := suite.service.CrewSummary(1)

			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tt.expected, summary.StaffingStatus)
			assert.Equal(suite.T(), tt.assigned, summary.AssignedCount)
		})
	}
}

// TestFlightServiceTestSuite runs the test suite
func TestFlightServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FlightServiceTestSuite))
}
