package service

import (
	"errors"
	"fmt"
	"time"

	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// FlightService handles business logic for flights
type FlightService struct {
	repo           repository.FlightRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	validator      *validator.Validate
}

// NewFlightService creates a new flight service
func NewFlightService(repo repository.FlightRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface, validator *validator.Validate) *FlightService {
	return &FlightService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// CreateFlightRequest represents the request to create a flight
type CreateFlightRequest struct {
	FlightNumber  string    `json:"flight_number" validate:"required,max=10"`
	DepartureCity string    `json:"departure_city" validate:"required,max=100"`
	ArrivalCity   string    `json:"arrival_city" validate:"required,max=100"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
	AircraftType  string    `json:"aircraft_type" validate:"required,max=50"`
	CrewRequired  int       `json:"crew_required" validate:"required,min=2"`
}

// UpdateFlightRequest represents the request to update a flight
type UpdateFlightRequest struct {
	DepartureCity *string    `json:"departure_city,omitempty"`
	ArrivalCity   *string    `json:"arrival_city,omitempty"`
	DepartureTime *time.Time `json:"departure_time,omitempty"`
	ArrivalTime   *time.Time `json:"arrival_time,omitempty"`
	AircraftType  *string    `json:"aircraft_type,omitempty"`
	CrewRequired  *int       `json:"crew_required,omitempty"`
}

// FlightResponse represents the response for flight operations
type FlightResponse struct {
	ID            uint                `json:"id"`
	FlightNumber  string              `json:"flight_number"`
	DepartureCity string              `json:"departure_city"`
	ArrivalCity   string              `json:"arrival_city"`
	Route         string              `json:"route"`
	DepartureTime string              `json:"departure_time"`
	ArrivalTime   string              `json:"arrival_time"`
	DurationHours float64             `json:"duration_hours"`
	AircraftType  string              `json:"aircraft_type"`
	CrewRequired  int                 `json:"crew_required"`
	Status        models.FlightStatus `json:"status"`
}

// FlightListResponse represents a paginated list of flights
type FlightListResponse struct {
	Flights  []FlightResponse `json:"flights"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// FlightCrewSummaryResponse describes the staffing state of one flight
type FlightCrewSummaryResponse struct {
	FlightID       uint                        `json:"flight_id"`
	FlightNumber   string                      `json:"flight_number"`
	CrewRequired   int                         `json:"crew_required"`
	AssignedCount  int64                       `json:"assigned_count"`
	ByPosition     map[models.CrewPosition]int `json:"by_position"`
	StaffingStatus string                      `json:"staffing_status"`
}

// Create creates a new flight
func (s *FlightService) Create(req *CreateFlightRequest, createdBy *uint) (*FlightResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, apperrors.NewValidationError("arrival_time", "must be after departure time")
	}

	if _, err := s.repo.GetByNumber(req.FlightNumber); err == nil {
		return nil, apperrors.ErrFlightNumberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("check flight number", err)
	}

	flight := &models.Flight{
		FlightNumber:  req.FlightNumber,
		DepartureCity: req.DepartureCity,
		ArrivalCity:   req.ArrivalCity,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		AircraftType:  req.AircraftType,
		CrewRequired:  req.CrewRequired,
		Status:        models.FlightStatusScheduled,
		CreatedBy:     createdBy,
	}

	if err := s.repo.Create(flight); err != nil {
		return nil, apperrors.NewStorageError("create flight", err)
	}

	return s.toResponse(flight), nil
}

// GetByID retrieves a flight by ID
func (s *FlightService) GetByID(id uint) (*FlightResponse, error) {
	flight, err := s.getFlight(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(flight), nil
}

// GetByNumber retrieves a flight by flight number
func (s *FlightService) GetByNumber(flightNumber string) (*FlightResponse, error) {
	flight, err := s.repo.GetByNumber(flightNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, apperrors.NewStorageError("get flight", err)
	}
	return s.toResponse(flight), nil
}

// List retrieves flights matching the filter
func (s *FlightService) List(filter repository.FlightFilter, page, pageSize int) (*FlightListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	flights, total, err := s.repo.GetAll(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.NewStorageError("list flights", err)
	}
	return s.toListResponse(flights, total, page, pageSize), nil
}

// GetNeedingCrew retrieves upcoming flights that are not fully staffed
func (s *FlightService) GetNeedingCrew(page, pageSize int) (*FlightListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	flights, total, err := s.repo.GetNeedingCrew(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.NewStorageError("list flights needing crew", err)
	}
	return s.toListResponse(flights, total, page, pageSize), nil
}

// GetDailySchedule retrieves all flights departing on the given day
func (s *FlightService) GetDailySchedule(day time.Time) ([]FlightResponse, error) {
	flights, err := s.repo.GetDailySchedule(day)
	if err != nil {
		return nil, apperrors.NewStorageError("get daily schedule", err)
	}

	responses := make([]FlightResponse, len(flights))
	for i := range flights {
		responses[i] = *s.toResponse(&flights[i])
	}
	return responses, nil
}

// Update updates a flight
func (s *FlightService) Update(id uint, req *UpdateFlightRequest) (*FlightResponse, error) {
	flight, err := s.getFlight(id)
	if err != nil {
		return nil, err
	}

	if req.DepartureCity != nil {
		flight.DepartureCity = *req.DepartureCity
	}
	if req.ArrivalCity != nil {
		flight.ArrivalCity = *req.ArrivalCity
	}
	if req.DepartureTime != nil {
		flight.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = *req.ArrivalTime
	}
	if req.AircraftType != nil {
		flight.AircraftType = *req.AircraftType
	}
	if req.CrewRequired != nil {
		if *req.CrewRequired < 2 {
			return nil, apperrors.NewValidationError("crew_required", "must be at least 2")
		}
		flight.CrewRequired = *req.CrewRequired
	}

	if !flight.ArrivalTime.After(flight.DepartureTime) {
		return nil, apperrors.NewValidationError("arrival_time", "must be after departure time")
	}

	if err := s.repo.Update(flight); err != nil {
		return nil, apperrors.NewStorageError("update flight", err)
	}
	return s.toResponse(flight), nil
}

// UpdateStatus changes a flight's lifecycle status
func (s *FlightService) UpdateStatus(id uint, status models.FlightStatus) (*FlightResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	flight, err := s.getFlight(id)
	if err != nil {
		return nil, err
	}

	flight.Status = status
	if err := s.repo.Update(flight); err != nil {
		return nil, apperrors.NewStorageError("update flight status", err)
	}
	return s.toResponse(flight), nil
}

// Delete deletes a flight that has not yet departed and has no active
// assignments. Staffed flights must have their assignments cancelled first,
// otherwise the cascade would silently drop them.
func (s *FlightService) Delete(id uint) error {
	flight, err := s.getFlight(id)
	if err != nil {
		return err
	}

	if !flight.DepartureTime.After(time.Now()) {
		return apperrors.ErrFlightAlreadyDeparted
	}

	assigned, err := s.assignmentRepo.CountActiveForFlight(id)
	if err != nil {
		return apperrors.NewStorageError("count assignments", err)
	}
	if assigned > 0 {
		return apperrors.ErrFlightHasAssignments
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStorageError("delete flight", err)
	}
	return nil
}

// CrewSummary reports the staffing state of a flight, computed from flat
// assignment counts rather than preloaded object graphs.
func (s *FlightService) CrewSummary(id uint) (*FlightCrewSummaryResponse, error) {
	flight, err := s.getFlight(id)
	if err != nil {
		return nil, err
	}

	byPosition, err := s.assignmentRepo.CountActiveByPositionForFlight(id)
	if err != nil {
		return nil, apperrors.NewStorageError("count assignments by position", err)
	}

	assigned, err := s.assignmentRepo.CountActiveForFlight(id)
	if err != nil {
		return nil, apperrors.NewStorageError("count assignments", err)
	}

	staffing := "NOT_STAFFED"
	switch {
	case assigned >= int64(flight.CrewRequired):
		staffing = "FULLY_STAFFED"
	case assigned > 0:
		staffing = "PARTIALLY_STAFFED"
	}

	return &FlightCrewSummaryResponse{
		FlightID:       flight.ID,
		FlightNumber:   flight.FlightNumber,
		CrewRequired:   flight.CrewRequired,
		AssignedCount:  assigned,
		ByPosition:     byPosition,
		StaffingStatus: staffing,
	}, nil
}

func (s *FlightService) getFlight(id uint) (*models.Flight, error) {
	flight, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, apperrors.NewStorageError("get flight", err)
	}
	return flight, nil
}

func (s *FlightService) toResponse(flight *models.Flight) *FlightResponse {
	return &FlightResponse{
		ID:            flight.ID,
		FlightNumber:  flight.FlightNumber,
		DepartureCity: flight.DepartureCity,
		ArrivalCity:   flight.ArrivalCity,
		Route:         flight.Route(),
		DepartureTime: flight.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   flight.ArrivalTime.Format(time.RFC3339),
		DurationHours: flight.DurationHours(),
		AircraftType:  flight.AircraftType,
		CrewRequired:  flight.CrewRequired,
		Status:        flight.Status,
	}
}

func (s *FlightService) toListResponse(flights []models.Flight, total int64, page, pageSize int) *FlightListResponse {
	responses := make([]FlightResponse, len(flights))
	for i := range flights {
		responses[i] = *s.toResponse(&flights[i])
	}
	return &FlightListResponse{
		Flights:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
