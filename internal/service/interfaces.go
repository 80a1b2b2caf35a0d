package service

import (
	"context"
	"time"

	"airline-crew-backend/internal/database/models"
	"airline-crew-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssignmentServiceInterface defines the interface for the assignment engine
type AssignmentServiceInterface interface {
	Create(req *CreateAssignmentRequest, assignedBy uint) (*AssignmentResponse, error)
	GetByID(id uint) (*AssignmentResponse, error)
	GetByFlight(flightID uint) ([]AssignmentResponse, error)
	GetByCrewMember(crewMemberID uint, activeOnly bool) ([]AssignmentResponse, error)
	GetByDateRange(start, end time.Time, page, pageSize int) (*AssignmentListResponse, error)
	GetAll(page, pageSize int) (*AssignmentListResponse, error)
	Update(id uint, req *UpdateAssignmentRequest) (*AssignmentResponse, error)
	Confirm(id uint) (*AssignmentResponse, error)
	Cancel(id uint, reason string) (*AssignmentResponse, error)
	Delete(id uint) error
	AvailableCrew(flightID uint) ([]CrewMemberResponse, error)
	Summary() (*AssignmentSummaryResponse, error)
	AutoAssign(ctx context.Context, flightID uint, assignedBy uint) ([]AssignmentResponse, error)
}

// FlightServiceInterface defines the interface for flight service
type FlightServiceInterface interface {
	Create(req *CreateFlightRequest, createdBy *uint) (*FlightResponse, error)
	GetByID(id uint) (*FlightResponse, error)
	GetByNumber(flightNumber string) (*FlightResponse, error)
	List(filter repository.FlightFilter, page, pageSize int) (*FlightListResponse, error)
	GetNeedingCrew(page, pageSize int) (*FlightListResponse, error)
	GetDailySchedule(day time.Time) ([]FlightResponse, error)
	Update(id uint, req *UpdateFlightRequest) (*FlightResponse, error)
	UpdateStatus(id uint, status models.FlightStatus) (*FlightResponse, error)
	Delete(id uint) error
	CrewSummary(id uint) (*FlightCrewSummaryResponse, error)
}

// CrewServiceInterface defines the interface for crew service
type CrewServiceInterface interface {
	Create(req *CreateCrewMemberRequest) (*CrewMemberResponse, error)
	GetByID(id uint) (*CrewMemberResponse, error)
	List(position *models.CrewPosition, page, pageSize int) (*CrewMemberListResponse, error)
	Update(id uint, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error)
	SetAvailability(id uint, available bool) (*CrewMemberResponse, error)
	Delete(id uint) error
	Workload(id uint, start, end time.Time) (*CrewWorkloadResponse, error)
}
