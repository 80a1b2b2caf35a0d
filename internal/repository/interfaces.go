package repository

import (
	"time"

	"airline-crew-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// FlightRepositoryInterface defines the interface for flight repository operations
type FlightRepositoryInterface interface {
	Create(flight *models.Flight) error
	GetByID(id uint) (*models.Flight, error)
	GetByNumber(flightNumber string) (*models.Flight, error)
	GetAll(filter FlightFilter, limit, offset int) ([]models.Flight, int64, error)
	GetNeedingCrew(limit, offset int) ([]models.Flight, int64, error)
	GetDailySchedule(day time.Time) ([]models.Flight, error)
	Update(flight *models.Flight) error
	Delete(id uint) error
}

// CrewRepositoryInterface defines the interface for crew member repository operations
type CrewRepositoryInterface interface {
	Create(member *models.CrewMember) error
	GetByID(id uint) (*models.CrewMember, error)
	GetByEmployeeCode(code string) (*models.CrewMember, error)
	GetByPosition(position models.CrewPosition) ([]models.CrewMember, error)
	GetAll(position *models.CrewPosition, limit, offset int) ([]models.CrewMember, int64, error)
	Update(member *models.CrewMember) error
	SetAvailability(id uint, available bool) error
	Delete(id uint) error
}

// AssignmentRepositoryInterface is the narrow port the scheduling engine
// talks to. InsertAssignment-style creates must surface a distinguishable
// conflict error when the active-pair unique index is violated.
type AssignmentRepositoryInterface interface {
	Create(assignment *models.FlightAssignment) error
	GetByID(id uint) (*models.FlightAssignment, error)
	GetByFlightID(flightID uint) ([]models.FlightAssignment, error)
	GetByCrewMemberID(crewMemberID uint, activeOnly bool) ([]models.FlightAssignment, error)
	GetActiveForCrew(crewMemberID uint) ([]models.FlightAssignment, error)
	GetActiveByFlightAndCrew(flightID, crewMemberID uint) (*models.FlightAssignment, error)
	CountActiveByPositionForFlight(flightID uint) (map[models.CrewPosition]int, error)
	CountActiveForFlight(flightID uint) (int64, error)
	GetByDateRange(start, end time.Time, limit, offset int) ([]models.FlightAssignment, int64, error)
	GetAll(limit, offset int) ([]models.FlightAssignment, int64, error)
	Update(assignment *models.FlightAssignment) error
	Delete(id uint) error
	CountByStatus() (map[models.AssignmentStatus]int64, error)
	CountAssignedSince(since time.Time) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetBySubject(subject uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}
