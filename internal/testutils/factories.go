package testutils

import (
	"fmt"
	"time"

	"airline-crew-backend/internal/database/models"

	"github.com/google/uuid"
)

// FlightFactory provides methods to create test Flight data
type FlightFactory struct {
	seq int
}

// NewFlightFactory creates a new FlightFactory
func NewFlightFactory() *FlightFactory {
	return &FlightFactory{}
}

// Create creates a test Flight with default values. Each call gets a
// unique flight number and a non-overlapping departure window.
func (f *FlightFactory) Create() *models.Flight {
	f.seq++
	departure := time.Now().Add(time.Duration(24+f.seq*12) * time.Hour).Truncate(time.Minute)
	return &models.Flight{
		FlightNumber:  fmt.Sprintf("PS%03d", f.seq),
		DepartureCity: "Kyiv",
		ArrivalCity:   "Warsaw",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		AircraftType:  "Boeing 737",
		CrewRequired:  4,
		Status:        models.FlightStatusScheduled,
	}
}

// WithNumber sets a custom flight number
func (f *FlightFactory) WithNumber(number string) *models.Flight {
	flight := f.Create()
	flight.FlightNumber = number
	return flight
}

// WithWindow sets a custom departure and arrival time
func (f *FlightFactory) WithWindow(departure, arrival time.Time) *models.Flight {
	flight := f.Create()
	flight.DepartureTime = departure
	flight.ArrivalTime = arrival
	return flight
}

// WithStatus sets a custom flight status
func (f *FlightFactory) WithStatus(status models.FlightStatus) *models.Flight {
	flight := f.Create()
	flight.Status = status
	return flight
}

// WithCrewRequired sets a custom crew size
func (f *FlightFactory) WithCrewRequired(n int) *models.Flight {
	flight := f.Create()
	flight.CrewRequired = n
	return flight
}

// CrewMemberFactory provides methods to create test CrewMember data
type CrewMemberFactory struct {
	seq int
}

// NewCrewMemberFactory creates a new CrewMemberFactory
func NewCrewMemberFactory() *CrewMemberFactory {
	return &CrewMemberFactory{}
}

// Create creates a test CrewMember with default values and a unique
// employee code.
func (f *CrewMemberFactory) Create() *models.CrewMember {
	f.seq++
	return &models.CrewMember{
		EmployeeCode:       fmt.Sprintf("EMP%04d", f.seq),
		FirstName:          "Oleh",
		LastName:           fmt.Sprintf("Petrenko%d", f.seq),
		Position:           models.PositionAttendant,
		CertificationLevel: models.CertificationJunior,
		ExperienceYears:    2,
		IsAvailable:        true,
		Email:              fmt.Sprintf("crew%d@test.com", f.seq),
	}
}

// WithPosition sets a custom crew position
func (f *CrewMemberFactory) WithPosition(position models.CrewPosition) *models.CrewMember {
	member := f.Create()
	member.Position = position
	return member
}

// WithCertification sets position and certification level together
func (f *CrewMemberFactory) WithCertification(position models.CrewPosition, level models.CertificationLevel) *models.CrewMember {
	member := f.Create()
	member.Position = position
	member.CertificationLevel = level
	return member
}

// WithExperience sets a custom experience in years
func (f *CrewMemberFactory) WithExperience(years int) *models.CrewMember {
	member := f.Create()
	member.ExperienceYears = years
	return member
}

// Unavailable creates a crew member flagged as unavailable
func (f *CrewMemberFactory) Unavailable() *models.CrewMember {
	member := f.Create()
	member.IsAvailable = false
	return member
}

// AssignmentFactory provides methods to create test FlightAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test FlightAssignment linking the given flight and crew member
func (f *AssignmentFactory) Create(flightID, crewMemberID, assignedBy uint) *models.FlightAssignment {
	return &models.FlightAssignment{
		FlightID:     flightID,
		CrewMemberID: crewMemberID,
		AssignedBy:   assignedBy,
		Status:       models.AssignmentStatusAssigned,
		Notes:        "test assignment",
	}
}

// WithStatus creates an assignment with a custom status
func (f *AssignmentFactory) WithStatus(flightID, crewMemberID, assignedBy uint, status models.AssignmentStatus) *models.FlightAssignment {
	assignment := f.Create(flightID, crewMemberID, assignedBy)
	assignment.Status = status
	return assignment
}

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	f.seq++
	return &models.User{
		Subject:  uuid.New(),
		Username: fmt.Sprintf("dispatcher%d", f.seq),
		Email:    fmt.Sprintf("dispatcher%d@test.com", f.seq),
		FullName: "Test Dispatcher",
		Role:     models.RoleDispatcher,
	}
}

// WithRole sets a custom user role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// FactorySet bundles all factories with independent sequences per suite
type FactorySet struct {
	Flight     *FlightFactory
	CrewMember *CrewMemberFactory
	Assignment *AssignmentFactory
	User       *UserFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Flight:     NewFlightFactory(),
		CrewMember: NewCrewMemberFactory(),
		Assignment: NewAssignmentFactory(),
		User:       NewUserFactory(),
	}
}
