package models

import (
	"fmt"
	"time"
)

// Flight represents a scheduled flight that needs to be staffed
type Flight struct {
	BaseModel
	FlightNumber  string       `json:"flight_number" gorm:"size:10;uniqueIndex;not null" validate:"required,max=10"`
	DepartureCity string       `json:"departure_city" gorm:"size:100;not null" validate:"required,max=100"`
	ArrivalCity   string       `json:"arrival_city" gorm:"size:100;not null" validate:"required,max=100"`
	DepartureTime time.Time    `json:"departure_time" gorm:"not null;index" validate:"required"`
	ArrivalTime   time.Time    `json:"arrival_time" gorm:"not null" validate:"required"`
	AircraftType  string       `json:"aircraft_type" gorm:"size:50;not null" validate:"required,max=50"`
	CrewRequired  int          `json:"crew_required" gorm:"not null;default:4" validate:"required,min=2"`
	Status        FlightStatus `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
	CreatedBy     *uint        `json:"created_by,omitempty"`

	// Relationships
	Creator     *User              `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
	Assignments []FlightAssignment `json:"assignments,omitempty" gorm:"foreignKey:FlightID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Flight
func (Flight) TableName() string {
	return "flights"
}

// Route returns the human readable route of the flight
func (f *Flight) Route() string {
	return fmt.Sprintf("%s - %s", f.DepartureCity, f.ArrivalCity)
}

// DurationHours returns the scheduled flight duration in hours
func (f *Flight) DurationHours() float64 {
	return f.ArrivalTime.Sub(f.DepartureTime).Hours()
}

// Window returns the flight's scheduled time window
func (f *Flight) Window() (time.Time, time.Time) {
	return f.DepartureTime, f.ArrivalTime
}

// OverlapsWindow reports whether the flight's window intersects the given one.
func (f *Flight) OverlapsWindow(start, end time.Time) bool {
	return Overlaps(f.DepartureTime, f.ArrivalTime, start, end)
}

// Overlaps reports whether two half-open time windows [aStart, aEnd) and
// [bStart, bEnd) intersect. A flight ending exactly when another departs
// does not conflict, so both comparisons are strict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// PositionRequirement states how many crew of one position a flight needs.
type PositionRequirement struct {
	Position CrewPosition `json:"position"`
	Count    int          `json:"count"`
}

// DefaultComplement derives per-position requirements from a flight's total
// required crew. Every flight gets a pilot and a co-pilot, larger crews get
// an engineer, and the remainder is filled with attendants.
func DefaultComplement(crewRequired int) []PositionRequirement {
	reqs := []PositionRequirement{
		{Position: PositionPilot, Count: 1},
		{Position: PositionCoPilot, Count: 1},
	}
	remaining := crewRequired - 2
	if crewRequired >= 4 {
		reqs = append(reqs, PositionRequirement{Position: PositionEngineer, Count: 1})
		remaining--
	}
	if remaining > 0 {
		reqs = append(reqs, PositionRequirement{Position: PositionAttendant, Count: remaining})
	}
	return reqs
}
