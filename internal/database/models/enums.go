package models

// FlightStatus defines the lifecycle states of a flight
type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusCompleted FlightStatus = "COMPLETED"
)

// IsValid checks if the FlightStatus is valid
func (s FlightStatus) IsValid() bool {
	switch s {
	case FlightStatusScheduled, FlightStatusDelayed, FlightStatusCancelled, FlightStatusCompleted:
		return true
	}
	return false
}

// IsAssignable reports whether crew may still be attached to a flight in
// this state. Cancelled and completed flights never accept assignments.
func (s FlightStatus) IsAssignable() bool {
	return s == FlightStatusScheduled || s == FlightStatusDelayed
}

// AssignmentStatus defines the lifecycle states of a crew assignment
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "ASSIGNED"
	AssignmentStatusConfirmed AssignmentStatus = "CONFIRMED"
	AssignmentStatusCancelled AssignmentStatus = "CANCELLED"
)

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusConfirmed, AssignmentStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the assignment still occupies the crew member's
// schedule. Cancelled rows are kept for history but never count.
func (s AssignmentStatus) IsActive() bool {
	return s == AssignmentStatusAssigned || s == AssignmentStatusConfirmed
}

// CanTransitionTo encodes the assignment state machine. CANCELLED is
// terminal; a fresh row must be created to re-assign the same pair.
func (s AssignmentStatus) CanTransitionTo(target AssignmentStatus) bool {
	switch s {
	case AssignmentStatusAssigned:
		return target == AssignmentStatusConfirmed || target == AssignmentStatusCancelled
	case AssignmentStatusConfirmed:
		return target == AssignmentStatusCancelled
	}
	return false
}

// CrewPosition defines the roles a crew member can hold
type CrewPosition string

const (
	PositionPilot     CrewPosition = "PILOT"
	PositionCoPilot   CrewPosition = "CO_PILOT"
	PositionEngineer  CrewPosition = "ENGINEER"
	PositionAttendant CrewPosition = "ATTENDANT"
)

// PositionPriority is the fill order used by auto-assignment. Cockpit
// positions come first because they gate flight legality.
var PositionPriority = []CrewPosition{
	PositionPilot,
	PositionCoPilot,
	PositionEngineer,
	PositionAttendant,
}

// IsValid checks if the CrewPosition is valid
func (p CrewPosition) IsValid() bool {
	switch p {
	case PositionPilot, PositionCoPilot, PositionEngineer, PositionAttendant:
		return true
	}
	return false
}

// CertificationLevel defines the ordered certification tiers
type CertificationLevel string

const (
	CertificationJunior  CertificationLevel = "JUNIOR"
	CertificationSenior  CertificationLevel = "SENIOR"
	CertificationCaptain CertificationLevel = "CAPTAIN"
)

// IsValid checks if the CertificationLevel is valid
func (c CertificationLevel) IsValid() bool {
	switch c {
	case CertificationJunior, CertificationSenior, CertificationCaptain:
		return true
	}
	return false
}

// Rank returns the ordering of the certification tier, higher is more senior.
func (c CertificationLevel) Rank() int {
	switch c {
	case CertificationCaptain:
		return 3
	case CertificationSenior:
		return 2
	case CertificationJunior:
		return 1
	}
	return 0
}

// UserRole defines application roles carried in Keycloak tokens
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleDispatcher UserRole = "dispatcher"
	RoleViewer     UserRole = "viewer"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDispatcher, RoleViewer:
		return true
	}
	return false
}

// CanManageAssignments reports whether the role may create, confirm or
// cancel crew assignments.
func (r UserRole) CanManageAssignments() bool {
	return r == RoleAdmin || r == RoleDispatcher
}
