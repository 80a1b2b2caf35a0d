package models

import "time"

// FlightAssignment attaches one crew member to one flight. At most one
// non-cancelled row may exist per (flight, crew member) pair; the partial
// unique index created in database.Initialize enforces this at commit time.
type FlightAssignment struct {
	ID           uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	FlightID     uint             `json:"flight_id" gorm:"not null;index" validate:"required"`
	CrewMemberID uint             `json:"crew_member_id" gorm:"not null;index" validate:"required"`
	AssignedBy   uint             `json:"assigned_by" gorm:"not null" validate:"required"`
	Status       AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'ASSIGNED'"`
	Notes        string           `json:"notes,omitempty" gorm:"type:text"`
	AssignedAt   time.Time        `json:"assigned_at" gorm:"not null;autoCreateTime"`

	// Relationships
	Flight       *Flight     `json:"flight,omitempty" gorm:"foreignKey:FlightID;constraint:OnDelete:CASCADE"`
	CrewMember   *CrewMember `json:"crew_member,omitempty" gorm:"foreignKey:CrewMemberID;constraint:OnDelete:CASCADE"`
	AssignedUser *User       `json:"assigned_user,omitempty" gorm:"foreignKey:AssignedBy;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for FlightAssignment
func (FlightAssignment) TableName() string {
	return "flight_assignments"
}

// IsActive reports whether this assignment occupies the crew member's schedule
func (a *FlightAssignment) IsActive() bool {
	return a.Status.IsActive()
}
