package models

import "fmt"

// CrewMember represents an airline employee who can be assigned to flights
type CrewMember struct {
	BaseModel
	EmployeeCode       string             `json:"employee_code" gorm:"size:20;uniqueIndex;not null" validate:"required,max=20"`
	FirstName          string             `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName           string             `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Position           CrewPosition       `json:"position" gorm:"type:varchar(20);not null;index" validate:"required"`
	CertificationLevel CertificationLevel `json:"certification_level" gorm:"type:varchar(20);not null;default:'JUNIOR'"`
	ExperienceYears    int                `json:"experience_years" gorm:"not null;default:0" validate:"min=0"`
	IsAvailable        bool               `json:"is_available" gorm:"not null;default:true"`
	Phone              string             `json:"phone,omitempty" gorm:"size:20"`
	Email              string             `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email"`

	// Relationships
	Assignments []FlightAssignment `json:"assignments,omitempty" gorm:"foreignKey:CrewMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CrewMember
func (CrewMember) TableName() string {
	return "crew_members"
}

// FullName returns the crew member's full name
func (c *CrewMember) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
