package models

import "github.com/google/uuid"

// User represents an operator account mirrored from Keycloak. Assignments
// record which user created them via AssignedBy.
type User struct {
	BaseModel
	Subject  uuid.UUID `json:"subject" gorm:"type:uuid;uniqueIndex;not null"`
	Username string    `json:"username" gorm:"size:100;uniqueIndex;not null" validate:"required,max=100"`
	Email    string    `json:"email" gorm:"size:255;not null" validate:"required,email"`
	FullName string    `json:"full_name" gorm:"size:200"`
	Role     UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
