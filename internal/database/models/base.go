package models

import (
	"time"
)

// BaseModel provides common fields for all models with numeric primary keys.
// The airline schema predates this service and uses bigserial identifiers,
// so models embed this instead of a UUID key.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
