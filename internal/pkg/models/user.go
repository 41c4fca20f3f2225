package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account identified by its phone number
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	IsStaff     bool      `json:"is_staff" db:"is_staff"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	DateJoined  time.Time `json:"date_joined" db:"date_joined"`
}

// AuthToken is the opaque session credential bound one-to-one to a user
type AuthToken struct {
	Key     string    `json:"key" db:"key"`
	UserID  uuid.UUID `json:"user_id" db:"user_id"`
	Created time.Time `json:"created" db:"created"`
}
