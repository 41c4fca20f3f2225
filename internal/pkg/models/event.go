package models

import "time"

// UserRegisteredEvent is published when verification creates a new user
type UserRegisteredEvent struct {
	UserID      string    `json:"user_id"`
	PhoneNumber string    `json:"phone_number"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OTPRequestedEvent is published after a code has been issued
type OTPRequestedEvent struct {
	PhoneNumber string    `json:"phone_number"` // masked
	Delivered   bool      `json:"delivered"`
	OccurredAt  time.Time `json:"occurred_at"`
}
