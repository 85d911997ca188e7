package domain

import "time"

// AccountEventType names an account lifecycle event.
type AccountEventType string

const (
	EventUserRegistered      AccountEventType = "user.registered"
	EventUserPasswordChanged AccountEventType = "user.password_changed"
	EventUserProfileUpdated  AccountEventType = "user.profile_updated"
)

// AccountEvent is published to the message broker after an account changes.
type AccountEvent struct {
	Type       AccountEventType `json:"type"`
	UserID     string           `json:"userID"`
	Username   string           `json:"username,omitempty"`
	Email      string           `json:"email,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}
