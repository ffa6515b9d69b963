package core

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisteredEventType is the event type identifier.
const UserRegisteredEventType = "UserRegistered"

// UserRegistered represents when a new account is created.
// The password hash is carried for the write but never serialized into the journal.
type UserRegistered struct {
	EventType    EventTypeString
	UserID       UserIDString
	Username     string
	PasswordHash string `json:"-"`
	OccurredAt   OccurredAtTS
}

// BuildUserRegistered creates a new UserRegistered event.
func BuildUserRegistered(userID uuid.UUID, username, passwordHash string, occurredAt time.Time) UserRegistered {
	return UserRegistered{
		EventType:    UserRegisteredEventType,
		UserID:       userID.String(),
		Username:     username,
		PasswordHash: passwordHash,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e UserRegistered) IsEventType() string {
	return UserRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e UserRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
