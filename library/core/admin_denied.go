package core

import (
	"time"

	"github.com/google/uuid"
)

// AdminDeniedEventType is the event type identifier.
const AdminDeniedEventType = "AdminDenied"

// AdminDenied represents when a pending admin request is rejected.
// RemainsAdmin is the user's admin flag after the denial.
type AdminDenied struct {
	EventType    EventTypeString
	UserID       UserIDString
	DeniedBy     UserIDString
	RemainsAdmin bool
	OccurredAt   OccurredAtTS
}

// BuildAdminDenied creates a new AdminDenied event.
func BuildAdminDenied(userID uuid.UUID, deniedBy uuid.UUID, remainsAdmin bool, occurredAt time.Time) AdminDenied {
	return AdminDenied{
		EventType:    AdminDeniedEventType,
		UserID:       userID.String(),
		DeniedBy:     deniedBy.String(),
		RemainsAdmin: remainsAdmin,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AdminDenied) IsEventType() string {
	return AdminDeniedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AdminDenied) HasOccurredAt() time.Time {
	return e.OccurredAt
}
