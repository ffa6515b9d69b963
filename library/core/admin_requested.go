package core

import (
	"time"

	"github.com/google/uuid"
)

// AdminRequestedEventType is the event type identifier.
const AdminRequestedEventType = "AdminRequested"

// AdminRequested represents when a user asks for admin rights.
type AdminRequested struct {
	EventType  EventTypeString
	UserID     UserIDString
	OccurredAt OccurredAtTS
}

// BuildAdminRequested creates a new AdminRequested event.
func BuildAdminRequested(userID uuid.UUID, occurredAt time.Time) AdminRequested {
	return AdminRequested{
		EventType:  AdminRequestedEventType,
		UserID:     userID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e AdminRequested) IsEventType() string {
	return AdminRequestedEventType
}

func (e AdminRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}
