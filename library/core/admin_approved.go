package core

import (
	"time"

	"github.com/google/uuid"
)

// AdminApprovedEventType is the event type identifier.
const AdminApprovedEventType = "AdminApproved"

// AdminApproved represents when a user is granted admin rights.
// ApprovedBy is empty when the policy or the bootstrap command granted them.
type AdminApproved struct {
	EventType  EventTypeString
	UserID     UserIDString
	ApprovedBy UserIDString
	OccurredAt OccurredAtTS
}

// BuildAdminApproved creates a new AdminApproved event.
func BuildAdminApproved(userID uuid.UUID, approvedBy uuid.UUID, occurredAt time.Time) AdminApproved {
	event := AdminApproved{
		EventType:  AdminApprovedEventType,
		UserID:     userID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}

	if approvedBy != uuid.Nil {
		event.ApprovedBy = approvedBy.String()
	}

	return event
}

// IsEventType returns the event type identifier.
func (e AdminApproved) IsEventType() string {
	return AdminApprovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AdminApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
