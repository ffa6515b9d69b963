package core

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutApprovedEventType is the event type identifier.
const CheckoutApprovedEventType = "CheckoutApproved"

// CheckoutApproved represents when a pending checkout is granted.
// ApprovedBy is empty when the policy approved it without an admin.
type CheckoutApproved struct {
	EventType  EventTypeString
	CheckoutID CheckoutIDString
	UserID     UserIDString
	BookID     BookIDString
	ApprovedBy UserIDString
	OccurredAt OccurredAtTS
}

// BuildCheckoutApproved creates a new CheckoutApproved event.
func BuildCheckoutApproved(checkoutID, userID, bookID uuid.UUID, approvedBy uuid.UUID, occurredAt time.Time) CheckoutApproved {
	event := CheckoutApproved{
		EventType:  CheckoutApprovedEventType,
		CheckoutID: checkoutID.String(),
		UserID:     userID.String(),
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}

	if approvedBy != uuid.Nil {
		event.ApprovedBy = approvedBy.String()
	}

	return event
}

// IsEventType returns the event type identifier.
func (e CheckoutApproved) IsEventType() string {
	return CheckoutApprovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CheckoutApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
