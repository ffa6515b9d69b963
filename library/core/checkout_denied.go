package core

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutDeniedEventType is the event type identifier.
const CheckoutDeniedEventType = "CheckoutDenied"

// CheckoutDenied represents when an admin rejects a pending checkout.
// The held copy goes back to the shelf, BookQuantity is the stock after the release.
type CheckoutDenied struct {
	EventType    EventTypeString
	CheckoutID   CheckoutIDString
	UserID       UserIDString
	BookID       BookIDString
	DeniedBy     UserIDString
	BookQuantity int
	OccurredAt   OccurredAtTS
}

// BuildCheckoutDenied creates a new CheckoutDenied event.
func BuildCheckoutDenied(
	checkoutID, userID, bookID uuid.UUID,
	deniedBy uuid.UUID,
	bookQuantity int,
	occurredAt time.Time,
) CheckoutDenied {

	return CheckoutDenied{
		EventType:    CheckoutDeniedEventType,
		CheckoutID:   checkoutID.String(),
		UserID:       userID.String(),
		BookID:       bookID.String(),
		DeniedBy:     deniedBy.String(),
		BookQuantity: bookQuantity,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e CheckoutDenied) IsEventType() string {
	return CheckoutDeniedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CheckoutDenied) HasOccurredAt() time.Time {
	return e.OccurredAt
}
