package core

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutRequestedEventType is the event type identifier.
const CheckoutRequestedEventType = "CheckoutRequested"

// CheckoutRequested represents when a user asks to borrow a book.
// The request holds one copy, BookQuantity is the stock left after taking it.
type CheckoutRequested struct {
	EventType    EventTypeString
	CheckoutID   CheckoutIDString
	UserID       UserIDString
	BookID       BookIDString
	CheckoutDate time.Time
	DueDate      time.Time
	BookQuantity int
	OccurredAt   OccurredAtTS
}

// BuildCheckoutRequested creates a new CheckoutRequested event.
// The checkout date is the moment of the request.
func BuildCheckoutRequested(
	checkoutID, userID, bookID uuid.UUID,
	dueDate time.Time,
	bookQuantity int,
	occurredAt time.Time,
) CheckoutRequested {

	return CheckoutRequested{
		EventType:    CheckoutRequestedEventType,
		CheckoutID:   checkoutID.String(),
		UserID:       userID.String(),
		BookID:       bookID.String(),
		CheckoutDate: ToOccurredAt(occurredAt),
		DueDate:      ToOccurredAt(dueDate),
		BookQuantity: bookQuantity,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e CheckoutRequested) IsEventType() string {
	return CheckoutRequestedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CheckoutRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}
