package core

import (
	"time"

	"github.com/google/uuid"
)

// BookCheckedInEventType is the event type identifier.
const BookCheckedInEventType = "BookCheckedIn"

// BookCheckedIn represents when a borrower returns a book. It closes the checkout for good.
type BookCheckedIn struct {
	EventType    EventTypeString
	CheckoutID   CheckoutIDString
	UserID       UserIDString
	BookID       BookIDString
	DueDate      time.Time
	ReturnDate   time.Time
	Fine         int64
	BookQuantity int
	OccurredAt   OccurredAtTS
}

// BuildBookCheckedIn creates a new BookCheckedIn event. The return date is the moment of the check-in.
func BuildBookCheckedIn(
	checkoutID, userID, bookID uuid.UUID,
	dueDate time.Time,
	fine int64,
	bookQuantity int,
	occurredAt time.Time,
) BookCheckedIn {

	return BookCheckedIn{
		EventType:    BookCheckedInEventType,
		CheckoutID:   checkoutID.String(),
		UserID:       userID.String(),
		BookID:       bookID.String(),
		DueDate:      ToOccurredAt(dueDate),
		ReturnDate:   ToOccurredAt(occurredAt),
		Fine:         fine,
		BookQuantity: bookQuantity,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCheckedIn) IsEventType() string {
	return BookCheckedInEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCheckedIn) HasOccurredAt() time.Time {
	return e.OccurredAt
}
