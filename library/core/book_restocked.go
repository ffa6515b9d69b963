package core

import (
	"time"

	"github.com/google/uuid"
)

// BookRestockedEventType is the event type identifier.
const BookRestockedEventType = "BookRestocked"

// BookRestocked represents when copies are added to a title already in the inventory.
// Quantity is the stock after the addition.
type BookRestocked struct {
	EventType     EventTypeString
	BookID        BookIDString
	Title         string
	Author        string
	AddedQuantity int
	Quantity      int
	OccurredAt    OccurredAtTS
}

// BuildBookRestocked creates a new BookRestocked event.
func BuildBookRestocked(
	bookID uuid.UUID,
	title, author string,
	addedQuantity, quantity int,
	occurredAt time.Time,
) BookRestocked {

	return BookRestocked{
		EventType:     BookRestockedEventType,
		BookID:        bookID.String(),
		Title:         title,
		Author:        author,
		AddedQuantity: addedQuantity,
		Quantity:      quantity,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookRestocked) IsEventType() string {
	return BookRestockedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRestocked) HasOccurredAt() time.Time {
	return e.OccurredAt
}
