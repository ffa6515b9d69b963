package core

import (
	"time"

	"github.com/google/uuid"
)

// BookAddedToInventoryEventType is the event type identifier.
const BookAddedToInventoryEventType = "BookAddedToInventory"

// BookAddedToInventory represents when a title that was not in the inventory yet is stocked.
type BookAddedToInventory struct {
	EventType  EventTypeString
	BookID     BookIDString
	Title      string
	Author     string
	Quantity   int
	OccurredAt OccurredAtTS
}

// BuildBookAddedToInventory creates a new BookAddedToInventory event.
func BuildBookAddedToInventory(bookID uuid.UUID, title, author string, quantity int, occurredAt time.Time) BookAddedToInventory {
	return BookAddedToInventory{
		EventType:  BookAddedToInventoryEventType,
		BookID:     bookID.String(),
		Title:      title,
		Author:     author,
		Quantity:   quantity,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookAddedToInventory) IsEventType() string {
	return BookAddedToInventoryEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToInventory) HasOccurredAt() time.Time {
	return e.OccurredAt
}
