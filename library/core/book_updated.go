package core

import (
	"time"

	"github.com/google/uuid"
)

// BookUpdatedEventType is the event type identifier.
const BookUpdatedEventType = "BookUpdated"

// BookUpdated represents when an admin overwrites the title, author or quantity of a book.
type BookUpdated struct {
	EventType  EventTypeString
	BookID     BookIDString
	Title      string
	Author     string
	Quantity   int
	OccurredAt OccurredAtTS
}

// BuildBookUpdated creates a new BookUpdated event.
func BuildBookUpdated(bookID uuid.UUID, title, author string, quantity int, occurredAt time.Time) BookUpdated {
	return BookUpdated{
		EventType:  BookUpdatedEventType,
		BookID:     bookID.String(),
		Title:      title,
		Author:     author,
		Quantity:   quantity,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e BookUpdated) IsEventType() string {
	return BookUpdatedEventType
}

func (e BookUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
