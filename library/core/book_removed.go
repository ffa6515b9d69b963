package core

import (
	"time"

	"github.com/google/uuid"
)

// BookRemovedEventType is the event type identifier.
const BookRemovedEventType = "BookRemoved"

// BookRemoved represents when a book leaves the inventory together with its checkout history.
type BookRemoved struct {
	EventType  EventTypeString
	BookID     BookIDString
	Title      string
	Author     string
	OccurredAt OccurredAtTS
}

// BuildBookRemoved creates a new BookRemoved event.
func BuildBookRemoved(bookID uuid.UUID, title, author string, occurredAt time.Time) BookRemoved {
	return BookRemoved{
		EventType:  BookRemovedEventType,
		BookID:     bookID.String(),
		Title:      title,
		Author:     author,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookRemoved) IsEventType() string {
	return BookRemovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
