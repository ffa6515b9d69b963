package core

import (
	"time"
)

// EventTypeString represents the type of domain event
type EventTypeString = string

// BookIDString represents a book identifier
type BookIDString = string

// UserIDString represents a user identifier
type UserIDString = string

// CheckoutIDString represents a checkout identifier
type CheckoutIDString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision,
// which is what PostgreSQL stores.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
