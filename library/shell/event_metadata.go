package shell

import (
	"context"
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/Chalhotra/LibMgmt/store"
)

// ErrMappingToEventMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related events, typically the request ID.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

type correlationIDKey struct{}

// BuildEventMetadata creates EventMetadata from UUID values.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// WithCorrelationID returns a context carrying the correlation ID of the current request.
func WithCorrelationID(ctx context.Context, correlationID uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFrom returns the correlation ID stored in ctx, if any.
func CorrelationIDFrom(ctx context.Context) (uuid.UUID, bool) {
	correlationID, ok := ctx.Value(correlationIDKey{}).(uuid.UUID)

	return correlationID, ok
}

// EventMetadataFor builds fresh metadata for one command execution.
// The command message gets a new ID, and the correlation ID is taken from ctx or falls back to that ID.
func EventMetadataFor(ctx context.Context) EventMetadata {
	messageID := uuid.New()

	correlationID, ok := CorrelationIDFrom(ctx)
	if !ok {
		correlationID = messageID
	}

	return BuildEventMetadata(messageID, messageID, correlationID)
}

// EventMetadataFrom extracts EventMetadata from a StorableEvent.
func EventMetadataFrom(storableEvent store.StorableEvent) (EventMetadata, error) {
	metadata := new(EventMetadata)
	err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, metadata)
	if err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}
