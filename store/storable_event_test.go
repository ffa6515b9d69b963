package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"BookID": "b-1"}`)
	validMetadataJSON := []byte(`{"MessageID": "m-1"}`)

	tests := []struct {
		name         string
		eventType    string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "empty event type",
			eventType:    "",
			payloadJSON:  validPayloadJSON,
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrEmptyEventType,
		},
		{
			name:         "invalid payload JSON",
			eventType:    "CheckoutRequested",
			payloadJSON:  []byte(`{"invalid": json}`),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "empty payload JSON",
			eventType:    "CheckoutRequested",
			payloadJSON:  []byte(``),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata JSON",
			eventType:    "CheckoutRequested",
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(`{"invalid": json}`),
			expectedErr:  ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			event, err := BuildStorableEvent(tt.eventType, validTime, tt.payloadJSON, tt.metadataJSON)

			// assert
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, StorableEvent{}, event, "should return an empty event on error")
		})
	}
}

func Test_BuildStorableEventWithEmptyMetadata_Success(t *testing.T) {
	// arrange
	occurredAt := time.Now()

	// act
	event, err := BuildStorableEventWithEmptyMetadata("BookCheckedIn", occurredAt, []byte(`{"Fine": 3}`))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "BookCheckedIn", event.EventType)
	assert.Equal(t, occurredAt, event.OccurredAt)
	assert.JSONEq(t, `{}`, string(event.MetadataJSON))
}

func Test_CheckoutFilter_Matches(t *testing.T) {
	// arrange
	returned := time.Now()
	approved := Checkout{Status: CheckoutStatusApproved}
	pending := Checkout{Status: CheckoutStatusPending}
	denied := Checkout{Status: CheckoutStatusDenied}
	returnedCheckout := Checkout{Status: CheckoutStatusApproved, ReturnDate: &returned}

	// act & assert
	assert.True(t, CheckoutFilter{}.Matches(approved), "approved and unreturned is active")
	assert.True(t, CheckoutFilter{}.Matches(pending), "pending holds a copy")
	assert.False(t, CheckoutFilter{}.Matches(denied), "denied is never active")
	assert.False(t, CheckoutFilter{}.Matches(returnedCheckout), "returned is never active")
	assert.False(t, CheckoutFilter{OnlyApproved: true}.Matches(pending))
}
