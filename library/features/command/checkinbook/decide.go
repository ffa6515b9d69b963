package checkinbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonCheckoutNotFound = "checkout not found"
	failureReasonNotOwner         = "checkout belongs to another user"
	failureReasonNotOpen          = "no open checkout to return"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	CheckoutExists bool
	OwnerID        uuid.UUID
	BookID         uuid.UUID
	IsOpen         bool
	DueDate        time.Time
	BookQuantity   int
}

// Decide implements the business logic for returning a book.
//
// Business Rules:
//
//	GIVEN: an approved, unreturned checkout owned by the user
//	WHEN: CheckInBook command is received
//	THEN: BookCheckedIn is generated with the fine and the copy goes back on the shelf
//	ERROR: NotFound if the checkout does not exist
//	ERROR: Forbidden if the checkout belongs to another user
//	ERROR: NotFound if the checkout is pending, denied or already returned
func Decide(state State, command Command, policy core.Policy) core.DecisionResult {
	if !state.CheckoutExists {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonCheckoutNotFound))
	}

	if state.OwnerID != command.UserID {
		return core.ErrorDecision(core.Reject(core.ErrForbidden, failureReasonNotOwner))
	}

	if !state.IsOpen {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonNotOpen))
	}

	return core.SuccessDecision(
		core.BuildBookCheckedIn(
			command.CheckoutID,
			command.UserID,
			state.BookID,
			state.DueDate,
			core.FineFor(state.DueDate, command.OccurredAt, policy.FinePerDay),
			state.BookQuantity+1,
			command.OccurredAt,
		),
	)
}
