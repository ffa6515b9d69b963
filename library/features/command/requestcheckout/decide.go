package requestcheckout

import (
	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonUserNotFound    = "user not found"
	failureReasonBookNotFound    = "book not found"
	failureReasonAlreadyActive   = "book already checked out"
	failureReasonBookUnavailable = "book not available"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	UserExists        bool
	BookExists        bool
	BookQuantity      int
	HasActiveCheckout bool
}

// Decide implements the business logic for requesting a checkout.
//
// Business Rules:
//
//	GIVEN: an existing user and a book with copies on the shelf
//	WHEN: RequestCheckout command is received
//	THEN: CheckoutRequested is generated, taking one copy
//	AND: CheckoutApproved follows when the policy does not require approval
//	ERROR: NotFound if the user or the book does not exist
//	ERROR: Conflict if the user already holds a pending or unreturned checkout of this book
//	ERROR: Unavailable if no copy is left
func Decide(state State, command Command, policy core.Policy) core.DecisionResult {
	if !state.UserExists {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonUserNotFound))
	}

	if !state.BookExists {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonBookNotFound))
	}

	if state.HasActiveCheckout {
		return core.ErrorDecision(core.Reject(core.ErrConflict, failureReasonAlreadyActive))
	}

	if state.BookQuantity <= 0 {
		return core.ErrorDecision(core.Reject(core.ErrUnavailable, failureReasonBookUnavailable))
	}

	requested := core.BuildCheckoutRequested(
		command.CheckoutID,
		command.UserID,
		command.BookID,
		core.DueDateFor(command.OccurredAt, policy),
		state.BookQuantity-1,
		command.OccurredAt,
	)

	if policy.RequireApprovalForCheckout {
		return core.SuccessDecision(requested)
	}

	return core.SuccessDecision(
		requested,
		core.BuildCheckoutApproved(command.CheckoutID, command.UserID, command.BookID, uuid.Nil, command.OccurredAt),
	)
}
