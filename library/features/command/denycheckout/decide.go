package denycheckout

import (
	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonAdminRequired = "admin rights required"
	failureReasonNoPending     = "no pending checkout request found"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	ActorIsAdmin bool
	IsPending    bool
	UserID       uuid.UUID
	BookID       uuid.UUID
	BookQuantity int
}

// Decide implements the business logic for denying a checkout.
//
// Business Rules:
//
//	GIVEN: an admin and a pending checkout
//	WHEN: DenyCheckout command is received
//	THEN: CheckoutDenied is generated, returning the held copy
//	ERROR: Forbidden if the actor is not an admin
//	ERROR: NotFound if the checkout does not exist or is no longer pending
func Decide(state State, command Command) core.DecisionResult {
	if !state.ActorIsAdmin {
		return core.ErrorDecision(core.Reject(core.ErrForbidden, failureReasonAdminRequired))
	}

	if !state.IsPending {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonNoPending))
	}

	return core.SuccessDecision(
		core.BuildCheckoutDenied(
			command.CheckoutID,
			state.UserID,
			state.BookID,
			command.ActorID,
			state.BookQuantity+1,
			command.OccurredAt,
		),
	)
}
