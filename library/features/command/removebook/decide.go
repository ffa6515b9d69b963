package removebook

import (
	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonAdminRequired   = "admin rights required"
	failureReasonBookNotFound    = "book not found"
	failureReasonActiveCheckouts = "book has active checkouts"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	ActorIsAdmin    bool
	BookExists      bool
	Title           string
	Author          string
	ActiveCheckouts int
}

// Decide implements the business logic for removing a book.
//
// Business Rules:
//
//	GIVEN: an admin and an existing book without active checkouts
//	WHEN: RemoveBook command is received
//	THEN: BookRemoved is generated, which also drops the checkout history
//	ERROR: Forbidden if the actor is not an admin
//	ERROR: NotFound if the book does not exist
//	ERROR: Conflict if a pending or unreturned approved checkout exists
func Decide(state State, command Command) core.DecisionResult {
	if !state.ActorIsAdmin {
		return core.ErrorDecision(core.Reject(core.ErrForbidden, failureReasonAdminRequired))
	}

	if !state.BookExists {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonBookNotFound))
	}

	if state.ActiveCheckouts > 0 {
		return core.ErrorDecision(core.Reject(core.ErrConflict, failureReasonActiveCheckouts))
	}

	return core.SuccessDecision(
		core.BuildBookRemoved(command.BookID, state.Title, state.Author, command.OccurredAt),
	)
}
