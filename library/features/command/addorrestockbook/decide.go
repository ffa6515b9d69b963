package addorrestockbook

import (
	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonAdminRequired  = "admin rights required"
	failureReasonBlankTitle     = "title must not be blank"
	failureReasonBlankAuthor    = "author must not be blank"
	failureReasonQuantityTooLow = "quantity must be at least 1"
	failureReasonQuantityTooBig = "resulting quantity exceeds the maximum"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	ActorIsAdmin     bool
	BookExists       bool
	ExistingBookID   uuid.UUID
	ExistingQuantity int
}

// Decide implements the business logic for adding or restocking a book.
//
// Business Rules:
//
//	GIVEN: an admin and a title, author and quantity
//	WHEN: AddOrRestockBook command is received
//	THEN: BookRestocked if the title and author exist, BookAddedToInventory otherwise
//	ERROR: Forbidden if the actor is not an admin
//	ERROR: Invalid if the title or author is blank or the quantity is below 1
//	ERROR: Invalid if the resulting quantity exceeds core.MaxBookQuantity
func Decide(state State, command Command) core.DecisionResult {
	if !state.ActorIsAdmin {
		return core.ErrorDecision(core.Reject(core.ErrForbidden, failureReasonAdminRequired))
	}

	switch {
	case command.Title == "":
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonBlankTitle))
	case command.Author == "":
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonBlankAuthor))
	case command.Quantity < 1:
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonQuantityTooLow))
	case command.Quantity > core.MaxBookQuantity-state.ExistingQuantity:
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonQuantityTooBig))
	}

	if state.BookExists {
		return core.SuccessDecision(
			core.BuildBookRestocked(
				state.ExistingBookID,
				command.Title,
				command.Author,
				command.Quantity,
				state.ExistingQuantity+command.Quantity,
				command.OccurredAt,
			),
		)
	}

	return core.SuccessDecision(
		core.BuildBookAddedToInventory(
			command.BookID,
			command.Title,
			command.Author,
			command.Quantity,
			command.OccurredAt,
		),
	)
}
