package updatebook

import (
	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonAdminRequired    = "admin rights required"
	failureReasonBookNotFound     = "book not found"
	failureReasonBlankTitle       = "title must not be blank"
	failureReasonBlankAuthor      = "author must not be blank"
	failureReasonNegativeQuantity = "quantity must not be negative"
	failureReasonQuantityTooBig   = "quantity exceeds the maximum"
	failureReasonDuplicate        = "another book with this title and author exists"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	ActorIsAdmin               bool
	BookExists                 bool
	CurrentTitle               string
	CurrentAuthor              string
	CurrentQuantity            int
	TitleAndAuthorTakenByOther bool
}

// Decide implements the business logic for updating a book.
//
// Business Rules:
//
//	GIVEN: an admin and an existing book
//	WHEN: UpdateBook command is received
//	THEN: BookUpdated with the new fields
//	ERROR: Forbidden if the actor is not an admin
//	ERROR: NotFound if the book does not exist
//	ERROR: Invalid on a blank title or author, a negative quantity or one above core.MaxBookQuantity
//	ERROR: Conflict if another book already has the new title and author
//	IDEMPOTENCY: unchanged values produce no event
func Decide(state State, command Command) core.DecisionResult {
	if !state.ActorIsAdmin {
		return core.ErrorDecision(core.Reject(core.ErrForbidden, failureReasonAdminRequired))
	}

	if !state.BookExists {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonBookNotFound))
	}

	switch {
	case command.Title == "":
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonBlankTitle))
	case command.Author == "":
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonBlankAuthor))
	case command.Quantity < 0:
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonNegativeQuantity))
	case command.Quantity > core.MaxBookQuantity:
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonQuantityTooBig))
	}

	if command.Title == state.CurrentTitle &&
		command.Author == state.CurrentAuthor &&
		command.Quantity == state.CurrentQuantity {

		return core.IdempotentDecision()
	}

	if state.TitleAndAuthorTakenByOther {
		return core.ErrorDecision(core.Reject(core.ErrConflict, failureReasonDuplicate))
	}

	return core.SuccessDecision(
		core.BuildBookUpdated(
			command.BookID,
			command.Title,
			command.Author,
			command.Quantity,
			command.OccurredAt,
		),
	)
}
