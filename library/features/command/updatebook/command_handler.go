package updatebook

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for UpdateBook in one transaction.
type CommandHandler struct {
	libraryStore shell.TxRunner
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(libraryStore shell.TxRunner) CommandHandler {
	return CommandHandler{libraryStore: libraryStore}
}

// Handle executes the command.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.ExecuteDecision(ctx, h.libraryStore, func(ctx context.Context, tx store.Tx) (core.DecisionResult, error) {
		actorIsAdmin, err := shell.LockActorIsAdmin(ctx, tx, command.ActorID)
		if err != nil {
			return core.DecisionResult{}, err
		}

		book, found, err := shell.Optional(tx.LockBook(ctx, command.BookID))
		if err != nil {
			return core.DecisionResult{}, err
		}

		state := State{
			ActorIsAdmin:    actorIsAdmin,
			BookExists:      found,
			CurrentTitle:    book.Title,
			CurrentAuthor:   book.Author,
			CurrentQuantity: book.Quantity,
		}

		if found && (command.Title != book.Title || command.Author != book.Author) {
			other, taken, lockErr := shell.Optional(tx.LockBookByTitleAndAuthor(ctx, command.Title, command.Author))
			if lockErr != nil {
				return core.DecisionResult{}, lockErr
			}

			state.TitleAndAuthorTakenByOther = taken && other.ID != command.BookID
		}

		return Decide(state, command), nil
	})
}
