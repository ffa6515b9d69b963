package addorrestockbook

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for AddOrRestockBook in one transaction.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	libraryStore shell.TxRunner
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(libraryStore shell.TxRunner) CommandHandler {
	return CommandHandler{libraryStore: libraryStore}
}

// Handle executes the command. The result carries the applied event, which holds the book id
// and the resulting quantity. Two concurrent adds of the same new title and author both find no row;
// the loser's insert fails on the unique key and is decided again as a restock.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.ExecuteDecisionWithRetry(ctx, h.libraryStore, shell.DefaultUniqueViolationAttempts, func(ctx context.Context, tx store.Tx) (core.DecisionResult, error) {
		actorIsAdmin, err := shell.LockActorIsAdmin(ctx, tx, command.ActorID)
		if err != nil {
			return core.DecisionResult{}, err
		}

		book, found, err := shell.Optional(tx.LockBookByTitleAndAuthor(ctx, command.Title, command.Author))
		if err != nil {
			return core.DecisionResult{}, err
		}

		state := State{
			ActorIsAdmin:     actorIsAdmin,
			BookExists:       found,
			ExistingBookID:   book.ID,
			ExistingQuantity: book.Quantity,
		}

		return Decide(state, command), nil
	})
}
