package removebook

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for RemoveBook in one transaction.
type CommandHandler struct {
	libraryStore shell.TxRunner
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(libraryStore shell.TxRunner) CommandHandler {
	return CommandHandler{libraryStore: libraryStore}
}

// Handle executes the command. The book is locked before the active checkouts are counted:
// every checkout insert and every release of a copy writes while holding the book lock, so no
// checkout can appear or vanish between the count and the delete.
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

		active := 0
		if found {
			active, err = tx.CountActiveCheckouts(ctx, store.CheckoutFilter{BookID: command.BookID})
			if err != nil {
				return core.DecisionResult{}, err
			}
		}

		state := State{
			ActorIsAdmin:    actorIsAdmin,
			BookExists:      found,
			Title:           book.Title,
			Author:          book.Author,
			ActiveCheckouts: active,
		}

		return Decide(state, command), nil
	})
}
