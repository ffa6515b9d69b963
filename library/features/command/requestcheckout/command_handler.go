package requestcheckout

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for RequestCheckout in one transaction.
type CommandHandler struct {
	libraryStore shell.TxRunner
	policy       core.Policy
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(libraryStore shell.TxRunner, policy core.Policy) CommandHandler {
	return CommandHandler{
		libraryStore: libraryStore,
		policy:       policy,
	}
}

// Handle executes the command.
// The book row is locked last, so two users racing for the last copy serialize on it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.ExecuteDecision(ctx, h.libraryStore, func(ctx context.Context, tx store.Tx) (core.DecisionResult, error) {
		_, userFound, err := shell.Optional(tx.LockUser(ctx, command.UserID))
		if err != nil {
			return core.DecisionResult{}, err
		}

		active, err := tx.LockActiveCheckouts(ctx, store.CheckoutFilter{UserID: command.UserID, BookID: command.BookID})
		if err != nil {
			return core.DecisionResult{}, err
		}

		book, bookFound, err := shell.Optional(tx.LockBook(ctx, command.BookID))
		if err != nil {
			return core.DecisionResult{}, err
		}

		state := State{
			UserExists:        userFound,
			BookExists:        bookFound,
			BookQuantity:      book.Quantity,
			HasActiveCheckout: len(active) > 0,
		}

		return Decide(state, command, h.policy), nil
	})
}
