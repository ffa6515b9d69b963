package checkinbook

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for CheckInBook in one transaction.
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

// Handle executes the command. The checkout is locked before its book.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.ExecuteDecision(ctx, h.libraryStore, func(ctx context.Context, tx store.Tx) (core.DecisionResult, error) {
		checkout, found, err := shell.Optional(tx.LockCheckout(ctx, command.CheckoutID))
		if err != nil {
			return core.DecisionResult{}, err
		}

		state := State{
			CheckoutExists: found,
			OwnerID:        checkout.UserID,
			BookID:         checkout.BookID,
			IsOpen:         found && checkout.IsOpen(),
			DueDate:        checkout.DueDate,
		}

		if state.IsOpen && state.OwnerID == command.UserID {
			book, lockErr := tx.LockBook(ctx, checkout.BookID)
			if lockErr != nil {
				return core.DecisionResult{}, lockErr
			}

			state.BookQuantity = book.Quantity
		}

		return Decide(state, command, h.policy), nil
	})
}
