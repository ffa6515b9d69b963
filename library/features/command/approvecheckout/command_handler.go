package approvecheckout

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for ApproveCheckout in one transaction.
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

		checkout, found, err := shell.Optional(tx.LockCheckout(ctx, command.CheckoutID))
		if err != nil {
			return core.DecisionResult{}, err
		}

		state := State{
			ActorIsAdmin: actorIsAdmin,
			IsPending:    found && checkout.Status == store.CheckoutStatusPending,
			UserID:       checkout.UserID,
			BookID:       checkout.BookID,
		}

		return Decide(state, command), nil
	})
}
