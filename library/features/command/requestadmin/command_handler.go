package requestadmin

import (
	"context"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for RequestAdmin in one transaction.
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
// The open checkouts are locked so a concurrent checkout approval cannot slip past the open-checkout rule.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.ExecuteDecision(ctx, h.libraryStore, func(ctx context.Context, tx store.Tx) (core.DecisionResult, error) {
		user, found, err := shell.Optional(tx.LockUser(ctx, command.UserID))
		if err != nil {
			return core.DecisionResult{}, err
		}

		state := State{
			UserExists:       found,
			IsAdmin:          user.IsAdmin,
			RequestIsPending: user.AdminRequestStatus == store.AdminRequestPending,
		}

		if found && h.policy.BlockAdminRequestWithOpenCheckouts {
			open, lockErr := tx.LockActiveCheckouts(ctx, store.CheckoutFilter{UserID: command.UserID, OnlyApproved: true})
			if lockErr != nil {
				return core.DecisionResult{}, lockErr
			}

			state.OpenCheckouts = len(open)
		}

		return Decide(state, command, h.policy), nil
	})
}
