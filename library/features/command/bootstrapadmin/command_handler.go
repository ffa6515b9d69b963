package bootstrapadmin

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/registeruser"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler runs Lock -> Project -> Decide -> Apply for BootstrapAdmin in one transaction.
type CommandHandler struct {
	libraryStore shell.TxRunner
	hashCost     int
}

// NewCommandHandler creates a new CommandHandler. hashCost is the bcrypt cost for new accounts.
func NewCommandHandler(libraryStore shell.TxRunner, hashCost int) CommandHandler {
	return CommandHandler{
		libraryStore: libraryStore,
		hashCost:     hashCost,
	}
}

// Handle executes the command.
// The password is validated like a registration and only hashed when the account has to be created.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.ExecuteDecision(ctx, h.libraryStore, func(ctx context.Context, tx store.Tx) (core.DecisionResult, error) {
		user, found, err := shell.Optional(tx.LockUserByUsername(ctx, command.Username))
		if err != nil {
			return core.DecisionResult{}, err
		}

		state := State{
			UserExists:     found,
			ExistingUserID: user.ID,
			IsAdmin:        user.IsAdmin,
		}

		if !found {
			credentials := registeruser.BuildCommand(command.UserID, command.Username, command.Password, command.OccurredAt)
			if validationErr := registeruser.Validate(credentials); validationErr != nil {
				return core.ErrorDecision(validationErr), nil
			}

			passwordHash, hashErr := bcrypt.GenerateFromPassword([]byte(command.Password), h.hashCost)
			if hashErr != nil {
				return core.DecisionResult{}, hashErr
			}

			state.PasswordHash = string(passwordHash)
		}

		return Decide(state, command), nil
	})
}
