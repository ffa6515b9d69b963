package registeruser

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// CommandHandler hashes the password, then runs Lock -> Project -> Decide -> Apply for RegisterUser.
type CommandHandler struct {
	libraryStore shell.TxRunner
	hashCost     int
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithHashCost sets the bcrypt cost. The default is bcrypt.DefaultCost.
func WithHashCost(cost int) Option {
	return func(h *CommandHandler) {
		h.hashCost = cost
	}
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(libraryStore shell.TxRunner, opts ...Option) CommandHandler {
	h := CommandHandler{
		libraryStore: libraryStore,
		hashCost:     bcrypt.DefaultCost,
	}

	for _, opt := range opts {
		opt(&h)
	}

	return h
}

// Handle executes the command.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := Validate(command); err != nil {
		return shell.NewErrorResult(), err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(command.Password), h.hashCost)
	if err != nil {
		return shell.NewErrorResult(), core.Reject(core.ErrInvalid, err.Error())
	}

	return shell.ExecuteDecision(ctx, h.libraryStore, func(ctx context.Context, tx store.Tx) (core.DecisionResult, error) {
		_, taken, lockErr := shell.Optional(tx.LockUserByUsername(ctx, command.Username))
		if lockErr != nil {
			return core.DecisionResult{}, lockErr
		}

		state := State{
			UsernameTaken: taken,
			PasswordHash:  string(passwordHash),
		}

		return Decide(state, command), nil
	})
}
