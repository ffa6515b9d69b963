package shell

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/store"
)

const reasonConcurrentChange = "a concurrent change conflicts with this request"

// DecideFunc locks the rows a command depends on, projects them into the command's state
// and returns the decision. It runs inside the transaction opened by ExecuteDecision.
type DecideFunc func(ctx context.Context, tx store.Tx) (core.DecisionResult, error)

// ExecuteDecision runs Lock -> Project -> Decide -> Apply in one transaction.
//
// A business failure rolls back and is returned unchanged. A unique violation raised while applying
// becomes a Conflict, every other store error is wrapped with core.StorageFailure.
// Context cancellation stays reachable with errors.Is.
func ExecuteDecision(ctx context.Context, runner TxRunner, decide DecideFunc) (HandlerResult, error) {
	metadata := EventMetadataFor(ctx)

	var decision core.DecisionResult

	err := runner.WithinTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var decideErr error

		decision, decideErr = decide(ctx, tx)
		if decideErr != nil {
			return decideErr
		}

		if businessErr := decision.HasError(); businessErr != nil {
			return businessErr
		}

		if !decision.HasEventsToApply() {
			return nil
		}

		return ApplyEvents(ctx, tx, metadata, decision.Events)
	})

	if err != nil {
		return NewErrorResult(), classifyCommandError(err)
	}

	if decision.IsIdempotent() {
		return NewIdempotentResult(), nil
	}

	return NewSuccessResult(decision.Events), nil
}

func classifyCommandError(err error) error {
	if core.IsBusinessFailure(err) {
		return err
	}

	if errors.Is(err, store.ErrUniqueViolation) {
		return errors.Join(core.ErrConflict, errors.New(reasonConcurrentChange), err)
	}

	return core.StorageFailure(err)
}

// Optional turns store.ErrRowNotFound from a Lock* call into found == false:
//
//	book, found, err := shell.Optional(tx.LockBook(ctx, bookID))
func Optional[T any](row T, err error) (T, bool, error) {
	var zero T

	if errors.Is(err, store.ErrRowNotFound) {
		return zero, false, nil
	}

	if err != nil {
		return zero, false, err
	}

	return row, true, nil
}

// LockActorIsAdmin locks the acting user's row and reports whether it holds admin rights.
// An unknown actor is not an admin.
func LockActorIsAdmin(ctx context.Context, tx store.Tx, actorID uuid.UUID) (bool, error) {
	actor, found, err := Optional(tx.LockUser(ctx, actorID))
	if err != nil {
		return false, err
	}

	return found && actor.IsAdmin, nil
}
