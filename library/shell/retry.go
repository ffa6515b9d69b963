package shell

import (
	"context"
	"errors"

	"github.com/Chalhotra/LibMgmt/store"
)

// DefaultUniqueViolationAttempts is how often ExecuteDecisionWithRetry runs a decision in total.
const DefaultUniqueViolationAttempts = 2

// ExecuteDecisionWithRetry is ExecuteDecision for commands that create a row under a unique key
// nobody has locked yet, such as a new title and author.
//
// When a concurrent transaction inserted the same key first, the insert fails with
// store.ErrUniqueViolation only after that transaction has committed. Running the decision again
// then locks the committed row and decides against it. Only unique violations are retried,
// all other errors fail fast.
func ExecuteDecisionWithRetry(
	ctx context.Context,
	runner TxRunner,
	maxAttempts int,
	decide DecideFunc,
) (HandlerResult, error) {

	var (
		result HandlerResult
		err    error
	)

	for attempt := 0; attempt < max(maxAttempts, 1); attempt++ {
		result, err = ExecuteDecision(ctx, runner, decide)
		if err == nil || !errors.Is(err, store.ErrUniqueViolation) {
			return result, err
		}
	}

	return result, err
}
