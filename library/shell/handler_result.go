package shell

import "github.com/Chalhotra/LibMgmt/library/core"

// HandlerResult represents the outcome of a command handler execution.
type HandlerResult struct {
	// Idempotent indicates the command was already satisfied and nothing was written.
	// This is a first-class business outcome, not an error condition.
	Idempotent bool

	// Events are the domain events that were applied and journaled, in order.
	Events core.DomainEvents
}

// NewSuccessResult creates a HandlerResult for a command that changed state.
func NewSuccessResult(events core.DomainEvents) HandlerResult {
	return HandlerResult{Events: events}
}

// NewIdempotentResult creates a HandlerResult for a command that needed no change.
func NewIdempotentResult() HandlerResult {
	return HandlerResult{Idempotent: true}
}

// NewErrorResult creates a HandlerResult for a failed command.
func NewErrorResult() HandlerResult {
	return HandlerResult{}
}

// FirstEventOf returns the first applied event of type E.
func FirstEventOf[E core.DomainEvent](result HandlerResult) (E, bool) {
	for _, event := range result.Events {
		if e, ok := event.(E); ok {
			return e, true
		}
	}

	var zero E

	return zero, false
}
