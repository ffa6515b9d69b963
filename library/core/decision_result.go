package core

// DecisionResult represents the outcome of a business decision in a Decide function.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(events...), or ErrorDecision(err).
type DecisionResult struct {
	Outcome string       // "idempotent", "success", or "error"
	Events  DomainEvents // empty unless the outcome is "success"
	Err     error
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: idempotentOutcome}
}

// SuccessDecision creates a DecisionResult with the events to apply, in order.
func SuccessDecision(events ...DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Events:  events,
	}
}

// ErrorDecision creates a DecisionResult for a business rule violation. Nothing is written.
func ErrorDecision(err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// HasEventsToApply returns true if the decision changes state.
func (r DecisionResult) HasEventsToApply() bool {
	return r.Outcome == successOutcome && len(r.Events) > 0
}

// IsIdempotent returns true if the command was already satisfied.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
