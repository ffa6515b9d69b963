package denyadmin

import (
	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonAdminRequired = "admin rights required"
	failureReasonNoPending     = "no pending admin request found"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	ActorIsAdmin     bool
	RequestIsPending bool
	IsAdmin          bool
}

// Decide implements the business logic for denying an admin request.
//
// Business Rules:
//
//	GIVEN: an admin and a user with a pending admin request
//	WHEN: DenyAdmin command is received
//	THEN: AdminDenied is generated, keeping the user's admin flag unless the policy revokes it
//	ERROR: Forbidden if the actor is not an admin
//	ERROR: NotFound if the user does not exist or has no pending request
func Decide(state State, command Command, policy core.Policy) core.DecisionResult {
	if !state.ActorIsAdmin {
		return core.ErrorDecision(core.Reject(core.ErrForbidden, failureReasonAdminRequired))
	}

	if !state.RequestIsPending {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonNoPending))
	}

	remainsAdmin := state.IsAdmin && !policy.DenyRevokesAdmin

	return core.SuccessDecision(core.BuildAdminDenied(command.UserID, command.ActorID, remainsAdmin, command.OccurredAt))
}
