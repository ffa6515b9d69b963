package approveadmin

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
}

// Decide implements the business logic for approving an admin request.
//
// Business Rules:
//
//	GIVEN: an admin and a user with a pending admin request
//	WHEN: ApproveAdmin command is received
//	THEN: AdminApproved is generated
//	ERROR: Forbidden if the actor is not an admin
//	ERROR: NotFound if the user does not exist or has no pending request
func Decide(state State, command Command) core.DecisionResult {
	if !state.ActorIsAdmin {
		return core.ErrorDecision(core.Reject(core.ErrForbidden, failureReasonAdminRequired))
	}

	if !state.RequestIsPending {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonNoPending))
	}

	return core.SuccessDecision(core.BuildAdminApproved(command.UserID, command.ActorID, command.OccurredAt))
}
