package requestadmin

import (
	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonUserNotFound     = "user not found"
	failureReasonAlreadyAdmin     = "user is already an admin"
	failureReasonAlreadyRequested = "admin request already pending"
	failureReasonOpenCheckouts    = "user has open checkouts"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	UserExists       bool
	IsAdmin          bool
	RequestIsPending bool
	OpenCheckouts    int
}

// Decide implements the business logic for requesting admin rights.
//
// Business Rules:
//
//	GIVEN: an existing user that is neither admin nor waiting for a decision
//	WHEN: RequestAdmin command is received
//	THEN: AdminRequested is generated
//	AND: AdminApproved follows when the policy does not require approval
//	ERROR: NotFound if the user does not exist
//	ERROR: Conflict if the user is already an admin or a request is pending
//	ERROR: Conflict if the policy blocks requests from users with open checkouts and there is one
func Decide(state State, command Command, policy core.Policy) core.DecisionResult {
	if !state.UserExists {
		return core.ErrorDecision(core.Reject(core.ErrNotFound, failureReasonUserNotFound))
	}

	if state.IsAdmin {
		return core.ErrorDecision(core.Reject(core.ErrConflict, failureReasonAlreadyAdmin))
	}

	if state.RequestIsPending {
		return core.ErrorDecision(core.Reject(core.ErrConflict, failureReasonAlreadyRequested))
	}

	if policy.BlockAdminRequestWithOpenCheckouts && state.OpenCheckouts > 0 {
		return core.ErrorDecision(core.Reject(core.ErrConflict, failureReasonOpenCheckouts))
	}

	requested := core.BuildAdminRequested(command.UserID, command.OccurredAt)

	if policy.RequireApprovalForAdmin {
		return core.SuccessDecision(requested)
	}

	return core.SuccessDecision(requested, core.BuildAdminApproved(command.UserID, uuid.Nil, command.OccurredAt))
}
