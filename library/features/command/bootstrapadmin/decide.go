package bootstrapadmin

import (
	"github.com/google/uuid"

	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	failureReasonBlankUsername = "username must not be blank"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	UserExists     bool
	ExistingUserID uuid.UUID
	IsAdmin        bool
	PasswordHash   string
}

// Decide implements the business logic for bootstrapping an admin.
//
// Business Rules:
//
//	GIVEN: a username without an account
//	THEN: UserRegistered and AdminApproved are generated
//	GIVEN: an existing account without admin rights
//	THEN: AdminApproved is generated, the password stays as it is
//	GIVEN: an existing admin
//	THEN: no event is generated (idempotent)
//	ERROR: Invalid if the username is blank
func Decide(state State, command Command) core.DecisionResult {
	if command.Username == "" {
		return core.ErrorDecision(core.Reject(core.ErrInvalid, failureReasonBlankUsername))
	}

	if state.UserExists && state.IsAdmin {
		return core.IdempotentDecision()
	}

	if state.UserExists {
		return core.SuccessDecision(core.BuildAdminApproved(state.ExistingUserID, uuid.Nil, command.OccurredAt))
	}

	return core.SuccessDecision(
		core.BuildUserRegistered(command.UserID, command.Username, state.PasswordHash, command.OccurredAt),
		core.BuildAdminApproved(command.UserID, uuid.Nil, command.OccurredAt),
	)
}
