package registeruser

import (
	"github.com/Chalhotra/LibMgmt/library/core"
)

const (
	// MinPasswordLength is counted in characters.
	MinPasswordLength = 8
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72

	failureReasonBlankUsername = "username must not be blank"
	failureReasonShortPassword = "password must have at least 8 characters"
	failureReasonLongPassword  = "password must not exceed 72 bytes"
	failureReasonUsernameTaken = "Username already exists"
)

// State is what the decision depends on, projected from the locked rows.
type State struct {
	UsernameTaken bool
	PasswordHash  string
}

// Validate checks the credentials before anything is hashed or locked.
func Validate(command Command) error {
	if command.Username == "" {
		return core.Reject(core.ErrInvalid, failureReasonBlankUsername)
	}

	if len([]rune(command.Password)) < MinPasswordLength {
		return core.Reject(core.ErrInvalid, failureReasonShortPassword)
	}

	if len(command.Password) > MaxPasswordBytes {
		return core.Reject(core.ErrInvalid, failureReasonLongPassword)
	}

	return nil
}

// Decide implements the business logic for registering a user.
//
// Business Rules:
//
//	GIVEN: a non-blank username that is not taken and a valid password
//	WHEN: RegisterUser command is received
//	THEN: UserRegistered is generated with the password hash and no admin rights
//	ERROR: Invalid if the username is blank or the password is too short or too long
//	ERROR: Conflict if the username is taken
func Decide(state State, command Command) core.DecisionResult {
	if err := Validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	if state.UsernameTaken {
		return core.ErrorDecision(core.Reject(core.ErrConflict, failureReasonUsernameTaken))
	}

	return core.SuccessDecision(
		core.BuildUserRegistered(command.UserID, command.Username, state.PasswordHash, command.OccurredAt),
	)
}
