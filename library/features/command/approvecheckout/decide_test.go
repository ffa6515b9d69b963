package approvecheckout_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/approvecheckout"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
)

func Test_Decide_ApprovesPendingCheckout(t *testing.T) {
	// arrange
	actorID := uuid.New()
	state := approvecheckout.State{ActorIsAdmin: true, IsPending: true, UserID: uuid.New(), BookID: uuid.New()}

	// act
	result := approvecheckout.Decide(state, approvecheckout.BuildCommand(actorID, uuid.New(), FixtureClock()))

	// assert
	require.Len(t, result.Events, 1)

	event, ok := result.Events[0].(core.CheckoutApproved)
	require.True(t, ok, "Should be CheckoutApproved")
	assert.Equal(t, actorID.String(), event.ApprovedBy)
	assert.Equal(t, state.BookID.String(), event.BookID)
}

func Test_Decide_Rejections(t *testing.T) {
	testCases := []struct {
		name  string
		state approvecheckout.State
		kind  core.Kind
	}{
		{"not an admin", approvecheckout.State{IsPending: true}, core.KindForbidden},
		{"not pending", approvecheckout.State{ActorIsAdmin: true}, core.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := approvecheckout.Decide(tc.state, approvecheckout.BuildCommand(uuid.New(), uuid.New(), FixtureClock()))

			// assert
			assert.Equal(t, tc.kind, core.KindOf(result.HasError()))
		})
	}
}
