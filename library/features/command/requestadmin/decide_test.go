package requestadmin_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/requestadmin"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
)

func Test_Decide_RequestStaysPending(t *testing.T) {
	// arrange
	userID := uuid.New()

	// act
	result := requestadmin.Decide(requestadmin.State{UserExists: true}, requestadmin.BuildCommand(userID, FixtureClock()), core.DefaultPolicy())

	// assert
	require.Len(t, result.Events, 1)

	event, ok := result.Events[0].(core.AdminRequested)
	require.True(t, ok, "Should be AdminRequested")
	assert.Equal(t, userID.String(), event.UserID)
}

func Test_Decide_AutoApprovesWithoutApprovalPolicy(t *testing.T) {
	// arrange
	policy := core.DefaultPolicy()
	policy.RequireApprovalForAdmin = false

	// act
	result := requestadmin.Decide(requestadmin.State{UserExists: true}, requestadmin.BuildCommand(uuid.New(), FixtureClock()), policy)

	// assert
	require.Len(t, result.Events, 2)
	assert.IsType(t, core.AdminRequested{}, result.Events[0])
	assert.IsType(t, core.AdminApproved{}, result.Events[1])
}

func Test_Decide_OpenCheckoutsOnlyBlockWhenPolicySaysSo(t *testing.T) {
	// arrange
	state := requestadmin.State{UserExists: true, OpenCheckouts: 1}
	lenient := core.DefaultPolicy()
	lenient.BlockAdminRequestWithOpenCheckouts = false

	// act
	blocked := requestadmin.Decide(state, requestadmin.BuildCommand(uuid.New(), FixtureClock()), core.DefaultPolicy())
	allowed := requestadmin.Decide(state, requestadmin.BuildCommand(uuid.New(), FixtureClock()), lenient)

	// assert
	assert.Equal(t, core.KindConflict, core.KindOf(blocked.HasError()))
	assert.NoError(t, allowed.HasError())
	assert.Len(t, allowed.Events, 1)
}

func Test_Decide_Rejections(t *testing.T) {
	testCases := []struct {
		name  string
		state requestadmin.State
		kind  core.Kind
	}{
		{"user absent", requestadmin.State{}, core.KindNotFound},
		{"already admin", requestadmin.State{UserExists: true, IsAdmin: true}, core.KindConflict},
		{"request pending", requestadmin.State{UserExists: true, RequestIsPending: true}, core.KindConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := requestadmin.Decide(tc.state, requestadmin.BuildCommand(uuid.New(), FixtureClock()), core.DefaultPolicy())

			// assert
			assert.Equal(t, tc.kind, core.KindOf(result.HasError()))
		})
	}
}
