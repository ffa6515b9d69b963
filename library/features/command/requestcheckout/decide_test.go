package requestcheckout_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/requestcheckout"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
)

func bookOnShelf(quantity int) requestcheckout.State {
	return requestcheckout.State{UserExists: true, BookExists: true, BookQuantity: quantity}
}

func Test_Decide_RequestTakesOneCopy(t *testing.T) {
	// arrange
	command := requestcheckout.BuildCommand(uuid.New(), uuid.New(), uuid.New(), FixtureClock())

	// act
	result := requestcheckout.Decide(bookOnShelf(2), command, core.DefaultPolicy())

	// assert
	require.Len(t, result.Events, 1)

	event, ok := result.Events[0].(core.CheckoutRequested)
	require.True(t, ok, "Should be CheckoutRequested")
	assert.Equal(t, 1, event.BookQuantity)
	assert.Equal(t, FixtureClock(), event.CheckoutDate)
	assert.Equal(t, FixtureClock().AddDate(0, 0, 14), event.DueDate)
}

func Test_Decide_AutoApprovesWithoutApprovalPolicy(t *testing.T) {
	// arrange
	policy := core.DefaultPolicy()
	policy.RequireApprovalForCheckout = false
	command := requestcheckout.BuildCommand(uuid.New(), uuid.New(), uuid.New(), FixtureClock())

	// act
	result := requestcheckout.Decide(bookOnShelf(1), command, policy)

	// assert
	require.Len(t, result.Events, 2)
	assert.IsType(t, core.CheckoutRequested{}, result.Events[0])

	approved, ok := result.Events[1].(core.CheckoutApproved)
	require.True(t, ok, "Should be CheckoutApproved")
	assert.Equal(t, command.CheckoutID.String(), approved.CheckoutID)
}

func Test_Decide_Rejections(t *testing.T) {
	active := bookOnShelf(1)
	active.HasActiveCheckout = true

	testCases := []struct {
		name  string
		state requestcheckout.State
		kind  core.Kind
	}{
		{"user absent", requestcheckout.State{BookExists: true, BookQuantity: 1}, core.KindNotFound},
		{"book absent", requestcheckout.State{UserExists: true}, core.KindNotFound},
		{"active checkout", active, core.KindConflict},
		{"no copy left", bookOnShelf(0), core.KindUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := requestcheckout.BuildCommand(uuid.New(), uuid.New(), uuid.New(), FixtureClock())

			// act
			result := requestcheckout.Decide(tc.state, command, core.DefaultPolicy())

			// assert
			assert.Equal(t, tc.kind, core.KindOf(result.HasError()))
			assert.Empty(t, result.Events)
		})
	}
}
