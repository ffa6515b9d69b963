package pendingcheckoutrequests_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/query/pendingcheckoutrequests"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

func Test_QueryHandler_Handle_OldestRequestFirst(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := pendingcheckoutrequests.NewQueryHandler(libraryStore)
	aliceID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bobID := GivenUserWasRegistered(t, ctx, libraryStore, "bob")
	duneID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 3)
	laterID := GivenCheckoutWasRequested(t, ctx, libraryStore, aliceID, duneID, FixtureClock().Add(time.Hour))
	earlierID := GivenCheckoutWasRequested(t, ctx, libraryStore, bobID, duneID, FixtureClock())
	GivenCheckoutWasApproved(t, ctx, libraryStore, GivenUserWasRegistered(t, ctx, libraryStore, "carol"), duneID, FixtureClock())

	// act
	result, err := handler.Handle(ctx, pendingcheckoutrequests.BuildQuery(true))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, earlierID.String(), result.Requests[0].CheckoutID)
	assert.Equal(t, "bob", result.Requests[0].Username)
	assert.Equal(t, laterID.String(), result.Requests[1].CheckoutID)
	assert.Equal(t, "Dune", result.Requests[1].Title)
}

func Test_QueryHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	// setup
	handler := pendingcheckoutrequests.NewQueryHandler(memstore.New())

	// act
	_, err := handler.Handle(context.Background(), pendingcheckoutrequests.BuildQuery(false))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}
