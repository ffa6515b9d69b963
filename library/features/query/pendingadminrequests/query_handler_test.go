package pendingadminrequests_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/query/pendingadminrequests"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

func Test_QueryHandler_Handle_OrderedByUsername(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := pendingadminrequests.NewQueryHandler(libraryStore)
	zoeID := GivenUserWasRegistered(t, ctx, libraryStore, "zoe")
	aliceID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	GivenUserWasRegistered(t, ctx, libraryStore, "bob")
	GivenEventsWereApplied(t, ctx, libraryStore,
		core.BuildAdminRequested(zoeID, FixtureClock()),
		core.BuildAdminRequested(aliceID, FixtureClock()),
	)

	// act
	result, err := handler.Handle(ctx, pendingadminrequests.BuildQuery(true))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "alice", result.Requests[0].Username)
	assert.Equal(t, "zoe", result.Requests[1].Username)
}

func Test_QueryHandler_Handle_Failures(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := pendingadminrequests.NewQueryHandler(libraryStore)

	// act
	_, forbiddenErr := handler.Handle(ctx, pendingadminrequests.BuildQuery(false))

	libraryStore.FailTransactionsWith(errors.New("connection reset"))
	_, storageErr := handler.Handle(ctx, pendingadminrequests.BuildQuery(true))

	// assert
	assert.ErrorIs(t, forbiddenErr, core.ErrForbidden)
	assert.ErrorIs(t, storageErr, core.ErrStorage)
}
