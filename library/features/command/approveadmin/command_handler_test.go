package approveadmin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/approveadmin"
	"github.com/Chalhotra/LibMgmt/store"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

func Test_CommandHandler_Handle_GrantsAdminRights(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := approveadmin.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	GivenEventsWereApplied(t, ctx, libraryStore, core.BuildAdminRequested(userID, FixtureClock()))

	// act
	_, err := handler.Handle(ctx, approveadmin.BuildCommand(adminID, userID, FixtureClock()))

	// assert
	require.NoError(t, err)

	user, _ := libraryStore.User(userID)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, store.AdminRequestApproved, user.AdminRequestStatus)
}

func Test_CommandHandler_Handle_WithoutPendingRequest(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := approveadmin.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")

	// act
	_, err := handler.Handle(ctx, approveadmin.BuildCommand(adminID, userID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)

	user, _ := libraryStore.User(userID)
	assert.False(t, user.IsAdmin)
}

func Test_CommandHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := approveadmin.NewCommandHandler(libraryStore)
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	GivenEventsWereApplied(t, ctx, libraryStore, core.BuildAdminRequested(userID, FixtureClock()))

	// act
	_, err := handler.Handle(ctx, approveadmin.BuildCommand(userID, userID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}
