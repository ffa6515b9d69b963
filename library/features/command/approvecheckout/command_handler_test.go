package approvecheckout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/approvecheckout"
	"github.com/Chalhotra/LibMgmt/store"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

func Test_CommandHandler_Handle_ApprovesWithoutTouchingQuantity(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := approvecheckout.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	checkoutID := GivenCheckoutWasRequested(t, ctx, libraryStore, userID, bookID, FixtureClock())

	// act
	_, err := handler.Handle(ctx, approvecheckout.BuildCommand(adminID, checkoutID, FixtureClock()))

	// assert
	require.NoError(t, err)

	checkout, _ := libraryStore.Checkout(checkoutID)
	assert.Equal(t, store.CheckoutStatusApproved, checkout.Status)

	book, _ := libraryStore.Book(bookID)
	assert.Equal(t, 1, book.Quantity)
}

func Test_CommandHandler_Handle_AlreadyApproved(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := approvecheckout.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	checkoutID := GivenCheckoutWasApproved(t, ctx, libraryStore, userID, bookID, FixtureClock())

	// act
	_, err := handler.Handle(ctx, approvecheckout.BuildCommand(adminID, checkoutID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_CommandHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := approvecheckout.NewCommandHandler(libraryStore)
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	checkoutID := GivenCheckoutWasRequested(t, ctx, libraryStore, userID, bookID, FixtureClock())

	// act
	_, err := handler.Handle(ctx, approvecheckout.BuildCommand(userID, checkoutID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)

	checkout, _ := libraryStore.Checkout(checkoutID)
	assert.Equal(t, store.CheckoutStatusPending, checkout.Status)
}
