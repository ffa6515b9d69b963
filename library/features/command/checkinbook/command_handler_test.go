package checkinbook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/checkinbook"
	"github.com/Chalhotra/LibMgmt/library/shell"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

func Test_CommandHandler_Handle_LateReturnIsFined(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := checkinbook.NewCommandHandler(libraryStore, core.DefaultPolicy())
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	checkoutID := GivenCheckoutWasApproved(t, ctx, libraryStore, userID, bookID, FixtureClock())

	// act
	result, err := handler.Handle(ctx, checkinbook.BuildCommand(checkoutID, userID, FixtureClock().AddDate(0, 0, 20)))

	// assert
	require.NoError(t, err)

	event, ok := shell.FirstEventOf[core.BookCheckedIn](result)
	require.True(t, ok)
	assert.Equal(t, int64(6), event.Fine)

	checkout, _ := libraryStore.Checkout(checkoutID)
	require.NotNil(t, checkout.ReturnDate)
	assert.Equal(t, int64(6), checkout.Fine)

	book, _ := libraryStore.Book(bookID)
	assert.Equal(t, 2, book.Quantity)
}

func Test_CommandHandler_Handle_SecondReturn(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := checkinbook.NewCommandHandler(libraryStore, core.DefaultPolicy())
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	checkoutID := GivenCheckoutWasApproved(t, ctx, libraryStore, userID, bookID, FixtureClock())
	_, err := handler.Handle(ctx, checkinbook.BuildCommand(checkoutID, userID, FixtureClock().AddDate(0, 0, 1)))
	require.NoError(t, err)

	// act
	_, err = handler.Handle(ctx, checkinbook.BuildCommand(checkoutID, userID, FixtureClock().AddDate(0, 0, 2)))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)

	book, _ := libraryStore.Book(bookID)
	assert.Equal(t, 2, book.Quantity, "Should not return the copy twice")
}

func Test_CommandHandler_Handle_PendingCheckoutCannotBeReturned(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := checkinbook.NewCommandHandler(libraryStore, core.DefaultPolicy())
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	checkoutID := GivenCheckoutWasRequested(t, ctx, libraryStore, userID, bookID, FixtureClock())

	// act
	_, err := handler.Handle(ctx, checkinbook.BuildCommand(checkoutID, userID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_CommandHandler_Handle_OtherUsersCheckout(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := checkinbook.NewCommandHandler(libraryStore, core.DefaultPolicy())
	aliceID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bobID := GivenUserWasRegistered(t, ctx, libraryStore, "bob")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	checkoutID := GivenCheckoutWasApproved(t, ctx, libraryStore, aliceID, bookID, FixtureClock())

	// act
	_, err := handler.Handle(ctx, checkinbook.BuildCommand(checkoutID, bobID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
}
