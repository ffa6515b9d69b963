package removebook_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/removebook"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

func Test_CommandHandler_Handle_RemovesBookAndHistory(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := removebook.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 1)
	checkoutID := GivenCheckoutWasApproved(t, ctx, libraryStore, userID, bookID, FixtureClock())
	GivenEventsWereApplied(t, ctx, libraryStore,
		core.BuildBookCheckedIn(checkoutID, userID, bookID, FixtureClock().Add(14*24*time.Hour), 0, 1, FixtureClock().Add(24*time.Hour)),
	)

	// act
	_, err := handler.Handle(ctx, removebook.BuildCommand(adminID, bookID, FixtureClock()))

	// assert
	require.NoError(t, err)

	_, bookFound := libraryStore.Book(bookID)
	assert.False(t, bookFound, "Should delete the book")

	_, checkoutFound := libraryStore.Checkout(checkoutID)
	assert.False(t, checkoutFound, "Should delete the checkout history")
}

func Test_CommandHandler_Handle_BookWithOpenCheckout(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := removebook.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 1)
	GivenCheckoutWasApproved(t, ctx, libraryStore, userID, bookID, FixtureClock())

	// act
	_, err := handler.Handle(ctx, removebook.BuildCommand(adminID, bookID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)

	_, bookFound := libraryStore.Book(bookID)
	assert.True(t, bookFound, "Should keep the book")
}

func Test_CommandHandler_Handle_BookWithPendingRequest(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := removebook.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 1)
	GivenCheckoutWasRequested(t, ctx, libraryStore, userID, bookID, FixtureClock())

	// act
	_, err := handler.Handle(ctx, removebook.BuildCommand(adminID, bookID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
}

// requestBeforeBookLockRunner inserts a checkout right before the book row is locked,
// the moment a concurrent request that already held the book lock commits.
type requestBeforeBookLockRunner struct {
	shell.TxRunner
	checkout store.Checkout
}

func (r requestBeforeBookLockRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error {
	return r.TxRunner.WithinTx(ctx, func(ctx context.Context, tx store.Tx) error {
		return fn(ctx, requestBeforeBookLockTx{Tx: tx, checkout: r.checkout})
	})
}

type requestBeforeBookLockTx struct {
	store.Tx
	checkout store.Checkout
}

func (tx requestBeforeBookLockTx) LockBook(ctx context.Context, bookID uuid.UUID) (store.Book, error) {
	if err := tx.InsertCheckout(ctx, tx.checkout); err != nil {
		return store.Book{}, err
	}

	return tx.Tx.LockBook(ctx, bookID)
}

func Test_CommandHandler_Handle_CountsCheckoutsCommittedBeforeBookLock(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 1)
	checkoutID := GivenUniqueID(t)
	handler := removebook.NewCommandHandler(requestBeforeBookLockRunner{
		TxRunner: libraryStore,
		checkout: store.Checkout{
			ID:           checkoutID,
			UserID:       userID,
			BookID:       bookID,
			CheckoutDate: FixtureClock(),
			DueDate:      FixtureClock().Add(14 * 24 * time.Hour),
			Status:       store.CheckoutStatusApproved,
		},
	})

	// act
	_, err := handler.Handle(ctx, removebook.BuildCommand(adminID, bookID, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrConflict, "Should see the checkout that appeared before the book lock")

	_, bookFound := libraryStore.Book(bookID)
	assert.True(t, bookFound, "Should keep the book")
}
