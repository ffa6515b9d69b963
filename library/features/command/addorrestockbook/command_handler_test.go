package addorrestockbook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/features/command/addorrestockbook"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
	"github.com/Chalhotra/LibMgmt/testutil/memstore"
)

func Test_CommandHandler_Handle_AddThenRestock(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := addorrestockbook.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	bookID := GivenUniqueID(t)

	// act
	_, addErr := handler.Handle(ctx, addorrestockbook.BuildCommand(adminID, bookID, "Dune", "Frank Herbert", 2, FixtureClock()))
	result, restockErr := handler.Handle(ctx, addorrestockbook.BuildCommand(adminID, GivenUniqueID(t), "Dune", "Frank Herbert", 3, FixtureClock()))

	// assert
	require.NoError(t, addErr)
	require.NoError(t, restockErr)

	restocked, ok := shell.FirstEventOf[core.BookRestocked](result)
	require.True(t, ok, "Should restock the existing book")
	assert.Equal(t, bookID.String(), restocked.BookID)

	book, found := libraryStore.Book(bookID)
	require.True(t, found)
	assert.Equal(t, 5, book.Quantity)
	assert.Len(t, libraryStore.Events(), 4, "Should journal registration, approval, add and restock")
}

func Test_CommandHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := addorrestockbook.NewCommandHandler(libraryStore)
	userID := GivenUserWasRegistered(t, ctx, libraryStore, "alice")

	// act
	_, err := handler.Handle(ctx, addorrestockbook.BuildCommand(userID, GivenUniqueID(t), "Dune", "Frank Herbert", 1, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrForbidden)
	assert.Len(t, libraryStore.Events(), 1, "Should only hold the registration")
}

func Test_CommandHandler_Handle_StorageFailure(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := addorrestockbook.NewCommandHandler(libraryStore)
	libraryStore.FailTransactionsWith(errors.New("connection reset"))

	// act
	_, err := handler.Handle(ctx, addorrestockbook.BuildCommand(GivenUniqueID(t), GivenUniqueID(t), "Dune", "Frank Herbert", 1, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrStorage)
	assert.Equal(t, core.KindStorage, core.KindOf(err))
}

// concurrentAddRunner hides existing books from the first lookups, the way a transaction that
// started before a concurrent add committed does not see the new row.
type concurrentAddRunner struct {
	shell.TxRunner
	staleLookups int
}

func (r *concurrentAddRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error {
	return r.TxRunner.WithinTx(ctx, func(ctx context.Context, tx store.Tx) error {
		if r.staleLookups > 0 {
			r.staleLookups--
			return fn(ctx, staleLookupTx{Tx: tx})
		}

		return fn(ctx, tx)
	})
}

type staleLookupTx struct {
	store.Tx
}

func (staleLookupTx) LockBookByTitleAndAuthor(context.Context, string, string) (store.Book, error) {
	return store.Book{}, store.ErrRowNotFound
}

func Test_CommandHandler_Handle_ConcurrentAddOfSameTitleIsMerged(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	existingID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", 2)
	handler := addorrestockbook.NewCommandHandler(&concurrentAddRunner{TxRunner: libraryStore, staleLookups: 1})

	// act
	result, err := handler.Handle(ctx, addorrestockbook.BuildCommand(adminID, GivenUniqueID(t), "Dune", "Frank Herbert", 3, FixtureClock()))

	// assert
	require.NoError(t, err, "Should merge into the existing book instead of failing on the duplicate")

	restocked, ok := shell.FirstEventOf[core.BookRestocked](result)
	require.True(t, ok, "Should restock the book the concurrent add created")
	assert.Equal(t, existingID.String(), restocked.BookID)

	book, found := libraryStore.Book(existingID)
	require.True(t, found)
	assert.Equal(t, 5, book.Quantity)
}

func Test_CommandHandler_Handle_RejectsRestockAboveMaximum(t *testing.T) {
	// setup
	ctx := context.Background()
	libraryStore := memstore.New()
	handler := addorrestockbook.NewCommandHandler(libraryStore)
	adminID := GivenAdminWasRegistered(t, ctx, libraryStore, "admin")
	bookID := GivenBookWasAdded(t, ctx, libraryStore, "Dune", "Frank Herbert", core.MaxBookQuantity)

	// act
	_, err := handler.Handle(ctx, addorrestockbook.BuildCommand(adminID, GivenUniqueID(t), "Dune", "Frank Herbert", 1, FixtureClock()))

	// assert
	assert.ErrorIs(t, err, core.ErrInvalid)

	book, found := libraryStore.Book(bookID)
	require.True(t, found)
	assert.Equal(t, core.MaxBookQuantity, book.Quantity)
}
