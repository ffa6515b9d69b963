package helper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/store"
)

// FixturePassword is the password behind FixturePasswordHash.
const FixturePassword = "correct horse battery"

// FixturePasswordHash is a bcrypt hash (cost 4) of FixturePassword.
const FixturePasswordHash = "$2b$04$abcdefghijklmnopqrstuuqREtd3VJD2QVZbuFskFSLk6eRIrQoOS"

// FixtureClock returns a fixed point in time tests can count from.
func FixtureClock() time.Time {
	return time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
}

// GivenUniqueID returns a fresh time-ordered id.
func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// GivenEventsWereApplied writes events through shell.ApplyEvents in one transaction, bypassing the decisions.
// Use it to arrange states the commands cannot reach on their own.
func GivenEventsWereApplied(t testing.TB, ctx context.Context, runner shell.TxRunner, events ...core.DomainEvent) {
	t.Helper()

	err := runner.WithinTx(ctx, func(ctx context.Context, tx store.Tx) error {
		return shell.ApplyEvents(ctx, tx, shell.EventMetadataFor(ctx), events)
	})
	require.NoError(t, err, "error in arranging test data")
}

// GivenUserWasRegistered registers a regular user.
func GivenUserWasRegistered(t testing.TB, ctx context.Context, runner shell.TxRunner, username string) uuid.UUID {
	t.Helper()

	userID := GivenUniqueID(t)
	GivenEventsWereApplied(t, ctx, runner, core.BuildUserRegistered(userID, username, FixturePasswordHash, FixtureClock()))

	return userID
}

// GivenAdminWasRegistered registers a user and grants admin rights.
func GivenAdminWasRegistered(t testing.TB, ctx context.Context, runner shell.TxRunner, username string) uuid.UUID {
	t.Helper()

	userID := GivenUniqueID(t)
	GivenEventsWereApplied(t, ctx, runner,
		core.BuildUserRegistered(userID, username, FixturePasswordHash, FixtureClock()),
		core.BuildAdminApproved(userID, uuid.Nil, FixtureClock()),
	)

	return userID
}

// GivenBookWasAdded adds a book with the given quantity.
func GivenBookWasAdded(t testing.TB, ctx context.Context, runner shell.TxRunner, title, author string, quantity int) uuid.UUID {
	t.Helper()

	bookID := GivenUniqueID(t)
	GivenEventsWereApplied(t, ctx, runner, core.BuildBookAddedToInventory(bookID, title, author, quantity, FixtureClock()))

	return bookID
}

// GivenCheckoutWasRequested creates a pending checkout at checkoutDate and takes one copy of the book.
func GivenCheckoutWasRequested(
	t testing.TB,
	ctx context.Context,
	runner shell.TxRunner,
	userID, bookID uuid.UUID,
	checkoutDate time.Time,
) uuid.UUID {

	t.Helper()

	checkoutID := GivenUniqueID(t)

	err := runner.WithinTx(ctx, func(ctx context.Context, tx store.Tx) error {
		book, err := tx.LockBook(ctx, bookID)
		if err != nil {
			return err
		}

		event := core.BuildCheckoutRequested(
			checkoutID, userID, bookID,
			core.DueDateFor(checkoutDate, core.DefaultPolicy()),
			book.Quantity-1,
			checkoutDate,
		)

		return shell.ApplyEvents(ctx, tx, shell.EventMetadataFor(ctx), core.DomainEvents{event})
	})
	require.NoError(t, err, "error in arranging test data")

	return checkoutID
}

// GivenCheckoutWasApproved creates an approved checkout at checkoutDate, due 14 days later.
func GivenCheckoutWasApproved(
	t testing.TB,
	ctx context.Context,
	runner shell.TxRunner,
	userID, bookID uuid.UUID,
	checkoutDate time.Time,
) uuid.UUID {

	t.Helper()

	checkoutID := GivenCheckoutWasRequested(t, ctx, runner, userID, bookID, checkoutDate)
	GivenEventsWereApplied(t, ctx, runner, core.BuildCheckoutApproved(checkoutID, userID, bookID, uuid.Nil, checkoutDate))

	return checkoutID
}
