// Package store provides the persistence abstractions of the library service.
//
// This package defines the row types, the transactional unit of work (Tx), the storable
// journal event and the error definitions shared by all store implementations.
// It knows nothing about business rules: which rows get locked, read and written
// is decided by the command handlers in the library packages.
//
// Key types:
//   - Tx: the unit of work used by command handlers inside one database transaction
//   - Book, User, Checkout: the rows of the three state tables
//   - StorableEvent: a journal entry appended in the same transaction as the change it describes
//
// Common usage pattern:
//
//	err := s.WithinTx(ctx, func(ctx context.Context, tx store.Tx) error {
//		book, err := tx.LockBook(ctx, bookID)
//		if err != nil {
//			return err
//		}
//
//		book.Quantity--
//
//		return tx.UpdateBook(ctx, book)
//	})
package store
