// Package memstore is an in-memory implementation of the library store, for tests.
//
// WithinTx serializes all transactions on one mutex and works on a copy of the state,
// which is swapped in only when the callback returns nil. This gives the same
// all-or-nothing behavior as the PostgreSQL store. Unique constraints of the schema
// (book title and author, username, one active checkout per user and book) are enforced
// and reported as store.ErrUniqueViolation.
package memstore
