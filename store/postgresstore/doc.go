// Package postgresstore provides the PostgreSQL implementation of the library store.
//
// Command handlers use WithinTx, which hands a store.Tx bound to one READ COMMITTED
// transaction. Every Lock* read takes a row lock (SELECT ... FOR UPDATE), so two requests
// competing for the same book or checkout serialize on that row. Query handlers use the
// read model methods, which run without a transaction.
//
// The store supports three connection types, selected by the constructor:
//   - NewStoreFromPGXPool: github.com/jackc/pgx/v5/pgxpool
//   - NewStoreFromSQLDB: database/sql with github.com/lib/pq
//   - NewStoreFromSQLX: github.com/jmoiron/sqlx
//
// All statements are built with goqu in prepared mode, so values are always sent as
// parameters. Optional logging, metrics and tracing are configured with functional options.
package postgresstore
