package adapters

import "context"

// Querier runs parameterized statements. Both a connection pool and an open transaction satisfy it.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (DBRows, error)
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
}

// DBAdapter defines the database operations needed by the store.
type DBAdapter interface {
	Querier
	BeginTx(ctx context.Context) (TxAdapter, error)
}

// TxAdapter is an open READ COMMITTED transaction.
type TxAdapter interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
