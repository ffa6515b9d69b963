package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLXAdapter implements DBAdapter for sqlx.DB.
type SQLXAdapter struct {
	db *sqlx.DB
}

// NewSQLXAdapter creates a new SQLX adapter.
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

// Query executes a query using sqlx and returns wrapped rows.
func (s *SQLXAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &sqlRows{rows: rows.Rows}, nil
}

// Exec executes a statement using sqlx and returns a wrapped result.
func (s *SQLXAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &sqlResult{result: result}, nil
}

// BeginTx starts a READ COMMITTED transaction.
func (s *SQLXAdapter) BeginTx(ctx context.Context) (TxAdapter, error) {
	tx, err := s.db.BeginTxx(ctx, readCommitted())
	if err != nil {
		return nil, err
	}

	return &sqlTx{tx: tx.Tx}, nil
}
