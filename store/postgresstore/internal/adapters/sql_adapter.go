package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter implements DBAdapter for sql.DB.
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter creates a new SQL adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// Query executes a query using sql.DB and returns wrapped rows.
func (s *SQLAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &sqlRows{rows: rows}, nil
}

// Exec executes a statement using sql.DB and returns a wrapped result.
func (s *SQLAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &sqlResult{result: result}, nil
}

// BeginTx starts a READ COMMITTED transaction.
func (s *SQLAdapter) BeginTx(ctx context.Context) (TxAdapter, error) {
	tx, err := s.db.BeginTx(ctx, readCommitted())
	if err != nil {
		return nil, err
	}

	return &sqlTx{tx: tx}, nil
}
