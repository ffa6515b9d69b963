package adapters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// sqlRows wraps standard library sql.Rows to implement the DBRows interface.
type sqlRows struct {
	rows *sql.Rows
}

func (s *sqlRows) Next() bool {
	return s.rows.Next()
}

func (s *sqlRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *sqlRows) Err() error {
	return s.rows.Err()
}

func (s *sqlRows) Close() error {
	return s.rows.Close()
}

// sqlResult wraps standard library sql.Result to implement the DBResult interface.
type sqlResult struct {
	result sql.Result
}

func (s *sqlResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}

// sqlTx adapts *sql.Tx (and the *sql.Tx embedded in *sqlx.Tx) to TxAdapter.
type sqlTx struct {
	tx *sql.Tx
}

func (s *sqlTx) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := s.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &sqlRows{rows: rows}, nil
}

func (s *sqlTx) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	result, err := s.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &sqlResult{result: result}, nil
}

func (s *sqlTx) Commit(_ context.Context) error {
	return s.tx.Commit()
}

func (s *sqlTx) Rollback(_ context.Context) error {
	return s.tx.Rollback()
}

func readCommitted() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
}

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation from either pgx or lib/pq.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}

	return false
}
