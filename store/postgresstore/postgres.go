package postgresstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/Chalhotra/LibMgmt/store"
	"github.com/Chalhotra/LibMgmt/store/postgresstore/internal/adapters"
)

const (
	defaultEventTableName = "library_events"
	tableBooks            = "books"
	tableUsers            = "users"
	tableCheckouts        = "checkouts"
	dialectPostgres       = "postgres"
)

// sqlBuilder is satisfied by every goqu dataset.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// Store is the PostgreSQL implementation of the library persistence.
// It runs command-side work through WithinTx and serves the read models directly.
type Store struct {
	db               adapters.DBAdapter
	eventTableName   string
	logger           store.Logger
	contextualLogger store.ContextualLogger
	metricsCollector store.MetricsCollector
	tracingCollector store.TracingCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, store.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, store.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, store.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (Store, error) {
	s := Store{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// WithinTx runs fn inside one READ COMMITTED transaction.
// The transaction is committed when fn returns nil and rolled back otherwise, including on panic.
// Errors returned by fn are passed through unchanged.
func (s Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error {
	start := time.Now()
	ctx, span := s.startTraceSpan(ctx, spanNameTx, nil)

	adapterTx, beginErr := s.db.BeginTx(ctx)
	if beginErr != nil {
		s.logError(ctx, logMsgBeginTxFailed, beginErr)
		s.recordErrorMetrics(ctx, operationTx, errorTypeBegin)
		s.finishTraceSpan(span, statusError, time.Since(start), beginErr)

		return errors.Join(store.ErrBeginningTxFailed, beginErr)
	}

	finished := false
	defer func() {
		if p := recover(); p != nil {
			if !finished {
				s.rollback(ctx, adapterTx)
			}
			panic(p)
		}
	}()

	if fnErr := fn(ctx, pgTx{store: s, q: adapterTx}); fnErr != nil {
		s.rollback(ctx, adapterTx)
		finished = true
		s.recordDurationMetrics(ctx, metricTxDuration, time.Since(start), operationTx, statusRolledBack)
		s.finishTraceSpan(span, statusRolledBack, time.Since(start), fnErr)

		return fnErr
	}

	if commitErr := adapterTx.Commit(ctx); commitErr != nil {
		finished = true
		s.logError(ctx, logMsgCommitTxFailed, commitErr)
		s.recordErrorMetrics(ctx, operationTx, errorTypeCommit)
		s.finishTraceSpan(span, statusError, time.Since(start), commitErr)

		return errors.Join(store.ErrCommittingTxFailed, commitErr)
	}

	finished = true
	duration := time.Since(start)
	s.recordDurationMetrics(ctx, metricTxDuration, duration, operationTx, statusSuccess)
	s.finishTraceSpan(span, statusSuccess, duration, nil)
	s.logOperation(ctx, logMsgTxCommitted, logAttrDurationMS, toMilliseconds(duration))

	return nil
}

// rollback aborts the transaction. It ignores the caller's cancellation, so a canceled
// request still releases its locks.
func (s Store) rollback(ctx context.Context, adapterTx adapters.TxAdapter) {
	if err := adapterTx.Rollback(context.WithoutCancel(ctx)); err != nil {
		s.logWarn(ctx, logMsgRollbackFailed, logAttrError, err.Error())
	}
}

// queryRows builds and runs a SELECT, calling scan for every row.
func (s Store) queryRows(
	ctx context.Context,
	q adapters.Querier,
	action string,
	builder sqlBuilder,
	scan func(rows adapters.DBRows) error,
) error {

	sqlQuery, args, buildErr := builder.ToSQL()
	if buildErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, buildErr, logAttrAction, action)
		return errors.Join(store.ErrBuildingQueryFailed, buildErr)
	}

	start := time.Now()
	rows, queryErr := q.Query(ctx, sqlQuery, args...)
	s.logQueryWithDuration(ctx, sqlQuery, action, time.Since(start))

	if queryErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrAction, action, logAttrQuery, sqlQuery)
		s.recordErrorMetrics(ctx, action, errorTypeQuery)

		return errors.Join(store.ErrQueryingFailed, queryErr)
	}
	defer s.closeRows(ctx, rows)

	for rows.Next() {
		if scanErr := scan(rows); scanErr != nil {
			s.logError(ctx, logMsgScanRowFailed, scanErr, logAttrAction, action)
			s.recordErrorMetrics(ctx, action, errorTypeScan)

			return errors.Join(store.ErrScanningRowFailed, scanErr)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, rowsErr, logAttrAction, action)
		s.recordErrorMetrics(ctx, action, errorTypeQuery)

		return errors.Join(store.ErrQueryingFailed, rowsErr)
	}

	s.recordDurationMetrics(ctx, metricQueryDuration, time.Since(start), action, statusSuccess)

	return nil
}

// exec builds and runs an INSERT, UPDATE or DELETE and returns the affected row count.
func (s Store) exec(ctx context.Context, q adapters.Querier, action string, builder sqlBuilder) (int64, error) {
	sqlQuery, args, buildErr := builder.ToSQL()
	if buildErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, buildErr, logAttrAction, action)
		return 0, errors.Join(store.ErrBuildingQueryFailed, buildErr)
	}

	start := time.Now()
	result, execErr := q.Exec(ctx, sqlQuery, args...)
	duration := time.Since(start)
	s.logQueryWithDuration(ctx, sqlQuery, action, duration)

	if execErr != nil {
		s.recordErrorMetrics(ctx, action, errorTypeExec)

		if adapters.IsUniqueViolation(execErr) {
			s.logOperation(ctx, logMsgUniqueViolation, logAttrAction, action)
			return 0, errors.Join(store.ErrUniqueViolation, execErr)
		}

		s.logError(ctx, logMsgDBExecFailed, execErr, logAttrAction, action, logAttrQuery, sqlQuery)

		return 0, errors.Join(store.ErrExecutingFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr, logAttrAction, action)
		return 0, errors.Join(store.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	s.recordDurationMetrics(ctx, metricExecDuration, duration, action, statusSuccess)

	return rowsAffected, nil
}

// execOne runs exec and requires at least one affected row.
func (s Store) execOne(ctx context.Context, q adapters.Querier, action string, builder sqlBuilder) error {
	rowsAffected, err := s.exec(ctx, q, action, builder)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", store.ErrNoRowsAffected, action)
	}

	return nil
}

// closeRows safely closes database rows and logs any errors.
func (s Store) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func dialect() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}
