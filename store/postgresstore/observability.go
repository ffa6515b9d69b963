package postgresstore

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Chalhotra/LibMgmt/store"
)

const (
	metricQueryDuration  = "librarystore_query_duration_seconds"
	metricExecDuration   = "librarystore_exec_duration_seconds"
	metricTxDuration     = "librarystore_tx_duration_seconds"
	metricDatabaseErrors = "librarystore_database_errors_total"

	spanNameTx = "librarystore.tx"

	operationTx = "tx"

	statusSuccess    = "success"
	statusError      = "error"
	statusRolledBack = "rolled_back"

	errorTypeBegin  = "begin"
	errorTypeCommit = "commit"
	errorTypeQuery  = "query"
	errorTypeScan   = "scan"
	errorTypeExec   = "exec"

	labelOperation = "operation"
	labelStatus    = "status"
	labelErrorType = "error_type"

	logMsgBuildQueryFailed   = "failed to build sql statement"
	logMsgDBQueryFailed      = "database query execution failed"
	logMsgDBExecFailed       = "database statement execution failed"
	logMsgScanRowFailed      = "failed to scan database row"
	logMsgCloseRowsFailed    = "failed to close database rows"
	logMsgRowsAffectedFailed = "failed to get rows affected count"
	logMsgUniqueViolation    = "unique constraint violated"
	logMsgBeginTxFailed      = "failed to begin transaction"
	logMsgCommitTxFailed     = "failed to commit transaction"
	logMsgRollbackFailed     = "failed to roll back transaction"
	logMsgTxCommitted        = "transaction committed"
	logMsgSQLExecuted        = "executed sql for: "
	logMsgOperation          = "librarystore operation: "

	logAttrError      = "error"
	logAttrQuery      = "query"
	logAttrAction     = "action"
	logAttrDurationMS = "duration_ms"
	logAttrRowCount   = "row_count"
)

// logQueryWithDuration logs SQL statements with execution time at debug level.
func (s Store) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	msg := logMsgSQLExecuted + action
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// logOperation logs operational information at info level.
func (s Store) logOperation(ctx context.Context, action string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues.
func (s Store) logWarn(ctx context.Context, message string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, args...)
		return
	}

	if s.logger != nil {
		s.logger.Warn(message, args...)
	}
}

// logError logs failures at error level.
func (s Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}
}

// recordErrorMetrics counts database errors by operation and error type.
func (s Store) recordErrorMetrics(ctx context.Context, operation, errorType string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: operation,
		labelStatus:    statusError,
		labelErrorType: errorType,
	}

	if contextualCollector, ok := s.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricDatabaseErrors, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metricDatabaseErrors, labels)
}

// recordDurationMetrics records a duration with the context-aware method when the collector supports it.
func (s Store) recordDurationMetrics(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation, status string,
) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: operation,
		labelStatus:    status,
	}

	if contextualCollector, ok := s.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metricName, duration, labels)
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (s Store) startTraceSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, store.SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, name, attrs)
}

// finishTraceSpan finishes a span started by startTraceSpan.
func (s Store) finishTraceSpan(span store.SpanContext, status string, duration time.Duration, err error) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		logAttrDurationMS: fmt.Sprintf("%.3f", toMilliseconds(duration)),
	}

	if err != nil {
		attrs[logAttrError] = err.Error()
	}

	s.tracingCollector.FinishSpan(span, status, attrs)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
