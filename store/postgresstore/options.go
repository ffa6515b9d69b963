package postgresstore

import (
	"errors"

	"github.com/Chalhotra/LibMgmt/store"
)

// ErrEmptyEventTableName is returned when WithEventTableName receives an empty name.
var ErrEmptyEventTableName = errors.New("empty event table name supplied")

// Option defines a functional option for configuring Store.
type Option func(*Store) error

// WithEventTableName sets the journal table name. The default is "library_events".
func WithEventTableName(tableName string) Option {
	return func(s *Store) error {
		if tableName == "" {
			return ErrEmptyEventTableName
		}

		s.eventTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: committed transactions and row counts (production-safe)
// Warn level: non-critical issues like rollback or cleanup failures
// Error level: failures that cause the operation to fail.
func WithLogger(logger store.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store.
// When set it takes precedence over the plain logger, so log records carry trace correlation.
func WithContextualLogger(logger store.ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
func WithMetrics(collector store.MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
func WithTracing(collector store.TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}
