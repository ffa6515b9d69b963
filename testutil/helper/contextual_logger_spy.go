package helper

import (
	"context"
	"slices"
	"sync"

	"github.com/Chalhotra/LibMgmt/store"
)

var _ store.ContextualLogger = (*ContextualLoggerSpy)(nil)

// ContextualLoggerSpy is a ContextualLogger that captures log records per level.
type ContextualLoggerSpy struct {
	records     []SpyLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyLogRecord represents a captured log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{recordCalls: recordCalls}
}

func (l *ContextualLoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	l.record("debug", msg, args)
}

func (l *ContextualLoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	l.record("info", msg, args)
}

func (l *ContextualLoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	l.record("warn", msg, args)
}

func (l *ContextualLoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	l.record("error", msg, args)
}

func (l *ContextualLoggerSpy) record(level, msg string, args []any) {
	if !l.recordCalls {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, SpyLogRecord{Level: level, Message: msg, Args: slices.Clone(args)})
}

// HasDebugLog checks if a debug log with the message was recorded.
func (l *ContextualLoggerSpy) HasDebugLog(message string) bool {
	return l.has("debug", message)
}

// HasInfoLog checks if an info log with the message was recorded.
func (l *ContextualLoggerSpy) HasInfoLog(message string) bool {
	return l.has("info", message)
}

// HasErrorLog checks if an error log with the message was recorded.
func (l *ContextualLoggerSpy) HasErrorLog(message string) bool {
	return l.has("error", message)
}

func (l *ContextualLoggerSpy) has(level, message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.ContainsFunc(l.records, func(r SpyLogRecord) bool {
		return r.Level == level && r.Message == message
	})
}

// GetTotalRecordCount returns the number of captured log calls.
func (l *ContextualLoggerSpy) GetTotalRecordCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.records)
}
