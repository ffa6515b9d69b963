package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/Chalhotra/LibMgmt/store"
)

// SlogLogger implements store.ContextualLogger and store.Logger on top of a *slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger that emits through the global OpenTelemetry LoggerProvider.
// Records logged with a context carry the trace and span IDs of the active span.
func NewSlogBridgeLogger(name string) *SlogLogger {
	return &SlogLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogLogger creates a logger that writes to handler without OpenTelemetry correlation.
func NewSlogLogger(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Slog returns the underlying *slog.Logger.
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

func (l *SlogLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *SlogLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *SlogLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *SlogLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

var (
	_ store.ContextualLogger = (*SlogLogger)(nil)
	_ store.Logger           = (*SlogLogger)(nil)
)
