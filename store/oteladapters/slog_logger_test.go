package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chalhotra/LibMgmt/store/oteladapters"
)

func Test_SlogLogger_WritesThroughHandler(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// act
	logger.InfoContext(context.Background(), "command handler completed", "command_type", "AddOrRestockBook")
	logger.Debug("executed sql for: lock book", "duration_ms", 1.5)

	// assert
	assert.Contains(t, buf.String(), `"msg":"command handler completed"`)
	assert.Contains(t, buf.String(), `"command_type":"AddOrRestockBook"`)
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func Test_SlogLogger_RespectsHandlerLevel(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// act
	logger.Info("transaction committed")
	logger.WarnContext(context.Background(), "failed to roll back transaction")

	// assert
	assert.NotContains(t, buf.String(), "transaction committed")
	assert.Contains(t, buf.String(), "failed to roll back transaction")
}

func Test_NewSlogBridgeLogger(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("libmgmt")

	assert.NotNil(t, logger.Slog())
	assert.NotPanics(t, func() { logger.ErrorContext(context.Background(), "failed", "error", "boom") })
}
