package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/core"
	"github.com/Chalhotra/LibMgmt/library/shell"
	"github.com/Chalhotra/LibMgmt/library/shell/observable"
	. "github.com/Chalhotra/LibMgmt/testutil/helper" //nolint:revive
)

func Test_QueryWrapper_Handle_Success(t *testing.T) {
	// arrange
	handler := &mockQueryHandler{result: mockQueryResult{Count: 3}}
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockQueryResult](
		handler,
		observable.WithQueryMetrics[mockQuery, mockQueryResult](metricsCollector),
		observable.WithQueryTracing[mockQuery, mockQueryResult](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, mockQueryResult](contextualLogger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithLabel(shell.LogAttrQueryType, "TestQuery").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameQueryHandle, shell.StatusSuccess))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryStarted))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_Error(t *testing.T) {
	// arrange
	handlerErr := core.StorageFailure(errors.New("connection refused"))
	handler := &mockQueryHandler{err: handlerErr}
	metricsCollector := NewMetricsCollectorSpy(true)
	contextualLogger := NewContextualLoggerSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockQueryResult](
		handler,
		observable.WithQueryMetrics[mockQuery, mockQueryResult](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, mockQueryResult](contextualLogger),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, core.ErrStorage)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus(shell.StatusError).
		Assert())
	assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed))
}

func Test_QueryWrapper_Handle_Canceled(t *testing.T) {
	// arrange
	handler := &mockQueryHandler{err: context.Canceled}
	metricsCollector := NewMetricsCollectorSpy(true)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockQueryResult](
		handler,
		observable.WithQueryMetrics[mockQuery, mockQueryResult](metricsCollector),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCanceledMetric).
		WithStatus(shell.StatusCanceled).
		Assert())
}

type mockQuery struct{}

func (q mockQuery) QueryType() string {
	return "TestQuery"
}

type mockQueryResult struct {
	Count int
}

func (r mockQueryResult) IsQueryResult() {}

type mockQueryHandler struct {
	result mockQueryResult
	err    error
}

func (h *mockQueryHandler) Handle(_ context.Context, _ mockQuery) (mockQueryResult, error) {
	return h.result, h.err
}
