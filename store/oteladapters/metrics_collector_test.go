package oteladapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Chalhotra/LibMgmt/store/oteladapters"
)

func newCollector() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	require.Failf(t, "metric not found", "metric %q was not recorded", name)

	return metricdata.Metrics{}
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	collector, reader := newCollector()

	// act
	collector.RecordDuration(
		"commandhandler_handle_duration_seconds",
		150*time.Millisecond,
		map[string]string{"command_type": "RequestCheckout", "status": "success"},
	)

	// assert
	histogram, ok := findMetric(t, collect(t, reader), "commandhandler_handle_duration_seconds").Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(1), histogram.DataPoints[0].Count)
	assert.InDelta(t, 0.15, histogram.DataPoints[0].Sum, 0.001)

	expected := attribute.NewSet(
		attribute.String("command_type", "RequestCheckout"),
		attribute.String("status", "success"),
	)
	assert.True(t, histogram.DataPoints[0].Attributes.Equals(&expected))
}

func Test_MetricsCollector_IncrementCounterContext(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	labels := map[string]string{"operation": "lock book", "error_type": "query"}

	// act
	collector.IncrementCounterContext(context.Background(), "librarystore_database_errors_total", labels)
	collector.IncrementCounter("librarystore_database_errors_total", labels)

	// assert
	sum, ok := findMetric(t, collect(t, reader), "librarystore_database_errors_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	// arrange
	collector, reader := newCollector()

	// act
	collector.RecordValue("library_books_available", 3, nil)
	collector.RecordValueContext(context.Background(), "library_books_available", 7, nil)

	// assert
	gauge, ok := findMetric(t, collect(t, reader), "library_books_available").Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 7.0, gauge.DataPoints[0].Value, 0.0001)
}

func Test_MetricsCollector_IsSafeForConcurrentUse(t *testing.T) {
	// arrange
	collector, reader := newCollector()
	var wg sync.WaitGroup

	// act
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounter("queryhandler_calls_total", map[string]string{"status": "success"})
		}()
	}
	wg.Wait()

	// assert
	sum, ok := findMetric(t, collect(t, reader), "queryhandler_calls_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(20), sum.DataPoints[0].Value)
}
