package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"

	"github.com/Chalhotra/LibMgmt/library/httpapi"
	"github.com/Chalhotra/LibMgmt/library/shell/config"
	"github.com/Chalhotra/LibMgmt/store"
	"github.com/Chalhotra/LibMgmt/store/oteladapters"
	"github.com/Chalhotra/LibMgmt/store/postgresstore"
	"github.com/Chalhotra/LibMgmt/store/prometheusadapters"
)

const instrumentationName = "github.com/Chalhotra/LibMgmt"

type observability struct {
	logger   *oteladapters.SlogLogger
	registry *prometheus.Registry
	metrics  store.MetricsCollector
	tracing  store.TracingCollector
	shutdown func(ctx context.Context) error
}

// setupObservability always exports metrics to Prometheus. When an OTLP endpoint is configured,
// metrics are also sent there and tracing is switched on.
func setupObservability(ctx context.Context, settings config.Settings) (*observability, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	obs := &observability{
		logger:   newLogger(settings),
		registry: registry,
		metrics:  prometheusadapters.NewMetricsCollector(registry),
		shutdown: func(context.Context) error { return nil },
	}

	if settings.OTLPEndpoint == "" {
		return obs, nil
	}

	providers, err := config.NewObservabilityProviders(ctx, settings.OTLPEndpoint, settings.ServiceName, version)
	if err != nil {
		return nil, err
	}

	obs.metrics = fanOutMetrics{obs.metrics, oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))}
	obs.tracing = oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))
	obs.shutdown = providers.Shutdown

	return obs, nil
}

func newLogger(settings config.Settings) *oteladapters.SlogLogger {
	if settings.LogSink == config.LogSinkOTel {
		return oteladapters.NewSlogBridgeLogger(instrumentationName)
	}

	return oteladapters.NewSlogLogger(config.NewSlogHandler(os.Stderr, settings.LogLevel))
}

func (o *observability) storeOptions() []postgresstore.Option {
	options := []postgresstore.Option{
		postgresstore.WithContextualLogger(o.logger),
		postgresstore.WithMetrics(o.metrics),
	}

	if o.tracing != nil {
		options = append(options, postgresstore.WithTracing(o.tracing))
	}

	return options
}

func (o *observability) handlers() httpapi.Observability {
	return httpapi.Observability{
		Metrics: o.metrics,
		Tracing: o.tracing,
		Logger:  o.logger,
	}
}

func (o *observability) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := o.shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		o.logger.Error("shutting down telemetry failed", "error", err.Error())
	}
}

// fanOutMetrics forwards every measurement to all collectors.
type fanOutMetrics []store.MetricsCollector

func (f fanOutMetrics) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	for _, c := range f {
		c.RecordDuration(metric, duration, labels)
	}
}

func (f fanOutMetrics) IncrementCounter(metric string, labels map[string]string) {
	for _, c := range f {
		c.IncrementCounter(metric, labels)
	}
}

func (f fanOutMetrics) RecordValue(metric string, value float64, labels map[string]string) {
	for _, c := range f {
		c.RecordValue(metric, value, labels)
	}
}
