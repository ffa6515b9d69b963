// Package oteladapters connects the store and handler observability interfaces to OpenTelemetry.
//
//   - MetricsCollector records histograms, counters and gauges through a metric.Meter.
//   - TracingCollector opens spans through a trace.Tracer.
//   - SlogLogger writes through log/slog, optionally bridged to the OpenTelemetry LoggerProvider
//     so records carry the trace and span IDs of the request.
package oteladapters
