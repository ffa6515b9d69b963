package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Chalhotra/LibMgmt/store"
)

const attrStatus = "status"

// TracingCollector implements store.TracingCollector with an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a TracingCollector on top of a tracer from the application's TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span as a child of the span in ctx and returns the derived context.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, store.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &SpanContext{span: span}
}

// FinishSpan sets the final attributes and status, then ends the span.
// Spans that were not started by a TracingCollector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx store.SpanContext, status string, attrs map[string]string) {
	otelSpan, ok := spanCtx.(*SpanContext)
	if !ok {
		return
	}

	otelSpan.span.SetAttributes(toAttributes(attrs)...)
	otelSpan.SetStatus(status)
	otelSpan.span.End()
}

// SpanContext wraps an OpenTelemetry span.
type SpanContext struct {
	span trace.Span
}

// SetStatus maps the status labels used by the store and the handlers onto span status codes.
// Business outcomes such as "idempotent" or "rejected" are recorded as an attribute and leave the span unset.
func (s *SpanContext) SetStatus(status string) {
	switch status {
	case "success", "committed":
		s.span.SetStatus(codes.Ok, "")
	case "error":
		s.span.SetStatus(codes.Error, "operation failed")
	case "canceled":
		s.span.SetStatus(codes.Error, "operation canceled")
	case "timeout":
		s.span.SetStatus(codes.Error, "operation timed out")
	default:
		s.span.SetAttributes(attribute.String(attrStatus, status))
	}
}

// AddAttribute adds a string attribute to the span.
func (s *SpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var (
	_ store.TracingCollector = (*TracingCollector)(nil)
	_ store.SpanContext      = (*SpanContext)(nil)
)
