package typecast

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies typecast's tracer and meter.
const instrumentationName = "github.com/zero-day-ai/typecast"

// otelMetrics holds the OpenTelemetry metric instruments for a Coercer.
type otelMetrics struct {
	// countCounter increments for each coercion performed
	countCounter metric.Int64Counter
}

// initOTelMetrics creates the metric instruments from mp.
func initOTelMetrics(mp metric.MeterProvider) (*otelMetrics, error) {
	if mp == nil {
		return nil, nil
	}

	meter := mp.Meter(instrumentationName)
	count, err := meter.Int64Counter(
		"typecast.coerce.count",
		metric.WithDescription("Number of temporal coercions performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create count counter: %w", err)
	}

	return &otelMetrics{countCounter: count}, nil
}

// resultAttributes describes r for spans and metrics.
func resultAttributes(r Result) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("typecast.kind", r.Kind.String()),
		attribute.String("typecast.shape", r.Shape.String()),
		attribute.String("typecast.outcome", string(r.Outcome())),
	}
}

// startSpan starts a span when a tracer is configured.
func (c *Coercer) startSpan(ctx context.Context) (context.Context, trace.Span) {
	if c.tracer == nil {
		return ctx, nil
	}
	return c.tracer.Start(ctx, "typecast.coerce")
}

// record finishes span and updates metrics for r.
func (c *Coercer) record(ctx context.Context, span trace.Span, r Result) {
	attrs := resultAttributes(r)

	if span != nil {
		span.SetAttributes(attrs...)
		if r.Outcome() == OutcomeFailed {
			span.RecordError(r.Err)
			span.SetStatus(codes.Error, string(r.Reason()))
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}

	if c.metrics != nil && c.metrics.countCounter != nil {
		c.metrics.countCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
