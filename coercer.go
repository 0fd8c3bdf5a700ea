package typecast

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/typecast/input"
	"github.com/zero-day-ai/typecast/temporal"
)

// Coercer turns loosely typed values into canonical temporal values.
//
// A Coercer is immutable after New and safe for concurrent use.
type Coercer struct {
	clock    Clock
	location *time.Location
	layouts  layoutSet
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *otelMetrics
}

// New creates a Coercer with the given options.
func New(opts ...Option) (*Coercer, error) {
	cfg := &coercerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Coercer{
		clock:    cfg.clock,
		location: cfg.location,
		logger:   cfg.logger,
		tracer:   cfg.tracer,
	}

	var extraInstant, extraDate, extraDateTime []string
	extraInstant = append(extraInstant, cfg.layouts[temporal.KindInstant]...)
	extraDate = append(extraDate, cfg.layouts[temporal.KindDate]...)
	extraDateTime = append(extraDateTime, cfg.layouts[temporal.KindDateTime]...)

	if cfg.cfg != nil {
		if err := cfg.cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		if c.location == nil {
			loc, err := cfg.cfg.ResolveLocation()
			if err != nil {
				return nil, err
			}
			c.location = loc
		}
		extraInstant = append(extraInstant, cfg.cfg.Layouts.Instant...)
		extraDate = append(extraDate, cfg.cfg.Layouts.Date...)
		extraDateTime = append(extraDateTime, cfg.cfg.Layouts.DateTime...)
	}
	c.layouts = newLayoutSet(extraInstant, extraDate, extraDateTime)

	if c.clock == nil {
		c.clock = SystemClock()
	}
	if c.location == nil {
		c.location = time.Local
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	metrics, err := initOTelMetrics(cfg.meterProvider)
	if err != nil {
		return nil, err
	}
	c.metrics = metrics

	return c, nil
}

// Location returns the location used for local time.
func (c *Coercer) Location() *time.Location {
	return c.location
}

// ToInstant coerces value to a temporal.Instant. See Coerce.
func (c *Coercer) ToInstant(value any) (any, error) {
	return c.Coerce(value, temporal.KindInstant)
}

// ToDate coerces value to a temporal.Date. See Coerce.
func (c *Coercer) ToDate(value any) (any, error) {
	return c.Coerce(value, temporal.KindDate)
}

// ToDateTime coerces value to a temporal.DateTime. See Coerce.
func (c *Coercer) ToDateTime(value any) (any, error) {
	return c.Coerce(value, temporal.KindDateTime)
}

// Coerce converts value to kind.
//
// It returns the canonical value on success. When the input is malformed
// (unparsable text, or components outside the calendar) it returns value
// unchanged with a nil error, so callers that need strict typing must check
// the dynamic type of the result. A mapping segment that is not numeric is
// reported as an error matching ErrNumericFormat.
func (c *Coercer) Coerce(value any, kind temporal.Kind) (any, error) {
	return c.CoerceContext(context.Background(), value, kind)
}

// CoerceContext is Coerce with a context for tracing and metrics.
func (c *Coercer) CoerceContext(ctx context.Context, value any, kind temporal.Kind) (any, error) {
	ctx, span := c.startSpan(ctx)
	r := c.Resolve(value, kind)
	c.record(ctx, span, r)

	if !r.Parsed() {
		c.logger.DebugContext(ctx, "temporal coercion rejected",
			"kind", kind.String(),
			"shape", r.Shape.String(),
			"reason", string(r.Reason()),
			"outcome", string(r.Outcome()),
			"error", r.Err,
		)
	}
	return r.Settle(value)
}

// Resolve runs dispatch for value and kind and reports the result without
// applying the fallback policy.
func (c *Coercer) Resolve(value any, kind temporal.Kind) Result {
	r := Result{Kind: kind}
	op := "To" + opName(kind)

	if !kind.Valid() {
		r.Err = newRejection(op, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind))
		return r
	}

	if v, ok := native(value, kind, c.location); ok {
		r.Shape = ShapeNative
		r.Value = v
		return r
	}

	var (
		v   any
		err error
	)
	if m, ok := input.AsMapping(value); ok {
		r.Shape = ShapeMapping
		v, err = c.fromMapping(m, kind)
	} else {
		r.Shape = ShapeScalar
		v, err = c.layouts.parse(stringify(value), kind, c.location)
	}
	if err != nil {
		r.Err = newRejection(op, err)
		return r
	}
	r.Value = v
	return r
}

// fromMapping builds kind from the extracted segments. Dates use only the
// first three segments.
func (c *Coercer) fromMapping(m input.Mapping, kind temporal.Kind) (any, error) {
	p, err := Extract(m, c.clock.Now().In(c.location))
	if err != nil {
		return nil, err
	}

	switch kind {
	case temporal.KindInstant:
		return temporal.NewInstant(p[0], p[1], p[2], p[3], p[4], p[5], c.location)
	case temporal.KindDate:
		return temporal.NewDate(p[0], p[1], p[2])
	case temporal.KindDateTime:
		return temporal.NewDateTime(p[0], p[1], p[2], p[3], p[4], p[5])
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

func opName(kind temporal.Kind) string {
	switch kind {
	case temporal.KindInstant:
		return "Instant"
	case temporal.KindDate:
		return "Date"
	case temporal.KindDateTime:
		return "DateTime"
	default:
		return "Kind"
	}
}
