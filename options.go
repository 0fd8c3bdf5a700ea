package typecast

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/typecast/config"
	"github.com/zero-day-ai/typecast/temporal"
)

// Option configures a Coercer.
type Option func(*coercerConfig)

// coercerConfig holds configuration for a Coercer instance.
type coercerConfig struct {
	clock         Clock
	location      *time.Location
	cfg           *config.Config
	layouts       map[temporal.Kind][]string
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
}

// WithClock sets the time source used for defaulted mapping segments.
// If not provided, the system clock is used.
func WithClock(clock Clock) Option {
	return func(c *coercerConfig) {
		c.clock = clock
	}
}

// WithLocation sets the location for zone-less text, mapping-built instants
// and defaulted segments. It overrides the location from WithConfig.
// If not provided, time.Local is used.
//
// Values that convert themselves keep their own location: a temporal.Date
// or temporal.DateTime passed to ToInstant becomes an instant in time.Local,
// and a time.Time keeps its zone.
func WithLocation(loc *time.Location) Option {
	return func(c *coercerConfig) {
		c.location = loc
	}
}

// WithConfig applies a loaded configuration: its location and extra layouts.
func WithConfig(cfg *config.Config) Option {
	return func(c *coercerConfig) {
		c.cfg = cfg
	}
}

// WithLayouts prepends extra Go reference-time layouts for kind. Layouts added
// here are tried before layouts from WithConfig and before the built-ins.
func WithLayouts(kind temporal.Kind, layouts ...string) Option {
	return func(c *coercerConfig) {
		if c.layouts == nil {
			c.layouts = make(map[temporal.Kind][]string)
		}
		c.layouts[kind] = append(c.layouts[kind], layouts...)
	}
}

// WithLogger sets a custom logger. Rejections are logged at debug level.
// If not provided, log output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *coercerConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Each CoerceContext call records a
// span when a tracer is configured.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *coercerConfig) {
		c.tracer = tracer
	}
}

// WithMeterProvider enables the typecast.coerce.count counter.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *coercerConfig) {
		c.meterProvider = mp
	}
}
