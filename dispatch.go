package typecast

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/zero-day-ai/typecast/input"
	"github.com/zero-day-ai/typecast/temporal"
)

// native returns v's own conversion to kind, if it has one.
//
// time.Time and *timestamppb.Timestamp are lifted to temporal.Instant first so
// they convert to every kind. Canonical values already implement all three
// converter interfaces.
func native(v any, kind temporal.Kind, loc *time.Location) (any, bool) {
	switch t := v.(type) {
	case time.Time:
		v = temporal.FromTime(t)
	case *time.Time:
		if t != nil {
			v = temporal.FromTime(*t)
		}
	case *timestamppb.Timestamp:
		if t != nil {
			v = temporal.FromTimestamp(t, loc)
		}
	}

	switch kind {
	case temporal.KindInstant:
		if c, ok := v.(temporal.InstantConverter); ok {
			return c.ToInstant(), true
		}
	case temporal.KindDate:
		if c, ok := v.(temporal.DateConverter); ok {
			return c.ToDate(), true
		}
	case temporal.KindDateTime:
		if c, ok := v.(temporal.DateTimeConverter); ok {
			return c.ToDateTime(), true
		}
	}
	return nil, false
}

// Classify reports which strategy the coercer uses for v when asked for kind.
// Native conversion takes precedence over mapping construction.
func Classify(v any, kind temporal.Kind) Shape {
	if _, ok := native(v, kind, time.UTC); ok {
		return ShapeNative
	}
	if _, ok := input.AsMapping(v); ok {
		return ShapeMapping
	}
	return ShapeScalar
}
