package typecast

import (
	"github.com/zero-day-ai/typecast/temporal"
)

// Shape is the input variant selected by dispatch.
type Shape int

const (
	// ShapeScalar is any input that is neither native nor a mapping. It is
	// stringified and parsed.
	ShapeScalar Shape = iota

	// ShapeMapping is a keyed input of component segments.
	ShapeMapping

	// ShapeNative is an input that converts itself to the requested kind.
	ShapeNative
)

// String returns the lowercase name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeNative:
		return "native"
	case ShapeMapping:
		return "mapping"
	default:
		return "scalar"
	}
}

// Outcome summarizes what a coercion returned to its caller.
type Outcome string

const (
	// OutcomeParsed means a canonical value was produced.
	OutcomeParsed Outcome = "parsed"

	// OutcomePassthrough means the original input was returned unchanged.
	OutcomePassthrough Outcome = "passthrough"

	// OutcomeFailed means an error was returned.
	OutcomeFailed Outcome = "failed"
)

// Result is the outcome of resolving one input against one kind.
// A Result is either parsed (Err is nil and Value holds a canonical value)
// or rejected (Err describes why).
type Result struct {
	Kind  temporal.Kind
	Shape Shape
	Value any
	Err   *Error
}

// Parsed reports whether a canonical value was produced.
func (r Result) Parsed() bool {
	return r.Err == nil
}

// Reason returns the rejection reason, or "" when parsed.
func (r Result) Reason() Reason {
	if r.Err == nil {
		return ""
	}
	return r.Err.Reason
}

// Outcome reports what Settle will do with this result.
func (r Result) Outcome() Outcome {
	switch {
	case r.Err == nil:
		return OutcomeParsed
	case r.Err.Reason.Recoverable():
		return OutcomePassthrough
	default:
		return OutcomeFailed
	}
}

// Settle converts r into the caller-facing pair. A parsed result returns its
// value. A format or range rejection returns original unchanged with a nil
// error. Any other rejection returns the error.
func (r Result) Settle(original any) (any, error) {
	switch r.Outcome() {
	case OutcomeParsed:
		return r.Value, nil
	case OutcomePassthrough:
		return original, nil
	default:
		return nil, r.Err
	}
}
