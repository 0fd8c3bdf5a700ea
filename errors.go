package typecast

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/zero-day-ai/typecast/input"
	"github.com/zero-day-ai/typecast/temporal"
)

// Sentinel errors for coercion failures.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrFormat indicates text that matches none of the layouts for a kind.
	ErrFormat = errors.New("unrecognized temporal format")

	// ErrOutOfRange indicates components that do not form a valid calendar
	// date or time of day. It is the same value as temporal.ErrOutOfRange.
	ErrOutOfRange = temporal.ErrOutOfRange

	// ErrNumericFormat indicates a mapping segment that is not numeric.
	// It is the same value as input.ErrNotNumeric.
	ErrNumericFormat = input.ErrNotNumeric

	// ErrUnsupportedKind indicates a temporal.Kind outside the declared set.
	ErrUnsupportedKind = errors.New("unsupported temporal kind")
)

// Reason categorizes why a coercion was rejected.
type Reason string

const (
	// ReasonFormat represents text that could not be parsed.
	ReasonFormat Reason = "format"

	// ReasonRange represents components outside the calendar or clock range.
	ReasonRange Reason = "range"

	// ReasonNumericFormat represents a non-numeric mapping segment.
	ReasonNumericFormat Reason = "numeric_format"

	// ReasonUnsupported represents a request for an unknown kind.
	ReasonUnsupported Reason = "unsupported"
)

// Recoverable reports whether a rejection with this reason degrades to
// returning the original input. Only format and range failures do.
func (r Reason) Recoverable() bool {
	return r == ReasonFormat || r == ReasonRange
}

// Error is a structured error describing a rejected coercion.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	_, err := typecast.ToDate(map[string]any{"year": "abc"})
//	var castErr *typecast.Error
//	if errors.As(err, &castErr) && castErr.Reason == typecast.ReasonNumericFormat {
//	    // report the offending segment
//	}
type Error struct {
	// Op is the operation that failed (e.g., "ToDate", "Extract").
	Op string

	// Reason categorizes the failure.
	Reason Reason

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional),
	// such as the segment name or the rejected text.
	Context map[string]any
}

// Error renders "typecast: Op (reason): cause", followed by the context
// map when one is attached.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "typecast: %s (%s)", e.Op, e.Reason)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Context) > 0 {
		fmt.Fprintf(&b, " [context: %+v]", e.Context)
	}
	return b.String()
}

// Unwrap exposes the cause, so the package sentinels and *temporal.RangeError
// stay reachable through errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is treats a *Error target as a pattern. A target Reason must equal
// e.Reason, and a target Op, when set, must equal e.Op. An empty pattern
// matches nothing, so errors.Is(err, &Error{}) is false. Any other target
// is left to the Unwrap chain.
func (e *Error) Is(target error) bool {
	pattern, ok := target.(*Error)
	if !ok {
		return false
	}
	if pattern.Reason == "" || pattern.Reason != e.Reason {
		return false
	}
	return pattern.Op == "" || pattern.Op == e.Op
}

// WithContext returns a copy of e carrying ctx merged over the existing
// context. The receiver is not modified.
func (e *Error) WithContext(ctx map[string]any) *Error {
	merged := make(map[string]any, len(e.Context)+len(ctx))
	maps.Copy(merged, e.Context)
	maps.Copy(merged, ctx)

	annotated := *e
	annotated.Context = merged
	return &annotated
}

// newRejection classifies err into an Error. Range errors from temporal and
// non-numeric errors from input keep their reasons; everything else is a
// format failure.
func newRejection(op string, err error) *Error {
	var castErr *Error
	if errors.As(err, &castErr) {
		return castErr
	}

	reason := ReasonFormat
	switch {
	case errors.Is(err, ErrNumericFormat):
		reason = ReasonNumericFormat
	case errors.Is(err, ErrOutOfRange):
		reason = ReasonRange
	case errors.Is(err, ErrUnsupportedKind):
		reason = ReasonUnsupported
	}
	return &Error{Op: op, Reason: reason, Err: err}
}
