// Package typecast coerces loosely typed input into canonical temporal values.
//
// Attribute systems that accept decoded JSON or YAML, form fields, config
// strings or already-typed values need one place that turns all of them into
// a strongly typed instant, date or datetime. typecast is that place.
//
// # Dispatch
//
// Every coercion tries three strategies in order:
//
//   - Native: the input converts itself (temporal.InstantConverter,
//     temporal.DateConverter, temporal.DateTimeConverter, time.Time and
//     *timestamppb.Timestamp)
//   - Mapping: the input is a keyed mapping of the segments year, month, day,
//     hour, min and sec (see package input); missing segments take the
//     current time from the coercer's Clock
//   - Scalar: the input is stringified and parsed against an ordered list of
//     layouts for the requested kind
//
// # Fallback
//
// Malformed input is not an error. Unparsable text and out-of-range
// components make the coercer hand back the original value unchanged:
//
//	v, err := typecast.ToDate("not-a-date")
//	// v == "not-a-date", err == nil
//
// Only a mapping segment that is not numeric is reported:
//
//	_, err := typecast.ToDate(map[string]any{"year": "abc"})
//	// errors.Is(err, typecast.ErrNumericFormat) == true
//
// Callers that need strict typing check the dynamic type of the result, or
// use Resolve to inspect the Result directly.
//
// # Getting Started
//
//	c, err := typecast.New(
//	    typecast.WithLocation(time.UTC),
//	    typecast.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := c.ToDateTime(map[string]any{"year": 2024, "month": 3, "day": 15})
//
// # Observability
//
// WithTracer records a span per CoerceContext call and WithMeterProvider
// enables the typecast.coerce.count counter, both tagged with the kind, the
// input shape and the outcome.
package typecast
