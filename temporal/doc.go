// Package temporal defines the canonical temporal values produced by typecast.
//
// Three kinds exist:
//
//   - Instant: a point in time bound to a location (a thin wrapper around time.Time)
//   - Date: a proleptic Gregorian calendar date with no time of day
//   - DateTime: a calendar date plus a wall-clock time of day, with no location
//
// Every canonical value implements InstantConverter, DateConverter and
// DateTimeConverter, so any of them can be handed back to the coercer and
// will be converted natively rather than rebuilt from parts.
//
// # Construction
//
// The constructors validate their components strictly:
//
//	d, err := temporal.NewDate(2024, time.February, 30)
//	if errors.Is(err, temporal.ErrOutOfRange) {
//	    // day 30 does not exist in February
//	}
//
// Date and DateTime accept any year, including years before 1 and after 9999,
// following the proleptic Gregorian leap-year rule.
package temporal
