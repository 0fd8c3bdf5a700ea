package typecast

import (
	"time"

	"github.com/zero-day-ai/typecast/input"
)

// Segments lists the recognized mapping keys in positional order.
var Segments = [6]string{"year", "month", "day", "hour", "min", "sec"}

// Extract reads the six segments from m in Segments order. A missing segment
// takes the corresponding field of now. Each value must be numeric; the first
// one that is not produces an error matching ErrNumericFormat.
func Extract(m input.Mapping, now time.Time) ([6]int, error) {
	defaults := [6]int{
		now.Year(),
		int(now.Month()),
		now.Day(),
		now.Hour(),
		now.Minute(),
		now.Second(),
	}

	var parts [6]int
	for i, segment := range Segments {
		n, err := input.Int(m.Fetch(segment, defaults[i]))
		if err != nil {
			return parts, (&Error{
				Op:     "Extract",
				Reason: ReasonNumericFormat,
				Err:    err,
			}).WithContext(map[string]any{"segment": segment})
		}
		parts[i] = n
	}
	return parts, nil
}
