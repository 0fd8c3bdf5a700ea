package typecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/zero-day-ai/typecast/temporal"
)

// InstantLayouts are the built-in layouts for instants and datetimes, tried in order.
var InstantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RubyDate,
	time.UnixDate,
	time.ANSIC,
}

// DateLayouts are the built-in layouts for dates, tried in order.
var DateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"20060102",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon, 02 Jan 2006",
}

// layoutSet holds the ordered layouts for each kind.
type layoutSet struct {
	instant  []string
	date     []string
	datetime []string
}

// newLayoutSet prepends the extra layouts to the built-in ones. Dates fall
// back to the instant layouts, and instants fall back to the date layouts.
func newLayoutSet(extraInstant, extraDate, extraDateTime []string) layoutSet {
	return layoutSet{
		instant:  concat(extraInstant, InstantLayouts, DateLayouts),
		date:     concat(extraDate, DateLayouts, InstantLayouts),
		datetime: concat(extraDateTime, InstantLayouts, DateLayouts),
	}
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// parseTime tries each layout in order. Text without a zone is read in loc.
func parseTime(text string, layouts []string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty text", ErrFormat)
	}

	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.ParseInLocation(layout, trimmed, loc)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("%w %q: %w", ErrFormat, trimmed, lastErr)
}

func (l layoutSet) parse(text string, kind temporal.Kind, loc *time.Location) (any, error) {
	switch kind {
	case temporal.KindInstant:
		t, err := parseTime(text, l.instant, loc)
		if err != nil {
			return nil, err
		}
		return temporal.FromTime(t), nil
	case temporal.KindDate:
		t, err := parseTime(text, l.date, loc)
		if err != nil {
			return nil, err
		}
		return temporal.DateOf(t), nil
	case temporal.KindDateTime:
		t, err := parseTime(text, l.datetime, loc)
		if err != nil {
			return nil, err
		}
		return temporal.DateTimeOf(t), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// stringify renders v the way fmt prints it, which honours fmt.Stringer.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
