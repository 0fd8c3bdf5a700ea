package temporal

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// InstantLayout is the layout used by Instant.String.
const InstantLayout = "2006-01-02 15:04:05 -0700"

// Instant is a point in time bound to a location.
type Instant struct {
	time.Time
}

// NewInstant validates the components and returns the instant they describe in loc.
// A nil loc means time.Local. Years that time.Time cannot hold are range errors.
func NewInstant(year, month, day, hour, minute, second int, loc *time.Location) (Instant, error) {
	if err := checkDate(year, month, day); err != nil {
		return Instant{}, err
	}
	if err := checkClock(hour, minute, second); err != nil {
		return Instant{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Instant{}, &RangeError{Field: "year", Value: year}
	}
	return Instant{t}, nil
}

// FromTime wraps t.
func FromTime(t time.Time) Instant {
	return Instant{t}
}

// FromTimestamp converts a protobuf timestamp to an Instant in loc.
// A nil loc means time.Local.
func FromTimestamp(ts *timestamppb.Timestamp, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}
	return Instant{ts.AsTime().In(loc)}
}

// Timestamp converts i to a protobuf timestamp.
func (i Instant) Timestamp() *timestamppb.Timestamp {
	return timestamppb.New(i.Time)
}

// ToInstant returns i.
func (i Instant) ToInstant() Instant {
	return i
}

// ToDate returns the calendar date of i in its location.
func (i Instant) ToDate() Date {
	return DateOf(i.Time)
}

// ToDateTime returns the wall-clock fields of i in its location.
func (i Instant) ToDateTime() DateTime {
	return DateTimeOf(i.Time)
}

// String formats i using InstantLayout.
func (i Instant) String() string {
	return i.Format(InstantLayout)
}
