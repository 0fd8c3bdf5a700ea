package temporal

import (
	"fmt"
	"time"
)

// DateTime is a calendar date combined with a wall-clock time of day.
// It carries no location and is not limited to the range of time.Time.
type DateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// NewDateTime validates the components and returns the DateTime they describe.
func NewDateTime(year, month, day, hour, minute, second int) (DateTime, error) {
	if err := checkDate(year, month, day); err != nil {
		return DateTime{}, err
	}
	if err := checkClock(hour, minute, second); err != nil {
		return DateTime{}, err
	}
	return DateTime{
		Year:   year,
		Month:  time.Month(month),
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}, nil
}

// DateTimeOf returns the wall-clock fields of t in t's location.
func DateTimeOf(t time.Time) DateTime {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return DateTime{Year: y, Month: m, Day: d, Hour: h, Minute: mi, Second: s}
}

// ToDate drops the time of day.
func (dt DateTime) ToDate() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// ToDateTime returns dt.
func (dt DateTime) ToDateTime() DateTime {
	return dt
}

// ToInstant interprets dt in the host's local time zone.
func (dt DateTime) ToInstant() Instant {
	return dt.In(time.Local)
}

// In interprets dt as wall-clock time in loc.
func (dt DateTime) In(loc *time.Location) Instant {
	return Instant{time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, loc)}
}

// String formats dt as YYYY-MM-DDTHH:MM:SS.
func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d", dt.ToDate(), dt.Hour, dt.Minute, dt.Second)
}
