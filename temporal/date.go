package temporal

import (
	"fmt"
	"time"
)

// Date is a calendar date in the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the components and returns the Date they describe.
func NewDate(year, month, day int) (Date, error) {
	if err := checkDate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ToDate returns d.
func (d Date) ToDate() Date {
	return d
}

// ToDateTime returns d at midnight.
func (d Date) ToDateTime() DateTime {
	return DateTime{Year: d.Year, Month: d.Month, Day: d.Day}
}

// ToInstant returns midnight of d in the host's local time zone.
func (d Date) ToInstant() Instant {
	return Instant{time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)}
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year), int(d.Month), d.Day)
}
