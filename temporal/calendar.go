package temporal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrOutOfRange is matched by every RangeError.
var ErrOutOfRange = errors.New("temporal component out of range")

// RangeError reports a component that does not fit the calendar or the clock.
type RangeError struct {
	// Field is the component name: year, month, day, hour, min or sec.
	Field string

	// Value is the rejected component value.
	Value int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("temporal: %s %d out of range", e.Field, e.Value)
}

// Unwrap returns ErrOutOfRange so errors.Is can match any RangeError.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month of year.
// It returns 0 for a month outside 1..12.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func checkDate(year, month, day int) error {
	if month < 1 || month > 12 {
		return &RangeError{Field: "month", Value: month}
	}
	if day < 1 || day > DaysIn(year, time.Month(month)) {
		return &RangeError{Field: "day", Value: day}
	}
	return nil
}

func checkClock(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return &RangeError{Field: "hour", Value: hour}
	}
	if minute < 0 || minute > 59 {
		return &RangeError{Field: "min", Value: minute}
	}
	if second < 0 || second > 59 {
		return &RangeError{Field: "sec", Value: second}
	}
	return nil
}

// formatYear pads the magnitude to four digits and keeps the sign in front.
func formatYear(year int) string {
	digits := strconv.Itoa(year)
	sign := ""
	if year < 0 {
		sign, digits = "-", digits[1:]
	}
	if len(digits) < 4 {
		digits = strings.Repeat("0", 4-len(digits)) + digits
	}
	return sign + digits
}
