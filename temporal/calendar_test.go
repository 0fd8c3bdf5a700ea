package temporal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2020, true},
		{2021, false},
		{1900, false},
		{2000, true},
		{0, true},
		{-4, true},
		{-100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 30, DaysIn(2023, time.April))
	assert.Equal(t, 31, DaysIn(2023, time.December))
	assert.Equal(t, 0, DaysIn(2023, time.Month(13)))
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name       string
		parts      [3]int
		want       Date
		wantField  string
		wantFailed bool
	}{
		{
			name:  "leap day",
			parts: [3]int{2020, 2, 29},
			want:  Date{Year: 2020, Month: time.February, Day: 29},
		},
		{
			name:       "leap day in common year",
			parts:      [3]int{2021, 2, 29},
			wantFailed: true,
			wantField:  "day",
		},
		{
			name:       "month thirteen",
			parts:      [3]int{2021, 13, 1},
			wantFailed: true,
			wantField:  "month",
		},
		{
			name:       "day zero",
			parts:      [3]int{2021, 1, 0},
			wantFailed: true,
			wantField:  "day",
		},
		{
			name:  "far future year",
			parts: [3]int{12345, 6, 1},
			want:  Date{Year: 12345, Month: time.June, Day: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDate(tt.parts[0], tt.parts[1], tt.parts[2])
			if !tt.wantFailed {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))

			var rangeErr *RangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.wantField, rangeErr.Field)
		})
	}
}

func TestNewDateTimeClockRange(t *testing.T) {
	_, err := NewDateTime(2024, 1, 1, 24, 0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewDateTime(2024, 1, 1, 0, 60, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewDateTime(2024, 1, 1, 0, 0, 60)
	assert.ErrorIs(t, err, ErrOutOfRange)

	dt, err := NewDateTime(2024, 1, 1, 23, 59, 59)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T23:59:59", dt.String())
}

func TestRangeErrorMessage(t *testing.T) {
	err := &RangeError{Field: "month", Value: 13}
	assert.Equal(t, "temporal: month 13 out of range", err.Error())
}
