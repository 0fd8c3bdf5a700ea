package typecast

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/zero-day-ai/typecast/config"
	"github.com/zero-day-ai/typecast/input"
	"github.com/zero-day-ai/typecast/temporal"
)

var fixedNow = time.Date(2025, time.June, 15, 13, 45, 30, 0, time.UTC)

func newTestCoercer(t *testing.T, opts ...Option) *Coercer {
	t.Helper()
	opts = append([]Option{WithClock(FixedClock(fixedNow)), WithLocation(time.UTC)}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

// birthday converts itself to a Date only.
type birthday struct{}

func (birthday) ToDate() temporal.Date {
	return temporal.Date{Year: 1990, Month: time.May, Day: 17}
}

// datedRecord is both a Mapping and a DateConverter.
type datedRecord map[string]any

func (r datedRecord) Fetch(key string, def any) any {
	return input.Map(r).Fetch(key, def)
}

func (datedRecord) ToDate() temporal.Date {
	return temporal.Date{Year: 2000, Month: time.January, Day: 1}
}

func TestNativePassThrough(t *testing.T) {
	c := newTestCoercer(t)
	dt := temporal.DateTime{Year: 2024, Month: time.March, Day: 15, Hour: 10, Minute: 30}
	inst := temporal.FromTime(time.Date(2023, 7, 4, 9, 0, 0, 0, time.UTC))
	stdTime := time.Date(2023, 7, 4, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		kind  temporal.Kind
		want  any
	}{
		{name: "datetime to date", input: dt, kind: temporal.KindDate, want: dt.ToDate()},
		{name: "datetime to datetime", input: dt, kind: temporal.KindDateTime, want: dt},
		{name: "date to datetime", input: dt.ToDate(), kind: temporal.KindDateTime, want: dt.ToDate().ToDateTime()},
		{name: "instant to instant", input: inst, kind: temporal.KindInstant, want: inst},
		{name: "instant to date", input: inst, kind: temporal.KindDate, want: temporal.Date{Year: 2023, Month: time.July, Day: 4}},
		{name: "time.Time to date", input: stdTime, kind: temporal.KindDate, want: temporal.Date{Year: 2023, Month: time.July, Day: 4}},
		{name: "*time.Time to instant", input: &stdTime, kind: temporal.KindInstant, want: temporal.FromTime(stdTime)},
		{name: "custom converter", input: birthday{}, kind: temporal.KindDate, want: birthday{}.ToDate()},
		{name: "native wins over mapping", input: datedRecord{"year": 1999}, kind: temporal.KindDate, want: datedRecord{}.ToDate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Resolve(tt.input, tt.kind)
			require.True(t, r.Parsed())
			assert.Equal(t, ShapeNative, r.Shape)

			got, err := c.Coerce(tt.input, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimestampPassThrough(t *testing.T) {
	c := newTestCoercer(t)
	ts := timestamppb.New(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))

	got, err := c.ToDateTime(ts)
	require.NoError(t, err)
	assert.Equal(t, temporal.DateTime{Year: 2024, Month: time.March, Day: 15, Hour: 10, Minute: 30}, got)

	got, err = c.ToInstant(ts)
	require.NoError(t, err)
	require.IsType(t, temporal.Instant{}, got)
	assert.True(t, got.(temporal.Instant).Equal(ts.AsTime()))
}

func TestCustomConverterWithoutKindFallsBack(t *testing.T) {
	c := newTestCoercer(t)

	got, err := c.ToInstant(birthday{})
	require.NoError(t, err)
	assert.Equal(t, birthday{}, got)
}

func TestMappingConstruction(t *testing.T) {
	c := newTestCoercer(t)
	full := map[string]any{"year": 2024, "month": 3, "day": 15, "hour": 10, "min": 30, "sec": 5}

	got, err := c.ToInstant(full)
	require.NoError(t, err)
	assert.Equal(t, temporal.FromTime(time.Date(2024, 3, 15, 10, 30, 5, 0, time.UTC)), got)

	got, err = c.ToDate(full)
	require.NoError(t, err)
	assert.Equal(t, temporal.Date{Year: 2024, Month: time.March, Day: 15}, got)

	got, err = c.ToDateTime(full)
	require.NoError(t, err)
	assert.Equal(t, temporal.DateTime{Year: 2024, Month: time.March, Day: 15, Hour: 10, Minute: 30, Second: 5}, got)
}

func TestMappingShapes(t *testing.T) {
	c := newTestCoercer(t)
	want := temporal.Date{Year: 2020, Month: time.February, Day: 29}

	st, err := structpb.NewStruct(map[string]any{"year": 2020, "month": 2, "day": 29})
	require.NoError(t, err)

	inputs := map[string]any{
		"map[string]any":    map[string]any{"year": 2020, "month": 2, "day": 29},
		"map[string]string": map[string]string{"year": "2020", "month": "02", "day": "29"},
		"map[string]int":    map[string]int{"year": 2020, "month": 2, "day": 29},
		"map[any]any":       map[any]any{"year": 2020, "month": 2, "day": 29},
		"structpb":          st,
		"float segments":    map[string]any{"year": 2020.0, "month": 2.0, "day": 29.0},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, ShapeMapping, Classify(in, temporal.KindDate))

			got, err := c.ToDate(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMappingDefaultsFromClock(t *testing.T) {
	c := newTestCoercer(t)

	got, err := c.ToDateTime(map[string]any{"year": 2020, "min": 5})
	require.NoError(t, err)
	assert.Equal(t, temporal.DateTime{
		Year:   2020,
		Month:  time.June,
		Day:    15,
		Hour:   13,
		Minute: 5,
		Second: 30,
	}, got)

	got, err = c.ToInstant(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, temporal.FromTime(fixedNow), got)
}

func TestMappingDefaultsUseCoercerLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	c, err := New(WithClock(FixedClock(fixedNow)), WithLocation(tokyo))
	require.NoError(t, err)

	// 13:45 UTC is 22:45 in Tokyo
	got, err := c.ToDateTime(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 22, got.(temporal.DateTime).Hour)
}

func TestMappingSamplesClockOncePerCall(t *testing.T) {
	var calls atomic.Int64
	clock := ClockFunc(func() time.Time {
		n := calls.Add(1)
		return fixedNow.Add(time.Duration(n) * time.Second)
	})
	c := newTestCoercer(t, WithClock(clock))

	first, err := c.ToDateTime(map[string]any{"year": 2020})
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load())

	second, err := c.ToDateTime(map[string]any{"year": 2020})
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())

	assert.Equal(t, 31, first.(temporal.DateTime).Second)
	assert.Equal(t, 32, second.(temporal.DateTime).Second)
}

func TestMappingRangeErrorPassesThrough(t *testing.T) {
	c := newTestCoercer(t)

	tests := []struct {
		name  string
		input map[string]any
		kind  temporal.Kind
	}{
		{name: "leap day in common year", input: map[string]any{"year": 2021, "month": 2, "day": 29}, kind: temporal.KindDate},
		{name: "month thirteen", input: map[string]any{"year": 2021, "month": 13, "day": 1}, kind: temporal.KindDateTime},
		{name: "hour 24", input: map[string]any{"year": 2021, "month": 1, "day": 1, "hour": 24}, kind: temporal.KindInstant},
		{name: "instant year beyond time range", input: map[string]any{"year": int64(300000000000), "month": 1, "day": 1}, kind: temporal.KindInstant},
		{name: "instant year before time range", input: map[string]any{"year": int64(-300000000000), "month": 1, "day": 1}, kind: temporal.KindInstant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Resolve(tt.input, tt.kind)
			require.False(t, r.Parsed())
			assert.Equal(t, ReasonRange, r.Reason())
			assert.Equal(t, OutcomePassthrough, r.Outcome())

			got, err := c.Coerce(tt.input, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestLeapDay(t *testing.T) {
	c := newTestCoercer(t)

	got, err := c.ToDate(map[string]any{"year": 2020, "month": 2, "day": 29})
	require.NoError(t, err)
	assert.Equal(t, temporal.Date{Year: 2020, Month: time.February, Day: 29}, got)
}

func TestNumericFormatErrorPropagates(t *testing.T) {
	c := newTestCoercer(t)

	for _, kind := range []temporal.Kind{temporal.KindInstant, temporal.KindDate, temporal.KindDateTime} {
		t.Run(kind.String(), func(t *testing.T) {
			got, err := c.Coerce(map[string]any{"year": "abc"}, kind)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrNumericFormat)
			assert.ErrorIs(t, err, &Error{Reason: ReasonNumericFormat})

			var castErr *Error
			require.ErrorAs(t, err, &castErr)
			assert.Equal(t, "year", castErr.Context["segment"])
		})
	}
}

func TestHugeYearStaysExactForCalendarKinds(t *testing.T) {
	c := newTestCoercer(t)
	m := map[string]any{"year": int64(300000000000), "month": 1, "day": 1}

	got, err := c.ToDate(m)
	require.NoError(t, err)
	assert.Equal(t, temporal.Date{Year: 300000000000, Month: time.January, Day: 1}, got)

	got, err = c.ToDateTime(m)
	require.NoError(t, err)
	assert.Equal(t, "300000000000-01-01T00:00:00", got.(temporal.DateTime).String())
}

func TestIntegerOverflowIsNumericFormat(t *testing.T) {
	c := newTestCoercer(t)

	tests := []struct {
		name string
		year any
		kind temporal.Kind
	}{
		{name: "uint64 max", year: uint64(math.MaxUint64), kind: temporal.KindDateTime},
		{name: "uint64 just above int", year: uint64(math.MaxInt) + 1, kind: temporal.KindDate},
		{name: "float 2^63", year: float64(1 << 63), kind: temporal.KindDate},
		{name: "float below min int", year: -float64(1 << 64), kind: temporal.KindInstant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Coerce(map[string]any{"year": tt.year, "month": 1, "day": 1}, tt.kind)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrNumericFormat)
		})
	}
}

func TestNumericFormatErrorOnDiscardedSegment(t *testing.T) {
	c := newTestCoercer(t)

	// hour is extracted even though a Date does not use it
	_, err := c.ToDate(map[string]any{"year": 2020, "month": 1, "day": 1, "hour": "noon"})
	assert.ErrorIs(t, err, ErrNumericFormat)
}

func TestTextualParsing(t *testing.T) {
	c := newTestCoercer(t)

	tests := []struct {
		name  string
		input any
		kind  temporal.Kind
		want  any
	}{
		{
			name:  "iso date",
			input: "2024-03-15",
			kind:  temporal.KindDate,
			want:  temporal.Date{Year: 2024, Month: time.March, Day: 15},
		},
		{
			name:  "date from timestamp text",
			input: "2024-03-15T10:30:00",
			kind:  temporal.KindDate,
			want:  temporal.Date{Year: 2024, Month: time.March, Day: 15},
		},
		{
			name:  "long date",
			input: "March 15, 2024",
			kind:  temporal.KindDate,
			want:  temporal.Date{Year: 2024, Month: time.March, Day: 15},
		},
		{
			name:  "compact date",
			input: "20240315",
			kind:  temporal.KindDate,
			want:  temporal.Date{Year: 2024, Month: time.March, Day: 15},
		},
		{
			name:  "iso datetime",
			input: "2024-03-15T10:30:00",
			kind:  temporal.KindDateTime,
			want:  temporal.DateTime{Year: 2024, Month: time.March, Day: 15, Hour: 10, Minute: 30},
		},
		{
			name:  "datetime keeps written wall clock",
			input: "2024-03-15T10:30:00+05:00",
			kind:  temporal.KindDateTime,
			want:  temporal.DateTime{Year: 2024, Month: time.March, Day: 15, Hour: 10, Minute: 30},
		},
		{
			name:  "datetime from date text",
			input: "2024-03-15",
			kind:  temporal.KindDateTime,
			want:  temporal.DateTime{Year: 2024, Month: time.March, Day: 15},
		},
		{
			name:  "local instant",
			input: "2023-07-04 09:00:00",
			kind:  temporal.KindInstant,
			want:  temporal.FromTime(time.Date(2023, 7, 4, 9, 0, 0, 0, time.UTC)),
		},
		{
			name:  "padded text",
			input: "  2024-03-15  ",
			kind:  temporal.KindDate,
			want:  temporal.Date{Year: 2024, Month: time.March, Day: 15},
		},
		{
			name:  "stringer is stringified",
			input: stringer("2024-03-15"),
			kind:  temporal.KindDate,
			want:  temporal.Date{Year: 2024, Month: time.March, Day: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Coerce(tt.input, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type stringer string

func (s stringer) String() string {
	return string(s)
}

func TestInstantWithOffsetKeepsInstant(t *testing.T) {
	c := newTestCoercer(t)

	got, err := c.ToInstant("2024-03-15T10:30:00+05:00")
	require.NoError(t, err)
	require.IsType(t, temporal.Instant{}, got)
	assert.True(t, got.(temporal.Instant).Equal(time.Date(2024, 3, 15, 5, 30, 0, 0, time.UTC)))
}

func TestUnparsableInputPassesThrough(t *testing.T) {
	c := newTestCoercer(t)

	inputs := []any{"not-a-date", 42, "", "2024-02-30", true, 3.5, nil}
	for _, in := range inputs {
		for _, kind := range []temporal.Kind{temporal.KindInstant, temporal.KindDate, temporal.KindDateTime} {
			got, err := c.Coerce(in, kind)
			require.NoError(t, err, "input %#v kind %s", in, kind)
			assert.Equal(t, in, got, "input %#v kind %s", in, kind)
		}
	}
}

func TestUnsupportedKind(t *testing.T) {
	c := newTestCoercer(t)

	_, err := c.Coerce("2024-03-15", temporal.Kind(0))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestWithLayouts(t *testing.T) {
	c := newTestCoercer(t, WithLayouts(temporal.KindDate, "02.01.2006"))

	got, err := c.ToDate("15.03.2024")
	require.NoError(t, err)
	assert.Equal(t, temporal.Date{Year: 2024, Month: time.March, Day: 15}, got)

	// other kinds do not see the extra layout
	got, err = c.ToDateTime("15.03.2024")
	require.NoError(t, err)
	assert.Equal(t, "15.03.2024", got)
}

func TestWithConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("location: Asia/Tokyo\nlayouts:\n  instant:\n    - \"02.01.2006 15:04\"\n"))
	require.NoError(t, err)

	c, err := New(WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", c.Location().String())

	got, err := c.ToInstant("15.03.2024 10:30")
	require.NoError(t, err)
	require.IsType(t, temporal.Instant{}, got)
	assert.Equal(t, "2024-03-15 10:30:00 +0900", got.(temporal.Instant).String())
}

func TestWithConfigInvalid(t *testing.T) {
	_, err := New(WithConfig(&config.Config{Location: "Nowhere/Special"}))
	assert.Error(t, err)
}

func TestWithLocationOverridesConfig(t *testing.T) {
	c, err := New(WithConfig(&config.Config{Location: "Asia/Tokyo"}), WithLocation(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, c.Location())
}

func TestRejectionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newTestCoercer(t, WithLogger(logger))

	_, err := c.ToDate("not-a-date")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "temporal coercion rejected")
	assert.Contains(t, out, "reason=format")
	assert.Contains(t, out, "outcome=passthrough")
}

func TestConcurrentUse(t *testing.T) {
	c := newTestCoercer(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			got, err := c.ToDate(map[string]any{"year": 2024, "month": 1, "day": day})
			assert.NoError(t, err)
			assert.Equal(t, temporal.Date{Year: 2024, Month: time.January, Day: day}, got)
		}(i + 1)
	}
	wg.Wait()
}

func TestSelfConvertingValuesIgnoreCoercerLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	c := newTestCoercer(t, WithLocation(tokyo))

	got, err := c.ToInstant(temporal.Date{Year: 2024, Month: time.March, Day: 15})
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.(temporal.Instant).Location())

	at := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	got, err = c.ToInstant(at)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.(temporal.Instant).Location())
}
