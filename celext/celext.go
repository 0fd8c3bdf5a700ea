// Package celext exposes temporal coercion to CEL expressions.
//
// The library adds three functions, each taking a single dynamic argument:
//
//	coerce_instant(value)  // google.protobuf.Timestamp, or value unchanged
//	coerce_date(value)     // "YYYY-MM-DD", or value unchanged
//	coerce_datetime(value) // "YYYY-MM-DDTHH:MM:SS", or value unchanged
//
// Arguments may be strings, timestamps or maps of segments:
//
//	coerce_date({"year": 2020, "month": 2, "day": 29}) == "2020-02-29"
//
// Input that cannot be coerced is returned as given, mirroring the Go API.
// A non-numeric segment produces an evaluation error.
package celext

import (
	"reflect"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"

	"github.com/zero-day-ai/typecast"
	"github.com/zero-day-ai/typecast/temporal"
)

var nativeMapType = reflect.TypeOf(map[string]any{})

// Library returns a CEL environment option registering the coercion functions
// backed by c. A nil c uses typecast.Default at evaluation time.
func Library(c *typecast.Coercer) cel.EnvOption {
	return cel.Lib(&library{coercer: c})
}

type library struct {
	coercer *typecast.Coercer
}

// LibraryName implements the cel.SingletonLibrary interface.
func (*library) LibraryName() string {
	return "typecast.temporal"
}

// CompileOptions implements the cel.Library interface.
func (l *library) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		l.function("coerce_instant", temporal.KindInstant),
		l.function("coerce_date", temporal.KindDate),
		l.function("coerce_datetime", temporal.KindDateTime),
	}
}

// ProgramOptions implements the cel.Library interface.
func (*library) ProgramOptions() []cel.ProgramOption {
	return nil
}

func (l *library) function(name string, kind temporal.Kind) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_dyn",
			[]*cel.Type{cel.DynType},
			cel.DynType,
			cel.UnaryBinding(l.binding(kind)),
		),
	)
}

func (l *library) binding(kind temporal.Kind) func(ref.Val) ref.Val {
	return func(arg ref.Val) ref.Val {
		c := l.coercer
		if c == nil {
			c = typecast.Default()
		}

		out, err := c.Coerce(toNative(arg), kind)
		if err != nil {
			return types.NewErr("%s: %v", kind, err)
		}

		switch v := out.(type) {
		case temporal.Instant:
			return types.Timestamp{Time: v.Time}
		case temporal.Date:
			return types.String(v.String())
		case temporal.DateTime:
			return types.String(v.String())
		default:
			return arg
		}
	}
}

// toNative unwraps a CEL value into the Go shapes the coercer understands.
// Maps become map[string]any; a map that cannot be converted is passed as is
// and will be stringified.
func toNative(arg ref.Val) any {
	switch v := arg.(type) {
	case types.Timestamp:
		return v.Time
	case traits.Mapper:
		m, err := v.ConvertToNative(nativeMapType)
		if err != nil {
			return arg.Value()
		}
		return m
	default:
		return arg.Value()
	}
}
