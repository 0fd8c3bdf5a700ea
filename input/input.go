package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

// ErrNotNumeric is returned by Int for values that do not denote a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Mapping is a keyed input that can be queried with a fallback default.
type Mapping interface {
	// Fetch returns the value stored under key, or def when the key is
	// missing or holds nil.
	Fetch(key string, def any) any
}

// Map adapts map[string]any to Mapping.
type Map map[string]any

// Fetch implements Mapping.
func (m Map) Fetch(key string, def any) any {
	if m == nil {
		return def
	}

	val, ok := m[key]
	if !ok || val == nil {
		return def
	}
	return val
}

// StringMap adapts map[string]string to Mapping. Form values and
// environment-style data usually arrive in this shape.
type StringMap map[string]string

// Fetch implements Mapping.
func (m StringMap) Fetch(key string, def any) any {
	val, ok := m[key]
	if !ok {
		return def
	}
	return val
}

// IntMap adapts map[string]int to Mapping.
type IntMap map[string]int

// Fetch implements Mapping.
func (m IntMap) Fetch(key string, def any) any {
	val, ok := m[key]
	if !ok {
		return def
	}
	return val
}

// AnyMap adapts map[any]any to Mapping, the shape produced by some YAML
// decoders. Only string keys are matched.
type AnyMap map[any]any

// Fetch implements Mapping.
func (m AnyMap) Fetch(key string, def any) any {
	val, ok := m[key]
	if !ok || val == nil {
		return def
	}
	return val
}

type structMapping struct {
	s *structpb.Struct
}

// Fetch implements Mapping. Null values count as missing.
func (m structMapping) Fetch(key string, def any) any {
	val, ok := m.s.GetFields()[key]
	if !ok {
		return def
	}
	if _, isNull := val.GetKind().(*structpb.Value_NullValue); isNull {
		return def
	}
	return val.AsInterface()
}

// AsMapping reports whether v is a supported keyed input and returns it as a Mapping.
// Supported shapes are Mapping itself, map[string]any, map[string]string,
// map[string]int, map[any]any and *structpb.Struct.
func AsMapping(v any) (Mapping, bool) {
	switch m := v.(type) {
	case Mapping:
		return m, true
	case map[string]any:
		return Map(m), true
	case map[string]string:
		return StringMap(m), true
	case map[string]int:
		return IntMap(m), true
	case map[any]any:
		return AnyMap(m), true
	case *structpb.Struct:
		if m == nil {
			return nil, false
		}
		return structMapping{s: m}, true
	default:
		return nil, false
	}
}

// Int coerces v to an int.
// Handles every integer kind, float32/float64 (truncated toward zero), json.Number,
// time.Month and numeric text such as "42", " 7 " or "3.0".
// Returns an error wrapping ErrNotNumeric for anything else.
func Int(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("%w: %d overflows int", ErrNotNumeric, n)
		}
		return int(n), nil
	case uint:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d overflows int", ErrNotNumeric, n)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d overflows int", ErrNotNumeric, n)
		}
		return int(n), nil
	case time.Month:
		return int(n), nil
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		return parseInt(string(n))
	case string:
		return parseInt(n)
	case []byte:
		return parseInt(string(n))
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

func parseInt(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if parsed, err := strconv.Atoi(trimmed); err == nil {
		return parsed, nil
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	n, err := floatToInt(f)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return n, nil
}

// floatToInt truncates f. float64(math.MaxInt) rounds up to 2^63, so the
// upper bound is exclusive.
func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, f)
	}
	return int(f), nil
}
