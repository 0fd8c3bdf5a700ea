package typecast

import (
	"sync/atomic"

	"github.com/zero-day-ai/typecast/temporal"
)

var defaultCoercer atomic.Pointer[Coercer]

func init() {
	c, err := New()
	if err != nil {
		panic(err)
	}
	defaultCoercer.Store(c)
}

// Default returns the package-level Coercer used by ToInstant, ToDate,
// ToDateTime and Coerce. It uses the system clock and time.Local.
func Default() *Coercer {
	return defaultCoercer.Load()
}

// SetDefault replaces the package-level Coercer. A nil c is ignored.
func SetDefault(c *Coercer) {
	if c != nil {
		defaultCoercer.Store(c)
	}
}

// ToInstant coerces value with the default Coercer.
func ToInstant(value any) (any, error) {
	return Default().ToInstant(value)
}

// ToDate coerces value with the default Coercer.
func ToDate(value any) (any, error) {
	return Default().ToDate(value)
}

// ToDateTime coerces value with the default Coercer.
func ToDateTime(value any) (any, error) {
	return Default().ToDateTime(value)
}

// Coerce coerces value to kind with the default Coercer.
func Coerce(value any, kind temporal.Kind) (any, error) {
	return Default().Coerce(value, kind)
}
