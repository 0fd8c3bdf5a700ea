package temporal

import (
	"fmt"
	"strings"
)

// Kind identifies one of the canonical temporal types.
type Kind int

const (
	// KindInstant selects Instant.
	KindInstant Kind = iota + 1

	// KindDate selects Date.
	KindDate

	// KindDateTime selects DateTime.
	KindDateTime
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindInstant && k <= KindDateTime
}

// ParseKind resolves a kind name. "time" is accepted as an alias for instant.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "instant", "time":
		return KindInstant, nil
	case "date":
		return KindDate, nil
	case "datetime", "date_time", "date-time":
		return KindDateTime, nil
	default:
		return 0, fmt.Errorf("unknown temporal kind %q", name)
	}
}
