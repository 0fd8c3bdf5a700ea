package temporal

// InstantConverter is implemented by values that know how to produce an Instant.
type InstantConverter interface {
	ToInstant() Instant
}

// DateConverter is implemented by values that know how to produce a Date.
type DateConverter interface {
	ToDate() Date
}

// DateTimeConverter is implemented by values that know how to produce a DateTime.
type DateTimeConverter interface {
	ToDateTime() DateTime
}

var (
	_ InstantConverter  = Instant{}
	_ DateConverter     = Instant{}
	_ DateTimeConverter = Instant{}

	_ InstantConverter  = Date{}
	_ DateConverter     = Date{}
	_ DateTimeConverter = Date{}

	_ InstantConverter  = DateTime{}
	_ DateConverter     = DateTime{}
	_ DateTimeConverter = DateTime{}
)
