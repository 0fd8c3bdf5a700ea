// Package input provides access to loosely typed component mappings.
//
// Decoded JSON, YAML and protobuf Struct data rarely arrives with uniform
// types: a year may be an int, an int64, a float64 or the string "2024".
// This package hides those differences behind two pieces:
//
//   - Mapping: key lookup with a fallback default, implemented for the common
//     map shapes and for *structpb.Struct
//   - Int: strict integer coercion that accepts any numeric Go type or numeric
//     text, and reports ErrNotNumeric for everything else
//
// # Usage
//
//	m, ok := input.AsMapping(map[string]any{"year": "2024", "month": 3.0})
//	if !ok {
//	    // not a mapping
//	}
//	year, err := input.Int(m.Fetch("year", 1970))
//
// # Absent Values
//
// A key that is present with a nil value is treated like a missing key and
// yields the default. This matches how JSON null and YAML ~ are usually meant.
package input
