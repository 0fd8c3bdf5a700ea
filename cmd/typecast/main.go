// Command typecast coerces a value into an instant, a date or a datetime.
//
// Usage:
//
//	typecast [--config file] [--location tz] [--log-level lvl] <instant|date|datetime> [value]
//
// A value starting with '{' is decoded as a JSON object of segments
// (year, month, day, hour, min, sec). Any other value is used as text.
// Without a value, the value is read from stdin.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
