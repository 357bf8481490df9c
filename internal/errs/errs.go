// Package errs defines the error kinds surfaced by the opset registries.
// Callers match them with errors.Is; messages carry the failing slot and
// side where applicable.
package errs

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument reports a malformed declaration, such as a
	// variadic parameter that is not the final slot, or a result buffer
	// that is too small for an accessor-style query.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSchemaMismatch reports a kernel variant that disagrees with the
	// schema already synthesized for its operator name.
	ErrSchemaMismatch = errors.New("custom op schemas mismatch")

	// ErrVersionUnsupported reports a plugin that declares a newer API
	// version than the engine supports. It is fatal to constructing that
	// kernel instance only.
	ErrVersionUnsupported = errors.New("unsupported custom op API version")
)

// Ordinal formats a 1-based position as "1st", "2nd", "3rd", "4th", ...
// including the "11th"/"12th"/"13th" exceptions.
func Ordinal(n int) string {
	s := strconv.Itoa(n)
	if rem := n % 100; rem >= 11 && rem <= 13 {
		return s + "th"
	}
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	default:
		return s + "th"
	}
}
