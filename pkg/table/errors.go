package table

import "errors"

var (
	// ErrNoHeading is returned by Heading when no heading has been set.
	ErrNoHeading = errors.New("table: heading not set")

	// ErrUnknownAlignment is returned when an alignment name cannot be parsed.
	ErrUnknownAlignment = errors.New("table: unknown alignment")
)
