package topology

import "errors"

var (
	// ErrMalformedDescriptor is returned when the stored descriptor cannot be
	// decoded or misses a required field.
	ErrMalformedDescriptor = errors.New("malformed cluster descriptor")

	// ErrInvalidSuffix is returned for an empty instance suffix.
	ErrInvalidSuffix = errors.New("invalid instance suffix")

	// ErrUnknownExchange is returned when a required exchange key is not
	// present in the descriptor settings.
	ErrUnknownExchange = errors.New("unknown exchange key")
)
