package kvstore

import "errors"

var (
	// ErrUnknownBackend is returned by New for an unsupported Config.Backend.
	ErrUnknownBackend = errors.New("kvstore: unknown backend")

	// ErrNoAgent is returned when the Consul agent selector yields nothing.
	ErrNoAgent = errors.New("kvstore: no consul agent available")
)
