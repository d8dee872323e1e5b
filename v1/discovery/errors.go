package discovery

import "errors"

var (
	// ErrUnknownBackend is returned by New for an unsupported Config.Backend.
	ErrUnknownBackend = errors.New("discovery: unknown backend")

	// ErrNoAgent is returned when the Consul agent selector yields nothing.
	ErrNoAgent = errors.New("discovery: no consul agent available")
)
