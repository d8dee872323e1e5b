package channelpool

import (
	"errors"

	"github.com/Aleph-Alpha/rabbit-pool/v1/topology"
)

// Precondition errors. Build returns them before any node is contacted.
var (
	// ErrInvalidStoreKey is returned for an empty topology store key.
	ErrInvalidStoreKey = errors.New("invalid topology store key")

	// ErrInvalidSuffix is returned for an empty instance suffix.
	ErrInvalidSuffix = topology.ErrInvalidSuffix

	// ErrRecordNotFound is returned when the store holds no record for the key.
	ErrRecordNotFound = errors.New("no record found")

	// ErrHostID is returned when the host identifier cannot be determined.
	ErrHostID = errors.New("host identifier unavailable")

	// ErrStoreUnavailable wraps a transport failure of the topology store.
	ErrStoreUnavailable = errors.New("topology store unavailable")

	// ErrDiscoveryFailed wraps a transport failure of node discovery.
	ErrDiscoveryFailed = errors.New("node discovery failed")
)
