package kvstore

import "context"

// Record is one value read from the topology store.
type Record struct {
	Key   string
	Value []byte
}

// Store reads cluster descriptors by key.
//
// Get returns (nil, nil) when the key does not exist; an error means the
// store itself could not be queried.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=kvstore
type Store interface {
	Get(ctx context.Context, key string) (*Record, error)
}
