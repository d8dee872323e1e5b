package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store, used by tests and local runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns a store preloaded with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	m := &MemoryStore{data: make(map[string][]byte, len(values))}
	for k, v := range values {
		m.data[k] = []byte(v)
	}
	return m
}

func (m *MemoryStore) Get(ctx context.Context, key string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return &Record{Key: key, Value: append([]byte(nil), v...)}, nil
}

// Put stores value under key.
func (m *MemoryStore) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}
