package databases

import (
	"context"
	"sync"
)

// KeyValueStore is the local persisted state: opaque blobs under string keys
type KeyValueStore interface {
	// Get returns the blob stored under key. found is false when nothing was stored.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Put replaces the blob stored under key.
	Put(ctx context.Context, key string, value []byte) error
}

// MemoryStore keeps blobs in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get implements KeyValueStore
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put implements KeyValueStore
func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), value...)
	return nil
}
