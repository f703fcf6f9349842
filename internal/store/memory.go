package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryKV is a map-backed KV for tests and throwaway sessions.
// FailWrites, when set, is consulted before every write; a non-nil return
// rejects the write and leaves the stored value untouched.
type MemoryKV struct {
	mu         sync.RWMutex
	data       map[string][]byte
	FailWrites func(key string) error
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Read returns a copy of the value stored at key.
func (m *MemoryKV) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(data), true, nil
}

// Write replaces the value at key.
func (m *MemoryKV) Write(ctx context.Context, key string, data []byte) error {
	return m.WriteBatch(ctx, map[string][]byte{key: data})
}

// WriteBatch replaces every entry, or none if any write is rejected.
func (m *MemoryKV) WriteBatch(ctx context.Context, entries map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		for key := range entries {
			if err := m.FailWrites(key); err != nil {
				return err
			}
		}
	}
	for key, data := range entries {
		m.data[key] = slices.Clone(data)
	}
	return nil
}

// Set stores raw bytes without going through a collection. Tests use it to plant malformed payloads.
func (m *MemoryKV) Set(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = slices.Clone(data)
}

// Snapshot returns a copy of every stored value.
func (m *MemoryKV) Snapshot() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]byte, len(m.data))
	for k, v := range maps.All(m.data) {
		out[k] = slices.Clone(v)
	}
	return out
}

// Close is a no-op.
func (m *MemoryKV) Close() error { return nil }

// onlyKV hides optional interfaces such as BatchWriter.
type onlyKV struct{ KV }

// WithoutBatch wraps kv so that it no longer advertises BatchWriter.
// Store then falls back to one write per collection.
func WithoutBatch(kv KV) KV {
	return onlyKV{kv}
}
