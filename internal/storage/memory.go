package storage

import (
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
)

// MemoryStore is an in-process Store used in tests and for ephemeral
// deployments. Values are kept serialized so Get/Set round-trip the
// same way the file-backed store does.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

// Set serializes value under key.
func (s *MemoryStore) Set(key string, value any) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize %q: %w", key, err)
	}
	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()
	return nil
}

// Get deserializes the value stored under key into out.
func (s *MemoryStore) Get(key string, out any) error {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("deserialize %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// Has reports whether key exists.
func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	_, ok := s.values[key]
	s.mu.RUnlock()
	return ok
}

// Keys returns all stored keys.
func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys, nil
}
