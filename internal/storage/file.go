package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// FileStore persists values as one JSON file per key under a root
// directory. A read-through cache keeps hot keys in memory; the
// filesystem is the source of truth.
type FileStore struct {
	root  string
	mu    sync.RWMutex
	cache map[string][]byte
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
	}
	return &FileStore{
		root:  dir,
		cache: make(map[string][]byte),
	}, nil
}

// Set serializes value under key and writes it to disk.
func (s *FileStore) Set(key string, value any) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize %q: %w", key, err)
	}
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

// Get deserializes the value stored under key into out, reading from
// disk on a cache miss.
func (s *FileStore) Get(key string, out any) error {
	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		path, err := s.keyPath(key)
		if err != nil {
			return err
		}
		data, err = os.ReadFile(path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		if err != nil {
			return fmt.Errorf("read %q: %w", key, err)
		}
		s.mu.Lock()
		s.cache[key] = data
		s.mu.Unlock()
	}

	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("deserialize %q: %w", key, err)
	}
	return nil
}

// Delete removes key from disk and cache.
func (s *FileStore) Delete(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
	return nil
}

// Has reports whether key exists.
func (s *FileStore) Has(key string) bool {
	s.mu.RLock()
	_, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return true
	}
	path, err := s.keyPath(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Keys lists all keys present on disk.
func (s *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list storage dir: %w", err)
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

// keyPath maps a key to its file, rejecting keys that would escape the
// storage root.
func (s *FileStore) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.root, key+".json"), nil
}
