// Package storage provides key-value persistence for authored content.
// It is the backend analog of the browser's localStorage: values are
// JSON documents addressed by string keys.
package storage

import (
	stderrors "errors"
)

// ErrKeyNotFound indicates a lookup for an absent key.
var ErrKeyNotFound = stderrors.New("key not found")

// Store is the persistence surface consumed by the editor service.
type Store interface {
	// Set serializes value under key, overwriting any previous value.
	Set(key string, value any) error
	// Get deserializes the value stored under key into out. Missing
	// keys fail with ErrKeyNotFound.
	Get(key string, out any) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
	// Has reports whether key exists.
	Has(key string) bool
	// Keys returns all stored keys in unspecified order.
	Keys() ([]string, error)
}
