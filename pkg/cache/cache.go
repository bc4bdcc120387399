package cache

import "errors"

// ErrInvalidKey is returned when a cache operation is attempted with an
// empty key.
var ErrInvalidKey = errors.New("cache key cannot be empty")

// Cache is a generic key/value cache parameterized by value type V.
type Cache[V any] interface {
	// Get retrieves a value by key. Returns the value and true if found,
	// the zero value and false otherwise.
	Get(key string) (V, bool)

	// Set stores a value under the given key, replacing any existing entry.
	// Returns true if a new entry was created, false if an existing entry
	// was overwritten.
	Set(key string, value V) (bool, error)

	// Delete removes an entry by key. Returns true if the key existed.
	Delete(key string) (bool, error)

	// Clear removes all entries.
	Clear()

	// Size returns the current number of entries.
	Size() int

	// Keys returns all keys currently in the cache.
	Keys() []string

	// Stats returns the cache statistics tracker.
	Stats() *Statistics
}
