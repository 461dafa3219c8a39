// Package kv models the persistent key-value store the application consumes
// as an opaque capability: a named slot holding an encoded value. The runtime
// model is a single process writing whole values, so implementations only
// need last-write-wins semantics.
package kv

import "context"

// Store is the persistence port.
type Store interface {
	// Get returns the value stored under key. ok is false when no entry
	// exists; err reports store-level failures only.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the entry under key with value.
	Set(ctx context.Context, key string, value string) error

	// Close releases any underlying resources.
	Close() error
}
