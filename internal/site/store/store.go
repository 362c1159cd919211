// Package store mediates between the domain records and the persistent local
// key-value store. Collections are whole JSON documents under namespaced keys;
// a write replaces the entire document for its key and there are no
// transactions across keys.
package store

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable reports that the backing storage denied the operation
	// (out of space, locked, closed). Callers degrade gracefully: the write
	// simply did not happen.
	ErrUnavailable = errors.New("store: storage unavailable")
)

// KV is the persistent key-value backend, the localStorage of this
// implementation. Concrete drivers (sqlite) implement it.
type KV interface {
	// Get returns the document stored under key, reporting whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set replaces the document stored under key.
	Set(ctx context.Context, key string, doc string) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}
