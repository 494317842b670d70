// Package driver defines the interface snapshot storage backends
// implement. It provides a common surface for different backends like
// etcd, Tarantool and in-memory storage.
package driver

import (
	"context"

	"github.com/tarantool/go-option"
)

// Driver is the low-level byte store behind a snapshot store. Keys are
// opaque strings chosen by the caller; values are opaque byte slices.
type Driver interface {
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value stored under key, or None when the key is
	// absent.
	Get(ctx context.Context, key string) (option.Generic[[]byte], error)

	// Delete removes the value stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys that begin with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
