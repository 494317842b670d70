// Package memory provides a base in-memory implementation of the
// snapshot driver interface for demonstration and tests.
package memory

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tarantool/go-option"

	"github.com/httpdeck/go-viewstate/snapshot/driver"
)

// Driver is a thread-safe in-memory snapshot store.
type Driver struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// New creates an empty in-memory driver.
func New() *Driver {
	return &Driver{
		mu:      sync.RWMutex{},
		entries: make(map[string][]byte),
	}
}

// Put stores a copy of value under key.
func (d *Driver) Put(_ context.Context, key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[key] = bytes.Clone(value)

	return nil
}

// Get returns a copy of the value stored under key, or None when absent.
func (d *Driver) Get(_ context.Context, key string) (option.Generic[[]byte], error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	value, ok := d.entries[key]
	if !ok {
		return option.None[[]byte](), nil
	}

	return option.Some(bytes.Clone(value)), nil
}

// Delete removes the value stored under key.
func (d *Driver) Delete(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, key)

	return nil
}

// Keys lists the stored keys beginning with prefix, sorted.
func (d *Driver) Keys(_ context.Context, prefix string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := make([]string, 0, len(d.entries))

	for key := range d.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys, nil
}
