// Package tarantool provides a Tarantool implementation of the snapshot
// driver interface. Snapshots live in a dedicated space as [key, value]
// tuples keyed by the primary index.
package tarantool

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tarantool/go-option"
	"github.com/tarantool/go-tarantool/v2"

	"github.com/httpdeck/go-viewstate/snapshot/driver"
)

// DefaultSpace is the space snapshots are stored in unless overridden
// with [NewWithSpace].
const DefaultSpace = "view_snapshots"

// Driver stores snapshots in a Tarantool space.
type Driver struct {
	conn  tarantool.Doer // Tarantool connection or pool adapter.
	space string
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// New creates a driver that issues requests through the given
// connection. tarantool.Connection and pool.ConnectionAdapter implement
// Doer.
func New(conn tarantool.Doer) *Driver {
	return NewWithSpace(conn, DefaultSpace)
}

// NewWithSpace is [New] with a custom space name.
func NewWithSpace(conn tarantool.Doer, space string) *Driver {
	return &Driver{conn: conn, space: space}
}

// snapshotTuple is the [key, value] tuple layout of the snapshot space.
type snapshotTuple struct {
	_msgpack struct{} `msgpack:",as_array"` //nolint:unused

	Key   string
	Value []byte
}

// Put stores value under key.
func (d *Driver) Put(ctx context.Context, key string, value []byte) error {
	req := tarantool.NewReplaceRequest(d.space).
		Tuple([]any{key, value}).
		Context(ctx)

	if _, err := d.conn.Do(req).Get(); err != nil {
		return fmt.Errorf("tarantool replace: %w", err)
	}

	return nil
}

// Get returns the value stored under key, or None when absent.
func (d *Driver) Get(ctx context.Context, key string) (option.Generic[[]byte], error) {
	req := tarantool.NewSelectRequest(d.space).
		Key([]any{key}).
		Limit(1).
		Iterator(tarantool.IterEq).
		Context(ctx)

	var tuples []snapshotTuple
	if err := d.conn.Do(req).GetTyped(&tuples); err != nil {
		return option.None[[]byte](), fmt.Errorf("tarantool select: %w", err)
	}

	if len(tuples) == 0 {
		return option.None[[]byte](), nil
	}

	return option.Some(tuples[0].Value), nil
}

// Delete removes the value stored under key.
func (d *Driver) Delete(ctx context.Context, key string) error {
	req := tarantool.NewDeleteRequest(d.space).
		Key([]any{key}).
		Context(ctx)

	if _, err := d.conn.Do(req).Get(); err != nil {
		return fmt.Errorf("tarantool delete: %w", err)
	}

	return nil
}

// Keys lists the stored keys beginning with prefix, sorted. The space is
// scanned in full; snapshot spaces are expected to stay small.
func (d *Driver) Keys(ctx context.Context, prefix string) ([]string, error) {
	req := tarantool.NewSelectRequest(d.space).
		Key([]any{}).
		Iterator(tarantool.IterAll).
		Context(ctx)

	var tuples []snapshotTuple
	if err := d.conn.Do(req).GetTyped(&tuples); err != nil {
		return nil, fmt.Errorf("tarantool select: %w", err)
	}

	keys := make([]string, 0, len(tuples))

	for _, tuple := range tuples {
		if strings.HasPrefix(tuple.Key, prefix) {
			keys = append(keys, tuple.Key)
		}
	}

	sort.Strings(keys)

	return keys, nil
}
