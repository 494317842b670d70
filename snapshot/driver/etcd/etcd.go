// Package etcd provides an etcd implementation of the snapshot driver
// interface. It enables keeping view state snapshots in a shared etcd
// cluster.
package etcd

import (
	"context"
	"fmt"

	"github.com/tarantool/go-option"
	etcd "go.etcd.io/etcd/client/v3"

	"github.com/httpdeck/go-viewstate/snapshot/driver"
)

// Client defines the minimal slice of the etcd client used by the
// driver. *etcd.Client satisfies it; tests substitute a fake.
type Client interface {
	// Put stores a key-value pair.
	Put(ctx context.Context, key, val string, opts ...etcd.OpOption) (*etcd.PutResponse, error)
	// Get retrieves keys.
	Get(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.GetResponse, error)
	// Delete removes keys.
	Delete(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.DeleteResponse, error)
}

// Driver stores snapshots in etcd, one key per snapshot.
type Driver struct {
	client Client
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// New creates a driver on top of the given etcd client.
func New(client Client) *Driver {
	return &Driver{client: client}
}

// Put stores value under key.
func (d *Driver) Put(ctx context.Context, key string, value []byte) error {
	if _, err := d.client.Put(ctx, key, string(value)); err != nil {
		return fmt.Errorf("etcd put: %w", err)
	}

	return nil
}

// Get returns the value stored under key, or None when absent.
func (d *Driver) Get(ctx context.Context, key string) (option.Generic[[]byte], error) {
	resp, err := d.client.Get(ctx, key)
	if err != nil {
		return option.None[[]byte](), fmt.Errorf("etcd get: %w", err)
	}

	if len(resp.Kvs) == 0 {
		return option.None[[]byte](), nil
	}

	return option.Some(resp.Kvs[0].Value), nil
}

// Delete removes the value stored under key.
func (d *Driver) Delete(ctx context.Context, key string) error {
	if _, err := d.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("etcd delete: %w", err)
	}

	return nil
}

// Keys lists the stored keys beginning with prefix, sorted. The prefix
// must be non-empty.
func (d *Driver) Keys(ctx context.Context, prefix string) ([]string, error) {
	resp, err := d.client.Get(ctx, prefix,
		etcd.WithPrefix(),
		etcd.WithKeysOnly(),
		etcd.WithSort(etcd.SortByKey, etcd.SortAscend),
	)
	if err != nil {
		return nil, fmt.Errorf("etcd get range: %w", err)
	}

	keys := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		keys = append(keys, string(kv.Key))
	}

	return keys, nil
}
