// Package snapshot persists encoded view states by name through a
// pluggable storage driver, so a browser session can be restored across
// launches.
//
// See the [github.com/httpdeck/go-viewstate/snapshot/driver] package for
// the available backends.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tarantool/go-option"

	viewstate "github.com/httpdeck/go-viewstate"
	"github.com/httpdeck/go-viewstate/internal/options"
	"github.com/httpdeck/go-viewstate/marshaller"
	"github.com/httpdeck/go-viewstate/snapshot/driver"
)

// Snapshot is a named view state restored from storage.
type Snapshot struct {
	Name    string
	SavedAt time.Time
	State   viewstate.State
}

// record is the stored envelope. The state is kept in its JSON wire
// encoding so stored snapshots stay readable by other consumers of the
// format.
type record struct {
	SavedAt int64  `msgpack:"saved_at"`
	State   []byte `msgpack:"state"`
}

const defaultPrefix = "snapshots/"

type config struct {
	prefix string
	now    func() time.Time
}

// WithPrefix overrides the key prefix snapshots are stored under.
func WithPrefix(prefix string) options.Callback[config] {
	return func(cfg *config) {
		cfg.prefix = prefix
	}
}

// WithClock overrides the clock used for saved-at stamps.
func WithClock(now func() time.Time) options.Callback[config] {
	return func(cfg *config) {
		cfg.now = now
	}
}

// Store saves and restores encoded view states.
type Store struct {
	driver  driver.Driver
	marshal marshaller.TypedMsgpackMarshaller[record]
	prefix  string
	now     func() time.Time
}

// New creates a snapshot store on top of the given driver.
func New(d driver.Driver, opts ...options.Callback[config]) *Store {
	cfg := options.Apply(config{prefix: defaultPrefix, now: time.Now}, opts)

	return &Store{
		driver:  d,
		marshal: marshaller.NewTypedMsgpackMarshaller[record](),
		prefix:  cfg.prefix,
		now:     cfg.now,
	}
}

// Save encodes state and stores it under name, replacing any previous
// snapshot of that name.
func (s *Store) Save(ctx context.Context, name string, state viewstate.State) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	value, err := s.marshal.Marshal(record{SavedAt: s.now().Unix(), State: encoded})
	if err != nil {
		return fmt.Errorf("encode snapshot record: %w", err)
	}

	if err := s.driver.Put(ctx, s.prefix+name, value); err != nil {
		return fmt.Errorf("store snapshot %q: %w", name, err)
	}

	return nil
}

// Load restores the snapshot stored under name, or None when there is
// none.
func (s *Store) Load(ctx context.Context, name string) (option.Generic[Snapshot], error) {
	none := option.None[Snapshot]()

	if !validName(name) {
		return none, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	stored, err := s.driver.Get(ctx, s.prefix+name)
	if err != nil {
		return none, fmt.Errorf("load snapshot %q: %w", name, err)
	}

	if !stored.IsSome() {
		return none, nil
	}

	rec, err := s.marshal.Unmarshal(stored.UnwrapOr(nil))
	if err != nil {
		return none, fmt.Errorf("decode snapshot record %q: %w", name, err)
	}

	var state viewstate.State
	if err := json.Unmarshal(rec.State, &state); err != nil {
		return none, fmt.Errorf("decode snapshot state %q: %w", name, err)
	}

	return option.Some(Snapshot{
		Name:    name,
		SavedAt: time.Unix(rec.SavedAt, 0).UTC(),
		State:   state,
	}), nil
}

// Delete removes the snapshot stored under name, if any.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if err := s.driver.Delete(ctx, s.prefix+name); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}

	return nil
}

// Names lists stored snapshot names, sorted.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	keys, err := s.driver.Keys(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, s.prefix))
	}

	return names, nil
}

// validName rejects empty names and names that would escape the key
// prefix.
func validName(name string) bool {
	switch {
	case len(name) == 0:
		return false
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return false
	default:
		return !strings.Contains(name, "//")
	}
}
