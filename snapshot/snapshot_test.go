package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	viewstate "github.com/httpdeck/go-viewstate"
	"github.com/httpdeck/go-viewstate/model"
	"github.com/httpdeck/go-viewstate/snapshot"
	"github.com/httpdeck/go-viewstate/snapshot/driver/memory"
)

var errDriver = errors.New("driver failure")

// failingDriver fails every operation, to verify error propagation.
type failingDriver struct{}

func (failingDriver) Put(_ context.Context, _ string, _ []byte) error {
	return errDriver
}

func (failingDriver) Get(_ context.Context, _ string) (option.Generic[[]byte], error) {
	return option.None[[]byte](), errDriver
}

func (failingDriver) Delete(_ context.Context, _ string) error {
	return errDriver
}

func (failingDriver) Keys(_ context.Context, _ string) ([]string, error) {
	return nil, errDriver
}

func fixedClock() time.Time {
	return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	store := snapshot.New(memory.New(), snapshot.WithClock(fixedClock))
	state := viewstate.History(option.Some(model.Connection{
		URL:     "https://api.example.com",
		Headers: []string{"Accept: */*"},
	}))

	require.NoError(t, store.Save(context.Background(), "session", state))

	loaded, err := store.Load(context.Background(), "session")
	require.NoError(t, err)
	require.True(t, loaded.IsSome())

	snap := loaded.UnwrapOr(snapshot.Snapshot{})
	assert.Equal(t, "session", snap.Name)
	assert.Equal(t, fixedClock(), snap.SavedAt)
	assert.Equal(t, state, snap.State)
}

func TestStore_Load_Missing(t *testing.T) {
	t.Parallel()

	store := snapshot.New(memory.New())

	loaded, err := store.Load(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, loaded.IsSome())
}

func TestStore_Save_Replaces(t *testing.T) {
	t.Parallel()

	store := snapshot.New(memory.New(), snapshot.WithClock(fixedClock))

	require.NoError(t, store.Save(context.Background(), "session", viewstate.Empty()))
	require.NoError(t, store.Save(context.Background(), "session", viewstate.Editing(viewstate.SubviewBody)))

	loaded, err := store.Load(context.Background(), "session")
	require.NoError(t, err)
	require.True(t, loaded.IsSome())
	assert.Equal(t, viewstate.Editing(viewstate.SubviewBody), loaded.UnwrapOr(snapshot.Snapshot{}).State)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	store := snapshot.New(memory.New())

	require.NoError(t, store.Save(context.Background(), "session", viewstate.Empty()))
	require.NoError(t, store.Delete(context.Background(), "session"))

	loaded, err := store.Load(context.Background(), "session")
	require.NoError(t, err)
	assert.False(t, loaded.IsSome())
}

func TestStore_Names(t *testing.T) {
	t.Parallel()

	store := snapshot.New(memory.New())

	require.NoError(t, store.Save(context.Background(), "beta", viewstate.Empty()))
	require.NoError(t, store.Save(context.Background(), "alpha", viewstate.Empty()))

	names, err := store.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}

func TestStore_WithPrefix(t *testing.T) {
	t.Parallel()

	drv := memory.New()
	store := snapshot.New(drv, snapshot.WithPrefix("sessions/"))

	require.NoError(t, store.Save(context.Background(), "alpha", viewstate.Empty()))

	keys, err := drv.Keys(context.Background(), "sessions/")
	require.NoError(t, err)
	assert.Equal(t, []string{"sessions/alpha"}, keys)
}

func TestStore_InvalidName(t *testing.T) {
	t.Parallel()

	store := snapshot.New(memory.New())

	for _, name := range []string{"", "/leading", "trailing/", "double//slash"} {
		assert.ErrorIs(t, store.Save(context.Background(), name, viewstate.Empty()), snapshot.ErrInvalidName)

		_, err := store.Load(context.Background(), name)
		assert.ErrorIs(t, err, snapshot.ErrInvalidName)

		assert.ErrorIs(t, store.Delete(context.Background(), name), snapshot.ErrInvalidName)
	}
}

func TestStore_DriverErrors(t *testing.T) {
	t.Parallel()

	store := snapshot.New(failingDriver{})

	require.ErrorIs(t, store.Save(context.Background(), "session", viewstate.Empty()), errDriver)

	_, err := store.Load(context.Background(), "session")
	require.ErrorIs(t, err, errDriver)

	require.ErrorIs(t, store.Delete(context.Background(), "session"), errDriver)

	_, err = store.Names(context.Background())
	require.ErrorIs(t, err, errDriver)
}
