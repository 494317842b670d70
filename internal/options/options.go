// Package options applies functional option callbacks over a defaults
// value.
package options

// Callback mutates an options value in place.
type Callback[T any] func(*T)

// Apply runs every callback over the given defaults, in order, and
// returns the result.
func Apply[T any](defaults T, cbs []Callback[T]) T {
	for _, cb := range cbs {
		cb(&defaults)
	}

	return defaults
}
