package viewstate

import "errors"

var (
	// ErrNoStateKey is returned when a decoded object carries no state
	// key at all.
	ErrNoStateKey = errors.New("no state key present")
	// ErrMultipleStateKeys is returned when a decoded object names more
	// than one state at once.
	ErrMultipleStateKeys = errors.New("multiple state keys present")
	// ErrUnknownStateKey is returned when the sole key of a decoded
	// object is not a declared state.
	ErrUnknownStateKey = errors.New("unknown state key")
	// ErrInvalidSubview is returned when an editing payload is not a
	// declared subview.
	ErrInvalidSubview = errors.New("invalid subview")
)
