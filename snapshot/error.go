package snapshot

import "errors"

// ErrInvalidName is returned when a snapshot name is empty or would
// escape the store's key prefix.
var ErrInvalidName = errors.New("invalid snapshot name")
