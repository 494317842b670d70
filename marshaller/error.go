package marshaller

import (
	"fmt"
)

// MarshalError wraps the cause of a failed marshal.
type MarshalError struct {
	cause error
}

func errMarshal(cause error) error {
	if cause == nil {
		return nil
	}

	return MarshalError{cause: cause}
}

// Unwrap returns the underlying error that caused the marshal to fail.
func (e MarshalError) Unwrap() error {
	return e.cause
}

// Error returns a string representation of the marshal error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("marshal failed: %s", e.cause)
}

// UnmarshalError wraps the cause of a failed unmarshal.
type UnmarshalError struct {
	cause error
}

func errUnmarshal(cause error) error {
	if cause == nil {
		return nil
	}

	return UnmarshalError{cause: cause}
}

// Unwrap returns the underlying error that caused the unmarshal to fail.
func (e UnmarshalError) Unwrap() error {
	return e.cause
}

// Error returns a string representation of the unmarshal error.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("unmarshal failed: %s", e.cause)
}
