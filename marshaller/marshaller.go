// Package marshaller provides typed serialization of values to bytes.
//
// The [github.com/httpdeck/go-viewstate/snapshot] package uses the
// msgpack marshaller for its stored records; the JSON marshaller covers
// consumers that want the wire encoding of the state itself.
package marshaller

// TypedMarshaller is a generic interface for typed marshalling
// operations.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

func zero[T any]() T {
	var out T
	return out
}
