// Package packer packs ordered fixed-arity tuples of heterogeneous
// values into a single JSON array and unpacks them again. Position is
// the only correlation between an element and its type; there are no
// tags inside the packed sequence, so pack and unpack must agree on the
// declared order.
package packer

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrTruncated is returned when a packed sequence holds fewer elements
// than the expected arity.
var ErrTruncated = errors.New("truncated sequence")

// Pack2 encodes the pair as a two-element array, first then second.
func Pack2[A, B any](first A, second B) ([]byte, error) {
	return pack(first, second)
}

// Pack3 encodes the triple as a three-element array in declared order.
func Pack3[A, B, C any](first A, second B, third C) ([]byte, error) {
	return pack(first, second, third)
}

// Unpack2 decodes a sequence packed by [Pack2]. Elements beyond the
// second are left unread.
func Unpack2[A, B any](data []byte) (A, B, error) {
	var (
		first  A
		second B
	)

	elems, err := unpack(data, 2)
	if err != nil {
		return first, second, err
	}

	if err := decodeElem(elems, 0, &first); err != nil {
		return first, second, err
	}

	if err := decodeElem(elems, 1, &second); err != nil {
		return first, second, err
	}

	return first, second, nil
}

// Unpack3 decodes a sequence packed by [Pack3]. Elements beyond the
// third are left unread.
func Unpack3[A, B, C any](data []byte) (A, B, C, error) {
	var (
		first  A
		second B
		third  C
	)

	elems, err := unpack(data, 3)
	if err != nil {
		return first, second, third, err
	}

	if err := decodeElem(elems, 0, &first); err != nil {
		return first, second, third, err
	}

	if err := decodeElem(elems, 1, &second); err != nil {
		return first, second, third, err
	}

	if err := decodeElem(elems, 2, &third); err != nil {
		return first, second, third, err
	}

	return first, second, third, nil
}

// pack marshals every value in declared order into one array.
func pack(values ...any) ([]byte, error) {
	elems := make([]json.RawMessage, 0, len(values))

	for i, value := range values {
		elem, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		elems = append(elems, elem)
	}

	return json.Marshal(elems)
}

// unpack splits the array and checks it holds at least arity elements.
func unpack(data []byte, arity int) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("decode sequence: %w", err)
	}

	if len(elems) < arity {
		return nil, fmt.Errorf("%w: want %d elements, got %d", ErrTruncated, arity, len(elems))
	}

	return elems, nil
}

// decodeElem decodes the element at position i into out.
func decodeElem(elems []json.RawMessage, i int, out any) error {
	if err := json.Unmarshal(elems[i], out); err != nil {
		return fmt.Errorf("element %d: %w", i, err)
	}

	return nil
}
