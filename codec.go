package viewstate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tarantool/go-option"

	"github.com/httpdeck/go-viewstate/model"
	"github.com/httpdeck/go-viewstate/packer"
)

// MarshalJSON encodes the state as an object whose only key is the kind
// of the active state. The empty state writes a placeholder true, the
// single-payload states write the payload value itself (null for an
// absent history connection) and the listing state packs its pair of
// payloads as a two-element array.
func (s State) MarshalJSON() ([]byte, error) {
	var (
		payload json.RawMessage
		err     error
	)

	kind := s.Kind()

	switch kind {
	case KindEmpty:
		payload, err = json.Marshal(true)
	case KindEditing:
		payload, err = json.Marshal(string(s.subview))
	case KindHistory:
		payload, err = s.marshalConnection()
	case KindListing:
		payload, err = packer.Pack2(s.selectedID, s.expanded)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStateKey, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("encode %q payload: %w", kind, err)
	}

	return json.Marshal(map[Kind]json.RawMessage{kind: payload})
}

// marshalConnection encodes the optional history payload, null when
// absent.
func (s State) marshalConnection() ([]byte, error) {
	if !s.connection.IsSome() {
		return json.Marshal(nil)
	}

	return json.Marshal(s.connection.UnwrapOr(model.Connection{})) //nolint:exhaustruct
}

// UnmarshalJSON decodes an encoded state. Exactly one declared state key
// must be present; zero keys, several keys or an unrecognized key fail
// before any payload is examined. Decoding is fail-fast: the first
// payload error surfaces unchanged and the receiver is left untouched.
func (s *State) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode state object: %w", err)
	}

	switch len(fields) {
	case 1:
	case 0:
		return ErrNoStateKey
	default:
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		return fmt.Errorf("%w: %s", ErrMultipleStateKeys, strings.Join(keys, ", "))
	}

	var (
		key     string
		payload json.RawMessage
	)

	for k, v := range fields {
		key, payload = k, v
	}

	decoded, err := decodePayload(Kind(key), payload)
	if err != nil {
		return err
	}

	*s = decoded

	return nil
}

// decodePayload reconstructs the state selected by kind from its payload
// slot.
func decodePayload(kind Kind, payload json.RawMessage) (State, error) {
	switch kind {
	case KindEmpty:
		// The placeholder is read but never inspected beyond being
		// well-formed JSON, which the object parse already guaranteed.
		return Empty(), nil
	case KindEditing:
		var subview Subview
		if err := json.Unmarshal(payload, &subview); err != nil {
			return State{}, fmt.Errorf("decode %q payload: %w", kind, err)
		}

		return Editing(subview), nil
	case KindHistory:
		var connection *model.Connection
		if err := json.Unmarshal(payload, &connection); err != nil {
			return State{}, fmt.Errorf("decode %q payload: %w", kind, err)
		}

		if connection == nil {
			return History(option.None[model.Connection]()), nil
		}

		return History(option.Some(*connection)), nil
	case KindListing:
		selectedID, expanded, err := packer.Unpack2[uuid.UUID, []model.Item](payload)
		if err != nil {
			return State{}, fmt.Errorf("decode %q payload: %w", kind, err)
		}

		return Listing(selectedID, expanded), nil
	default:
		return State{}, fmt.Errorf("%w: %q", ErrUnknownStateKey, kind)
	}
}
