package viewstate

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/tarantool/go-option"

	"github.com/httpdeck/go-viewstate/model"
)

// Kind identifies which state a [State] value holds. Kind values double
// as the object keys of the wire encoding.
type Kind string

const (
	// KindEmpty is the state shown before any request is selected.
	KindEmpty Kind = "empty"
	// KindEditing is the state for editing a request.
	KindEditing Kind = "editing"
	// KindHistory is the state for browsing past requests.
	KindHistory Kind = "history"
	// KindListing is the state for browsing the request list.
	KindListing Kind = "list"
)

// Subview is the part of the request editor that has focus while editing.
type Subview string

const (
	// SubviewBody focuses the request body editor.
	SubviewBody Subview = "body"
	// SubviewHeaders focuses the header editor.
	SubviewHeaders Subview = "headers"
	// SubviewQuery focuses the query parameter editor.
	SubviewQuery Subview = "query"
)

// valid reports whether the subview is one of the declared values.
func (s Subview) valid() bool {
	switch s {
	case SubviewBody, SubviewHeaders, SubviewQuery:
		return true
	default:
		return false
	}
}

// UnmarshalJSON decodes a subview, rejecting values outside the declared
// set.
func (s *Subview) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode subview: %w", err)
	}

	if !Subview(raw).valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSubview, raw)
	}

	*s = Subview(raw)

	return nil
}

// State is the view state of the request browser: exactly one of the
// four kinds, each carrying its own payload. The zero value is the empty
// state.
//
// States are immutable after construction. Payload slices are copied on
// the way in and on the way out, so every State owns its value tree
// independently.
type State struct {
	kind       Kind
	subview    Subview
	connection option.Generic[model.Connection]
	selectedID uuid.UUID
	expanded   []model.Item
}

// Empty returns the state shown before any request is selected.
func Empty() State {
	return State{kind: KindEmpty} //nolint:exhaustruct
}

// Editing returns the editing state with the given subview focused.
func Editing(subview Subview) State {
	return State{kind: KindEditing, subview: subview} //nolint:exhaustruct
}

// History returns the history-browsing state. The connection is optional;
// pass option.None to represent history with no active connection.
func History(connection option.Generic[model.Connection]) State {
	return State{kind: KindHistory, connection: connection} //nolint:exhaustruct
}

// Listing returns the request-list state with the given selection and
// the items currently expanded, in display order.
func Listing(selectedID uuid.UUID, expanded []model.Item) State {
	return State{ //nolint:exhaustruct
		kind:       KindListing,
		selectedID: selectedID,
		expanded:   slices.Clone(expanded),
	}
}

// Kind reports which state this value holds.
func (s State) Kind() Kind {
	if s.kind == "" {
		return KindEmpty
	}

	return s.kind
}

// Subview returns the focused subview. The second return is false unless
// the state is [KindEditing].
func (s State) Subview() (Subview, bool) {
	return s.subview, s.kind == KindEditing
}

// Connection returns the optional connection of the history state. The
// second return is false unless the state is [KindHistory].
func (s State) Connection() (option.Generic[model.Connection], bool) {
	return s.connection, s.kind == KindHistory
}

// Listing returns the selected request id and the expanded items. The
// third return is false unless the state is [KindListing].
func (s State) Listing() (uuid.UUID, []model.Item, bool) {
	return s.selectedID, slices.Clone(s.expanded), s.kind == KindListing
}
