// Package tags holds the tag collection behind a tag input field and the
// pure reducer that applies user events to it.
//
// A Collection is treated as an immutable value: Reduce returns a new
// collection and never mutates its input, so a host can keep the previous
// snapshot around for diffing.
package tags

import (
	"fmt"

	"github.com/google/uuid"
)

// Tag is one chip in the field.
type Tag struct {
	// ID is stable for the tag's lifetime and never reused.
	ID uuid.UUID
	// Value is the text of the chip. Only the trailing placeholder may be empty.
	Value string
	// IsInitial marks a chip that is not currently editable: either a
	// placeholder nobody has tapped yet or a chip that lost focus.
	IsInitial bool
}

// State is the interaction state derived from a tag.
type State uint8

const (
	// StatePlaceholder is an empty, not yet interactive chip.
	StatePlaceholder State = iota
	// StateCommitted is a non-empty chip shown in display-only mode.
	StateCommitted
	// StateEditing is the chip currently receiving keyboard input.
	StateEditing
)

func (s State) String() string {
	switch s {
	case StatePlaceholder:
		return "placeholder"
	case StateCommitted:
		return "committed"
	case StateEditing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// State returns the interaction state of the tag.
func (t Tag) State() State {
	switch {
	case !t.IsInitial:
		return StateEditing
	case t.Value == "":
		return StatePlaceholder
	default:
		return StateCommitted
	}
}

// placeholder returns a fresh empty, non-interactive tag.
func placeholder() Tag {
	return Tag{ID: uuid.New(), IsInitial: true}
}

// committed returns a fresh display-only tag holding value.
func committed(value string) Tag {
	return Tag{ID: uuid.New(), Value: value, IsInitial: true}
}
