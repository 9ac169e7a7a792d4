package tags

import "github.com/google/uuid"

// Event is a discrete user interaction fed to Reduce.
type Event interface {
	event()
}

// Tap is a tap on a chip.
type Tap struct {
	ID uuid.UUID
}

// Input carries the full new text of a chip after a keystroke.
type Input struct {
	ID    uuid.UUID
	Value string
}

// Paste carries the full new text of a chip after a paste or an input
// method commit. Every delimiter in it splits.
type Paste struct {
	ID    uuid.UUID
	Value string
}

// Blur reports that a chip lost input focus.
type Blur struct {
	ID uuid.UUID
}

// Backspace is the backspace key pressed inside a chip. It fires even when
// the chip has no text left to delete.
type Backspace struct {
	ID uuid.UUID
}

// Resign reports that focus left the whole field, e.g. the keyboard was dismissed.
type Resign struct{}

func (Tap) event()       {}
func (Input) event()     {}
func (Paste) event()     {}
func (Blur) event()      {}
func (Backspace) event() {}
func (Resign) event()    {}
