package tagfield

import (
	"strings"
	"sync"
)

// TextBuffer is the editable text of one chip: rune content plus a caret.
//
// Chips are single-line, so line breaks are dropped on insert. The buffer is
// safe to read from other goroutines; all edits come from the event thread.
type TextBuffer struct {
	mu sync.RWMutex

	runes []rune
	caret int // 0 = before the first rune

	limit int             // rune cap, 0 = none
	allow func(rune) bool // nil accepts everything
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// NewTextBuffer creates a buffer holding text with the caret at the end.
func NewTextBuffer(text string) *TextBuffer {
	b := &TextBuffer{}
	b.reset(text)
	return b
}

func (b *TextBuffer) reset(text string) {
	b.runes = append(make([]rune, 0, len(text)+8), []rune(text)...)
	b.caret = len(b.runes)
}

// Text returns the current content.
func (b *TextBuffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.runes)
}

// Cursor returns the caret position in runes.
func (b *TextBuffer) Cursor() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.caret
}

// SetText replaces the content and puts the caret at the end. The max
// length and filter do not apply; the text comes from the collection.
func (b *TextBuffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset(text)
}

// SetMaxLength caps the rune count of typed text. 0 removes the cap.
func (b *TextBuffer) SetMaxLength(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.limit = n
}

// SetCharFilter restricts which runes Insert accepts.
func (b *TextBuffer) SetCharFilter(allow func(r rune) bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allow = allow
}

// MoveCursor moves the caret by delta runes, stopping at either end.
func (b *TextBuffer) MoveCursor(delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.caret = clamp(b.caret+delta, 0, len(b.runes))
}

// MoveToStart puts the caret before the first rune.
func (b *TextBuffer) MoveToStart() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.caret = 0
}

// MoveToEnd puts the caret after the last rune.
func (b *TextBuffer) MoveToEnd() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.caret = len(b.runes)
}

// Insert types text at the caret and reports whether anything went in.
// Filtered runes are skipped and whatever exceeds the max length is cut.
func (b *TextBuffer) Insert(text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	add := make([]rune, 0, len(text))
	for _, r := range lineBreaks.Replace(text) {
		if b.allow == nil || b.allow(r) {
			add = append(add, r)
		}
	}
	if b.limit > 0 {
		room := clamp(b.limit-len(b.runes), 0, len(add))
		add = add[:room]
	}
	if len(add) == 0 {
		return false
	}
	b.splice(b.caret, b.caret, add)
	b.caret += len(add)
	return true
}

// Delete removes up to |n| runes next to the caret and reports whether
// anything was removed: after it when n > 0, before it when n < 0.
func (b *TextBuffer) Delete(n int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	from, to := b.caret, clamp(b.caret+n, 0, len(b.runes))
	if n < 0 {
		from, to = to, b.caret
	}
	if from == to {
		return false
	}
	b.splice(from, to, nil)
	b.caret = from
	return true
}

// splice replaces runes[from:to] with add. Caller holds the lock.
func (b *TextBuffer) splice(from, to int, add []rune) {
	out := make([]rune, 0, len(b.runes)-(to-from)+len(add))
	out = append(out, b.runes[:from]...)
	out = append(out, add...)
	b.runes = append(out, b.runes[to:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
