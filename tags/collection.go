package tags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvariant is returned by Validate when a collection breaks one of its rules.
var ErrInvariant = errors.New("tags: invariant violated")

// Collection is the ordered list of tags shown by a field, with a stable
// id→index lookup.
//
// The zero value is not usable; build collections with New.
type Collection struct {
	tags  []Tag
	index map[uuid.UUID]int
}

// New returns a collection holding one committed tag per non-blank value,
// followed by the trailing placeholder. New() alone yields just the placeholder.
func New(values ...string) Collection {
	tags := make([]Tag, 0, len(values)+1)
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			tags = append(tags, committed(v))
		}
	}
	tags = append(tags, placeholder())
	return fromSlice(tags)
}

func fromSlice(tags []Tag) Collection {
	index := make(map[uuid.UUID]int, len(tags))
	for i, t := range tags {
		index[t.ID] = i
	}
	return Collection{tags: tags, index: index}
}

// mustInit guards against the zero value, which no code path is meant to build.
func (c Collection) mustInit() {
	if c.tags == nil {
		panic("tags: collection not implemented for zero value; use tags.New")
	}
}

// clone returns a copy of the tag slice that callers may mutate freely.
func (c Collection) clone() []Tag {
	out := make([]Tag, len(c.tags), len(c.tags)+1)
	copy(out, c.tags)
	return out
}

// Len returns the number of tags, placeholder included.
func (c Collection) Len() int {
	c.mustInit()
	return len(c.tags)
}

// At returns the tag at position i.
func (c Collection) At(i int) Tag {
	c.mustInit()
	return c.tags[i]
}

// Last returns the trailing tag.
func (c Collection) Last() Tag {
	c.mustInit()
	return c.tags[len(c.tags)-1]
}

// Tags returns a copy of the tags in order.
func (c Collection) Tags() []Tag {
	c.mustInit()
	out := make([]Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Index returns the position of the tag with the given id.
func (c Collection) Index(id uuid.UUID) (int, bool) {
	c.mustInit()
	i, ok := c.index[id]
	return i, ok
}

// Get returns the tag with the given id.
func (c Collection) Get(id uuid.UUID) (Tag, bool) {
	i, ok := c.Index(id)
	if !ok {
		return Tag{}, false
	}
	return c.tags[i], true
}

// IsLast reports whether id belongs to the trailing tag.
func (c Collection) IsLast(id uuid.UUID) bool {
	i, ok := c.Index(id)
	return ok && i == len(c.tags)-1
}

// Values returns the text of every non-empty tag, in order.
func (c Collection) Values() []string {
	c.mustInit()
	values := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		if t.Value != "" {
			values = append(values, t.Value)
		}
	}
	return values
}

// Count returns the number of non-empty tags.
func (c Collection) Count() int {
	c.mustInit()
	n := 0
	for _, t := range c.tags {
		if t.Value != "" {
			n++
		}
	}
	return n
}

// Validate checks the collection rules: never empty, at most one empty tag
// and only in last position, at most one editable tag and only in last position.
func (c Collection) Validate() error {
	if len(c.tags) == 0 {
		return fmt.Errorf("%w: collection is empty", ErrInvariant)
	}
	last := len(c.tags) - 1
	for i, t := range c.tags {
		if t.Value == "" && i != last {
			return fmt.Errorf("%w: empty tag at %d of %d", ErrInvariant, i, len(c.tags))
		}
		if !t.IsInitial && i != last {
			return fmt.Errorf("%w: editable tag at %d of %d", ErrInvariant, i, len(c.tags))
		}
		if idx, ok := c.index[t.ID]; !ok || idx != i {
			return fmt.Errorf("%w: index out of sync for %s", ErrInvariant, t.ID)
		}
	}
	if len(c.index) != len(c.tags) {
		return fmt.Errorf("%w: duplicate tag ids", ErrInvariant)
	}
	return nil
}

// String renders the collection compactly, e.g. [fruit* | ·], for logs and test failures.
func (c Collection) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range c.tags {
		if i > 0 {
			b.WriteString(" | ")
		}
		switch t.State() {
		case StatePlaceholder:
			b.WriteString("·")
		case StateEditing:
			b.WriteString(t.Value)
			b.WriteByte('*')
		default:
			b.WriteString(t.Value)
		}
	}
	b.WriteByte(']')
	return b.String()
}
