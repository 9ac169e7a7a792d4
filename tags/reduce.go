package tags

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultDelimiter splits one tag into the next.
const DefaultDelimiter = ","

// Rules parameterises the reducer.
type Rules struct {
	// Delimiter ends the current tag. Empty means DefaultDelimiter.
	Delimiter string
	// MaxTags caps the number of non-empty tags. Zero means no cap.
	MaxTags int
}

// DefaultRules splits on "," with no cap.
func DefaultRules() Rules {
	return Rules{Delimiter: DefaultDelimiter}
}

// New builds a collection like the package-level New, keeping only the first
// MaxTags values. A full collection ends with its last tag, not a placeholder.
func (r Rules) New(values ...string) Collection {
	c := New(values...)
	if r.MaxTags <= 0 || c.Count() < r.MaxTags {
		return c
	}
	return fromSlice(c.tags[:r.MaxTags])
}

// Reduce applies e to c using DefaultRules.
func Reduce(c Collection, e Event) Collection {
	return DefaultRules().Reduce(c, e)
}

// Reduce applies e to c and returns the resulting collection. c is not modified.
// Events aimed at unknown ids, and events that make no sense in the tag's
// current state, leave the collection as it was.
func (r Rules) Reduce(c Collection, e Event) Collection {
	c.mustInit()

	tags := c.clone()
	switch ev := e.(type) {
	case Tap:
		tags = r.tap(tags, c, ev.ID)
	case Input:
		tags = r.input(tags, c, ev.ID, ev.Value, false)
	case Paste:
		tags = r.input(tags, c, ev.ID, ev.Value, true)
	case Blur:
		if i, ok := c.Index(ev.ID); ok {
			tags[i].IsInitial = true
			tags[i].Value = strings.TrimSpace(tags[i].Value)
		}
	case Backspace:
		tags = r.backspace(tags, c, ev.ID)
	case Resign:
		tags = r.resign(tags)
	default:
		return c
	}
	return fromSlice(normalize(tags))
}

// tap activates the trailing chip. Taps anywhere else are ignored so a stale
// chip in the middle of the field never becomes editable.
func (r Rules) tap(tags []Tag, c Collection, id uuid.UUID) []Tag {
	i, ok := c.Index(id)
	if !ok || i != len(tags)-1 || !tags[i].IsInitial {
		return tags
	}
	tags[i].IsInitial = false
	return tags
}

// input stores the chip's new text.
//
// A keystroke that leaves the delimiter at the end of the text commits the
// chip: "fruit," keeps "fruit" here and a placeholder follows. A delimiter
// typed anywhere else is ordinary text. A paste is split on every delimiter
// instead, one committed chip per non-blank part. Blank parts never make
// chips, so repeated delimiters do not pile up empty tags.
//
// Only the trailing chip is ever editable (normalize enforces it), so new
// chips always land at the end.
func (r Rules) input(tags []Tag, c Collection, id uuid.UUID, value string, paste bool) []Tag {
	i, ok := c.Index(id)
	if !ok || tags[i].IsInitial {
		return tags
	}

	others := c.Count()
	if tags[i].Value != "" {
		others--
	}
	// An empty chip in a full field would become one tag too many.
	room := r.MaxTags - others
	if r.MaxTags > 0 && tags[i].Value == "" && room < 1 {
		return tags
	}

	delim := r.delimiter()
	var parts []string
	switch {
	case paste && strings.Contains(value, delim):
		parts = nonBlank(strings.Split(value, delim))
	case strings.HasSuffix(value, delim):
		parts = nonBlank([]string{strings.TrimSuffix(value, delim)})
	default:
		tags[i].Value = value
		return tags
	}
	if len(parts) == 0 {
		tags[i].Value = ""
		return tags
	}

	if r.MaxTags > 0 {
		// A chip that already holds text keeps its own slot.
		if room < 1 {
			room = 1
		}
		if len(parts) > room {
			parts = parts[:room]
		}
	}

	tags[i].Value = parts[0]
	for _, p := range parts[1:] {
		tags = append(tags, committed(p))
	}
	if r.hasRoom(others + len(parts)) {
		tags = append(tags, placeholder())
	}
	return tags
}

func nonBlank(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// backspace removes an empty, editable chip and hands editing to the new last chip.
// The sole remaining chip is never removed.
func (r Rules) backspace(tags []Tag, c Collection, id uuid.UUID) []Tag {
	i, ok := c.Index(id)
	if !ok || len(tags) < 2 || tags[i].Value != "" || tags[i].IsInitial {
		return tags
	}
	tags = append(tags[:i], tags[i+1:]...)
	tags[len(tags)-1].IsInitial = false
	return tags
}

// resign blurs and trims every chip and, when the last one holds text,
// appends a placeholder so the field is ready for the next tag.
func (r Rules) resign(tags []Tag) []Tag {
	count := 0
	for i := range tags {
		tags[i].IsInitial = true
		tags[i].Value = strings.TrimSpace(tags[i].Value)
		if tags[i].Value != "" {
			count++
		}
	}
	if tags[len(tags)-1].Value != "" && r.hasRoom(count) {
		tags = append(tags, placeholder())
	}
	return tags
}

func (r Rules) delimiter() string {
	if r.Delimiter == "" {
		return DefaultDelimiter
	}
	return r.Delimiter
}

// hasRoom reports whether another tag may follow count non-empty tags.
func (r Rules) hasRoom(count int) bool {
	return r.MaxTags <= 0 || count < r.MaxTags
}

// normalize restores the collection rules after an event:
// empty chips survive only in last position, only the last chip may stay
// editable, and the collection never ends up empty.
func normalize(tags []Tag) []Tag {
	out := tags[:0]
	for i, t := range tags {
		if t.Value == "" && i != len(tags)-1 {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return []Tag{placeholder()}
	}
	for i := 0; i < len(out)-1; i++ {
		out[i].IsInitial = true
	}
	return out
}

// Focused returns the chip that holds input focus, if any.
// Only the trailing chip is ever eligible, and only once it is editable.
func Focused(c Collection) (Tag, bool) {
	last := c.Last()
	if last.IsInitial {
		return Tag{}, false
	}
	return last, true
}
