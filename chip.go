package tagfield

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/agiangrant/tagfield/flow"
	"github.com/agiangrant/tagfield/tags"
)

// ChipKind is the look a chip is rendered with.
type ChipKind string

const (
	// ChipPlaceholder is an empty chip showing the hint.
	ChipPlaceholder ChipKind = "Placeholder"
	// ChipCommitted is a filled, display-only chip.
	ChipCommitted ChipKind = "Committed"
	// ChipEditing is the chip with the keyboard.
	ChipEditing ChipKind = "Editing"
)

func kindOf(s tags.State) ChipKind {
	switch s {
	case tags.StateEditing:
		return ChipEditing
	case tags.StateCommitted:
		return ChipCommitted
	default:
		return ChipPlaceholder
	}
}

// Chip describes one tag for the rendering layer. Hosts key their views by ID.
type Chip struct {
	ID      uuid.UUID `json:"id"`
	Kind    ChipKind  `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Hint    string    `json:"hint,omitempty"`
	Cursor  int       `json:"cursor"`
	Focused bool      `json:"focused"`
	// Disabled chips ignore keyboard input; a tap is the only way in.
	Disabled bool `json:"disabled"`
	// Filled chips draw their background; editing and empty chips are bare text.
	Filled       bool    `json:"filled"`
	PaddingX     float32 `json:"padding_x"`
	PaddingY     float32 `json:"padding_y"`
	CornerRadius float32 `json:"corner_radius"`
	FontName     string  `json:"font_name"`
	FontSize     float32 `json:"font_size"`
}

// Label returns the text to draw: the value, or the hint when empty.
func (c Chip) Label() string {
	if c.Text == "" {
		return c.Hint
	}
	return c.Text
}

// ShowsHint reports whether the chip is drawing its hint instead of a value.
func (c Chip) ShowsHint() bool {
	return c.Text == ""
}

// ToJSON serializes the chip to JSON
func (c Chip) ToJSON() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// newChip builds the render description of t.
// Horizontal padding only applies to filled chips, so an editing chip grows
// exactly with its text.
func newChip(t tags.Tag, focused bool, cursor int, cfg Config) Chip {
	filled := !focused && t.Value != ""
	c := Chip{
		ID:           t.ID,
		Kind:         kindOf(t.State()),
		Text:         t.Value,
		Hint:         cfg.Input.Hint,
		Cursor:       cursor,
		Focused:      focused,
		Disabled:     t.IsInitial,
		Filled:       filled,
		PaddingY:     cfg.Chip.PaddingY,
		CornerRadius: cfg.Chip.CornerRadius,
		FontName:     cfg.Chip.FontName,
		FontSize:     cfg.Chip.FontSize,
	}
	if filled {
		c.PaddingX = cfg.Chip.PaddingX
	}
	return c
}

// chipItem sizes a chip for the flow layout.
type chipItem struct {
	chip     Chip
	measurer TextMeasurer
}

// SizeThatFits returns the chip's intrinsic size; chips take what they need
// rather than the whole proposal.
func (ci chipItem) SizeThatFits(flow.Proposal) flow.Size {
	w, h := ci.measurer.MeasureText(ci.chip.Label(), ci.chip.FontName, ci.chip.FontSize)
	return flow.Size{
		Width:  w + 2*ci.chip.PaddingX,
		Height: h + 2*ci.chip.PaddingY,
	}
}

// ChipItem returns the flow item that sizes c with m.
func ChipItem(c Chip, m TextMeasurer) flow.Item {
	return chipItem{chip: c, measurer: m}
}
