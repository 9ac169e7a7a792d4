package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/tagfield"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n\n")
	b.WriteString(BoxStyle.Width(m.contentWidth()).Render(m.renderField()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderField lays the chips out and paints them line by line. Columns are
// tracked in cells because rendered chips carry escape codes.
func (m Model) renderField() string {
	bounds := m.fieldBounds()
	frames := m.field.Layout(bounds)
	chips := m.field.Chips()

	height := int(bounds.Height)
	if height < 1 {
		height = 1
	}
	lines := make([]strings.Builder, height)
	cols := make([]int, height)

	for i, fr := range frames {
		line := int(fr.Frame.Y)
		if line < 0 || line >= height {
			continue
		}
		x := int(fr.Frame.X)
		if gap := x - cols[line]; gap > 0 {
			lines[line].WriteString(strings.Repeat(" ", gap))
			cols[line] += gap
		}
		text, width := renderChip(chips[i])
		lines[line].WriteString(text)
		cols[line] += width
	}

	out := make([]string, height)
	for i := range lines {
		out[i] = lines[i].String()
	}
	return strings.Join(out, "\n")
}

// renderChip paints one chip and returns it with its width in cells.
func renderChip(c tagfield.Chip) (string, int) {
	switch {
	case c.Focused:
		return renderEditing(c)
	case c.ShowsHint():
		return HintStyle.Render(c.Hint), runewidth.StringWidth(c.Hint)
	default:
		pad := strings.Repeat(" ", int(c.PaddingX))
		label := pad + c.Text + pad
		return ChipStyle.Render(label), runewidth.StringWidth(label)
	}
}

// renderEditing draws the focused chip with a block caret. An empty chip
// shows its hint behind the caret.
func renderEditing(c tagfield.Chip) (string, int) {
	if c.Text == "" {
		hint := []rune(c.Hint)
		if len(hint) == 0 {
			return CursorStyle.Render(" "), 1
		}
		return CursorStyle.Render(string(hint[0])) + HintStyle.Render(string(hint[1:])),
			runewidth.StringWidth(c.Hint)
	}

	runes := []rune(c.Text)
	cursor := c.Cursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	before := string(runes[:cursor])
	if cursor == len(runes) {
		return EditStyle.Render(before) + CursorStyle.Render(" "), runewidth.StringWidth(before) + 1
	}
	at := string(runes[cursor])
	after := string(runes[cursor+1:])
	return EditStyle.Render(before) + CursorStyle.Render(at) + EditStyle.Render(after),
		runewidth.StringWidth(c.Text)
}

func (m Model) renderStatus() string {
	tags := m.field.Tags()
	if len(tags) == 0 {
		return StatusStyle.Render("no tags")
	}
	return StatusStyle.Render("tags: " + strings.Join(tags, ", "))
}
