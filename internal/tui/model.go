// Package tui hosts a tag field in the terminal with Bubble Tea.
//
// Chips are measured in terminal cells and placed by the same flow layout the
// native hosts use, so the demo wraps, aligns and hit-tests exactly like them.
//
//	m := tui.New(cfg, "go", "rust")
//	final, err := tea.NewProgram(m, tea.WithMouseCellMotion()).Run()
package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/tagfield"
	"github.com/agiangrant/tagfield/flow"
	"github.com/agiangrant/tagfield/internal/logging"
)

// Screen offsets of the field's content: header plus blank line, then the box border.
const (
	headerLines = 2
	borderWidth = 1
)

// CellMeasurer sizes text in terminal cells: one line tall, wide runes count twice.
var CellMeasurer = tagfield.MeasureFunc(func(text, _ string, _ float32) (float32, float32) {
	return float32(runewidth.StringWidth(text)), 1
})

// TerminalConfig rescales cfg's geometry from points to terminal cells and
// keeps its input behaviour.
func TerminalConfig(cfg tagfield.Config) tagfield.Config {
	cfg.Layout.Spacing = 1
	cfg.Layout.LeadingInset = 1
	cfg.Chip.PaddingX = 1
	cfg.Chip.PaddingY = 0
	cfg.Chip.FontSize = 1
	cfg.Field.PaddingX = 1
	cfg.Field.PaddingY = 0
	return cfg
}

// Model is the Bubble Tea model of the demo.
type Model struct {
	field *tagfield.Field
	keys  keyMap
	help  help.Model

	width int
}

// New creates a model around a fresh field seeded with tags.
func New(cfg tagfield.Config, seed ...string) Model {
	f := tagfield.New(TerminalConfig(cfg),
		tagfield.WithMeasurer(CellMeasurer),
		tagfield.WithTags(seed...),
		// Terminals can deliver stray control runes inside pastes.
		tagfield.WithCharFilter(unicode.IsPrint),
		tagfield.WithLogger(logging.GetLogger().Named("tui")),
	)
	return Model{
		field: f,
		keys:  defaultKeyMap(),
		help:  help.New(),
		width: DefaultWidth,
	}
}

// Field returns the hosted field.
func (m Model) Field() *tagfield.Field {
	return m.field
}

// Tags returns the committed tag values.
func (m Model) Tags() []string {
	return m.field.Tags()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.field.Resign()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		chips := m.field.Chips()
		m.field.Tap(chips[len(chips)-1].ID)
	case key.Matches(msg, m.keys.Done):
		m.field.Return()
	case key.Matches(msg, m.keys.Resign):
		m.field.Resign()
	case key.Matches(msg, m.keys.Backspace):
		m.field.Backspace()
	case key.Matches(msg, m.keys.Left):
		m.field.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.field.MoveCursor(1)
	case key.Matches(msg, m.keys.Home):
		m.field.Home()
	case key.Matches(msg, m.keys.End):
		m.field.End()
	case key.Matches(msg, m.keys.Delete):
		m.field.DeleteForward()
	case msg.Type == tea.KeySpace:
		m.field.Insert(" ")
	case msg.Type == tea.KeyRunes:
		// Pastes arrive as one message and may hold several delimiters.
		m.field.Insert(string(msg.Runes))
	}
	return m, nil
}

// click maps a screen cell to the field and taps whatever chip is there.
// Clicks outside the box leave the field.
func (m Model) click(x, y int) {
	fx := float32(x - borderWidth)
	fy := float32(y - headerLines - borderWidth)
	if m.field.TapAt(fx, fy) {
		return
	}
	bounds := m.fieldBounds()
	if !bounds.Contains(fx, fy) {
		m.field.Resign()
	}
}

// fieldBounds is the field's frame in content coordinates, padding included.
func (m Model) fieldBounds() flow.Rect {
	width := float32(m.contentWidth())
	return flow.Rect{Width: width, Height: m.field.Measure(width).Height}
}

func (m Model) contentWidth() int {
	w := m.width - 2*borderWidth
	if w < 1 {
		w = 1
	}
	return w
}
