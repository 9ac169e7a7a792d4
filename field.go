// Package tagfield implements a tag input field: a text field where typed,
// comma-separated tags turn into chips that wrap into rows.
//
// A Field owns the tag collection and one text buffer per chip. Hosts feed it
// input events (taps, keystrokes, backspace, focus loss), read back Chips to
// render, and call Layout to position them:
//
//	field := tagfield.New(tagfield.DefaultConfig())
//	field.OnFocusChange(func(id uuid.UUID, focused bool) { showKeyboard(focused) })
//	field.Tap(field.Chips()[0].ID)
//	field.Insert("fruit,")
//	frames := field.Layout(flow.Rect{Width: 320})
//
// All methods must be called from the UI event thread.
package tagfield

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agiangrant/tagfield/flow"
	"github.com/agiangrant/tagfield/internal/logging"
	"github.com/agiangrant/tagfield/tags"
)

// chipState is the transient UI state of one chip, keyed by tag id.
type chipState struct {
	buffer *TextBuffer
}

// ChipFrame is where the last layout pass put a chip.
type ChipFrame struct {
	ID    uuid.UUID
	Frame flow.Rect
	Row   int
}

// Option configures a Field at construction.
type Option func(*Field)

// WithMeasurer sets the text measurer used to size chips.
func WithMeasurer(m TextMeasurer) Option {
	return func(f *Field) {
		f.measurer = m
	}
}

// WithLogger sends the field's debug output to l instead of the global logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Field) {
		f.log = l
	}
}

// WithCharFilter restricts what can be typed into chips. Runes for which
// allow returns false are dropped on insert.
func WithCharFilter(allow func(r rune) bool) Option {
	return func(f *Field) {
		f.allow = allow
	}
}

// WithTags seeds the field with committed tags.
func WithTags(values ...string) Option {
	return func(f *Field) {
		f.seed = values
	}
}

// Field is the tag collection controller.
type Field struct {
	cfg      Config
	rules    tags.Rules
	layout   flow.Layout
	measurer TextMeasurer
	log      *zap.Logger
	allow    func(rune) bool
	seed     []string

	tags   tags.Collection
	chips  map[uuid.UUID]*chipState
	focus  uuid.UUID
	frames []ChipFrame

	onChange func(tags.Collection)
	onFocus  func(id uuid.UUID, focused bool)
}

// New creates a field holding a single placeholder, after any seeded tags.
// Seeds past Input.MaxTags are dropped.
// Invalid configs fall back to defaults for the offending values; call
// Config.Validate first to surface them.
func New(cfg Config, opts ...Option) *Field {
	cfg = sanitize(cfg)
	f := &Field{
		cfg:   cfg,
		rules: cfg.Rules(),
		chips: make(map[uuid.UUID]*chipState),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.measurer == nil {
		f.measurer = DefaultMeasurer()
	}
	if f.log == nil {
		f.log = logging.GetLogger()
	}
	f.layout = cfg.FlowLayout()
	f.layout.Logger = f.log

	f.tags = f.rules.New(f.seed...)
	for _, t := range f.tags.Tags() {
		f.chips[t.ID] = f.newChipState(t.Value)
	}
	return f
}

// sanitize replaces values Validate would reject with their defaults.
func sanitize(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Input.Delimiter == "" || strings.TrimSpace(cfg.Input.Delimiter) == "" {
		cfg.Input.Delimiter = def.Input.Delimiter
	}
	if cfg.Chip.FontSize <= 0 {
		cfg.Chip.FontSize = def.Chip.FontSize
	}
	if cfg.Layout.Spacing < 0 {
		cfg.Layout.Spacing = def.Layout.Spacing
	}
	if cfg.Input.MaxTags < 0 {
		cfg.Input.MaxTags = 0
	}
	if cfg.Input.MaxLength < 0 {
		cfg.Input.MaxLength = 0
	}
	return cfg
}

func (f *Field) newChipState(value string) *chipState {
	b := NewTextBuffer(value)
	b.SetMaxLength(f.cfg.Input.MaxLength)
	if f.allow != nil {
		b.SetCharFilter(f.allow)
	}
	return &chipState{buffer: b}
}

// Config returns the config the field was built with.
func (f *Field) Config() Config {
	return f.cfg
}

// OnChange registers a callback fired after every event that changed the collection.
func (f *Field) OnChange(fn func(tags.Collection)) {
	f.onChange = fn
}

// OnFocusChange registers a callback fired when a chip gains or loses input
// focus. Hosts use it to show, move or hide the keyboard.
func (f *Field) OnFocusChange(fn func(id uuid.UUID, focused bool)) {
	f.onFocus = fn
}

// Collection returns the current tag collection snapshot.
func (f *Field) Collection() tags.Collection {
	return f.tags
}

// Tags returns the values of all non-empty tags, in order.
func (f *Field) Tags() []string {
	return f.tags.Values()
}

// Focused returns the chip holding input focus, if any.
func (f *Field) Focused() (tags.Tag, bool) {
	return tags.Focused(f.tags)
}

// Chips returns the render description of every tag, in order.
func (f *Field) Chips() []Chip {
	focused, hasFocus := tags.Focused(f.tags)
	all := f.tags.Tags()
	chips := make([]Chip, len(all))
	for i, t := range all {
		isFocused := hasFocus && focused.ID == t.ID
		cursor := len([]rune(t.Value))
		if st, ok := f.chips[t.ID]; ok {
			cursor = st.buffer.Cursor()
		}
		chips[i] = newChip(t, isFocused, cursor, f.cfg)
	}
	return chips
}

// Items returns one flow item per chip, for hosts that run the layout themselves.
func (f *Field) Items() []flow.Item {
	chips := f.Chips()
	items := make([]flow.Item, len(chips))
	for i, c := range chips {
		items[i] = ChipItem(c, f.measurer)
	}
	return items
}

// Measure returns the size of the whole field, padding included, at maxWidth.
func (f *Field) Measure(maxWidth float32) flow.Size {
	inner := maxWidth - 2*f.cfg.Field.PaddingX
	if inner < 0 {
		inner = 0
	}
	size := f.layout.Measure(flow.Proposal{Width: inner}, f.Items())
	return flow.Size{
		Width:  maxWidth,
		Height: size.Height + 2*f.cfg.Field.PaddingY,
	}
}

// Layout places every chip inside bounds (the whole field, padding included)
// and remembers the frames for HitTest.
func (f *Field) Layout(bounds flow.Rect) []ChipFrame {
	inner := flow.Rect{
		X:      bounds.X + f.cfg.Field.PaddingX,
		Y:      bounds.Y + f.cfg.Field.PaddingY,
		Width:  bounds.Width - 2*f.cfg.Field.PaddingX,
		Height: bounds.Height - 2*f.cfg.Field.PaddingY,
	}
	if inner.Width < 0 {
		inner.Width = 0
	}

	chips := f.Chips()
	items := make([]flow.Item, len(chips))
	for i, c := range chips {
		items[i] = ChipItem(c, f.measurer)
	}

	placements := f.layout.Place(inner, flow.Proposal{Width: inner.Width}, items)
	frames := make([]ChipFrame, len(placements))
	rows := 0
	var bottom float32
	for i, p := range placements {
		frames[i] = ChipFrame{ID: chips[i].ID, Frame: p.Frame(), Row: p.Row}
		rows = p.Row + 1
		if y := frames[i].Frame.MaxY(); y > bottom {
			bottom = y
		}
	}
	f.frames = frames
	// bounds.Height is whatever the host passed; report what the rows occupy.
	logging.LogLayout(f.log, bounds.Width, len(frames), rows, bottom-inner.Y+2*f.cfg.Field.PaddingY)
	return frames
}

// HitTest returns the chip under (x, y) according to the last Layout call.
func (f *Field) HitTest(x, y float32) (uuid.UUID, bool) {
	for _, fr := range f.frames {
		if fr.Frame.Contains(x, y) {
			return fr.ID, true
		}
	}
	return uuid.Nil, false
}

// Tap activates a chip. Only the trailing chip responds.
func (f *Field) Tap(id uuid.UUID) {
	f.dispatch(tags.Tap{ID: id})
}

// TapAt hit-tests (x, y) against the last layout and taps the chip found there.
func (f *Field) TapAt(x, y float32) bool {
	id, ok := f.HitTest(x, y)
	if ok {
		f.Tap(id)
	}
	return ok
}

// Insert types text at the cursor of the focused chip. A delimiter typed at
// the end ends the tag; more than one rune at once counts as a paste and
// splits on every delimiter. Does nothing while no chip is focused.
func (f *Field) Insert(text string) {
	focused, ok := tags.Focused(f.tags)
	if !ok || text == "" {
		return
	}
	buf := f.chips[focused.ID].buffer
	delim := f.cfg.Input.Delimiter
	had := strings.Count(buf.Text(), delim)
	inserted := buf.Insert(text)
	value := buf.Text()

	// A full chip still has to accept the delimiter so the tag can end.
	if strings.Contains(text, delim) && strings.Count(value, delim) == had {
		value += delim
	} else if !inserted {
		return
	}
	f.input(focused.ID, value, utf8.RuneCountInString(text) > 1)
}

// SetText replaces the focused chip's whole value, as a paste or an input
// method commit would. Every delimiter in value splits.
func (f *Field) SetText(value string) {
	focused, ok := tags.Focused(f.tags)
	if !ok {
		return
	}
	buf := f.chips[focused.ID].buffer
	buf.SetText(value)
	f.input(focused.ID, buf.Text(), true)
}

// MoveCursor moves the caret of the focused chip.
func (f *Field) MoveCursor(delta int) {
	if focused, ok := tags.Focused(f.tags); ok {
		f.chips[focused.ID].buffer.MoveCursor(delta)
	}
}

// Home moves the caret of the focused chip before its first rune.
func (f *Field) Home() {
	if focused, ok := tags.Focused(f.tags); ok {
		f.chips[focused.ID].buffer.MoveToStart()
	}
}

// End moves the caret of the focused chip after its last rune.
func (f *Field) End() {
	if focused, ok := tags.Focused(f.tags); ok {
		f.chips[focused.ID].buffer.MoveToEnd()
	}
}

// DeleteForward removes the rune after the caret of the focused chip.
// Unlike Backspace it never removes the chip itself.
func (f *Field) DeleteForward() {
	focused, ok := tags.Focused(f.tags)
	if !ok {
		return
	}
	if buf := f.chips[focused.ID].buffer; buf.Delete(1) {
		f.input(focused.ID, buf.Text(), false)
	}
}

// Backspace handles the backspace key in the focused chip. An empty chip is
// removed and editing moves to the previous one; otherwise one character
// before the cursor is deleted.
func (f *Field) Backspace() {
	focused, ok := tags.Focused(f.tags)
	if !ok {
		return
	}
	f.dispatch(tags.Backspace{ID: focused.ID})
	if _, still := f.tags.Get(focused.ID); !still {
		return
	}
	st := f.chips[focused.ID]
	if st.buffer.Delete(-1) {
		f.input(focused.ID, st.buffer.Text(), false)
	}
}

// Blur takes focus away from the focused chip without leaving the field.
func (f *Field) Blur() {
	if focused, ok := tags.Focused(f.tags); ok {
		f.dispatch(tags.Blur{ID: focused.ID})
	}
}

// Return handles the return key: the field resigns, like dismissing the keyboard.
func (f *Field) Return() {
	f.Resign()
}

// Resign is called when focus leaves the whole field.
func (f *Field) Resign() {
	f.dispatch(tags.Resign{})
}

// input dispatches a text change and, if it split the focused chip, moves
// editing to the fresh placeholder when configured to.
func (f *Field) input(id uuid.UUID, value string, paste bool) {
	before := f.tags
	if paste {
		f.dispatch(tags.Paste{ID: id, Value: value})
	} else {
		f.dispatch(tags.Input{ID: id, Value: value})
	}

	if !f.cfg.Input.ContinueAfterSplit {
		return
	}
	if _, ok := tags.Focused(f.tags); ok {
		return
	}
	last := f.tags.Last()
	if _, existed := before.Get(last.ID); existed || last.State() != tags.StatePlaceholder {
		return
	}
	f.dispatch(tags.Tap{ID: last.ID})
}

// dispatch runs the reducer and brings chip state, focus and listeners up to date.
func (f *Field) dispatch(e tags.Event) {
	before := f.tags
	after := f.rules.Reduce(before, e)
	f.tags = after

	changes := tags.Diff(before, after)
	f.syncChips(after, changes)
	logging.LogTransition(f.log, eventName(e), before, after)
	f.syncFocus()

	if f.onChange != nil && !changes.Empty() {
		f.onChange(after)
	}
}

func (f *Field) syncChips(after tags.Collection, changes tags.Changes) {
	for _, id := range changes.Removed {
		delete(f.chips, id)
	}
	for _, id := range changes.Inserted {
		t, _ := after.Get(id)
		f.chips[id] = f.newChipState(t.Value)
	}
	// Values the reducer rewrote (a split, a blank delimiter) replace the
	// buffer; a reducer that kept the value leaves the cursor alone.
	for _, t := range after.Tags() {
		if st := f.chips[t.ID]; st.buffer.Text() != t.Value {
			st.buffer.SetText(t.Value)
		}
	}
}

func (f *Field) syncFocus() {
	var next uuid.UUID
	if t, ok := tags.Focused(f.tags); ok {
		next = t.ID
	}
	if next == f.focus {
		return
	}
	prev := f.focus
	f.focus = next
	logging.LogFocus(f.log, idString(prev), idString(next))

	if f.onFocus == nil {
		return
	}
	if prev != uuid.Nil {
		f.onFocus(prev, false)
	}
	if next != uuid.Nil {
		f.onFocus(next, true)
	}
}

func eventName(e tags.Event) string {
	switch e.(type) {
	case tags.Tap:
		return "tap"
	case tags.Input:
		return "input"
	case tags.Paste:
		return "paste"
	case tags.Blur:
		return "blur"
	case tags.Backspace:
		return "backspace"
	case tags.Resign:
		return "resign"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return "none"
	}
	return id.String()
}
