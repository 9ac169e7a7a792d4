// Package mobile routes golang.org/x/mobile events into a tag field.
//
// A Dispatcher sits in the app's event loop:
//
//	d := mobile.NewDispatcher(field)
//	d.OnKeyboard(showSoftKeyboard)
//	for e := range a.Events() {
//	    if d.Handle(e) {
//	        a.Send(paint.Event{})
//	    }
//	}
package mobile

import (
	"strconv"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/agiangrant/tagfield"
	"github.com/agiangrant/tagfield/flow"
	"github.com/agiangrant/tagfield/internal/ffi"
	"github.com/agiangrant/tagfield/internal/logging"
)

// DefaultDragThreshold is how far (in points) a touch may travel before it
// counts as a drag instead of a tap.
const DefaultDragThreshold float32 = 10

// Dispatcher handles hit testing, touch gestures and keyboard routing for one field.
type Dispatcher struct {
	field *tagfield.Field

	// Field placement in points
	origin flow.Point
	width  float32

	pixelsPerPt float32

	// Touch gesture tracking
	touching      bool
	touchStartX   float32
	touchStartY   float32
	isDragging    bool
	dragThreshold float32

	softKeyboard    bool
	keyboardVisible bool
	onKeyboard      func(visible bool)
}

// NewDispatcher creates a dispatcher for f.
func NewDispatcher(f *tagfield.Field) *Dispatcher {
	return &Dispatcher{
		field:         f,
		pixelsPerPt:   1,
		dragThreshold: DefaultDragThreshold,
		softKeyboard:  !tagfield.HasPhysicalKeyboard(),
	}
}

// OnKeyboard registers the callback that shows or hides the software keyboard.
// It fires only when visibility actually changes, and never on platforms with
// a physical keyboard unless SetSoftKeyboard turns it on.
func (d *Dispatcher) OnKeyboard(fn func(visible bool)) {
	d.onKeyboard = fn
}

// SetOrigin moves the field's top-left corner, in points.
func (d *Dispatcher) SetOrigin(x, y float32) {
	d.origin = flow.Point{X: x, Y: y}
	d.layout()
}

// SetSoftKeyboard overrides whether focus changes drive a software keyboard.
func (d *Dispatcher) SetSoftKeyboard(on bool) {
	d.softKeyboard = on
}

// SetDragThreshold changes the tap/drag cut-off, in points.
func (d *Dispatcher) SetDragThreshold(pt float32) {
	d.dragThreshold = pt
}

// Bounds returns the field's frame from the last layout, in points.
func (d *Dispatcher) Bounds() flow.Rect {
	return flow.Rect{
		X:      d.origin.X,
		Y:      d.origin.Y,
		Width:  d.width,
		Height: d.field.Measure(d.width).Height,
	}
}

// Handle processes one event from the app loop and reports whether the field
// needs to be redrawn. Events it does not understand are ignored.
func (d *Dispatcher) Handle(e interface{}) bool {
	before := d.snapshot()

	switch e := e.(type) {
	case size.Event:
		d.pixelsPerPt = e.PixelsPerPt
		if d.pixelsPerPt <= 0 {
			// Some hosts leave the density unset; ask the engine.
			d.pixelsPerPt = float32(ffi.ScaleFactor())
		}
		d.width = float32(e.WidthPt) - d.origin.X
		d.layout()
		return true
	case touch.Event:
		d.handleTouch(e)
	case key.Event:
		d.handleKey(e)
	case lifecycle.Event:
		// Leaving the foreground dismisses the keyboard like tapping outside would.
		if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
			d.field.Resign()
		}
	default:
		return false
	}

	d.syncKeyboard()
	if d.snapshot() == before {
		return false
	}
	d.layout()
	return true
}

func (d *Dispatcher) handleTouch(e touch.Event) {
	x, y := e.X/d.pixelsPerPt, e.Y/d.pixelsPerPt

	switch e.Type {
	case touch.TypeBegin:
		d.touching = true
		d.touchStartX = x
		d.touchStartY = y
		d.isDragging = false

		// Focus on touch down, not up: iOS only raises the keyboard from
		// inside the touch handler.
		if id, ok := d.field.HitTest(x, y); ok {
			d.field.Tap(id)
			return
		}
		if !d.Bounds().Contains(x, y) {
			d.field.Resign()
		}

	case touch.TypeMove:
		if !d.touching || d.isDragging {
			return
		}
		dx := x - d.touchStartX
		dy := y - d.touchStartY
		if dx*dx+dy*dy > d.dragThreshold*d.dragThreshold {
			d.isDragging = true
			// A scroll gesture should not leave the keyboard up.
			d.field.Blur()
		}

	case touch.TypeEnd:
		d.touching = false
		d.isDragging = false
	}
}

func (d *Dispatcher) handleKey(e key.Event) {
	if e.Direction == key.DirRelease {
		return
	}

	switch e.Code {
	case key.CodeDeleteBackspace:
		d.field.Backspace()
	case key.CodeReturnEnter:
		d.field.Return()
	case key.CodeEscape:
		d.field.Resign()
	case key.CodeLeftArrow:
		d.field.MoveCursor(-1)
	case key.CodeRightArrow:
		d.field.MoveCursor(1)
	case key.CodeHome:
		d.field.Home()
	case key.CodeEnd:
		d.field.End()
	case key.CodeDeleteForward:
		d.field.DeleteForward()
	case key.CodeTab:
		d.tapLast()
	default:
		if e.Rune > 0 && unicode.IsPrint(e.Rune) && e.Modifiers&(key.ModControl|key.ModMeta) == 0 {
			d.field.Insert(string(e.Rune))
		}
	}
}

func (d *Dispatcher) tapLast() {
	chips := d.field.Chips()
	d.field.Tap(chips[len(chips)-1].ID)
}

// syncKeyboard shows the keyboard when a chip gains focus and hides it when
// focus leaves the field. Focus moving from chip to chip keeps it up.
func (d *Dispatcher) syncKeyboard() {
	_, focused := d.field.Focused()
	if focused == d.keyboardVisible {
		return
	}
	d.keyboardVisible = focused
	if !d.softKeyboard {
		return
	}
	logging.Debug("mobile: keyboard", zap.Bool("visible", focused))
	if d.onKeyboard != nil {
		d.onKeyboard(focused)
	}
}

// snapshot captures everything a redraw depends on: tags, states and the caret.
func (d *Dispatcher) snapshot() string {
	s := d.field.Collection().String()
	for _, c := range d.field.Chips() {
		if c.Focused {
			s += "@" + strconv.Itoa(c.Cursor)
		}
	}
	return s
}

func (d *Dispatcher) layout() {
	if d.width <= 0 {
		return
	}
	d.field.Layout(d.Bounds())
}

// FocusedChip returns the id of the chip with the keyboard, or uuid.Nil.
func (d *Dispatcher) FocusedChip() uuid.UUID {
	if t, ok := d.field.Focused(); ok {
		return t.ID
	}
	return uuid.Nil
}
