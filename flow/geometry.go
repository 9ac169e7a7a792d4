// Package flow arranges measured items left to right into rows that wrap
// when the next item would overflow the available width.
package flow

// Size is a width/height pair in layout units.
type Size struct {
	Width  float32
	Height float32
}

// Point is a placement origin in the container's coordinate space.
type Point struct {
	X float32
	Y float32
}

// Rect is the final frame handed to Place.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// MaxX returns the right edge of the rect.
func (r Rect) MaxX() float32 {
	return r.X + r.Width
}

// MaxY returns the bottom edge of the rect.
func (r Rect) MaxY() float32 {
	return r.Y + r.Height
}

// Contains reports whether the point lies inside the rect (right/bottom edges exclusive).
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Proposal is the size offered to an item when asking how large it wants to be.
// A zero Width means the container is unconstrained horizontally.
type Proposal struct {
	Width  float32
	Height float32
}

// Item is anything the flow layout can size.
type Item interface {
	SizeThatFits(p Proposal) Size
}

// ItemFunc adapts a plain function to the Item interface.
type ItemFunc func(p Proposal) Size

// SizeThatFits calls f(p).
func (f ItemFunc) SizeThatFits(p Proposal) Size {
	return f(p)
}

// Fixed is an item that always reports the same size, regardless of the proposal.
type Fixed Size

// SizeThatFits returns the fixed size.
func (f Fixed) SizeThatFits(Proposal) Size {
	return Size(f)
}

// Placement is where Place put a single item.
type Placement struct {
	// Index of the item in the input sequence.
	Index int
	// Origin is the absolute top-left corner.
	Origin Point
	// Size is the size the item reported during this pass.
	Size Size
	// Row is the index of the row the item landed on.
	Row int
}

// Frame returns the rect occupied by the placed item.
func (p Placement) Frame() Rect {
	return Rect{X: p.Origin.X, Y: p.Origin.Y, Width: p.Size.Width, Height: p.Size.Height}
}
