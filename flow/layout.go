package flow

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Alignment controls where each row starts horizontally.
type Alignment int

const (
	// AlignCenter centers each row between the leading inset and the trailing edge (default).
	AlignCenter Alignment = iota

	// AlignLeading starts each row at the leading inset.
	AlignLeading

	// AlignTrailing pushes each row against the right edge of the bounds.
	AlignTrailing
)

const (
	// DefaultSpacing is applied both between items in a row and between rows.
	DefaultSpacing float32 = 10

	// DefaultLeadingInset is the fixed left margin used by leading (and center) alignment.
	DefaultLeadingInset float32 = 30
)

// String returns the config name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeading:
		return "leading"
	case AlignTrailing:
		return "trailing"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment parses "leading", "trailing" or "center" (case-insensitive).
// "start" and "end" are accepted as aliases.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "start", "left":
		return AlignLeading, nil
	case "trailing", "end", "right":
		return AlignTrailing, nil
	case "center", "centre", "":
		return AlignCenter, nil
	default:
		return AlignCenter, fmt.Errorf("unknown alignment %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	switch a {
	case AlignLeading, AlignTrailing, AlignCenter:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("unknown alignment %d", int(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Row is a run of consecutive items that share one horizontal line.
type Row struct {
	Start  int     // Index of the first item in the row
	End    int     // Index one past the last item in the row
	Width  float32 // Summed item widths plus inter-item spacing (no trailing spacing)
	Height float32 // Tallest item in the row
}

// Len returns the number of items in the row.
func (r Row) Len() int {
	return r.End - r.Start
}

// Layout arranges items left to right, wrapping into a new row whenever the
// next item would not fit in the remaining width.
//
// A Layout is a plain value with no state of its own; Measure, Place and Rows
// may be called any number of times with the same inputs and give the same
// answer.
type Layout struct {
	Alignment    Alignment
	Spacing      float32
	LeadingInset float32

	// Logger receives debug output for every pass. Nil disables it.
	Logger *zap.Logger
}

// Default returns a layout with center alignment, 10 units of spacing and a
// 30 unit leading inset.
func Default() Layout {
	return Layout{
		Alignment:    AlignCenter,
		Spacing:      DefaultSpacing,
		LeadingInset: DefaultLeadingInset,
	}
}

func (l Layout) debug(msg string, fields ...zap.Field) {
	if l.Logger != nil {
		l.Logger.Debug(msg, fields...)
	}
}

// Measure returns the size the container needs for items under the proposal.
// The width is always the proposed width: the container fills what it is given.
// The height is the sum of every row's tallest item plus Spacing between rows.
func (l Layout) Measure(p Proposal, items []Item) Size {
	sizes := l.measureItems(p, items)
	defer releaseSizes(sizes)

	rows := l.partition(p.Width, sizes)
	size := Size{Width: p.Width, Height: l.stackHeight(rows)}
	l.debug("flow: measure",
		zap.Float32("max_width", p.Width),
		zap.Int("items", len(items)),
		zap.Int("rows", len(rows)),
		zap.Float32("height", size.Height),
	)
	return size
}

// Place computes an absolute origin for every item inside bounds.
// The returned slice is indexed like items.
func (l Layout) Place(bounds Rect, p Proposal, items []Item) []Placement {
	sizes := l.measureItems(p, items)
	defer releaseSizes(sizes)

	rows := l.partition(bounds.Width, sizes)
	placements := make([]Placement, len(items))

	y := bounds.Y
	for rowIdx, row := range rows {
		x := l.rowStartX(bounds, row)
		for i := row.Start; i < row.End; i++ {
			placements[i] = Placement{
				Index:  i,
				Origin: Point{X: x, Y: y},
				Size:   sizes[i],
				Row:    rowIdx,
			}
			x += sizes[i].Width + l.Spacing
		}
		y += row.Height + l.Spacing
	}

	l.debug("flow: place",
		zap.Float32("bounds_x", bounds.X),
		zap.Float32("bounds_y", bounds.Y),
		zap.Float32("bounds_width", bounds.Width),
		zap.Int("items", len(items)),
		zap.Int("rows", len(rows)),
		zap.Stringer("alignment", l.Alignment),
	)
	return placements
}

// Rows returns the row partition for items at maxWidth.
func (l Layout) Rows(maxWidth float32, p Proposal, items []Item) []Row {
	sizes := l.measureItems(p, items)
	defer releaseSizes(sizes)
	return l.partition(maxWidth, sizes)
}

// measureItems asks every item for its size exactly once per pass.
// The result comes from the pool; callers release it.
func (l Layout) measureItems(p Proposal, items []Item) []Size {
	sizes := acquireSizes(len(items))
	for i, item := range items {
		sizes[i] = item.SizeThatFits(p)
	}
	return sizes
}

// partition groups sizes into rows greedily.
// A row is only closed when it already holds something, so an item wider than
// maxWidth still gets a row to itself instead of producing an empty one.
func (l Layout) partition(maxWidth float32, sizes []Size) []Row {
	var rows []Row
	if len(sizes) == 0 {
		return rows
	}

	var cursor float32
	current := Row{}
	for i, size := range sizes {
		if current.Len() > 0 && cursor+size.Width+l.Spacing > maxWidth {
			rows = append(rows, current)
			current = Row{Start: i, End: i}
			cursor = 0
		}
		if current.Len() > 0 {
			current.Width += l.Spacing
		}
		current.End = i + 1
		current.Width += size.Width
		if size.Height > current.Height {
			current.Height = size.Height
		}
		cursor += size.Width + l.Spacing
	}

	// Don't forget the last row
	if current.Len() > 0 {
		rows = append(rows, current)
	}
	return rows
}

// stackHeight sums row heights with spacing between rows but not after the last.
func (l Layout) stackHeight(rows []Row) float32 {
	var height float32
	for i, row := range rows {
		height += row.Height
		if i < len(rows)-1 {
			height += l.Spacing
		}
	}
	return height
}

// rowStartX resolves the first item's X for a row under the configured alignment.
func (l Layout) rowStartX(bounds Rect, row Row) float32 {
	leading := bounds.X + l.LeadingInset
	trailing := bounds.MaxX() - row.Width

	switch l.Alignment {
	case AlignLeading:
		return leading
	case AlignTrailing:
		return trailing
	default:
		return (leading + trailing) / 2
	}
}
