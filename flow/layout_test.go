package flow

import (
	"math/rand"
	"testing"
)

func fixedItems(sizes ...Size) []Item {
	items := make([]Item, len(sizes))
	for i, s := range sizes {
		items[i] = Fixed(s)
	}
	return items
}

func widths(ws ...float32) []Item {
	items := make([]Item, len(ws))
	for i, w := range ws {
		items[i] = Fixed{Width: w, Height: 20}
	}
	return items
}

func TestRowsPartition(t *testing.T) {
	tests := []struct {
		name     string
		maxWidth float32
		items    []Item
		want     [][2]int // [start, end) per row
	}{
		{
			name:     "three forty-wide items at 100",
			maxWidth: 100,
			items:    widths(40, 40, 40),
			want:     [][2]int{{0, 2}, {2, 3}},
		},
		{
			name:     "everything fits on one row",
			maxWidth: 500,
			items:    widths(40, 40, 40),
			want:     [][2]int{{0, 3}},
		},
		{
			name:     "oversized item gets its own row",
			maxWidth: 100,
			items:    widths(30, 250, 30),
			want:     [][2]int{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:     "oversized first item does not produce an empty row",
			maxWidth: 50,
			items:    widths(80, 10),
			want:     [][2]int{{0, 1}, {1, 2}},
		},
		{
			name:     "unconstrained width puts every item on its own row",
			maxWidth: 0,
			items:    widths(10, 10, 10),
			want:     [][2]int{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:     "no items",
			maxWidth: 100,
			items:    nil,
			want:     nil,
		},
	}

	l := Layout{Spacing: 10}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := l.Rows(tt.maxWidth, Proposal{Width: tt.maxWidth}, tt.items)
			if len(rows) != len(tt.want) {
				t.Fatalf("got %d rows, want %d (%+v)", len(rows), len(tt.want), rows)
			}
			for i, row := range rows {
				if row.Start != tt.want[i][0] || row.End != tt.want[i][1] {
					t.Errorf("row %d = [%d,%d), want [%d,%d)", i, row.Start, row.End, tt.want[i][0], tt.want[i][1])
				}
			}
		})
	}
}

func TestRowWidthExcludesTrailingSpacing(t *testing.T) {
	l := Layout{Spacing: 10}
	rows := l.Rows(100, Proposal{Width: 100}, widths(40, 40, 40))
	if rows[0].Width != 90 {
		t.Errorf("rows[0].Width = %v, want 90", rows[0].Width)
	}
	if rows[1].Width != 40 {
		t.Errorf("rows[1].Width = %v, want 40", rows[1].Width)
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name  string
		width float32
		items []Item
		want  Size
	}{
		{
			name:  "single row",
			width: 300,
			items: fixedItems(Size{50, 20}, Size{50, 34}),
			want:  Size{300, 34},
		},
		{
			name:  "two rows use max height of each plus one spacing",
			width: 100,
			items: fixedItems(Size{40, 20}, Size{40, 30}, Size{40, 15}),
			want:  Size{100, 30 + 10 + 15},
		},
		{
			name:  "zero items",
			width: 120,
			items: nil,
			want:  Size{120, 0},
		},
	}

	l := Layout{Spacing: 10}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Measure(Proposal{Width: tt.width}, tt.items)
			if got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlaceAlignment(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 200, Height: 100}
	items := widths(40, 40) // row width = 90

	tests := []struct {
		alignment Alignment
		wantX     [2]float32
	}{
		{AlignLeading, [2]float32{30, 80}},
		{AlignTrailing, [2]float32{110, 160}},
		{AlignCenter, [2]float32{70, 120}},
	}

	for _, tt := range tests {
		t.Run(tt.alignment.String(), func(t *testing.T) {
			l := Layout{Alignment: tt.alignment, Spacing: 10, LeadingInset: 30}
			got := l.Place(bounds, Proposal{Width: bounds.Width}, items)
			for i, p := range got {
				if p.Origin.X != tt.wantX[i] {
					t.Errorf("item %d X = %v, want %v", i, p.Origin.X, tt.wantX[i])
				}
				if p.Origin.Y != 0 {
					t.Errorf("item %d Y = %v, want 0", i, p.Origin.Y)
				}
			}
		})
	}
}

func TestPlaceAdvancesRows(t *testing.T) {
	l := Layout{Alignment: AlignLeading, Spacing: 10, LeadingInset: 0}
	bounds := Rect{X: 5, Y: 7, Width: 100, Height: 200}
	items := fixedItems(Size{40, 20}, Size{40, 30}, Size{40, 15})

	got := l.Place(bounds, Proposal{Width: 100}, items)
	want := []Point{{5, 7}, {55, 7}, {5, 7 + 30 + 10}}
	for i, p := range got {
		if p.Origin != want[i] {
			t.Errorf("item %d origin = %+v, want %+v", i, p.Origin, want[i])
		}
		if p.Index != i {
			t.Errorf("item %d index = %d", i, p.Index)
		}
	}
	if got[2].Row != 1 {
		t.Errorf("item 2 row = %d, want 1", got[2].Row)
	}
}

func TestMeasureMatchesPlacement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := Layout{Alignment: AlignLeading, Spacing: 10}

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(20)
		items := make([]Item, n)
		for i := range items {
			items[i] = Fixed{Width: float32(5 + rng.Intn(120)), Height: float32(10 + rng.Intn(40))}
		}
		maxWidth := float32(50 + rng.Intn(300))

		size := l.Measure(Proposal{Width: maxWidth}, items)
		placements := l.Place(Rect{Width: maxWidth}, Proposal{Width: maxWidth}, items)
		rows := l.Rows(maxWidth, Proposal{Width: maxWidth}, items)

		var bottom float32
		for _, p := range placements {
			if b := p.Origin.Y + p.Size.Height; b > bottom {
				bottom = b
			}
		}

		var want float32
		for _, r := range rows {
			want += r.Height
		}
		if len(rows) > 1 {
			want += l.Spacing * float32(len(rows)-1)
		}
		if size.Height != want {
			t.Fatalf("iter %d: Measure height %v, want %v", iter, size.Height, want)
		}
		if n > 0 && bottom > size.Height {
			t.Fatalf("iter %d: placed content bottom %v exceeds measured height %v", iter, bottom, size.Height)
		}
	}
}

func TestRowsRespectMaxWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := Layout{Spacing: 10}

	for iter := 0; iter < 300; iter++ {
		n := 1 + rng.Intn(25)
		items := make([]Item, n)
		var widest float32
		for i := range items {
			w := float32(1 + rng.Intn(90))
			if w > widest {
				widest = w
			}
			items[i] = Fixed{Width: w, Height: 10}
		}
		maxWidth := widest + l.Spacing + float32(rng.Intn(200))

		rows := l.Rows(maxWidth, Proposal{Width: maxWidth}, items)
		next := 0
		for _, row := range rows {
			if row.Start != next {
				t.Fatalf("iter %d: row starts at %d, want %d (order not preserved)", iter, row.Start, next)
			}
			if row.Len() == 0 {
				t.Fatalf("iter %d: empty row", iter)
			}
			if row.Width > maxWidth {
				t.Fatalf("iter %d: row width %v exceeds %v", iter, row.Width, maxWidth)
			}
			next = row.End
		}
		if next != n {
			t.Fatalf("iter %d: rows cover %d items, want %d", iter, next, n)
		}
	}
}

func TestItemFuncReceivesProposal(t *testing.T) {
	var seen Proposal
	item := ItemFunc(func(p Proposal) Size {
		seen = p
		return Size{10, 10}
	})
	Default().Measure(Proposal{Width: 321}, []Item{item})
	if seen.Width != 321 {
		t.Errorf("item saw proposal width %v, want 321", seen.Width)
	}
}

func TestAlignmentText(t *testing.T) {
	for _, a := range []Alignment{AlignLeading, AlignTrailing, AlignCenter} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", a, err)
		}
		var back Alignment
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != a {
			t.Errorf("round trip %v -> %q -> %v", a, text, back)
		}
	}

	if _, err := ParseAlignment("diagonal"); err == nil {
		t.Error("expected error for unknown alignment")
	}
}
