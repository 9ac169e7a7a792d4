package tagfield

import (
	"encoding/json"
	"testing"

	"github.com/agiangrant/tagfield/flow"
	"github.com/agiangrant/tagfield/tags"
)

func TestChipKinds(t *testing.T) {
	c := tags.New("go")
	c = tags.Reduce(c, tags.Tap{ID: c.Last().ID})
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		chip     Chip
		wantKind ChipKind
		filled   bool
	}{
		{
			name:     "committed",
			chip:     newChip(c.At(0), false, 2, cfg),
			wantKind: ChipCommitted,
			filled:   true,
		},
		{
			name:     "editing",
			chip:     newChip(c.Last(), true, 0, cfg),
			wantKind: ChipEditing,
			filled:   false,
		},
		{
			name:     "placeholder",
			chip:     newChip(tags.New().Last(), false, 0, cfg),
			wantKind: ChipPlaceholder,
			filled:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.chip.Kind != tt.wantKind {
				t.Errorf("chip.Kind = %v, want %v", tt.chip.Kind, tt.wantKind)
			}
			if tt.chip.Filled != tt.filled {
				t.Errorf("chip.Filled = %v, want %v", tt.chip.Filled, tt.filled)
			}
			if tt.chip.PaddingY != cfg.Chip.PaddingY {
				t.Errorf("chip.PaddingY = %v, want %v", tt.chip.PaddingY, cfg.Chip.PaddingY)
			}
		})
	}
}

func TestChipLabel(t *testing.T) {
	c := Chip{Hint: "Tag"}
	if c.Label() != "Tag" || !c.ShowsHint() {
		t.Errorf("empty chip label = %q, want hint", c.Label())
	}

	c.Text = "fruit"
	if c.Label() != "fruit" || c.ShowsHint() {
		t.Errorf("label = %q, want fruit", c.Label())
	}
}

func TestChipSerialization(t *testing.T) {
	c := newChip(tags.New("fruit").At(0), false, 5, DefaultConfig())

	jsonStr, err := c.ToJSON()
	if err != nil {
		t.Fatalf("failed to serialize chip: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		t.Fatalf("failed to parse serialized JSON: %v", err)
	}

	if parsed["kind"] != string(ChipCommitted) {
		t.Errorf("expected kind=Committed, got %v", parsed["kind"])
	}
	if parsed["text"] != "fruit" {
		t.Errorf("expected text=fruit, got %v", parsed["text"])
	}
	if parsed["id"] != c.ID.String() {
		t.Errorf("expected id=%s, got %v", c.ID, parsed["id"])
	}
}

func TestChipItemSize(t *testing.T) {
	cfg := DefaultConfig()
	committed := newChip(tags.New("fruit").At(0), false, 5, cfg)
	placeholder := newChip(tags.New().Last(), false, 0, cfg)

	got := ChipItem(committed, monoMeasurer).SizeThatFits(flow.Proposal{Width: 100})
	if want := (flow.Size{Width: 70, Height: 40}); got != want {
		t.Errorf("committed size = %+v, want %+v", got, want)
	}

	// Placeholders are measured by their hint and carry no horizontal padding.
	got = ChipItem(placeholder, monoMeasurer).SizeThatFits(flow.Proposal{})
	if want := (flow.Size{Width: 30, Height: 40}); got != want {
		t.Errorf("placeholder size = %+v, want %+v", got, want)
	}
}

func BenchmarkChips(b *testing.B) {
	f := New(DefaultConfig(), WithMeasurer(monoMeasurer), WithTags("go", "rust", "zig", "odin", "c"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Layout(flow.Rect{Width: 320, Height: 200})
	}
}
