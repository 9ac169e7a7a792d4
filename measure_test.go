package tagfield

import (
	"math"
	"testing"

	"github.com/agiangrant/tagfield/internal/ffi"
)

func TestEstimateMeasurer(t *testing.T) {
	m := EstimateMeasurer{Advance: 0.5, LineHeight: 1.5}

	tests := []struct {
		name  string
		text  string
		width float32
	}{
		{"empty", "", 0},
		{"ascii", "fruit", 50},
		{"wide runes count twice", "日本", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := m.MeasureText(tt.text, "system", 20)
			if w != tt.width {
				t.Errorf("width = %v, want %v", w, tt.width)
			}
			if h != 30 {
				t.Errorf("height = %v, want 30", h)
			}
		})
	}
}

func TestEstimateMeasurerZeroValue(t *testing.T) {
	var m EstimateMeasurer
	w, h := m.MeasureText("ab", "", 10)
	if math.Abs(float64(w)-12) > 1e-4 || math.Abs(float64(h)-12) > 1e-4 {
		t.Errorf("zero value measured (%v, %v), want (12, 12)", w, h)
	}
}

func TestNativeMeasurerFallsBack(t *testing.T) {
	t.Setenv(ffi.LibPathEnvVar, "/nonexistent/libcentered_engine.so")
	if ffi.Available() {
		t.Skip("an engine library is loaded in this process")
	}

	called := false
	m := NativeMeasurer{Fallback: MeasureFunc(func(text, _ string, _ float32) (float32, float32) {
		called = true
		return 7, 9
	})}

	w, h := m.MeasureText("x", "system", 12)
	if !called || w != 7 || h != 9 {
		t.Errorf("expected fallback measure, got (%v, %v) called=%v", w, h, called)
	}
}
