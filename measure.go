package tagfield

import (
	"errors"

	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/tagfield/internal/ffi"
)

// TextMeasurer reports the rendered size of a run of text in a font.
type TextMeasurer interface {
	MeasureText(text, fontName string, fontSize float32) (width, height float32)
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text, fontName string, fontSize float32) (width, height float32)

// MeasureText calls f.
func (f MeasureFunc) MeasureText(text, fontName string, fontSize float32) (float32, float32) {
	return f(text, fontName, fontSize)
}

// EstimateMeasurer approximates text size from display cells: each cell is
// Advance em wide and a line is LineHeight em tall. Wide (East Asian) runes
// count as two cells.
type EstimateMeasurer struct {
	Advance    float32
	LineHeight float32
}

// DefaultEstimate returns an estimate tuned for a proportional system font.
func DefaultEstimate() EstimateMeasurer {
	return EstimateMeasurer{Advance: 0.6, LineHeight: 1.2}
}

// MeasureText implements TextMeasurer.
func (m EstimateMeasurer) MeasureText(text, _ string, fontSize float32) (float32, float32) {
	advance := m.Advance
	if advance <= 0 {
		advance = 0.6
	}
	lh := m.LineHeight
	if lh <= 0 {
		lh = 1.2
	}
	cells := runewidth.StringWidth(text)
	return float32(cells) * fontSize * advance, fontSize * lh
}

// NativeMeasurer measures through the engine library and falls back when the
// library is missing or a call fails. Engines that only report widths get
// their line height from the fallback.
type NativeMeasurer struct {
	Fallback TextMeasurer
}

// MeasureText implements TextMeasurer.
func (m NativeMeasurer) MeasureText(text, fontName string, fontSize float32) (float32, float32) {
	fallback := m.Fallback
	if fallback == nil {
		fallback = DefaultEstimate()
	}

	metrics, err := ffi.MeasureText(text, fontName, fontSize)
	if err == nil && metrics.Height > 0 {
		return metrics.Width, metrics.Height
	}
	if errors.Is(err, ffi.ErrNoMetrics) {
		if w, werr := ffi.MeasureTextWidth(text, fontName, fontSize); werr == nil {
			_, h := fallback.MeasureText(text, fontName, fontSize)
			return w, h
		}
	}
	return fallback.MeasureText(text, fontName, fontSize)
}

// DefaultMeasurer picks the engine measurer when the library loads, otherwise the estimate.
func DefaultMeasurer() TextMeasurer {
	if HasNativeEngine() && ffi.Available() {
		return NativeMeasurer{Fallback: DefaultEstimate()}
	}
	return DefaultEstimate()
}
