//go:build !darwin && !linux && !windows

package ffi

// Available reports false: no engine binding exists for this platform.
func Available() bool {
	return false
}

// MeasureTextWidth always fails with ErrUnavailable on this platform.
func MeasureTextWidth(text string, fontName string, fontSize float32) (float32, error) {
	return 0, ErrUnavailable
}

// MeasureText always fails with ErrUnavailable on this platform.
func MeasureText(text string, fontName string, fontSize float32) (TextMetrics, error) {
	return TextMetrics{}, ErrUnavailable
}

// ScaleFactor returns 1.
func ScaleFactor() float64 {
	return 1
}
