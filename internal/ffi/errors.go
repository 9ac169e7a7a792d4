// Package ffi binds the text measurement entry points of the native engine
// library through purego, without cgo.
//
// Only measurement is bound: chips need real glyph metrics to size
// themselves, while painting stays with the host toolkit. When the library
// cannot be loaded every call returns ErrUnavailable and callers fall back to
// an estimate.
package ffi

import "errors"

// ErrUnavailable is returned when the engine library is missing or was built
// without the text measurement symbols.
var ErrUnavailable = errors.New("ffi: engine library unavailable")

// ErrNoMetrics is returned by MeasureText when the loaded engine only
// exports the width entry point.
var ErrNoMetrics = errors.New("ffi: engine has no full text metrics")

// LibPathEnvVar overrides the library search.
const LibPathEnvVar = "TAGFIELD_ENGINE_LIB"

// TextMetrics is the measured box of a run of text.
type TextMetrics struct {
	Width   float32
	Height  float32
	Ascent  float32
	Descent float32
}
