//go:build darwin || linux || windows

package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/agiangrant/tagfield/internal/logging"
)

// ============================================================================
// Library Loading
// ============================================================================

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

// Library function pointers (populated by initLibrary)
var (
	fnMeasureTextWidth func(text uintptr, fontName uintptr, fontSize float32) float32
	fnMeasureTextPtr   func(text uintptr, fontName uintptr, fontSize float32, out uintptr) int32
	fnGetScaleFactor   func() float64
)

// textMetricsC matches the C struct layout written by centered_measure_text_ptr.
type textMetricsC struct {
	Width   float32
	Height  float32
	Ascent  float32
	Descent float32
}

// libraryName returns the platform file name of the engine library.
func libraryName() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "libcentered_engine.dylib"
	case "windows":
		return "centered_engine.dll"
	default:
		return "libcentered_engine.so"
	}
}

// getLibraryPath returns the path to the dynamic library
func getLibraryPath() string {
	if path := os.Getenv(LibPathEnvVar); path != "" {
		return path
	}

	libName := libraryName()
	searchPaths := []string{
		libName,
		filepath.Join("engine", "target", "release", libName),
		filepath.Join("engine", "target", "debug", libName),
	}

	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
		if runtime.GOOS == "ios" || runtime.GOOS == "darwin" {
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "Frameworks", libName),
				filepath.Join(execDir, "..", "Frameworks", libName),
			)
		}
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if absPath, err := filepath.Abs(path); err == nil {
				return absPath
			}
			return path
		}
	}

	// Let the system loader search its own paths
	return libName
}

// initLibrary loads the library once and binds the measurement symbols.
func initLibrary() error {
	libOnce.Do(func() {
		libPath := getLibraryPath()

		handle, err := openLibrary(libPath)
		if err != nil {
			libErr = fmt.Errorf("%w: load %s: %v", ErrUnavailable, libPath, err)
			return
		}
		libHandle = handle

		if err := registerTextFunctions(); err != nil {
			libErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return
		}
		logging.Info("ffi: text measurement bound", zap.String("path", libPath))
	})
	return libErr
}

func registerTextFunctions() error {
	bind := func(fptr interface{}, name string) error {
		sym, err := getSymbol(libHandle, name)
		if err != nil {
			return fmt.Errorf("symbol %s: %w", name, err)
		}
		purego.RegisterFunc(fptr, sym)
		return nil
	}

	if err := bind(&fnMeasureTextWidth, "centered_measure_text_width"); err != nil {
		return err
	}
	// Struct returns are not portable through purego, so always use the
	// out-pointer variant. Width-only engines leave it unbound.
	if err := bind(&fnMeasureTextPtr, "centered_measure_text_ptr"); err != nil {
		fnMeasureTextPtr = nil
	}
	// Scale factor is optional; older engines do not export it.
	if err := bind(&fnGetScaleFactor, "centered_get_scale_factor"); err != nil {
		fnGetScaleFactor = nil
	}
	return nil
}

// Available loads the library if needed and reports whether measurement works.
func Available() bool {
	return initLibrary() == nil
}

// ============================================================================
// Text Measurement
// ============================================================================

// MeasureTextWidth returns the advance width of text in the given font.
func MeasureTextWidth(text string, fontName string, fontSize float32) (float32, error) {
	if err := initLibrary(); err != nil {
		return 0, err
	}

	textBytes := append([]byte(text), 0)
	fontBytes := append([]byte(fontName), 0)

	result := fnMeasureTextWidth(
		uintptr(unsafe.Pointer(&textBytes[0])),
		uintptr(unsafe.Pointer(&fontBytes[0])),
		fontSize,
	)

	runtime.KeepAlive(textBytes)
	runtime.KeepAlive(fontBytes)
	return result, nil
}

// MeasureText returns the full metrics of text in the given font.
func MeasureText(text string, fontName string, fontSize float32) (TextMetrics, error) {
	if err := initLibrary(); err != nil {
		return TextMetrics{}, err
	}
	if fnMeasureTextPtr == nil {
		return TextMetrics{}, ErrNoMetrics
	}

	textBytes := append([]byte(text), 0)
	fontBytes := append([]byte(fontName), 0)

	var out textMetricsC
	status := fnMeasureTextPtr(
		uintptr(unsafe.Pointer(&textBytes[0])),
		uintptr(unsafe.Pointer(&fontBytes[0])),
		fontSize,
		uintptr(unsafe.Pointer(&out)),
	)
	runtime.KeepAlive(textBytes)
	runtime.KeepAlive(fontBytes)

	if status != 0 {
		return TextMetrics{}, fmt.Errorf("ffi: measure text failed with status %d", status)
	}
	return TextMetrics{
		Width:   out.Width,
		Height:  out.Height,
		Ascent:  out.Ascent,
		Descent: out.Descent,
	}, nil
}

// ScaleFactor returns the display scale factor reported by the engine, or 1.
func ScaleFactor() float64 {
	if initLibrary() != nil || fnGetScaleFactor == nil {
		return 1
	}
	if s := fnGetScaleFactor(); s > 0 {
		return s
	}
	return 1
}
