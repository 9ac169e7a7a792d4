package ffi

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestMissingLibraryIsUnavailable(t *testing.T) {
	t.Setenv(LibPathEnvVar, filepath.Join(t.TempDir(), "does-not-exist.so"))

	if Available() {
		t.Skip("an engine library is loaded in this process")
	}
	if _, err := MeasureTextWidth("tag", "system", 16); !errors.Is(err, ErrUnavailable) {
		t.Errorf("MeasureTextWidth error = %v, want ErrUnavailable", err)
	}
	if _, err := MeasureText("tag", "system", 16); !errors.Is(err, ErrUnavailable) {
		t.Errorf("MeasureText error = %v, want ErrUnavailable", err)
	}
	if s := ScaleFactor(); s != 1 {
		t.Errorf("ScaleFactor() = %v, want 1", s)
	}
}
