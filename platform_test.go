package tagfield

import (
	"runtime"
	"testing"
)

func TestCurrentPlatform(t *testing.T) {
	p := CurrentPlatform()
	if runtime.GOOS == "linux" && p != PlatformLinux {
		t.Errorf("CurrentPlatform() = %v on linux", p)
	}
	if (p == PlatformIOS || p == PlatformAndroid) && HasPhysicalKeyboard() {
		t.Errorf("%v reported as keyboard-first", p)
	}
	if p == PlatformWeb && HasNativeEngine() {
		t.Error("web builds have no engine library")
	}
}
