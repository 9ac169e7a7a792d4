package tagfield

import "runtime"

// Platform represents the current operating system/platform
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the field is running on
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return detectDarwinPlatform()
	case "ios":
		return PlatformIOS
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

// HasPhysicalKeyboard returns true if the platform typically has a physical keyboard.
// Without one, focus changes show and hide the on-screen keyboard.
func HasPhysicalKeyboard() bool {
	p := CurrentPlatform()
	return p == PlatformMacOS || p == PlatformLinux || p == PlatformWindows
}

// HasNativeEngine returns true if the platform can load the engine library for text metrics.
func HasNativeEngine() bool {
	return CurrentPlatform() != PlatformWeb && CurrentPlatform() != PlatformUnknown
}
