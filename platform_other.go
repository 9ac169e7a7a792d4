//go:build !darwin

package tagfield

// detectDarwinPlatform is unreachable off darwin
func detectDarwinPlatform() Platform {
	return PlatformUnknown
}
