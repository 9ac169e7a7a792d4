//go:build ios

package tagfield

// detectDarwinPlatform returns iOS; gomobile sets the ios tag on device and simulator builds
func detectDarwinPlatform() Platform {
	return PlatformIOS
}
