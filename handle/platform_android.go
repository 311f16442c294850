//go:build android

package handle

// Platform returns the handle strategy for the running operating system. AHardwareBuffer
// reference counting lives in the NDK, so callers that hold their own references should build
// a strategy with NewAHardwareBufferStrategy instead.
func Platform() Strategy {
	return NewAHardwareBufferStrategy(nil)
}
