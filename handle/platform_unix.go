//go:build unix && !android

package handle

// Platform returns the handle strategy for the running operating system
func Platform() Strategy {
	return FDStrategy{}
}
