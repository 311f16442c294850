//go:build windows

package handle

// Platform returns the handle strategy for the running operating system
func Platform() Strategy {
	return Win32Strategy{}
}
