package glclient

import "github.com/cockroachdb/errors"

var (
	// ErrFormatUnsupported means the GL format has no compositor equivalent or the compositor
	// does not offer it
	ErrFormatUnsupported = errors.New("swapchain format not supported")
	// ErrFlagValidButUnsupported means a swapchain request is legal but this client cannot honor it
	ErrFlagValidButUnsupported = errors.New("swapchain flag valid but unsupported")
	// ErrOpenGL means the GL context or a GL-side import failed
	ErrOpenGL = errors.New("OpenGL error")
)
