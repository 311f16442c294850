package glclient

import (
	"time"

	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
)

// BarrierDirection says which side of the boundary is about to use a swapchain image
type BarrierDirection int

const (
	BarrierToApp BarrierDirection = iota
	BarrierToCompositor
)

// Swapchain is a native swapchain whose images the client sees as GL textures
type Swapchain struct {
	compositor *Compositor
	native     NativeSwapchain
	info       swapchain.CreateInfo
	images     ImportedImages

	// TextureTarget is the target every texture of this swapchain binds to
	TextureTarget uint32
}

// Info describes the swapchain with its GL internal format
func (s *Swapchain) Info() swapchain.CreateInfo {
	return s.info
}

// Textures returns one GL texture name per image
func (s *Swapchain) Textures() []uint32 {
	return s.images.Textures
}

func (s *Swapchain) ImageCount() int {
	return s.native.ImageCount()
}

func (s *Swapchain) AcquireImage() (int, error) {
	return s.native.AcquireImage()
}

func (s *Swapchain) WaitImage(timeout time.Duration, index int) error {
	return s.native.WaitImage(timeout, index)
}

func (s *Swapchain) ReleaseImage(index int) error {
	return s.native.ReleaseImage(index)
}

// Barrier is a no-op. GL orders access to the images through the fence or finish at commit.
func (s *Swapchain) Barrier(direction BarrierDirection, index int) error {
	return nil
}

// Destroy deletes the GL textures with the context current, then releases the native swapchain.
// The native swapchain is released even if the context could not be made current.
func (s *Swapchain) Destroy() error {
	var err error
	if s.images.Release != nil {
		err = s.compositor.withContext(ContextReasonOther, func() error {
			s.images.Release()
			return nil
		})
	}

	s.native.Release()
	*s = Swapchain{}
	return err
}
