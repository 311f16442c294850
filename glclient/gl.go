package glclient

import (
	"fmt"

	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
)

// GL is the slice of the OpenGL API the adapter calls. Every method requires the client's
// context to be current.
type GL interface {
	Version() string
	GetInteger(pname uint32) int32
	BindTexture(target uint32, texture uint32)
	Finish()
	DebugMessageInsert(message string)
}

const (
	glTexture2D                  uint32 = 0x0DE1
	glTextureBinding2D           uint32 = 0x8069
	glTextureCubeMap             uint32 = 0x8513
	glTextureBindingCubeMap      uint32 = 0x8514
	glTexture2DArray             uint32 = 0x8C1A
	glTextureBinding2DArray      uint32 = 0x8C1D
	glTextureCubeMapArray        uint32 = 0x9009
	glTextureBindingCubeMapArray uint32 = 0x900A

	glMaxTextureSize uint32 = 0x0D33
)

const es2VersionPrefix = "OpenGL ES 2."

// TextureTarget returns the texture target that images of a swapchain with these counts are bound
// to, and the query that reads the texture currently bound to it.
func TextureTarget(faceCount, arraySize int) (target uint32, binding uint32) {
	switch {
	case faceCount == 6 && arraySize > 1:
		return glTextureCubeMapArray, glTextureBindingCubeMapArray
	case faceCount == 6:
		return glTextureCubeMap, glTextureBindingCubeMap
	case arraySize > 1:
		return glTexture2DArray, glTextureBinding2DArray
	default:
		return glTexture2D, glTextureBinding2D
	}
}

// ContextReason says why the adapter needs the client's context
type ContextReason int

const (
	// ContextReasonSynchronize is used while fencing or finishing submitted work
	ContextReasonSynchronize ContextReason = iota
	ContextReasonOther
)

func (r ContextReason) String() string {
	switch r {
	case ContextReasonSynchronize:
		return "ContextReasonSynchronize"
	case ContextReasonOther:
		return "ContextReasonOther"
	}
	return fmt.Sprintf("ContextReason(%d)", int(r))
}

// ContextFuncs makes the client's context current and releases it again. Begin must leave
// nothing to undo when it fails.
type ContextFuncs struct {
	Begin func(reason ContextReason) error
	End   func(reason ContextReason)
}

// ImportedImages are the GL textures a SwapchainFactory built over a native swapchain's images
type ImportedImages struct {
	Textures []uint32
	// Release deletes the textures and whatever backs them. It runs with the context current.
	Release func()
}

// SwapchainFactory turns a native swapchain's images into GL textures. info describes the
// swapchain in GL terms. It runs with the context current.
type SwapchainFactory func(info *swapchain.CreateInfo, native NativeSwapchain) (ImportedImages, error)

// InsertFence inserts a fence after all submitted GL work and returns a handle the compositor can
// wait on
type InsertFence func() (handle.Buffer, error)
