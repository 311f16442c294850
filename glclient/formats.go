package glclient

import (
	"fmt"

	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
)

// GLFormat is an OpenGL sized internal format
type GLFormat int64

const (
	GLFormatInvalid     GLFormat = 0
	GLRGB8              GLFormat = 0x8051
	GLRGB16             GLFormat = 0x8054
	GLRGBA8             GLFormat = 0x8058
	GLRGB10A2           GLFormat = 0x8059
	GLRGBA16            GLFormat = 0x805B
	GLDepthComponent16  GLFormat = 0x81A5
	GLRGBA16F           GLFormat = 0x881A
	GLRGB16F            GLFormat = 0x881B
	GLDepth24Stencil8   GLFormat = 0x88F0
	GLSRGB8             GLFormat = 0x8C41
	GLSRGB8Alpha8       GLFormat = 0x8C43
	GLDepthComponent32F GLFormat = 0x8CAC
	GLDepth32FStencil8  GLFormat = 0x8CAD
)

var glFormatNames = map[GLFormat]string{
	GLRGB8:              "GL_RGB8",
	GLRGB16:             "GL_RGB16",
	GLRGBA8:             "GL_RGBA8",
	GLRGB10A2:           "GL_RGB10_A2",
	GLRGBA16:            "GL_RGBA16",
	GLDepthComponent16:  "GL_DEPTH_COMPONENT16",
	GLRGBA16F:           "GL_RGBA16F",
	GLRGB16F:            "GL_RGB16F",
	GLDepth24Stencil8:   "GL_DEPTH24_STENCIL8",
	GLSRGB8:             "GL_SRGB8",
	GLSRGB8Alpha8:       "GL_SRGB8_ALPHA8",
	GLDepthComponent32F: "GL_DEPTH_COMPONENT32F",
	GLDepth32FStencil8:  "GL_DEPTH32F_STENCIL8",
}

func (f GLFormat) String() string {
	if name, ok := glFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("GLFormat(0x%X)", int64(f))
}

// glToVulkan lists every GL format that has a compositor equivalent. RGB8 and RGBA8 are
// translatable but lack the color precision applications should use.
var glToVulkan = map[GLFormat]swapchain.Format{
	GLRGB8:              swapchain.Format(csci.FormatR8G8B8Unorm),
	GLSRGB8:             swapchain.Format(csci.FormatR8G8B8SRGB),
	GLRGBA8:             swapchain.Format(csci.FormatR8G8B8A8Unorm),
	GLSRGB8Alpha8:       swapchain.Format(csci.FormatR8G8B8A8SRGB),
	GLRGB10A2:           swapchain.Format(csci.FormatA2B10G10R10UnormPack32),
	GLRGB16:             swapchain.Format(csci.FormatR16G16B16Unorm),
	GLRGB16F:            swapchain.Format(csci.FormatR16G16B16SFloat),
	GLRGBA16:            swapchain.Format(csci.FormatR16G16B16A16Unorm),
	GLRGBA16F:           swapchain.Format(csci.FormatR16G16B16A16SFloat),
	GLDepthComponent16:  swapchain.Format(csci.FormatD16Unorm),
	GLDepthComponent32F: swapchain.Format(csci.FormatD32SFloat),
	GLDepth24Stencil8:   swapchain.Format(csci.FormatD24UnormS8Uint),
	GLDepth32FStencil8:  swapchain.Format(csci.FormatD32SFloatS8Uint),
}

var vulkanToGL = make(map[swapchain.Format]GLFormat, len(glToVulkan))

func init() {
	for gl, vk := range glToVulkan {
		vulkanToGL[vk] = gl
	}
}

// FormatToVulkan translates a GL format into the compositor's format. It returns 0 when there is
// no equivalent.
func FormatToVulkan(format GLFormat) swapchain.Format {
	return glToVulkan[format]
}

// FormatFromVulkan translates a compositor format into a GL format. It returns GLFormatInvalid
// when there is no equivalent, which includes the BGRA, packed 16-bit, R32 and stencil-only
// formats.
func FormatFromVulkan(format swapchain.Format) GLFormat {
	return vulkanToGL[format]
}
