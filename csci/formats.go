package csci

import (
	"fmt"

	"github.com/vkngwrapper/core/v2/core1_0"
)

// Vulkan formats that compositor swapchain images can use
const (
	FormatR5G6B5UnormPack16      core1_0.Format = 4
	FormatR8G8B8Unorm            core1_0.Format = 23
	FormatR8G8B8SRGB             core1_0.Format = 29
	FormatB8G8R8Unorm            core1_0.Format = 30
	FormatR8G8B8A8Unorm          core1_0.Format = 37
	FormatR8G8B8A8SRGB           core1_0.Format = 43
	FormatB8G8R8A8Unorm          core1_0.Format = 44
	FormatB8G8R8A8SRGB           core1_0.Format = 50
	FormatA2B10G10R10UnormPack32 core1_0.Format = 64
	FormatR16G16B16Unorm         core1_0.Format = 84
	FormatR16G16B16SFloat        core1_0.Format = 90
	FormatR16G16B16A16Unorm      core1_0.Format = 91
	FormatR16G16B16A16SFloat     core1_0.Format = 97
	FormatR32SFloat              core1_0.Format = 100
	FormatD16Unorm               core1_0.Format = 124
	FormatX8D24UnormPack32       core1_0.Format = 125
	FormatD32SFloat              core1_0.Format = 126
	FormatS8Uint                 core1_0.Format = 127
	FormatD24UnormS8Uint         core1_0.Format = 129
	FormatD32SFloatS8Uint        core1_0.Format = 130
)

// FormatClass groups formats by which image aspects they carry
type FormatClass int

const (
	FormatClassColor FormatClass = iota
	FormatClassDepthStencil
	FormatClassDepth
	FormatClassStencil
)

var formatClassMapping = make(map[FormatClass]string)

func (c FormatClass) String() string {
	if str, ok := formatClassMapping[c]; ok {
		return str
	}
	return fmt.Sprintf("FormatClass(%d)", int(c))
}

type formatEntry struct {
	format core1_0.Format
	name   string
	class  FormatClass
}

// Ordered by preference, the way a compositor advertises them
var supportedFormats = []formatEntry{
	{FormatR16G16B16A16Unorm, "VK_FORMAT_R16G16B16A16_UNORM", FormatClassColor},
	{FormatR16G16B16A16SFloat, "VK_FORMAT_R16G16B16A16_SFLOAT", FormatClassColor},
	{FormatR16G16B16Unorm, "VK_FORMAT_R16G16B16_UNORM", FormatClassColor},
	{FormatR16G16B16SFloat, "VK_FORMAT_R16G16B16_SFLOAT", FormatClassColor},
	{FormatA2B10G10R10UnormPack32, "VK_FORMAT_A2B10G10R10_UNORM_PACK32", FormatClassColor},
	{FormatB8G8R8A8SRGB, "VK_FORMAT_B8G8R8A8_SRGB", FormatClassColor},
	{FormatR8G8B8A8SRGB, "VK_FORMAT_R8G8B8A8_SRGB", FormatClassColor},
	{FormatB8G8R8A8Unorm, "VK_FORMAT_B8G8R8A8_UNORM", FormatClassColor},
	{FormatR8G8B8A8Unorm, "VK_FORMAT_R8G8B8A8_UNORM", FormatClassColor},
	{FormatR8G8B8SRGB, "VK_FORMAT_R8G8B8_SRGB", FormatClassColor},
	{FormatR8G8B8Unorm, "VK_FORMAT_R8G8B8_UNORM", FormatClassColor},
	{FormatB8G8R8Unorm, "VK_FORMAT_B8G8R8_UNORM", FormatClassColor},
	{FormatR5G6B5UnormPack16, "VK_FORMAT_R5G6B5_UNORM_PACK16", FormatClassColor},
	{FormatR32SFloat, "VK_FORMAT_R32_SFLOAT", FormatClassColor},
	{FormatD16Unorm, "VK_FORMAT_D16_UNORM", FormatClassDepth},
	{FormatX8D24UnormPack32, "VK_FORMAT_X8_D24_UNORM_PACK32", FormatClassDepth},
	{FormatD32SFloat, "VK_FORMAT_D32_SFLOAT", FormatClassDepth},
	{FormatD24UnormS8Uint, "VK_FORMAT_D24_UNORM_S8_UINT", FormatClassDepthStencil},
	{FormatD32SFloatS8Uint, "VK_FORMAT_D32_SFLOAT_S8_UINT", FormatClassDepthStencil},
	{FormatS8Uint, "VK_FORMAT_S8_UINT", FormatClassStencil},
}

var formatIndex = make(map[core1_0.Format]formatEntry)

func init() {
	formatClassMapping[FormatClassColor] = "FormatClassColor"
	formatClassMapping[FormatClassDepthStencil] = "FormatClassDepthStencil"
	formatClassMapping[FormatClassDepth] = "FormatClassDepth"
	formatClassMapping[FormatClassStencil] = "FormatClassStencil"

	for _, entry := range supportedFormats {
		formatIndex[entry.format] = entry
	}
}

// Classify returns the aspect class of a compositor swapchain format
func Classify(format core1_0.Format) (FormatClass, bool) {
	entry, ok := formatIndex[format]
	return entry.class, ok
}

func mustClassify(format core1_0.Format) FormatClass {
	class, ok := Classify(format)
	if !ok {
		panic(fmt.Sprintf("format %s is not a compositor swapchain format", FormatName(format)))
	}
	return class
}

// FormatName returns the Vulkan name of a compositor swapchain format, or a fixed sentinel
// naming the raw value for any other format
func FormatName(format core1_0.Format) string {
	if entry, ok := formatIndex[format]; ok {
		return entry.name
	}
	return fmt.Sprintf("UNKNOWN_FORMAT(%d)", int(format))
}

// SupportedFormats returns every compositor swapchain format in preference order
func SupportedFormats() []core1_0.Format {
	formats := make([]core1_0.Format, 0, len(supportedFormats))
	for _, entry := range supportedFormats {
		formats = append(formats, entry.format)
	}
	return formats
}

// IsSRGB reports whether format stores sRGB-encoded color
func IsSRGB(format core1_0.Format) bool {
	switch format {
	case FormatR8G8B8SRGB, FormatR8G8B8A8SRGB, FormatB8G8R8A8SRGB:
		return true
	}
	return false
}
