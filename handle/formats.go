package handle

import "github.com/vkngwrapper/core/v2/core1_0"

// Vulkan formats that have an AHardwareBuffer equivalent. R8G8B8A8_SRGB is carried as
// AHARDWAREBUFFER_FORMAT_R8G8B8A8_UNORM.
var ahardwareBufferFormats = map[core1_0.Format]struct{}{
	1000156010: {}, // R10X6G10X6B10X6A10X6_UNORM_4PACK16
	124:        {}, // D16_UNORM
	125:        {}, // X8_D24_UNORM_PACK32
	129:        {}, // D24_UNORM_S8_UINT
	126:        {}, // D32_SFLOAT
	130:        {}, // D32_SFLOAT_S8_UINT
	64:         {}, // A2B10G10R10_UNORM_PACK32
	97:         {}, // R16G16B16A16_SFLOAT
	81:         {}, // R16G16_UINT
	74:         {}, // R16_UINT
	4:          {}, // R5G6B5_UNORM_PACK16
	37:         {}, // R8G8B8A8_UNORM
	43:         {}, // R8G8B8A8_SRGB
	23:         {}, // R8G8B8_UNORM
	9:          {}, // R8_UNORM
	127:        {}, // S8_UINT
}

// HasAHardwareBufferFormat reports whether format can back an AHardwareBuffer
func HasAHardwareBufferFormat(format core1_0.Format) bool {
	_, ok := ahardwareBufferFormats[format]
	return ok
}
