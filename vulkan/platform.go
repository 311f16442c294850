package vulkan

import (
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// PlatformMemory provides the platform-specific external memory entry points (memory fd, Win32
// handle, AHardwareBuffer). Each platform binds a different extension, so the Device takes them
// from the caller.
type PlatformMemory interface {
	// ExportMemory creates a new handle to memory. The caller owns the handle.
	ExportMemory(device core1_0.Device, memory core1_0.DeviceMemory, handleType handle.Type) (handle.Buffer, common.VkResult, error)
	// ImportOptions returns the allocation descriptor fragment that imports buffer, followed by next
	ImportOptions(handleType handle.Type, buffer handle.Buffer, next common.Options) (common.Options, error)
	// BufferProperties queries the requirements buffer imposes on memory imported from it
	BufferProperties(device core1_0.Device, buffer handle.Buffer, handleType handle.Type) (gpu.ExternalBufferProperties, common.VkResult, error)
}
