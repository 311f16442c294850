package gpu

import (
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_external_memory_capabilities"
)

// Image is an opaque reference to a driver image object. The zero value is the null image.
type Image uint64

// DeviceMemory is an opaque reference to a driver memory allocation. The zero value is the null
// allocation.
type DeviceMemory uint64

const (
	NullImage  Image        = 0
	NullMemory DeviceMemory = 0
)

// ExternalMemoryFeatures describe what a driver can do with an external memory handle type
type ExternalMemoryFeatures = khr_external_memory_capabilities.ExternalMemoryFeatureFlags

const (
	ExternalMemoryFeatureDedicatedOnly ExternalMemoryFeatures = 0x00000001
	ExternalMemoryFeatureExportable    ExternalMemoryFeatures = 0x00000002
	ExternalMemoryFeatureImportable    ExternalMemoryFeatures = 0x00000004
)

// ExternalImageFormatInfo describes an image whose memory would be shared through HandleType
type ExternalImageFormatInfo struct {
	Format     core1_0.Format
	Tiling     core1_0.ImageTiling
	Usage      core1_0.ImageUsageFlags
	Flags      core1_0.ImageCreateFlags
	HandleType handle.Type
}

// ExternalMemoryProperties is the driver's answer to an ExternalImageFormatInfo query
type ExternalMemoryProperties struct {
	Features                      ExternalMemoryFeatures
	ExportFromImportedHandleTypes handle.Type
	CompatibleHandleTypes         handle.Type
}

// ImageCreateInfo describes an image with exclusive sharing and an undefined initial layout. The
// last two fields are optional descriptor fragments that the driver chains onto the create call
// when they are set.
type ImageCreateInfo struct {
	Flags       core1_0.ImageCreateFlags
	ImageType   core1_0.ImageType
	Format      core1_0.Format
	Extent      core1_0.Extent3D
	MipLevels   int
	ArrayLayers int
	Samples     core1_0.SampleCountFlags
	Tiling      core1_0.ImageTiling
	Usage       core1_0.ImageUsageFlags

	// ExternalHandleTypes marks the image as backed by external memory of these handle types
	ExternalHandleTypes handle.Type
	// ViewFormats lists every format that views of a mutable-format image will use
	ViewFormats []core1_0.Format
}

// MemoryRequirements combines an image's memory requirements with its dedicated-allocation
// preferences
type MemoryRequirements struct {
	Size              int
	Alignment         int
	MemoryTypeBits    uint32
	PrefersDedicated  bool
	RequiresDedicated bool
}

// MemoryImport carries an external handle to be imported by AllocateMemory
type MemoryImport struct {
	HandleType handle.Type
	Buffer     handle.Buffer
}

// MemoryAllocateInfo describes a device memory allocation. DedicatedImage, ExportHandleTypes and
// Import are optional descriptor fragments.
type MemoryAllocateInfo struct {
	AllocationSize  int
	MemoryTypeIndex int

	DedicatedImage    Image
	ExportHandleTypes handle.Type
	Import            *MemoryImport
}

// ExternalBufferProperties are the requirements an external buffer imposes on memory imported
// from it
type ExternalBufferProperties struct {
	AllocationSize int
	MemoryTypeBits uint32
}

// Device is the slice of a graphics driver that shared swapchain images need. Every method is
// synchronous. Destroy and free primitives never fail.
type Device interface {
	Properties() (*core1_0.PhysicalDeviceProperties, error)
	MemoryProperties() *core1_0.PhysicalDeviceMemoryProperties
	// HasImageFormatList reports whether ImageCreateInfo.ViewFormats can be honored
	HasImageFormatList() bool

	FormatProperties(format core1_0.Format) core1_0.FormatProperties
	ExternalImageFormatProperties(info ExternalImageFormatInfo) (ExternalMemoryProperties, common.VkResult, error)

	CreateImage(info ImageCreateInfo) (Image, common.VkResult, error)
	DestroyImage(image Image)
	ImageMemoryRequirements(image Image) (MemoryRequirements, error)
	SetImageName(image Image, name string)

	AllocateMemory(info MemoryAllocateInfo) (DeviceMemory, common.VkResult, error)
	FreeMemory(memory DeviceMemory)
	BindImageMemory(image Image, memory DeviceMemory, offset int) (common.VkResult, error)

	ExportMemoryHandle(memory DeviceMemory, handleType handle.Type) (handle.Buffer, common.VkResult, error)
	ExternalBufferProperties(buffer handle.Buffer, handleType handle.Type) (ExternalBufferProperties, common.VkResult, error)
}
