// Package gputest provides an in-memory gpu.Device that counts every driver call and can be told
// to fail any of them
package gputest

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// Calls counts invocations of each driver primitive
type Calls struct {
	CreateImage              int
	DestroyImage             int
	ImageMemoryRequirements  int
	AllocateMemory           int
	FreeMemory               int
	BindImageMemory          int
	ExportMemoryHandle       int
	ExternalBufferProperties int
	ExternalImageFormat      int
}

// Allocations is the total number of calls that create driver objects
func (c Calls) Allocations() int {
	return c.CreateImage + c.AllocateMemory
}

// Failures holds the 1-based call number at which each primitive fails. Zero never fails.
type Failures struct {
	CreateImage              int
	AllocateMemory           int
	BindImageMemory          int
	ExportMemoryHandle       int
	ExternalBufferProperties int
	// Result is returned by injected failures, VK_ERROR_OUT_OF_DEVICE_MEMORY when unset
	Result common.VkResult
}

func (f Failures) result() common.VkResult {
	if f.Result == 0 {
		return core1_0.VKErrorOutOfDeviceMemory
	}
	return f.Result
}

type Device struct {
	DeviceProperties core1_0.PhysicalDeviceProperties
	Memory           core1_0.PhysicalDeviceMemoryProperties
	Formats          map[core1_0.Format]core1_0.FormatProperties
	ImageFormatList  bool

	// ExternalFeatures answers every external image format query
	ExternalFeatures gpu.ExternalMemoryFeatures
	// ExternalResult, when set, fails every external image format query
	ExternalResult common.VkResult

	Requirements gpu.MemoryRequirements
	BufferProps  gpu.ExternalBufferProperties

	Fail  Failures
	Calls Calls

	CreatedImages   []gpu.ImageCreateInfo
	Allocations     []gpu.MemoryAllocateInfo
	DestroyedImages []gpu.Image
	FreedMemory     []gpu.DeviceMemory
	Exported        []handle.Buffer
	Names           map[gpu.Image]string

	nextHandle uint64
	liveImages map[gpu.Image]struct{}
	liveMemory map[gpu.DeviceMemory]struct{}
}

var _ gpu.Device = &Device{}

// FullFeatures is every optimal-tiling feature a compositor swapchain format can ask for
const FullFeatures = core1_0.FormatFeatureSampledImage | core1_0.FormatFeatureStorageImage |
	core1_0.FormatFeatureColorAttachment | core1_0.FormatFeatureDepthStencilAttachment |
	core1_0.FormatFeatureFlags(0x00004000|0x00008000)

// New creates a discrete AMD-like device with three memory types (host visible, device local,
// device local and host visible) where every format has every feature and can be shared
func New() *Device {
	return &Device{
		DeviceProperties: core1_0.PhysicalDeviceProperties{
			DriverType: core1_0.PhysicalDeviceTypeDiscreteGPU,
			VendorID:   0x1002,
			DriverName: "Fake Device",
			Limits: &core1_0.PhysicalDeviceLimits{
				MaxMemoryAllocationCount: 4096,
			},
		},
		Memory: core1_0.PhysicalDeviceMemoryProperties{
			MemoryTypes: []core1_0.MemoryType{
				{PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent, HeapIndex: 1},
				{PropertyFlags: core1_0.MemoryPropertyDeviceLocal, HeapIndex: 0},
				{PropertyFlags: core1_0.MemoryPropertyDeviceLocal | core1_0.MemoryPropertyHostVisible, HeapIndex: 0},
			},
			MemoryHeaps: []core1_0.MemoryHeap{
				{Size: 8 * 1024 * 1024 * 1024},
				{Size: 16 * 1024 * 1024 * 1024},
			},
		},
		Formats:          make(map[core1_0.Format]core1_0.FormatProperties),
		ImageFormatList:  true,
		ExternalFeatures: gpu.ExternalMemoryFeatureImportable | gpu.ExternalMemoryFeatureExportable,
		Requirements: gpu.MemoryRequirements{
			Size:           4096,
			Alignment:      256,
			MemoryTypeBits: 0b111,
		},
		BufferProps: gpu.ExternalBufferProperties{
			AllocationSize: 4096,
			MemoryTypeBits: 0b111,
		},
		Names:      make(map[gpu.Image]string),
		liveImages: make(map[gpu.Image]struct{}),
		liveMemory: make(map[gpu.DeviceMemory]struct{}),
	}
}

func (d *Device) handle() uint64 {
	d.nextHandle++
	return d.nextHandle
}

// LiveImages is the number of images created and not yet destroyed
func (d *Device) LiveImages() int {
	return len(d.liveImages)
}

// LiveMemory is the number of allocations made and not yet freed
func (d *Device) LiveMemory() int {
	return len(d.liveMemory)
}

func (d *Device) Properties() (*core1_0.PhysicalDeviceProperties, error) {
	return &d.DeviceProperties, nil
}

func (d *Device) MemoryProperties() *core1_0.PhysicalDeviceMemoryProperties {
	return &d.Memory
}

func (d *Device) HasImageFormatList() bool {
	return d.ImageFormatList
}

// FormatProperties reports FullFeatures for any format without an explicit entry
func (d *Device) FormatProperties(format core1_0.Format) core1_0.FormatProperties {
	if props, ok := d.Formats[format]; ok {
		return props
	}
	return core1_0.FormatProperties{OptimalTilingFeatures: FullFeatures}
}

func (d *Device) ExternalImageFormatProperties(info gpu.ExternalImageFormatInfo) (gpu.ExternalMemoryProperties, common.VkResult, error) {
	d.Calls.ExternalImageFormat++
	if d.ExternalResult != 0 && d.ExternalResult != core1_0.VKSuccess {
		return gpu.ExternalMemoryProperties{}, d.ExternalResult, d.ExternalResult.ToError()
	}

	return gpu.ExternalMemoryProperties{
		Features:              d.ExternalFeatures,
		CompatibleHandleTypes: info.HandleType,
	}, core1_0.VKSuccess, nil
}

func (d *Device) CreateImage(info gpu.ImageCreateInfo) (gpu.Image, common.VkResult, error) {
	d.Calls.CreateImage++
	if d.Calls.CreateImage == d.Fail.CreateImage {
		return gpu.NullImage, d.Fail.result(), d.Fail.result().ToError()
	}

	d.CreatedImages = append(d.CreatedImages, info)
	image := gpu.Image(d.handle())
	d.liveImages[image] = struct{}{}
	return image, core1_0.VKSuccess, nil
}

func (d *Device) DestroyImage(image gpu.Image) {
	d.Calls.DestroyImage++
	if _, ok := d.liveImages[image]; !ok {
		panic("destroyed an image that is not alive")
	}

	delete(d.liveImages, image)
	d.DestroyedImages = append(d.DestroyedImages, image)
}

func (d *Device) ImageMemoryRequirements(image gpu.Image) (gpu.MemoryRequirements, error) {
	d.Calls.ImageMemoryRequirements++
	if _, ok := d.liveImages[image]; !ok {
		return gpu.MemoryRequirements{}, errors.New("queried requirements of an image that is not alive")
	}
	return d.Requirements, nil
}

func (d *Device) SetImageName(image gpu.Image, name string) {
	d.Names[image] = name
}

func (d *Device) AllocateMemory(info gpu.MemoryAllocateInfo) (gpu.DeviceMemory, common.VkResult, error) {
	d.Calls.AllocateMemory++
	if d.Calls.AllocateMemory == d.Fail.AllocateMemory {
		return gpu.NullMemory, d.Fail.result(), d.Fail.result().ToError()
	}

	d.Allocations = append(d.Allocations, info)
	memory := gpu.DeviceMemory(d.handle())
	d.liveMemory[memory] = struct{}{}
	return memory, core1_0.VKSuccess, nil
}

func (d *Device) FreeMemory(memory gpu.DeviceMemory) {
	d.Calls.FreeMemory++
	if _, ok := d.liveMemory[memory]; !ok {
		panic("freed memory that is not alive")
	}

	delete(d.liveMemory, memory)
	d.FreedMemory = append(d.FreedMemory, memory)
}

func (d *Device) BindImageMemory(image gpu.Image, memory gpu.DeviceMemory, offset int) (common.VkResult, error) {
	d.Calls.BindImageMemory++
	if d.Calls.BindImageMemory == d.Fail.BindImageMemory {
		return d.Fail.result(), d.Fail.result().ToError()
	}

	return core1_0.VKSuccess, nil
}

// ExportMemoryHandle hands out buffer values derived from the memory handle
func (d *Device) ExportMemoryHandle(memory gpu.DeviceMemory, handleType handle.Type) (handle.Buffer, common.VkResult, error) {
	d.Calls.ExportMemoryHandle++
	if d.Calls.ExportMemoryHandle == d.Fail.ExportMemoryHandle {
		return handle.InvalidBuffer, d.Fail.result(), d.Fail.result().ToError()
	}

	buffer := handle.Buffer(1000 + uint64(memory))
	d.Exported = append(d.Exported, buffer)
	return buffer, core1_0.VKSuccess, nil
}

func (d *Device) ExternalBufferProperties(buffer handle.Buffer, handleType handle.Type) (gpu.ExternalBufferProperties, common.VkResult, error) {
	d.Calls.ExternalBufferProperties++
	if d.Calls.ExternalBufferProperties == d.Fail.ExternalBufferProperties {
		return gpu.ExternalBufferProperties{}, d.Fail.result(), d.Fail.result().ToError()
	}

	return d.BufferProps, core1_0.VKSuccess, nil
}
