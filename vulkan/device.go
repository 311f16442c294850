package vulkan

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/internal/utils"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/core1_1"
	"github.com/vkngwrapper/extensions/v2/khr_dedicated_allocation"
	"github.com/vkngwrapper/extensions/v2/khr_external_memory"
	"github.com/vkngwrapper/extensions/v2/khr_external_memory_capabilities"
	"github.com/vkngwrapper/extensions/v2/khr_image_format_list"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate optional Device behaviors
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CreateExternallySynchronized promises that the Device will only be used from one goroutine
	// at a time, so the handle registries skip their lock
	CreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	CreateExternallySynchronized.Register("CreateExternallySynchronized")
}

// CreateOptions configures a Device
type CreateOptions struct {
	Flags CreateFlags
	// Platform is required to export, import or query external buffers
	Platform PlatformMemory
	// NameImage attaches a debug name to an image, when set
	NameImage func(image core1_0.Image, name string)
}

type memoryEntry struct {
	memory core1_0.DeviceMemory
	size   int
}

// Device implements gpu.Device over vkngwrapper. Images and memory are handed out as opaque
// handles that index registries of the underlying vkngwrapper objects.
type Device struct {
	logger         *slog.Logger
	instance       core1_0.Instance
	physicalDevice core1_0.PhysicalDevice
	device         core1_0.Device
	extensions     *ExtensionData
	platform       PlatformMemory
	nameImage      func(image core1_0.Image, name string)

	deviceProperties *core1_0.PhysicalDeviceProperties
	memoryProperties *core1_0.PhysicalDeviceMemoryProperties

	registryLock utils.OptionalRWMutex
	nextHandle   uint64
	images       *swiss.Map[gpu.Image, core1_0.Image]
	memories     *swiss.Map[gpu.DeviceMemory, memoryEntry]

	memoryCount uint32
}

var _ gpu.Device = &Device{}

// New wraps a vkngwrapper device. The device must have external memory available, either through
// Vulkan 1.1 or its extension, and the instance must be able to query physical device properties 2.
func New(logger *slog.Logger, instance core1_0.Instance, physicalDevice core1_0.PhysicalDevice, device core1_0.Device, options CreateOptions) (*Device, error) {
	if instance == nil || physicalDevice == nil || device == nil {
		return nil, errors.New("attempted to create a vulkan Device without an instance, physical device and device")
	}

	extensions := NewExtensionData(device, physicalDevice, instance)
	if !extensions.ExternalMemory || extensions.GetPhysicalDeviceProperties2 == nil {
		return nil, errors.New("device lacks external memory support")
	}

	properties, err := physicalDevice.Properties()
	if err != nil {
		return nil, errors.Wrap(err, "reading physical device properties")
	}

	d := &Device{
		logger:           logger,
		instance:         instance,
		physicalDevice:   physicalDevice,
		device:           device,
		extensions:       extensions,
		platform:         options.Platform,
		nameImage:        options.NameImage,
		deviceProperties: properties,
		memoryProperties: physicalDevice.MemoryProperties(),
		registryLock: utils.OptionalRWMutex{
			UseMutex: options.Flags&CreateExternallySynchronized == 0,
		},
		images:   swiss.NewMap[gpu.Image, core1_0.Image](16),
		memories: swiss.NewMap[gpu.DeviceMemory, memoryEntry](16),
	}

	logger.Debug("Device::New",
		slog.String("DriverName", properties.DriverName),
		slog.Bool("DedicatedAllocations", extensions.DedicatedAllocations),
		slog.Bool("ImageFormatList", extensions.ImageFormatList),
		slog.Bool("Platform", options.Platform != nil),
	)

	return d, nil
}

func (d *Device) Extensions() *ExtensionData { return d.extensions }

func (d *Device) Properties() (*core1_0.PhysicalDeviceProperties, error) {
	return d.deviceProperties, nil
}

func (d *Device) MemoryProperties() *core1_0.PhysicalDeviceMemoryProperties {
	return d.memoryProperties
}

func (d *Device) HasImageFormatList() bool {
	return d.extensions.ImageFormatList
}

func (d *Device) FormatProperties(format core1_0.Format) core1_0.FormatProperties {
	return *d.physicalDevice.FormatProperties(format)
}

func (d *Device) ExternalImageFormatProperties(info gpu.ExternalImageFormatInfo) (gpu.ExternalMemoryProperties, common.VkResult, error) {
	externalProps := khr_external_memory_capabilities.ExternalImageFormatProperties{}
	formatProps := core1_1.ImageFormatProperties2{
		NextOutData: common.NextOutData{Next: &externalProps},
	}

	res, err := d.extensions.GetPhysicalDeviceProperties2.ImageFormatProperties2(
		core1_1.PhysicalDeviceImageFormatInfo2{
			Format: info.Format,
			Type:   core1_0.ImageType2D,
			Tiling: info.Tiling,
			Usage:  info.Usage,
			Flags:  info.Flags,
			NextOptions: common.NextOptions{Next: khr_external_memory_capabilities.PhysicalDeviceExternalImageFormatInfo{
				HandleType: info.HandleType,
			}},
		},
		&formatProps,
	)
	if err != nil {
		return gpu.ExternalMemoryProperties{}, res, err
	}

	return gpu.ExternalMemoryProperties{
		Features:                      externalProps.ExternalMemoryProperties.ExternalMemoryFeatures,
		ExportFromImportedHandleTypes: externalProps.ExternalMemoryProperties.ExportFromImportedHandleTypes,
		CompatibleHandleTypes:         externalProps.ExternalMemoryProperties.CompatibleHandleTypes,
	}, res, nil
}

func (d *Device) register(image core1_0.Image) gpu.Image {
	d.registryLock.Lock()
	defer d.registryLock.Unlock()

	d.nextHandle++
	id := gpu.Image(d.nextHandle)
	d.images.Put(id, image)
	return id
}

func (d *Device) image(image gpu.Image) (core1_0.Image, bool) {
	d.registryLock.RLock()
	defer d.registryLock.RUnlock()

	return d.images.Get(image)
}

func (d *Device) memory(memory gpu.DeviceMemory) (memoryEntry, bool) {
	d.registryLock.RLock()
	defer d.registryLock.RUnlock()

	return d.memories.Get(memory)
}

func (d *Device) CreateImage(info gpu.ImageCreateInfo) (gpu.Image, common.VkResult, error) {
	createInfo := core1_0.ImageCreateInfo{
		Flags:         info.Flags,
		ImageType:     info.ImageType,
		Format:        info.Format,
		Extent:        info.Extent,
		MipLevels:     info.MipLevels,
		ArrayLayers:   info.ArrayLayers,
		Samples:       info.Samples,
		Tiling:        info.Tiling,
		Usage:         info.Usage,
		SharingMode:   core1_0.SharingModeExclusive,
		InitialLayout: core1_0.ImageLayoutUndefined,
	}

	if info.ExternalHandleTypes != 0 {
		externalInfo := khr_external_memory.ExternalMemoryImageCreateInfo{
			HandleTypes: info.ExternalHandleTypes,
		}
		externalInfo.Next = createInfo.Next
		createInfo.Next = externalInfo
	}

	if len(info.ViewFormats) > 0 {
		if !d.extensions.ImageFormatList {
			return gpu.NullImage, core1_0.VKErrorFeatureNotPresent, errors.New("image format lists are not available on this device")
		}
		formatList := khr_image_format_list.ImageFormatListCreateInfo{
			ViewFormats: info.ViewFormats,
		}
		formatList.Next = createInfo.Next
		createInfo.Next = formatList
	}

	image, res, err := d.device.CreateImage(nil, createInfo)
	if err != nil {
		return gpu.NullImage, res, err
	}

	return d.register(image), res, nil
}

func (d *Device) DestroyImage(image gpu.Image) {
	d.registryLock.Lock()
	vkImage, ok := d.images.Get(image)
	if ok {
		d.images.Delete(image)
	}
	d.registryLock.Unlock()

	if !ok {
		d.logger.Error("Device::DestroyImage unknown image", slog.Uint64("Image", uint64(image)))
		return
	}

	vkImage.Destroy(nil)
}

func (d *Device) ImageMemoryRequirements(image gpu.Image) (gpu.MemoryRequirements, error) {
	vkImage, ok := d.image(image)
	if !ok {
		return gpu.MemoryRequirements{}, errors.Newf("unknown image %d", image)
	}

	if d.extensions.DedicatedAllocations && d.extensions.GetMemoryRequirements != nil {
		dedicatedReqs := khr_dedicated_allocation.MemoryDedicatedRequirements{}
		memReqs := core1_1.MemoryRequirements2{
			NextOutData: common.NextOutData{
				Next: &dedicatedReqs,
			},
		}

		err := d.extensions.GetMemoryRequirements.ImageMemoryRequirements2(
			core1_1.ImageMemoryRequirementsInfo2{
				Image: vkImage,
			},
			&memReqs)
		if err != nil {
			return gpu.MemoryRequirements{}, err
		}

		return gpu.MemoryRequirements{
			Size:              memReqs.MemoryRequirements.Size,
			Alignment:         memReqs.MemoryRequirements.Alignment,
			MemoryTypeBits:    memReqs.MemoryRequirements.MemoryTypeBits,
			PrefersDedicated:  dedicatedReqs.PrefersDedicatedAllocation,
			RequiresDedicated: dedicatedReqs.RequiresDedicatedAllocation,
		}, nil
	}

	reqs := vkImage.MemoryRequirements()
	return gpu.MemoryRequirements{
		Size:           reqs.Size,
		Alignment:      reqs.Alignment,
		MemoryTypeBits: reqs.MemoryTypeBits,
	}, nil
}

func (d *Device) SetImageName(image gpu.Image, name string) {
	if d.nameImage == nil {
		return
	}

	vkImage, ok := d.image(image)
	if !ok {
		return
	}

	d.nameImage(vkImage, name)
}

func (d *Device) AllocateMemory(info gpu.MemoryAllocateInfo) (memory gpu.DeviceMemory, res common.VkResult, err error) {
	newCount := atomic.AddUint32(&d.memoryCount, 1)
	defer func() {
		// Roll back the count on any failure
		if err != nil {
			atomic.AddUint32(&d.memoryCount, ^uint32(0))
		}
	}()

	if int(newCount) > d.deviceProperties.Limits.MaxMemoryAllocationCount {
		return gpu.NullMemory, core1_0.VKErrorTooManyObjects, core1_0.VKErrorTooManyObjects.ToError()
	}

	allocInfo := core1_0.MemoryAllocateInfo{
		AllocationSize:  info.AllocationSize,
		MemoryTypeIndex: info.MemoryTypeIndex,
	}

	if info.DedicatedImage != gpu.NullImage && d.extensions.DedicatedAllocations {
		vkImage, ok := d.image(info.DedicatedImage)
		if !ok {
			return gpu.NullMemory, core1_0.VKErrorUnknown, errors.Newf("dedicated allocation for unknown image %d", info.DedicatedImage)
		}

		dedicatedAllocInfo := khr_dedicated_allocation.MemoryDedicatedAllocateInfo{
			Image: vkImage,
		}
		dedicatedAllocInfo.Next = allocInfo.Next
		allocInfo.Next = dedicatedAllocInfo
	}

	if info.ExportHandleTypes != 0 {
		exportMemoryAllocInfo := khr_external_memory.ExportMemoryAllocateInfo{
			HandleTypes: info.ExportHandleTypes,
		}
		exportMemoryAllocInfo.Next = allocInfo.Next
		allocInfo.Next = exportMemoryAllocInfo
	}

	if info.Import != nil {
		if d.platform == nil {
			return gpu.NullMemory, core1_0.VKErrorFeatureNotPresent, errors.New("memory import needs platform memory support")
		}

		allocInfo.Next, err = d.platform.ImportOptions(info.Import.HandleType, info.Import.Buffer, allocInfo.Next)
		if err != nil {
			return gpu.NullMemory, core1_1.VkErrorInvalidExternalHandle, err
		}
	}

	vkMemory, res, err := d.device.AllocateMemory(nil, allocInfo)
	if err != nil {
		return gpu.NullMemory, res, err
	}

	d.registryLock.Lock()
	defer d.registryLock.Unlock()

	d.nextHandle++
	memory = gpu.DeviceMemory(d.nextHandle)
	d.memories.Put(memory, memoryEntry{memory: vkMemory, size: info.AllocationSize})

	return memory, res, nil
}

func (d *Device) FreeMemory(memory gpu.DeviceMemory) {
	d.registryLock.Lock()
	entry, ok := d.memories.Get(memory)
	if ok {
		d.memories.Delete(memory)
	}
	d.registryLock.Unlock()

	if !ok {
		d.logger.Error("Device::FreeMemory unknown memory", slog.Uint64("Memory", uint64(memory)))
		return
	}

	entry.memory.Free(nil)
	d.logger.Debug("Device::FreeMemory", slog.Uint64("Memory", uint64(memory)), slog.Int("Size", entry.size))
	// Decrement
	atomic.AddUint32(&d.memoryCount, ^uint32(0))
}

func (d *Device) BindImageMemory(image gpu.Image, memory gpu.DeviceMemory, offset int) (common.VkResult, error) {
	vkImage, ok := d.image(image)
	if !ok {
		return core1_0.VKErrorUnknown, errors.Newf("bind for unknown image %d", image)
	}
	entry, ok := d.memory(memory)
	if !ok {
		return core1_0.VKErrorUnknown, errors.Newf("bind of unknown memory %d", memory)
	}

	return vkImage.BindImageMemory(entry.memory, offset)
}

func (d *Device) ExportMemoryHandle(memory gpu.DeviceMemory, handleType handle.Type) (handle.Buffer, common.VkResult, error) {
	if d.platform == nil {
		return handle.InvalidBuffer, core1_0.VKErrorFeatureNotPresent, errors.New("memory export needs platform memory support")
	}

	entry, ok := d.memory(memory)
	if !ok {
		return handle.InvalidBuffer, core1_0.VKErrorUnknown, errors.Newf("export of unknown memory %d", memory)
	}

	return d.platform.ExportMemory(d.device, entry.memory, handleType)
}

func (d *Device) ExternalBufferProperties(buffer handle.Buffer, handleType handle.Type) (gpu.ExternalBufferProperties, common.VkResult, error) {
	if d.platform == nil {
		return gpu.ExternalBufferProperties{}, core1_0.VKErrorFeatureNotPresent, errors.New("external buffer queries need platform memory support")
	}

	return d.platform.BufferProperties(d.device, buffer, handleType)
}

// LiveAllocations returns how many device memory allocations this Device currently holds
func (d *Device) LiveAllocations() int {
	return int(atomic.LoadUint32(&d.memoryCount))
}
