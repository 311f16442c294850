package vulkan

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/core1_1"
	"github.com/vkngwrapper/core/v2/core1_2"
	"github.com/vkngwrapper/extensions/v2/khr_dedicated_allocation"
	"github.com/vkngwrapper/extensions/v2/khr_external_memory"
	"github.com/vkngwrapper/extensions/v2/khr_get_memory_requirements2"
	khr_get_memory_requirements2_shim "github.com/vkngwrapper/extensions/v2/khr_get_memory_requirements2/shim"
	"github.com/vkngwrapper/extensions/v2/khr_get_physical_device_properties2"
	khr_get_physical_device_properties2_shim "github.com/vkngwrapper/extensions/v2/khr_get_physical_device_properties2/shim"
	"github.com/vkngwrapper/extensions/v2/khr_image_format_list"
)

// ExtensionData records which optional driver capabilities shared images can rely on, whether
// they come from core or from an extension
type ExtensionData struct {
	DedicatedAllocations         bool
	ExternalMemory               bool
	ImageFormatList              bool
	GetMemoryRequirements        khr_get_memory_requirements2_shim.Shim
	GetPhysicalDeviceProperties2 khr_get_physical_device_properties2_shim.Shim
}

func NewExtensionData(device core1_0.Device, physicalDevice core1_0.PhysicalDevice, instance core1_0.Instance) *ExtensionData {
	data := &ExtensionData{}

	device11 := core1_1.PromoteDevice(device)
	if device11 != nil {
		// Dedicated allocations, external memory and memory requirements 2 are all core in 1.1
		data.DedicatedAllocations = true
		data.ExternalMemory = true
		data.GetMemoryRequirements = device11
	}

	if core1_2.PromoteDevice(device) != nil {
		data.ImageFormatList = true
	}

	physicalDevice11 := core1_1.PromoteInstanceScopedPhysicalDevice(physicalDevice)
	if physicalDevice11 != nil {
		data.GetPhysicalDeviceProperties2 = physicalDevice11
	}

	if data.GetMemoryRequirements == nil && device.IsDeviceExtensionActive(khr_get_memory_requirements2.ExtensionName) {
		extension := khr_get_memory_requirements2.CreateExtensionFromDevice(device)
		data.GetMemoryRequirements = khr_get_memory_requirements2_shim.NewShim(extension, device)
	}

	// Dedicated requirements can only be queried through memory requirements 2
	if data.GetMemoryRequirements != nil && !data.DedicatedAllocations &&
		device.IsDeviceExtensionActive(khr_dedicated_allocation.ExtensionName) {
		data.DedicatedAllocations = true
	}

	if !data.ExternalMemory && device.IsDeviceExtensionActive(khr_external_memory.ExtensionName) {
		data.ExternalMemory = true
	}

	if !data.ImageFormatList && device.IsDeviceExtensionActive(khr_image_format_list.ExtensionName) {
		data.ImageFormatList = true
	}

	if data.GetPhysicalDeviceProperties2 == nil && instance.IsInstanceExtensionActive(khr_get_physical_device_properties2.ExtensionName) {
		extension := khr_get_physical_device_properties2.CreateExtensionFromInstance(instance)
		data.GetPhysicalDeviceProperties2 = khr_get_physical_device_properties2_shim.NewShim(extension, physicalDevice)
	}

	return data
}
