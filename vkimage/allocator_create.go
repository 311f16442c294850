package vkimage

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags int32

var allocatorCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	allocatorCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return allocatorCreateFlagsMapping.FlagsToString(f)
}

const (
	// AllocatorCreateForceDedicated makes every swapchain image use a dedicated allocation, even on
	// devices where dedicated allocation is normally used only when the driver requires it.
	AllocatorCreateForceDedicated CreateFlags = 1 << iota
	// AllocatorCreateTegraPolicy applies the integrated NVIDIA allocation policy regardless of what
	// the device reports. On those devices, a dedicated allocation that the driver merely prefers
	// causes black textures when the image is blitted from GL interop textures, so it is only
	// used when required.
	AllocatorCreateTegraPolicy
)

func init() {
	AllocatorCreateForceDedicated.Register("AllocatorCreateForceDedicated")
	AllocatorCreateTegraPolicy.Register("AllocatorCreateTegraPolicy")
}

const vendorNVIDIA uint32 = 0x10DE

// CreateOptions contains optional settings when creating an allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags

	// MemoryProperties can be left nil. If it is provided, it replaces the memory types and heaps
	// reported by the device for every memory type search this allocator performs.
	MemoryProperties *core1_0.PhysicalDeviceMemoryProperties
}

// New creates a new Allocator
//
// device - The driver that images and memory will be created through
//
// strategy - The platform's transferable memory handle mechanism. If nil, handle.Platform() is used.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, device gpu.Device, strategy handle.Strategy, options CreateOptions) (*Allocator, error) {
	if device == nil {
		return nil, errors.New("vkimage.New called with a nil device")
	}

	if strategy == nil {
		strategy = handle.Platform()
	}

	properties, err := device.Properties()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read physical device properties")
	}

	allocator := &Allocator{
		logger:      logger,
		device:      device,
		strategy:    strategy,
		validator:   csci.NewValidator(logger, device, strategy),
		createFlags: options.Flags,
	}

	if options.MemoryProperties != nil {
		allocator.memoryProperties = options.MemoryProperties
	} else {
		allocator.memoryProperties = device.MemoryProperties()
	}

	allocator.isTegra = options.Flags&AllocatorCreateTegraPolicy != 0 ||
		(properties.VendorID == vendorNVIDIA && properties.DriverType == core1_0.PhysicalDeviceTypeIntegratedGPU)

	logger.Debug("Allocator::New",
		slog.String("Device", properties.DriverName),
		slog.Bool("Tegra", allocator.isTegra),
		slog.String("Strategy", strategy.Kind().String()),
		slog.String("Flags", options.Flags.String()),
	)

	return allocator, nil
}
