package vkimage

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// SharedImage is an image together with the memory bound to it. A zero SharedImage owns nothing.
type SharedImage struct {
	Image  gpu.Image
	Memory gpu.DeviceMemory
	// Size is the size of the bound memory in bytes
	Size int
	// UseDedicatedAllocation records whether Memory was allocated for Image alone
	UseDedicatedAllocation bool
}

// IsNull reports whether the image owns neither an image nor memory
func (i SharedImage) IsNull() bool {
	return i.Image == gpu.NullImage && i.Memory == gpu.NullMemory
}

// Allocator creates images whose memory can be shared with other processes and APIs through the
// platform's handle Strategy. All of its methods are synchronous and it holds no mutable state
// after New returns, so it may be used from multiple goroutines as long as the device can.
type Allocator struct {
	logger    *slog.Logger
	device    gpu.Device
	strategy  handle.Strategy
	validator *csci.Validator

	createFlags      CreateFlags
	memoryProperties *core1_0.PhysicalDeviceMemoryProperties
	isTegra          bool
}

func (a *Allocator) Device() gpu.Device         { return a.device }
func (a *Allocator) Strategy() handle.Strategy  { return a.strategy }
func (a *Allocator) Validator() *csci.Validator { return a.validator }
func (a *Allocator) Logger() *slog.Logger       { return a.logger }
func (a *Allocator) IsTegra() bool              { return a.isTegra }
func (a *Allocator) HandleType() handle.Type    { return a.strategy.HandleType(nil) }
func (a *Allocator) MemoryTypeCount() int       { return len(a.memoryProperties.MemoryTypes) }

// MemoryType returns the lowest memory type index that is allowed by typeBits and whose
// property flags include every flag in props
func (a *Allocator) MemoryType(typeBits uint32, props core1_0.MemoryPropertyFlags) (int, bool) {
	for memTypeIndex, memType := range a.memoryProperties.MemoryTypes {
		memTypeBit := uint32(1) << memTypeIndex

		if typeBits&memTypeBit == 0 {
			continue
		}

		if memType.PropertyFlags&props == props {
			return memTypeIndex, true
		}
	}

	a.logger.Error("Allocator::MemoryType could not find a matching memory type",
		slog.String("Requested", props.String()),
		slog.Int("TypeBits", int(typeBits)),
	)
	for memTypeIndex, memType := range a.memoryProperties.MemoryTypes {
		a.logger.Debug("    Allocator::MemoryType candidate",
			slog.Int("Index", memTypeIndex),
			slog.Bool("Allowed", typeBits&(uint32(1)<<memTypeIndex) != 0),
			slog.String("Flags", memType.PropertyFlags.String()),
			slog.Int("Heap", memType.HeapIndex),
		)
	}

	return -1, false
}

// useDedicatedAllocation decides whether an exported image gets its own allocation
func (a *Allocator) useDedicatedAllocation(reqs gpu.MemoryRequirements) bool {
	if a.createFlags&AllocatorCreateForceDedicated != 0 {
		return true
	}

	if a.isTegra {
		return reqs.RequiresDedicated
	}

	// Everywhere else sharing non-dedicated memory leads to fence timeouts and memory layout
	// violations in the driver
	return true
}

// AllocAndBindImageMemory allocates device-local memory that satisfies reqs and binds it to image.
// The descriptor fragments of info (dedicated image, export types, import) are kept while the size
// and memory type are filled in. If binding fails the memory is freed, but image is always left
// for the caller to destroy.
func (a *Allocator) AllocAndBindImageMemory(image gpu.Image, reqs gpu.MemoryRequirements, info gpu.MemoryAllocateInfo, caller string) (gpu.DeviceMemory, error) {
	return a.allocAndBind(image, reqs, info, core1_0.MemoryPropertyDeviceLocal, caller)
}

func (a *Allocator) allocAndBind(image gpu.Image, reqs gpu.MemoryRequirements, info gpu.MemoryAllocateInfo, props core1_0.MemoryPropertyFlags, caller string) (gpu.DeviceMemory, error) {
	memTypeIndex, found := a.MemoryType(reqs.MemoryTypeBits, props)
	if !found {
		return gpu.NullMemory, errors.Wrapf(allocerr.ErrNoMatchingMemoryType, "%s: requested %s", caller, props)
	}

	info.AllocationSize = reqs.Size
	info.MemoryTypeIndex = memTypeIndex

	memory, res, err := a.device.AllocateMemory(info)
	if err != nil {
		a.logger.Error("Allocator::allocAndBind AllocateMemory FAILED",
			slog.String("Caller", caller),
			slog.String("Result", res.String()),
		)
		return gpu.NullMemory, allocerr.Wrap(err, caller+": AllocateMemory", res)
	}

	res, err = a.device.BindImageMemory(image, memory, 0)
	if err != nil {
		a.logger.Error("Allocator::allocAndBind BindImageMemory FAILED",
			slog.String("Caller", caller),
			slog.String("Result", res.String()),
		)
		a.device.FreeMemory(memory)
		return gpu.NullMemory, allocerr.Wrap(err, caller+": BindImageMemory", res)
	}

	return memory, nil
}

// DestroyImage destroys the image, frees its memory and zeroes img. Either half may already be
// null.
func (a *Allocator) DestroyImage(img *SharedImage) {
	if img.Image != gpu.NullImage {
		a.device.DestroyImage(img.Image)
	}
	if img.Memory != gpu.NullMemory {
		a.device.FreeMemory(img.Memory)
	}

	*img = SharedImage{}
}

// NativeHandle exports a new transferable handle to memory. The caller owns the returned buffer
// and releases it through the allocator's Strategy.
func (a *Allocator) NativeHandle(memory gpu.DeviceMemory) (handle.Buffer, error) {
	handleType := a.strategy.HandleType(nil)

	buffer, res, err := a.device.ExportMemoryHandle(memory, handleType)
	if err != nil {
		a.logger.Error("Allocator::NativeHandle ExportMemoryHandle FAILED",
			slog.String("HandleType", handle.TypeString(handleType)),
			slog.String("Result", res.String()),
		)
		return handle.InvalidBuffer, allocerr.Wrap(err, "ExportMemoryHandle", res)
	}

	return buffer, nil
}
