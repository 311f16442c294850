package vkimage

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

func swapchainCreateFlags(info *swapchain.CreateInfo) core1_0.ImageCreateFlags {
	var flags core1_0.ImageCreateFlags

	if info.Usage&swapchain.UsageMutableFormat != 0 {
		flags |= imageCreateMutableFormat
	}
	if info.Create&swapchain.CreateProtectedContent != 0 {
		flags |= imageCreateProtected
	}

	return flags
}

func (a *Allocator) swapchainUsage(format core1_0.Format, info *swapchain.CreateInfo, caller string) (core1_0.ImageUsageFlags, error) {
	usage := a.validator.ImageUsageFlags(format, info.Usage)
	if usage == 0 {
		a.logger.Error("Allocator::"+caller+" unsupported swapchain usage flags",
			slog.String("Format", csci.FormatName(format)),
			slog.String("Usage", info.Usage.String()),
		)
		return 0, errors.Wrapf(allocerr.ErrFeatureNotSupported, "%s: usage %s for %s", caller, info.Usage, csci.FormatName(format))
	}

	return usage, nil
}

// CreateSwapchainImage creates one exportable swapchain image with memory bound to it. On
// failure nothing created by the call is left alive.
func (a *Allocator) CreateSwapchainImage(info *swapchain.CreateInfo) (SharedImage, error) {
	format := core1_0.Format(info.Format)

	usage, err := a.swapchainUsage(format, info, "CreateSwapchainImage")
	if err != nil {
		return SharedImage{}, err
	}

	flags := swapchainCreateFlags(info)
	if info.FaceCount == 6 {
		flags |= imageCreateCubeCompatible
	}

	build := a.newImageBuild(info, gpu.ImageCreateInfo{
		Flags:     flags,
		ImageType: core1_0.ImageType2D,
		Format:    format,
		Extent: core1_0.Extent3D{
			Width:  info.Width,
			Height: info.Height,
			Depth:  1,
		},
		MipLevels:   info.MipCount,
		ArrayLayers: info.ArraySize * info.FaceCount,
		Samples:     core1_0.Samples1,
		Tiling:      core1_0.ImageTilingOptimal,
		Usage:       usage,
	})
	if err := build.applyFragments(swapchainImageFragments); err != nil {
		return SharedImage{}, err
	}

	image, res, err := a.device.CreateImage(build.create)
	if err != nil {
		a.logger.Error("Allocator::CreateSwapchainImage CreateImage FAILED", slog.String("Result", res.String()))
		return SharedImage{}, allocerr.Wrap(err, "CreateSwapchainImage: CreateImage", res)
	}

	reqs, err := a.device.ImageMemoryRequirements(image)
	if err != nil {
		a.device.DestroyImage(image)
		return SharedImage{}, errors.Wrap(err, "CreateSwapchainImage: ImageMemoryRequirements")
	}

	dedicated := a.useDedicatedAllocation(reqs)
	a.logger.Debug("Allocator::CreateSwapchainImage",
		slog.Bool("Dedicated", dedicated),
		slog.Bool("Preferred", reqs.PrefersDedicated),
		slog.Bool("Required", reqs.RequiresDedicated),
	)

	allocInfo := gpu.MemoryAllocateInfo{
		ExportHandleTypes: build.create.ExternalHandleTypes,
	}
	if dedicated {
		allocInfo.DedicatedImage = image
	}

	memory, err := a.AllocAndBindImageMemory(image, reqs, allocInfo, "CreateSwapchainImage")
	if err != nil {
		a.device.DestroyImage(image)
		return SharedImage{}, err
	}

	return SharedImage{
		Image:                  image,
		Memory:                 memory,
		Size:                   reqs.Size,
		UseDedicatedAllocation: dedicated,
	}, nil
}

// CreateImageFromNative imports memory another process exported through native and binds it to a
// new image described by info. On success native is consumed according to the strategy's
// import convention. On failure native is untouched and still owned by the caller.
func (a *Allocator) CreateImageFromNative(info *swapchain.CreateInfo, native *handle.Native) (SharedImage, error) {
	format := core1_0.Format(info.Format)
	if a.strategy.ImportsSRGBAsUNORM() && format == csci.FormatR8G8B8A8SRGB {
		format = csci.FormatR8G8B8A8Unorm
	}

	usage, err := a.swapchainUsage(format, info, "CreateImageFromNative")
	if err != nil {
		return SharedImage{}, err
	}

	handleType := a.strategy.HandleType(native)

	importable, _, err := a.validator.ExternalSupport(format, info.Usage, handleType)
	if err != nil {
		return SharedImage{}, err
	}
	if !importable {
		a.logger.Error("Allocator::CreateImageFromNative external memory handle is not importable",
			slog.String("HandleType", handle.TypeString(handleType)),
			slog.String("Format", csci.FormatName(format)),
		)
		return SharedImage{}, errors.Wrapf(allocerr.ErrNotImportable, "%s for %s", handle.TypeString(handleType), csci.FormatName(format))
	}

	createInfo := gpu.ImageCreateInfo{
		Flags:     swapchainCreateFlags(info),
		ImageType: core1_0.ImageType2D,
		Format:    format,
		Extent: core1_0.Extent3D{
			Width:  info.Width,
			Height: info.Height,
			Depth:  1,
		},
		MipLevels:           info.MipCount,
		ArrayLayers:         info.ArraySize,
		Samples:             core1_0.Samples1,
		Tiling:              core1_0.ImageTilingOptimal,
		Usage:               usage,
		ExternalHandleTypes: handleType,
	}

	if info.Usage&swapchain.UsageMutableFormat != 0 && a.device.HasImageFormatList() && len(info.Formats) > 0 {
		createInfo.ViewFormats = make([]core1_0.Format, 0, len(info.Formats))
		for _, viewFormat := range info.Formats {
			createInfo.ViewFormats = append(createInfo.ViewFormats, core1_0.Format(viewFormat))
		}
	}

	image, res, err := a.device.CreateImage(createInfo)
	if err != nil {
		a.logger.Error("Allocator::CreateImageFromNative CreateImage FAILED", slog.String("Result", res.String()))
		return SharedImage{}, allocerr.Wrap(err, "CreateImageFromNative: CreateImage", res)
	}

	reqs, err := a.importRequirements(image, native, handleType)
	if err != nil {
		a.device.DestroyImage(image)
		return SharedImage{}, err
	}

	if !handle.SkipsSizeCheck(handleType) {
		if reqs.Size == 0 {
			a.logger.Error("Allocator::CreateImageFromNative required size must be greater than 0",
				slog.String("HandleType", handle.TypeString(handleType)),
			)
		} else if reqs.Size > native.Size {
			a.logger.Error("Allocator::CreateImageFromNative size mismatch",
				slog.Int("Exported", native.Size),
				slog.Int("Required", reqs.Size),
			)
			a.device.DestroyImage(image)
			return SharedImage{}, errors.Wrapf(allocerr.ErrSizeMismatch, "exported %d bytes but %d are required", native.Size, reqs.Size)
		}
		// More memory than required is fine, exporters may round up
	}

	memory, err := a.AllocAndBindImageMemory(image, reqs, gpu.MemoryAllocateInfo{
		DedicatedImage: image,
		Import: &gpu.MemoryImport{
			HandleType: handleType,
			Buffer:     native.Handle,
		},
	}, "CreateImageFromNative")
	if err != nil {
		a.device.DestroyImage(image)
		return SharedImage{}, err
	}

	handle.Consume(a.strategy, native)

	return SharedImage{
		Image:                  image,
		Memory:                 memory,
		Size:                   reqs.Size,
		UseDedicatedAllocation: true,
	}, nil
}

// importRequirements reads the memory requirements for importing native into image. Platforms
// whose buffers carry their own allocation parameters answer from the buffer instead of the image.
func (a *Allocator) importRequirements(image gpu.Image, native *handle.Native, handleType handle.Type) (gpu.MemoryRequirements, error) {
	reqs, err := a.device.ImageMemoryRequirements(image)
	if err != nil {
		return gpu.MemoryRequirements{}, errors.Wrap(err, "CreateImageFromNative: ImageMemoryRequirements")
	}

	if !a.strategy.UsesBufferProperties() {
		return reqs, nil
	}

	props, res, err := a.device.ExternalBufferProperties(native.Handle, handleType)
	if err != nil {
		a.logger.Error("Allocator::importRequirements ExternalBufferProperties FAILED", slog.String("Result", res.String()))
		return gpu.MemoryRequirements{}, allocerr.Wrap(err, "CreateImageFromNative: ExternalBufferProperties", res)
	}

	reqs.Size = props.AllocationSize
	reqs.MemoryTypeBits = props.MemoryTypeBits
	return reqs, nil
}
