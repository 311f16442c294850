package vkimage

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

const (
	imageCreateMutableFormat  core1_0.ImageCreateFlags = 0x00000008
	imageCreateCubeCompatible core1_0.ImageCreateFlags = 0x00000010
	imageCreateProtected      core1_0.ImageCreateFlags = 0x00000800
)

func simpleImageInfo(extent core1_0.Extent2D, format core1_0.Format, usage core1_0.ImageUsageFlags) gpu.ImageCreateInfo {
	return gpu.ImageCreateInfo{
		ImageType: core1_0.ImageType2D,
		Format:    format,
		Extent: core1_0.Extent3D{
			Width:  extent.Width,
			Height: extent.Height,
			Depth:  1,
		},
		MipLevels:   1,
		ArrayLayers: 1,
		Samples:     core1_0.Samples1,
		Tiling:      core1_0.ImageTilingOptimal,
		Usage:       usage,
	}
}

// CreateImageSimple creates a single-layer, single-mip 2D image in device-local memory that is
// private to this process
func (a *Allocator) CreateImageSimple(extent core1_0.Extent2D, format core1_0.Format, usage core1_0.ImageUsageFlags) (SharedImage, error) {
	return a.createLocal(simpleImageInfo(extent, format, usage), core1_0.MemoryPropertyDeviceLocal, "CreateImageSimple")
}

// CreateImageMutableRGBA creates an R8G8B8A8 UNORM image whose views may reinterpret it as sRGB
func (a *Allocator) CreateImageMutableRGBA(extent core1_0.Extent2D, usage core1_0.ImageUsageFlags) (SharedImage, error) {
	info := simpleImageInfo(extent, csci.FormatR8G8B8A8Unorm, usage)
	info.Flags |= imageCreateMutableFormat

	if a.device.HasImageFormatList() {
		info.ViewFormats = []core1_0.Format{csci.FormatR8G8B8A8Unorm, csci.FormatR8G8B8A8SRGB}
	}

	return a.createLocal(info, core1_0.MemoryPropertyDeviceLocal, "CreateImageMutableRGBA")
}

// CreateImageAdvanced creates a single-mip image with the requested tiling whose memory has at
// least the property flags in memProps. Extents deeper than one texel produce 3D images.
func (a *Allocator) CreateImageAdvanced(extent core1_0.Extent3D, format core1_0.Format, tiling core1_0.ImageTiling, usage core1_0.ImageUsageFlags, memProps core1_0.MemoryPropertyFlags) (SharedImage, error) {
	info := gpu.ImageCreateInfo{
		ImageType:   core1_0.ImageType2D,
		Format:      format,
		Extent:      extent,
		MipLevels:   1,
		ArrayLayers: 1,
		Samples:     core1_0.Samples1,
		Tiling:      tiling,
		Usage:       usage,
	}
	if extent.Depth > 1 {
		info.ImageType = core1_0.ImageType3D
	}

	return a.createLocal(info, memProps, "CreateImageAdvanced")
}

// createLocal creates the image, binds fresh memory with memProps to it, and unwinds whatever was
// created if a later step fails
func (a *Allocator) createLocal(info gpu.ImageCreateInfo, memProps core1_0.MemoryPropertyFlags, caller string) (SharedImage, error) {
	image, res, err := a.device.CreateImage(info)
	if err != nil {
		a.logger.Error("Allocator::createLocal CreateImage FAILED",
			slog.String("Caller", caller),
			slog.String("Result", res.String()),
		)
		return SharedImage{}, allocerr.Wrap(err, caller+": CreateImage", res)
	}

	reqs, err := a.device.ImageMemoryRequirements(image)
	if err != nil {
		a.device.DestroyImage(image)
		return SharedImage{}, errors.Wrapf(err, "%s: ImageMemoryRequirements", caller)
	}

	memory, err := a.allocAndBind(image, reqs, gpu.MemoryAllocateInfo{}, memProps, caller)
	if err != nil {
		a.device.DestroyImage(image)
		return SharedImage{}, err
	}

	return SharedImage{
		Image:  image,
		Memory: memory,
		Size:   reqs.Size,
	}, nil
}
