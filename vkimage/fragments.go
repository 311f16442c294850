package vkimage

import (
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// formatList collects the view formats of a mutable image without duplicates. It has room for
// the application's list plus the formats any workaround adds.
type formatList struct {
	logger  *slog.Logger
	formats []core1_0.Format
}

const formatListCapacity = swapchain.MaxFormatList + 2

func (l *formatList) Add(format core1_0.Format) {
	if slices.Contains(l.formats, format) {
		return
	}

	if len(l.formats) >= formatListCapacity {
		l.logger.Error("formatList::Add too many formats", slog.String("Format", csci.FormatName(format)))
		return
	}

	l.formats = append(l.formats, format)
}

func (l *formatList) Len() int { return len(l.formats) }

// imageBuild is the image descriptor being assembled for one swapchain image
type imageBuild struct {
	allocator *Allocator
	info      *swapchain.CreateInfo
	create    gpu.ImageCreateInfo
	formats   formatList
	// err stops the build. No later fragment is applied once it is set.
	err error
}

// imageFragment is an optional part of the image descriptor. Fragments are applied in the order
// of swapchainImageFragments, and each one sees the changes made by those before it.
type imageFragment struct {
	name      string
	supported func(b *imageBuild) bool
	apply     func(b *imageBuild)
}

var swapchainImageFragments = []imageFragment{
	{
		name:      "ExternalMemory",
		supported: func(b *imageBuild) bool { return true },
		apply: func(b *imageBuild) {
			b.create.ExternalHandleTypes = b.allocator.HandleType()
		},
	},
	{
		// Some platform buffers cannot be allocated as sRGB, so the image is allocated as UNORM
		// and sRGB views correct the gamma
		name: "SRGBAsUNORM",
		supported: func(b *imageBuild) bool {
			return b.allocator.strategy.ImportsSRGBAsUNORM() && b.create.Format == csci.FormatR8G8B8A8SRGB
		},
		apply: func(b *imageBuild) {
			b.create.Format = csci.FormatR8G8B8A8Unorm
			b.create.Flags |= imageCreateMutableFormat
			b.formats.Add(csci.FormatR8G8B8A8Unorm)
			b.formats.Add(csci.FormatR8G8B8A8SRGB)
		},
	},
	{
		// Platform buffers only exist for a subset of formats, so the image must not be created
		// in one that no buffer could back
		name: "PlatformBufferFormat",
		supported: func(b *imageBuild) bool {
			return b.allocator.strategy.Kind() == handle.KindAHardwareBuffer
		},
		apply: func(b *imageBuild) {
			b.err = b.allocator.validator.CheckFormatSupport(b.create.Format, b.info.Usage)
		},
	},
	{
		name: "FormatList",
		supported: func(b *imageBuild) bool {
			return b.formats.Len() > 0
		},
		apply: func(b *imageBuild) {
			if !b.allocator.device.HasImageFormatList() {
				b.allocator.logger.Warn("imageFragment::FormatList image format lists are not supported by the device",
					slog.Int("FormatCount", b.formats.Len()),
				)
				return
			}
			b.create.ViewFormats = slices.Clone(b.formats.formats)
		},
	},
}

func (a *Allocator) newImageBuild(info *swapchain.CreateInfo, create gpu.ImageCreateInfo) *imageBuild {
	b := &imageBuild{
		allocator: a,
		info:      info,
		create:    create,
		formats:   formatList{logger: a.logger},
	}

	for _, format := range info.Formats {
		b.formats.Add(core1_0.Format(format))
	}

	return b
}

func (b *imageBuild) applyFragments(fragments []imageFragment) error {
	for _, fragment := range fragments {
		if !fragment.supported(b) {
			continue
		}

		fragment.apply(b)
		if b.err != nil {
			b.allocator.logger.Error("imageBuild::applyFragments FAILED", slog.String("Fragment", fragment.name),
				slog.Any("Error", b.err),
			)
			return b.err
		}
		b.allocator.logger.Debug("    imageBuild::applyFragments", slog.String("Fragment", fragment.name))
	}

	return nil
}
