package csci

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// Validator answers whether the driver can back compositor swapchain images of a given format
// and usage with memory that the platform can share
type Validator struct {
	logger   *slog.Logger
	device   gpu.Device
	strategy handle.Strategy
}

func NewValidator(logger *slog.Logger, device gpu.Device, strategy handle.Strategy) *Validator {
	return &Validator{
		logger:   logger,
		device:   device,
		strategy: strategy,
	}
}

// ImageUsageFlags returns the Vulkan usage for bits after checking every requested bit against
// the format's optimal-tiling features. If any bit is unsupported it logs the first failure and
// returns 0.
func (v *Validator) ImageUsageFlags(format core1_0.Format, bits swapchain.UsageBits) core1_0.ImageUsageFlags {
	features := v.device.FormatProperties(format).OptimalTilingFeatures

	var usage core1_0.ImageUsageFlags
	for _, rule := range usageRules {
		if bits&rule.bit == 0 {
			continue
		}

		if features&rule.feature == 0 {
			v.logger.Error("Validator::ImageUsageFlags requested usage not supported by format",
				slog.String("Usage", swapchain.UsageFlagString(rule.bit)),
				slog.String("Feature", rule.feature.String()),
				slog.String("Format", FormatName(format)),
				slog.Int("FormatFeatures", int(features)),
			)
			return 0
		}

		usage |= rule.usage
	}

	return usage
}

// ExternalSupport queries whether images of format with the given usage can be imported and
// exported through handleType
func (v *Validator) ExternalSupport(format core1_0.Format, bits swapchain.UsageBits, handleType handle.Type) (importable, exportable bool, err error) {
	props, res, err := v.device.ExternalImageFormatProperties(gpu.ExternalImageFormatInfo{
		Format:     format,
		Tiling:     core1_0.ImageTilingOptimal,
		Usage:      v.ImageUsageFlags(format, bits),
		HandleType: handleType,
	})
	if err != nil {
		v.logger.Error("Validator::ExternalSupport failed to query image format properties",
			slog.String("Format", FormatName(format)),
			slog.String("Result", res.String()),
		)
		return false, false, allocerr.Wrap(err, "vkGetPhysicalDeviceImageFormatProperties2", res)
	}

	importable = props.Features&gpu.ExternalMemoryFeatureImportable != 0
	exportable = props.Features&gpu.ExternalMemoryFeatureExportable != 0
	return importable, exportable, nil
}

// CheckFormatSupport returns nil if compositor swapchain images of format can be created with
// bits and shared through the platform's handle type. Unsupported combinations are reported as
// allocerr.ErrFeatureNotSupported; unexpected driver failures carry an allocerr.DriverError.
func (v *Validator) CheckFormatSupport(format core1_0.Format, bits swapchain.UsageBits) error {
	if !v.strategy.SupportsFormat(format) {
		v.logger.Debug("format has no platform buffer equivalent", slog.String("Format", FormatName(format)))
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s cannot be shared on this platform", FormatName(format))
	}

	features := v.device.FormatProperties(format).OptimalTilingFeatures

	if features&core1_0.FormatFeatureSampledImage == 0 {
		v.logger.Debug("format cannot be sampled from in optimal layout", slog.String("Format", FormatName(format)))
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s cannot be sampled", FormatName(format))
	}

	if bits&swapchain.UsageColor != 0 && features&core1_0.FormatFeatureColorAttachment == 0 {
		v.logger.Debug("color format cannot be used as render target in optimal layout", slog.String("Format", FormatName(format)))
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s cannot be a color attachment", FormatName(format))
	}

	if bits&swapchain.UsageDepthStencil != 0 && features&core1_0.FormatFeatureDepthStencilAttachment == 0 {
		v.logger.Debug("depth/stencil format cannot be used as render target in optimal layout", slog.String("Format", FormatName(format)))
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s cannot be a depth/stencil attachment", FormatName(format))
	}

	usage := v.ImageUsageFlags(format, bits)
	if usage == 0 {
		v.logger.Debug("format does not support every requested usage", slog.String("Format", FormatName(format)),
			slog.String("Usage", bits.String()),
		)
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s does not support usage %s", FormatName(format), bits)
	}

	props, res, err := v.device.ExternalImageFormatProperties(gpu.ExternalImageFormatInfo{
		Format:     format,
		Tiling:     core1_0.ImageTilingOptimal,
		Usage:      usage,
		HandleType: v.strategy.HandleType(nil),
	})
	if res == core1_0.VKErrorFormatNotSupported {
		v.logger.Debug("format is not supported as an external image", slog.String("Format", FormatName(format)))
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s is not supported as an external image", FormatName(format))
	} else if err != nil {
		v.logger.Error("Validator::CheckFormatSupport failed to query image format properties",
			slog.String("Format", FormatName(format)),
			slog.String("Result", res.String()),
		)
		return allocerr.Wrap(err, "vkGetPhysicalDeviceImageFormatProperties2", res)
	}

	if props.Features&gpu.ExternalMemoryFeatureImportable == 0 {
		v.logger.Debug("format is not importable", slog.String("Format", FormatName(format)))
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s is not importable", FormatName(format))
	}

	if props.Features&gpu.ExternalMemoryFeatureExportable == 0 {
		v.logger.Debug("format is not exportable", slog.String("Format", FormatName(format)))
		return errors.Wrapf(allocerr.ErrFeatureNotSupported, "format %s is not exportable", FormatName(format))
	}

	return nil
}

// IsFormatSupported reports whether CheckFormatSupport succeeds
func (v *Validator) IsFormatSupported(format core1_0.Format, bits swapchain.UsageBits) bool {
	return v.CheckFormatSupport(format, bits) == nil
}

// CompositorFormats filters candidates down to the formats that are supported for bits,
// keeping their order and stopping at swapchain.MaxFormats
func (v *Validator) CompositorFormats(candidates []core1_0.Format, bits swapchain.UsageBits) []core1_0.Format {
	formats := make([]core1_0.Format, 0, swapchain.MaxFormats)
	for _, format := range candidates {
		if len(formats) == swapchain.MaxFormats {
			break
		}

		if v.IsFormatSupported(format, bits) {
			formats = append(formats, format)
		}
	}

	return formats
}
