package csci

import (
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/core/v2/core1_0"
)

const (
	// VK_FORMAT_FEATURE_TRANSFER_SRC_BIT and VK_FORMAT_FEATURE_TRANSFER_DST_BIT, core in 1.1
	formatFeatureTransferSrc core1_0.FormatFeatureFlags = 0x00004000
	formatFeatureTransferDst core1_0.FormatFeatureFlags = 0x00008000
)

type usageRule struct {
	bit     swapchain.UsageBits
	feature core1_0.FormatFeatureFlags
	usage   core1_0.ImageUsageFlags
}

// Order matters only for diagnostics: the first failing bit is the one reported.
// UsageMutableFormat becomes an image create flag, not a usage.
var usageRules = []usageRule{
	{swapchain.UsageColor, core1_0.FormatFeatureColorAttachment, core1_0.ImageUsageColorAttachment},
	{swapchain.UsageInputAttachment, core1_0.FormatFeatureColorAttachment, core1_0.ImageUsageInputAttachment},
	{swapchain.UsageDepthStencil, core1_0.FormatFeatureDepthStencilAttachment, core1_0.ImageUsageDepthStencilAttachment},
	{swapchain.UsageTransferSrc, formatFeatureTransferSrc, core1_0.ImageUsageTransferSrc},
	{swapchain.UsageTransferDst, formatFeatureTransferDst, core1_0.ImageUsageTransferDst},
	{swapchain.UsageSampled, core1_0.FormatFeatureSampledImage, core1_0.ImageUsageSampled},
	{swapchain.UsageUnorderedAccess, core1_0.FormatFeatureStorageImage, core1_0.ImageUsageStorage},
}

// ImageUsage returns the Vulkan image usage implied by bits, without consulting the driver
func ImageUsage(bits swapchain.UsageBits) core1_0.ImageUsageFlags {
	var usage core1_0.ImageUsageFlags
	for _, rule := range usageRules {
		if bits&rule.bit != 0 {
			usage |= rule.usage
		}
	}
	return usage
}

// BarrierAccessMask returns the access flags for a barrier that hands an image back to the
// application
func BarrierAccessMask(bits swapchain.UsageBits) core1_0.AccessFlags {
	var access core1_0.AccessFlags

	if bits&swapchain.UsageUnorderedAccess != 0 {
		access |= core1_0.AccessInputAttachmentRead
		if bits&swapchain.UsageColor != 0 {
			access |= core1_0.AccessColorAttachmentRead
		}
		if bits&swapchain.UsageDepthStencil != 0 {
			access |= core1_0.AccessDepthStencilAttachmentRead
		}
	}
	if bits&swapchain.UsageColor != 0 {
		access |= core1_0.AccessColorAttachmentWrite
	}
	if bits&swapchain.UsageDepthStencil != 0 {
		access |= core1_0.AccessDepthStencilAttachmentWrite
	}
	if bits&swapchain.UsageTransferSrc != 0 {
		access |= core1_0.AccessTransferRead
	}
	if bits&swapchain.UsageTransferDst != 0 {
		access |= core1_0.AccessTransferWrite
	}
	if bits&swapchain.UsageSampled != 0 {
		access |= core1_0.AccessShaderRead
	}

	return access
}

// BarrierOptimalLayout returns the layout an application expects a freshly acquired image in.
// It panics for formats that are not compositor swapchain formats.
func BarrierOptimalLayout(format core1_0.Format) core1_0.ImageLayout {
	if mustClassify(format) == FormatClassColor {
		return core1_0.ImageLayoutColorAttachmentOptimal
	}
	return core1_0.ImageLayoutDepthStencilAttachmentOptimal
}

// BarrierAspectMask returns every aspect present in format. It panics for formats that are not
// compositor swapchain formats.
func BarrierAspectMask(format core1_0.Format) core1_0.ImageAspectFlags {
	switch mustClassify(format) {
	case FormatClassDepthStencil:
		return core1_0.ImageAspectDepth | core1_0.ImageAspectStencil
	case FormatClassDepth:
		return core1_0.ImageAspectDepth
	case FormatClassStencil:
		return core1_0.ImageAspectStencil
	default:
		return core1_0.ImageAspectColor
	}
}

// ImageViewAspect returns the aspect the compositor samples through a view of format. Combined
// depth-stencil formats are only ever sampled for depth.
func ImageViewAspect(format core1_0.Format, bits swapchain.UsageBits) core1_0.ImageAspectFlags {
	switch mustClassify(format) {
	case FormatClassDepthStencil, FormatClassDepth:
		return core1_0.ImageAspectDepth
	case FormatClassStencil:
		return core1_0.ImageAspectStencil
	default:
		return core1_0.ImageAspectColor
	}
}
