package swapchain

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
)

const (
	// MaxImages is the largest number of images a single swapchain may hold
	MaxImages int = 8
	// MaxFormatList is the largest number of entries in CreateInfo.Formats
	MaxFormatList int = 8
	// MaxFormats is the largest number of formats a compositor advertises
	MaxFormats int = 16
	// MaxViews is the number of views in a stereo projection layer
	MaxViews int = 2
)

// Format is an API-specific pixel format identifier. Which API it belongs to depends on who is
// speaking: compositor-facing calls carry Vulkan format values, GL clients carry GL internal formats.
type Format int64

// UsageBits indicate what an application intends to do with a swapchain image
type UsageBits uint32

var usageBitsMapping = common.NewFlagStringMapping[UsageBits]()

func (f UsageBits) Register(str string) {
	usageBitsMapping.Register(f, str)
}
func (f UsageBits) String() string {
	return usageBitsMapping.FlagsToString(f)
}

const (
	UsageColor UsageBits = 1 << iota
	UsageDepthStencil
	UsageUnorderedAccess
	UsageTransferSrc
	UsageTransferDst
	UsageSampled
	UsageMutableFormat
	UsageInputAttachment
)

// CreateFlags indicate optional swapchain behaviors
type CreateFlags uint32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CreateProtectedContent requests images backed by protected memory
	CreateProtectedContent CreateFlags = 1 << iota
	// CreateStaticImage indicates the application will only ever acquire a single image
	CreateStaticImage
)

func init() {
	UsageColor.Register("UsageColor")
	UsageDepthStencil.Register("UsageDepthStencil")
	UsageUnorderedAccess.Register("UsageUnorderedAccess")
	UsageTransferSrc.Register("UsageTransferSrc")
	UsageTransferDst.Register("UsageTransferDst")
	UsageSampled.Register("UsageSampled")
	UsageMutableFormat.Register("UsageMutableFormat")
	UsageInputAttachment.Register("UsageInputAttachment")

	CreateProtectedContent.Register("CreateProtectedContent")
	CreateStaticImage.Register("CreateStaticImage")
}

// UsageFlagString names a single usage bit. It returns "NO BITS SET" for zero and
// "MULTIPLE BITS SET" when more than one bit is present, for use in diagnostics that describe
// one failing bit at a time.
func UsageFlagString(bit UsageBits) string {
	if bit == 0 {
		return "NO BITS SET"
	}
	if bit&(bit-1) != 0 {
		return "MULTIPLE BITS SET"
	}
	if str, ok := usageBitNames[bit]; ok {
		return str
	}
	return "UNKNOWN USAGE BIT"
}

var usageBitNames = map[UsageBits]string{
	UsageColor:           "XRT_SWAPCHAIN_USAGE_COLOR",
	UsageDepthStencil:    "XRT_SWAPCHAIN_USAGE_DEPTH_STENCIL",
	UsageUnorderedAccess: "XRT_SWAPCHAIN_USAGE_UNORDERED_ACCESS",
	UsageTransferSrc:     "XRT_SWAPCHAIN_USAGE_TRANSFER_SRC",
	UsageTransferDst:     "XRT_SWAPCHAIN_USAGE_TRANSFER_DST",
	UsageSampled:         "XRT_SWAPCHAIN_USAGE_SAMPLED",
	UsageMutableFormat:   "XRT_SWAPCHAIN_USAGE_MUTABLE_FORMAT",
	UsageInputAttachment: "XRT_SWAPCHAIN_USAGE_INPUT_ATTACHMENT",
}

// CreateInfo describes a swapchain to allocate. It is treated as immutable once handed to an
// allocator.
type CreateInfo struct {
	Create      CreateFlags
	Usage       UsageBits
	Format      Format
	SampleCount int
	Width       int
	Height      int
	// FaceCount is 6 for cube maps and 1 otherwise
	FaceCount int
	ArraySize int
	MipCount  int

	// Formats lists additional formats that views of a mutable-format image may use
	Formats []Format
}

// Validate checks the structural constraints of a CreateInfo
func (i CreateInfo) Validate() error {
	if i.Width <= 0 || i.Height <= 0 {
		return errors.Newf("swapchain extent must be positive, got %dx%d", i.Width, i.Height)
	}
	if i.MipCount <= 0 {
		return errors.Newf("swapchain mip count must be positive, got %d", i.MipCount)
	}
	if i.ArraySize <= 0 {
		return errors.Newf("swapchain array size must be positive, got %d", i.ArraySize)
	}
	if i.FaceCount != 1 && i.FaceCount != 6 {
		return errors.Newf("swapchain face count must be 1 or 6, got %d", i.FaceCount)
	}
	if len(i.Formats) > MaxFormatList {
		return errors.Newf("swapchain format list has %d entries, the maximum is %d", len(i.Formats), MaxFormatList)
	}

	return nil
}

// Samples returns the sample count, treating an unset count as single-sampled
func (i CreateInfo) Samples() int {
	if i.SampleCount <= 0 {
		return 1
	}
	return i.SampleCount
}
