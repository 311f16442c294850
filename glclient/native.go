package glclient

import (
	"fmt"
	"time"

	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
)

// LayerType identifies the kind of composition layer being submitted
type LayerType int

const (
	LayerTypeProjection LayerType = iota
	LayerTypeProjectionDepth
	LayerTypeQuad
	LayerTypeCube
	LayerTypeCylinder
	LayerTypeEquirect1
	LayerTypeEquirect2
	LayerTypePassthrough
)

var layerTypeNames = map[LayerType]string{
	LayerTypeProjection:      "LayerTypeProjection",
	LayerTypeProjectionDepth: "LayerTypeProjectionDepth",
	LayerTypeQuad:            "LayerTypeQuad",
	LayerTypeCube:            "LayerTypeCube",
	LayerTypeCylinder:        "LayerTypeCylinder",
	LayerTypeEquirect1:       "LayerTypeEquirect1",
	LayerTypeEquirect2:       "LayerTypeEquirect2",
	LayerTypePassthrough:     "LayerTypePassthrough",
}

func (t LayerType) String() string {
	if name, ok := layerTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LayerType(%d)", int(t))
}

// LayerData carries the per-layer state the native compositor needs. Only the fields the
// adapter touches are modeled here, the rest travels in Payload.
type LayerData struct {
	Type LayerType
	// FlipY is set when the image's origin is at the bottom row, as it is for every GL texture
	FlipY     bool
	ViewCount int
	Payload   any
}

// FrameTiming is the result of waiting for the next frame
type FrameTiming struct {
	FrameID                int64
	PredictedDisplayTime   time.Duration
	PredictedDisplayPeriod time.Duration
}

// CompositorInfo describes what a compositor can display
type CompositorInfo struct {
	// Formats is ordered by preference
	Formats []swapchain.Format
}

// SwapchainCreateProperties are the compositor's requirements for a swapchain it is about to create
type SwapchainCreateProperties struct {
	ImageCount int
	// ExtraBits must be added to the usage of any swapchain created with these properties
	ExtraBits swapchain.UsageBits
}

// NativeCompositor is the compositor that owns the real images. It speaks in Vulkan formats.
type NativeCompositor interface {
	Info() CompositorInfo
	SwapchainCreateProperties(info *swapchain.CreateInfo) (SwapchainCreateProperties, error)
	CreateSwapchain(info *swapchain.CreateInfo) (NativeSwapchain, error)

	CreatePassthrough() error
	CreatePassthroughLayer() error
	DestroyPassthrough() error

	BeginSession() error
	EndSession() error
	WaitFrame() (FrameTiming, error)
	BeginFrame(frameID int64) error
	DiscardFrame(frameID int64) error

	LayerBegin(data *LayerData) error
	Layer(swapchains []NativeSwapchain, data *LayerData) error
	// LayerCommit submits every layer since LayerBegin. sync is a fence the compositor must wait
	// on before reading the images, or InvalidBuffer if the client already waited.
	LayerCommit(sync handle.Buffer) error
}

// NativeSwapchain is a swapchain owned by a NativeCompositor
type NativeSwapchain interface {
	ImageCount() int
	AcquireImage() (int, error)
	WaitImage(timeout time.Duration, index int) error
	ReleaseImage(index int) error
	Release()
}
