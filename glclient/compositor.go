package glclient

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/internal/utils"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/core/v2/common"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate optional compositor behaviors
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CompositorCreateRenderDocMarkers inserts a debug message at every commit so frame captures
	// can be split on application frames
	CompositorCreateRenderDocMarkers CreateFlags = 1 << iota
)

func init() {
	CompositorCreateRenderDocMarkers.Register("CompositorCreateRenderDocMarkers")
}

const frameEndMarker = "vr-marker,frame_end,type,application"

// CreateOptions configures a Compositor. Context and GL are required.
type CreateOptions struct {
	Flags   CreateFlags
	Context ContextFuncs
	GL      GL
	// Factory builds GL textures over native swapchain images. It is required to create swapchains.
	Factory SwapchainFactory
	// InsertFence is optional. Without it every commit waits for the GPU with Finish.
	InsertFence InsertFence
}

// Compositor lets an OpenGL client submit to a native compositor. Formats cross the boundary in
// both directions: GL internal formats on the client side, Vulkan formats on the native side.
//
// The client's context is only ever made current by one goroutine at a time.
type Compositor struct {
	logger      *slog.Logger
	native      NativeCompositor
	flags       CreateFlags
	context     ContextFuncs
	gl          GL
	factory     SwapchainFactory
	insertFence InsertFence

	contextMutex utils.OptionalMutex

	info           CompositorInfo
	maxTextureSize int32
}

// New wraps native for a GL client. The formats the native compositor offers are passed through,
// minus those with no GL equivalent.
func New(logger *slog.Logger, native NativeCompositor, options CreateOptions) (*Compositor, error) {
	if native == nil {
		return nil, errors.New("attempted to create a compositor without a native compositor")
	}
	if options.Context.Begin == nil || options.Context.End == nil {
		return nil, errors.New("attempted to create a compositor without context functions")
	}
	if options.GL == nil {
		return nil, errors.New("attempted to create a compositor without a GL implementation")
	}

	c := &Compositor{
		logger:       logger,
		native:       native,
		flags:        options.Flags,
		context:      options.Context,
		gl:           options.GL,
		factory:      options.Factory,
		insertFence:  options.InsertFence,
		contextMutex: utils.OptionalMutex{UseMutex: true},
	}

	for _, format := range native.Info().Formats {
		glFormat := FormatFromVulkan(format)
		if glFormat == GLFormatInvalid {
			logger.Warn("Compositor::New skipping format with no GL equivalent", slog.Int64("Format", int64(format)))
			continue
		}
		c.info.Formats = append(c.info.Formats, swapchain.Format(glFormat))
	}

	err := c.withContext(ContextReasonOther, func() error {
		c.maxTextureSize = c.gl.GetInteger(glMaxTextureSize)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Compositor::New",
		slog.Int("FormatCount", len(c.info.Formats)),
		slog.Int("MaxTextureSize", int(c.maxTextureSize)),
		slog.String("Flags", c.flags.String()),
	)

	return c, nil
}

// Info returns the compositor's formats as GL internal formats
func (c *Compositor) Info() CompositorInfo {
	return c.info
}

func (c *Compositor) MaxTextureSize() int32 { return c.maxTextureSize }

// ContextBegin makes the client's context current for this goroutine. It blocks while another
// goroutine holds the context. A successful ContextBegin must be paired with ContextEnd.
func (c *Compositor) ContextBegin(reason ContextReason) error {
	c.contextMutex.Lock()

	err := c.context.Begin(reason)
	if err != nil {
		c.contextMutex.Unlock()
		c.logger.Error("Compositor::ContextBegin failed", slog.String("Reason", reason.String()), slog.Any("Error", err))
		return errors.Mark(errors.Wrapf(err, "making context current for %s", reason), ErrOpenGL)
	}

	return nil
}

func (c *Compositor) ContextEnd(reason ContextReason) {
	c.context.End(reason)
	c.contextMutex.Unlock()
}

func (c *Compositor) withContext(reason ContextReason, fn func() error) error {
	err := c.ContextBegin(reason)
	if err != nil {
		return err
	}
	defer c.ContextEnd(reason)

	return fn()
}

// SwapchainCreateProperties translates info's GL format and asks the native compositor for its
// requirements
func (c *Compositor) SwapchainCreateProperties(info *swapchain.CreateInfo) (SwapchainCreateProperties, error) {
	vkInfo, err := c.nativeInfo(info)
	if err != nil {
		return SwapchainCreateProperties{}, err
	}

	return c.native.SwapchainCreateProperties(&vkInfo)
}

func (c *Compositor) nativeInfo(info *swapchain.CreateInfo) (swapchain.CreateInfo, error) {
	vkFormat := FormatToVulkan(GLFormat(info.Format))
	if vkFormat == 0 {
		c.logger.Warn("Compositor: GL format has no compositor equivalent", slog.String("Format", GLFormat(info.Format).String()))
		return swapchain.CreateInfo{}, errors.Wrapf(ErrFormatUnsupported, "%s", GLFormat(info.Format))
	}

	vkInfo := *info
	vkInfo.Format = vkFormat
	return vkInfo, nil
}

// CreateSwapchain creates a native swapchain for info and imports its images as GL textures. info
// carries a GL internal format. The texture bound to the swapchain's target is the same before
// and after the call.
func (c *Compositor) CreateSwapchain(info *swapchain.CreateInfo) (*Swapchain, error) {
	if info.Create&swapchain.CreateProtectedContent != 0 {
		return nil, errors.Wrapf(ErrFlagValidButUnsupported, "%s", swapchain.CreateProtectedContent)
	}
	if c.factory == nil {
		return nil, errors.New("Compositor::CreateSwapchain called on a compositor without a swapchain factory")
	}

	vkInfo, err := c.nativeInfo(info)
	if err != nil {
		return nil, err
	}

	props, err := c.native.SwapchainCreateProperties(&vkInfo)
	if err != nil {
		return nil, err
	}
	vkInfo.Usage |= props.ExtraBits

	// The client sees the usage the native compositor actually created
	xinfo := *info
	xinfo.Usage |= props.ExtraBits

	var sc *Swapchain
	err = c.withContext(ContextReasonOther, func() error {
		if info.ArraySize > 1 && strings.HasPrefix(c.gl.Version(), es2VersionPrefix) {
			c.logger.Error("Compositor::CreateSwapchain only one array layer is supported with OpenGL ES 2",
				slog.Int("ArraySize", info.ArraySize),
			)
			return errors.Wrapf(ErrFlagValidButUnsupported, "OpenGL ES 2 supports a single array layer, got %d", info.ArraySize)
		}

		native, err := c.native.CreateSwapchain(&vkInfo)
		if err != nil {
			return err
		}

		target, binding := TextureTarget(info.FaceCount, info.ArraySize)
		previous := uint32(c.gl.GetInteger(binding))
		defer c.gl.BindTexture(target, previous)

		images, err := c.factory(&xinfo, native)
		if err != nil {
			native.Release()
			c.logger.Error("Compositor::CreateSwapchain could not import images", slog.Any("Error", err))
			return errors.Mark(errors.Wrap(err, "importing swapchain images"), ErrOpenGL)
		}

		sc = &Swapchain{
			compositor:    c,
			native:        native,
			info:          xinfo,
			images:        images,
			TextureTarget: target,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sc, nil
}

func (c *Compositor) CreatePassthrough() error { return c.native.CreatePassthrough() }
func (c *Compositor) CreatePassthroughLayer() error { return c.native.CreatePassthroughLayer() }
func (c *Compositor) DestroyPassthrough() error { return c.native.DestroyPassthrough() }

func (c *Compositor) BeginSession() error { return c.native.BeginSession() }
func (c *Compositor) EndSession() error { return c.native.EndSession() }
func (c *Compositor) WaitFrame() (FrameTiming, error) { return c.native.WaitFrame() }
func (c *Compositor) BeginFrame(frameID int64) error { return c.native.BeginFrame(frameID) }
func (c *Compositor) DiscardFrame(frameID int64) error { return c.native.DiscardFrame(frameID) }

func (c *Compositor) LayerBegin(data *LayerData) error {
	return c.native.LayerBegin(data)
}

// layer submits a layer with its Y axis flipped, since GL images start at the bottom row
func (c *Compositor) layer(layerType LayerType, swapchains []*Swapchain, data *LayerData) error {
	natives := make([]NativeSwapchain, len(swapchains))
	for i, sc := range swapchains {
		if sc == nil {
			return errors.Newf("%s layer submitted with a nil swapchain at %d", layerType, i)
		}
		natives[i] = sc.native
	}

	flipped := *data
	flipped.Type = layerType
	flipped.FlipY = !flipped.FlipY

	return c.native.Layer(natives, &flipped)
}

// LayerProjection submits one color swapchain per view
func (c *Compositor) LayerProjection(swapchains []*Swapchain, data *LayerData) error {
	if len(swapchains) != data.ViewCount || data.ViewCount > swapchain.MaxViews {
		return errors.Newf("projection layer needs one swapchain per view, got %d for %d views", len(swapchains), data.ViewCount)
	}
	return c.layer(LayerTypeProjection, swapchains, data)
}

// LayerProjectionDepth submits one color swapchain per view followed by one depth swapchain per view
func (c *Compositor) LayerProjectionDepth(color []*Swapchain, depth []*Swapchain, data *LayerData) error {
	if len(color) != data.ViewCount || len(depth) != data.ViewCount || data.ViewCount > swapchain.MaxViews {
		return errors.Newf("projection depth layer needs one color and one depth swapchain per view, got %d and %d for %d views",
			len(color), len(depth), data.ViewCount)
	}

	swapchains := make([]*Swapchain, 0, len(color)+len(depth))
	swapchains = append(swapchains, color...)
	swapchains = append(swapchains, depth...)
	return c.layer(LayerTypeProjectionDepth, swapchains, data)
}

func (c *Compositor) LayerQuad(sc *Swapchain, data *LayerData) error {
	return c.layer(LayerTypeQuad, []*Swapchain{sc}, data)
}

func (c *Compositor) LayerCube(sc *Swapchain, data *LayerData) error {
	return c.layer(LayerTypeCube, []*Swapchain{sc}, data)
}

func (c *Compositor) LayerCylinder(sc *Swapchain, data *LayerData) error {
	return c.layer(LayerTypeCylinder, []*Swapchain{sc}, data)
}

func (c *Compositor) LayerEquirect1(sc *Swapchain, data *LayerData) error {
	return c.layer(LayerTypeEquirect1, []*Swapchain{sc}, data)
}

func (c *Compositor) LayerEquirect2(sc *Swapchain, data *LayerData) error {
	return c.layer(LayerTypeEquirect2, []*Swapchain{sc}, data)
}

func (c *Compositor) LayerPassthrough(data *LayerData) error {
	return c.layer(LayerTypePassthrough, nil, data)
}

// LayerCommit makes all submitted GL work visible to the compositor and commits the frame's
// layers. The client never hands in a fence of its own, the compositor gets the one this call
// creates or none at all after a full Finish. The frame is committed even when the context cannot
// be made current.
func (c *Compositor) LayerCommit(sync handle.Buffer) error {
	if sync.IsValid() {
		panic("Compositor::LayerCommit received a sync handle, GL clients must not provide one")
	}

	err := c.withContext(ContextReasonSynchronize, func() error {
		if c.flags&CompositorCreateRenderDocMarkers != 0 {
			c.gl.DebugMessageInsert(frameEndMarker)
		}

		if c.insertFence != nil {
			fence, err := c.insertFence()
			if err == nil {
				sync = fence
				return nil
			}
			c.logger.Error("Compositor::LayerCommit could not insert fence, waiting with Finish", slog.Any("Error", err))
		}

		c.gl.Finish()
		return nil
	})
	if err != nil {
		// Nothing was flushed, so there is nothing to wait on
		sync = handle.InvalidBuffer
	}

	return c.native.LayerCommit(sync)
}
