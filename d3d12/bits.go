package d3d12

import (
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/core/v2/common"
)

// ResourceFlags mirrors D3D12_RESOURCE_FLAGS
type ResourceFlags uint32

var resourceFlagsMapping = common.NewFlagStringMapping[ResourceFlags]()

func (f ResourceFlags) Register(str string) {
	resourceFlagsMapping.Register(f, str)
}
func (f ResourceFlags) String() string {
	return resourceFlagsMapping.FlagsToString(f)
}

const (
	ResourceFlagAllowRenderTarget    ResourceFlags = 0x1
	ResourceFlagAllowDepthStencil    ResourceFlags = 0x2
	ResourceFlagAllowUnorderedAccess ResourceFlags = 0x4
	ResourceFlagDenyShaderResource   ResourceFlags = 0x8
)

// ResourceStates mirrors D3D12_RESOURCE_STATES
type ResourceStates uint32

var resourceStatesMapping = common.NewFlagStringMapping[ResourceStates]()

func (f ResourceStates) Register(str string) {
	resourceStatesMapping.Register(f, str)
}
func (f ResourceStates) String() string {
	if f == ResourceStateCommon {
		return "D3D12_RESOURCE_STATE_COMMON"
	}
	return resourceStatesMapping.FlagsToString(f)
}

const (
	ResourceStateCommon              ResourceStates = 0
	ResourceStateRenderTarget        ResourceStates = 0x4
	ResourceStateUnorderedAccess     ResourceStates = 0x8
	ResourceStateDepthWrite          ResourceStates = 0x10
	ResourceStateDepthRead           ResourceStates = 0x20
	ResourceStatePixelShaderResource ResourceStates = 0x80
	ResourceStateCopyDest            ResourceStates = 0x400
	ResourceStateCopySource          ResourceStates = 0x800
)

func init() {
	ResourceFlagAllowRenderTarget.Register("D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET")
	ResourceFlagAllowDepthStencil.Register("D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL")
	ResourceFlagAllowUnorderedAccess.Register("D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS")
	ResourceFlagDenyShaderResource.Register("D3D12_RESOURCE_FLAG_DENY_SHADER_RESOURCE")

	ResourceStateRenderTarget.Register("D3D12_RESOURCE_STATE_RENDER_TARGET")
	ResourceStateUnorderedAccess.Register("D3D12_RESOURCE_STATE_UNORDERED_ACCESS")
	ResourceStateDepthWrite.Register("D3D12_RESOURCE_STATE_DEPTH_WRITE")
	ResourceStateDepthRead.Register("D3D12_RESOURCE_STATE_DEPTH_READ")
	ResourceStatePixelShaderResource.Register("D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE")
	ResourceStateCopyDest.Register("D3D12_RESOURCE_STATE_COPY_DEST")
	ResourceStateCopySource.Register("D3D12_RESOURCE_STATE_COPY_SOURCE")
}

// ResourceFlagsFromUsage returns the flags to create a D3D12 resource with. D3D12 denies shader
// access unless asked not to, and only depth/stencil resources may deny it, so bits without
// UsageSampled must include UsageDepthStencil.
func ResourceFlagsFromUsage(bits swapchain.UsageBits) ResourceFlags {
	var flags ResourceFlags

	if bits&swapchain.UsageColor != 0 {
		flags |= ResourceFlagAllowRenderTarget
	}
	if bits&swapchain.UsageDepthStencil != 0 {
		flags |= ResourceFlagAllowDepthStencil
	}
	if bits&swapchain.UsageUnorderedAccess != 0 {
		flags |= ResourceFlagAllowUnorderedAccess
	}
	if bits&swapchain.UsageSampled == 0 {
		if bits&swapchain.UsageDepthStencil == 0 {
			panic("called ResourceFlagsFromUsage without UsageSampled on a resource that is not depth/stencil")
		}
		flags |= ResourceFlagDenyShaderResource
	}

	return flags
}

// AppResourceState returns the state an acquired image must be in when handed to the
// application. Color and depth/stencil usage are mutually exclusive. With neither, the
// precedence is unordered access, copy source, copy dest, mutable, input attachment, which is
// policy rather than anything D3D12 requires.
func AppResourceState(bits swapchain.UsageBits) ResourceStates {
	useColor := bits&swapchain.UsageColor != 0
	useDepth := bits&swapchain.UsageDepthStencil != 0

	switch {
	case useColor:
		if useDepth {
			panic("called AppResourceState with both UsageColor and UsageDepthStencil - only one is permitted")
		}
		return ResourceStateRenderTarget
	case useDepth:
		return ResourceStateDepthWrite
	case bits&swapchain.UsageUnorderedAccess != 0:
		return ResourceStateUnorderedAccess
	case bits&swapchain.UsageTransferSrc != 0:
		return ResourceStateCopySource
	case bits&swapchain.UsageTransferDst != 0:
		return ResourceStateCopyDest
	case bits&swapchain.UsageMutableFormat != 0:
		return ResourceStateCommon
	case bits&swapchain.UsageInputAttachment != 0:
		return ResourceStatePixelShaderResource
	}

	return ResourceStateCommon
}

// CompositorResourceState returns the state the compositor keeps an image in while it reads it
func CompositorResourceState(bits swapchain.UsageBits) ResourceStates {
	state := ResourceStatePixelShaderResource

	if bits&swapchain.UsageUnorderedAccess != 0 {
		state |= ResourceStateUnorderedAccess
	}
	if bits&swapchain.UsageDepthStencil != 0 {
		state |= ResourceStateDepthRead
	}

	return state
}
