package d3d12

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
)

func TestResourceFlagsFromUsage(t *testing.T) {
	testCases := map[string]struct {
		Bits  swapchain.UsageBits
		Flags ResourceFlags
	}{
		"SampledColor": {
			Bits:  swapchain.UsageColor | swapchain.UsageSampled,
			Flags: ResourceFlagAllowRenderTarget,
		},
		"SampledUnordered": {
			Bits:  swapchain.UsageUnorderedAccess | swapchain.UsageSampled,
			Flags: ResourceFlagAllowUnorderedAccess,
		},
		"DepthOnly": {
			Bits:  swapchain.UsageDepthStencil,
			Flags: ResourceFlagAllowDepthStencil | ResourceFlagDenyShaderResource,
		},
		"SampledOnly": {
			Bits: swapchain.UsageSampled,
		},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			require.Equal(t, testCase.Flags, ResourceFlagsFromUsage(testCase.Bits))
		})
	}
}

func TestResourceFlagsFromUsage_UnsampledColorPanics(t *testing.T) {
	require.Panics(t, func() {
		ResourceFlagsFromUsage(swapchain.UsageColor)
	})
}

func TestAppResourceState(t *testing.T) {
	testCases := map[string]struct {
		Bits  swapchain.UsageBits
		State ResourceStates
	}{
		"Color":         {Bits: swapchain.UsageColor | swapchain.UsageUnorderedAccess, State: ResourceStateRenderTarget},
		"Depth":         {Bits: swapchain.UsageDepthStencil | swapchain.UsageTransferSrc, State: ResourceStateDepthWrite},
		"Unordered":     {Bits: swapchain.UsageUnorderedAccess | swapchain.UsageTransferSrc, State: ResourceStateUnorderedAccess},
		"TransferSrc":   {Bits: swapchain.UsageTransferSrc | swapchain.UsageTransferDst, State: ResourceStateCopySource},
		"TransferDst":   {Bits: swapchain.UsageTransferDst | swapchain.UsageMutableFormat, State: ResourceStateCopyDest},
		"Mutable":       {Bits: swapchain.UsageMutableFormat | swapchain.UsageInputAttachment, State: ResourceStateCommon},
		"Input":         {Bits: swapchain.UsageInputAttachment, State: ResourceStatePixelShaderResource},
		"SampledOnly":   {Bits: swapchain.UsageSampled, State: ResourceStateCommon},
		"NothingAtAll":  {State: ResourceStateCommon},
		"InputSampled":  {Bits: swapchain.UsageInputAttachment | swapchain.UsageSampled, State: ResourceStatePixelShaderResource},
		"ColorSampled":  {Bits: swapchain.UsageColor | swapchain.UsageSampled, State: ResourceStateRenderTarget},
		"DepthSampled":  {Bits: swapchain.UsageDepthStencil | swapchain.UsageSampled, State: ResourceStateDepthWrite},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			state := AppResourceState(testCase.Bits)
			require.Equal(t, testCase.State, state)
			require.Equal(t, state, AppResourceState(testCase.Bits))
		})
	}
}

func TestAppResourceState_ColorAndDepthPanics(t *testing.T) {
	for extra := swapchain.UsageBits(0); extra < swapchain.UsageInputAttachment<<1; extra++ {
		bits := extra | swapchain.UsageColor | swapchain.UsageDepthStencil
		require.Panics(t, func() { AppResourceState(bits) }, "bits %d", bits)
	}
}

func TestCompositorResourceState(t *testing.T) {
	require.Equal(t, ResourceStatePixelShaderResource, CompositorResourceState(swapchain.UsageColor))
	require.Equal(t,
		ResourceStatePixelShaderResource|ResourceStateUnorderedAccess|ResourceStateDepthRead,
		CompositorResourceState(swapchain.UsageUnorderedAccess|swapchain.UsageDepthStencil))
}

func TestResourceStateString(t *testing.T) {
	require.Equal(t, "D3D12_RESOURCE_STATE_COMMON", ResourceStateCommon.String())
}
