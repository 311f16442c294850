package vkimage

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu/gputest"
	"github.com/vkngwrapper/arsenal/xrswap/handle/handletest"
	"github.com/vkngwrapper/core/v2/core1_0"
)

func TestCreateImageSimple(t *testing.T) {
	device := gputest.New()
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	img, err := allocator.CreateImageSimple(core1_0.Extent2D{Width: 32, Height: 16}, csci.FormatB8G8R8A8Unorm, core1_0.ImageUsageTransferDst)
	require.NoError(t, err)
	require.Equal(t, 4096, img.Size)
	require.False(t, img.UseDedicatedAllocation)

	require.Len(t, device.CreatedImages, 1)
	info := device.CreatedImages[0]
	require.Equal(t, core1_0.ImageType2D, info.ImageType)
	require.Equal(t, core1_0.Extent3D{Width: 32, Height: 16, Depth: 1}, info.Extent)
	require.Equal(t, 1, info.MipLevels)
	require.Equal(t, 1, info.ArrayLayers)
	require.Equal(t, core1_0.Samples1, info.Samples)
	require.Equal(t, core1_0.ImageTilingOptimal, info.Tiling)
	require.Zero(t, info.ExternalHandleTypes)
	require.Nil(t, info.ViewFormats)

	require.Len(t, device.Allocations, 1)
	require.Equal(t, 1, device.Allocations[0].MemoryTypeIndex)
	require.Nil(t, device.Allocations[0].Import)
}

func TestCreateImageMutableRGBA(t *testing.T) {
	testCases := []struct {
		name       string
		formatList bool
		expected   []core1_0.Format
	}{
		{"WithFormatList", true, []core1_0.Format{csci.FormatR8G8B8A8Unorm, csci.FormatR8G8B8A8SRGB}},
		{"WithoutFormatList", false, nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			device := gputest.New()
			device.ImageFormatList = testCase.formatList
			allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

			_, err := allocator.CreateImageMutableRGBA(core1_0.Extent2D{Width: 8, Height: 8}, core1_0.ImageUsageSampled)
			require.NoError(t, err)

			info := device.CreatedImages[0]
			require.Equal(t, csci.FormatR8G8B8A8Unorm, info.Format)
			require.Equal(t, imageCreateMutableFormat, info.Flags&imageCreateMutableFormat)
			require.Equal(t, testCase.expected, info.ViewFormats)
		})
	}
}

func TestCreateImageAdvanced(t *testing.T) {
	device := gputest.New()
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	_, err := allocator.CreateImageAdvanced(
		core1_0.Extent3D{Width: 4, Height: 4, Depth: 4},
		csci.FormatR32SFloat,
		core1_0.ImageTilingLinear,
		core1_0.ImageUsageTransferSrc,
		core1_0.MemoryPropertyHostVisible,
	)
	require.NoError(t, err)

	info := device.CreatedImages[0]
	require.Equal(t, core1_0.ImageType3D, info.ImageType)
	require.Equal(t, core1_0.ImageTilingLinear, info.Tiling)
	// The first host visible type is index 0
	require.Equal(t, 0, device.Allocations[0].MemoryTypeIndex)
}

func TestCreateLocal_Rollback(t *testing.T) {
	testCases := []struct {
		name       string
		configure  func(device *gputest.Device)
		target     error
		destroyed  int
		freed      int
		allocCalls int
	}{
		{
			name:      "CreateImage",
			configure: func(device *gputest.Device) { device.Fail.CreateImage = 1 },
			target:    allocerr.ErrAllocationFailed,
		},
		{
			name:      "NoMemoryType",
			configure: func(device *gputest.Device) { device.Requirements.MemoryTypeBits = 0b001 },
			target:    allocerr.ErrNoMatchingMemoryType,
			destroyed: 1,
		},
		{
			name:       "AllocateMemory",
			configure:  func(device *gputest.Device) { device.Fail.AllocateMemory = 1 },
			target:     allocerr.ErrAllocationFailed,
			destroyed:  1,
			allocCalls: 1,
		},
		{
			name:       "BindImageMemory",
			configure:  func(device *gputest.Device) { device.Fail.BindImageMemory = 1 },
			target:     allocerr.ErrAllocationFailed,
			destroyed:  1,
			freed:      1,
			allocCalls: 1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			device := gputest.New()
			testCase.configure(device)
			allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

			img, err := allocator.CreateImageSimple(core1_0.Extent2D{Width: 8, Height: 8}, csci.FormatR8G8B8A8Unorm, core1_0.ImageUsageSampled)
			require.Error(t, err)
			require.True(t, errors.Is(err, testCase.target), "%+v", err)
			require.True(t, img.IsNull())

			require.Equal(t, 0, device.LiveImages())
			require.Equal(t, 0, device.LiveMemory())
			require.Equal(t, testCase.destroyed, device.Calls.DestroyImage)
			require.Equal(t, testCase.freed, device.Calls.FreeMemory)
			require.Equal(t, testCase.allocCalls, device.Calls.AllocateMemory)
		})
	}
}
