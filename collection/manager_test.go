package collection

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/gpu/gputest"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/handle/handletest"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/arsenal/xrswap/vkimage"
	"golang.org/x/exp/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func newTestManager(t *testing.T, device *gputest.Device, strategy *handletest.Strategy) *Manager {
	allocator, err := vkimage.New(testLogger(), device, strategy, vkimage.CreateOptions{})
	require.NoError(t, err)
	return NewManager(testLogger(), allocator)
}

func testInfo() *swapchain.CreateInfo {
	return &swapchain.CreateInfo{
		Usage:     swapchain.UsageColor | swapchain.UsageSampled,
		Format:    swapchain.Format(csci.FormatR8G8B8A8SRGB),
		Width:     1920,
		Height:    1080,
		FaceCount: 1,
		ArraySize: 1,
		MipCount:  1,
	}
}

func TestAllocate(t *testing.T) {
	device := gputest.New()
	manager := newTestManager(t, device, handletest.NewOpaqueFD())

	c, err := manager.Allocate(testInfo(), 3)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	require.Equal(t, 3, c.ImageCount)
	require.Equal(t, *testInfo(), c.Info)

	for i := 0; i < 3; i++ {
		require.False(t, c.Images[i].IsNull())
		require.Equal(t, imageName, device.Names[c.Images[i].Image])
	}

	manager.Destroy(&c)
	require.Equal(t, ImageCollection{}, c)
	require.Equal(t, 0, device.LiveImages())
	require.Equal(t, 0, device.LiveMemory())
}

func TestAllocate_CapacityExceeded(t *testing.T) {
	device := gputest.New()
	manager := newTestManager(t, device, handletest.NewOpaqueFD())

	c, err := manager.Allocate(testInfo(), swapchain.MaxImages+1)
	require.True(t, errors.Is(err, allocerr.ErrCapacityExceeded))
	require.Equal(t, ImageCollection{}, c)
	require.Equal(t, gputest.Calls{}, device.Calls)

	_, err = manager.AllocateFromNatives(testInfo(), make([]handle.Native, 9), swapchain.MaxImages+1)
	require.True(t, errors.Is(err, allocerr.ErrCapacityExceeded))
	require.Equal(t, gputest.Calls{}, device.Calls)
}

func TestAllocate_MaxImages(t *testing.T) {
	device := gputest.New()
	manager := newTestManager(t, device, handletest.NewOpaqueFD())

	c, err := manager.Allocate(testInfo(), swapchain.MaxImages)
	require.NoError(t, err)
	require.Equal(t, swapchain.MaxImages, c.ImageCount)
	require.Equal(t, swapchain.MaxImages, device.LiveImages())
}

func TestAllocate_InvalidInfo(t *testing.T) {
	device := gputest.New()
	manager := newTestManager(t, device, handletest.NewOpaqueFD())

	info := testInfo()
	info.FaceCount = 3

	_, err := manager.Allocate(info, 2)
	require.Error(t, err)
	require.Equal(t, 0, device.Calls.Allocations())
}

func TestAllocate_BindFailureRollback(t *testing.T) {
	const imageCount = 4

	for k := 1; k <= imageCount; k++ {
		device := gputest.New()
		device.Fail.BindImageMemory = k
		manager := newTestManager(t, device, handletest.NewOpaqueFD())

		c, err := manager.Allocate(testInfo(), imageCount)
		require.True(t, errors.Is(err, allocerr.ErrAllocationFailed))
		require.Equal(t, ImageCollection{}, c)

		// k-1 images rolled back by the manager plus the failing image's own cleanup
		require.Equal(t, k, device.Calls.DestroyImage)
		require.Equal(t, k, device.Calls.FreeMemory)
		require.Equal(t, k, device.Calls.CreateImage)
		require.Equal(t, 0, device.LiveImages())
		require.Equal(t, 0, device.LiveMemory())

		// The failing image goes first, then the earlier ones newest to oldest
		for i := 1; i < k; i++ {
			require.Equal(t, gpu.Image(2*(k-i)-1), device.DestroyedImages[i])
		}
	}
}

func TestAllocateFromNatives(t *testing.T) {
	device := gputest.New()
	strategy := handletest.NewOpaqueFD()
	manager := newTestManager(t, device, strategy)

	natives := []handle.Native{
		{Handle: 10, Size: 4096},
		{Handle: 11, Size: 4096},
		{Handle: 12, Size: 8192},
	}

	c, err := manager.AllocateFromNatives(testInfo(), natives, 3)
	require.NoError(t, err)
	require.Equal(t, 3, c.ImageCount)
	require.NoError(t, c.Validate())

	// The driver consumed the duplicates, the originals were closed
	require.Equal(t, []handle.Buffer{501, 502, 503}, strategy.Refs)
	require.Equal(t, []handle.Buffer{10, 11, 12}, strategy.Unrefs)
	for i, native := range natives {
		require.False(t, native.Handle.IsValid())
		require.Zero(t, native.Size)
		require.Equal(t, strategy.Refs[i], device.Allocations[i].Import.Buffer)
	}
}

func TestAllocateFromNatives_DXGI(t *testing.T) {
	device := gputest.New()
	strategy := handletest.NewOpaqueFD()
	manager := newTestManager(t, device, strategy)

	natives := []handle.Native{
		{Handle: 10, IsDXGIHandle: true},
		{Handle: 11, IsDXGIHandle: true},
	}

	_, err := manager.AllocateFromNatives(testInfo(), natives, 2)
	require.NoError(t, err)
	require.Empty(t, strategy.Refs)
	require.Empty(t, strategy.Unrefs)
	require.Equal(t, handle.Buffer(10), device.Allocations[0].Import.Buffer)
	require.Equal(t, handle.TypeD3D11TextureKMT, device.Allocations[0].Import.HandleType)
	require.Zero(t, natives[0].Size)
}

func TestAllocateFromNatives_ImportFailure(t *testing.T) {
	device := gputest.New()
	device.Fail.BindImageMemory = 3
	strategy := handletest.NewAHardwareBuffer()
	manager := newTestManager(t, device, strategy)

	natives := []handle.Native{
		{Handle: 10, Size: 4096},
		{Handle: 11, Size: 4096},
		{Handle: 12, Size: 4096},
	}

	c, err := manager.AllocateFromNatives(testInfo(), natives, 3)
	require.True(t, errors.Is(err, allocerr.ErrAllocationFailed))
	require.Equal(t, ImageCollection{}, c)

	// Two imports consumed their references, the third reference was given back
	require.Equal(t, []handle.Buffer{10, 11, 12}, strategy.Refs)
	require.Equal(t, []handle.Buffer{10, 11, 12}, strategy.Unrefs)
	require.Equal(t, []handle.Native{
		{Handle: 10, Size: 4096},
		{Handle: 11, Size: 4096},
		{Handle: 12, Size: 4096},
	}, natives)
	require.Equal(t, 0, device.LiveImages())
	require.Equal(t, 0, device.LiveMemory())
}

func TestAllocateFromNatives_RefFailure(t *testing.T) {
	device := gputest.New()
	strategy := handletest.NewOpaqueFD()
	strategy.FailRef = 2
	manager := newTestManager(t, device, strategy)

	natives := []handle.Native{
		{Handle: 10, Size: 4096},
		{Handle: 11, Size: 4096},
	}

	_, err := manager.AllocateFromNatives(testInfo(), natives, 2)
	require.True(t, errors.Is(err, allocerr.ErrImportFailed))
	require.Equal(t, 1, device.Calls.CreateImage)
	require.Equal(t, 0, device.LiveImages())
	require.Empty(t, strategy.Unrefs)
	require.Equal(t, handle.Buffer(10), natives[0].Handle)
	require.Equal(t, 4096, natives[0].Size)
}

func TestAllocateFromNatives_TooFewNatives(t *testing.T) {
	device := gputest.New()
	manager := newTestManager(t, device, handletest.NewOpaqueFD())

	_, err := manager.AllocateFromNatives(testInfo(), []handle.Native{{Handle: 1, Size: 4096}}, 2)
	require.Error(t, err)
	require.Equal(t, 0, device.Calls.Allocations())
}

func TestHandles(t *testing.T) {
	device := gputest.New()
	strategy := handletest.NewOpaqueFD()
	manager := newTestManager(t, device, strategy)

	c, err := manager.Allocate(testInfo(), 3)
	require.NoError(t, err)

	handles, err := manager.Handles(&c, 8)
	require.NoError(t, err)
	require.Len(t, handles, 3)
	for i, buffer := range handles {
		require.Equal(t, handle.Buffer(1000+uint64(c.Images[i].Memory)), buffer)
	}

	handles, err = manager.Handles(&c, 2)
	require.NoError(t, err)
	require.Len(t, handles, 2)
}

func TestHandles_PartialFailure(t *testing.T) {
	device := gputest.New()
	device.Fail.ExportMemoryHandle = 2
	strategy := handletest.NewOpaqueFD()
	manager := newTestManager(t, device, strategy)

	c, err := manager.Allocate(testInfo(), 3)
	require.NoError(t, err)

	handles, err := manager.Handles(&c, 3)
	require.Error(t, err)
	require.Nil(t, handles)
	require.Equal(t, 2, device.Calls.ExportMemoryHandle)
	require.Equal(t, []handle.Buffer{device.Exported[0]}, strategy.Unrefs)

	// The collection itself is untouched
	require.NoError(t, c.Validate())
	require.Equal(t, 3, c.ImageCount)
}

func TestValidate(t *testing.T) {
	var c ImageCollection
	require.NoError(t, c.Validate())

	c.ImageCount = 1
	require.Error(t, c.Validate())

	c.Images[0] = vkimage.SharedImage{Image: 1, Memory: 2}
	require.NoError(t, c.Validate())

	c.Images[3] = vkimage.SharedImage{Image: 5}
	require.Error(t, c.Validate())

	c.ImageCount = swapchain.MaxImages + 1
	require.Error(t, c.Validate())
}

func TestWriteStats(t *testing.T) {
	c := ImageCollection{
		ImageCount: 1,
		Info:       *testInfo(),
	}
	c.Images[0] = vkimage.SharedImage{Image: 3, Memory: 4, Size: 4096, UseDedicatedAllocation: true}

	writer := jwriter.NewWriter()
	c.WriteStats(&writer)
	require.NoError(t, writer.Error())

	require.JSONEq(t, `{
		"ImageCount": 1,
		"Format": "VK_FORMAT_R8G8B8A8_SRGB",
		"Usage": "`+c.Info.Usage.String()+`",
		"Width": 1920,
		"Height": 1080,
		"ArraySize": 1,
		"FaceCount": 1,
		"Images": [
			{"Image": 3, "Memory": 4, "Size": 4096, "Dedicated": true}
		]
	}`, string(writer.Bytes()))
}
