package vkimage

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/xrswap/allocerr"
	"github.com/vkngwrapper/arsenal/xrswap/csci"
	"github.com/vkngwrapper/arsenal/xrswap/gpu"
	"github.com/vkngwrapper/arsenal/xrswap/gpu/gputest"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/arsenal/xrswap/handle/handletest"
	"github.com/vkngwrapper/arsenal/xrswap/swapchain"
	"github.com/vkngwrapper/core/v2/core1_0"
)

func colorInfo() *swapchain.CreateInfo {
	return &swapchain.CreateInfo{
		Usage:     swapchain.UsageColor | swapchain.UsageSampled,
		Format:    swapchain.Format(csci.FormatR8G8B8A8Unorm),
		Width:     1024,
		Height:    768,
		FaceCount: 1,
		ArraySize: 2,
		MipCount:  1,
	}
}

func TestCreateSwapchainImage_DedicatedPolicy(t *testing.T) {
	testCases := []struct {
		name      string
		tegra     bool
		flags     CreateFlags
		prefers   bool
		requires  bool
		dedicated bool
	}{
		{name: "DesktopNeither", dedicated: true},
		{name: "DesktopPreferred", prefers: true, dedicated: true},
		{name: "DesktopRequired", requires: true, prefers: true, dedicated: true},
		{name: "TegraNeither", tegra: true, dedicated: false},
		{name: "TegraPreferred", tegra: true, prefers: true, dedicated: false},
		{name: "TegraRequired", tegra: true, requires: true, dedicated: true},
		{name: "TegraForced", tegra: true, flags: AllocatorCreateForceDedicated, dedicated: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			device := gputest.New()
			if testCase.tegra {
				device.DeviceProperties.VendorID = vendorNVIDIA
				device.DeviceProperties.DriverType = core1_0.PhysicalDeviceTypeIntegratedGPU
			}
			device.Requirements.PrefersDedicated = testCase.prefers
			device.Requirements.RequiresDedicated = testCase.requires

			allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{Flags: testCase.flags})

			img, err := allocator.CreateSwapchainImage(colorInfo())
			require.NoError(t, err)
			require.Equal(t, testCase.dedicated, img.UseDedicatedAllocation)
			require.Equal(t, device.Requirements.Size, img.Size)

			require.Len(t, device.Allocations, 1)
			if testCase.dedicated {
				require.Equal(t, img.Image, device.Allocations[0].DedicatedImage)
			} else {
				require.Equal(t, gpu.NullImage, device.Allocations[0].DedicatedImage)
			}
			require.Equal(t, handle.TypeOpaqueFD, device.Allocations[0].ExportHandleTypes)
		})
	}
}

func TestCreateSwapchainImage_Descriptor(t *testing.T) {
	device := gputest.New()
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	info := colorInfo()
	info.Usage |= swapchain.UsageMutableFormat
	info.Create = swapchain.CreateProtectedContent
	info.FaceCount = 6
	info.MipCount = 3
	info.Formats = []swapchain.Format{
		swapchain.Format(csci.FormatR8G8B8A8SRGB),
		swapchain.Format(csci.FormatR8G8B8A8Unorm),
		swapchain.Format(csci.FormatR8G8B8A8SRGB),
	}

	_, err := allocator.CreateSwapchainImage(info)
	require.NoError(t, err)

	created := device.CreatedImages[0]
	require.Equal(t, imageCreateMutableFormat|imageCreateCubeCompatible|imageCreateProtected, created.Flags)
	require.Equal(t, csci.FormatR8G8B8A8Unorm, created.Format)
	require.Equal(t, 12, created.ArrayLayers)
	require.Equal(t, 3, created.MipLevels)
	require.Equal(t, core1_0.Extent3D{Width: 1024, Height: 768, Depth: 1}, created.Extent)
	require.Equal(t, core1_0.ImageUsageColorAttachment|core1_0.ImageUsageSampled, created.Usage)
	require.Equal(t, handle.TypeOpaqueFD, created.ExternalHandleTypes)
	require.Equal(t, []core1_0.Format{csci.FormatR8G8B8A8SRGB, csci.FormatR8G8B8A8Unorm}, created.ViewFormats)
}

func TestCreateSwapchainImage_NoFormatListSupport(t *testing.T) {
	device := gputest.New()
	device.ImageFormatList = false
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	info := colorInfo()
	info.Formats = []swapchain.Format{swapchain.Format(csci.FormatR8G8B8A8SRGB)}

	_, err := allocator.CreateSwapchainImage(info)
	require.NoError(t, err)
	require.Nil(t, device.CreatedImages[0].ViewFormats)
}

func TestCreateSwapchainImage_SRGBAsUNORM(t *testing.T) {
	device := gputest.New()
	allocator := newTestAllocator(t, device, handletest.NewAHardwareBuffer(), CreateOptions{})

	info := colorInfo()
	info.Format = swapchain.Format(csci.FormatR8G8B8A8SRGB)
	info.Formats = []swapchain.Format{
		swapchain.Format(csci.FormatR8G8B8A8SRGB),
		swapchain.Format(csci.FormatB8G8R8A8Unorm),
	}

	_, err := allocator.CreateSwapchainImage(info)
	require.NoError(t, err)

	created := device.CreatedImages[0]
	require.Equal(t, csci.FormatR8G8B8A8Unorm, created.Format)
	require.Equal(t, imageCreateMutableFormat, created.Flags&imageCreateMutableFormat)
	require.Equal(t, handle.TypeAHardwareBuffer, created.ExternalHandleTypes)
	require.Equal(t, []core1_0.Format{
		csci.FormatR8G8B8A8SRGB,
		csci.FormatB8G8R8A8Unorm,
		csci.FormatR8G8B8A8Unorm,
	}, created.ViewFormats)
}

func TestCreateSwapchainImage_PlatformBufferFormat(t *testing.T) {
	testCases := map[string]struct {
		unsupported      core1_0.Format
		externalFeatures gpu.ExternalMemoryFeatures
		externalQueries  int
		fails            bool
	}{
		"Supported": {
			externalFeatures: gpu.ExternalMemoryFeatureImportable | gpu.ExternalMemoryFeatureExportable,
			externalQueries:  1,
		},
		"NoBufferEquivalent": {
			unsupported:      csci.FormatR8G8B8A8Unorm,
			externalFeatures: gpu.ExternalMemoryFeatureImportable | gpu.ExternalMemoryFeatureExportable,
			fails:            true,
		},
		"NotExportable": {
			externalFeatures: gpu.ExternalMemoryFeatureImportable,
			externalQueries:  1,
			fails:            true,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			device := gputest.New()
			device.ExternalFeatures = testCase.externalFeatures
			strategy := handletest.NewAHardwareBuffer()
			strategy.UnsupportedFormats = map[core1_0.Format]bool{testCase.unsupported: true}
			allocator := newTestAllocator(t, device, strategy, CreateOptions{})

			img, err := allocator.CreateSwapchainImage(colorInfo())
			require.Equal(t, testCase.externalQueries, device.Calls.ExternalImageFormat)
			if !testCase.fails {
				require.NoError(t, err)
				require.Len(t, device.CreatedImages, 1)
				return
			}

			require.True(t, errors.Is(err, allocerr.ErrFeatureNotSupported))
			require.True(t, img.IsNull())
			require.Empty(t, device.CreatedImages)
			require.Equal(t, 0, device.Calls.Allocations())
		})
	}
}

func TestCreateSwapchainImage_OpaqueFDSkipsPlatformBufferFormat(t *testing.T) {
	device := gputest.New()
	strategy := handletest.NewOpaqueFD()
	strategy.UnsupportedFormats = map[core1_0.Format]bool{csci.FormatR8G8B8A8Unorm: true}
	allocator := newTestAllocator(t, device, strategy, CreateOptions{})

	_, err := allocator.CreateSwapchainImage(colorInfo())
	require.NoError(t, err)
	require.Equal(t, 0, device.Calls.ExternalImageFormat)
}

func TestFormatList_Capacity(t *testing.T) {
	list := formatList{logger: testLogger()}
	for format := core1_0.Format(1); format <= 20; format++ {
		list.Add(format)
		list.Add(format)
	}

	require.Equal(t, swapchain.MaxFormatList+2, list.Len())
}

func TestCreateSwapchainImage_UnsupportedUsage(t *testing.T) {
	device := gputest.New()
	device.Formats[csci.FormatR8G8B8A8Unorm] = core1_0.FormatProperties{
		OptimalTilingFeatures: core1_0.FormatFeatureSampledImage,
	}
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	img, err := allocator.CreateSwapchainImage(colorInfo())
	require.True(t, errors.Is(err, allocerr.ErrFeatureNotSupported))
	require.True(t, img.IsNull())
	require.Equal(t, 0, device.Calls.Allocations())
}

func TestCreateSwapchainImage_Rollback(t *testing.T) {
	device := gputest.New()
	device.Fail.BindImageMemory = 1
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	img, err := allocator.CreateSwapchainImage(colorInfo())
	require.True(t, errors.Is(err, allocerr.ErrAllocationFailed))
	require.True(t, img.IsNull())
	require.Equal(t, 0, device.LiveImages())
	require.Equal(t, 0, device.LiveMemory())
	require.Equal(t, 1, device.Calls.DestroyImage)
	require.Equal(t, 1, device.Calls.FreeMemory)
}

func TestCreateImageFromNative_ConsumedByImport(t *testing.T) {
	device := gputest.New()
	strategy := handletest.NewOpaqueFD()
	allocator := newTestAllocator(t, device, strategy, CreateOptions{})

	native := handle.Native{Handle: 42, Size: 8192}
	img, err := allocator.CreateImageFromNative(colorInfo(), &native)
	require.NoError(t, err)
	require.True(t, img.UseDedicatedAllocation)
	require.Equal(t, 4096, img.Size)

	require.Equal(t, handle.InvalidBuffer, native.Handle)
	require.Empty(t, strategy.Unrefs)

	created := device.CreatedImages[0]
	require.Equal(t, 2, created.ArrayLayers)
	require.Equal(t, handle.TypeOpaqueFD, created.ExternalHandleTypes)

	alloc := device.Allocations[0]
	require.Equal(t, img.Image, alloc.DedicatedImage)
	require.Equal(t, &gpu.MemoryImport{HandleType: handle.TypeOpaqueFD, Buffer: 42}, alloc.Import)
	require.Zero(t, alloc.ExportHandleTypes)
	require.Equal(t, 0, device.Calls.ExternalBufferProperties)
}

func TestCreateImageFromNative_ReferenceAddedByImport(t *testing.T) {
	device := gputest.New()
	device.BufferProps = gpu.ExternalBufferProperties{AllocationSize: 12345, MemoryTypeBits: 0b100}
	strategy := handletest.NewAHardwareBuffer()
	allocator := newTestAllocator(t, device, strategy, CreateOptions{})

	info := colorInfo()
	info.Format = swapchain.Format(csci.FormatR8G8B8A8SRGB)

	// The size check does not apply to platform buffers
	native := handle.Native{Handle: 77}
	img, err := allocator.CreateImageFromNative(info, &native)
	require.NoError(t, err)
	require.Equal(t, 12345, img.Size)

	require.Equal(t, handle.InvalidBuffer, native.Handle)
	require.Equal(t, []handle.Buffer{77}, strategy.Unrefs)

	require.Equal(t, csci.FormatR8G8B8A8Unorm, device.CreatedImages[0].Format)
	require.Equal(t, 12345, device.Allocations[0].AllocationSize)
	require.Equal(t, 2, device.Allocations[0].MemoryTypeIndex)
}

func TestCreateImageFromNative_SizeCheck(t *testing.T) {
	testCases := []struct {
		name     string
		required int
		exported int
		dxgi     bool
		mismatch bool
	}{
		{name: "Exact", required: 4096, exported: 4096},
		{name: "ExportedLarger", required: 4096, exported: 1 << 20},
		{name: "ExportedSmaller", required: 4096, exported: 1024, mismatch: true},
		{name: "ZeroRequired", required: 0, exported: 1024},
		{name: "DXGIExempt", required: 4096, exported: 0, dxgi: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			device := gputest.New()
			device.Requirements.Size = testCase.required
			strategy := handletest.NewOpaqueFD()
			allocator := newTestAllocator(t, device, strategy, CreateOptions{})

			native := handle.Native{Handle: 5, Size: testCase.exported, IsDXGIHandle: testCase.dxgi}
			img, err := allocator.CreateImageFromNative(colorInfo(), &native)

			if testCase.mismatch {
				require.True(t, errors.Is(err, allocerr.ErrSizeMismatch))
				require.True(t, img.IsNull())
				require.Equal(t, handle.Buffer(5), native.Handle)
				require.Equal(t, 0, device.LiveImages())
				require.Equal(t, 0, device.Calls.AllocateMemory)
				return
			}

			require.NoError(t, err)
			if testCase.dxgi {
				require.Equal(t, handle.TypeD3D11TextureKMT, device.Allocations[0].Import.HandleType)
			}
		})
	}
}

func TestCreateImageFromNative_NotImportable(t *testing.T) {
	device := gputest.New()
	device.ExternalFeatures = gpu.ExternalMemoryFeatureExportable
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	native := handle.Native{Handle: 5, Size: 4096}
	_, err := allocator.CreateImageFromNative(colorInfo(), &native)
	require.True(t, errors.Is(err, allocerr.ErrNotImportable))
	require.Equal(t, handle.Buffer(5), native.Handle)
	require.Equal(t, 0, device.Calls.Allocations())
}

func TestCreateImageFromNative_ExternalQueryFailure(t *testing.T) {
	device := gputest.New()
	device.ExternalResult = core1_0.VKErrorDeviceLost
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	native := handle.Native{Handle: 5, Size: 4096}
	_, err := allocator.CreateImageFromNative(colorInfo(), &native)

	var driverErr *allocerr.DriverError
	require.True(t, errors.As(err, &driverErr))
	require.Equal(t, core1_0.VKErrorDeviceLost, driverErr.Result)
	require.Equal(t, 0, device.Calls.Allocations())
}

func TestCreateImageFromNative_FailureLeavesHandle(t *testing.T) {
	testCases := []struct {
		name      string
		configure func(device *gputest.Device)
	}{
		{"CreateImage", func(device *gputest.Device) { device.Fail.CreateImage = 1 }},
		{"AllocateMemory", func(device *gputest.Device) { device.Fail.AllocateMemory = 1 }},
		{"BindImageMemory", func(device *gputest.Device) { device.Fail.BindImageMemory = 1 }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			device := gputest.New()
			testCase.configure(device)
			strategy := handletest.NewAHardwareBuffer()
			allocator := newTestAllocator(t, device, strategy, CreateOptions{})

			native := handle.Native{Handle: 88, Size: 4096}
			img, err := allocator.CreateImageFromNative(colorInfo(), &native)
			require.Error(t, err)
			require.True(t, img.IsNull())

			require.Equal(t, handle.Buffer(88), native.Handle)
			require.Empty(t, strategy.Unrefs)
			require.Equal(t, 0, device.LiveImages())
			require.Equal(t, 0, device.LiveMemory())
		})
	}
}

func TestCreateImageFromNative_MutableFormatList(t *testing.T) {
	device := gputest.New()
	allocator := newTestAllocator(t, device, handletest.NewOpaqueFD(), CreateOptions{})

	info := colorInfo()
	info.Formats = []swapchain.Format{swapchain.Format(csci.FormatR8G8B8A8SRGB)}

	native := handle.Native{Handle: 5, Size: 4096}
	_, err := allocator.CreateImageFromNative(info, &native)
	require.NoError(t, err)
	// Not mutable, so the list is ignored
	require.Nil(t, device.CreatedImages[0].ViewFormats)

	info.Usage |= swapchain.UsageMutableFormat
	native = handle.Native{Handle: 6, Size: 4096}
	_, err = allocator.CreateImageFromNative(info, &native)
	require.NoError(t, err)
	require.Equal(t, []core1_0.Format{csci.FormatR8G8B8A8SRGB}, device.CreatedImages[1].ViewFormats)
	require.Equal(t, imageCreateMutableFormat, device.CreatedImages[1].Flags)
}
