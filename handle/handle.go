package handle

import (
	"fmt"

	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_external_memory_capabilities"
)

// Buffer is an OS-level transferable reference to device memory: a file descriptor, a Win32
// HANDLE or an AHardwareBuffer pointer depending on the platform
type Buffer uintptr

// InvalidBuffer marks a Buffer that has been consumed, released, or never held a handle
const InvalidBuffer Buffer = ^Buffer(0)

func (b Buffer) IsValid() bool {
	return b != InvalidBuffer
}

// Native describes an image's backing memory as another process exported it
type Native struct {
	Handle Buffer
	// Size is the allocation size advertised by the exporter, in bytes
	Size int
	// IsDXGIHandle marks a D3D11 KMT handle that must be imported as a texture rather than as
	// opaque memory, and that is never duplicated or closed by the importer
	IsDXGIHandle bool
}

// Type identifies the kind of external memory handle used to share an allocation
type Type = khr_external_memory_capabilities.ExternalMemoryHandleTypeFlags

const (
	TypeOpaqueFD         Type = 0x00000001
	TypeOpaqueWin32      Type = 0x00000002
	TypeOpaqueWin32KMT   Type = 0x00000004
	TypeD3D11Texture     Type = 0x00000008
	TypeD3D11TextureKMT  Type = 0x00000010
	TypeD3D12Heap        Type = 0x00000020
	TypeD3D12Resource    Type = 0x00000040
	TypeDMABuf           Type = 0x00000200
	TypeAHardwareBuffer  Type = 0x00000400
	implementationSized  Type = TypeD3D11Texture | TypeD3D11TextureKMT | TypeD3D12Resource
	noSizeCheckRequired  Type = implementationSized | TypeAHardwareBuffer
)

var typeNames = map[Type]string{
	TypeOpaqueFD:        "OPAQUE_FD",
	TypeOpaqueWin32:     "OPAQUE_WIN32",
	TypeOpaqueWin32KMT:  "OPAQUE_WIN32_KMT",
	TypeD3D11Texture:    "D3D11_TEXTURE",
	TypeD3D11TextureKMT: "D3D11_TEXTURE_KMT",
	TypeD3D12Heap:       "D3D12_HEAP",
	TypeD3D12Resource:   "D3D12_RESOURCE",
	TypeDMABuf:          "DMA_BUF",
	TypeAHardwareBuffer: "ANDROID_HARDWARE_BUFFER",
}

// TypeString names a single handle type, or returns a fixed sentinel for unknown values
func TypeString(t Type) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN_HANDLE_TYPE"
}

// SkipsSizeCheck reports whether imports of this handle type take their size from the
// implementation rather than from the exporter, so the exporter's advertised size must not
// be compared against the image's requirements
func SkipsSizeCheck(t Type) bool {
	return t&noSizeCheckRequired != 0
}

// Kind identifies the platform family of a Strategy
type Kind int

const (
	KindFD Kind = iota
	KindWin32
	KindAHardwareBuffer
)

var kindMapping = make(map[Kind]string)

func (k Kind) String() string {
	if str, ok := kindMapping[k]; ok {
		return str
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ImportConvention describes what happens to a caller's handle once the driver has imported it
type ImportConvention int

const (
	// ConsumedByImport means the driver took ownership and the caller's copy must be invalidated
	ConsumedByImport ImportConvention = iota
	// ReferenceAddedByImport means the driver added its own reference and the caller's copy must
	// be released
	ReferenceAddedByImport
)

var conventionMapping = make(map[ImportConvention]string)

func (c ImportConvention) String() string {
	if str, ok := conventionMapping[c]; ok {
		return str
	}
	return fmt.Sprintf("ImportConvention(%d)", int(c))
}

func init() {
	kindMapping[KindFD] = "KindFD"
	kindMapping[KindWin32] = "KindWin32"
	kindMapping[KindAHardwareBuffer] = "KindAHardwareBuffer"

	conventionMapping[ConsumedByImport] = "ConsumedByImport"
	conventionMapping[ReferenceAddedByImport] = "ReferenceAddedByImport"
}

// Strategy is the active platform's transferable memory handle mechanism. One is selected when
// the process starts and is shared by every allocator.
type Strategy interface {
	Kind() Kind
	// HandleType is the external memory handle type used for native. native may be nil when
	// exporting freshly allocated memory.
	HandleType(native *Native) Type
	// Ref returns an independent reference to buffer: a duplicated descriptor or handle, or the
	// same buffer with its reference count raised
	Ref(buffer Buffer) (Buffer, error)
	// Unref releases the reference held in *buffer and sets it to InvalidBuffer. It is a no-op
	// for invalid buffers.
	Unref(buffer *Buffer)
	Convention() ImportConvention
	// SupportsFormat reports whether images of this format can be shared through the platform's
	// buffer mechanism at all
	SupportsFormat(format core1_0.Format) bool
	// UsesBufferProperties reports whether import requirements must come from querying the
	// external buffer itself instead of the image
	UsesBufferProperties() bool
	// ImportsSRGBAsUNORM reports whether sRGB images must be imported with their UNORM
	// equivalent format
	ImportsSRGBAsUNORM() bool
}

// Consume applies the strategy's import convention to a native handle the driver has
// successfully imported
func Consume(strategy Strategy, native *Native) {
	switch strategy.Convention() {
	case ConsumedByImport:
		native.Handle = InvalidBuffer
	case ReferenceAddedByImport:
		strategy.Unref(&native.Handle)
	default:
		panic(fmt.Sprintf("unknown import convention %s", strategy.Convention()))
	}
}

// Duplicate returns a Native that owns an independent reference to native's buffer. DXGI handles
// are shared by name and are returned as-is.
func Duplicate(strategy Strategy, native Native) (Native, error) {
	if native.IsDXGIHandle {
		return native, nil
	}

	ref, err := strategy.Ref(native.Handle)
	if err != nil {
		return Native{Handle: InvalidBuffer}, err
	}

	native.Handle = ref
	return native, nil
}

// Release gives back a reference obtained from Duplicate
func Release(strategy Strategy, native *Native) {
	if native.IsDXGIHandle {
		return
	}

	strategy.Unref(&native.Handle)
}
