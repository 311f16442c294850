//go:build windows

package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/sys/windows"
)

// Win32Strategy shares memory as NT handles, or as D3D11 KMT handles when the exporter marked
// them as DXGI handles. The driver consumes imported handles.
type Win32Strategy struct{}

var _ Strategy = Win32Strategy{}

func (s Win32Strategy) Kind() Kind { return KindWin32 }

func (s Win32Strategy) HandleType(native *Native) Type {
	if native != nil && native.IsDXGIHandle {
		return TypeD3D11TextureKMT
	}
	return TypeOpaqueWin32
}

func (s Win32Strategy) Ref(buffer Buffer) (Buffer, error) {
	if !buffer.IsValid() || buffer == 0 {
		return InvalidBuffer, errors.New("attempted to duplicate an invalid handle")
	}

	process := windows.CurrentProcess()
	var target windows.Handle
	err := windows.DuplicateHandle(process, windows.Handle(buffer), process, &target, 0, false, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return InvalidBuffer, errors.Wrapf(err, "failed to duplicate handle %#x", uintptr(buffer))
	}

	return Buffer(target), nil
}

func (s Win32Strategy) Unref(buffer *Buffer) {
	if buffer == nil || !buffer.IsValid() || *buffer == 0 {
		return
	}

	_ = windows.CloseHandle(windows.Handle(*buffer))
	*buffer = InvalidBuffer
}

func (s Win32Strategy) Convention() ImportConvention { return ConsumedByImport }

func (s Win32Strategy) SupportsFormat(format core1_0.Format) bool { return true }

func (s Win32Strategy) UsesBufferProperties() bool { return false }

func (s Win32Strategy) ImportsSRGBAsUNORM() bool { return false }
