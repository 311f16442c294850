//go:build unix

package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/sys/unix"
)

// FDStrategy shares memory as opaque file descriptors. The driver takes ownership of a
// descriptor when it imports it.
type FDStrategy struct{}

var _ Strategy = FDStrategy{}

func (s FDStrategy) Kind() Kind { return KindFD }

func (s FDStrategy) HandleType(native *Native) Type {
	return TypeOpaqueFD
}

func (s FDStrategy) Ref(buffer Buffer) (Buffer, error) {
	if !buffer.IsValid() {
		return InvalidBuffer, errors.New("attempted to duplicate an invalid file descriptor")
	}

	fd, err := unix.Dup(int(buffer))
	if err != nil {
		return InvalidBuffer, errors.Wrapf(err, "failed to duplicate file descriptor %d", int(buffer))
	}

	return Buffer(fd), nil
}

func (s FDStrategy) Unref(buffer *Buffer) {
	if buffer == nil || !buffer.IsValid() {
		return
	}

	_ = unix.Close(int(*buffer))
	*buffer = InvalidBuffer
}

func (s FDStrategy) Convention() ImportConvention { return ConsumedByImport }

func (s FDStrategy) SupportsFormat(format core1_0.Format) bool { return true }

func (s FDStrategy) UsesBufferProperties() bool { return false }

func (s FDStrategy) ImportsSRGBAsUNORM() bool { return false }
