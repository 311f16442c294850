package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// RefCounter raises and lowers the reference count of an AHardwareBuffer
type RefCounter interface {
	Acquire(buffer Buffer)
	Release(buffer Buffer)
}

// AHardwareBufferStrategy shares memory as reference-counted AHardwareBuffer objects. Importing a
// buffer adds a driver-side reference, so the importer's own reference must be released after
// a successful import.
type AHardwareBufferStrategy struct {
	refs RefCounter
}

var _ Strategy = &AHardwareBufferStrategy{}

// NewAHardwareBufferStrategy creates a strategy backed by refs. A nil RefCounter leaves reference
// counting to the caller: Ref hands back the same buffer and Unref only invalidates it.
func NewAHardwareBufferStrategy(refs RefCounter) *AHardwareBufferStrategy {
	return &AHardwareBufferStrategy{refs: refs}
}

func (s *AHardwareBufferStrategy) Kind() Kind { return KindAHardwareBuffer }

func (s *AHardwareBufferStrategy) HandleType(native *Native) Type {
	return TypeAHardwareBuffer
}

func (s *AHardwareBufferStrategy) Ref(buffer Buffer) (Buffer, error) {
	if !buffer.IsValid() || buffer == 0 {
		return InvalidBuffer, errors.New("attempted to reference a null AHardwareBuffer")
	}

	if s.refs != nil {
		s.refs.Acquire(buffer)
	}
	return buffer, nil
}

func (s *AHardwareBufferStrategy) Unref(buffer *Buffer) {
	if buffer == nil || !buffer.IsValid() || *buffer == 0 {
		return
	}

	if s.refs != nil {
		s.refs.Release(*buffer)
	}
	*buffer = InvalidBuffer
}

func (s *AHardwareBufferStrategy) Convention() ImportConvention { return ReferenceAddedByImport }

func (s *AHardwareBufferStrategy) SupportsFormat(format core1_0.Format) bool {
	return HasAHardwareBufferFormat(format)
}

func (s *AHardwareBufferStrategy) UsesBufferProperties() bool { return true }

func (s *AHardwareBufferStrategy) ImportsSRGBAsUNORM() bool { return true }
