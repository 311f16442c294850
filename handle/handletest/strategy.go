// Package handletest provides a handle.Strategy that hands out fake buffers and counts every
// reference it takes and releases
package handletest

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/xrswap/handle"
	"github.com/vkngwrapper/core/v2/core1_0"
)

type Strategy struct {
	StrategyKind       handle.Kind
	Type               handle.Type
	ImportConvention   handle.ImportConvention
	BufferProperties   bool
	SRGBAsUNORM        bool
	UnsupportedFormats map[core1_0.Format]bool

	// FailRef is the 1-based Ref call that fails. Zero never fails.
	FailRef int

	RefCalls int
	// Refs lists every buffer handed out by Ref, in order
	Refs []handle.Buffer
	// Unrefs lists every valid buffer passed to Unref, in order
	Unrefs []handle.Buffer

	nextBuffer handle.Buffer
}

var _ handle.Strategy = &Strategy{}

// NewOpaqueFD behaves like a file descriptor platform: Ref duplicates and the driver consumes
// imported handles
func NewOpaqueFD() *Strategy {
	return &Strategy{
		StrategyKind:     handle.KindFD,
		Type:             handle.TypeOpaqueFD,
		ImportConvention: handle.ConsumedByImport,
		nextBuffer:       500,
	}
}

// NewAHardwareBuffer behaves like an AHardwareBuffer platform: Ref raises a reference count on the
// same buffer and import requirements come from the buffer
func NewAHardwareBuffer() *Strategy {
	return &Strategy{
		StrategyKind:     handle.KindAHardwareBuffer,
		Type:             handle.TypeAHardwareBuffer,
		ImportConvention: handle.ReferenceAddedByImport,
		BufferProperties: true,
		SRGBAsUNORM:      true,
	}
}

func (s *Strategy) Kind() handle.Kind { return s.StrategyKind }

func (s *Strategy) HandleType(native *handle.Native) handle.Type {
	if native != nil && native.IsDXGIHandle {
		return handle.TypeD3D11TextureKMT
	}
	return s.Type
}

func (s *Strategy) Ref(buffer handle.Buffer) (handle.Buffer, error) {
	s.RefCalls++
	if s.RefCalls == s.FailRef {
		return handle.InvalidBuffer, errors.Newf("failed to reference buffer %d", buffer)
	}
	if !buffer.IsValid() {
		return handle.InvalidBuffer, errors.New("attempted to reference an invalid buffer")
	}

	ref := buffer
	if s.ImportConvention == handle.ConsumedByImport {
		s.nextBuffer++
		ref = s.nextBuffer
	}

	s.Refs = append(s.Refs, ref)
	return ref, nil
}

func (s *Strategy) Unref(buffer *handle.Buffer) {
	if buffer == nil || !buffer.IsValid() {
		return
	}

	s.Unrefs = append(s.Unrefs, *buffer)
	*buffer = handle.InvalidBuffer
}

func (s *Strategy) Convention() handle.ImportConvention { return s.ImportConvention }

func (s *Strategy) SupportsFormat(format core1_0.Format) bool {
	return !s.UnsupportedFormats[format]
}

func (s *Strategy) UsesBufferProperties() bool { return s.BufferProperties }

func (s *Strategy) ImportsSRGBAsUNORM() bool { return s.SRGBAsUNORM }
