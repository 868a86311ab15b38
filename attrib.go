package citro3d

import (
	"fmt"

	"github.com/go3ds/citro3d/backend"
)

// AttrFormat is the component format of a vertex attribute, in the native
// encoding.
type AttrFormat uint32

const (
	// FormatByte is a signed 8-bit component.
	FormatByte AttrFormat = 0

	// FormatUnsignedByte is an unsigned 8-bit component.
	FormatUnsignedByte AttrFormat = 1

	// FormatShort is a signed 16-bit component.
	FormatShort AttrFormat = 2

	// FormatFloat is a 32-bit floating point component.
	FormatFloat AttrFormat = 3
)

// maxAttributes is the native per-draw attribute loader limit.
const maxAttributes = 12

// AttrInfo describes the vertex attribute loaders used by draw calls.
type AttrInfo struct {
	attrs []backend.Attribute
}

// AddLoader registers an attribute loader for the given input register
// (0..11) reading count components (1..4) of the given format.
func (a *AttrInfo) AddLoader(register int, format AttrFormat, count int) error {
	if len(a.attrs) >= maxAttributes {
		return ErrAttrInfoFull
	}
	if register < 0 || register >= maxAttributes {
		return fmt.Errorf("citro3d: attribute register %d out of range", register)
	}
	if count < 1 || count > 4 {
		return fmt.Errorf("citro3d: attribute component count %d out of range", count)
	}
	a.attrs = append(a.attrs, backend.Attribute{
		Register: register,
		Format:   uint32(format),
		Count:    count,
	})
	return nil
}

// Len returns the number of registered loaders.
func (a *AttrInfo) Len() int { return len(a.attrs) }
