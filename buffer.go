package citro3d

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go3ds/citro3d/backend"
)

// Primitive is the GPU primitive topology, in the native encoding.
type Primitive uint32

const (
	// PrimTriangles renders separate triangles.
	PrimTriangles Primitive = 0x0000

	// PrimTriangleStrip renders a connected triangle strip.
	PrimTriangleStrip Primitive = 0x0100

	// PrimTriangleFan renders a connected triangle fan.
	PrimTriangleFan Primitive = 0x0200

	// PrimGeometry renders geometry shader primitives.
	PrimGeometry Primitive = 0x0300
)

// maxVertexBuffers is the native per-draw vertex buffer limit.
const maxVertexBuffers = 12

// BufferInfo describes the vertex buffers read by draw calls. Buffers are
// registered with Add; the resulting Slice selects the vertices to draw.
type BufferInfo struct {
	buffers []backend.VertexBuffer
}

// Add registers a vertex buffer and returns the Slice spanning all of its
// vertices.
//
// base must point into linear (GPU-addressable) memory on hardware
// backends and stay alive while the buffer info is in use. stride is the
// byte distance between vertices, attribCount the attributes read per
// vertex and permutation the native component-to-register mapping.
func (b *BufferInfo) Add(base uintptr, vertexCount, stride, attribCount int, permutation uint64) (Slice, error) {
	if len(b.buffers) >= maxVertexBuffers {
		return Slice{}, ErrBufferInfoFull
	}
	if vertexCount < 0 || vertexCount > math.MaxInt32 {
		return Slice{}, fmt.Errorf("%w: %d vertices", ErrOverflow, vertexCount)
	}
	b.buffers = append(b.buffers, backend.VertexBuffer{
		Base:        base,
		Stride:      stride,
		AttribCount: attribCount,
		Permutation: permutation,
	})
	return Slice{info: b, first: 0, count: int32(vertexCount)}, nil
}

// Slice is a range of vertices within a BufferInfo.
type Slice struct {
	info  *BufferInfo
	first int32
	count int32
}

// Info returns the BufferInfo this slice draws from.
func (s Slice) Info() *BufferInfo { return s.info }

// First returns the index of the first vertex in the slice.
func (s Slice) First() int { return int(s.first) }

// Len returns the number of vertices in the slice.
func (s Slice) Len() int { return int(s.count) }

// IndexType tags the element width of an index buffer, in the native
// encoding.
type IndexType uint32

const (
	// IndexUnsignedByte marks 8-bit indices.
	IndexUnsignedByte IndexType = 0

	// IndexUnsignedShort marks 16-bit indices.
	IndexUnsignedShort IndexType = 1
)

// Indices is an index buffer for DrawElements. The element width is baked
// into the value by the constructor.
//
// The backing slice is borrowed, not copied: it must live in linear memory
// on hardware backends and outlive the frame in which it is drawn.
type Indices struct {
	ptr   uintptr
	count int
	typ   IndexType
}

// IndicesU8 wraps a byte-wide index buffer.
func IndicesU8(buf []uint8) Indices {
	ix := Indices{count: len(buf), typ: IndexUnsignedByte}
	if len(buf) > 0 {
		ix.ptr = uintptr(unsafe.Pointer(&buf[0]))
	}
	return ix
}

// IndicesU16 wraps a short-wide index buffer.
func IndicesU16(buf []uint16) Indices {
	ix := Indices{count: len(buf), typ: IndexUnsignedShort}
	if len(buf) > 0 {
		ix.ptr = uintptr(unsafe.Pointer(&buf[0]))
	}
	return ix
}

// Len returns the number of indices.
func (ix Indices) Len() int { return ix.count }

// Type returns the element width tag.
func (ix Indices) Type() IndexType { return ix.typ }
