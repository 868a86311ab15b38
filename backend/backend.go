// Package backend defines the native command surface of the citro3d
// libraries and a registry for selecting an implementation.
//
// A Backend is a thin, raw-valued mirror of the native API: handles are
// uintptrs and enums are the native bit patterns. All type safety lives in
// the citro3d package above it. Backends must be registered via Register
// and are selected via Get or Default.
package backend

import "errors"

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no usable backend is registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Known backend names.
const (
	// BackendCtru is the hardware backend binding libcitro3d via purego.
	BackendCtru = "ctru"

	// BackendHeadless is the in-memory backend for off-device use.
	BackendHeadless = "headless"
)

// VertexBuffer describes one vertex buffer registered with the GPU for the
// following draw calls. Base must point into linear (GPU-addressable)
// memory on hardware backends.
type VertexBuffer struct {
	// Base is the address of the first vertex.
	Base uintptr

	// Stride is the byte distance between consecutive vertices.
	Stride int

	// AttribCount is the number of attributes read per vertex.
	AttribCount int

	// Permutation maps buffer components to attribute input registers,
	// four bits per component, in the native encoding.
	Permutation uint64
}

// Attribute describes one vertex attribute loader.
type Attribute struct {
	// Register is the input register index (0..11).
	Register int

	// Format is the native component format (GPU_BYTE, GPU_FLOAT, ...).
	Format uint32

	// Count is the number of components (1..4).
	Count int
}

// Backend is the native citro3d command surface.
//
// The method set mirrors the native entry points one to one; boolean
// returns are the native ones (false reports failure). Implementations are
// not required to be safe for concurrent use: the native API is single
// threaded and the citro3d package confines all calls to one goroutine.
type Backend interface {
	// Name returns the backend identifier (e.g. "ctru", "headless").
	Name() string

	// Init brings up the command queue with the given command buffer size
	// in bytes. Returns false if the native side reports failure.
	Init(cmdBufSize int) bool

	// Fini tears down the command queue. Called exactly once, strictly
	// after every render target has been deleted.
	Fini()

	// FrameBegin opens a frame. flags is the native bitfield
	// (FrameSyncDraw waits for the previous frame's GPU work).
	FrameBegin(flags uint32)

	// FrameDrawOn makes target the current draw destination for the open
	// frame. Returns false if the target cannot be drawn on.
	FrameDrawOn(target uintptr) bool

	// FrameEnd closes the current frame and submits it.
	FrameEnd(flags uint32)

	// RenderTargetCreate allocates a native render target. depthFmt is the
	// native depth format, or -1 for no depth buffer. Returns 0 on failure.
	RenderTargetCreate(width, height int16, colorFmt uint32, depthFmt int32) uintptr

	// RenderTargetSetOutput directs the target's color buffer to a screen
	// framebuffer. screen and side are the native display enums and
	// transferFlags the GX transfer bitfield.
	RenderTargetSetOutput(target uintptr, screen, side uint32, transferFlags uint32)

	// RenderTargetClear overwrites the target's color and/or depth values
	// according to clearBits.
	RenderTargetClear(target uintptr, clearBits uint32, rgbaColor, depth uint32)

	// RenderTargetDelete releases a native render target.
	RenderTargetDelete(target uintptr)

	// SetBufInfo sets the vertex buffers used by the following draw calls.
	SetBufInfo(buffers []VertexBuffer)

	// SetAttrInfo sets the attribute loaders used by the following draw calls.
	SetAttrInfo(attrs []Attribute)

	// DrawArrays submits count vertices starting at first.
	DrawArrays(primitive uint32, first, count int32)

	// DrawElements submits count indices of the given native element type
	// (unsigned byte or unsigned short) read from indices.
	DrawElements(primitive uint32, count int32, elemType uint32, indices uintptr)

	// BindProgram makes the shader program current. The native side copies
	// pointers out of the program block; it must stay alive while bound.
	BindProgram(program uintptr)

	// SetFloatUniform writes rows to the floating-point uniform registers
	// of the given shader stage starting at index.
	SetFloatUniform(shaderType uint32, index int, rows [][4]float32)

	// LightEnvCreate allocates and initializes a native light environment
	// block at a stable address. Returns 0 on failure.
	LightEnvCreate() uintptr

	// LightEnvBind installs env as the current light environment. env may
	// be 0 to clear the binding. The native side retains the pointer.
	LightEnvBind(env uintptr)

	// LightEnvDelete releases a light environment block. The block must
	// not be bound.
	LightEnvDelete(env uintptr)

	// TexEnvInit resets the texture combiner stage to its default state.
	TexEnvInit(stage int)

	// TexEnvSrc sets the three input sources of the stage for the RGB
	// and/or alpha halves selected by mode.
	TexEnvSrc(stage int, mode uint32, s0, s1, s2 uint32)

	// TexEnvFunc sets the combiner function of the stage for the halves
	// selected by mode.
	TexEnvFunc(stage int, mode uint32, fn uint32)

	// TexEnvColor sets the constant color of the stage.
	TexEnvColor(stage int, color uint32)
}

// Backend2D is the optional citro2d extension of a Backend. Backends that
// also link the 2D drawing layer implement it; the citro2d package
// type-asserts for it and reports draw failure when it is absent.
//
// Coordinates are in pixels on the active target, colors are packed
// 0xAABBGGRR as produced by citro2d.Color, and the boolean returns mirror
// the native draw calls.
type Backend2D interface {
	// TargetClear overwrites the whole target with a color.
	TargetClear(target uintptr, color uint32)

	// DrawRectangle draws an axis-aligned rectangle with one color per corner.
	DrawRectangle(x, y, z, w, h float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool

	// DrawRectSolid draws a single-color rectangle.
	DrawRectSolid(x, y, z, w, h float32, color uint32) bool

	// DrawTriangle draws a triangle with one color per vertex.
	DrawTriangle(x0, y0 float32, c0 uint32, x1, y1 float32, c1 uint32, x2, y2 float32, c2 uint32, depth float32) bool

	// DrawEllipse draws an ellipse with one color per corner of its bounds.
	DrawEllipse(x, y, z, w, h float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool

	// DrawEllipseSolid draws a single-color ellipse.
	DrawEllipseSolid(x, y, z, w, h float32, color uint32) bool

	// DrawCircle draws a circle with one color per corner of its bounds.
	DrawCircle(x, y, z, radius float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool

	// DrawCircleSolid draws a single-color circle.
	DrawCircleSolid(x, y, z, radius float32, color uint32) bool

	// DrawLine draws a line of the given thickness between two points.
	DrawLine(x0, y0 float32, c0 uint32, x1, y1 float32, c1 uint32, thickness, depth float32) bool
}
