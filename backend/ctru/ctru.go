// Package ctru binds the native citro3d and citro2d libraries at runtime
// and exposes them as a backend.Backend.
//
// Symbols are resolved with purego, so no cgo toolchain is needed. The
// backend registers itself with the registry; its factory returns nil on
// systems where the libraries cannot be loaded, letting selection fall
// through to the headless backend.
package ctru

import (
	"unsafe"

	"github.com/go3ds/citro3d/backend"
)

func init() {
	backend.Register(backend.BackendCtru, func() backend.Backend {
		b, err := New()
		if err != nil {
			return nil
		}
		return b
	})
}

// lightEnvSize is sizeof(C3D_LightEnv), padded to keep the allocation
// valid across library patch versions.
const lightEnvSize = 512

// Backend drives the native libraries. All methods mirror the native entry
// points one to one; see backend.Backend for the contract.
type Backend struct {
	// citro3d
	c3dInit               func(uintptr) bool
	c3dFini               func()
	frameBegin            func(uint8)
	frameDrawOn           func(uintptr) bool
	frameEnd              func(uint8)
	renderTargetCreate    func(int32, int32, uint32, int32) uintptr
	renderTargetSetOutput func(uintptr, uint32, uint32, uint32)
	renderTargetClear     func(uintptr, uint32, uint32, uint32)
	renderTargetDelete    func(uintptr)
	getBufInfo            func() uintptr
	bufInfoInit           func(uintptr)
	bufInfoAdd            func(uintptr, uintptr, uintptr, int32, uint64) int32
	getAttrInfo           func() uintptr
	attrInfoInit          func(uintptr)
	attrInfoAddLoader     func(uintptr, int32, uint32, int32) int32
	drawArrays            func(uint32, int32, int32)
	drawElements          func(uint32, int32, int32, uintptr)
	bindProgram           func(uintptr)
	fvUnifWritePtr        func(uint32, int32, int32) uintptr
	lightEnvInit          func(uintptr)
	lightEnvBind          func(uintptr)
	getTexEnv             func(int32) uintptr
	texEnvInit            func(uintptr)
	texEnvSrc             func(uintptr, uint32, uint32, uint32, uint32)
	texEnvFunc            func(uintptr, uint32, uint32)
	texEnvColor           func(uintptr, uint32)

	// libc, for stable native allocations
	malloc func(uintptr) uintptr
	free   func(uintptr)

	// citro2d, optional
	has2D            bool
	c2dTargetClear   func(uintptr, uint32)
	c2dRectangle     func(float32, float32, float32, float32, float32, uint32, uint32, uint32, uint32) bool
	c2dRectSolid     func(float32, float32, float32, float32, float32, uint32) bool
	c2dTriangle      func(float32, float32, uint32, float32, float32, uint32, float32, float32, uint32, float32) bool
	c2dEllipse       func(float32, float32, float32, float32, float32, uint32, uint32, uint32, uint32) bool
	c2dEllipseSolid  func(float32, float32, float32, float32, float32, uint32) bool
	c2dCircle        func(float32, float32, float32, float32, uint32, uint32, uint32, uint32) bool
	c2dCircleSolid   func(float32, float32, float32, float32, uint32) bool
	c2dLine          func(float32, float32, uint32, float32, float32, uint32, float32, float32) bool
}

// New loads the native libraries and returns the backend, or an error when
// they are not present on this system.
func New() (*Backend, error) {
	b := &Backend{}
	if err := b.load(); err != nil {
		return nil, err
	}
	return b, nil
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendCtru }

// Init brings up the native command queue.
func (b *Backend) Init(cmdBufSize int) bool {
	return b.c3dInit(uintptr(cmdBufSize))
}

// Fini tears down the native command queue.
func (b *Backend) Fini() { b.c3dFini() }

// FrameBegin opens a frame.
func (b *Backend) FrameBegin(flags uint32) { b.frameBegin(uint8(flags)) }

// FrameDrawOn makes target the current draw destination.
func (b *Backend) FrameDrawOn(target uintptr) bool { return b.frameDrawOn(target) }

// FrameEnd closes and submits the current frame.
func (b *Backend) FrameEnd(flags uint32) { b.frameEnd(uint8(flags)) }

// RenderTargetCreate allocates a native render target.
func (b *Backend) RenderTargetCreate(width, height int16, colorFmt uint32, depthFmt int32) uintptr {
	return b.renderTargetCreate(int32(width), int32(height), colorFmt, depthFmt)
}

// RenderTargetSetOutput routes the target's color buffer to a screen.
func (b *Backend) RenderTargetSetOutput(target uintptr, screen, side uint32, transferFlags uint32) {
	b.renderTargetSetOutput(target, screen, side, transferFlags)
}

// RenderTargetClear overwrites the target's buffers.
func (b *Backend) RenderTargetClear(target uintptr, clearBits uint32, rgbaColor, depth uint32) {
	b.renderTargetClear(target, clearBits, rgbaColor, depth)
}

// RenderTargetDelete releases a native render target.
func (b *Backend) RenderTargetDelete(target uintptr) { b.renderTargetDelete(target) }

// SetBufInfo rebuilds the native buffer info from the given buffers.
func (b *Backend) SetBufInfo(buffers []backend.VertexBuffer) {
	info := b.getBufInfo()
	b.bufInfoInit(info)
	for _, buf := range buffers {
		b.bufInfoAdd(info, buf.Base, uintptr(buf.Stride), int32(buf.AttribCount), buf.Permutation)
	}
}

// SetAttrInfo rebuilds the native attribute info from the given loaders.
func (b *Backend) SetAttrInfo(attrs []backend.Attribute) {
	info := b.getAttrInfo()
	b.attrInfoInit(info)
	for _, a := range attrs {
		b.attrInfoAddLoader(info, int32(a.Register), a.Format, int32(a.Count))
	}
}

// DrawArrays submits count vertices starting at first.
func (b *Backend) DrawArrays(primitive uint32, first, count int32) {
	b.drawArrays(primitive, first, count)
}

// DrawElements submits an indexed draw.
func (b *Backend) DrawElements(primitive uint32, count int32, elemType uint32, indices uintptr) {
	b.drawElements(primitive, count, int32(elemType), indices)
}

// BindProgram makes the shader program current.
func (b *Backend) BindProgram(program uintptr) { b.bindProgram(program) }

// SetFloatUniform writes rows into the stage's uniform registers. The
// native register layout stores vector components in WZYX order.
func (b *Backend) SetFloatUniform(shaderType uint32, index int, rows [][4]float32) {
	ptr := b.fvUnifWritePtr(shaderType, int32(index), int32(len(rows)))
	if ptr == 0 {
		return
	}
	dst := unsafe.Slice((*float32)(unsafe.Pointer(ptr)), 4*len(rows))
	for i, r := range rows {
		dst[4*i+0] = r[3]
		dst[4*i+1] = r[2]
		dst[4*i+2] = r[1]
		dst[4*i+3] = r[0]
	}
}

// LightEnvCreate allocates and initializes a light environment block on
// the native heap, giving it a stable address.
func (b *Backend) LightEnvCreate() uintptr {
	blk := b.malloc(lightEnvSize)
	if blk == 0 {
		return 0
	}
	b.lightEnvInit(blk)
	return blk
}

// LightEnvBind installs env as the current light environment.
func (b *Backend) LightEnvBind(env uintptr) { b.lightEnvBind(env) }

// LightEnvDelete frees a light environment block.
func (b *Backend) LightEnvDelete(env uintptr) { b.free(env) }

// TexEnvInit resets a combiner stage.
func (b *Backend) TexEnvInit(stage int) {
	b.texEnvInit(b.getTexEnv(int32(stage)))
}

// TexEnvSrc sets the stage's input sources.
func (b *Backend) TexEnvSrc(stage int, mode uint32, s0, s1, s2 uint32) {
	b.texEnvSrc(b.getTexEnv(int32(stage)), mode, s0, s1, s2)
}

// TexEnvFunc sets the stage's combiner function.
func (b *Backend) TexEnvFunc(stage int, mode uint32, fn uint32) {
	b.texEnvFunc(b.getTexEnv(int32(stage)), mode, fn)
}

// TexEnvColor sets the stage's constant color.
func (b *Backend) TexEnvColor(stage int, color uint32) {
	b.texEnvColor(b.getTexEnv(int32(stage)), color)
}
