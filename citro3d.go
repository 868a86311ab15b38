package citro3d

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/go3ds/citro3d/backend"
	"github.com/go3ds/citro3d/gfx"
)

// Native frame begin flags.
const (
	// frameSyncDraw waits for the previous frame's GPU work to complete
	// before recording the next frame.
	frameSyncDraw uint32 = 1 << 1
)

// renderQueue represents the native command ring. It lives in the global
// context but keeps references to resources used for rendering, so the
// Instance and every target share it and the last holder to release it
// runs the native teardown.
type renderQueue struct {
	backend backend.Backend
	refs    atomic.Int32
}

func (q *renderQueue) retain() {
	q.refs.Add(1)
}

// release drops one reference. When the count reaches zero the native
// command ring is torn down and the process-wide instance claim clears.
func (q *renderQueue) release() {
	if q.refs.Add(-1) > 0 {
		return
	}
	q.backend.Fini()
	instanceLive.Store(false)
	Logger().Info("citro3d: command queue torn down")
}

// instanceLive guards against two coexisting Instances. The native library
// keeps global state, so a second init while the first command ring is
// alive would corrupt it. The claim clears in renderQueue.release, after
// the last target of the previous instance is closed.
var instanceLive atomic.Bool

// Instance is the top-level handle for using the GPU. An application
// creates one Instance, derives screen targets from it, and renders frames
// through RenderToTarget.
//
// Instance and all handles derived from it are confined to a single
// goroutine; the native API is not thread-safe.
type Instance struct {
	backend  backend.Backend
	queue    *renderQueue
	texenvs  [TexEnvStageCount]*TexEnv
	lightEnv *LightEnv

	inFrame bool
	active  *target
	closed  bool
}

// New initializes the library and returns the Instance.
//
// By default the native command buffer has DefaultCmdBufSize bytes and the
// backend is the best available registered one; see Option.
//
// New fails with ErrInstanceExists while a previous Instance (or any of
// its targets) is still open, and with ErrFailedToInitialize if the native
// side reports failure. A failed init leaves the process in the pre-init
// state.
func New(opts ...Option) (*Instance, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := o.backend
	if b == nil {
		b = backend.Default()
	}
	if b == nil {
		return nil, backend.ErrBackendNotAvailable
	}

	if !instanceLive.CompareAndSwap(false, true) {
		return nil, ErrInstanceExists
	}

	propagateLogger(b)
	if !b.Init(o.cmdBufSize) {
		instanceLive.Store(false)
		return nil, ErrFailedToInitialize
	}

	inst := &Instance{
		backend: b,
		queue:   &renderQueue{backend: b},
	}
	inst.queue.refs.Store(1)

	Logger().Info("citro3d: initialized",
		"backend", b.Name(),
		"cmdbuf_size", o.cmdBufSize)
	return inst, nil
}

// Backend returns the backend this instance submits to.
func (inst *Instance) Backend() backend.Backend { return inst.backend }

// Close releases the Instance's reference to the command queue. The native
// teardown runs once every target created from this Instance is also
// closed; until then the targets stay valid.
//
// Close fails with ErrFrameInProgress inside an open frame scope. It is
// idempotent.
func (inst *Instance) Close() error {
	if inst.closed {
		return nil
	}
	if inst.inFrame {
		return ErrFrameInProgress
	}
	inst.closed = true
	inst.queue.release()
	return nil
}

// CreateScreenTarget creates a render target of the given size on a
// screen. The GPU color buffer format is derived from the screen's
// framebuffer format; pass DepthNone for a target without a depth buffer.
//
// The target takes the exclusive borrow of the screen's framebuffer until
// it is closed; creating a second target on the same screen fails. On any
// failure no native target is left behind and the screen stays unclaimed.
func (inst *Instance) CreateScreenTarget(width, height int, screen *gfx.Screen, depth DepthFormat) (*ScreenTarget, error) {
	if inst.closed {
		return nil, ErrInstanceClosed
	}

	w, err := toDimension(width)
	if err != nil {
		return nil, fmt.Errorf("%w: width %d: %w", ErrTargetCreationFailed, width, err)
	}
	h, err := toDimension(height)
	if err != nil {
		return nil, fmt.Errorf("%w: height %d: %w", ErrTargetCreationFailed, height, err)
	}

	if err := screen.Claim(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTargetCreationFailed, err)
	}

	color := ColorFormatFor(screen.Format())
	raw := inst.backend.RenderTargetCreate(w, h, uint32(color), int32(depth))
	if raw == 0 {
		screen.Release()
		return nil, ErrTargetCreationFailed
	}

	// Route the target's color buffer to the screen. Input and output
	// transfer formats both follow the derived color format.
	tf := transferFormatFor(color)
	flags := transferFlags(0).inFormat(tf).outFormat(tf)
	inst.backend.RenderTargetSetOutput(raw, screen.ID(), uint32(screen.Side()), flags.bits())

	inst.queue.retain()
	Logger().Debug("citro3d: target created",
		"screen", screen.ID(),
		"side", screen.Side().String(),
		"format", color.String())

	return &ScreenTarget{t: &target{
		raw:     raw,
		screen:  screen,
		queue:   inst.queue,
		backend: inst.backend,
		width:   width,
		height:  height,
		color:   color,
		depth:   depth,
	}}, nil
}

// RenderToTarget renders a frame.
//
// It opens a frame scope with target as the draw destination and invokes
// fn with the corresponding RenderTarget. fn must return the RenderTarget
// that is active when it finishes: the initial one, or the one produced by
// a SwapRenderTarget inside the scope. Threading the target through fn
// keeps draw-only handles lexically confined to the frame.
//
// The frame is ended on every exit path, including when fn returns an
// error, and the active target is transitioned back to passive; its
// ScreenTarget form is returned alongside fn's error. Results other than
// the returned target are carried out of fn by closure capture.
//
// Frame scopes do not nest; a second RenderToTarget inside fn fails with
// ErrFrameInProgress.
func (inst *Instance) RenderToTarget(target *ScreenTarget, fn func(*Instance, *RenderTarget) (*RenderTarget, error)) (*ScreenTarget, error) {
	if inst.closed {
		return nil, ErrInstanceClosed
	}
	if inst.inFrame {
		return nil, ErrFrameInProgress
	}
	if target.t.closed {
		return nil, ErrTargetClosed
	}

	inst.backend.FrameBegin(frameSyncDraw)
	inst.inFrame = true
	defer func() {
		inst.backend.FrameEnd(0)
		inst.inFrame = false
	}()

	if !inst.backend.FrameDrawOn(target.t.raw) {
		return nil, ErrInvalidRenderTarget
	}
	rt := target.activate()
	inst.active = target.t

	out, err := fn(inst, rt)

	// Deactivate whichever target ended up active, even if fn lost track
	// of its handle, so the frame always closes with all targets passive.
	cur := inst.active
	inst.active = nil
	cur.active = false
	if out != nil && out.t != cur {
		Logger().Warn("citro3d: frame function returned a non-active target")
	}
	return &ScreenTarget{t: cur}, err
}

// SwapRenderTarget changes the draw destination of the open frame. The
// active old target becomes passive and the passive next target becomes
// active, atomically: if the native side rejects next, neither target
// changes state, the error is returned, and the caller keeps both original
// handles.
func (inst *Instance) SwapRenderTarget(old *RenderTarget, next *ScreenTarget) (*ScreenTarget, *RenderTarget, error) {
	if !inst.inFrame {
		return nil, nil, ErrOutsideFrame
	}
	if old.t != inst.active {
		return nil, nil, fmt.Errorf("%w: swap of a non-active target", ErrInvalidRenderTarget)
	}
	if next.t.closed {
		return nil, nil, ErrTargetClosed
	}

	// The fallible native call happens before any state changes so that a
	// failure leaves both targets exactly as they were.
	if !inst.backend.FrameDrawOn(next.t.raw) {
		return nil, nil, ErrInvalidRenderTarget
	}

	passive := old.deactivate()
	active := next.activate()
	inst.active = active.t
	return passive, active, nil
}

// SetBufferInfo sets the vertex buffers used by the following draw calls.
// DrawArrays and DrawElements call this from their slice argument; it is
// exported for callers managing buffer state directly.
func (inst *Instance) SetBufferInfo(info *BufferInfo) {
	inst.backend.SetBufInfo(info.buffers)
}

// SetAttrInfo sets the attribute loaders used by the following draw calls.
func (inst *Instance) SetAttrInfo(info *AttrInfo) {
	inst.backend.SetAttrInfo(info.attrs)
}

// DrawArrays renders primitives from the slice's vertex buffer in an open
// frame scope.
func (inst *Instance) DrawArrays(primitive Primitive, vbo Slice) error {
	if !inst.inFrame {
		return ErrOutsideFrame
	}
	inst.SetBufferInfo(vbo.info)
	inst.backend.DrawArrays(uint32(primitive), vbo.first, vbo.count)
	return nil
}

// DrawElements renders primitives from the slice's vertex buffer indexed
// by the given index buffer.
//
// The index buffer must live in linear (GPU-addressable) memory and must
// stay alive until the current frame ends: the GPU reads it after this
// call returns.
func (inst *Instance) DrawElements(primitive Primitive, vbo Slice, indices Indices) error {
	if !inst.inFrame {
		return ErrOutsideFrame
	}
	if indices.count > math.MaxInt32 {
		return fmt.Errorf("%w: %d indices", ErrOverflow, indices.count)
	}
	inst.SetBufferInfo(vbo.info)
	inst.backend.DrawElements(uint32(primitive), int32(indices.count), uint32(indices.typ), indices.ptr)
	return nil
}

// BindProgram makes the shader program current for the following draw
// calls. The native side copies pointers out of the program block, so the
// program must stay alive while bound.
func (inst *Instance) BindProgram(program *Program) {
	inst.backend.BindProgram(program.Raw())
}

// toDimension converts a target dimension to the native signed 16-bit
// range.
func toDimension(v int) (int16, error) {
	if v < 0 || v > math.MaxInt16 {
		return 0, ErrOverflow
	}
	return int16(v), nil
}
