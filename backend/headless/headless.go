// Package headless provides an in-memory backend for running off-device.
//
// The backend records the state the native library would hold (targets,
// clears, frame scope, bound state) without touching any hardware. It
// backs examples and tests on the development host and doubles as a
// reference for the command surface's expected call ordering.
package headless

import (
	"log/slog"

	"github.com/go3ds/citro3d/backend"
)

func init() {
	backend.Register(backend.BackendHeadless, func() backend.Backend {
		return New()
	})
}

// TargetState is the recorded state of one render target.
type TargetState struct {
	Width, Height int16
	ColorFormat   uint32
	DepthFormat   int32

	// Output routing from RenderTargetSetOutput.
	Screen        uint32
	Side          uint32
	TransferFlags uint32

	// Last clear values. ColorCleared/DepthCleared report whether the
	// respective buffer has been cleared at least once.
	Color        uint32
	Depth        uint32
	ColorCleared bool
	DepthCleared bool
}

// Backend is the in-memory backend. The zero value is not usable; call New.
//
// Failure injection hooks (FailInit, FailDrawOn) make native failure paths
// reproducible in tests.
type Backend struct {
	logger *slog.Logger

	// FailInit makes Init report failure.
	FailInit bool

	// FailDrawOn, when non-nil, decides per target whether FrameDrawOn
	// reports failure.
	FailDrawOn func(target uintptr) bool

	initialized bool
	cmdBufSize  int
	finiCalls   int

	nextHandle uintptr
	targets    map[uintptr]*TargetState
	lightEnvs  map[uintptr]bool

	inFrame       bool
	currentTarget uintptr
	framesBegun   int
	framesEnded   int

	buffers      []backend.VertexBuffer
	attrs        []backend.Attribute
	boundProgram uintptr
	boundLight   uintptr
	uniforms     map[uint64][][4]float32
	texEnvInits  map[int]int

	drawCalls   int
	draw2DCalls int
}

// New creates a headless backend.
func New() *Backend {
	return &Backend{
		logger:      slog.New(nopHandler{}),
		targets:     make(map[uintptr]*TargetState),
		lightEnvs:   make(map[uintptr]bool),
		uniforms:    make(map[uint64][][4]float32),
		texEnvInits: make(map[int]int),
	}
}

// SetLogger adopts the logger propagated from the citro3d package.
func (b *Backend) SetLogger(l *slog.Logger) {
	if l != nil {
		b.logger = l
	}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendHeadless }

// Init brings up the recorded command queue.
func (b *Backend) Init(cmdBufSize int) bool {
	if b.FailInit {
		return false
	}
	b.initialized = true
	b.cmdBufSize = cmdBufSize
	b.logger.Debug("headless: init", "cmdbuf_size", cmdBufSize)
	return true
}

// Fini tears down the recorded command queue.
func (b *Backend) Fini() {
	b.initialized = false
	b.finiCalls++
	b.logger.Debug("headless: fini")
}

// FrameBegin opens a frame.
func (b *Backend) FrameBegin(flags uint32) {
	b.inFrame = true
	b.framesBegun++
}

// FrameDrawOn makes target the draw destination, honoring FailDrawOn.
func (b *Backend) FrameDrawOn(target uintptr) bool {
	if b.FailDrawOn != nil && b.FailDrawOn(target) {
		return false
	}
	if _, ok := b.targets[target]; !ok {
		return false
	}
	b.currentTarget = target
	return true
}

// FrameEnd closes the current frame.
func (b *Backend) FrameEnd(flags uint32) {
	b.inFrame = false
	b.currentTarget = 0
	b.framesEnded++
}

// RenderTargetCreate records a new target and returns its handle.
func (b *Backend) RenderTargetCreate(width, height int16, colorFmt uint32, depthFmt int32) uintptr {
	if width <= 0 || height <= 0 {
		return 0
	}
	b.nextHandle++
	h := b.nextHandle
	b.targets[h] = &TargetState{
		Width:       width,
		Height:      height,
		ColorFormat: colorFmt,
		DepthFormat: depthFmt,
	}
	return h
}

// RenderTargetSetOutput records the target's screen routing.
func (b *Backend) RenderTargetSetOutput(target uintptr, screen, side uint32, transferFlags uint32) {
	if t, ok := b.targets[target]; ok {
		t.Screen = screen
		t.Side = side
		t.TransferFlags = transferFlags
	}
}

// RenderTargetClear records a clear of the selected buffers.
func (b *Backend) RenderTargetClear(target uintptr, clearBits uint32, rgbaColor, depth uint32) {
	t, ok := b.targets[target]
	if !ok {
		return
	}
	if clearBits&1 != 0 {
		t.Color = rgbaColor
		t.ColorCleared = true
	}
	if clearBits&2 != 0 {
		t.Depth = depth
		t.DepthCleared = true
	}
}

// RenderTargetDelete forgets a target.
func (b *Backend) RenderTargetDelete(target uintptr) {
	delete(b.targets, target)
}

// SetBufInfo records the vertex buffers for the following draws.
func (b *Backend) SetBufInfo(buffers []backend.VertexBuffer) {
	b.buffers = append(b.buffers[:0], buffers...)
}

// SetAttrInfo records the attribute loaders for the following draws.
func (b *Backend) SetAttrInfo(attrs []backend.Attribute) {
	b.attrs = append(b.attrs[:0], attrs...)
}

// DrawArrays counts a draw submission.
func (b *Backend) DrawArrays(primitive uint32, first, count int32) {
	b.drawCalls++
}

// DrawElements counts an indexed draw submission.
func (b *Backend) DrawElements(primitive uint32, count int32, elemType uint32, indices uintptr) {
	b.drawCalls++
}

// BindProgram records the bound shader program.
func (b *Backend) BindProgram(program uintptr) {
	b.boundProgram = program
}

// SetFloatUniform records the uniform rows for a stage and register.
func (b *Backend) SetFloatUniform(shaderType uint32, index int, rows [][4]float32) {
	key := uint64(shaderType)<<32 | uint64(uint32(index))
	b.uniforms[key] = append([][4]float32(nil), rows...)
}

// LightEnvCreate allocates a recorded light environment block.
func (b *Backend) LightEnvCreate() uintptr {
	b.nextHandle++
	h := b.nextHandle
	b.lightEnvs[h] = true
	return h
}

// LightEnvBind records the bound light environment.
func (b *Backend) LightEnvBind(env uintptr) {
	b.boundLight = env
}

// LightEnvDelete forgets a light environment block.
func (b *Backend) LightEnvDelete(env uintptr) {
	delete(b.lightEnvs, env)
}

// TexEnvInit counts a stage reset.
func (b *Backend) TexEnvInit(stage int) {
	b.texEnvInits[stage]++
}

// TexEnvSrc records nothing; sources are write-only state here.
func (b *Backend) TexEnvSrc(stage int, mode uint32, s0, s1, s2 uint32) {}

// TexEnvFunc records nothing; functions are write-only state here.
func (b *Backend) TexEnvFunc(stage int, mode uint32, fn uint32) {}

// TexEnvColor records nothing; colors are write-only state here.
func (b *Backend) TexEnvColor(stage int, color uint32) {}

// Inspection accessors, for tests and diagnostics.

// Initialized reports whether Init has succeeded without a later Fini.
func (b *Backend) Initialized() bool { return b.initialized }

// FiniCalls returns how many times Fini has run.
func (b *Backend) FiniCalls() int { return b.finiCalls }

// CmdBufSize returns the size passed to the last successful Init.
func (b *Backend) CmdBufSize() int { return b.cmdBufSize }

// InFrame reports whether a frame is open.
func (b *Backend) InFrame() bool { return b.inFrame }

// FramesBegun returns the number of FrameBegin calls.
func (b *Backend) FramesBegun() int { return b.framesBegun }

// FramesEnded returns the number of FrameEnd calls.
func (b *Backend) FramesEnded() int { return b.framesEnded }

// CurrentTarget returns the draw destination of the open frame, or 0.
func (b *Backend) CurrentTarget() uintptr { return b.currentTarget }

// Target returns a copy of the recorded state of a live target.
func (b *Backend) Target(raw uintptr) (TargetState, bool) {
	t, ok := b.targets[raw]
	if !ok {
		return TargetState{}, false
	}
	return *t, true
}

// TargetCount returns the number of live targets.
func (b *Backend) TargetCount() int { return len(b.targets) }

// DrawCalls returns the number of 3D draw submissions.
func (b *Backend) DrawCalls() int { return b.drawCalls }

// Draw2DCalls returns the number of 2D draw submissions.
func (b *Backend) Draw2DCalls() int { return b.draw2DCalls }

// BoundProgram returns the last bound shader program handle.
func (b *Backend) BoundProgram() uintptr { return b.boundProgram }

// BoundLightEnv returns the currently bound light environment handle, or 0.
func (b *Backend) BoundLightEnv() uintptr { return b.boundLight }

// FloatUniform returns the rows last written to a uniform register.
func (b *Backend) FloatUniform(shaderType uint32, index int) ([][4]float32, bool) {
	rows, ok := b.uniforms[uint64(shaderType)<<32|uint64(uint32(index))]
	return rows, ok
}

// TexEnvInits returns how many times a stage has been reset.
func (b *Backend) TexEnvInits(stage int) int { return b.texEnvInits[stage] }

// VertexBuffers returns the buffers from the last SetBufInfo.
func (b *Backend) VertexBuffers() []backend.VertexBuffer { return b.buffers }

// Attributes returns the loaders from the last SetAttrInfo.
func (b *Backend) Attributes() []backend.Attribute { return b.attrs }
