package citro3d

import (
	"github.com/go3ds/citro3d/backend"
	"github.com/go3ds/citro3d/gfx"
)

// target is the state shared by the two wrapper types. The active flag is
// the runtime encoding of the passive/active state machine: operations
// legal in only one state assert it on entry.
type target struct {
	raw     uintptr
	screen  *gfx.Screen
	queue   *renderQueue
	backend backend.Backend

	width  int
	height int
	color  ColorFormat
	depth  DepthFormat

	active bool
	closed bool
}

// ScreenTarget is a render target bound to a screen that is not currently
// being drawn on. To start rendering to it, use Instance.RenderToTarget.
//
// The target holds the exclusive borrow of its screen's framebuffer for
// its whole lifetime; Close releases the native target and then the
// borrow.
type ScreenTarget struct {
	t *target
}

// RenderTarget is the active draw destination inside an open frame scope.
// Frame data written through draw calls lands on this target.
//
// RenderTargets exist only between frame begin and frame end: they are
// produced by Instance.RenderToTarget and Instance.SwapRenderTarget and
// consumed by the inverse transitions. A RenderTarget handle must not be
// retained past the frame that produced it.
type RenderTarget struct {
	t *target
}

// activate transitions the target into the active state.
func (s *ScreenTarget) activate() *RenderTarget {
	s.t.active = true
	return &RenderTarget{t: s.t}
}

// Clear overwrites the target's color and/or depth values according to
// flags. rgbaColor is a packed 32-bit RGBA color.
//
// Clearing only records work on the target's queue entry, so it is legal
// in the passive state, outside any frame scope.
func (s *ScreenTarget) Clear(flags ClearFlags, rgbaColor, depth uint32) {
	if s.t.closed {
		Logger().Warn("citro3d: clear on closed target")
		return
	}
	if s.t.active {
		// Stale passive handle; the target is currently a RenderTarget.
		Logger().Warn("citro3d: clear through stale passive handle")
		return
	}
	s.t.backend.RenderTargetClear(s.t.raw, uint32(flags), rgbaColor, depth)
}

// Raw returns the underlying native render target handle.
//
// The handle is owned by the target; it must not be deleted and must not
// be used after Close.
func (s *ScreenTarget) Raw() uintptr { return s.t.raw }

// Screen returns the screen whose framebuffer this target owns.
func (s *ScreenTarget) Screen() *gfx.Screen { return s.t.screen }

// Width returns the target width in pixels.
func (s *ScreenTarget) Width() int { return s.t.width }

// Height returns the target height in pixels.
func (s *ScreenTarget) Height() int { return s.t.height }

// ColorFormat returns the GPU color buffer format of the target.
func (s *ScreenTarget) ColorFormat() ColorFormat { return s.t.color }

// DepthFormat returns the depth buffer format of the target, or DepthNone.
func (s *ScreenTarget) DepthFormat() DepthFormat { return s.t.depth }

// Close deletes the native render target and releases the screen borrow.
// It fails with ErrTargetActive while the target is the current draw
// destination. Close is idempotent.
func (s *ScreenTarget) Close() error {
	t := s.t
	if t.closed {
		return nil
	}
	if t.active {
		return ErrTargetActive
	}
	t.closed = true
	t.backend.RenderTargetDelete(t.raw)
	t.screen.Release()
	t.queue.release()
	return nil
}

// deactivate transitions the target back into the passive state.
func (r *RenderTarget) deactivate() *ScreenTarget {
	r.t.active = false
	return &ScreenTarget{t: r.t}
}

// Clear overwrites the target's color and/or depth values according to
// flags. rgbaColor is a packed 32-bit RGBA color.
func (r *RenderTarget) Clear(flags ClearFlags, rgbaColor, depth uint32) {
	if !r.t.active {
		// Stale active handle; the frame that produced it has ended.
		Logger().Warn("citro3d: clear through stale render target handle")
		return
	}
	r.t.backend.RenderTargetClear(r.t.raw, uint32(flags), rgbaColor, depth)
}

// Raw returns the underlying native render target handle.
func (r *RenderTarget) Raw() uintptr { return r.t.raw }

// Backend returns the backend this target submits to. It is an interop
// accessor for layers such as citro2d that issue their own native draws
// against the active target.
func (r *RenderTarget) Backend() backend.Backend { return r.t.backend }

// Width returns the target width in pixels.
func (r *RenderTarget) Width() int { return r.t.width }

// Height returns the target height in pixels.
func (r *RenderTarget) Height() int { return r.t.height }
