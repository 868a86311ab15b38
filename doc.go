// Package citro3d provides safe, lifetime-checked access to the 3DS GPU
// through the citro3d command-submission library.
//
// # Overview
//
// The package sits between application code and the native GPU command
// queue. It wraps long-lived GPU objects (render targets, the command
// queue, texture environment stages, the light environment) in handles
// whose Close order is enforced at runtime, and structures rendering as a
// frame scope inside which exactly one target is the active draw
// destination.
//
// # Quick Start
//
//	display := gfx.New()
//
//	inst, err := citro3d.New()
//	if err != nil {
//	    // ...
//	}
//	defer inst.Close()
//
//	top, err := inst.CreateScreenTarget(400, 240, display.Top(), citro3d.DepthNone)
//	if err != nil {
//	    // ...
//	}
//	defer top.Close()
//
//	top, err = inst.RenderToTarget(top, func(inst *citro3d.Instance, t *citro3d.RenderTarget) (*citro3d.RenderTarget, error) {
//	    t.Clear(citro3d.ClearAll, 0x000000FF, 0)
//	    // submit draws...
//	    return t, nil
//	})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Instance, ScreenTarget, RenderTarget, formats, uniforms
//   - gfx: screen provider with exclusive per-screen borrows
//   - backend: the native command surface and its registry
//   - citro2d: 2D shape drawables layered on the active target
//
// # Target states
//
// A target is either passive (a ScreenTarget, bound to its screen but not
// being drawn on) or active (a RenderTarget, the current draw destination
// inside an open frame). Transitions happen only through
// Instance.RenderToTarget and Instance.SwapRenderTarget, so a draw-only
// handle cannot outlive the frame that produced it.
//
// # Concurrency
//
// The native GPU API is single threaded and not reentrant. An Instance and
// every handle derived from it must be confined to one goroutine.
package citro3d
