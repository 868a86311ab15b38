// Package gfx models the console's two physical screens and hands out
// exclusive borrows of their framebuffers.
//
// A Screen may back at most one render target at a time. The citro3d
// package claims a screen when a target is created on it and releases the
// claim when the target is closed; a second claim while the first is held
// fails with ErrScreenInUse.
//
// Bringing up the underlying display service (double buffering, wide mode)
// is the application's concern and happens before any Screen is used.
package gfx

import (
	"errors"
	"fmt"
	"sync"
)

// ErrScreenInUse is returned when claiming a screen whose framebuffer is
// already held by a render target.
var ErrScreenInUse = errors.New("gfx: screen already in use")

// Side selects the left or right image of a stereoscopic screen.
// For mono screens, use Left.
type Side uint32

const (
	// Left is the left eye framebuffer (and the only one for mono output).
	Left Side = 0

	// Right is the right eye framebuffer of the stereoscopic top screen.
	Right Side = 1
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint32(s))
	}
}

// FramebufferFormat is the pixel format of a screen's framebuffer, in the
// native display service encoding.
type FramebufferFormat uint32

const (
	// Rgba8 is 8-bit red, green, blue and alpha.
	Rgba8 FramebufferFormat = 0

	// Bgr8 is 8-bit blue, green and red, no alpha.
	Bgr8 FramebufferFormat = 1

	// Rgb565 is 5-bit red, 6-bit green, 5-bit blue.
	Rgb565 FramebufferFormat = 2

	// Rgb5A1 is 5 bits per color channel and a 1-bit alpha.
	Rgb5A1 FramebufferFormat = 3

	// Rgba4 is 4 bits per channel.
	Rgba4 FramebufferFormat = 4
)

// String returns the format name.
func (f FramebufferFormat) String() string {
	switch f {
	case Rgba8:
		return "RGBA8"
	case Bgr8:
		return "BGR8"
	case Rgb565:
		return "RGB565"
	case Rgb5A1:
		return "RGB5A1"
	case Rgba4:
		return "RGBA4"
	default:
		return fmt.Sprintf("FramebufferFormat(%d)", uint32(f))
	}
}

// Native screen identifiers.
const (
	screenTop    uint32 = 0
	screenBottom uint32 = 1
)

// Screen is one physical screen's framebuffer. Screens are obtained from a
// Display and must not be constructed directly.
type Screen struct {
	mu     sync.Mutex
	id     uint32
	side   Side
	format FramebufferFormat
	width  int
	height int
	held   bool
}

// ID returns the native screen identifier.
func (s *Screen) ID() uint32 { return s.id }

// Side returns which stereoscopic framebuffer this screen handle addresses.
func (s *Screen) Side() Side { return s.side }

// Format returns the framebuffer pixel format.
func (s *Screen) Format() FramebufferFormat { return s.format }

// Width returns the framebuffer width in pixels.
func (s *Screen) Width() int { return s.width }

// Height returns the framebuffer height in pixels.
func (s *Screen) Height() int { return s.height }

// Claim takes the exclusive borrow of the screen's framebuffer. It fails
// with ErrScreenInUse if another holder has not released it yet.
func (s *Screen) Claim() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held {
		return ErrScreenInUse
	}
	s.held = true
	return nil
}

// Release returns the exclusive borrow. Releasing an unclaimed screen is a
// no-op.
func (s *Screen) Release() {
	s.mu.Lock()
	s.held = false
	s.mu.Unlock()
}

// Held reports whether the screen's framebuffer is currently claimed.
func (s *Screen) Held() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}

// Display is the provider of the console's screens.
type Display struct {
	top      *Screen
	topRight *Screen
	bottom   *Screen
}

// Option configures a Display.
type Option func(*displayOptions)

type displayOptions struct {
	topFormat    FramebufferFormat
	bottomFormat FramebufferFormat
}

// WithTopFormat sets the top screen's framebuffer format.
// The default is Bgr8, the display service default.
func WithTopFormat(f FramebufferFormat) Option {
	return func(o *displayOptions) { o.topFormat = f }
}

// WithBottomFormat sets the bottom screen's framebuffer format.
// The default is Bgr8, the display service default.
func WithBottomFormat(f FramebufferFormat) Option {
	return func(o *displayOptions) { o.bottomFormat = f }
}

// New creates a Display describing the console's screens: a 400x240
// stereoscopic top screen and a 320x240 bottom screen.
func New(opts ...Option) *Display {
	o := displayOptions{
		topFormat:    Bgr8,
		bottomFormat: Bgr8,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Display{
		top:      &Screen{id: screenTop, side: Left, format: o.topFormat, width: 400, height: 240},
		topRight: &Screen{id: screenTop, side: Right, format: o.topFormat, width: 400, height: 240},
		bottom:   &Screen{id: screenBottom, side: Left, format: o.bottomFormat, width: 320, height: 240},
	}
}

// Top returns the top screen's left framebuffer.
func (d *Display) Top() *Screen { return d.top }

// TopRight returns the top screen's right framebuffer, used for the second
// eye of stereoscopic output.
func (d *Display) TopRight() *Screen { return d.topRight }

// Bottom returns the bottom screen's framebuffer.
func (d *Display) Bottom() *Screen { return d.bottom }
