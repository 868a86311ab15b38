package citro3d

import (
	"fmt"

	"github.com/go3ds/citro3d/gfx"
)

// ColorFormat is the GPU color buffer format used when rendering, in the
// native GPU_COLORBUF encoding.
type ColorFormat uint32

const (
	// ColorRGBA8 is 8-bit red, green, blue and alpha.
	ColorRGBA8 ColorFormat = 0

	// ColorRGB8 is 8-bit red, green and blue.
	ColorRGB8 ColorFormat = 1

	// ColorRGBA5551 is 5 bits per color channel and a 1-bit alpha.
	ColorRGBA5551 ColorFormat = 2

	// ColorRGB565 is 5-bit red, 6-bit green, 5-bit blue.
	ColorRGB565 ColorFormat = 3

	// ColorRGBA4 is 4 bits per channel.
	ColorRGBA4 ColorFormat = 4
)

// String returns the format name.
func (f ColorFormat) String() string {
	switch f {
	case ColorRGBA8:
		return "RGBA8"
	case ColorRGB8:
		return "RGB8"
	case ColorRGBA5551:
		return "RGBA5551"
	case ColorRGB565:
		return "RGB565"
	case ColorRGBA4:
		return "RGBA4"
	default:
		return fmt.Sprintf("ColorFormat(%d)", uint32(f))
	}
}

// ColorFormatFor returns the GPU color buffer format matching a screen's
// framebuffer format.
func ColorFormatFor(f gfx.FramebufferFormat) ColorFormat {
	switch f {
	case gfx.Rgba8:
		return ColorRGBA8
	case gfx.Rgb565:
		return ColorRGB565
	case gfx.Rgb5A1:
		return ColorRGBA5551
	case gfx.Rgba4:
		return ColorRGBA4
	case gfx.Bgr8:
		// this one seems unusual, but it appears to work fine
		return ColorRGB8
	default:
		return ColorRGBA8
	}
}

// DepthFormat is the depth buffer format used when rendering, in the
// native GPU_DEPTHBUF encoding. DepthNone requests no depth buffer.
type DepthFormat int32

const (
	// DepthNone requests a target without a depth buffer. It is encoded as
	// the native sentinel value -1.
	DepthNone DepthFormat = -1

	// Depth16 is 16-bit depth.
	Depth16 DepthFormat = 0

	// Depth24 is 24-bit depth.
	Depth24 DepthFormat = 2

	// Depth24Stencil8 is 24-bit depth plus an 8-bit stencil.
	Depth24Stencil8 DepthFormat = 3
)

// ClearFlags indicate whether color, depth buffer, or both values should
// be cleared. The bit layout matches the native ABI.
type ClearFlags uint32

const (
	// ClearColor clears the color buffer of the render target.
	ClearColor ClearFlags = 1 << 0

	// ClearDepth clears the depth buffer of the render target.
	ClearDepth ClearFlags = 1 << 1

	// ClearAll clears both color and depth buffer values.
	ClearAll ClearFlags = ClearColor | ClearDepth
)
