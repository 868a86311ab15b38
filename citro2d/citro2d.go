// Package citro2d provides 2D shape drawables for the active render
// target.
//
// Drawables are plain structs describing a shape; their Render method
// marshals the parameters to the native 2D draw calls. They require an
// active RenderTarget, so drawing is only possible inside a frame scope:
//
//	top, err = inst.RenderToTarget(top, func(inst *citro3d.Instance, t *citro3d.RenderTarget) (*citro3d.RenderTarget, error) {
//	    citro2d.Clear(t, citro2d.NewColor(0, 0, 0))
//	    rect := citro2d.RectangleSolid{
//	        Point: citro2d.Point{X: 10, Y: 10},
//	        Size:  citro2d.Size{Width: 50, Height: 20},
//	        Color: citro2d.NewColor(255, 0, 0),
//	    }
//	    rect.Render(t)
//	    return t, nil
//	})
package citro2d

import (
	"github.com/go3ds/citro3d"
	"github.com/go3ds/citro3d/backend"
)

// Color is a 32-bit packed RGBA color in the native byte order.
type Color struct {
	Inner uint32
}

// NewColor creates a color from RGB values with full opacity.
func NewColor(r, g, b uint8) Color {
	return NewColorWithAlpha(r, g, b, 255)
}

// NewColorWithAlpha creates a color from RGBA values.
func NewColorWithAlpha(r, g, b, a uint8) Color {
	return Color{Inner: uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24}
}

// Point is a position on the target. Z is the depth of the fragment.
type Point struct {
	X, Y, Z float32
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float32
}

// MultiColor holds one color per corner for gradient-filled shapes.
type MultiColor struct {
	TopLeft     Color
	TopRight    Color
	BottomLeft  Color
	BottomRight Color
}

// Solid builds a MultiColor with the same color in every corner.
func Solid(c Color) MultiColor {
	return MultiColor{TopLeft: c, TopRight: c, BottomLeft: c, BottomRight: c}
}

// DrawResult reports whether a native draw call succeeded.
type DrawResult uint8

const (
	// Failure means the native draw call reported failure or no 2D
	// surface is available.
	Failure DrawResult = 0

	// Success means the draw was submitted.
	Success DrawResult = 1
)

// Ok reports whether the result is Success.
func (r DrawResult) Ok() bool { return r == Success }

func resultOf(ok bool) DrawResult {
	if ok {
		return Success
	}
	return Failure
}

// Drawable is a renderable 2D item. Implement it to create composite or
// custom drawables out of the primitives in this package.
type Drawable interface {
	Render(target *citro3d.RenderTarget) DrawResult
}

// draw2D returns the backend's 2D surface, or nil when the backend has
// none.
func draw2D(target *citro3d.RenderTarget) backend.Backend2D {
	b, ok := target.Backend().(backend.Backend2D)
	if !ok {
		return nil
	}
	return b
}

// Clear overwrites the whole target with a color. Unlike the drawables,
// clearing is legal outside a frame scope as well; this helper takes the
// active target for use inside one.
func Clear(target *citro3d.RenderTarget, c Color) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	b.TargetClear(target.Raw(), c.Inner)
	return Success
}
