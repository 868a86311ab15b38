package headless

import "github.com/go3ds/citro3d/backend"

// The headless backend also implements the 2D drawing surface. Draws only
// count; there is no rasterization off-device.
var _ backend.Backend2D = (*Backend)(nil)

// draw2D accounts for one 2D submission. 2D draws land on the frame's
// current target, so they fail outside an open frame.
func (b *Backend) draw2D() bool {
	if !b.inFrame || b.currentTarget == 0 {
		return false
	}
	b.draw2DCalls++
	return true
}

// TargetClear overwrites the whole target with a color.
func (b *Backend) TargetClear(target uintptr, color uint32) {
	if t, ok := b.targets[target]; ok {
		t.Color = color
		t.ColorCleared = true
	}
}

// DrawRectangle draws an axis-aligned rectangle with one color per corner.
func (b *Backend) DrawRectangle(x, y, z, w, h float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool {
	return b.draw2D()
}

// DrawRectSolid draws a single-color rectangle.
func (b *Backend) DrawRectSolid(x, y, z, w, h float32, color uint32) bool {
	return b.draw2D()
}

// DrawTriangle draws a triangle with one color per vertex.
func (b *Backend) DrawTriangle(x0, y0 float32, c0 uint32, x1, y1 float32, c1 uint32, x2, y2 float32, c2 uint32, depth float32) bool {
	return b.draw2D()
}

// DrawEllipse draws an ellipse with one color per corner of its bounds.
func (b *Backend) DrawEllipse(x, y, z, w, h float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool {
	return b.draw2D()
}

// DrawEllipseSolid draws a single-color ellipse.
func (b *Backend) DrawEllipseSolid(x, y, z, w, h float32, color uint32) bool {
	return b.draw2D()
}

// DrawCircle draws a circle with one color per corner of its bounds.
func (b *Backend) DrawCircle(x, y, z, radius float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool {
	return b.draw2D()
}

// DrawCircleSolid draws a single-color circle.
func (b *Backend) DrawCircleSolid(x, y, z, radius float32, color uint32) bool {
	return b.draw2D()
}

// DrawLine draws a line of the given thickness between two points.
func (b *Backend) DrawLine(x0, y0 float32, c0 uint32, x1, y1 float32, c1 uint32, thickness, depth float32) bool {
	return b.draw2D()
}
