package ctru

import "github.com/go3ds/citro3d/backend"

var _ backend.Backend2D = (*Backend)(nil)

// Has2D reports whether libcitro2d was found. When it is absent the 2D
// methods report failure without submitting anything.
func (b *Backend) Has2D() bool { return b.has2D }

// TargetClear overwrites the whole target with a color.
func (b *Backend) TargetClear(target uintptr, color uint32) {
	if b.has2D {
		b.c2dTargetClear(target, color)
	}
}

// DrawRectangle draws an axis-aligned rectangle with one color per corner.
func (b *Backend) DrawRectangle(x, y, z, w, h float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dRectangle(x, y, z, w, h, topLeft, topRight, bottomLeft, bottomRight)
}

// DrawRectSolid draws a single-color rectangle.
func (b *Backend) DrawRectSolid(x, y, z, w, h float32, color uint32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dRectSolid(x, y, z, w, h, color)
}

// DrawTriangle draws a triangle with one color per vertex.
func (b *Backend) DrawTriangle(x0, y0 float32, c0 uint32, x1, y1 float32, c1 uint32, x2, y2 float32, c2 uint32, depth float32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dTriangle(x0, y0, c0, x1, y1, c1, x2, y2, c2, depth)
}

// DrawEllipse draws an ellipse with one color per corner of its bounds.
func (b *Backend) DrawEllipse(x, y, z, w, h float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dEllipse(x, y, z, w, h, topLeft, topRight, bottomLeft, bottomRight)
}

// DrawEllipseSolid draws a single-color ellipse.
func (b *Backend) DrawEllipseSolid(x, y, z, w, h float32, color uint32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dEllipseSolid(x, y, z, w, h, color)
}

// DrawCircle draws a circle with one color per corner of its bounds.
func (b *Backend) DrawCircle(x, y, z, radius float32, topLeft, topRight, bottomLeft, bottomRight uint32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dCircle(x, y, z, radius, topLeft, topRight, bottomLeft, bottomRight)
}

// DrawCircleSolid draws a single-color circle.
func (b *Backend) DrawCircleSolid(x, y, z, radius float32, color uint32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dCircleSolid(x, y, z, radius, color)
}

// DrawLine draws a line of the given thickness between two points.
func (b *Backend) DrawLine(x0, y0 float32, c0 uint32, x1, y1 float32, c1 uint32, thickness, depth float32) bool {
	if !b.has2D {
		return false
	}
	return b.c2dLine(x0, y0, c0, x1, y1, c1, thickness, depth)
}
