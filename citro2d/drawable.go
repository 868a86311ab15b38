package citro2d

import "github.com/go3ds/citro3d"

// Rectangle is an axis-aligned rectangle with one color per corner.
type Rectangle struct {
	Point      Point
	Size       Size
	MultiColor MultiColor
}

// Render draws the rectangle on the active target.
func (s *Rectangle) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawRectangle(
		s.Point.X, s.Point.Y, s.Point.Z,
		s.Size.Width, s.Size.Height,
		s.MultiColor.TopLeft.Inner,
		s.MultiColor.TopRight.Inner,
		s.MultiColor.BottomLeft.Inner,
		s.MultiColor.BottomRight.Inner,
	))
}

// RectangleSolid is a single-color rectangle.
type RectangleSolid struct {
	Point Point
	Size  Size
	Color Color
}

// Render draws the rectangle on the active target.
func (s *RectangleSolid) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawRectSolid(
		s.Point.X, s.Point.Y, s.Point.Z,
		s.Size.Width, s.Size.Height,
		s.Color.Inner,
	))
}

// Triangle is a triangle with one color per vertex.
type Triangle struct {
	Top        Point
	TopColor   Color
	Left       Point
	LeftColor  Color
	Right      Point
	RightColor Color
	Depth      float32
}

// Render draws the triangle on the active target.
func (s *Triangle) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawTriangle(
		s.Top.X, s.Top.Y, s.TopColor.Inner,
		s.Left.X, s.Left.Y, s.LeftColor.Inner,
		s.Right.X, s.Right.Y, s.RightColor.Inner,
		s.Depth,
	))
}

// Ellipse is an ellipse with one color per corner of its bounding box.
type Ellipse struct {
	Point      Point
	Size       Size
	MultiColor MultiColor
}

// Render draws the ellipse on the active target.
func (s *Ellipse) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawEllipse(
		s.Point.X, s.Point.Y, s.Point.Z,
		s.Size.Width, s.Size.Height,
		s.MultiColor.TopLeft.Inner,
		s.MultiColor.TopRight.Inner,
		s.MultiColor.BottomLeft.Inner,
		s.MultiColor.BottomRight.Inner,
	))
}

// EllipseSolid is a single-color ellipse.
type EllipseSolid struct {
	Point Point
	Size  Size
	Color Color
}

// Render draws the ellipse on the active target.
func (s *EllipseSolid) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawEllipseSolid(
		s.Point.X, s.Point.Y, s.Point.Z,
		s.Size.Width, s.Size.Height,
		s.Color.Inner,
	))
}

// Circle is a circle with one color per corner of its bounding box.
type Circle struct {
	Point      Point
	Radius     float32
	MultiColor MultiColor
}

// Render draws the circle on the active target.
func (s *Circle) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawCircle(
		s.Point.X, s.Point.Y, s.Point.Z, s.Radius,
		s.MultiColor.TopLeft.Inner,
		s.MultiColor.TopRight.Inner,
		s.MultiColor.BottomLeft.Inner,
		s.MultiColor.BottomRight.Inner,
	))
}

// CircleSolid is a single-color circle.
type CircleSolid struct {
	Point  Point
	Radius float32
	Color  Color
}

// Render draws the circle on the active target.
func (s *CircleSolid) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawCircleSolid(
		s.Point.X, s.Point.Y, s.Point.Z, s.Radius,
		s.Color.Inner,
	))
}

// Line is a straight line of the given thickness between two points.
type Line struct {
	Start      Point
	End        Point
	StartColor Color
	EndColor   Color
	Thickness  float32
	Depth      float32
}

// Render draws the line on the active target.
func (s *Line) Render(target *citro3d.RenderTarget) DrawResult {
	b := draw2D(target)
	if b == nil {
		return Failure
	}
	return resultOf(b.DrawLine(
		s.Start.X, s.Start.Y, s.StartColor.Inner,
		s.End.X, s.End.Y, s.EndColor.Inner,
		s.Thickness, s.Depth,
	))
}
