package scene

import "github.com/gogpu/scenic"

// Shape is the interface for geometry that can be filled, stroked, or
// used as a layer clip.
type Shape interface {
	// ToPath converts the shape to a Path.
	ToPath() *Path

	// Bounds returns the bounding rectangle of the shape.
	Bounds() scenic.Rect
}

// RectShape represents an axis-aligned rectangle.
type RectShape struct {
	X, Y          float32 // top-left corner
	Width, Height float32
}

// NewRectShape creates a new rectangle shape.
func NewRectShape(x, y, width, height float32) *RectShape {
	return &RectShape{X: x, Y: y, Width: width, Height: height}
}

// RectShapeFromRect creates a rectangle shape covering r.
func RectShapeFromRect(r scenic.Rect) *RectShape {
	return &RectShape{X: r.MinX, Y: r.MinY, Width: r.Width(), Height: r.Height()}
}

// ToPath converts the rectangle to a Path.
func (r *RectShape) ToPath() *Path {
	return NewPath().Rectangle(r.X, r.Y, r.Width, r.Height)
}

// Bounds returns the bounding rectangle.
func (r *RectShape) Bounds() scenic.Rect {
	return scenic.Rect{
		MinX: r.X,
		MinY: r.Y,
		MaxX: r.X + r.Width,
		MaxY: r.Y + r.Height,
	}
}

// RoundedRectShape represents a rectangle with rounded corners.
type RoundedRectShape struct {
	X, Y          float32 // top-left corner
	Width, Height float32
	Radius        float32 // corner radius, same for all corners
}

// NewRoundedRectShape creates a new rounded rectangle shape.
func NewRoundedRectShape(x, y, width, height, radius float32) *RoundedRectShape {
	return &RoundedRectShape{
		X: x, Y: y, Width: width, Height: height, Radius: radius,
	}
}

// ToPath converts the rounded rectangle to a Path.
func (r *RoundedRectShape) ToPath() *Path {
	return NewPath().RoundedRectangle(r.X, r.Y, r.Width, r.Height, r.Radius)
}

// Bounds returns the bounding rectangle.
func (r *RoundedRectShape) Bounds() scenic.Rect {
	return scenic.Rect{
		MinX: r.X,
		MinY: r.Y,
		MaxX: r.X + r.Width,
		MaxY: r.Y + r.Height,
	}
}

// PathShape wraps an arbitrary Path as a Shape.
type PathShape struct {
	Path *Path
}

// NewPathShape creates a shape from a path.
func NewPathShape(p *Path) *PathShape {
	return &PathShape{Path: p}
}

// ToPath returns the wrapped path.
func (s *PathShape) ToPath() *Path {
	return s.Path
}

// Bounds returns the bounding rectangle of the wrapped path.
func (s *PathShape) Bounds() scenic.Rect {
	if s.Path == nil {
		return scenic.EmptyRect()
	}
	return s.Path.Bounds()
}
