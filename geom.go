package scenic

import (
	"github.com/chewxy/math32"
)

// Point is a position in 2D space.
type Point struct {
	X, Y float32
}

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

// Vector is a 2D displacement.
type Vector struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle stored as min/max bounds.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// RectFromOriginSize builds a rectangle from an origin point and a size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{
		MinX: origin.X,
		MinY: origin.Y,
		MaxX: origin.X + size.Width,
		MaxY: origin.Y + size.Height,
	}
}

// RectFromSize builds a rectangle at the origin with the given size.
func RectFromSize(size Size) Rect {
	return Rect{MaxX: size.Width, MaxY: size.Height}
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math32.MaxFloat32,
		MinY: math32.MaxFloat32,
		MaxX: -math32.MaxFloat32,
		MaxY: -math32.MaxFloat32,
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Origin returns the minimum corner of the rectangle.
func (r Rect) Origin() Point { return Point{X: r.MinX, Y: r.MinY} }

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	if r.IsEmpty() {
		return Size{}
	}
	return Size{Width: r.MaxX - r.MinX, Height: r.MaxY - r.MinY}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math32.Min(r.MinX, other.MinX),
		MinY: math32.Min(r.MinY, other.MinY),
		MaxX: math32.Max(r.MaxX, other.MaxX),
		MaxY: math32.Max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		MinX: math32.Min(r.MinX, p.X),
		MinY: math32.Min(r.MinY, p.Y),
		MaxX: math32.Max(r.MaxX, p.X),
		MaxY: math32.Max(r.MaxY, p.Y),
	}
}

// Intersect returns the overlapping region of r and other.
// The result may be empty.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		MinX: math32.Max(r.MinX, other.MinX),
		MinY: math32.Max(r.MinY, other.MinY),
		MaxX: math32.Min(r.MaxX, other.MaxX),
		MaxY: math32.Min(r.MaxY, other.MaxY),
	}
}

// Translate shifts the rectangle by the vector.
func (r Rect) Translate(v Vector) Rect {
	return Rect{
		MinX: r.MinX + v.X,
		MinY: r.MinY + v.Y,
		MaxX: r.MaxX + v.X,
		MaxY: r.MaxY + v.Y,
	}
}

// Scale divides the rectangle extents component-wise, mapping a rectangle
// from a scaled coordinate space back into the unscaled one.
// Zero factors yield an empty rectangle.
func (r Rect) Scale(fx, fy float32) Rect {
	if fx == 0 || fy == 0 {
		return EmptyRect()
	}
	return Rect{
		MinX: r.MinX / fx,
		MinY: r.MinY / fy,
		MaxX: r.MaxX / fx,
		MaxY: r.MaxY / fy,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// IntRect is an axis-aligned rectangle with integer pixel bounds,
// used for source clips into pixel data.
type IntRect struct {
	MinX, MinY int32
	MaxX, MaxY int32
}

// IntRectFromSize builds an integer rectangle at the origin.
func IntRectFromSize(width, height uint32) IntRect {
	return IntRect{MaxX: int32(width), MaxY: int32(height)}
}

// IsEmpty returns true if the rectangle has no area.
func (r IntRect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Width returns the width of the rectangle.
func (r IntRect) Width() int32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r IntRect) Height() int32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Affine represents a 2D affine transformation matrix.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// TranslateAffine creates a translation transformation.
func TranslateAffine(x, y float32) Affine {
	return Affine{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// ScaleAffine creates a scaling transformation.
func ScaleAffine(x, y float32) Affine {
	return Affine{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// RotateAffine creates a rotation transformation (angle in radians).
func RotateAffine(angle float32) Affine {
	sin, cos := math32.Sincos(angle)
	return Affine{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// Multiply returns the product of two affine transformations.
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(x, y float32) (float32, float32) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// TransformRect returns the axis-aligned bounding box of the four
// transformed corners of r.
func (a Affine) TransformRect(r Rect) Rect {
	if r.IsEmpty() {
		return EmptyRect()
	}
	out := EmptyRect()
	for _, c := range [4][2]float32{
		{r.MinX, r.MinY}, {r.MaxX, r.MinY},
		{r.MinX, r.MaxY}, {r.MaxX, r.MaxY},
	} {
		x, y := a.TransformPoint(c[0], c[1])
		out = out.UnionPoint(Point{X: x, Y: y})
	}
	return out
}

// Invert returns the inverse transformation and whether it exists.
func (a Affine) Invert() (Affine, bool) {
	det := a.A*a.E - a.B*a.D
	if det == 0 {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		A: a.E * inv,
		B: -a.B * inv,
		C: (a.B*a.F - a.E*a.C) * inv,
		D: -a.D * inv,
		E: a.A * inv,
		F: (a.D*a.C - a.A*a.F) * inv,
	}, true
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}
