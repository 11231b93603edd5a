package scene

import (
	"iter"

	"github.com/gogpu/scenic"
)

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns the number of coordinates this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbQuadTo:
		return 4 // cx, cy, x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// Path is a vector outline. Commands (verbs) and coordinate data are
// stored separately for compact traversal.
type Path struct {
	verbs  []PathVerb
	points []float32
	bounds scenic.Rect
	start  [2]float32 // start of current subpath for Close
	cursor [2]float32 // current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
		bounds: scenic.EmptyRect(),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.bounds = scenic.EmptyRect()
	p.start = [2]float32{}
	p.cursor = [2]float32{}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(scenic.Point{X: x, Y: y})
	p.start = [2]float32{x, y}
	p.cursor = [2]float32{x, y}
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(scenic.Point{X: x, Y: y})
	p.cursor = [2]float32{x, y}
	return p
}

// QuadTo draws a quadratic Bezier curve to (x, y) with control (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	// Bounds include control points, a conservative approximation.
	p.bounds = p.bounds.UnionPoint(scenic.Point{X: cx, Y: cy})
	p.bounds = p.bounds.UnionPoint(scenic.Point{X: x, Y: y})
	p.cursor = [2]float32{x, y}
	return p
}

// CubicTo draws a cubic Bezier curve to (x, y) with controls
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.bounds = p.bounds.UnionPoint(scenic.Point{X: c1x, Y: c1y})
	p.bounds = p.bounds.UnionPoint(scenic.Point{X: c2x, Y: c2y})
	p.bounds = p.bounds.UnionPoint(scenic.Point{X: x, Y: y})
	p.cursor = [2]float32{x, y}
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Rectangle adds a rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// kappa approximates circular arcs with cubic beziers:
// 4 * (sqrt(2) - 1) / 3.
const kappa = float32(0.5522847498)

// RoundedRectangle adds a rounded rectangle subpath. The radius is
// clamped to half the smaller dimension.
func (p *Path) RoundedRectangle(x, y, w, h, r float32) *Path {
	maxR := w
	if h < w {
		maxR = h
	}
	maxR /= 2
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		return p.Rectangle(x, y, w, h)
	}

	kr := kappa * r

	p.MoveTo(x+r, y)

	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+kr, y, x+w, y+r-kr, x+w, y+r)

	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+kr, x+w-r+kr, y+h, x+w-r, y+h)

	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-kr, y+h, x, y+h-r+kr, x, y+h-r)

	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-kr, x+r-kr, y, x+r, y)

	return p.Close()
}

// Circle adds a circle subpath.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse subpath.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	kx := kappa * rx
	ky := kappa * ry

	p.MoveTo(cx+rx, cy)

	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)

	return p.Close()
}

// Bounds returns the bounding rectangle of the path.
func (p *Path) Bounds() scenic.Rect {
	return p.bounds
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the path's command list.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the path's raw coordinate data.
func (p *Path) Points() []float32 {
	return p.points
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	c := &Path{
		verbs:  make([]PathVerb, len(p.verbs)),
		points: make([]float32, len(p.points)),
		bounds: p.bounds,
		start:  p.start,
		cursor: p.cursor,
	}
	copy(c.verbs, p.verbs)
	copy(c.points, p.points)
	return c
}

// Transform returns a new path with every coordinate transformed by t.
func (p *Path) Transform(t scenic.Affine) *Path {
	if t.IsIdentity() {
		return p.Clone()
	}
	out := NewPath()
	i := 0
	var coords [6]float32
	for _, v := range p.verbs {
		n := v.PointCount()
		for j := 0; j < n; j += 2 {
			coords[j], coords[j+1] = t.TransformPoint(p.points[i+j], p.points[i+j+1])
		}
		switch v {
		case VerbMoveTo:
			out.MoveTo(coords[0], coords[1])
		case VerbLineTo:
			out.LineTo(coords[0], coords[1])
		case VerbQuadTo:
			out.QuadTo(coords[0], coords[1], coords[2], coords[3])
		case VerbCubicTo:
			out.CubicTo(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5])
		case VerbClose:
			out.Close()
		}
		i += n
	}
	return out
}

// PathElement is a single path command with its resolved coordinates.
// Coords holds PointCount(Verb) values.
type PathElement struct {
	Verb   PathVerb
	Coords [6]float32
}

// Elements iterates over the path's commands with their coordinates.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		i := 0
		for _, v := range p.verbs {
			var el PathElement
			el.Verb = v
			n := v.PointCount()
			copy(el.Coords[:n], p.points[i:i+n])
			i += n
			if !yield(el) {
				return
			}
		}
	}
}
