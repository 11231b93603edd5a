package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// flattenTolerance bounds the deviation of line segments from the true
// curve, in device pixels.
const flattenTolerance = 0.25

// flattenPath converts a path into closed polyline contours.
// Open subpaths are closed by a segment back to their start.
func flattenPath(p *scene.Path) [][]scenic.Point {
	var contours [][]scenic.Point
	var cur []scenic.Point
	var start scenic.Point

	closeCur := func() {
		if len(cur) > 1 {
			if cur[0] != cur[len(cur)-1] {
				cur = append(cur, cur[0])
			}
			contours = append(contours, cur)
		}
		cur = nil
	}

	for el := range p.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			closeCur()
			start = scenic.Point{X: el.Coords[0], Y: el.Coords[1]}
			cur = append(cur, start)
		case scene.VerbLineTo:
			cur = append(cur, scenic.Point{X: el.Coords[0], Y: el.Coords[1]})
		case scene.VerbQuadTo:
			if len(cur) == 0 {
				cur = append(cur, scenic.Point{})
			}
			p0 := cur[len(cur)-1]
			c := scenic.Point{X: el.Coords[0], Y: el.Coords[1]}
			p1 := scenic.Point{X: el.Coords[2], Y: el.Coords[3]}
			cur = appendQuad(cur, p0, c, p1)
		case scene.VerbCubicTo:
			if len(cur) == 0 {
				cur = append(cur, scenic.Point{})
			}
			p0 := cur[len(cur)-1]
			c1 := scenic.Point{X: el.Coords[0], Y: el.Coords[1]}
			c2 := scenic.Point{X: el.Coords[2], Y: el.Coords[3]}
			p1 := scenic.Point{X: el.Coords[4], Y: el.Coords[5]}
			cur = appendCubic(cur, p0, c1, c2, p1)
		case scene.VerbClose:
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
			closeCur()
		}
	}
	closeCur()
	return contours
}

// flattenSubpaths is like flattenPath but keeps open subpaths open,
// reporting whether each contour was explicitly closed. Used by the
// stroker, where caps and joins differ for open and closed contours.
func flattenSubpaths(p *scene.Path) (contours [][]scenic.Point, closed []bool) {
	var cur []scenic.Point
	var start scenic.Point
	curClosed := false

	flush := func() {
		if len(cur) > 1 {
			contours = append(contours, cur)
			closed = append(closed, curClosed)
		}
		cur = nil
		curClosed = false
	}

	for el := range p.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			flush()
			start = scenic.Point{X: el.Coords[0], Y: el.Coords[1]}
			cur = append(cur, start)
		case scene.VerbLineTo:
			cur = append(cur, scenic.Point{X: el.Coords[0], Y: el.Coords[1]})
		case scene.VerbQuadTo:
			if len(cur) == 0 {
				cur = append(cur, scenic.Point{})
			}
			p0 := cur[len(cur)-1]
			cur = appendQuad(cur,
				p0,
				scenic.Point{X: el.Coords[0], Y: el.Coords[1]},
				scenic.Point{X: el.Coords[2], Y: el.Coords[3]})
		case scene.VerbCubicTo:
			if len(cur) == 0 {
				cur = append(cur, scenic.Point{})
			}
			p0 := cur[len(cur)-1]
			cur = appendCubic(cur,
				p0,
				scenic.Point{X: el.Coords[0], Y: el.Coords[1]},
				scenic.Point{X: el.Coords[2], Y: el.Coords[3]},
				scenic.Point{X: el.Coords[4], Y: el.Coords[5]})
		case scene.VerbClose:
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
			curClosed = true
			flush()
		}
	}
	flush()
	return contours, closed
}

// appendQuad subdivides a quadratic Bezier into line segments.
func appendQuad(dst []scenic.Point, p0, c, p1 scenic.Point) []scenic.Point {
	// Segment count from the control polygon's deviation.
	dx := p0.X - 2*c.X + p1.X
	dy := p0.Y - 2*c.Y + p1.Y
	dev := math32.Hypot(dx, dy)
	n := int(math32.Ceil(math32.Sqrt(dev / (4 * flattenTolerance))))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		mt := 1 - t
		x := mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X
		y := mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y
		dst = append(dst, scenic.Point{X: x, Y: y})
	}
	return dst
}

// appendCubic subdivides a cubic Bezier into line segments.
func appendCubic(dst []scenic.Point, p0, c1, c2, p1 scenic.Point) []scenic.Point {
	d1 := math32.Hypot(p0.X-2*c1.X+c2.X, p0.Y-2*c1.Y+c2.Y)
	d2 := math32.Hypot(c1.X-2*c2.X+p1.X, c1.Y-2*c2.Y+p1.Y)
	dev := math32.Max(d1, d2)
	n := int(math32.Ceil(math32.Sqrt(3 * dev / (4 * flattenTolerance))))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		mt := 1 - t
		x := mt*mt*mt*p0.X + 3*mt*mt*t*c1.X + 3*mt*t*t*c2.X + t*t*t*p1.X
		y := mt*mt*mt*p0.Y + 3*mt*mt*t*c1.Y + 3*mt*t*t*c2.Y + t*t*t*p1.Y
		dst = append(dst, scenic.Point{X: x, Y: y})
	}
	return dst
}
