package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

func (r *Renderer) strokeShape(shape scene.Shape, transform scenic.Affine,
	style *scene.StrokeStyle, paint scene.Paint) {

	if shape == nil || !paint.IsVisible() || style.Width <= 0 {
		return
	}
	path := shape.ToPath()
	if path == nil || path.IsEmpty() {
		return
	}

	// Stroke in device space with the width scaled by the transform's
	// uniform scale factor.
	device := path.Transform(transform)
	det := transform.A*transform.E - transform.B*transform.D
	width := style.Width * math32.Sqrt(math32.Abs(det))
	if width <= 0 {
		return
	}

	outline := strokeOutline(device, width, style)
	if outline.IsEmpty() {
		return
	}
	cov := rasterizeNonZero(outline, r.width, r.height)
	r.paintCoverage(cov, transform, paint)
}

// strokeOutline expands a path into a fillable outline polygon path.
func strokeOutline(p *scene.Path, width float32, style *scene.StrokeStyle) *scene.Path {
	hw := width / 2
	contours, closed := flattenSubpaths(p)
	out := scene.NewPath()

	for ci, pts := range contours {
		pts = dedupePoints(pts)
		if len(pts) < 2 {
			// Degenerate subpath: round caps still paint a dot.
			if len(pts) == 1 && style.Cap == scene.CapRound {
				out.Circle(pts[0].X, pts[0].Y, hw)
			}
			continue
		}
		if closed[ci] && pts[0] == pts[len(pts)-1] {
			strokeClosed(out, pts[:len(pts)-1], hw, style)
		} else {
			strokeOpen(out, pts, hw, style)
		}
	}
	return out
}

func dedupePoints(pts []scenic.Point) []scenic.Point {
	if len(pts) < 2 {
		return pts
	}
	outPts := pts[:1]
	for _, pt := range pts[1:] {
		last := outPts[len(outPts)-1]
		if math32.Abs(pt.X-last.X) > 1e-6 || math32.Abs(pt.Y-last.Y) > 1e-6 {
			outPts = append(outPts, pt)
		}
	}
	return outPts
}

// strokeOpen emits one closed polygon: the left offsets walked forward,
// the end cap, the left offsets of the reversed polyline, the start cap.
func strokeOpen(out *scene.Path, pts []scenic.Point, hw float32, style *scene.StrokeStyle) {
	side := offsetSide(pts, hw, style)
	rev := reversePoints(pts)
	other := offsetSide(rev, hw, style)

	if len(side) == 0 || len(other) == 0 {
		return
	}

	out.MoveTo(side[0].X, side[0].Y)
	for _, pt := range side[1:] {
		out.LineTo(pt.X, pt.Y)
	}
	emitCap(out, pts[len(pts)-1], side[len(side)-1], other[0], hw, style.Cap)
	for _, pt := range other {
		out.LineTo(pt.X, pt.Y)
	}
	emitCap(out, pts[0], other[len(other)-1], side[0], hw, style.Cap)
	out.Close()
}

// strokeClosed emits two rings: the left offsets of the forward walk and
// of the backward walk. Opposite winding makes the band fill under the
// non-zero rule.
func strokeClosed(out *scene.Path, pts []scenic.Point, hw float32, style *scene.StrokeStyle) {
	ring := closedRing(pts)
	side := offsetSide(ring, hw, style)
	rev := reversePoints(ring)
	other := offsetSide(rev, hw, style)

	appendRing(out, side)
	appendRing(out, other)
}

func appendRing(out *scene.Path, pts []scenic.Point) {
	if len(pts) < 3 {
		return
	}
	out.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		out.LineTo(pt.X, pt.Y)
	}
	out.Close()
}

// closedRing wraps the contour so every vertex has both neighbors.
func closedRing(pts []scenic.Point) []scenic.Point {
	ring := make([]scenic.Point, 0, len(pts)+2)
	ring = append(ring, pts...)
	ring = append(ring, pts[0], pts[1])
	return ring
}

func reversePoints(pts []scenic.Point) []scenic.Point {
	rev := make([]scenic.Point, len(pts))
	for i, pt := range pts {
		rev[len(pts)-1-i] = pt
	}
	return rev
}

// offsetSide walks the polyline and emits the left-hand offset boundary,
// inserting join geometry at gap-opening corners.
func offsetSide(pts []scenic.Point, hw float32, style *scene.StrokeStyle) []scenic.Point {
	var out []scenic.Point
	n := len(pts)

	for i := 0; i < n-1; i++ {
		d := segDir(pts[i], pts[i+1])
		nx, ny := -d.Y, d.X // left normal

		if i == 0 {
			out = append(out, scenic.Point{X: pts[0].X + nx*hw, Y: pts[0].Y + ny*hw})
		}
		out = append(out, scenic.Point{X: pts[i+1].X + nx*hw, Y: pts[i+1].Y + ny*hw})

		if i+2 < n {
			d2 := segDir(pts[i+1], pts[i+2])
			out = appendJoin(out, pts[i+1], d, d2, hw, style)
			n2x, n2y := -d2.Y, d2.X
			out = append(out, scenic.Point{X: pts[i+1].X + n2x*hw, Y: pts[i+1].Y + n2y*hw})
		}
	}
	return out
}

func segDir(a, b scenic.Point) scenic.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return scenic.Point{X: 1}
	}
	return scenic.Point{X: dx / l, Y: dy / l}
}

// appendJoin inserts miter or round join geometry when the turn opens a
// gap on the offset side. Overlapping corners need no extra geometry
// under the non-zero rule.
func appendJoin(out []scenic.Point, p, d0, d1 scenic.Point, hw float32,
	style *scene.StrokeStyle) []scenic.Point {

	cross := d0.X*d1.Y - d0.Y*d1.X
	if cross >= -1e-6 {
		return out
	}

	n0x, n0y := -d0.Y, d0.X
	n1x, n1y := -d1.Y, d1.X

	switch style.Join {
	case scene.JoinRound:
		a0 := math32.Atan2(n0y, n0x)
		a1 := math32.Atan2(n1y, n1x)
		for a1 > a0 {
			a1 -= 2 * math32.Pi
		}
		const step = math32.Pi / 12
		for a := a0 - step; a > a1; a -= step {
			sin, cos := math32.Sincos(a)
			out = append(out, scenic.Point{X: p.X + cos*hw, Y: p.Y + sin*hw})
		}
	case scene.JoinMiter:
		dot := n0x*n1x + n0y*n1y
		denom := 1 + dot
		if denom > 1e-6 {
			factor := math32.Sqrt(2 / denom)
			if factor <= style.MiterLimit {
				mx := (n0x + n1x) / denom
				my := (n0y + n1y) / denom
				out = append(out, scenic.Point{X: p.X + mx*hw, Y: p.Y + my*hw})
			}
		}
	}
	// Bevel: the connecting line between offset points is the join.
	return out
}

// emitCap draws the cap connecting the offset boundary ends at an open
// subpath endpoint.
func emitCap(out *scene.Path, p, from, to scenic.Point, hw float32, cap scene.LineCap) {
	switch cap {
	case scene.CapRound:
		a0 := math32.Atan2(from.Y-p.Y, from.X-p.X)
		a1 := math32.Atan2(to.Y-p.Y, to.X-p.X)
		for a1 > a0 {
			a1 -= 2 * math32.Pi
		}
		const step = math32.Pi / 12
		for a := a0 - step; a > a1; a -= step {
			sin, cos := math32.Sincos(a)
			out.LineTo(p.X+cos*hw, p.Y+sin*hw)
		}
	case scene.CapSquare:
		// Extend along the outgoing direction by the half width.
		dx := from.X - p.X
		dy := from.Y - p.Y
		// Direction of travel is the normal rotated back.
		ex, ey := dy, -dx
		out.LineTo(from.X+ex, from.Y+ey)
		out.LineTo(to.X+ex, to.Y+ey)
	}
	out.LineTo(to.X, to.Y)
}
