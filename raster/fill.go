package raster

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

func (r *Renderer) fillShape(shape scene.Shape, transform scenic.Affine,
	style scene.FillStyle, paint scene.Paint) {

	if shape == nil || !paint.IsVisible() {
		return
	}
	path := shape.ToPath()
	if path == nil || path.IsEmpty() {
		return
	}
	device := path.Transform(transform)

	var cov *image.Alpha
	if style == scene.FillEvenOdd {
		cov = rasterizeEvenOdd(device, r.width, r.height)
	} else {
		cov = rasterizeNonZero(device, r.width, r.height)
	}
	r.paintCoverage(cov, transform, paint)
}

// paintCoverage blends the paint into the top layer wherever the
// coverage mask is non-zero. Paint coordinates are the geometry's local
// space, recovered through the inverse transform.
func (r *Renderer) paintCoverage(cov *image.Alpha, transform scenic.Affine,
	paint scene.Paint) {

	dst := r.top().pix

	inv, ok := transform.Invert()
	if !ok {
		return
	}

	// Solid paints premultiply once outside the loop.
	solid := paint.Kind == scene.PaintSolid
	var pr, pg, pb, pa uint8
	if solid {
		pr, pg, pb, pa = paint.Color.Premultiplied()
		if pa == 0 {
			return
		}
	}

	for y := 0; y < r.height; y++ {
		row := cov.Pix[y*cov.Stride : y*cov.Stride+r.width]
		for x, c := range row {
			if c == 0 {
				continue
			}
			var cr, cg, cb, ca uint8
			if solid {
				cr, cg, cb, ca = pr, pg, pb, pa
			} else {
				lx, ly := inv.TransformPoint(float32(x)+0.5, float32(y)+0.5)
				col := paint.ColorAt(lx, ly)
				if col.IsTransparent() {
					continue
				}
				cr, cg, cb, ca = col.Premultiplied()
			}
			if c != 255 {
				m := uint32(c)
				cr = uint8((uint32(cr)*m + 127) / 255)
				cg = uint8((uint32(cg)*m + 127) / 255)
				cb = uint8((uint32(cb)*m + 127) / 255)
				ca = uint8((uint32(ca)*m + 127) / 255)
			}
			dst.BlendPixel(x, y, cr, cg, cb, ca)
		}
	}
}

// rasterizeNonZero computes antialiased coverage for a device-space path
// under the non-zero winding rule.
func rasterizeNonZero(p *scene.Path, w, h int) *image.Alpha {
	rast := vector.NewRasterizer(w, h)
	var started bool
	for el := range p.Elements() {
		switch el.Verb {
		case scene.VerbMoveTo:
			if started {
				rast.ClosePath()
			}
			rast.MoveTo(el.Coords[0], el.Coords[1])
			started = true
		case scene.VerbLineTo:
			rast.LineTo(el.Coords[0], el.Coords[1])
		case scene.VerbQuadTo:
			rast.QuadTo(el.Coords[0], el.Coords[1], el.Coords[2], el.Coords[3])
		case scene.VerbCubicTo:
			rast.CubeTo(el.Coords[0], el.Coords[1], el.Coords[2],
				el.Coords[3], el.Coords[4], el.Coords[5])
		case scene.VerbClose:
			rast.ClosePath()
			started = false
		}
	}
	if started {
		rast.ClosePath()
	}

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	return alpha
}

// evenOddSamples is the vertical supersampling factor of the even-odd
// scanline rasterizer.
const evenOddSamples = 4

// rasterizeEvenOdd computes antialiased coverage for a device-space path
// under the even-odd rule using supersampled scanline crossings.
func rasterizeEvenOdd(p *scene.Path, w, h int) *image.Alpha {
	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	contours := flattenPath(p)
	if len(contours) == 0 {
		return alpha
	}

	accum := make([]float32, w)
	var xs []float32
	for y := 0; y < h; y++ {
		for i := range accum {
			accum[i] = 0
		}
		hit := false
		for s := 0; s < evenOddSamples; s++ {
			yc := float32(y) + (float32(s)+0.5)/evenOddSamples
			xs = xs[:0]
			for _, c := range contours {
				for i := 0; i < len(c)-1; i++ {
					x0, y0 := c[i].X, c[i].Y
					x1, y1 := c[i+1].X, c[i+1].Y
					if (y0 <= yc) == (y1 <= yc) {
						continue
					}
					t := (yc - y0) / (y1 - y0)
					xs = append(xs, x0+t*(x1-x0))
				}
			}
			if len(xs) < 2 {
				continue
			}
			sortFloat32(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				addSpan(accum, xs[i], xs[i+1], 1.0/evenOddSamples, w)
				hit = true
			}
		}
		if !hit {
			continue
		}
		row := alpha.Pix[y*alpha.Stride : y*alpha.Stride+w]
		for x, a := range accum {
			if a <= 0 {
				continue
			}
			if a > 1 {
				a = 1
			}
			row[x] = uint8(a*255 + 0.5)
		}
	}
	return alpha
}

// addSpan accumulates fractional horizontal coverage for [x0, x1).
func addSpan(accum []float32, x0, x1, weight float32, w int) {
	if x1 <= x0 {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float32(w) {
		x1 = float32(w)
	}
	if x1 <= x0 {
		return
	}
	i0 := int(x0)
	i1 := int(x1)
	if i0 == i1 {
		accum[i0] += (x1 - x0) * weight
		return
	}
	accum[i0] += (float32(i0+1) - x0) * weight
	for i := i0 + 1; i < i1 && i < w; i++ {
		accum[i] += weight
	}
	if i1 < w {
		accum[i1] += (x1 - float32(i1)) * weight
	}
}

func sortFloat32(xs []float32) {
	// Insertion sort: crossing lists per scanline are short.
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// coverageToMask converts an alpha coverage image into a normalized
// float mask, reusing buf when it has capacity.
func coverageToMask(cov *image.Alpha, buf []float32) []float32 {
	w := cov.Rect.Dx()
	h := cov.Rect.Dy()
	n := w * h
	if cap(buf) < n {
		buf = make([]float32, n)
	}
	buf = buf[:n]
	for y := 0; y < h; y++ {
		row := cov.Pix[y*cov.Stride : y*cov.Stride+w]
		for x, a := range row {
			buf[y*w+x] = float32(a) / 255
		}
	}
	return buf
}
