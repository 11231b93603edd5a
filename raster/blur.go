package raster

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// blurredRoundedRect draws a Gaussian-blurred rounded rectangle by
// evaluating the blur integral per pixel. The horizontal coverage of the
// rounded rectangle at a given row has a closed form via the error
// function; the vertical blur is integrated numerically.
func (r *Renderer) blurredRoundedRect(transform scenic.Affine, rect scenic.Rect,
	radius, stdDev float32, color scenic.Color) {

	if rect.IsEmpty() || color.IsTransparent() {
		return
	}
	if stdDev <= 0 {
		// Degenerates to a plain rounded rectangle fill.
		shape := scene.NewRoundedRectShape(rect.MinX, rect.MinY,
			rect.Width(), rect.Height(), radius)
		r.fillShape(shape, transform, scene.FillNonZero, scene.SolidPaint(color))
		return
	}

	inv, ok := transform.Invert()
	if !ok {
		return
	}

	// Device-space bounds padded by three standard deviations.
	pad := 3 * stdDev
	padded := scenic.Rect{
		MinX: rect.MinX - pad, MinY: rect.MinY - pad,
		MaxX: rect.MaxX + pad, MaxY: rect.MaxY + pad,
	}
	bounds := transform.TransformRect(padded)

	x0 := clampInt(int(math32.Floor(bounds.MinX)), 0, r.width)
	x1 := clampInt(int(math32.Ceil(bounds.MaxX)), 0, r.width)
	y0 := clampInt(int(math32.Floor(bounds.MinY)), 0, r.height)
	y1 := clampInt(int(math32.Ceil(bounds.MaxY)), 0, r.height)

	pr, pg, pb, pa := color.Premultiplied()
	dst := r.top().pix

	maxRadius := math32.Min(rect.Width(), rect.Height()) / 2
	if radius > maxRadius {
		radius = maxRadius
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			lx, ly := inv.TransformPoint(float32(x)+0.5, float32(y)+0.5)
			cov := blurredRoundedRectCoverage(rect, radius, stdDev, lx, ly)
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			dst.BlendPixel(x, y,
				mulUnit(pr, cov), mulUnit(pg, cov), mulUnit(pb, cov), mulUnit(pa, cov))
		}
	}
}

// blurredRoundedRectCoverage evaluates the Gaussian blur of a rounded
// rectangle at (x, y): the horizontal slice integral is exact (erf), the
// vertical dimension is sampled at Gaussian-weighted offsets.
func blurredRoundedRectCoverage(rect scenic.Rect, radius, sigma, x, y float32) float32 {
	// Integrate over a window of three standard deviations; rows outside
	// the rectangle contribute zero coverage.
	low := y - 3*sigma
	high := y + 3*sigma

	const samples = 8
	step := (high - low) / samples
	var acc float32
	for i := 0; i < samples; i++ {
		sy := low + (float32(i)+0.5)*step
		w := gaussian(sy-y, sigma) * step
		acc += w * rowCoverage(rect, radius, sigma, x, sy)
	}
	return acc
}

// rowCoverage is the blurred horizontal coverage of the rounded rect's
// slice at row sy, evaluated at x.
func rowCoverage(rect scenic.Rect, radius, sigma, x, sy float32) float32 {
	if sy < rect.MinY || sy > rect.MaxY {
		return 0
	}
	// The slice narrows inside the corner arcs.
	inset := float32(0)
	if dy := rect.MinY + radius - sy; dy > 0 {
		inset = radius - math32.Sqrt(radius*radius-dy*dy)
	} else if dy := sy - (rect.MaxY - radius); dy > 0 {
		inset = radius - math32.Sqrt(radius*radius-dy*dy)
	}
	minX := rect.MinX + inset
	maxX := rect.MaxX - inset
	if maxX <= minX {
		return 0
	}
	return gaussIntegral((x-minX)/sigma) - gaussIntegral((x-maxX)/sigma)
}

func gaussian(d, sigma float32) float32 {
	s := float64(sigma)
	v := float64(d) / s
	return float32(math.Exp(-0.5*v*v) / (s * math.Sqrt(2*math.Pi)))
}

// gaussIntegral is the cumulative Gaussian distribution at z.
func gaussIntegral(z float32) float32 {
	return float32(0.5 * (1 + math.Erf(float64(z)/math.Sqrt2)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
