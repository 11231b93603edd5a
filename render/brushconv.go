package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// paintForBrush converts a brush into a paint for geometry covering
// bounds, in the geometry's own coordinate space. Gradients are
// reconstructed from the bounds, so the same brush yields different
// paints at different placements. Unsupported brushes paint transparent.
func paintForBrush(brush scenic.Brush, bounds scenic.Rect) scene.Paint {
	switch brush.Kind {
	case scenic.BrushSolid:
		return scene.SolidPaint(brush.Color)

	case scenic.BrushLinearGradient:
		start, end := scenic.LineForAngle(brush.AngleDeg, bounds.Size())
		origin := bounds.Origin()
		start.X += origin.X
		start.Y += origin.Y
		end.X += origin.X
		end.Y += origin.Y
		return scene.LinearGradientPaint(start, end, brush.Stops)

	case scenic.BrushRadialGradient:
		w := bounds.Width()
		h := bounds.Height()
		radius := math32.Sqrt(w*w+h*h) / 2
		return scene.RadialGradientPaint(bounds.Center(), radius, brush.Stops)

	default:
		return scene.SolidPaint(scenic.Transparent)
	}
}

// applyStateAlpha multiplies the state alpha into a solid paint.
// Gradient and image paints pass through unchanged; their alpha is
// handled at the layer or sampler level.
func applyStateAlpha(p scene.Paint, alpha float32) scene.Paint {
	if p.Kind == scene.PaintSolid {
		p.Color = p.Color.WithAlphaMultiplied(alpha)
	}
	return p
}
