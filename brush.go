package scenic

import (
	"sort"

	"github.com/chewxy/math32"
)

// BrushKind identifies the variant of a Brush.
type BrushKind uint8

const (
	// BrushSolid paints a uniform color.
	BrushSolid BrushKind = iota
	// BrushLinearGradient paints a linear gradient at a fixed angle.
	BrushLinearGradient
	// BrushRadialGradient paints a circular gradient from the center.
	BrushRadialGradient
	// BrushUnsupported is any brush variant the pipeline cannot render.
	// It converts to fully transparent paint.
	BrushUnsupported
)

// String returns a human-readable name for the brush kind.
func (k BrushKind) String() string {
	switch k {
	case BrushSolid:
		return "Solid"
	case BrushLinearGradient:
		return "LinearGradient"
	case BrushRadialGradient:
		return "RadialGradient"
	default:
		return "Unsupported"
	}
}

// GradientStop is a color at a normalized position along a gradient.
type GradientStop struct {
	Offset float32 // position in gradient, 0.0 to 1.0
	Color  Color
}

// Brush describes how geometry is painted. It is a closed tagged union:
// exactly the fields for Kind are meaningful, all brush variants are known
// to the renderer, and unknown variants degrade to transparent.
type Brush struct {
	Kind BrushKind

	// Solid color. Also the fallback color reported by DefaultColor.
	Color Color

	// Gradient fields.
	AngleDeg float32 // linear only, CSS angle convention (0 points up)
	Stops    []GradientStop
}

// SolidBrush creates a solid color brush.
func SolidBrush(c Color) Brush {
	return Brush{Kind: BrushSolid, Color: c}
}

// NewLinearGradient creates a linear gradient brush. The angle follows the
// CSS convention: 0 degrees points toward the top, angles grow clockwise.
// Stops are sorted by offset.
func NewLinearGradient(angleDeg float32, stops []GradientStop) Brush {
	return Brush{
		Kind:     BrushLinearGradient,
		AngleDeg: angleDeg,
		Stops:    sortStops(stops),
	}
}

// NewRadialGradient creates a center-anchored circular gradient brush.
// Stops are sorted by offset.
func NewRadialGradient(stops []GradientStop) Brush {
	return Brush{
		Kind:  BrushRadialGradient,
		Stops: sortStops(stops),
	}
}

// IsTransparent reports whether the brush paints nothing at all.
func (b Brush) IsTransparent() bool {
	switch b.Kind {
	case BrushSolid:
		return b.Color.IsTransparent()
	case BrushLinearGradient, BrushRadialGradient:
		for _, s := range b.Stops {
			if !s.Color.IsTransparent() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsOpaque reports whether the brush covers its area with full alpha
// everywhere.
func (b Brush) IsOpaque() bool {
	switch b.Kind {
	case BrushSolid:
		return b.Color.IsOpaque()
	case BrushLinearGradient, BrushRadialGradient:
		if len(b.Stops) == 0 {
			return false
		}
		for _, s := range b.Stops {
			if !s.Color.IsOpaque() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// DefaultColor returns a representative color for the brush: the solid
// color, or the first gradient stop.
func (b Brush) DefaultColor() Color {
	switch b.Kind {
	case BrushSolid:
		return b.Color
	case BrushLinearGradient, BrushRadialGradient:
		if len(b.Stops) > 0 {
			return b.Stops[0].Color
		}
	}
	return Transparent
}

// sortStops sorts gradient stops by offset without modifying the input.
func sortStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// LineForAngle reconstructs the CSS gradient line for the given angle over
// an area of the given size. The line passes through the center of the
// area; its half-length is chosen so the gradient exactly covers the
// area's corners. Returns the start and end points of the line.
func LineForAngle(angleDeg float32, size Size) (start, end Point) {
	rad := angleDeg * math32.Pi / 180
	sin, cos := math32.Sincos(rad)

	cx := size.Width / 2
	cy := size.Height / 2
	// Gradient direction: 0 degrees points up, clockwise positive.
	dx, dy := sin, -cos
	l := math32.Abs(cx*sin) + math32.Abs(cy*cos)

	start = Point{X: cx - dx*l, Y: cy - dy*l}
	end = Point{X: cx + dx*l, Y: cy + dy*l}
	return start, end
}
