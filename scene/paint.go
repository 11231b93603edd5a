package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/scenic"
)

// FillStyle selects the fill rule for path fills.
type FillStyle uint8

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillStyle = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// String returns a human-readable name for the fill style.
func (s FillStyle) String() string {
	switch s {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

// LineCap selects the stroke end cap shape.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects the stroke corner shape.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle describes how paths are stroked.
type StrokeStyle struct {
	Width      float32
	MiterLimit float32
	Cap        LineCap
	Join       LineJoin
}

// DefaultStrokeStyle returns a 1-unit miter stroke.
func DefaultStrokeStyle() *StrokeStyle {
	return &StrokeStyle{Width: 1, MiterLimit: 4, Cap: CapButt, Join: JoinMiter}
}

// BlendMode selects how a layer composites over the content below it.
type BlendMode uint8

const (
	// BlendSourceOver is standard alpha compositing.
	BlendSourceOver BlendMode = iota
	// BlendMultiply multiplies layer and destination channels.
	BlendMultiply
)

// ImageData is a decoded image prepared for drawing: premultiplied RGBA8
// pixels shared between the scene and the image content cache.
type ImageData struct {
	Width  uint32
	Height uint32
	Data   []uint8 // premultiplied RGBA8
}

// SamplePremultiplied returns the premultiplied color at integer pixel
// coordinates, clamping to the image edges.
func (d *ImageData) SamplePremultiplied(x, y int) (r, g, b, a uint8) {
	if d.Width == 0 || d.Height == 0 {
		return 0, 0, 0, 0
	}
	if x < 0 {
		x = 0
	} else if x >= int(d.Width) {
		x = int(d.Width) - 1
	}
	if y < 0 {
		y = 0
	} else if y >= int(d.Height) {
		y = int(d.Height) - 1
	}
	i := (y*int(d.Width) + x) * 4
	return d.Data[i], d.Data[i+1], d.Data[i+2], d.Data[i+3]
}

// PaintKind identifies the variant of a Paint.
type PaintKind uint8

const (
	// PaintSolid paints a uniform color.
	PaintSolid PaintKind = iota
	// PaintLinearGradient paints along a line between two points.
	PaintLinearGradient
	// PaintRadialGradient paints outward from a center point.
	PaintRadialGradient
	// PaintImage samples pixel data through the fill transform.
	PaintImage
)

// Paint is the resolved paint of a draw operation, expressed in the local
// coordinate space of the filled geometry. Gradient geometry is baked in
// at scene-encoding time; nothing here references the item tree.
type Paint struct {
	Kind PaintKind

	// Solid color.
	Color scenic.Color

	// Linear gradient line.
	Start, End scenic.Point

	// Radial gradient circle.
	Center scenic.Point
	Radius float32

	Stops []scenic.GradientStop

	// Image paint.
	Image      *ImageData
	ImageAlpha float32 // global alpha applied when sampling, [0, 1]
}

// SolidPaint creates a solid color paint.
func SolidPaint(c scenic.Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// LinearGradientPaint creates a linear gradient paint between two points.
func LinearGradientPaint(start, end scenic.Point, stops []scenic.GradientStop) Paint {
	return Paint{Kind: PaintLinearGradient, Start: start, End: end, Stops: stops}
}

// RadialGradientPaint creates a radial gradient paint.
func RadialGradientPaint(center scenic.Point, radius float32, stops []scenic.GradientStop) Paint {
	return Paint{Kind: PaintRadialGradient, Center: center, Radius: radius, Stops: stops}
}

// ImagePaint creates an image-sampling paint.
func ImagePaint(img *ImageData, alpha float32) Paint {
	return Paint{Kind: PaintImage, Image: img, ImageAlpha: alpha}
}

// IsVisible reports whether the paint can produce any non-transparent
// pixel.
func (p Paint) IsVisible() bool {
	switch p.Kind {
	case PaintSolid:
		return !p.Color.IsTransparent()
	case PaintLinearGradient, PaintRadialGradient:
		for _, s := range p.Stops {
			if !s.Color.IsTransparent() {
				return true
			}
		}
		return false
	case PaintImage:
		return p.Image != nil && p.ImageAlpha > 0
	default:
		return false
	}
}

// ColorAt evaluates the paint at a point in the geometry's local space.
// Image paints are sampled with bilinear filtering. The result is a
// straight-alpha color.
func (p Paint) ColorAt(x, y float32) scenic.Color {
	switch p.Kind {
	case PaintSolid:
		return p.Color

	case PaintLinearGradient:
		dx := p.End.X - p.Start.X
		dy := p.End.Y - p.Start.Y
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			return scenic.ColorAtOffset(p.Stops, 0)
		}
		t := ((x-p.Start.X)*dx + (y-p.Start.Y)*dy) / lenSq
		return scenic.ColorAtOffset(p.Stops, clamp01(t))

	case PaintRadialGradient:
		if p.Radius <= 0 {
			return scenic.ColorAtOffset(p.Stops, 0)
		}
		dx := x - p.Center.X
		dy := y - p.Center.Y
		t := math32.Sqrt(dx*dx+dy*dy) / p.Radius
		return scenic.ColorAtOffset(p.Stops, clamp01(t))

	case PaintImage:
		if p.Image == nil {
			return scenic.Transparent
		}
		r, g, b, a := p.sampleBilinear(x, y)
		c := premultipliedToColor(r, g, b, a)
		return c.WithAlphaMultiplied(p.ImageAlpha)
	}
	return scenic.Transparent
}

// sampleBilinear samples the image paint at fractional pixel coordinates.
func (p Paint) sampleBilinear(x, y float32) (uint8, uint8, uint8, uint8) {
	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	r00, g00, b00, a00 := p.Image.SamplePremultiplied(x0, y0)
	r10, g10, b10, a10 := p.Image.SamplePremultiplied(x0+1, y0)
	r01, g01, b01, a01 := p.Image.SamplePremultiplied(x0, y0+1)
	r11, g11, b11, a11 := p.Image.SamplePremultiplied(x0+1, y0+1)

	lerp2 := func(c00, c10, c01, c11 uint8) uint8 {
		top := float32(c00) + tx*(float32(c10)-float32(c00))
		bot := float32(c01) + tx*(float32(c11)-float32(c01))
		return uint8(top + ty*(bot-top) + 0.5)
	}
	return lerp2(r00, r10, r01, r11),
		lerp2(g00, g10, g01, g11),
		lerp2(b00, b10, b01, b11),
		lerp2(a00, a10, a01, a11)
}

func premultipliedToColor(r, g, b, a uint8) scenic.Color {
	if a == 0 {
		return scenic.Transparent
	}
	if a == 255 {
		return scenic.Color{R: r, G: g, B: b, A: 255}
	}
	m := uint32(a)
	return scenic.Color{
		R: uint8((uint32(r)*255 + m/2) / m),
		G: uint8((uint32(g)*255 + m/2) / m),
		B: uint8((uint32(b)*255 + m/2) / m),
		A: a,
	}
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
