// Package scene holds the retained draw-op buffer produced by the item
// renderer and consumed by graphics backends.
//
// A Scene is an ordered list of draw operations. Order is meaning: later
// operations paint over earlier ones, and layers bracket the operations
// recorded between PushLayer and PopLayer. The buffer is reset and
// re-encoded every frame; Reset keeps the allocations.
package scene

import "github.com/gogpu/scenic"

// OpTag identifies the variant of a draw operation.
type OpTag uint8

const (
	// OpFill fills a shape with a paint.
	OpFill OpTag = iota
	// OpStroke strokes a shape outline with a paint.
	OpStroke
	// OpPushLayer opens a compositing layer with a clip shape.
	OpPushLayer
	// OpPopLayer closes the most recent layer.
	OpPopLayer
	// OpBlurredRoundedRect draws an analytically blurred rounded
	// rectangle (box shadows).
	OpBlurredRoundedRect
	// OpGlyphRun fills a shaped glyph sequence.
	OpGlyphRun
)

// String returns a human-readable name for the op tag.
func (t OpTag) String() string {
	switch t {
	case OpFill:
		return "Fill"
	case OpStroke:
		return "Stroke"
	case OpPushLayer:
		return "PushLayer"
	case OpPopLayer:
		return "PopLayer"
	case OpBlurredRoundedRect:
		return "BlurredRoundedRect"
	case OpGlyphRun:
		return "GlyphRun"
	default:
		return unknownStr
	}
}

// Op is a single recorded draw operation. Exactly the fields for Tag are
// meaningful.
type Op struct {
	Tag OpTag

	// Fill, Stroke, PushLayer geometry. For PushLayer the shape is the
	// layer's clip; for BlurredRoundedRect it is unused.
	Shape     Shape
	Transform scenic.Affine

	// Fill and Stroke.
	Paint  Paint
	Fill   FillStyle
	Stroke StrokeStyle

	// PushLayer.
	Blend BlendMode
	Alpha float32

	// BlurredRoundedRect.
	Rect   scenic.Rect
	Radius float32
	StdDev float32
	Color  scenic.Color

	// GlyphRun.
	Glyphs GlyphRun
}

// Scene accumulates one frame of draw operations.
//
// Example:
//
//	s := scene.NewScene()
//	s.Fill(scene.FillNonZero, transform, scene.SolidPaint(red), rect)
//	s.PushLayer(scene.BlendSourceOver, 0.5, transform, clip)
//	s.Stroke(style, transform, paint, outline)
//	s.PopLayer()
type Scene struct {
	ops []Op

	// layerDepth tracks currently open layers.
	layerDepth int

	// version increments on every mutation for cache invalidation.
	version uint64
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{ops: make([]Op, 0, 64)}
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.ops = s.ops[:0]
	s.layerDepth = 0
	s.version++
}

// Fill records a filled shape.
func (s *Scene) Fill(style FillStyle, transform scenic.Affine, paint Paint, shape Shape) {
	if shape == nil {
		return
	}
	s.ops = append(s.ops, Op{
		Tag:       OpFill,
		Shape:     shape,
		Transform: transform,
		Paint:     paint,
		Fill:      style,
	})
	s.version++
}

// Stroke records a stroked shape outline.
func (s *Scene) Stroke(style *StrokeStyle, transform scenic.Affine, paint Paint, shape Shape) {
	if shape == nil {
		return
	}
	if style == nil {
		style = DefaultStrokeStyle()
	}
	s.ops = append(s.ops, Op{
		Tag:       OpStroke,
		Shape:     shape,
		Transform: transform,
		Paint:     paint,
		Stroke:    *style,
	})
	s.version++
}

// PushLayer opens a compositing layer. Content recorded until the
// matching PopLayer is clipped to the shape and composited with the
// given blend mode and alpha.
func (s *Scene) PushLayer(blend BlendMode, alpha float32, transform scenic.Affine, clip Shape) {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	s.ops = append(s.ops, Op{
		Tag:       OpPushLayer,
		Shape:     clip,
		Transform: transform,
		Blend:     blend,
		Alpha:     alpha,
	})
	s.layerDepth++
	s.version++
}

// PopLayer closes the most recently opened layer. Popping with no open
// layer is ignored.
func (s *Scene) PopLayer() {
	if s.layerDepth == 0 {
		return
	}
	s.ops = append(s.ops, Op{Tag: OpPopLayer})
	s.layerDepth--
	s.version++
}

// DrawBlurredRoundedRect records an analytically blurred rounded
// rectangle with the given blur standard deviation.
func (s *Scene) DrawBlurredRoundedRect(transform scenic.Affine, rect scenic.Rect,
	radius, stdDev float32, color scenic.Color) {
	if rect.IsEmpty() || color.IsTransparent() {
		return
	}
	s.ops = append(s.ops, Op{
		Tag:       OpBlurredRoundedRect,
		Transform: transform,
		Rect:      rect,
		Radius:    radius,
		StdDev:    stdDev,
		Color:     color,
	})
	s.version++
}

// DrawGlyphRun records a filled glyph sequence.
func (s *Scene) DrawGlyphRun(transform scenic.Affine, run GlyphRun, paint Paint) {
	if run.IsEmpty() {
		return
	}
	s.ops = append(s.ops, Op{
		Tag:       OpGlyphRun,
		Transform: transform,
		Glyphs:    run,
		Paint:     paint,
	})
	s.version++
}

// Ops returns the recorded operations in draw order. The slice is owned
// by the scene and valid until the next mutation.
func (s *Scene) Ops() []Op {
	return s.ops
}

// LayerDepth returns the number of currently open layers.
func (s *Scene) LayerDepth() int {
	return s.layerDepth
}

// Version returns a counter incremented on every mutation.
func (s *Scene) Version() uint64 {
	return s.version
}

// IsEmpty reports whether the scene holds no operations.
func (s *Scene) IsEmpty() bool {
	return len(s.ops) == 0
}
