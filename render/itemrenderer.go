package render

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// renderState is one frame of the save/restore stack. The clip is
// tracked in logical units before the state transform, the transform in
// physical units. clipLayers counts the scene clip layers pushed while
// this state was current; restoring the state pops exactly that many.
type renderState struct {
	clip       scenic.Rect
	transform  scenic.Affine
	alpha      float32
	clipLayers int
}

// TextureReadFunc reads a GPU texture back to CPU pixels. ok reports
// whether the readback produced data.
type TextureReadFunc func(tex gpucontext.Texture) (width, height uint32, rgba []byte, ok bool)

// ItemRenderer translates display primitives into scene operations. It
// owns the transform, clip, and opacity stack for the duration of one
// frame and must not be retained across frames.
//
// Draw methods never fail: degenerate or unsupported input is skipped
// without output.
type ItemRenderer struct {
	scene       *scene.Scene
	cache       *ImageCache
	scaleFactor float32
	states      []renderState

	// readTexture reads GPU-resident image sources back to CPU. Nil
	// means such sources are skipped.
	readTexture TextureReadFunc
}

// NewItemRenderer creates a renderer for one frame. logicalSize bounds
// the initial clip.
func NewItemRenderer(s *scene.Scene, cache *ImageCache, logicalSize scenic.Size, scaleFactor float32) *ItemRenderer {
	return NewItemRendererWithTransform(s, cache, logicalSize, scaleFactor, scenic.IdentityAffine())
}

// NewItemRendererWithTransform creates a renderer whose root state
// carries an initial physical transform, used for rotated displays.
func NewItemRendererWithTransform(s *scene.Scene, cache *ImageCache, logicalSize scenic.Size, scaleFactor float32, initial scenic.Affine) *ItemRenderer {
	return &ItemRenderer{
		scene:       s,
		cache:       cache,
		scaleFactor: scaleFactor,
		states: []renderState{{
			clip:      scenic.RectFromSize(logicalSize),
			transform: initial,
			alpha:     1,
		}},
	}
}

// SetTextureReader installs the GPU texture readback callback used by
// GPU-resident image sources.
func (ir *ItemRenderer) SetTextureReader(fn TextureReadFunc) {
	ir.readTexture = fn
}

func (ir *ItemRenderer) state() *renderState {
	return &ir.states[len(ir.states)-1]
}

// ScaleFactor returns the logical to physical pixel ratio.
func (ir *ItemRenderer) ScaleFactor() float32 {
	return ir.scaleFactor
}

func (ir *ItemRenderer) toPhysical(logical float32) float32 {
	return logical * ir.scaleFactor
}

func (ir *ItemRenderer) physicalRect(r scenic.Rect) scenic.Rect {
	return scenic.Rect{
		MinX: ir.toPhysical(r.MinX),
		MinY: ir.toPhysical(r.MinY),
		MaxX: ir.toPhysical(r.MaxX),
		MaxY: ir.toPhysical(r.MaxY),
	}
}

// DrawRectangle fills a rectangle of the given logical size at the local
// origin.
func (ir *ItemRenderer) DrawRectangle(brush scenic.Brush, size scenic.Size) {
	if size.IsEmpty() {
		return
	}
	rect := ir.physicalRect(scenic.RectFromSize(size))
	paint := paintForBrush(brush, rect)
	paint = applyStateAlpha(paint, ir.state().alpha)
	ir.scene.Fill(scene.FillNonZero, ir.state().transform, paint, scene.RectShapeFromRect(rect))
}

// DrawBorderRectangle fills a rectangle and strokes its border ring.
// An opaque border occludes the rectangle edge, so the background is
// inset by the border width; a translucent border leaves the background
// at full size and strokes inside it so the seam never double-blends.
func (ir *ItemRenderer) DrawBorderRectangle(size scenic.Size, background, borderBrush scenic.Brush, borderWidth, radius float32) {
	if size.IsEmpty() {
		return
	}

	if borderBrush.IsTransparent() {
		borderWidth = 0
	}
	opaqueBorder := borderBrush.IsOpaque()

	// Radius clamped to half the smaller dimension, then adjusted so the
	// centered stroke lands on the outer edge.
	fillRadius := math32.Min(radius, math32.Min(size.Width/2, size.Height/2))
	fillRadius += borderWidth / 2
	strokeRadius := fillRadius
	if fillRadius > borderWidth/2 {
		strokeRadius = fillRadius - borderWidth/2
	}

	full := scenic.RectFromSize(size)
	inset := scenic.Rect{
		MinX: borderWidth,
		MinY: borderWidth,
		MaxX: size.Width - borderWidth,
		MaxY: size.Height - borderWidth,
	}

	var backgroundShape, borderShape *scene.RoundedRectShape
	if opaqueBorder {
		backgroundShape = roundedShape(ir.physicalRect(inset), ir.toPhysical(strokeRadius))
		borderShape = backgroundShape
	} else {
		backgroundShape = roundedShape(ir.physicalRect(full), ir.toPhysical(fillRadius))
		borderShape = roundedShape(ir.physicalRect(inset), ir.toPhysical(strokeRadius))
	}

	st := ir.state()

	bgPaint := paintForBrush(background, backgroundShape.Bounds())
	bgPaint = applyStateAlpha(bgPaint, st.alpha)
	ir.scene.Fill(scene.FillNonZero, st.transform, bgPaint, backgroundShape)

	if borderWidth > 0 && !borderBrush.IsTransparent() {
		borderPaint := paintForBrush(borderBrush, borderShape.Bounds())
		borderPaint = applyStateAlpha(borderPaint, st.alpha)
		strokeStyle := scene.StrokeStyle{
			Width:      ir.toPhysical(borderWidth),
			MiterLimit: 4,
			Cap:        scene.CapButt,
			Join:       scene.JoinMiter,
		}
		ir.scene.Stroke(&strokeStyle, st.transform, borderPaint, borderShape)
	}
}

// PathStyle bundles the fill and stroke parameters of a path draw.
type PathStyle struct {
	Fill          scenic.Brush
	FillRule      scene.FillStyle
	Stroke        scenic.Brush
	StrokeWidth   float32
	StrokeLineCap scene.LineCap
}

// DrawPath fills and strokes vector geometry. The path and offset are in
// logical units. The stroke is skipped only for a fully transparent
// solid stroke brush; joins are always miter with a fixed limit.
func (ir *ItemRenderer) DrawPath(path *scene.Path, offset scenic.Point, style PathStyle) {
	if path == nil || path.IsEmpty() {
		return
	}

	// Offset then map to physical units in one transform.
	toDevice := scenic.ScaleAffine(ir.scaleFactor, ir.scaleFactor).
		Multiply(scenic.TranslateAffine(offset.X, offset.Y))
	devicePath := path.Transform(toDevice)
	bounds := devicePath.Bounds()

	st := ir.state()

	if !style.Fill.IsTransparent() {
		fillPaint := applyStateAlpha(paintForBrush(style.Fill, bounds), st.alpha)
		ir.scene.Fill(style.FillRule, st.transform, fillPaint, scene.NewPathShape(devicePath))
	}

	transparentSolidStroke := style.Stroke.Kind == scenic.BrushSolid && style.Stroke.Color.IsTransparent()
	if !transparentSolidStroke && style.StrokeWidth > 0 {
		strokePaint := applyStateAlpha(paintForBrush(style.Stroke, bounds), st.alpha)
		strokeStyle := scene.StrokeStyle{
			Width:      ir.toPhysical(style.StrokeWidth),
			MiterLimit: 4,
			Cap:        style.StrokeLineCap,
			Join:       scene.JoinMiter,
		}
		ir.scene.Stroke(&strokeStyle, st.transform, strokePaint, scene.NewPathShape(devicePath))
	}
}

// DrawBoxShadow draws a drop shadow behind geometry of the given logical
// size. A transparent color, or zero blur with zero offset, draws
// nothing. The blur radius converts to a Gaussian standard deviation of
// blur/2.
func (ir *ItemRenderer) DrawBoxShadow(size scenic.Size, color scenic.Color, offsetX, offsetY, blur, radius float32) {
	if color.IsTransparent() || (blur == 0 && offsetX == 0 && offsetY == 0) {
		return
	}

	st := ir.state()
	shadowColor := color.WithAlphaMultiplied(st.alpha)
	shadowRect := scenic.Rect{
		MinX: ir.toPhysical(offsetX),
		MinY: ir.toPhysical(offsetY),
		MaxX: ir.toPhysical(offsetX + size.Width),
		MaxY: ir.toPhysical(offsetY + size.Height),
	}
	physRadius := ir.toPhysical(radius)
	stdDev := ir.toPhysical(blur) / 2

	if stdDev > 0 {
		ir.scene.DrawBlurredRoundedRect(st.transform, shadowRect, physRadius, stdDev, shadowColor)
	} else {
		shape := roundedShape(shadowRect, physRadius)
		ir.scene.Fill(scene.FillNonZero, st.transform, scene.SolidPaint(shadowColor), shape)
	}
}

// DrawText fills shaped glyph runs. Only solid text brushes are
// supported; other brushes draw nothing.
func (ir *ItemRenderer) DrawText(runs []scene.GlyphRun, brush scenic.Brush) {
	if brush.Kind != scenic.BrushSolid {
		return
	}
	st := ir.state()
	color := brush.Color.WithAlphaMultiplied(st.alpha)
	if color.IsTransparent() {
		return
	}
	for _, run := range runs {
		if run.IsEmpty() {
			continue
		}
		ir.scene.DrawGlyphRun(st.transform, run, scene.SolidPaint(color))
	}
}

// DrawCachedPixmap draws externally cached premultiplied RGBA pixels.
// The update callback either emits the current pixels or emits nothing.
func (ir *ItemRenderer) DrawCachedPixmap(update func(emit func(width, height uint32, data []byte))) {
	var (
		gotW, gotH uint32
		pixels     []byte
	)

	update(func(width, height uint32, data []byte) {
		gotW, gotH = width, height
		pixels = append([]byte(nil), data...)
	})

	if pixels == nil || gotW == 0 || gotH == 0 {
		return
	}

	st := ir.state()
	img := &scene.ImageData{Width: gotW, Height: gotH, Data: pixels}
	rect := scenic.Rect{
		MaxX: ir.toPhysical(float32(gotW)),
		MaxY: ir.toPhysical(float32(gotH)),
	}
	ir.scene.Fill(scene.FillNonZero, st.transform,
		scene.ImagePaint(img, st.alpha), scene.RectShapeFromRect(rect))
}

// CombineClip intersects a rounded rectangle into the current clip and
// reports whether the clip is still non-empty. Exactly one scene clip
// layer is pushed regardless of the outcome, so state restoration stays
// balanced.
func (ir *ItemRenderer) CombineClip(rect scenic.Rect, radius float32) bool {
	clampedRadius := math32.Min(radius, math32.Min(rect.Width()/2, rect.Height()/2))

	st := ir.state()
	intersection := st.clip.Intersect(rect)
	valid := !intersection.IsEmpty()
	if valid {
		st.clip = intersection
	} else {
		st.clip = scenic.Rect{}
	}
	st.clipLayers++

	transform := st.transform
	var clipShape scene.Shape
	if clampedRadius > 0 {
		clipShape = roundedShape(ir.physicalRect(rect), ir.toPhysical(clampedRadius))
	} else {
		clipShape = scene.RectShapeFromRect(ir.physicalRect(rect))
	}
	ir.scene.PushLayer(scene.BlendSourceOver, 1, transform, clipShape)

	return valid
}

// CurrentClip returns the current clip in logical units.
func (ir *ItemRenderer) CurrentClip() scenic.Rect {
	return ir.state().clip
}

// Translate shifts subsequent drawing by a logical vector.
func (ir *ItemRenderer) Translate(d scenic.Vector) {
	st := ir.state()
	st.transform = st.transform.Multiply(
		scenic.TranslateAffine(ir.toPhysical(d.X), ir.toPhysical(d.Y)))
	st.clip = st.clip.Translate(scenic.Vector{X: -d.X, Y: -d.Y})
}

// Rotate rotates subsequent drawing around the local origin. The clip
// becomes the bounding box of its rotated corners.
func (ir *ItemRenderer) Rotate(angleDegrees float32) {
	radians := angleDegrees * math32.Pi / 180
	st := ir.state()
	st.transform = st.transform.Multiply(scenic.RotateAffine(radians))

	sin, cos := math32.Sincos(radians)
	rotate := func(x, y float32) (float32, float32) {
		return x*cos - y*sin, x*sin + y*cos
	}

	clip := st.clip
	corners := [4][2]float32{}
	corners[0][0], corners[0][1] = rotate(clip.MinX, clip.MinY)
	corners[1][0], corners[1][1] = rotate(clip.MaxX, clip.MinY)
	corners[2][0], corners[2][1] = rotate(clip.MinX, clip.MaxY)
	corners[3][0], corners[3][1] = rotate(clip.MaxX, clip.MaxY)

	bbox := scenic.Rect{
		MinX: corners[0][0], MinY: corners[0][1],
		MaxX: corners[0][0], MaxY: corners[0][1],
	}
	for _, c := range corners[1:] {
		bbox.MinX = math32.Min(bbox.MinX, c[0])
		bbox.MinY = math32.Min(bbox.MinY, c[1])
		bbox.MaxX = math32.Max(bbox.MaxX, c[0])
		bbox.MaxY = math32.Max(bbox.MaxY, c[1])
	}
	st.clip = bbox
}

// Scale scales subsequent drawing. The clip extents shrink by the same
// factors since the clip is tracked before the transform.
func (ir *ItemRenderer) Scale(xFactor, yFactor float32) {
	st := ir.state()
	st.transform = st.transform.Multiply(scenic.ScaleAffine(xFactor, yFactor))
	if xFactor == 0 || yFactor == 0 {
		st.clip = scenic.EmptyRect()
		return
	}
	st.clip.MaxX = st.clip.MinX + st.clip.Width()/xFactor
	st.clip.MaxY = st.clip.MinY + st.clip.Height()/yFactor
}

// ApplyOpacity multiplies the current alpha.
func (ir *ItemRenderer) ApplyOpacity(opacity float32) {
	ir.state().alpha *= opacity
}

// SaveState pushes a copy of the current state. Clip layers pushed after
// this call belong to the new state.
func (ir *ItemRenderer) SaveState() {
	next := *ir.state()
	next.clipLayers = 0
	ir.states = append(ir.states, next)
}

// RestoreState pops the current state and the clip layers it pushed.
// The bottom state is never popped.
func (ir *ItemRenderer) RestoreState() {
	if len(ir.states) <= 1 {
		return
	}
	old := ir.states[len(ir.states)-1]
	ir.states = ir.states[:len(ir.states)-1]
	for i := 0; i < old.clipLayers; i++ {
		ir.scene.PopLayer()
	}
}

func roundedShape(r scenic.Rect, radius float32) *scene.RoundedRectShape {
	return scene.NewRoundedRectShape(r.MinX, r.MinY, r.Width(), r.Height(), radius)
}
