package render

import (
	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// ImageOptions selects how an image source is placed into its target
// geometry.
type ImageOptions struct {
	Fit                 scenic.ImageFit
	HorizontalAlignment scenic.HorizontalAlignment
	VerticalAlignment   scenic.VerticalAlignment
	// SourceClip restricts sampling to a source sub-region; nil shows
	// the whole source.
	SourceClip *scenic.IntRect
}

// DrawImage resolves an image source and emits its draw operations. The
// target size is in logical units. Unsupported or degenerate sources
// draw nothing.
func (ir *ItemRenderer) DrawImage(source *scenic.ImageSource, size scenic.Size, opts ImageOptions) {
	if source == nil || source.IsNone() || size.IsEmpty() {
		return
	}
	sourceSize := source.Size()
	if sourceSize.IsEmpty() {
		return
	}

	physSize := scenic.Size{
		Width:  ir.toPhysical(size.Width),
		Height: ir.toPhysical(size.Height),
	}

	sourceClip := scenic.IntRectFromSize(uint32(sourceSize.Width), uint32(sourceSize.Height))
	if opts.SourceClip != nil {
		sourceClip = *opts.SourceClip
	}

	fit := scenic.Fit(opts.Fit, physSize, sourceClip, ir.scaleFactor,
		opts.HorizontalAlignment, opts.VerticalAlignment)

	switch source.Kind {
	case scenic.ImageEmbedded:
		ir.drawEmbeddedImage(source.Buffer, fit, sourceClip)

	case scenic.ImageStaticTexture:
		st := source.Static
		img := &scene.ImageData{Width: st.Width, Height: st.Height, Data: st.Data}
		ir.drawImageData(img, physSize)

	case scenic.ImageNineSlice:
		ir.drawNineSliceImage(source, physSize)

	case scenic.ImageVector:
		ir.drawVectorImage(source.Vector, fit)

	case scenic.ImageGPUTexture:
		if ir.readTexture == nil {
			scenic.Logger().Debug("skipping GPU texture image, no readback callback")
			return
		}
		w, h, data, ok := ir.readTexture(source.Texture)
		if !ok || w == 0 || h == 0 {
			return
		}
		img := &scene.ImageData{Width: w, Height: h, Data: data}
		ir.drawImageData(img, physSize)

	case scenic.ImageNative:
		buf, err := source.Native.Extract()
		if err != nil {
			scenic.Logger().Debug("native image extraction failed", "error", err)
			return
		}
		img := imageDataFromBuffer(buf)
		if img == nil {
			return
		}
		ir.drawImageData(img, physSize)
	}
}

// drawEmbeddedImage fills decoded pixel data through the image cache.
// The fill is bracketed by a clip layer so overscan from the fit
// transform never bleeds past the target rectangle.
func (ir *ItemRenderer) drawEmbeddedImage(buf *scenic.PixelBuffer, fit scenic.FitResult, sourceClip scenic.IntRect) {
	img := ir.cache.Get(buf)
	if img == nil {
		return
	}

	st := ir.state()

	// Place the natural-size image so the clipped source region lands at
	// the fitted target position.
	imageTransform := st.transform.
		Multiply(scenic.TranslateAffine(fit.Offset.X, fit.Offset.Y)).
		Multiply(scenic.ScaleAffine(fit.SourceToTargetX, fit.SourceToTargetY)).
		Multiply(scenic.TranslateAffine(-float32(sourceClip.MinX), -float32(sourceClip.MinY)))

	clipRect := scenic.Rect{
		MinX: fit.Offset.X,
		MinY: fit.Offset.Y,
		MaxX: fit.Offset.X + fit.Size.Width,
		MaxY: fit.Offset.Y + fit.Size.Height,
	}

	ir.scene.PushLayer(scene.BlendSourceOver, st.alpha, st.transform, scene.RectShapeFromRect(clipRect))
	ir.scene.Fill(scene.FillNonZero, imageTransform,
		scene.ImagePaint(img, st.alpha),
		scene.NewRectShape(0, 0, float32(img.Width), float32(img.Height)))
	ir.scene.PopLayer()
}

// drawNineSliceImage partitions the target into fitted slices and fills
// each from the full source image inside its own clip layer, so slices
// never bleed into neighbors even under non-uniform scaling.
func (ir *ItemRenderer) drawNineSliceImage(source *scenic.ImageSource, physSize scenic.Size) {
	inner := source.Inner
	if inner == nil || inner.Kind != scenic.ImageEmbedded {
		return
	}
	img := ir.cache.Get(inner.Buffer)
	if img == nil {
		return
	}

	fits := scenic.Fit9Slice(inner.Size(), source.Borders, physSize, ir.scaleFactor)
	st := ir.state()

	for _, fit := range fits {
		if fit.IsEmpty() {
			continue
		}

		scaleX := fit.Size.Width / float32(fit.ClipRect.Width())
		scaleY := fit.Size.Height / float32(fit.ClipRect.Height())
		translateX := fit.Offset.X - float32(fit.ClipRect.MinX)*scaleX
		translateY := fit.Offset.Y - float32(fit.ClipRect.MinY)*scaleY

		sliceTransform := st.transform.
			Multiply(scenic.TranslateAffine(translateX, translateY)).
			Multiply(scenic.ScaleAffine(scaleX, scaleY))

		clipRect := scenic.Rect{
			MinX: fit.Offset.X,
			MinY: fit.Offset.Y,
			MaxX: fit.Offset.X + fit.Size.Width,
			MaxY: fit.Offset.Y + fit.Size.Height,
		}

		// The layer carries the slice transform; the fill itself stays
		// in identity space over the full source image.
		ir.scene.PushLayer(scene.BlendSourceOver, st.alpha, sliceTransform, scene.RectShapeFromRect(clipRect))
		ir.scene.Fill(scene.FillNonZero, scenic.IdentityAffine(),
			scene.ImagePaint(img, st.alpha),
			scene.NewRectShape(0, 0, float32(img.Width), float32(img.Height)))
		ir.scene.PopLayer()
	}
}

// drawVectorImage rasterizes scalable content at the fitted pixel size
// and fills the result. There is no size-keyed cache; a new target size
// re-rasterizes.
func (ir *ItemRenderer) drawVectorImage(v scenic.VectorImage, fit scenic.FitResult) {
	natural := v.Size()
	targetW := uint32(natural.Width * fit.SourceToTargetX)
	targetH := uint32(natural.Height * fit.SourceToTargetY)
	if targetW == 0 || targetH == 0 {
		return
	}

	buf, err := v.Rasterize(targetW, targetH)
	if err != nil {
		scenic.Logger().Debug("vector image rasterization failed",
			"width", targetW, "height", targetH, "error", err)
		return
	}
	img := imageDataFromBuffer(buf)
	if img == nil {
		return
	}

	st := ir.state()
	dest := scenic.Rect{
		MinX: fit.Offset.X,
		MinY: fit.Offset.Y,
		MaxX: fit.Offset.X + fit.Size.Width,
		MaxY: fit.Offset.Y + fit.Size.Height,
	}
	ir.scene.Fill(scene.FillNonZero, st.transform,
		scene.ImagePaint(img, st.alpha), scene.RectShapeFromRect(dest))
}

// drawImageData fills image data stretched over a physical rectangle at
// the local origin.
func (ir *ItemRenderer) drawImageData(img *scene.ImageData, physSize scenic.Size) {
	if img == nil || img.Width == 0 || img.Height == 0 {
		return
	}
	st := ir.state()
	scale := scenic.ScaleAffine(
		physSize.Width/float32(img.Width),
		physSize.Height/float32(img.Height))
	ir.scene.Fill(scene.FillNonZero, st.transform.Multiply(scale),
		scene.ImagePaint(img, st.alpha),
		scene.NewRectShape(0, 0, float32(img.Width), float32(img.Height)))
}
