package render

import (
	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// WindowProvider resolves the window a renderer draws into. The renderer
// holds the provider, never the window itself, and resolves it at the
// start of every frame. A provider whose window is gone reports false.
type WindowProvider interface {
	Window() (Window, bool)
}

// Window is the consumed window contract: physical size, display scale,
// background brush, and the item trees to draw.
type Window interface {
	// Size returns the physical window size in pixels.
	Size() (width, height uint32)
	// ScaleFactor is the logical to physical pixel ratio.
	ScaleFactor() float32
	// Background is the window background brush.
	Background() scenic.Brush
	// Components returns the root item trees in front-to-back declared
	// order.
	Components() []ItemTreeRoot
}

// ItemTreeRoot is one component subtree with its placement offset in
// logical window coordinates.
type ItemTreeRoot struct {
	Root   Item
	Origin scenic.Point
}

// Item is the minimal contract every display primitive satisfies.
// Drawing behavior is discovered through the capability interfaces
// below; an item implementing none of them renders nothing itself but
// its children are still walked.
type Item interface {
	// Position is the item origin relative to its parent, logical units.
	Position() scenic.Point
	// Size is the item extent in logical units.
	Size() scenic.Size
	// Children returns child items in declared order.
	Children() []Item
}

// RectangleItem fills its geometry with a brush.
type RectangleItem interface {
	Background() scenic.Brush
}

// BorderRectangleItem fills its geometry and strokes a border ring.
type BorderRectangleItem interface {
	Background() scenic.Brush
	BorderBrush() scenic.Brush
	BorderWidth() float32
	BorderRadius() float32
}

// ImageItem draws an image source fitted into its geometry.
type ImageItem interface {
	Source() *scenic.ImageSource
	ImageFit() scenic.ImageFit
	Alignment() (scenic.HorizontalAlignment, scenic.VerticalAlignment)
	// SourceClip restricts sampling to a source sub-region. ok false
	// means the whole source is shown.
	SourceClip() (clip scenic.IntRect, ok bool)
}

// TextItem produces shaped glyph runs positioned in logical units.
type TextItem interface {
	GlyphRuns() []scene.GlyphRun
	TextBrush() scenic.Brush
}

// PathItem draws vector geometry with independent fill and stroke.
type PathItem interface {
	// FittedPath returns the path in logical units plus a placement
	// offset. ok false means there is nothing to draw.
	FittedPath() (path *scene.Path, offset scenic.Point, ok bool)
	FillBrush() scenic.Brush
	FillRule() scene.FillStyle
	StrokeBrush() scenic.Brush
	StrokeWidth() float32
	StrokeLineCap() scene.LineCap
}

// BoxShadowItem draws a blurred drop shadow behind its geometry.
type BoxShadowItem interface {
	ShadowColor() scenic.Color
	ShadowOffset() (x, y float32)
	Blur() float32
	ShadowRadius() float32
}

// ClipItem restricts its children to the item geometry.
type ClipItem interface {
	ClipsChildren() bool
	ClipRadius() float32
}

// OpacityItem multiplies the opacity of its subtree.
type OpacityItem interface {
	Opacity() float32
}

// TransformItem applies a translation, rotation, and scale to its
// subtree, in that order.
type TransformItem interface {
	Translation() scenic.Vector
	RotationDegrees() float32
	ScaleFactors() (x, y float32)
}

// CachedPixmapItem renders through an externally maintained pixmap. The
// update callback either emits current premultiplied RGBA pixels or
// emits nothing when the cache is empty.
type CachedPixmapItem interface {
	UpdateCachedPixmap(emit func(width, height uint32, data []byte))
}

// RenderItemTree walks an item subtree depth first, rendering each item
// through the item renderer. Subtrees behind an empty clip are skipped.
func RenderItemTree(ir *ItemRenderer, root Item, origin scenic.Point) {
	ir.SaveState()
	ir.Translate(scenic.Vector{X: origin.X, Y: origin.Y})
	renderItem(ir, root)
	ir.RestoreState()
}

func renderItem(ir *ItemRenderer, item Item) {
	ir.SaveState()
	defer ir.RestoreState()

	pos := item.Position()
	ir.Translate(scenic.Vector{X: pos.X, Y: pos.Y})

	if t, ok := item.(TransformItem); ok {
		d := t.Translation()
		if d.X != 0 || d.Y != 0 {
			ir.Translate(d)
		}
		if deg := t.RotationDegrees(); deg != 0 {
			ir.Rotate(deg)
		}
		if sx, sy := t.ScaleFactors(); sx != 1 || sy != 1 {
			ir.Scale(sx, sy)
		}
	}
	if o, ok := item.(OpacityItem); ok {
		ir.ApplyOpacity(o.Opacity())
	}

	size := item.Size()

	if c, ok := item.(ClipItem); ok && c.ClipsChildren() {
		clip := scenic.RectFromSize(size)
		if !ir.CombineClip(clip, c.ClipRadius()) {
			return
		}
	}

	drawItem(ir, item, size)

	for _, child := range item.Children() {
		renderItem(ir, child)
	}
}

func drawItem(ir *ItemRenderer, item Item, size scenic.Size) {
	switch it := item.(type) {
	case BorderRectangleItem:
		ir.DrawBorderRectangle(size, it.Background(), it.BorderBrush(),
			it.BorderWidth(), it.BorderRadius())
	case RectangleItem:
		ir.DrawRectangle(it.Background(), size)
	case ImageItem:
		opts := ImageOptions{Fit: it.ImageFit()}
		opts.HorizontalAlignment, opts.VerticalAlignment = it.Alignment()
		if clip, ok := it.SourceClip(); ok {
			opts.SourceClip = &clip
		}
		ir.DrawImage(it.Source(), size, opts)
	case TextItem:
		ir.DrawText(it.GlyphRuns(), it.TextBrush())
	case PathItem:
		if path, offset, ok := it.FittedPath(); ok {
			ir.DrawPath(path, offset, PathStyle{
				Fill:          it.FillBrush(),
				FillRule:      it.FillRule(),
				Stroke:        it.StrokeBrush(),
				StrokeWidth:   it.StrokeWidth(),
				StrokeLineCap: it.StrokeLineCap(),
			})
		}
	case BoxShadowItem:
		ox, oy := it.ShadowOffset()
		ir.DrawBoxShadow(size, it.ShadowColor(), ox, oy, it.Blur(), it.ShadowRadius())
	case CachedPixmapItem:
		ir.DrawCachedPixmap(it.UpdateCachedPixmap)
	}
}
