package raster

import (
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// glyphRun fills a shaped glyph sequence by extracting vector outlines
// from the run's face. Glyphs without outline data (bitmap or color
// fonts) are skipped.
func (r *Renderer) glyphRun(transform scenic.Affine, run scene.GlyphRun, paint scene.Paint) {
	if run.IsEmpty() || !paint.IsVisible() {
		return
	}
	path := GlyphRunPath(run)
	if path == nil || path.IsEmpty() {
		scenic.Logger().Debug("glyph run produced no outlines",
			"glyphs", len(run.Glyphs))
		return
	}
	r.fillShape(scene.NewPathShape(path), transform, scene.FillNonZero, paint)
}

// GlyphRunPath builds the combined fill path of a glyph run. Outline
// coordinates come from the face in font units with y up; they are scaled
// to the run's pixel size and flipped to screen orientation.
func GlyphRunPath(run scene.GlyphRun) *scene.Path {
	upem := float32(run.Face.Upem())
	if upem <= 0 {
		return nil
	}
	scale := run.SizePx / upem

	path := scene.NewPath()
	for _, g := range run.Glyphs {
		data := run.Face.GlyphData(g.GID)
		outline, ok := data.(font.GlyphOutline)
		if !ok {
			continue
		}
		appendOutline(path, outline, scale, g.X, g.Y)
	}
	return path
}

func appendOutline(path *scene.Path, outline font.GlyphOutline, scale, dx, dy float32) {
	tx := func(p font.SegmentPoint) (float32, float32) {
		return p.X*scale + dx, -p.Y*scale + dy
	}
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			x, y := tx(seg.Args[0])
			path.MoveTo(x, y)
		case ot.SegmentOpLineTo:
			x, y := tx(seg.Args[0])
			path.LineTo(x, y)
		case ot.SegmentOpQuadTo:
			cx, cy := tx(seg.Args[0])
			x, y := tx(seg.Args[1])
			path.QuadTo(cx, cy, x, y)
		case ot.SegmentOpCubeTo:
			c1x, c1y := tx(seg.Args[0])
			c2x, c2y := tx(seg.Args[1])
			x, y := tx(seg.Args[2])
			path.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
}
