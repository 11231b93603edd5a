package scene

import (
	"github.com/go-text/typesetting/font"
	"golang.org/x/text/language"
)

// Glyph is a single positioned glyph within a run. Position is relative
// to the run origin, in the run's coordinate space.
type Glyph struct {
	GID  font.GID
	X, Y float32
}

// GlyphRun is a shaped sequence of glyphs sharing one face and paint.
// Shaping happens upstream; the scene only carries placed glyphs.
type GlyphRun struct {
	Face     *font.Face
	SizePx   float32 // font size in device pixels
	Glyphs   []Glyph
	Language language.Tag // BCP 47 tag of the shaped text, may be und
}

// IsEmpty reports whether the run has no glyphs to draw.
func (r GlyphRun) IsEmpty() bool {
	return r.Face == nil || len(r.Glyphs) == 0 || r.SizePx <= 0
}
