package scene

import (
	"testing"

	"github.com/go-text/typesetting/font"
)

func TestGlyphRunIsEmpty(t *testing.T) {
	face := &font.Face{}
	run := GlyphRun{Face: face, SizePx: 12, Glyphs: []Glyph{{GID: 1}}}
	if run.IsEmpty() {
		t.Error("populated run reported empty")
	}

	if !(GlyphRun{}).IsEmpty() {
		t.Error("zero run not empty")
	}
	if !(GlyphRun{Face: face, SizePx: 12}).IsEmpty() {
		t.Error("run without glyphs not empty")
	}
	if !(GlyphRun{Face: face, Glyphs: []Glyph{{GID: 1}}}).IsEmpty() {
		t.Error("run with zero size not empty")
	}
}
