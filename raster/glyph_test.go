package raster

import (
	"testing"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/scenic/scene"
)

func TestAppendOutlineSegmentOps(t *testing.T) {
	outline := font.GlyphOutline{Segments: []font.Segment{
		{Op: ot.SegmentOpMoveTo, Args: [3]font.SegmentPoint{{X: 0, Y: 0}}},
		{Op: ot.SegmentOpLineTo, Args: [3]font.SegmentPoint{{X: 100, Y: 0}}},
		{Op: ot.SegmentOpQuadTo, Args: [3]font.SegmentPoint{
			{X: 100, Y: 100}, {X: 0, Y: 100},
		}},
		{Op: ot.SegmentOpCubeTo, Args: [3]font.SegmentPoint{
			{X: -50, Y: 100}, {X: -50, Y: 50}, {X: 0, Y: 0},
		}},
	}}

	path := scene.NewPath()
	appendOutline(path, outline, 0.5, 10, 20)

	wantVerbs := []scene.PathVerb{
		scene.VerbMoveTo, scene.VerbLineTo, scene.VerbQuadTo, scene.VerbCubicTo,
	}
	verbs := path.Verbs()
	if len(verbs) != len(wantVerbs) {
		t.Fatalf("verbs = %v, want %v", verbs, wantVerbs)
	}
	for i, v := range verbs {
		if v != wantVerbs[i] {
			t.Errorf("verb %d = %v, want %v", i, v, wantVerbs[i])
		}
	}

	// Font units scale by 0.5, translate by (10, 20), and y flips to
	// screen orientation.
	wantPoints := []float32{
		10, 20,
		60, 20,
		60, -30, 10, -30,
		-15, -30, -15, -5, 10, 20,
	}
	points := path.Points()
	if len(points) != len(wantPoints) {
		t.Fatalf("point count = %d, want %d", len(points), len(wantPoints))
	}
	const eps = 1e-4
	for i, p := range points {
		if p < wantPoints[i]-eps || p > wantPoints[i]+eps {
			t.Errorf("point %d = %v, want %v", i, p, wantPoints[i])
		}
	}
}

func TestAppendOutlineEmpty(t *testing.T) {
	path := scene.NewPath()
	appendOutline(path, font.GlyphOutline{}, 1, 0, 0)
	if !path.IsEmpty() {
		t.Errorf("path verbs = %v, want empty", path.Verbs())
	}
}
