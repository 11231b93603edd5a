package scenic

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSolidBrush(t *testing.T) {
	b := SolidBrush(RGB(255, 0, 0))
	if b.Kind != BrushSolid {
		t.Errorf("Kind = %v, want Solid", b.Kind)
	}
	if b.DefaultColor() != RGB(255, 0, 0) {
		t.Errorf("DefaultColor = %v, want red", b.DefaultColor())
	}
}

func TestBrushTransparency(t *testing.T) {
	if !SolidBrush(Transparent).IsTransparent() {
		t.Error("transparent solid brush not reported transparent")
	}
	if SolidBrush(RGBA(0, 0, 0, 1)).IsTransparent() {
		t.Error("near-transparent solid brush reported transparent")
	}
	allClear := NewLinearGradient(0, []GradientStop{
		{Offset: 0, Color: Transparent},
		{Offset: 1, Color: RGBA(255, 0, 0, 0)},
	})
	if !allClear.IsTransparent() {
		t.Error("all-transparent gradient not reported transparent")
	}
	if (Brush{Kind: BrushUnsupported}).IsTransparent() != true {
		t.Error("unsupported brush not reported transparent")
	}
}

func TestBrushIsOpaque(t *testing.T) {
	if !SolidBrush(RGB(1, 2, 3)).IsOpaque() {
		t.Error("opaque solid brush not reported opaque")
	}
	if SolidBrush(RGBA(1, 2, 3, 128)).IsOpaque() {
		t.Error("translucent solid brush reported opaque")
	}
	g := NewRadialGradient([]GradientStop{
		{Offset: 0, Color: RGB(255, 0, 0)},
		{Offset: 1, Color: RGB(0, 0, 255)},
	})
	if !g.IsOpaque() {
		t.Error("all-opaque gradient not reported opaque")
	}
	g.Stops[1].Color.A = 100
	if g.IsOpaque() {
		t.Error("gradient with translucent stop reported opaque")
	}
	if (Brush{Kind: BrushRadialGradient}).IsOpaque() {
		t.Error("stopless gradient reported opaque")
	}
}

func TestGradientStopsSorted(t *testing.T) {
	in := []GradientStop{
		{Offset: 1, Color: RGB(0, 0, 255)},
		{Offset: 0, Color: RGB(255, 0, 0)},
		{Offset: 0.5, Color: RGB(0, 255, 0)},
	}
	b := NewLinearGradient(90, in)
	for i := 1; i < len(b.Stops); i++ {
		if b.Stops[i].Offset < b.Stops[i-1].Offset {
			t.Fatalf("stops not sorted: %v", b.Stops)
		}
	}
	// The caller's slice is untouched.
	if in[0].Offset != 1 {
		t.Error("input slice was reordered")
	}
}

func pointNear(a, b Point, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps
}

func TestLineForAngle(t *testing.T) {
	size := Size{Width: 100, Height: 50}

	// 0 degrees points up: the line runs bottom to top through the center.
	start, end := LineForAngle(0, size)
	if !pointNear(start, Point{X: 50, Y: 50}, 1e-4) || !pointNear(end, Point{X: 50, Y: 0}, 1e-4) {
		t.Errorf("0deg line = %v -> %v, want {50 50} -> {50 0}", start, end)
	}

	// 90 degrees points right.
	start, end = LineForAngle(90, size)
	if !pointNear(start, Point{X: 0, Y: 25}, 1e-3) || !pointNear(end, Point{X: 100, Y: 25}, 1e-3) {
		t.Errorf("90deg line = %v -> %v, want {0 25} -> {100 25}", start, end)
	}

	// 180 degrees points down.
	start, end = LineForAngle(180, size)
	if !pointNear(start, Point{X: 50, Y: 0}, 1e-3) || !pointNear(end, Point{X: 50, Y: 50}, 1e-3) {
		t.Errorf("180deg line = %v -> %v, want {50 0} -> {50 50}", start, end)
	}
}

func TestLineForAngleCoversCorners(t *testing.T) {
	// At 45 degrees the projection of every corner onto the gradient axis
	// must lie within the line segment.
	size := Size{Width: 80, Height: 60}
	start, end := LineForAngle(45, size)
	dx, dy := end.X-start.X, end.Y-start.Y
	lenSq := dx*dx + dy*dy
	for _, c := range []Point{{0, 0}, {80, 0}, {0, 60}, {80, 60}} {
		tt := ((c.X-start.X)*dx + (c.Y-start.Y)*dy) / lenSq
		if tt < -1e-4 || tt > 1+1e-4 {
			t.Errorf("corner %v projects to t=%v, outside [0, 1]", c, tt)
		}
	}
}
