package scenic

import "testing"

func TestColorAtOffset(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0, Color: RGB(0, 0, 0)},
		{Offset: 1, Color: RGB(255, 255, 255)},
	}

	if got := ColorAtOffset(stops, 0.5); got != RGB(128, 128, 128) {
		t.Errorf("ColorAtOffset(0.5) = %v, want gray 128", got)
	}
	if got := ColorAtOffset(stops, 0); got != RGB(0, 0, 0) {
		t.Errorf("ColorAtOffset(0) = %v, want black", got)
	}
	if got := ColorAtOffset(stops, 1); got != RGB(255, 255, 255) {
		t.Errorf("ColorAtOffset(1) = %v, want white", got)
	}
}

func TestColorAtOffsetPads(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0.25, Color: RGB(255, 0, 0)},
		{Offset: 0.75, Color: RGB(0, 0, 255)},
	}
	if got := ColorAtOffset(stops, -1); got != RGB(255, 0, 0) {
		t.Errorf("below range = %v, want first stop", got)
	}
	if got := ColorAtOffset(stops, 0.1); got != RGB(255, 0, 0) {
		t.Errorf("before first stop = %v, want first stop", got)
	}
	if got := ColorAtOffset(stops, 2); got != RGB(0, 0, 255) {
		t.Errorf("above range = %v, want last stop", got)
	}
}

func TestColorAtOffsetDegenerate(t *testing.T) {
	if got := ColorAtOffset(nil, 0.5); got != Transparent {
		t.Errorf("no stops = %v, want transparent", got)
	}
	single := []GradientStop{{Offset: 0.5, Color: RGB(9, 9, 9)}}
	if got := ColorAtOffset(single, 0.99); got != RGB(9, 9, 9) {
		t.Errorf("single stop = %v, want its color", got)
	}
	// Coincident stops produce a hard transition to the later stop.
	coincident := []GradientStop{
		{Offset: 0, Color: RGB(255, 0, 0)},
		{Offset: 0.5, Color: RGB(0, 255, 0)},
		{Offset: 0.5, Color: RGB(0, 0, 255)},
		{Offset: 1, Color: RGB(255, 255, 255)},
	}
	if got := ColorAtOffset(coincident, 0.5); got != RGB(0, 255, 0) {
		t.Errorf("at coincident offset = %v, want first of the pair", got)
	}
}

func TestColorAtOffsetAlpha(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0, Color: RGBA(255, 0, 0, 0)},
		{Offset: 1, Color: RGBA(255, 0, 0, 255)},
	}
	got := ColorAtOffset(stops, 0.5)
	if got.A != 128 {
		t.Errorf("alpha at midpoint = %d, want 128", got.A)
	}
	if got.R != 255 {
		t.Errorf("red channel = %d, want 255", got.R)
	}
}
