package scenic

import (
	"image/color"
	"testing"
)

func TestWithAlphaMultiplied(t *testing.T) {
	c := RGBA(10, 20, 30, 200)
	got := c.WithAlphaMultiplied(0.5)
	if got != RGBA(10, 20, 30, 100) {
		t.Errorf("WithAlphaMultiplied(0.5) = %v, want alpha 100", got)
	}
	if c.WithAlphaMultiplied(1) != c {
		t.Error("factor 1 changed the color")
	}
	if c.WithAlphaMultiplied(2) != c {
		t.Error("factor above 1 changed the color")
	}
	if got := c.WithAlphaMultiplied(-1); got.A != 0 {
		t.Errorf("negative factor alpha = %d, want 0", got.A)
	}
	// 255 * 0.5 rounds to 128.
	if got := RGB(255, 255, 255).WithAlphaMultiplied(0.5); got.A != 128 {
		t.Errorf("255*0.5 alpha = %d, want 128", got.A)
	}
}

func TestPremultiplied(t *testing.T) {
	r, g, b, a := RGBA(255, 128, 0, 128).Premultiplied()
	if r != 128 || g != 64 || b != 0 || a != 128 {
		t.Errorf("Premultiplied = (%d, %d, %d, %d), want (128, 64, 0, 128)", r, g, b, a)
	}
	r, g, b, a = RGB(255, 128, 0).Premultiplied()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("opaque Premultiplied = (%d, %d, %d, %d), want unchanged", r, g, b, a)
	}
	r, g, b, a = RGBA(255, 255, 255, 0).Premultiplied()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("transparent Premultiplied = (%d, %d, %d, %d), want zeros", r, g, b, a)
	}
}

func TestOpacityPredicates(t *testing.T) {
	if !RGB(1, 2, 3).IsOpaque() {
		t.Error("RGB color not opaque")
	}
	if RGBA(1, 2, 3, 254).IsOpaque() {
		t.Error("alpha 254 reported opaque")
	}
	if !Transparent.IsTransparent() {
		t.Error("Transparent not transparent")
	}
	if RGBA(0, 0, 0, 1).IsTransparent() {
		t.Error("alpha 1 reported transparent")
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	if got != RGBA(10, 20, 30, 40) {
		t.Errorf("FromColor = %v, want {10 20 30 40}", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", RGB(255, 0, 0)},
		{"00ff00", RGB(0, 255, 0)},
		{"#f00", RGB(255, 0, 0)},
		{"#f008", RGBA(255, 0, 0, 136)},
		{"#11223344", RGBA(17, 34, 51, 68)},
		{"bogus", Color{A: 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
