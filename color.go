package scenic

import "image/color"

// Color is an 8-bit RGBA color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent black color.
var Transparent = Color{}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit components with straight alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// IsOpaque reports whether the color has full alpha.
func (c Color) IsOpaque() bool { return c.A == 255 }

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool { return c.A == 0 }

// WithAlphaMultiplied scales the alpha channel by f, clamped to [0, 1].
// Color channels are unchanged.
func (c Color) WithAlphaMultiplied(f float32) Color {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		c.A = 0
		return c
	}
	c.A = uint8(float32(c.A)*f + 0.5)
	return c
}

// NRGBA converts to the standard library straight-alpha color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Premultiplied returns the premultiplied-alpha components of the color.
func (c Color) Premultiplied() (r, g, b, a uint8) {
	if c.A == 255 {
		return c.R, c.G, c.B, c.A
	}
	m := uint32(c.A)
	return uint8((uint32(c.R)*m + 127) / 255),
		uint8((uint32(c.G)*m + 127) / 255),
		uint8((uint32(c.B)*m + 127) / 255),
		c.A
}

// FromColor converts a standard color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}
