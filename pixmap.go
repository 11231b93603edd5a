package scenic

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular pixel surface holding premultiplied RGBA8.
// It is the CPU-side render target of the software backend and the
// intermediate target of the GPU backend.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied RGBA pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel stores a straight-alpha color at a single pixel, premultiplying.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := c.Premultiplied()
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the straight-alpha color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	a := p.data[i+3]
	if a == 0 {
		return Transparent
	}
	if a == 255 {
		return Color{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: 255}
	}
	m := uint32(a)
	return Color{
		R: uint8((uint32(p.data[i+0])*255 + m/2) / m),
		G: uint8((uint32(p.data[i+1])*255 + m/2) / m),
		B: uint8((uint32(p.data[i+2])*255 + m/2) / m),
		A: a,
	}
}

// BlendPixel composites a premultiplied source color over the pixel.
func (p *Pixmap) BlendPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	if a == 255 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
		return
	}
	inv := uint32(255 - a)
	p.data[i+0] = r + uint8((uint32(p.data[i+0])*inv+127)/255)
	p.data[i+1] = g + uint8((uint32(p.data[i+1])*inv+127)/255)
	p.data[i+2] = b + uint8((uint32(p.data[i+2])*inv+127)/255)
	p.data[i+3] = a + uint8((uint32(p.data[i+3])*inv+127)/255)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r, g, b, a := c.Premultiplied()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA (premultiplied, matching
// the standard library's RGBA semantics).
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
