package scenic

import (
	"fmt"
	"image"
	"io"

	// Extra image formats decodable by DecodePixelBuffer.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PixelFormat describes the channel layout of a PixelBuffer.
type PixelFormat uint8

const (
	// PixelRGB8 is 3 bytes per pixel, no alpha.
	PixelRGB8 PixelFormat = iota
	// PixelRGBA8 is 4 bytes per pixel with straight alpha.
	PixelRGBA8
	// PixelRGBA8Premultiplied is 4 bytes per pixel with premultiplied alpha.
	PixelRGBA8Premultiplied
)

// BytesPerPixel returns the pixel stride of the format.
func (f PixelFormat) BytesPerPixel() int {
	if f == PixelRGB8 {
		return 3
	}
	return 4
}

// String returns a human-readable name for the format.
func (f PixelFormat) String() string {
	switch f {
	case PixelRGB8:
		return "RGB8"
	case PixelRGBA8:
		return "RGBA8"
	case PixelRGBA8Premultiplied:
		return "RGBA8Premultiplied"
	default:
		return "Unknown"
	}
}

// PixelBuffer is decoded CPU-side image data. The image content cache is
// keyed by PixelBuffer pointer identity: hold on to the same buffer across
// frames to reuse its prepared GPU data.
type PixelBuffer struct {
	Format PixelFormat
	Width  uint32
	Height uint32
	Data   []uint8
}

// NewPixelBuffer allocates a zeroed buffer of the given format and size.
func NewPixelBuffer(format PixelFormat, width, height uint32) *PixelBuffer {
	return &PixelBuffer{
		Format: format,
		Width:  width,
		Height: height,
		Data:   make([]uint8, int(width)*int(height)*format.BytesPerPixel()),
	}
}

// Size returns the buffer dimensions as a float size.
func (b *PixelBuffer) Size() Size {
	return Size{Width: float32(b.Width), Height: float32(b.Height)}
}

// IsValid reports whether the data length matches the declared geometry.
func (b *PixelBuffer) IsValid() bool {
	return len(b.Data) == int(b.Width)*int(b.Height)*b.Format.BytesPerPixel()
}

// ToRGBA returns the buffer contents as straight-alpha RGBA8 bytes,
// converting from RGB8 (opaque) or unmultiplying premultiplied data.
// RGBA8 buffers return their data slice unchanged.
func (b *PixelBuffer) ToRGBA() []uint8 {
	switch b.Format {
	case PixelRGBA8:
		return b.Data
	case PixelRGB8:
		n := int(b.Width) * int(b.Height)
		out := make([]uint8, n*4)
		for i := 0; i < n; i++ {
			out[i*4+0] = b.Data[i*3+0]
			out[i*4+1] = b.Data[i*3+1]
			out[i*4+2] = b.Data[i*3+2]
			out[i*4+3] = 255
		}
		return out
	default:
		out := make([]uint8, len(b.Data))
		for i := 0; i < len(b.Data); i += 4 {
			a := b.Data[i+3]
			if a == 0 || a == 255 {
				copy(out[i:i+4], b.Data[i:i+4])
				continue
			}
			m := uint32(a)
			out[i+0] = uint8((uint32(b.Data[i+0])*255 + m/2) / m)
			out[i+1] = uint8((uint32(b.Data[i+1])*255 + m/2) / m)
			out[i+2] = uint8((uint32(b.Data[i+2])*255 + m/2) / m)
			out[i+3] = a
		}
		return out
	}
}

// ToPremultipliedRGBA returns the buffer contents as premultiplied RGBA8.
func (b *PixelBuffer) ToPremultipliedRGBA() []uint8 {
	switch b.Format {
	case PixelRGBA8Premultiplied:
		return b.Data
	case PixelRGB8:
		return b.ToRGBA()
	default:
		out := make([]uint8, len(b.Data))
		for i := 0; i < len(b.Data); i += 4 {
			a := b.Data[i+3]
			if a == 255 {
				copy(out[i:i+4], b.Data[i:i+4])
				continue
			}
			m := uint32(a)
			out[i+0] = uint8((uint32(b.Data[i+0])*m + 127) / 255)
			out[i+1] = uint8((uint32(b.Data[i+1])*m + 127) / 255)
			out[i+2] = uint8((uint32(b.Data[i+2])*m + 127) / 255)
			out[i+3] = a
		}
		return out
	}
}

// PixelBufferFromImage converts any image.Image into an RGBA8 buffer.
func PixelBufferFromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := NewPixelBuffer(PixelRGBA8, uint32(w), uint32(h))

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == w*4 {
		copy(buf.Data, nrgba.Pix)
		return buf
	}

	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			buf.Data[i+0] = c.R
			buf.Data[i+1] = c.G
			buf.Data[i+2] = c.B
			buf.Data[i+3] = c.A
			i += 4
		}
	}
	return buf
}

// DecodePixelBuffer decodes an encoded image stream (PNG, JPEG, GIF, BMP,
// TIFF, or WebP) into an RGBA8 buffer.
func DecodePixelBuffer(r io.Reader) (*PixelBuffer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("scenic: decode image: %w", err)
	}
	Logger().Debug("decoded image", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return PixelBufferFromImage(img), nil
}
