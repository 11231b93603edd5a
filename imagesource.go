package scenic

import (
	"github.com/gogpu/gpucontext"
)

// ImageKind identifies the variant of an ImageSource.
type ImageKind uint8

const (
	// ImageNone is the absent image. Drawing it is a no-op.
	ImageNone ImageKind = iota
	// ImageEmbedded is decoded CPU pixel data.
	ImageEmbedded
	// ImageStaticTexture is pre-baked premultiplied RGBA8 data.
	ImageStaticTexture
	// ImageNineSlice wraps another source with stretchable border insets.
	ImageNineSlice
	// ImageVector is scalable vector content rasterized on demand.
	ImageVector
	// ImageGPUTexture is a caller-provided GPU-resident texture.
	ImageGPUTexture
	// ImageNative is an opaque platform image extracted via offscreen
	// draw-and-readback.
	ImageNative
)

// String returns a human-readable name for the image kind.
func (k ImageKind) String() string {
	switch k {
	case ImageNone:
		return "None"
	case ImageEmbedded:
		return "Embedded"
	case ImageStaticTexture:
		return "StaticTexture"
	case ImageNineSlice:
		return "NineSlice"
	case ImageVector:
		return "Vector"
	case ImageGPUTexture:
		return "GPUTexture"
	case ImageNative:
		return "Native"
	default:
		return "Unknown"
	}
}

// VectorImage is scalable image content that can be rasterized at any
// target pixel size. Rasterization output is not cached by the pipeline:
// drawing at a new size rasterizes again.
type VectorImage interface {
	// Size returns the intrinsic size of the content in logical units.
	Size() Size
	// Rasterize renders the content at the given pixel dimensions into a
	// straight-alpha RGBA8 buffer.
	Rasterize(width, height uint32) (*PixelBuffer, error)
}

// NativeImage is an opaque platform image. Extract renders it offscreen
// and reads the pixels back.
type NativeImage interface {
	Size() Size
	Extract() (*PixelBuffer, error)
}

// StaticTexture is pre-baked premultiplied RGBA8 pixel data, typically
// compiled into the program.
type StaticTexture struct {
	Width  uint32
	Height uint32
	Data   []uint8 // premultiplied RGBA8
}

// NineSliceBorders are the fixed border insets of a nine-slice image,
// in source pixels.
type NineSliceBorders struct {
	Left, Top, Right, Bottom uint32
}

// IsZero reports whether all insets are zero.
func (b NineSliceBorders) IsZero() bool {
	return b.Left == 0 && b.Top == 0 && b.Right == 0 && b.Bottom == 0
}

// ImageSource is a closed tagged union over every image variant the
// pipeline can draw. Exactly the fields for Kind are meaningful.
type ImageSource struct {
	Kind ImageKind

	// Embedded pixel data. Cache identity follows this pointer.
	Buffer *PixelBuffer

	// Static pre-baked texture data.
	Static *StaticTexture

	// Nine-slice: the wrapped source plus its border insets.
	Inner   *ImageSource
	Borders NineSliceBorders

	// Scalable vector content.
	Vector VectorImage

	// GPU-resident texture and its pixel dimensions.
	Texture       gpucontext.Texture
	TextureWidth  uint32
	TextureHeight uint32

	// Opaque platform image.
	Native NativeImage
}

// EmbeddedImage wraps decoded pixel data as an image source.
func EmbeddedImage(buf *PixelBuffer) ImageSource {
	return ImageSource{Kind: ImageEmbedded, Buffer: buf}
}

// StaticTextureImage wraps pre-baked texture data as an image source.
func StaticTextureImage(t *StaticTexture) ImageSource {
	return ImageSource{Kind: ImageStaticTexture, Static: t}
}

// NineSliceImage wraps a source with stretchable border insets.
func NineSliceImage(inner ImageSource, borders NineSliceBorders) ImageSource {
	return ImageSource{Kind: ImageNineSlice, Inner: &inner, Borders: borders}
}

// VectorImageSource wraps scalable content as an image source.
func VectorImageSource(v VectorImage) ImageSource {
	return ImageSource{Kind: ImageVector, Vector: v}
}

// GPUTextureImage wraps a GPU-resident texture as an image source.
func GPUTextureImage(tex gpucontext.Texture, width, height uint32) ImageSource {
	return ImageSource{
		Kind:          ImageGPUTexture,
		Texture:       tex,
		TextureWidth:  width,
		TextureHeight: height,
	}
}

// NativeImageSource wraps an opaque platform image as an image source.
func NativeImageSource(n NativeImage) ImageSource {
	return ImageSource{Kind: ImageNative, Native: n}
}

// Size returns the intrinsic size of the source in source pixels
// (logical units for vector content). The nine-slice variant reports the
// size of its wrapped source.
func (s ImageSource) Size() Size {
	switch s.Kind {
	case ImageEmbedded:
		if s.Buffer != nil {
			return s.Buffer.Size()
		}
	case ImageStaticTexture:
		if s.Static != nil {
			return Size{Width: float32(s.Static.Width), Height: float32(s.Static.Height)}
		}
	case ImageNineSlice:
		if s.Inner != nil {
			return s.Inner.Size()
		}
	case ImageVector:
		if s.Vector != nil {
			return s.Vector.Size()
		}
	case ImageGPUTexture:
		return Size{Width: float32(s.TextureWidth), Height: float32(s.TextureHeight)}
	case ImageNative:
		if s.Native != nil {
			return s.Native.Size()
		}
	}
	return Size{}
}

// IsNone reports whether the source holds no drawable content.
func (s ImageSource) IsNone() bool {
	return s.Kind == ImageNone || s.Size().IsEmpty()
}
