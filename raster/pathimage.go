package raster

import (
	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// PathFill is one filled path of a PathImage.
type PathFill struct {
	Path  *scene.Path
	Style scene.FillStyle
	Color scenic.Color
}

// PathImage is vector image content made of filled paths, rasterized on
// demand at any pixel size. It implements scenic.VectorImage; resizes
// re-rasterize rather than scale pixels.
type PathImage struct {
	// ContentSize is the intrinsic logical size; path coordinates live
	// in this space.
	ContentSize scenic.Size
	Fills       []PathFill
}

// Size implements scenic.VectorImage.
func (p *PathImage) Size() scenic.Size {
	return p.ContentSize
}

// Rasterize implements scenic.VectorImage. Content is scaled from the
// intrinsic size to the requested pixel dimensions.
func (p *PathImage) Rasterize(width, height uint32) (*scenic.PixelBuffer, error) {
	if width == 0 || height == 0 || p.ContentSize.IsEmpty() {
		return scenic.NewPixelBuffer(scenic.PixelRGBA8Premultiplied, width, height), nil
	}

	s := scene.NewScene()
	transform := scenic.ScaleAffine(
		float32(width)/p.ContentSize.Width,
		float32(height)/p.ContentSize.Height,
	)
	for _, f := range p.Fills {
		if f.Path == nil {
			continue
		}
		s.Fill(f.Style, transform, scene.SolidPaint(f.Color), scene.NewPathShape(f.Path))
	}

	pm := scenic.NewPixmap(int(width), int(height))
	Render(s, pm)

	return &scenic.PixelBuffer{
		Format: scenic.PixelRGBA8Premultiplied,
		Width:  width,
		Height: height,
		Data:   pm.Data(),
	}, nil
}
