package render

import (
	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// ImageCache maps source pixel buffers to decoded, backend-ready image
// data. Keying is by buffer identity, not content: two buffers with
// identical pixels cache separately. Entries persist across frames until
// Clear drops them all at once.
type ImageCache struct {
	entries map[*scenic.PixelBuffer]*scene.ImageData
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{entries: make(map[*scenic.PixelBuffer]*scene.ImageData)}
}

// Get returns the decoded image data for buf, converting and caching it
// on first use. Repeated calls with the same buffer return the identical
// data object.
func (c *ImageCache) Get(buf *scenic.PixelBuffer) *scene.ImageData {
	if img, ok := c.entries[buf]; ok {
		return img
	}
	img := imageDataFromBuffer(buf)
	if img != nil {
		c.entries[buf] = img
	}
	return img
}

// Len returns the number of cached entries.
func (c *ImageCache) Len() int {
	return len(c.entries)
}

// Clear drops every entry. Called when the graphics context is released.
func (c *ImageCache) Clear() {
	clear(c.entries)
}

// imageDataFromBuffer normalizes a pixel buffer to premultiplied RGBA.
func imageDataFromBuffer(buf *scenic.PixelBuffer) *scene.ImageData {
	if buf == nil || !buf.IsValid() {
		return nil
	}
	return &scene.ImageData{
		Width:  buf.Width,
		Height: buf.Height,
		Data:   buf.ToPremultipliedRGBA(),
	}
}
