package backend

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/raster"
	"github.com/gogpu/scenic/scene"
)

func init() {
	Register(BackendSoftware, func() GraphicsBackend {
		return NewSoftware()
	})
}

// SoftwareBackend rasterizes scenes on the CPU into a pixmap. It needs
// no GPU and backs headless rendering and tests.
//
// The backend starts suspended. Activate attaches a target size; the
// rendered pixmap is available through Target and handed to the present
// callback, if any, after every frame.
type SoftwareBackend struct {
	mu       sync.Mutex
	width    uint32
	height   uint32
	target   *scenic.Pixmap
	renderer *raster.Renderer
	active   bool
	present  func(*scenic.Pixmap)
}

// NewSoftware creates a suspended software backend.
func NewSoftware() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name implements GraphicsBackend.
func (b *SoftwareBackend) Name() string { return BackendSoftware }

// Activate attaches a render target of the given size, leaving the
// suspended state.
func (b *SoftwareBackend) Activate(width, height uint32) error {
	if width == 0 || height == 0 {
		return ErrInvalidSize
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = width
	b.height = height
	b.target = scenic.NewPixmap(int(width), int(height))
	b.renderer = raster.NewRenderer(int(width), int(height))
	b.active = true
	return nil
}

// SetPresentCallback registers a function invoked with the rendered
// pixmap after each frame.
func (b *SoftwareBackend) SetPresentCallback(fn func(*scenic.Pixmap)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.present = fn
}

// Target returns the most recently rendered pixmap, or nil while
// suspended.
func (b *SoftwareBackend) Target() *scenic.Pixmap {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.target
}

// RenderScene implements GraphicsBackend.
func (b *SoftwareBackend) RenderScene(s *scene.Scene, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		return ErrSuspended
	}
	if width == 0 || height == 0 {
		return ErrInvalidSize
	}
	if width != b.width || height != b.height {
		b.width = width
		b.height = height
		b.target = scenic.NewPixmap(int(width), int(height))
		b.renderer = raster.NewRenderer(int(width), int(height))
	}
	b.target.Clear(scenic.Transparent)
	b.renderer.Render(s, b.target)
	if b.present != nil {
		b.present(b.target)
	}
	return nil
}

// Resize implements GraphicsBackend. Resizing while suspended is a
// silent no-op.
func (b *SoftwareBackend) Resize(width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		return nil
	}
	if width == 0 || height == 0 {
		return ErrInvalidSize
	}
	b.width = width
	b.height = height
	b.target = scenic.NewPixmap(int(width), int(height))
	b.renderer = raster.NewRenderer(int(width), int(height))
	return nil
}

// WithGraphicsAPI implements GraphicsBackend. The software backend has
// no GPU, so the callback always receives nil.
func (b *SoftwareBackend) WithGraphicsAPI(fn func(api *GraphicsAPI)) error {
	fn(nil)
	return nil
}

// ClearGraphicsContext implements GraphicsBackend.
func (b *SoftwareBackend) ClearGraphicsContext() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.target = nil
	b.renderer = nil
	b.active = false
	b.width = 0
	b.height = 0
}

// ReadTexture implements the TextureReader capability for textures that
// expose their pixels through an RGBA readback method.
func (b *SoftwareBackend) ReadTexture(tex gpucontext.Texture) (uint32, uint32, []byte, bool) {
	type rgbaReader interface {
		ReadRGBA() (width, height uint32, data []byte, err error)
	}
	r, ok := tex.(rgbaReader)
	if !ok {
		return 0, 0, nil, false
	}
	w, h, data, err := r.ReadRGBA()
	if err != nil {
		scenic.Logger().Warn("texture readback failed", "error", err)
		return 0, 0, nil, false
	}
	return w, h, data, true
}
