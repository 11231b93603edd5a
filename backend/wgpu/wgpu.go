// Package wgpu implements the GPU graphics backend.
//
// The backend renders scenes through a shared GPU device provided by the
// host window system (any gpucontext.DeviceProvider), or through a
// self-hosted device when the host does not share one. Frames are
// rasterized into a premultiplied RGBA buffer, uploaded as a texture, and
// presented through the host's gpucontext.TextureDrawer.
package wgpu

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/backend"
	"github.com/gogpu/scenic/raster"
	"github.com/gogpu/scenic/scene"
)

func init() {
	backend.Register(backend.BackendWgpu, func() backend.GraphicsBackend {
		return NewSuspended()
	})
}

// textureDestroyer is implemented by textures that release GPU memory.
type textureDestroyer interface {
	Destroy()
}

// textureReader is implemented by textures whose pixel content can be
// read back to the CPU.
type textureReader interface {
	ReadRGBA() (uint32, uint32, []byte, error)
}

// Backend renders scenes on the GPU and presents them through a host
// window's texture drawer.
//
// A Backend starts suspended, with no window target. Rendering becomes
// possible after SetWindowTarget. All methods are safe for concurrent
// use.
type Backend struct {
	mu sync.Mutex

	// Host integration. Set by SetWindowTarget.
	provider gpucontext.DeviceProvider
	drawer   gpucontext.TextureDrawer

	// Device owned by this backend when the host shares none.
	owned *selfHostedDevice

	blit *blitShader

	// Intermediate frame buffer.
	width    uint32
	height   uint32
	target   *scenic.Pixmap
	renderer *raster.Renderer

	texture any
	active  bool
}

// NewSuspended creates a backend with no window target. Rendering
// returns backend.ErrSuspended until SetWindowTarget is called.
func NewSuspended() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendWgpu }

// SetWindowTarget attaches the backend to a window. The provider may be
// nil, in which case the backend creates and owns its own GPU device.
// The drawer presents uploaded frames onto the window surface.
func (b *Backend) SetWindowTarget(provider gpucontext.DeviceProvider, drawer gpucontext.TextureDrawer, width, height uint32) error {
	if width == 0 || height == 0 {
		return backend.ErrInvalidSize
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if provider == nil {
		owned, err := newSelfHostedDevice("scenic wgpu backend")
		if err != nil {
			return err
		}
		b.owned = owned
	} else {
		blit, err := newBlitShader(provider)
		if err != nil {
			scenic.Logger().Warn("blit shader unavailable", "error", err)
		}
		b.blit = blit
	}

	b.provider = provider
	b.drawer = drawer
	b.width = width
	b.height = height
	b.retarget()
	b.active = true

	scenic.Logger().Info("wgpu backend attached",
		"width", width, "height", height, "selfHosted", provider == nil)
	return nil
}

// RenderScene rasterizes the scene and presents it to the window.
func (b *Backend) RenderScene(s *scene.Scene, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active {
		return backend.ErrSuspended
	}
	if width == 0 || height == 0 {
		return backend.ErrInvalidSize
	}
	if b.target == nil || uint32(b.target.Width()) != width || uint32(b.target.Height()) != height {
		b.width = width
		b.height = height
		b.retarget()
		b.dropTexture()
	}

	b.target.Clear(scenic.Transparent)
	b.renderer.Render(s, b.target)

	return b.present()
}

// present uploads the rasterized frame and draws it at the window
// origin.
func (b *Backend) present() error {
	if b.drawer == nil {
		return nil
	}

	data := b.target.Data()

	if b.texture != nil {
		if updater, ok := b.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err == nil {
				return b.draw()
			}
			scenic.Logger().Debug("texture update failed, recreating")
		}
		b.dropTexture()
	}

	creator := b.drawer.TextureCreator()
	if creator == nil {
		return nil
	}
	tex, err := creator.NewTextureFromRGBA(b.target.Width(), b.target.Height(), data)
	if err != nil {
		return err
	}
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	b.texture = tex
	return b.draw()
}

func (b *Backend) draw() error {
	tex, ok := b.texture.(gpucontext.Texture)
	if !ok {
		return nil
	}
	return b.drawer.DrawTexture(tex, 0, 0)
}

// Resize updates the render target size. Resizing while suspended is a
// no-op. A zero dimension is rejected.
func (b *Backend) Resize(width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active {
		return nil
	}
	if width == 0 || height == 0 {
		return backend.ErrInvalidSize
	}
	if width == b.width && height == b.height {
		return nil
	}

	b.width = width
	b.height = height
	b.retarget()
	b.dropTexture()
	return nil
}

// retarget allocates the intermediate buffer and renderer for the
// current size.
func (b *Backend) retarget() {
	b.target = scenic.NewPixmap(int(b.width), int(b.height))
	b.renderer = raster.NewRenderer(int(b.width), int(b.height))
}

// WithGraphicsAPI exposes the GPU device and queue to the callback. The
// callback receives nil while the backend is suspended.
func (b *Backend) WithGraphicsAPI(fn func(*backend.GraphicsAPI)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active || b.provider == nil {
		fn(nil)
		return nil
	}
	fn(&backend.GraphicsAPI{
		Device: b.provider.Device(),
		Queue:  b.provider.Queue(),
	})
	return nil
}

// ClearGraphicsContext releases the texture, shader, and any self-hosted
// device, returning the backend to the suspended state.
func (b *Backend) ClearGraphicsContext() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.dropTexture()
	b.blit.destroy()
	b.blit = nil
	if b.owned != nil {
		b.owned.release()
		b.owned = nil
	}
	b.provider = nil
	b.drawer = nil
	b.target = nil
	b.renderer = nil
	b.width = 0
	b.height = 0
	b.active = false
}

// ReadTexture reads back the pixel content of a GPU texture, when the
// texture supports CPU readback.
func (b *Backend) ReadTexture(tex gpucontext.Texture) (uint32, uint32, []byte, bool) {
	reader, ok := tex.(textureReader)
	if !ok {
		return 0, 0, nil, false
	}
	w, h, data, err := reader.ReadRGBA()
	if err != nil {
		scenic.Logger().Warn("texture readback failed", "error", err)
		return 0, 0, nil, false
	}
	return w, h, data, true
}

// GPUInfoString describes the self-hosted GPU, or reports that the
// device is shared with the host.
func (b *Backend) GPUInfoString() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.owned != nil && b.owned.info != nil {
		return b.owned.info.String()
	}
	if b.provider != nil {
		return "host-provided device"
	}
	return "suspended"
}

func (b *Backend) dropTexture() {
	if b.texture == nil {
		return
	}
	if d, ok := b.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	b.texture = nil
}
