package backend

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/scenic/scene"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrSuspended is returned by rendering operations while the backend
	// has no window target.
	ErrSuspended = errors.New("backend: suspended, no window target")

	// ErrInvalidSize is returned when a resize requests zero dimensions.
	ErrInvalidSize = errors.New("backend: width and height must be non-zero")
)

// GraphicsAPI exposes the backend's GPU handles to rendering notification
// callbacks. Handles are only valid for the duration of the callback.
type GraphicsAPI struct {
	Device gpucontext.Device
	Queue  gpucontext.Queue
}

// GraphicsBackend rasterizes and presents scene buffers. Implementations
// begin life suspended (no window, no GPU resources) and activate when a
// window target is attached.
//
// RenderScene submits one complete frame. Resize while suspended is a
// silent no-op; resizing to zero dimensions is rejected. After
// ClearGraphicsContext the backend is suspended again and all graphics
// resources are released.
type GraphicsBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// RenderScene rasterizes the scene at the given surface size and
	// presents it.
	RenderScene(s *scene.Scene, width, height uint32) error

	// Resize reconfigures the presentation surface.
	Resize(width, height uint32) error

	// WithGraphicsAPI invokes fn with the backend's GPU handles, or with
	// nil when the backend is suspended or has no GPU.
	WithGraphicsAPI(fn func(api *GraphicsAPI)) error

	// ClearGraphicsContext releases all graphics resources and returns
	// the backend to the suspended state.
	ClearGraphicsContext()
}

// TextureReader is an optional capability of backends that can read GPU
// texture contents back to the CPU. Backends without it cause
// GPU-texture image sources to be skipped silently.
type TextureReader interface {
	// ReadTexture returns the texture's pixels as straight-alpha RGBA8.
	// ok is false when the texture cannot be read.
	ReadTexture(tex gpucontext.Texture) (width, height uint32, rgba []byte, ok bool)
}
