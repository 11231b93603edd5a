// Package render drives the retained-scene rendering pipeline: it walks
// a window's item tree through an ItemRenderer, accumulates the result
// in a scene buffer, and submits the finished scene to a graphics
// backend once per frame.
package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/backend"
	"github.com/gogpu/scenic/scene"
)

// ErrNotAttached is returned by Render when the renderer has no window,
// or its window provider no longer resolves one.
var ErrNotAttached = errors.New("render: renderer is not attached to a window")

// Renderer is the per-window frame orchestrator. It owns the scene
// buffer, the image cache, and the notifier slot. A Renderer is not safe
// for concurrent use; one Render call runs the full walk-then-submit
// sequence before returning.
type Renderer struct {
	backend  backend.GraphicsBackend
	provider WindowProvider
	notifier RenderingNotifier
	scene    *scene.Scene
	cache    *ImageCache
	metrics  *metricsCollector

	firstFrame bool
}

// New creates a renderer submitting to the given graphics backend.
func New(b backend.GraphicsBackend) *Renderer {
	return &Renderer{
		backend:    b,
		scene:      scene.NewScene(),
		cache:      NewImageCache(),
		firstFrame: true,
	}
}

// Backend returns the graphics backend the renderer submits to.
func (r *Renderer) Backend() backend.GraphicsBackend {
	return r.backend
}

// SetWindowProvider attaches the renderer to a window through a
// non-owning provider. The provider is resolved at the start of every
// frame; the renderer never keeps the window alive.
func (r *Renderer) SetWindowProvider(p WindowProvider) {
	r.provider = p
}

// SetRenderingNotifier registers the frame lifecycle callback. Only one
// notifier may be registered; a second registration returns
// ErrNotifierAlreadySet and leaves the first in place.
func (r *Renderer) SetRenderingNotifier(n RenderingNotifier) error {
	if r.notifier != nil {
		return ErrNotifierAlreadySet
	}
	r.notifier = n
	return nil
}

// Render draws one frame: walk the window's item trees into the scene
// buffer and submit it to the backend. A window with a zero dimension
// renders nothing and succeeds.
func (r *Renderer) Render() error {
	if err := r.setupFirstFrame(); err != nil {
		return err
	}

	win, err := r.window()
	if err != nil {
		return err
	}
	width, height := win.Size()
	if width == 0 || height == 0 {
		return nil
	}

	return r.renderFrame(win, width, height, scenic.IdentityAffine(), nil)
}

// RenderRotated draws one frame with a whole-frame rotation and
// translation applied first, for rotated physical displays. The size is
// the physical output size. postRender, when non-nil, runs after the
// item tree walk and before submission, e.g. to draw a software cursor.
func (r *Renderer) RenderRotated(rotationDegrees float32, translation scenic.Vector,
	width, height uint32, postRender func(*ItemRenderer)) error {

	if err := r.setupFirstFrame(); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	win, err := r.window()
	if err != nil {
		return err
	}

	initial := scenic.IdentityAffine()
	if rotationDegrees != 0 {
		initial = scenic.TranslateAffine(translation.X, translation.Y).
			Multiply(scenic.RotateAffine(rotationDegrees * math32.Pi / 180))
	}

	return r.renderFrame(win, width, height, initial, postRender)
}

func (r *Renderer) renderFrame(win Window, width, height uint32,
	initial scenic.Affine, postRender func(*ItemRenderer)) error {

	scaleFactor := win.ScaleFactor()
	if scaleFactor <= 0 {
		scaleFactor = 1
	}

	r.scene.Reset()

	// A solid window background becomes a plain clear fill; gradient
	// backgrounds are drawn as a regular rectangle below.
	background := win.Background()
	solidBackground := background.Kind == scenic.BrushSolid
	if solidBackground {
		r.scene.Fill(scene.FillNonZero, scenic.IdentityAffine(),
			scene.SolidPaint(background.Color),
			scene.NewRectShape(0, 0, float32(width), float32(height)))
	}

	// The scene buffer must not be in use while the notifier runs; the
	// callback may issue its own backend work.
	if err := r.notify(BeforeRendering); err != nil {
		return err
	}

	logicalSize := scenic.Size{Width: float32(width), Height: float32(height)}
	ir := NewItemRendererWithTransform(r.scene, r.cache, logicalSize, scaleFactor, initial)
	if tr, ok := r.backend.(backend.TextureReader); ok {
		ir.SetTextureReader(tr.ReadTexture)
	}

	if !solidBackground && !background.IsTransparent() {
		ir.DrawRectangle(background, scenic.Size{
			Width:  float32(width) / scaleFactor,
			Height: float32(height) / scaleFactor,
		})
	}

	for _, root := range win.Components() {
		if root.Root == nil {
			continue
		}
		RenderItemTree(ir, root.Root, root.Origin)
	}

	if postRender != nil {
		postRender(ir)
	}

	if r.metrics != nil {
		r.metrics.measureFrame()
	}

	if err := r.backend.RenderScene(r.scene, width, height); err != nil {
		return fmt.Errorf("render: scene submission failed: %w", err)
	}

	return r.notify(AfterRendering)
}

// Resize forwards the new physical size to the backend. A zero dimension
// is ignored; resizing a suspended backend is a silent no-op.
func (r *Renderer) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	return r.backend.Resize(width, height)
}

// ClearGraphicsContext drops the image cache and releases the backend's
// GPU resources, returning it to the suspended state.
func (r *Renderer) ClearGraphicsContext() {
	r.cache.Clear()
	r.backend.ClearGraphicsContext()
}

// Close tears the renderer down: the teardown notification fires if any
// frame was ever set up, then all graphics resources are released.
func (r *Renderer) Close() error {
	if !r.firstFrame {
		_ = r.notify(RenderingTeardown)
	}
	if r.metrics != nil {
		r.metrics.report()
		r.metrics = nil
	}
	r.ClearGraphicsContext()
	return nil
}

func (r *Renderer) setupFirstFrame() error {
	if !r.firstFrame {
		return nil
	}
	r.firstFrame = false
	r.metrics = newMetricsCollector(r.backend.Name())
	return r.notify(RenderingSetup)
}

// notify delivers a lifecycle notification with the backend's graphics
// API handles, when available.
func (r *Renderer) notify(state RenderingState) error {
	if r.notifier == nil {
		return nil
	}
	return r.backend.WithGraphicsAPI(func(api *backend.GraphicsAPI) {
		r.notifier.Notify(state, api)
	})
}

func (r *Renderer) window() (Window, error) {
	if r.provider == nil {
		return nil, ErrNotAttached
	}
	win, ok := r.provider.Window()
	if !ok || win == nil {
		return nil, ErrNotAttached
	}
	return win, nil
}
