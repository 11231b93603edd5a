package render

import (
	"errors"
	"testing"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/backend"
	"github.com/gogpu/scenic/scene"
)

// recordingBackend captures submitted scenes for inspection.
type recordingBackend struct {
	submissions int
	lastOps     []scene.Op
	lastWidth   uint32
	lastHeight  uint32
	resizes     [][2]uint32
	cleared     int
	renderErr   error
}

func (b *recordingBackend) Name() string { return "recording" }

func (b *recordingBackend) RenderScene(s *scene.Scene, width, height uint32) error {
	if b.renderErr != nil {
		return b.renderErr
	}
	b.submissions++
	b.lastOps = append(b.lastOps[:0], s.Ops()...)
	b.lastWidth, b.lastHeight = width, height
	return nil
}

func (b *recordingBackend) Resize(width, height uint32) error {
	b.resizes = append(b.resizes, [2]uint32{width, height})
	return nil
}

func (b *recordingBackend) WithGraphicsAPI(fn func(*backend.GraphicsAPI)) error {
	fn(nil)
	return nil
}

func (b *recordingBackend) ClearGraphicsContext() { b.cleared++ }

// testWindow is a fixed-size window with configurable content.
type testWindow struct {
	width, height uint32
	scaleFactor   float32
	background    scenic.Brush
	roots         []ItemTreeRoot
}

func (w *testWindow) Size() (uint32, uint32)     { return w.width, w.height }
func (w *testWindow) ScaleFactor() float32       { return w.scaleFactor }
func (w *testWindow) Background() scenic.Brush   { return w.background }
func (w *testWindow) Components() []ItemTreeRoot { return w.roots }

type staticProvider struct {
	win  Window
	gone bool
}

func (p *staticProvider) Window() (Window, bool) {
	if p.gone {
		return nil, false
	}
	return p.win, true
}

// rectItem is a plain filled rectangle item.
type rectItem struct {
	pos        scenic.Point
	size       scenic.Size
	background scenic.Brush
	children   []Item
}

func (r *rectItem) Position() scenic.Point   { return r.pos }
func (r *rectItem) Size() scenic.Size        { return r.size }
func (r *rectItem) Children() []Item         { return r.children }
func (r *rectItem) Background() scenic.Brush { return r.background }

func newTestWindow(width, height uint32) *testWindow {
	return &testWindow{
		width:       width,
		height:      height,
		scaleFactor: 1,
		background:  scenic.SolidBrush(scenic.RGB(255, 255, 255)),
	}
}

func attachedRenderer(win *testWindow) (*Renderer, *recordingBackend) {
	b := &recordingBackend{}
	r := New(b)
	r.SetWindowProvider(&staticProvider{win: win})
	return r, b
}

func TestRenderNotAttached(t *testing.T) {
	r := New(&recordingBackend{})
	if err := r.Render(); !errors.Is(err, ErrNotAttached) {
		t.Errorf("Render() error = %v, want ErrNotAttached", err)
	}
}

func TestRenderWindowGone(t *testing.T) {
	b := &recordingBackend{}
	r := New(b)
	r.SetWindowProvider(&staticProvider{gone: true})
	if err := r.Render(); !errors.Is(err, ErrNotAttached) {
		t.Errorf("Render() error = %v, want ErrNotAttached", err)
	}
}

func TestRenderZeroSizeWindowNoop(t *testing.T) {
	r, b := attachedRenderer(newTestWindow(0, 100))
	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v, want success", err)
	}
	if b.submissions != 0 {
		t.Errorf("submissions = %d, want 0 for zero-size window", b.submissions)
	}
}

func TestRenderSolidBackgroundClearFill(t *testing.T) {
	win := newTestWindow(120, 80)
	win.background = scenic.SolidBrush(scenic.RGB(16, 32, 48))
	r, b := attachedRenderer(win)

	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b.submissions != 1 {
		t.Fatalf("submissions = %d, want 1", b.submissions)
	}
	if len(b.lastOps) == 0 {
		t.Fatal("no operations submitted")
	}
	first := b.lastOps[0]
	if first.Tag != scene.OpFill {
		t.Fatalf("first op = %v, want background fill", first.Tag)
	}
	bounds := first.Shape.Bounds()
	if bounds.MaxX != 120 || bounds.MaxY != 80 {
		t.Errorf("background bounds = %+v, want window size", bounds)
	}
	if first.Paint.Color != scenic.RGB(16, 32, 48) {
		t.Errorf("background color = %+v", first.Paint.Color)
	}
}

func TestRenderGradientBackgroundAsRectangle(t *testing.T) {
	win := newTestWindow(100, 100)
	win.background = scenic.NewLinearGradient(45, []scenic.GradientStop{
		{Offset: 0, Color: scenic.RGB(255, 0, 0)},
		{Offset: 1, Color: scenic.RGB(0, 0, 255)},
	})
	r, b := attachedRenderer(win)

	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(b.lastOps) != 1 {
		t.Fatalf("op count = %d, want 1 gradient rectangle", len(b.lastOps))
	}
	if b.lastOps[0].Paint.Kind != scene.PaintLinearGradient {
		t.Errorf("paint kind = %v, want linear gradient", b.lastOps[0].Paint.Kind)
	}
}

func TestRenderEndToEndRedRectangle(t *testing.T) {
	win := newTestWindow(200, 200)
	win.background = scenic.SolidBrush(scenic.Transparent)
	win.roots = []ItemTreeRoot{{
		Root: &rectItem{
			size:       scenic.Size{Width: 100, Height: 100},
			background: scenic.SolidBrush(scenic.RGB(255, 0, 0)),
		},
	}}
	r, b := attachedRenderer(win)

	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var fill *scene.Op
	for i := range b.lastOps {
		if b.lastOps[i].Tag == scene.OpFill && b.lastOps[i].Paint.Color == scenic.RGB(255, 0, 0) {
			fill = &b.lastOps[i]
		}
	}
	if fill == nil {
		t.Fatal("red rectangle fill not submitted")
	}
	bounds := fill.Shape.Bounds()
	want := scenic.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	if bounds != want {
		t.Errorf("fill bounds = %+v, want %+v", bounds, want)
	}
	if fill.Paint.Color.A != 255 {
		t.Errorf("fill alpha = %d, want 255", fill.Paint.Color.A)
	}
}

func TestRenderItemOffsets(t *testing.T) {
	win := newTestWindow(200, 200)
	win.background = scenic.SolidBrush(scenic.Transparent)
	child := &rectItem{
		pos:        scenic.Point{X: 5, Y: 5},
		size:       scenic.Size{Width: 10, Height: 10},
		background: scenic.SolidBrush(scenic.RGB(0, 255, 0)),
	}
	win.roots = []ItemTreeRoot{{
		Root: &rectItem{
			pos:        scenic.Point{X: 20, Y: 20},
			size:       scenic.Size{Width: 50, Height: 50},
			background: scenic.SolidBrush(scenic.RGB(255, 0, 0)),
			children:   []Item{child},
		},
		Origin: scenic.Point{X: 100, Y: 0},
	}}
	r, b := attachedRenderer(win)

	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var childFill *scene.Op
	for i := range b.lastOps {
		if b.lastOps[i].Paint.Color == scenic.RGB(0, 255, 0) {
			childFill = &b.lastOps[i]
		}
	}
	if childFill == nil {
		t.Fatal("child fill not submitted")
	}
	// Origin 100 + parent 20 + child 5.
	x, y := childFill.Transform.TransformPoint(0, 0)
	if x != 125 || y != 25 {
		t.Errorf("child origin = (%v,%v), want (125,25)", x, y)
	}
}

func TestSetRenderingNotifierTwice(t *testing.T) {
	r := New(&recordingBackend{})
	first := RenderingNotifierFunc(func(RenderingState, *backend.GraphicsAPI) {})
	if err := r.SetRenderingNotifier(first); err != nil {
		t.Fatalf("first registration error = %v", err)
	}
	second := RenderingNotifierFunc(func(RenderingState, *backend.GraphicsAPI) {})
	if err := r.SetRenderingNotifier(second); !errors.Is(err, ErrNotifierAlreadySet) {
		t.Errorf("second registration error = %v, want ErrNotifierAlreadySet", err)
	}
}

func TestRenderLifecycleNotifications(t *testing.T) {
	win := newTestWindow(100, 100)
	r, _ := attachedRenderer(win)

	var states []RenderingState
	err := r.SetRenderingNotifier(RenderingNotifierFunc(
		func(state RenderingState, api *backend.GraphicsAPI) {
			states = append(states, state)
		}))
	if err != nil {
		t.Fatalf("SetRenderingNotifier() error = %v", err)
	}

	if err := r.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := []RenderingState{RenderingSetup, BeforeRendering, AfterRendering}
	if len(states) != len(want) {
		t.Fatalf("notification count = %d, want %d", len(states), len(want))
	}
	for i, s := range want {
		if states[i] != s {
			t.Errorf("notification %d = %v, want %v", i, states[i], s)
		}
	}

	// Second frame has no setup notification.
	states = states[:0]
	if err := r.Render(); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if len(states) != 2 || states[0] != BeforeRendering || states[1] != AfterRendering {
		t.Errorf("second frame notifications = %v", states)
	}

	// Teardown fires on close after rendering.
	states = states[:0]
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if len(states) != 1 || states[0] != RenderingTeardown {
		t.Errorf("close notifications = %v, want teardown", states)
	}
}

func TestCloseWithoutRenderSkipsTeardown(t *testing.T) {
	r := New(&recordingBackend{})
	fired := false
	_ = r.SetRenderingNotifier(RenderingNotifierFunc(
		func(state RenderingState, api *backend.GraphicsAPI) { fired = true }))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if fired {
		t.Error("teardown fired for a renderer that never rendered")
	}
}

func TestResizeZeroIgnored(t *testing.T) {
	r, b := attachedRenderer(newTestWindow(100, 100))
	if err := r.Resize(0, 100); err != nil {
		t.Fatalf("Resize(0, 100) error = %v", err)
	}
	if err := r.Resize(100, 0); err != nil {
		t.Fatalf("Resize(100, 0) error = %v", err)
	}
	if len(b.resizes) != 0 {
		t.Errorf("backend resizes = %v, want none", b.resizes)
	}
	if err := r.Resize(64, 48); err != nil {
		t.Fatalf("Resize(64, 48) error = %v", err)
	}
	if len(b.resizes) != 1 || b.resizes[0] != [2]uint32{64, 48} {
		t.Errorf("backend resizes = %v, want [[64 48]]", b.resizes)
	}
}

func TestClearGraphicsContextDropsCache(t *testing.T) {
	r, b := attachedRenderer(newTestWindow(100, 100))

	buf := solidBuffer(2, 2, 1, 1, 1, 255)
	before := r.cache.Get(buf)

	r.ClearGraphicsContext()
	if b.cleared != 1 {
		t.Errorf("backend clears = %d, want 1", b.cleared)
	}
	if after := r.cache.Get(buf); after == before {
		t.Error("image cache survived ClearGraphicsContext")
	}
}

func TestRenderBackendErrorPropagates(t *testing.T) {
	win := newTestWindow(100, 100)
	r, b := attachedRenderer(win)
	b.renderErr = backend.ErrSuspended

	if err := r.Render(); !errors.Is(err, backend.ErrSuspended) {
		t.Errorf("Render() error = %v, want wrapped backend error", err)
	}
}

func TestRenderRotatedPostCallback(t *testing.T) {
	win := newTestWindow(100, 200)
	win.background = scenic.SolidBrush(scenic.Transparent)
	r, b := attachedRenderer(win)

	called := false
	err := r.RenderRotated(90, scenic.Vector{X: 200, Y: 0}, 200, 100,
		func(ir *ItemRenderer) {
			called = true
			ir.DrawRectangle(scenic.SolidBrush(scenic.RGB(1, 2, 3)),
				scenic.Size{Width: 4, Height: 4})
		})
	if err != nil {
		t.Fatalf("RenderRotated() error = %v", err)
	}
	if !called {
		t.Error("post-render callback not invoked")
	}
	if b.lastWidth != 200 || b.lastHeight != 100 {
		t.Errorf("submitted size = %dx%d, want 200x100", b.lastWidth, b.lastHeight)
	}

	var fill *scene.Op
	for i := range b.lastOps {
		if b.lastOps[i].Paint.Color == scenic.RGB(1, 2, 3) {
			fill = &b.lastOps[i]
		}
	}
	if fill == nil {
		t.Fatal("post-render fill not submitted")
	}
	// The whole-frame transform rotates the origin onto (200, 0).
	x, y := fill.Transform.TransformPoint(0, 0)
	const eps = 1e-3
	if x < 200-eps || x > 200+eps || y < -eps || y > eps {
		t.Errorf("rotated origin = (%v,%v), want (200,0)", x, y)
	}
}

func TestRenderRotatedZeroRotationIdentity(t *testing.T) {
	win := newTestWindow(100, 100)
	win.background = scenic.SolidBrush(scenic.Transparent)
	win.roots = []ItemTreeRoot{{
		Root: &rectItem{
			size:       scenic.Size{Width: 10, Height: 10},
			background: scenic.SolidBrush(scenic.RGB(9, 9, 9)),
		},
	}}
	r, b := attachedRenderer(win)

	if err := r.RenderRotated(0, scenic.Vector{}, 100, 100, nil); err != nil {
		t.Fatalf("RenderRotated() error = %v", err)
	}
	// One background clear fill plus the item fill.
	if len(b.lastOps) != 2 {
		t.Fatalf("op count = %d, want 2", len(b.lastOps))
	}
	itemFill := b.lastOps[len(b.lastOps)-1]
	if itemFill.Paint.Color != scenic.RGB(9, 9, 9) {
		t.Errorf("last op color = %+v, want the item fill", itemFill.Paint.Color)
	}
	if !itemFill.Transform.IsIdentity() {
		t.Errorf("transform = %+v, want identity for 0 rotation", itemFill.Transform)
	}
}
