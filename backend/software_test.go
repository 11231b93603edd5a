package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

func redScene() *scene.Scene {
	s := scene.NewScene()
	s.Fill(scene.FillNonZero, scenic.IdentityAffine(),
		scene.SolidPaint(scenic.RGB(255, 0, 0)),
		scene.NewRectShape(0, 0, 10, 10))
	return s
}

func TestSoftwareSuspended(t *testing.T) {
	b := NewSoftware()
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
	if err := b.RenderScene(redScene(), 10, 10); !errors.Is(err, ErrSuspended) {
		t.Errorf("RenderScene while suspended = %v, want ErrSuspended", err)
	}
	if b.Target() != nil {
		t.Error("suspended backend has a target")
	}
	// Resize while suspended is silently ignored.
	if err := b.Resize(100, 100); err != nil {
		t.Errorf("Resize while suspended = %v, want nil", err)
	}
}

func TestSoftwareActivateRejectsZero(t *testing.T) {
	b := NewSoftware()
	if err := b.Activate(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Activate(0, 10) = %v, want ErrInvalidSize", err)
	}
	if err := b.Activate(10, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Activate(10, 0) = %v, want ErrInvalidSize", err)
	}
}

func TestSoftwareRenderScene(t *testing.T) {
	b := NewSoftware()
	if err := b.Activate(20, 20); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := b.RenderScene(redScene(), 20, 20); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	if got := b.Target().GetPixel(5, 5); got != scenic.RGB(255, 0, 0) {
		t.Errorf("rendered pixel = %v, want red", got)
	}
	if got := b.Target().GetPixel(15, 15); got != scenic.Transparent {
		t.Errorf("uncovered pixel = %v, want transparent", got)
	}
}

func TestSoftwareRenderSceneZeroSize(t *testing.T) {
	b := NewSoftware()
	if err := b.Activate(10, 10); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := b.RenderScene(redScene(), 0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width = %v, want ErrInvalidSize", err)
	}
}

func TestSoftwareRenderSceneResizesTarget(t *testing.T) {
	b := NewSoftware()
	if err := b.Activate(10, 10); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := b.RenderScene(redScene(), 30, 25); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	tgt := b.Target()
	if tgt.Width() != 30 || tgt.Height() != 25 {
		t.Errorf("target = %dx%d, want 30x25", tgt.Width(), tgt.Height())
	}
}

func TestSoftwarePresentCallback(t *testing.T) {
	b := NewSoftware()
	if err := b.Activate(10, 10); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	var presented *scenic.Pixmap
	b.SetPresentCallback(func(p *scenic.Pixmap) { presented = p })
	if err := b.RenderScene(redScene(), 10, 10); err != nil {
		t.Fatalf("RenderScene: %v", err)
	}
	if presented == nil {
		t.Fatal("present callback not invoked")
	}
	if got := presented.GetPixel(5, 5); got != scenic.RGB(255, 0, 0) {
		t.Errorf("presented pixel = %v, want red", got)
	}
}

func TestSoftwareResize(t *testing.T) {
	b := NewSoftware()
	if err := b.Activate(10, 10); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := b.Resize(0, 5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 5) = %v, want ErrInvalidSize", err)
	}
	if err := b.Resize(40, 50); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if b.Target().Width() != 40 || b.Target().Height() != 50 {
		t.Errorf("target = %dx%d, want 40x50", b.Target().Width(), b.Target().Height())
	}
}

func TestSoftwareWithGraphicsAPINil(t *testing.T) {
	b := NewSoftware()
	called := false
	err := b.WithGraphicsAPI(func(api *GraphicsAPI) {
		called = true
		if api != nil {
			t.Errorf("api = %v, want nil for CPU backend", api)
		}
	})
	if err != nil {
		t.Errorf("WithGraphicsAPI = %v", err)
	}
	if !called {
		t.Error("callback not invoked")
	}
}

func TestSoftwareClearGraphicsContext(t *testing.T) {
	b := NewSoftware()
	if err := b.Activate(10, 10); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	b.ClearGraphicsContext()
	if b.Target() != nil {
		t.Error("target survived ClearGraphicsContext")
	}
	if err := b.RenderScene(redScene(), 10, 10); !errors.Is(err, ErrSuspended) {
		t.Errorf("RenderScene after clear = %v, want ErrSuspended", err)
	}
}

type fakeTexture struct {
	w, h uint32
}

func (f *fakeTexture) Width() int  { return int(f.w) }
func (f *fakeTexture) Height() int { return int(f.h) }

type fakeReadableTexture struct {
	fakeTexture
	data []byte
	err  error
}

func (f *fakeReadableTexture) ReadRGBA() (uint32, uint32, []byte, error) {
	return f.w, f.h, f.data, f.err
}

func TestSoftwareReadTexture(t *testing.T) {
	b := NewSoftware()
	tex := &fakeReadableTexture{fakeTexture: fakeTexture{w: 2, h: 1}, data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	w, h, data, ok := b.ReadTexture(tex)
	if !ok || w != 2 || h != 1 || len(data) != 8 {
		t.Errorf("ReadTexture = (%d, %d, %d bytes, %v)", w, h, len(data), ok)
	}

	if _, _, _, ok := b.ReadTexture(&fakeTexture{}); ok {
		t.Error("non-readable texture reported ok")
	}

	tex.err = errors.New("device lost")
	if _, _, _, ok := b.ReadTexture(tex); ok {
		t.Error("failing readback reported ok")
	}
}
