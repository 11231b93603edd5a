package wgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/backend"
	"github.com/gogpu/scenic/scene"
)

func TestSuspendedBackend(t *testing.T) {
	b := NewSuspended()
	if b.Name() != backend.BackendWgpu {
		t.Errorf("Name() = %q, want %q", b.Name(), backend.BackendWgpu)
	}

	s := scene.NewScene()
	s.Fill(scene.FillNonZero, scenic.IdentityAffine(),
		scene.SolidPaint(scenic.RGB(255, 0, 0)), scene.NewRectShape(0, 0, 1, 1))
	if err := b.RenderScene(s, 10, 10); !errors.Is(err, backend.ErrSuspended) {
		t.Errorf("RenderScene = %v, want ErrSuspended", err)
	}

	// Resize while suspended is silently ignored.
	if err := b.Resize(100, 100); err != nil {
		t.Errorf("Resize while suspended = %v, want nil", err)
	}
}

func TestSuspendedWithGraphicsAPI(t *testing.T) {
	b := NewSuspended()
	called := false
	err := b.WithGraphicsAPI(func(api *backend.GraphicsAPI) {
		called = true
		if api != nil {
			t.Errorf("api = %v, want nil while suspended", api)
		}
	})
	if err != nil {
		t.Errorf("WithGraphicsAPI = %v", err)
	}
	if !called {
		t.Error("callback not invoked")
	}
}

func TestSetWindowTargetRejectsZeroSize(t *testing.T) {
	b := NewSuspended()
	if err := b.SetWindowTarget(nil, nil, 0, 10); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("SetWindowTarget(0, 10) = %v, want ErrInvalidSize", err)
	}
	if err := b.SetWindowTarget(nil, nil, 10, 0); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("SetWindowTarget(10, 0) = %v, want ErrInvalidSize", err)
	}
}

func TestGPUInfoStringSuspended(t *testing.T) {
	b := NewSuspended()
	if got := b.GPUInfoString(); got != "suspended" {
		t.Errorf("GPUInfoString() = %q, want %q", got, "suspended")
	}
}

func TestClearGraphicsContextIdempotent(t *testing.T) {
	b := NewSuspended()
	b.ClearGraphicsContext()
	b.ClearGraphicsContext()
	if b.GPUInfoString() != "suspended" {
		t.Errorf("GPUInfoString() = %q after clear", b.GPUInfoString())
	}
}

func TestRegisteredInBackendRegistry(t *testing.T) {
	if !backend.IsRegistered(backend.BackendWgpu) {
		t.Fatal("wgpu backend not registered")
	}
	if b := backend.Get(backend.BackendWgpu); b == nil || b.Name() != backend.BackendWgpu {
		t.Error("registry did not return a wgpu backend")
	}
}

type readableTexture struct {
	data []byte
	err  error
}

func (r *readableTexture) Width() int  { return 1 }
func (r *readableTexture) Height() int { return 1 }
func (r *readableTexture) ReadRGBA() (uint32, uint32, []byte, error) {
	return 1, 1, r.data, r.err
}

func TestReadTexture(t *testing.T) {
	b := NewSuspended()
	tex := &readableTexture{data: []byte{1, 2, 3, 4}}
	w, h, data, ok := b.ReadTexture(tex)
	if !ok || w != 1 || h != 1 || len(data) != 4 {
		t.Errorf("ReadTexture = (%d, %d, %d bytes, %v)", w, h, len(data), ok)
	}

	tex.err = errors.New("device lost")
	if _, _, _, ok := b.ReadTexture(tex); ok {
		t.Error("failing readback reported ok")
	}
}

func TestCompileShaderToSPIRVWordConversion(t *testing.T) {
	// Conversion only; an invalid source must not produce code.
	if code, err := compileShaderToSPIRV("not wgsl"); err == nil {
		t.Errorf("invalid WGSL compiled to %d words", len(code))
	}
}
