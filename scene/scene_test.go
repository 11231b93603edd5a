package scene

import (
	"testing"

	"github.com/gogpu/scenic"
)

func TestSceneRecordsOpsInOrder(t *testing.T) {
	s := NewScene()
	id := scenic.IdentityAffine()
	s.Fill(FillNonZero, id, SolidPaint(scenic.RGB(255, 0, 0)), NewRectShape(0, 0, 10, 10))
	s.PushLayer(BlendSourceOver, 0.5, id, NewRectShape(0, 0, 5, 5))
	s.Stroke(nil, id, SolidPaint(scenic.RGB(0, 255, 0)), NewRectShape(1, 1, 3, 3))
	s.PopLayer()

	want := []OpTag{OpFill, OpPushLayer, OpStroke, OpPopLayer}
	ops := s.Ops()
	if len(ops) != len(want) {
		t.Fatalf("len(ops) = %d, want %d", len(ops), len(want))
	}
	for i, tag := range want {
		if ops[i].Tag != tag {
			t.Errorf("ops[%d].Tag = %v, want %v", i, ops[i].Tag, tag)
		}
	}
}

func TestSceneResetKeepsAllocation(t *testing.T) {
	s := NewScene()
	id := scenic.IdentityAffine()
	for i := 0; i < 10; i++ {
		s.Fill(FillNonZero, id, SolidPaint(scenic.RGB(1, 2, 3)), NewRectShape(0, 0, 1, 1))
	}
	before := cap(s.ops)
	v := s.Version()

	s.Reset()
	if !s.IsEmpty() {
		t.Error("scene not empty after Reset")
	}
	if s.LayerDepth() != 0 {
		t.Errorf("LayerDepth = %d, want 0", s.LayerDepth())
	}
	if cap(s.ops) != before {
		t.Errorf("cap changed after Reset: %d -> %d", before, cap(s.ops))
	}
	if s.Version() <= v {
		t.Errorf("Version = %d, want > %d", s.Version(), v)
	}
}

func TestSceneLayerDepth(t *testing.T) {
	s := NewScene()
	id := scenic.IdentityAffine()
	clip := NewRectShape(0, 0, 10, 10)

	s.PushLayer(BlendSourceOver, 1, id, clip)
	s.PushLayer(BlendMultiply, 1, id, clip)
	if s.LayerDepth() != 2 {
		t.Errorf("LayerDepth = %d, want 2", s.LayerDepth())
	}
	s.PopLayer()
	s.PopLayer()
	if s.LayerDepth() != 0 {
		t.Errorf("LayerDepth = %d, want 0", s.LayerDepth())
	}

	// Popping at depth zero records nothing.
	n := len(s.Ops())
	s.PopLayer()
	if len(s.Ops()) != n {
		t.Error("PopLayer at depth 0 recorded an op")
	}
	if s.LayerDepth() != 0 {
		t.Errorf("LayerDepth went negative: %d", s.LayerDepth())
	}
}

func TestPushLayerClampsAlpha(t *testing.T) {
	s := NewScene()
	id := scenic.IdentityAffine()
	s.PushLayer(BlendSourceOver, 1.5, id, NewRectShape(0, 0, 1, 1))
	s.PushLayer(BlendSourceOver, -0.5, id, NewRectShape(0, 0, 1, 1))
	if a := s.Ops()[0].Alpha; a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
	if a := s.Ops()[1].Alpha; a != 0 {
		t.Errorf("alpha = %v, want 0", a)
	}
}

func TestSceneNilShapeIgnored(t *testing.T) {
	s := NewScene()
	id := scenic.IdentityAffine()
	s.Fill(FillNonZero, id, SolidPaint(scenic.RGB(1, 1, 1)), nil)
	s.Stroke(nil, id, SolidPaint(scenic.RGB(1, 1, 1)), nil)
	if !s.IsEmpty() {
		t.Errorf("nil shapes recorded %d ops", len(s.Ops()))
	}
}

func TestStrokeDefaultStyle(t *testing.T) {
	s := NewScene()
	s.Stroke(nil, scenic.IdentityAffine(), SolidPaint(scenic.RGB(1, 1, 1)),
		NewRectShape(0, 0, 1, 1))
	st := s.Ops()[0].Stroke
	if st.Width != 1 || st.MiterLimit != 4 || st.Cap != CapButt || st.Join != JoinMiter {
		t.Errorf("default stroke = %+v", st)
	}
}

func TestDrawBlurredRoundedRectGuards(t *testing.T) {
	s := NewScene()
	id := scenic.IdentityAffine()
	rect := scenic.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	s.DrawBlurredRoundedRect(id, scenic.EmptyRect(), 2, 4, scenic.RGB(0, 0, 0))
	s.DrawBlurredRoundedRect(id, rect, 2, 4, scenic.Transparent)
	if !s.IsEmpty() {
		t.Fatalf("guarded draws recorded %d ops", len(s.Ops()))
	}

	s.DrawBlurredRoundedRect(id, rect, 2, 4, scenic.RGB(0, 0, 0))
	op := s.Ops()[0]
	if op.Tag != OpBlurredRoundedRect || op.StdDev != 4 || op.Radius != 2 {
		t.Errorf("op = %+v", op)
	}
}

func TestVersionIncrementsOnMutation(t *testing.T) {
	s := NewScene()
	v := s.Version()
	s.Fill(FillNonZero, scenic.IdentityAffine(), SolidPaint(scenic.RGB(1, 1, 1)),
		NewRectShape(0, 0, 1, 1))
	if s.Version() == v {
		t.Error("Fill did not bump the version")
	}
}
