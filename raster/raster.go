// Package raster renders scene buffers on the CPU. It backs the software
// graphics backend and the GPU backend's intermediate target.
package raster

import (
	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/scene"
)

// layer is one entry of the compositing stack. Draw operations target the
// topmost layer; PopLayer composites it onto the layer below through its
// clip mask.
type layer struct {
	pix   *scenic.Pixmap
	clip  []float32 // per-pixel clip coverage in [0, 1], nil means full
	alpha float32
	blend scene.BlendMode
}

// Renderer rasterizes a scene into a pixmap. A Renderer can be reused
// across frames for targets of the same size.
type Renderer struct {
	width  int
	height int
	stack  []*layer

	// spare holds popped layers for reuse.
	spare []*layer
}

// NewRenderer creates a renderer for targets of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Render rasterizes the scene into target. The target must match the
// renderer's dimensions. Unbalanced layers left open by the scene are
// composited as if popped at the end.
func (r *Renderer) Render(s *scene.Scene, target *scenic.Pixmap) {
	r.stack = r.stack[:0]
	r.stack = append(r.stack, &layer{pix: target, alpha: 1})

	for _, op := range s.Ops() {
		switch op.Tag {
		case scene.OpFill:
			r.fillShape(op.Shape, op.Transform, op.Fill, op.Paint)
		case scene.OpStroke:
			r.strokeShape(op.Shape, op.Transform, &op.Stroke, op.Paint)
		case scene.OpPushLayer:
			r.pushLayer(op.Shape, op.Transform, op.Blend, op.Alpha)
		case scene.OpPopLayer:
			r.popLayer()
		case scene.OpBlurredRoundedRect:
			r.blurredRoundedRect(op.Transform, op.Rect, op.Radius, op.StdDev, op.Color)
		case scene.OpGlyphRun:
			r.glyphRun(op.Transform, op.Glyphs, op.Paint)
		}
	}

	for len(r.stack) > 1 {
		r.popLayer()
	}
}

// Render rasterizes the scene into target with a renderer sized for it.
func Render(s *scene.Scene, target *scenic.Pixmap) {
	NewRenderer(target.Width(), target.Height()).Render(s, target)
}

func (r *Renderer) top() *layer {
	return r.stack[len(r.stack)-1]
}

func (r *Renderer) pushLayer(clip scene.Shape, transform scenic.Affine,
	blend scene.BlendMode, alpha float32) {

	l := r.acquireLayer()
	l.alpha = alpha
	l.blend = blend
	if clip != nil {
		path := clip.ToPath()
		if path != nil && !path.IsEmpty() {
			cov := rasterizeNonZero(path.Transform(transform), r.width, r.height)
			l.clip = coverageToMask(cov, l.clip)
		}
	}
	r.stack = append(r.stack, l)
}

func (r *Renderer) acquireLayer() *layer {
	if n := len(r.spare); n > 0 {
		l := r.spare[n-1]
		r.spare = r.spare[:n-1]
		l.pix.Clear(scenic.Transparent)
		l.clip = nil
		return l
	}
	return &layer{pix: scenic.NewPixmap(r.width, r.height)}
}

func (r *Renderer) popLayer() {
	if len(r.stack) <= 1 {
		return
	}
	l := r.top()
	r.stack = r.stack[:len(r.stack)-1]
	dst := r.top()

	src := l.pix.Data()
	out := dst.pix.Data()
	for i := 0; i < len(src); i += 4 {
		f := l.alpha
		if l.clip != nil {
			f *= l.clip[i/4]
		}
		sr := mulUnit(src[i+0], f)
		sg := mulUnit(src[i+1], f)
		sb := mulUnit(src[i+2], f)
		sa := mulUnit(src[i+3], f)

		switch l.blend {
		case scene.BlendMultiply:
			out[i+0] = mulBlend(out[i+0], sr, sa)
			out[i+1] = mulBlend(out[i+1], sg, sa)
			out[i+2] = mulBlend(out[i+2], sb, sa)
		default:
			if sa == 0 {
				continue
			}
			inv := uint32(255 - sa)
			out[i+0] = sr + uint8((uint32(out[i+0])*inv+127)/255)
			out[i+1] = sg + uint8((uint32(out[i+1])*inv+127)/255)
			out[i+2] = sb + uint8((uint32(out[i+2])*inv+127)/255)
			out[i+3] = sa + uint8((uint32(out[i+3])*inv+127)/255)
		}
	}

	r.spare = append(r.spare, l)
}

func mulUnit(c uint8, f float32) uint8 {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		return 0
	}
	return uint8(float32(c)*f + 0.5)
}

// mulBlend multiplies source and destination channels, weighted by the
// source alpha so uncovered pixels keep the destination.
func mulBlend(d, s, sa uint8) uint8 {
	mult := uint8((uint32(d) * uint32(s)) / 255)
	inv := uint32(255 - sa)
	return mult + uint8((uint32(d)*inv+127)/255)
}
