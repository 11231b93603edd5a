// Command scenicdemo renders a small item tree through the software
// backend and saves the result as a PNG.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/scenic"
	"github.com/gogpu/scenic/backend"
	"github.com/gogpu/scenic/render"
)

func main() {
	var (
		width  = flag.Int("width", 800, "window width in pixels")
		height = flag.Int("height", 600, "window height in pixels")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	sw := backend.NewSoftware()
	if err := sw.Activate(uint32(*width), uint32(*height)); err != nil {
		log.Fatalf("Failed to activate backend: %v", err)
	}

	renderer := render.New(sw)
	defer renderer.Close()

	win := &demoWindow{width: uint32(*width), height: uint32(*height)}
	renderer.SetWindowProvider(win)

	if err := renderer.Render(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := sw.Target().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)", *output, *width, *height)
}

// demoWindow is a fixed window presenting a handful of primitives.
type demoWindow struct {
	width, height uint32
}

func (w *demoWindow) Window() (render.Window, bool) { return w, true }

func (w *demoWindow) Size() (uint32, uint32) { return w.width, w.height }

func (w *demoWindow) ScaleFactor() float32 { return 1 }

func (w *demoWindow) Background() scenic.Brush {
	return scenic.NewLinearGradient(180, []scenic.GradientStop{
		{Offset: 0, Color: scenic.RGB(26, 51, 102)},
		{Offset: 1, Color: scenic.RGB(128, 128, 153)},
	})
}

func (w *demoWindow) Components() []render.ItemTreeRoot {
	card := &borderedItem{
		item: item{
			pos:  scenic.Point{X: 60, Y: 60},
			size: scenic.Size{Width: 320, Height: 200},
		},
		background:   scenic.SolidBrush(scenic.RGBA(255, 255, 255, 230)),
		borderBrush:  scenic.SolidBrush(scenic.RGB(40, 40, 60)),
		borderWidth:  4,
		borderRadius: 16,
	}
	card.children = []render.Item{
		&rectangleItem{
			item: item{
				pos:  scenic.Point{X: 24, Y: 24},
				size: scenic.Size{Width: 120, Height: 80},
			},
			background: scenic.SolidBrush(scenic.RGB(220, 60, 60)),
		},
		&rectangleItem{
			item: item{
				pos:  scenic.Point{X: 100, Y: 64},
				size: scenic.Size{Width: 120, Height: 80},
			},
			background: scenic.SolidBrush(scenic.RGBA(60, 180, 90, 200)),
		},
	}

	shadow := &shadowItem{
		item: item{
			pos:  scenic.Point{X: 60, Y: 320},
			size: scenic.Size{Width: 200, Height: 120},
		},
		color:  scenic.RGBA(0, 0, 0, 160),
		blur:   24,
		radius: 12,
	}

	return []render.ItemTreeRoot{
		{Root: shadow},
		{Root: card},
	}
}

// item carries the shared geometry of the demo items.
type item struct {
	pos      scenic.Point
	size     scenic.Size
	children []render.Item
}

func (i *item) Position() scenic.Point  { return i.pos }
func (i *item) Size() scenic.Size       { return i.size }
func (i *item) Children() []render.Item { return i.children }

type rectangleItem struct {
	item
	background scenic.Brush
}

func (r *rectangleItem) Background() scenic.Brush { return r.background }

type borderedItem struct {
	item
	background   scenic.Brush
	borderBrush  scenic.Brush
	borderWidth  float32
	borderRadius float32
}

func (b *borderedItem) Background() scenic.Brush  { return b.background }
func (b *borderedItem) BorderBrush() scenic.Brush { return b.borderBrush }
func (b *borderedItem) BorderWidth() float32      { return b.borderWidth }
func (b *borderedItem) BorderRadius() float32     { return b.borderRadius }

type shadowItem struct {
	item
	color  scenic.Color
	blur   float32
	radius float32
}

func (s *shadowItem) ShadowColor() scenic.Color    { return s.color }
func (s *shadowItem) ShadowOffset() (x, y float32) { return 8, 8 }
func (s *shadowItem) Blur() float32                { return s.blur }
func (s *shadowItem) ShadowRadius() float32        { return s.radius }
