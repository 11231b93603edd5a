package scenic

// ImageFit controls how image content is mapped into its target area.
type ImageFit uint8

const (
	// FitFill stretches the source to cover the target exactly,
	// ignoring aspect ratio.
	FitFill ImageFit = iota
	// FitContain scales uniformly so the whole source is visible.
	FitContain
	// FitCover scales uniformly so the target is fully covered,
	// clipping the source as needed.
	FitCover
	// FitPreserve maps source pixels 1:1 at the display scale factor.
	FitPreserve
)

// HorizontalAlignment positions undersized or oversized content on the
// horizontal axis.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignHCenter
	AlignRight
)

func (a HorizontalAlignment) factor() float32 {
	switch a {
	case AlignHCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// VerticalAlignment positions undersized or oversized content on the
// vertical axis.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignVCenter
	AlignBottom
)

func (a VerticalAlignment) factor() float32 {
	switch a {
	case AlignVCenter:
		return 0.5
	case AlignBottom:
		return 1
	default:
		return 0
	}
}

// FitResult describes how to place a source region into a target area:
// where the displayed content starts, how large it appears, the source to
// target scale on each axis, and which source pixels to sample.
type FitResult struct {
	Offset          Point // target-space placement of the content
	Size            Size  // displayed size in target units
	SourceToTargetX float32
	SourceToTargetY float32
	ClipRect        IntRect // source pixels to sample
}

// IsEmpty reports whether the fitted content has no visible area.
func (f FitResult) IsEmpty() bool {
	return f.Size.IsEmpty() || f.ClipRect.IsEmpty()
}

// Fit computes the placement of a source region inside a target area for
// the given fit mode. scaleFactor is the display's physical pixel ratio
// and only affects FitPreserve.
func Fit(fit ImageFit, target Size, source IntRect, scaleFactor float32,
	halign HorizontalAlignment, valign VerticalAlignment) FitResult {

	srcW := float32(source.Width())
	srcH := float32(source.Height())
	if srcW <= 0 || srcH <= 0 || target.IsEmpty() {
		return FitResult{ClipRect: source}
	}

	result := FitResult{
		ClipRect:        source,
		SourceToTargetX: target.Width / srcW,
		SourceToTargetY: target.Height / srcH,
		Size:            target,
	}

	switch fit {
	case FitFill:
		// Stretch both axes independently.

	case FitCover:
		ratio := result.SourceToTargetX
		if result.SourceToTargetY > ratio {
			ratio = result.SourceToTargetY
		}
		if srcW > target.Width/ratio {
			clipW := target.Width / ratio
			result.ClipRect.MinX += int32((srcW - clipW) * halign.factor())
			result.ClipRect.MaxX = result.ClipRect.MinX + int32(clipW+0.5)
		}
		if srcH > target.Height/ratio {
			clipH := target.Height / ratio
			result.ClipRect.MinY += int32((srcH - clipH) * valign.factor())
			result.ClipRect.MaxY = result.ClipRect.MinY + int32(clipH+0.5)
		}
		result.SourceToTargetX = ratio
		result.SourceToTargetY = ratio

	case FitContain:
		ratio := result.SourceToTargetX
		if result.SourceToTargetY < ratio {
			ratio = result.SourceToTargetY
		}
		if srcW < target.Width/ratio {
			result.Size.Width = srcW * ratio
			result.Offset.X += (target.Width - result.Size.Width) * halign.factor()
		}
		if srcH < target.Height/ratio {
			result.Size.Height = srcH * ratio
			result.Offset.Y += (target.Height - result.Size.Height) * valign.factor()
		}
		result.SourceToTargetX = ratio
		result.SourceToTargetY = ratio

	case FitPreserve:
		ratio := scaleFactor
		if ratio <= 0 {
			ratio = 1
		}
		if srcW < target.Width/ratio {
			result.Size.Width = srcW * ratio
			result.Offset.X += (target.Width - result.Size.Width) * halign.factor()
		} else {
			clipW := target.Width / ratio
			result.ClipRect.MinX += int32((srcW - clipW) * halign.factor())
			result.ClipRect.MaxX = result.ClipRect.MinX + int32(clipW+0.5)
		}
		if srcH < target.Height/ratio {
			result.Size.Height = srcH * ratio
			result.Offset.Y += (target.Height - result.Size.Height) * valign.factor()
		} else {
			clipH := target.Height / ratio
			result.ClipRect.MinY += int32((srcH - clipH) * valign.factor())
			result.ClipRect.MaxY = result.ClipRect.MinY + int32(clipH+0.5)
		}
		result.SourceToTargetX = ratio
		result.SourceToTargetY = ratio
	}

	return result
}

// Fit9Slice partitions a target area into up to nine slices mapped from a
// source image with fixed border insets. Corner slices keep the source
// border size scaled by scaleFactor, edge and center slices stretch. The
// returned slices cover the target exactly, with no overlap and no gap;
// empty slices are omitted.
func Fit9Slice(source Size, borders NineSliceBorders, target Size,
	scaleFactor float32) []FitResult {

	if source.IsEmpty() || target.IsEmpty() {
		return nil
	}
	if scaleFactor <= 0 {
		scaleFactor = 1
	}

	sw, sh := source.Width, source.Height
	l, t := float32(borders.Left), float32(borders.Top)
	r, b := float32(borders.Right), float32(borders.Bottom)

	// Degenerate borders collapse to a plain fill.
	if l+r >= sw || t+b >= sh {
		l, t, r, b = 0, 0, 0, 0
	}

	sxs := [4]float32{0, l, sw - r, sw}
	sys := [4]float32{0, t, sh - b, sh}

	txs := sliceBoundaries(target.Width, l, r, scaleFactor)
	tys := sliceBoundaries(target.Height, t, b, scaleFactor)

	slices := make([]FitResult, 0, 9)
	for j := 0; j < 3; j++ {
		srcH := sys[j+1] - sys[j]
		dstH := tys[j+1] - tys[j]
		if srcH <= 0 || dstH <= 0 {
			continue
		}
		for i := 0; i < 3; i++ {
			srcW := sxs[i+1] - sxs[i]
			dstW := txs[i+1] - txs[i]
			if srcW <= 0 || dstW <= 0 {
				continue
			}
			slices = append(slices, FitResult{
				Offset:          Point{X: txs[i], Y: tys[j]},
				Size:            Size{Width: dstW, Height: dstH},
				SourceToTargetX: dstW / srcW,
				SourceToTargetY: dstH / srcH,
				ClipRect: IntRect{
					MinX: int32(sxs[i]),
					MinY: int32(sys[j]),
					MaxX: int32(sxs[i+1]),
					MaxY: int32(sys[j+1]),
				},
			})
		}
	}
	return slices
}

// sliceBoundaries computes the four target boundaries of a nine-slice
// axis. When the scaled borders exceed the target extent they shrink
// proportionally so the partition stays exact.
func sliceBoundaries(extent, lo, hi, scaleFactor float32) [4]float32 {
	loT := lo * scaleFactor
	hiT := hi * scaleFactor
	if loT+hiT > extent {
		total := loT + hiT
		loT = extent * loT / total
		hiT = extent - loT
	}
	return [4]float32{0, loT, extent - hiT, extent}
}
