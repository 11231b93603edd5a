package scenic

// ColorAtOffset returns the interpolated gradient color at t in [0, 1].
// Positions outside the stop range pad with the nearest stop color.
// Interpolation happens per channel in straight-alpha sRGB space, matching
// the default gradient interpolation of the GPU scene encoders.
func ColorAtOffset(stops []GradientStop, t float32) Color {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo, hi := stops[i-1], stops[i]
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Color
			}
			return lerpColor(lo.Color, hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}

func lerpColor(c1, c2 Color, t float32) Color {
	return Color{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
		A: lerpChannel(c1.A, c2.A, t),
	}
}

func lerpChannel(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + t*(float32(b)-float32(a)) + 0.5)
}
