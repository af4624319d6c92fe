package timeline

import "math"

// TimeAt converts a horizontal cell offset inside a container of the given
// width to a point in r. The mapping is affine and monotonically increasing
// in x: TimeAt(0) == r.Start and TimeAt(width) == r.End.
// A non-positive width cannot be mapped; callers treat that frame as a no-op
// and TimeAt degrades to r.Start rather than producing garbage.
func TimeAt(x, width int, r Range) Millis {
	if width <= 0 {
		return r.Start
	}
	frac := float64(x) / float64(width)
	return r.Start + Millis(math.Round(frac*float64(r.Duration())))
}

// SpanWidth converts a duration to the number of cells it covers in a
// container of the given width showing r. Used only to size overlay
// geometry; shares the scale factor width / r.Duration() with TimeAt.
func SpanWidth(d Millis, width int, r Range) int {
	if width <= 0 || r.Duration() <= 0 {
		return 0
	}
	return int(math.Round(float64(d) / float64(r.Duration()) * float64(width)))
}

// DeltaTime converts a signed cell delta to a time delta at the scale of a
// container of the given width showing r.
func DeltaTime(dx, width int, r Range) Millis {
	if width <= 0 {
		return 0
	}
	return Millis(math.Round(float64(dx) / float64(width) * float64(r.Duration())))
}
