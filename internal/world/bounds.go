package world

// Bounds is the drivable rectangle [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Clamp pins (x, y) inside the bounds. NaN collapses to the origin edge.
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return clamp(x, 0, b.Width), clamp(y, 0, b.Height)
}

// Contains reports whether (x, y) lies inside the bounds, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
