package gamemath

import "math"

// Normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Distance is the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// CircleIntersectsRect reports whether the circle at (cx, cy) with radius r
// touches the axis-aligned rectangle with top-left (x, y) and size (w, h).
func CircleIntersectsRect(cx, cy, r, x, y, w, h float64) bool {
	nx := math.Max(x, math.Min(cx, x+w))
	ny := math.Max(y, math.Min(cy, y+h))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
