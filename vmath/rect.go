package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner,
// in world units.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and o overlap with positive area.
// Edge or corner touching is not overlap: the comparison is strict on
// all four sides.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Penetration returns the overlap depth per axis for two overlapping
// rectangles: the smaller of the two one-sided overlaps on each axis.
// Results are meaningful only when Overlaps(o) is true; callers resolve
// along the axis with the smaller depth.
func (r Rect) Penetration(o Rect) (px, py float64) {
	px = min(r.Right()-o.X, o.Right()-r.X)
	py = min(r.Bottom()-o.Y, o.Bottom()-r.Y)
	return px, py
}

// Contains reports whether the point (x, y) lies inside r, right and
// bottom edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp returns x limited to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
