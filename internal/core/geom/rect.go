package geom

// Rect is an axis-aligned rectangle in world space. Top is the smaller Y.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAround returns the rectangle of the given size centred on c.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{
		Left:   c.X - w/2,
		Top:    c.Y - h/2,
		Right:  c.X + w/2,
		Bottom: c.Y + h/2,
	}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the centre point of r.
func (r Rect) Center() Vec {
	return Vec{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// RowsOverlap reports whether the vertical spans of r and o overlap
// (open interval, touching edges do not count).
func (r Rect) RowsOverlap(o Rect) bool {
	return r.Top < o.Bottom && r.Bottom > o.Top
}

// ColsOverlap reports whether the horizontal spans of r and o overlap.
func (r Rect) ColsOverlap(o Rect) bool {
	return r.Left < o.Right && r.Right > o.Left
}

// Overlaps reports whether r and o intersect with non-zero area.
func (r Rect) Overlaps(o Rect) bool {
	return r.RowsOverlap(o) && r.ColsOverlap(o)
}

// ContainsPoint reports whether (x, y) lies inside r, edges included.
func (r Rect) ContainsPoint(x, y float64) bool {
	return r.Left <= x && x <= r.Right && r.Top <= y && y <= r.Bottom
}
