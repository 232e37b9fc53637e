// Package visibility answers whether one point can see another past
// walls and crates.
package visibility

import (
	"math"

	"chosenoffset.com/intruderalert/internal/core/geom"
)

// Blocker is anything that stops a line of sight.
type Blocker interface {
	ContainsPoint(x, y float64) bool
}

// Field reports whether a rasterized point is blocked. It lets callers back
// the test with a spatial lookup instead of a flat list.
type Field interface {
	Blocked(x, y float64) bool
}

// FieldFunc adapts a function to Field.
type FieldFunc func(x, y float64) bool

// Blocked calls f(x, y).
func (f FieldFunc) Blocked(x, y float64) bool { return f(x, y) }

// InLineOfSight reports whether to is within sightRange of from and no
// blocker contains any point of the line between them.
func InLineOfSight[B Blocker](from, to geom.Vec, sightRange float64, blockers []B) bool {
	return Trace(from, to, sightRange, FieldFunc(func(x, y float64) bool {
		for _, b := range blockers {
			if b.ContainsPoint(x, y) {
				return true
			}
		}
		return false
	}))
}

// Trace is InLineOfSight over a Field. Both endpoints are truncated to
// integer pixels. The target must lie inside the square of side sightRange
// centred on from and within sightRange/2 of it; the line is then walked
// with Bresenham's algorithm and the first blocked point ends the test.
func Trace(from, to geom.Vec, sightRange float64, field Field) bool {
	x0, y0 := int(from.X), int(from.Y)
	x1, y1 := int(to.X), int(to.Y)

	r := sightRange / 2
	fx0, fy0, fx1, fy1 := float64(x0), float64(y0), float64(x1), float64(y1)
	if fx1 < fx0-r || fx1 > fx0+r || fy1 < fy0-r || fy1 > fy0+r {
		return false
	}
	if math.Hypot(fx1-fx0, fy1-fy0) > r {
		return false
	}

	if abs(y1-y0) < abs(x1-x0) {
		if x0 > x1 {
			return lowLine(x1, y1, x0, y0, field)
		}
		return lowLine(x0, y0, x1, y1, field)
	}
	if y0 > y1 {
		return highLine(x1, y1, x0, y0, field)
	}
	return highLine(x0, y0, x1, y1, field)
}

// lowLine walks a line with |dy| < |dx| left to right.
func lowLine(x0, y0, x1, y1 int, field Field) bool {
	dx, dy := x1-x0, y1-y0
	yi := 1
	if dy < 0 {
		yi, dy = -1, -dy
	}
	d := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		if field.Blocked(float64(x), float64(y)) {
			return false
		}
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
	return true
}

// highLine walks a line with |dy| >= |dx| top to bottom.
func highLine(x0, y0, x1, y1 int, field Field) bool {
	dx, dy := x1-x0, y1-y0
	xi := 1
	if dx < 0 {
		xi, dx = -1, -dx
	}
	d := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		if field.Blocked(float64(x), float64(y)) {
			return false
		}
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
