package collision

import (
	"math"

	"chosenoffset.com/intruderalert/internal/core/geom"
)

// Body is a square moving box. Pos is its centre.
type Body struct {
	Pos  geom.Vec
	Vel  geom.Vec
	Size float64
}

// Rect returns the body's current bounds.
func (b *Body) Rect() geom.Rect {
	return geom.RectAround(b.Pos, b.Size, b.Size)
}

// Resolve pushes b out of every obstacle it would strike this frame and
// returns how many it struck. Obstacles are handled in order, each seeing
// the position and velocity left by the one before. Every contact calls the
// obstacle's Struck hook with the given damage.
func (b *Body) Resolve(obstacles []Obstacle, resp Response, damage float64) int {
	hits := 0
	for _, o := range obstacles {
		bounds := o.Bounds()
		side := sideStruck(b.Rect(), b.Vel, bounds)
		if side == SideNone {
			continue
		}
		settle(&b.Pos, &b.Vel, b.Size, b.Size, bounds, side, resp)
		o.Struck(Strike{Side: side, Damage: damage})
		hits++
	}
	return hits
}

// Integrate advances the body by one frame of velocity.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// ApplyFriction scales v by factor and snaps any component whose magnitude
// is at most snap to zero.
func ApplyFriction(v geom.Vec, factor, snap float64) geom.Vec {
	v = v.Scale(factor)
	if math.Abs(v.X) <= snap {
		v.X = 0
	}
	if math.Abs(v.Y) <= snap {
		v.Y = 0
	}
	return v
}
