// Package collision resolves moving boxes against static obstacles.
//
// Everything that can block movement (walls, crates) satisfies Obstacle.
// Characters slide along what they hit; bouncing bullets reflect off it.
package collision

import (
	"fmt"

	"chosenoffset.com/intruderalert/internal/core/geom"
)

// Side names the face of an obstacle that was struck.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Strike describes a contact handed to an obstacle's Struck hook.
type Strike struct {
	Side   Side
	Damage float64 // zero for contacts that only block
}

// Obstacle is a static axis-aligned blocker.
type Obstacle interface {
	Bounds() geom.Rect
	// ContainsPoint is edge-inclusive.
	ContainsPoint(x, y float64) bool
	// Struck is called once per resolved contact.
	Struck(s Strike)
}

// Response selects what happens to the velocity component normal to the
// struck face.
type Response uint8

const (
	Slide  Response = iota // component is zeroed
	Bounce                 // component is negated
)

// sideStruck works out which face of o a box r moving at vel strikes this
// frame, by comparing where the leading edge was one step ago against where
// it will be one step ahead. Horizontal faces are only considered when the
// vertical spans overlap, and vice versa.
func sideStruck(r geom.Rect, vel geom.Vec, o geom.Rect) Side {
	switch {
	case r.RowsOverlap(o):
		if r.Left+vel.X <= o.Right && r.Left-vel.X >= o.Right {
			return SideRight
		}
		if r.Right+vel.X >= o.Left && r.Right-vel.X <= o.Left {
			return SideLeft
		}
	case r.ColsOverlap(o):
		if r.Top+vel.Y <= o.Bottom && r.Top-vel.Y >= o.Bottom {
			return SideBottom
		}
		if r.Bottom+vel.Y >= o.Top && r.Bottom-vel.Y <= o.Top {
			return SideTop
		}
	}
	return SideNone
}

// settle places a box of size w x h centred on pos flush against side of o
// and applies resp to the normal velocity component.
func settle(pos, vel *geom.Vec, w, h float64, o geom.Rect, side Side, resp Response) {
	switch side {
	case SideRight:
		pos.X = o.Right + w/2
		vel.X = respond(vel.X, resp)
	case SideLeft:
		pos.X = o.Left - w/2
		vel.X = respond(vel.X, resp)
	case SideBottom:
		pos.Y = o.Bottom + h/2
		vel.Y = respond(vel.Y, resp)
	case SideTop:
		pos.Y = o.Top - h/2
		vel.Y = respond(vel.Y, resp)
	}
}

func respond(v float64, resp Response) float64 {
	if resp == Bounce {
		return -v
	}
	return 0
}
