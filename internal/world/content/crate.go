// Package content scatters crates and enemy spawns over a generated level.
package content

import (
	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
)

const (
	ExplosiveDurability = 5
	CrateDurability     = 20
)

// Crate is a destructible square obstacle. Tile is the tile it is indexed
// around.
type Crate struct {
	Pos        geom.Vec
	Size       float64
	Durability float64
	Explosive  bool
	Tile       geom.Coord
}

// NewCrate creates a crate with the durability its kind starts with.
func NewCrate(pos geom.Vec, size float64, explosive bool, tile geom.Coord) *Crate {
	durability := float64(CrateDurability)
	if explosive {
		durability = ExplosiveDurability
	}
	return &Crate{Pos: pos, Size: size, Durability: durability, Explosive: explosive, Tile: tile}
}

// Bounds is the crate square in world pixels.
func (c *Crate) Bounds() geom.Rect {
	return geom.RectAround(c.Pos, c.Size, c.Size)
}

// ContainsPoint reports whether (x, y) falls inside the crate.
func (c *Crate) ContainsPoint(x, y float64) bool {
	return c.Bounds().ContainsPoint(x, y)
}

// Struck applies the strike's damage, if any.
func (c *Crate) Struck(s collision.Strike) {
	c.Damage(s.Damage)
}

// Damage reduces durability by d.
func (c *Crate) Damage(d float64) {
	c.Durability -= d
}

// Destroyed reports whether the crate has no durability left.
func (c *Crate) Destroyed() bool {
	return c.Durability <= 0
}
