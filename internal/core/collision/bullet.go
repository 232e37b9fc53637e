package collision

import (
	"fmt"
	"math"

	"chosenoffset.com/intruderalert/internal/core/geom"
)

// Team separates the player's side from the enemies'.
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// Disposition is the outcome of resolving a bullet against one obstacle
// class.
type Disposition uint8

const (
	Passed    Disposition = iota // nothing touched
	Blocked                      // touched, bullet survives
	Destroyed                    // bullet must be removed
)

func (d Disposition) String() string {
	switch d {
	case Passed:
		return "passed"
	case Blocked:
		return "blocked"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("disposition(%d)", uint8(d))
	}
}

// Target is anything a bullet can hurt.
type Target interface {
	Bounds() geom.Rect
	Team() Team
	TakeHit(damage float64, knockback geom.Vec)
}

// Bullet is a projectile fired by a weapon.
type Bullet struct {
	Body
	Team        Team
	Bounces     bool
	Damage      float64 // to characters
	Force       float64 // knockback magnitude
	CrateDamage float64
	Durability  float64 // crate contacts left
	Lifespan    int     // frames
	Age         int
}

// Expired reports whether the bullet has outlived its lifespan. A bullet
// lives for Lifespan+1 frames counting the one it was fired on.
func (b *Bullet) Expired() bool {
	return b.Age > b.Lifespan
}

// ResolveWalls runs the bullet against walls until the first one it
// overlaps. Bouncing bullets reflect off any face they strike, which lights
// the wall, and survive. A non-bouncing bullet is destroyed by the overlap
// without touching the wall.
func (b *Bullet) ResolveWalls(walls []Obstacle) Disposition {
	disp := Passed
	for _, w := range walls {
		bounds := w.Bounds()
		overlap := b.Rect().Overlaps(bounds)

		if b.Bounces {
			if side := sideStruck(b.Rect(), b.Vel, bounds); side != SideNone {
				settle(&b.Pos, &b.Vel, b.Size, b.Size, bounds, side, Bounce)
				w.Struck(Strike{Side: side})
				disp = Blocked
			}
		}
		if overlap {
			if !b.Bounces {
				return Destroyed
			}
			return Blocked
		}
	}
	return disp
}

// ResolveCrates runs the bullet against crates. Every contact damages the
// crate and costs the bullet one point of durability. Processing stops at
// the first crate the bullet overlaps; if its durability is spent by then it
// is destroyed.
func (b *Bullet) ResolveCrates(crates []Obstacle) Disposition {
	disp := Passed
	for _, c := range crates {
		bounds := c.Bounds()
		overlap := b.Rect().Overlaps(bounds)

		if b.Bounces {
			if side := sideStruck(b.Rect(), b.Vel, bounds); side != SideNone {
				settle(&b.Pos, &b.Vel, b.Size, b.Size, bounds, side, Bounce)
				c.Struck(Strike{Side: side, Damage: b.CrateDamage})
				b.Durability--
				disp = Blocked
			}
		} else if overlap {
			c.Struck(Strike{Damage: b.CrateDamage})
			b.Durability--
			disp = Blocked
		}

		if overlap {
			if b.Durability <= 0 {
				return Destroyed
			}
			return disp
		}
	}
	return disp
}

// HitTarget finds the first target of the other team whose bounds overlap
// the bullet, damages it and knocks it away from the bullet.
func HitTarget[T Target](b *Bullet, targets []T) (T, bool) {
	r := b.Rect()
	for _, t := range targets {
		if t.Team() == b.Team {
			continue
		}
		bounds := t.Bounds()
		if !r.Overlaps(bounds) {
			continue
		}
		c := bounds.Center()
		angle := math.Atan2(c.Y-b.Pos.Y, c.X-b.Pos.X)
		t.TakeHit(b.Damage, geom.Polar(b.Force, angle))
		return t, true
	}
	var zero T
	return zero, false
}
