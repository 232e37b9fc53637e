package game

import (
	"math/rand"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
)

// Weapon fires bullets from a profile, limited by its cooldown.
type Weapon struct {
	Profile  config.WeaponConfig
	lastShot int
	fired    bool
}

// NewWeapon returns a weapon ready to fire on any frame.
func NewWeapon(p config.WeaponConfig) *Weapon {
	return &Weapon{Profile: p}
}

// Ready reports whether the cooldown has passed at frame.
func (w *Weapon) Ready(frame int) bool {
	return !w.fired || w.lastShot+w.Profile.Cooldown < frame
}

// Fire creates a bullet at pos heading along direction plus a random spread.
// It returns nil while the weapon is cooling down.
func (w *Weapon) Fire(frame int, team collision.Team, pos geom.Vec, direction float64, rng *rand.Rand) *collision.Bullet {
	if !w.Ready(frame) {
		return nil
	}
	w.lastShot, w.fired = frame, true

	p := w.Profile
	if p.Inaccuracy > 0 {
		direction += (rng.Float64()*2 - 1) * p.Inaccuracy
	}
	return &collision.Bullet{
		Body:        collision.Body{Pos: pos, Vel: geom.Polar(p.Speed, direction), Size: p.Size},
		Team:        team,
		Bounces:     p.Bounces,
		Damage:      p.Damage,
		Force:       p.Force,
		CrateDamage: p.CrateDamage,
		Durability:  p.Durability,
		Lifespan:    p.Lifespan,
	}
}
