package game

import (
	"math"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/content"
)

// Camera tracks the viewport position for scrolling large levels.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Input is one frame of player intent.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool
	Aim                   float64 // radians, screen space
}

// Blast is an explosive crate detonation.
type Blast struct {
	Pos    geom.Vec
	Radius float64
	Damage float64 // at the centre
}

// Character is the player or an enemy.
type Character struct {
	collision.Body
	Health    float64
	MaxHealth float64
	MaxSpeed  float64
	Range     float64 // sight range, enemies only
	Weapon    *Weapon
	team      collision.Team
}

// NewPlayer creates the player at pos.
func NewPlayer(cfg *config.Config, pos geom.Vec) *Character {
	return &Character{
		Body:      collision.Body{Pos: pos, Size: cfg.Physics.PlayerSize},
		Health:    cfg.Physics.PlayerHealth,
		MaxHealth: cfg.Physics.PlayerHealth,
		MaxSpeed:  cfg.Physics.PlayerMaxSpeed,
		Weapon:    NewWeapon(cfg.Weapons.Player),
		team:      collision.TeamPlayer,
	}
}

// NewEnemy creates an enemy from a generated spawn.
func NewEnemy(cfg *config.Config, s content.EnemySpawn) *Character {
	profile := cfg.Weapons.Enemy
	if s.Loadout == content.LoadoutBouncer {
		profile = cfg.Weapons.Bouncer
	}
	return &Character{
		Body:      collision.Body{Pos: s.Pos, Size: s.Size},
		Health:    s.Health,
		MaxHealth: s.Health,
		MaxSpeed:  s.MaxSpeed,
		Range:     s.Range,
		Weapon:    NewWeapon(profile),
		team:      collision.TeamEnemy,
	}
}

// Bounds makes a Character a bullet target.
func (c *Character) Bounds() geom.Rect { return c.Rect() }

// Team is the side the character fights for.
func (c *Character) Team() collision.Team { return c.team }

// TakeHit applies damage and adds the knockback to the velocity.
func (c *Character) TakeHit(damage float64, knockback geom.Vec) {
	c.Health -= damage
	c.Vel = c.Vel.Add(knockback)
}

// Dead reports whether the character has no health left.
func (c *Character) Dead() bool { return c.Health <= 0 }

// Steer accelerates toward max speed along the pressed directions. Each
// axis closes a quarter of the gap between its speed and its share of max
// speed.
func (c *Character) Steer(h, v int) {
	if h == 0 || v == 0 {
		c.Vel.X += float64(h) * (c.MaxSpeed - math.Abs(c.Vel.X)) / 4
		c.Vel.Y += float64(v) * (c.MaxSpeed - math.Abs(c.Vel.Y)) / 4
		return
	}
	angle := math.Atan2(float64(v), float64(h))
	maxX := math.Abs(c.MaxSpeed * math.Cos(angle))
	maxY := math.Abs(c.MaxSpeed * math.Sin(angle))
	c.Vel.X += float64(h) * (maxX - math.Abs(c.Vel.X)) / 4
	c.Vel.Y += float64(v) * (maxY - math.Abs(c.Vel.Y)) / 4
}
