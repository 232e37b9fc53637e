package game

import (
	"math"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/core/visibility"
	"chosenoffset.com/intruderalert/internal/world/level"
	"chosenoffset.com/intruderalert/pkg/logger"
)

// Arena runs the real-time simulation of one level. It is not safe for
// concurrent use.
type Arena struct {
	Config  *config.Config
	Level   *level.Level
	Player  *Character
	Enemies []*Character
	Bullets []*collision.Bullet
	Blasts  []Blast // detonations during the last Step
	Frame   int

	GameOver  bool
	Completed bool

	rng *rand.Rand
	log *logrus.Entry
}

// NewArena places the player and the generated enemies in lvl.
func NewArena(cfg *config.Config, lvl *level.Level, rng *rand.Rand) *Arena {
	a := &Arena{
		Config: cfg,
		Level:  lvl,
		Player: NewPlayer(cfg, lvl.PlayerStart),
		rng:    rng,
		log:    logger.For("arena").WithField("level", lvl.Num),
	}
	for _, s := range lvl.Enemies {
		a.Enemies = append(a.Enemies, NewEnemy(cfg, s))
	}
	return a
}

// Step advances the simulation by one frame.
func (a *Arena) Step(in Input) {
	a.Frame++
	a.Blasts = a.Blasts[:0]
	a.Level.TickWalls()

	if !a.GameOver && a.Player.Dead() {
		a.GameOver = true
		a.log.WithField("frame", a.Frame).Info("Player died")
	}
	if !a.GameOver {
		a.Player.Steer(axis(in.Left, in.Right), axis(in.Up, in.Down))
		if in.Fire {
			a.fire(a.Player, in.Aim)
		}
		a.move(a.Player)
	}

	alive := a.Enemies[:0]
	for _, e := range a.Enemies {
		if e.Dead() {
			a.log.WithField("frame", a.Frame).Debug("Enemy killed")
			continue
		}
		alive = append(alive, e)
		if !a.GameOver && a.Frame > a.Config.Physics.GraceFrames && e.Weapon.Ready(a.Frame) &&
			a.CanSee(e, a.Player.Pos) {
			p := a.Player.Pos
			a.fire(e, math.Atan2(p.Y-e.Pos.Y, p.X-e.Pos.X))
		}
		a.move(e)
	}
	clear(a.Enemies[len(alive):])
	a.Enemies = alive

	a.removeDestroyedCrates()

	if len(a.Enemies) == 0 && !a.Completed {
		a.Completed = true
		a.log.WithField("frame", a.Frame).Info("Level complete")
	}

	targets := make([]*Character, 0, len(a.Enemies)+1)
	if !a.GameOver {
		targets = append(targets, a.Player)
	}
	targets = append(targets, a.Enemies...)

	kept := a.Bullets[:0]
	for _, b := range a.Bullets {
		if a.stepBullet(b, targets) {
			kept = append(kept, b)
		}
	}
	clear(a.Bullets[len(kept):])
	a.Bullets = kept
}

// CanSee reports whether c has a clear line of sight to target.
func (a *Arena) CanSee(c *Character, target geom.Vec) bool {
	return visibility.Trace(c.Pos, target, c.Range, a.Level)
}

func (a *Arena) fire(c *Character, direction float64) {
	if c.Weapon == nil {
		return
	}
	if b := c.Weapon.Fire(a.Frame, c.Team(), c.Pos, direction, a.rng); b != nil {
		a.Bullets = append(a.Bullets, b)
	}
}

// move resolves c against the walls then the crates around it, applies
// friction and integrates.
func (a *Arena) move(c *Character) {
	ws, cs := a.Level.Obstacles(c.Pos)
	c.Resolve(ws, collision.Slide, 0)
	c.Resolve(cs, collision.Slide, 0)
	c.Vel = collision.ApplyFriction(c.Vel, a.Config.Physics.Friction, a.Config.Physics.Snap)
	c.Integrate()
}

// stepBullet ages, resolves and moves one bullet. It reports whether the
// bullet survives the frame.
func (a *Arena) stepBullet(b *collision.Bullet, targets []*Character) bool {
	if b.Expired() {
		return false
	}
	b.Age++
	if _, ok := a.Level.TileOf(b.Pos); !ok {
		return false
	}

	ws, cs := a.Level.Obstacles(b.Pos)
	if b.ResolveWalls(ws) == collision.Destroyed {
		return false
	}
	if b.ResolveCrates(cs) == collision.Destroyed {
		return false
	}
	if _, hit := collision.HitTarget(b, targets); hit {
		return false
	}
	b.Integrate()
	return true
}

// removeDestroyedCrates drops spent crates from the level. Explosive ones
// detonate, which may destroy crates further down the list this frame.
func (a *Arena) removeDestroyedCrates() {
	for _, c := range slices.Clone(a.Level.Crates) {
		if !c.Destroyed() {
			continue
		}
		if c.Explosive {
			a.Detonate(Blast{
				Pos:    c.Pos,
				Radius: a.Config.Blast.RadiusTiles * a.Level.TileSize,
				Damage: a.Config.Blast.Damage,
			})
		}
		a.Level.RemoveCrate(c)
		a.log.WithFields(logrus.Fields{
			"frame":     a.Frame,
			"explosive": c.Explosive,
			"tile":      c.Tile,
		}).Debug("Crate destroyed")
	}
}

// Detonate damages and pushes every character and crate within the blast
// radius. Damage falls off linearly to zero at the radius; knockback grows
// with distance.
func (a *Arena) Detonate(bl Blast) {
	a.Blasts = append(a.Blasts, bl)
	r := bl.Radius

	chars := append([]*Character{a.Player}, a.Enemies...)
	for _, c := range chars {
		d := c.Pos.Dist(bl.Pos)
		if d > r {
			continue
		}
		force := bl.Damage*d/r/2 + 5
		angle := math.Atan2(c.Pos.Y-bl.Pos.Y, c.Pos.X-bl.Pos.X)
		c.TakeHit(bl.Damage*(r-d)/r, geom.Polar(force, angle))
	}
	for _, c := range a.Level.Crates {
		if d := c.Pos.Dist(bl.Pos); d <= r {
			c.Damage(bl.Damage * (r - d) / r)
		}
	}
}

func axis(neg, pos bool) int {
	n := 0
	if neg {
		n--
	}
	if pos {
		n++
	}
	return n
}
