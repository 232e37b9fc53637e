package content

import (
	"math/rand"

	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/grid"
	"chosenoffset.com/intruderalert/internal/world/room"
)

// Population sets how much content a level receives.
type Population struct {
	CratePiles    int // piles of four crates
	ExplosiveBase int // lone explosive crates at level 0
	EnemyBase     int // enemies at level 0
	EnemyPerLevel int
}

// DefaultPopulation returns the stock content counts.
func DefaultPopulation() Population {
	return Population{
		CratePiles:    15,
		ExplosiveBase: 5,
		EnemyBase:     10,
		EnemyPerLevel: 2,
	}
}

// Loadout selects the weapon profile an enemy is armed with.
type Loadout uint8

const (
	LoadoutStandard Loadout = iota
	LoadoutBouncer
)

// EnemySpawn describes an enemy to be created when the level starts.
type EnemySpawn struct {
	Pos      geom.Vec
	Tile     geom.Coord
	Health   float64
	Size     float64
	MaxSpeed float64
	Range    float64
	Loadout  Loadout
}

// Content is everything the generator placed.
type Content struct {
	Crates  []*Crate
	Enemies []EnemySpawn
}

// Generator places crates and enemies on the floor of non-spawn rooms.
type Generator struct {
	grid     *grid.Grid
	tileSize float64
	rng      *rand.Rand

	candidates []geom.Coord
}

// NewGenerator collects the candidate tiles of g: every Floor tile inside a
// room other than spawn, in row-major order.
func NewGenerator(g *grid.Grid, rooms []*room.Room, spawn *room.Room, tileSize float64, rng *rand.Rand) *Generator {
	gen := &Generator{grid: g, tileSize: tileSize, rng: rng}
	g.Each(func(t *grid.Tile) {
		if t.Type != grid.Floor {
			return
		}
		for _, r := range rooms {
			if r != spawn && r.Contains(t.Row, t.Col) {
				gen.candidates = append(gen.candidates, t.Coord())
				return
			}
		}
	})
	return gen
}

// Remaining returns how many candidate tiles are still free.
func (gen *Generator) Remaining() int { return len(gen.candidates) }

// Generate places the population for the given level number. Each pick
// consumes its tile; when the candidates run out placement stops early.
func (gen *Generator) Generate(pop Population, levelNum int) Content {
	var out Content
	size := gen.tileSize / 2

	for i := 0; i < pop.CratePiles; i++ {
		t, ok := gen.take()
		if !ok {
			return out
		}
		for corner := 0; corner < 4; corner++ {
			explosive := gen.rng.Intn(20) == 0
			out.Crates = append(out.Crates, NewCrate(gen.cornerPos(t, corner), size, explosive, t))
		}
	}

	for i := 0; i < pop.ExplosiveBase+levelNum; i++ {
		t, ok := gen.take()
		if !ok {
			return out
		}
		corner := gen.rng.Intn(4)
		out.Crates = append(out.Crates, NewCrate(gen.cornerPos(t, corner), size, true, t))
	}

	for i := 0; i < pop.EnemyBase+pop.EnemyPerLevel*levelNum; i++ {
		t, ok := gen.take()
		if !ok {
			return out
		}
		// One enemy in ten carries a bouncing weapon.
		loadout := LoadoutStandard
		if gen.rng.Intn(10) == 3 {
			loadout = LoadoutBouncer
		}
		out.Enemies = append(out.Enemies, EnemySpawn{
			Pos:      geom.TileCenter(t, gen.tileSize),
			Tile:     t,
			Health:   float64(20 + 5*levelNum),
			Size:     size,
			MaxSpeed: 3,
			Range:    15 * gen.tileSize,
			Loadout:  loadout,
		})
	}
	return out
}

// take removes and returns a random candidate tile.
func (gen *Generator) take() (geom.Coord, bool) {
	if len(gen.candidates) == 0 {
		return geom.Coord{}, false
	}
	i := gen.rng.Intn(len(gen.candidates))
	t := gen.candidates[i]
	gen.candidates = append(gen.candidates[:i], gen.candidates[i+1:]...)
	return t, true
}

// cornerPos returns the centre of one quadrant of tile t, counting clockwise
// from the top left.
func (gen *Generator) cornerPos(t geom.Coord, corner int) geom.Vec {
	shift := gen.tileSize / 4
	p := geom.TileCenter(t, gen.tileSize)
	switch corner {
	case 0:
		p.X, p.Y = p.X-shift, p.Y-shift
	case 1:
		p.X, p.Y = p.X+shift, p.Y-shift
	case 2:
		p.X, p.Y = p.X+shift, p.Y+shift
	case 3:
		p.X, p.Y = p.X-shift, p.Y+shift
	}
	return p
}
