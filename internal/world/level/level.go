// Package level runs the generation pipeline and owns what it produces.
package level

import (
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/content"
	"chosenoffset.com/intruderalert/internal/world/grid"
	"chosenoffset.com/intruderalert/internal/world/maze"
	"chosenoffset.com/intruderalert/internal/world/room"
	"chosenoffset.com/intruderalert/internal/world/spatial"
	"chosenoffset.com/intruderalert/internal/world/walls"
	"chosenoffset.com/intruderalert/pkg/logger"
)

// Config holds configuration for generating one level
type Config struct {
	Rows, Cols int
	Placer     room.PlacerConfig
	TileSize   float64
	Population content.Population
	Num        int // Level number; scales the population
}

// DefaultConfig returns the stock 25x41 level zero.
func DefaultConfig() Config {
	return FromConfig(config.DefaultConfig(), 0)
}

// FromConfig derives the generation settings for level num.
func FromConfig(c *config.Config, num int) Config {
	return Config{
		Rows: c.Generation.Rows,
		Cols: c.Generation.Cols,
		Placer: room.PlacerConfig{
			Attempts:  c.Generation.RoomAttempts,
			FailCap:   c.Generation.RoomFailCap,
			SpawnSize: 5,
		},
		TileSize: c.Generation.TileSize,
		Population: content.Population{
			CratePiles:    c.Population.CratePiles,
			ExplosiveBase: c.Population.ExplosiveBase,
			EnemyBase:     c.Population.EnemyBase,
			EnemyPerLevel: c.Population.EnemyPerLevel,
		},
		Num: num,
	}
}

// Level is a generated, playable level. Its per-frame queries are not safe
// for concurrent use.
type Level struct {
	Num         int
	TileSize    float64
	Grid        *grid.Grid
	Rooms       []*room.Room
	SpawnRoom   *room.Room
	PlayerStart geom.Vec
	Walls       []*walls.Wall
	Crates      []*content.Crate
	Enemies     []content.EnemySpawn
	Index       *spatial.Index
}

// Generate builds a level from cfg. All randomness comes from rng, so the
// same seed always yields the same level.
func Generate(cfg Config, rng *rand.Rand) *Level {
	log := logger.For("level").WithField("level", cfg.Num)
	stage := func(name string, start time.Time, fields logrus.Fields) {
		log.WithFields(fields).WithFields(logrus.Fields{
			"stage":    name,
			"duration": time.Since(start),
		}).Debug("Generation stage finished")
	}

	start := time.Now()
	g := grid.New(cfg.Rows, cfg.Cols, rng)
	layout := room.NewPlacer(g, cfg.Placer, rng).Place()
	stage("rooms", start, logrus.Fields{"rooms": len(layout.Rooms)})

	spawn := layout.Spawn.CenterTile()

	start = time.Now()
	maze.NewCarver(g, rng).Carve(spawn)
	stage("passages", start, logrus.Fields{"floor": g.Count(grid.Floor)})

	start = time.Now()
	connectors := maze.Connect(g, spawn)
	stage("connect", start, logrus.Fields{"connectors": connectors})

	start = time.Now()
	pruned := maze.PruneDeadEnds(g)
	stage("prune", start, logrus.Fields{"pruned": pruned})

	start = time.Now()
	ws := walls.Merge(g, cfg.TileSize)
	stage("walls", start, logrus.Fields{"walls": len(ws), "wall_tiles": g.Count(grid.Wall)})

	start = time.Now()
	placed := content.NewGenerator(g, layout.Rooms, layout.Spawn, cfg.TileSize, rng).
		Generate(cfg.Population, cfg.Num)
	stage("content", start, logrus.Fields{"crates": len(placed.Crates), "enemies": len(placed.Enemies)})

	start = time.Now()
	ix := spatial.Build(g, ws, placed.Crates)
	stage("index", start, nil)

	return &Level{
		Num:         cfg.Num,
		TileSize:    cfg.TileSize,
		Grid:        g,
		Rooms:       layout.Rooms,
		SpawnRoom:   layout.Spawn,
		PlayerStart: layout.Spawn.CenterPos(cfg.TileSize),
		Walls:       ws,
		Crates:      placed.Crates,
		Enemies:     placed.Enemies,
		Index:       ix,
	}
}

// GenerateMany builds one level per seed in parallel. Results are in seed
// order and identical to calling Generate with each seed in turn.
func GenerateMany(cfg Config, seeds []int64) []*Level {
	levels := make([]*Level, len(seeds))
	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			levels[i] = Generate(cfg, rand.New(rand.NewSource(seed)))
		}(i, seed)
	}
	wg.Wait()
	return levels
}

// TileOf returns the tile holding world position pos and whether it lies
// inside the grid.
func (l *Level) TileOf(pos geom.Vec) (geom.Coord, bool) {
	if pos.X < 0 || pos.Y < 0 {
		return geom.Coord{}, false
	}
	t := geom.TileOf(pos, l.TileSize)
	return t, l.Grid.InBounds(t.Row, t.Col)
}

// Obstacles returns the walls and crates to resolve an actor centred at pos
// against. Both are empty outside the grid.
func (l *Level) Obstacles(pos geom.Vec) (ws, cs []collision.Obstacle) {
	t, ok := l.TileOf(pos)
	if !ok {
		return nil, nil
	}
	return l.Index.WallObstacles(t.Row, t.Col), l.Index.CrateObstacles(t.Row, t.Col)
}

// Blocked reports whether a wall or crate covers world point (x, y).
func (l *Level) Blocked(x, y float64) bool {
	return l.Index.Blocked(x, y, l.TileSize)
}

// RemoveCrate drops c from the crate list and the index.
func (l *Level) RemoveCrate(c *content.Crate) {
	l.Crates = slices.DeleteFunc(l.Crates, func(o *content.Crate) bool { return o == c })
	l.Index.RemoveCrate(c)
}

// TickWalls fades the glow of every wall by one frame.
func (l *Level) TickWalls() {
	for _, w := range l.Walls {
		w.Tick()
	}
}

// ReachableCount returns how many floor tiles can be walked to from the
// spawn centre.
func (l *Level) ReachableCount() int {
	regions := maze.FindRegions(l.Grid, l.SpawnRoom.CenterTile())
	if len(regions) == 0 || !regions[0].Contains(l.SpawnRoom.CenterTile()) {
		return 0
	}
	return regions[0].Size()
}

// Stats summarises a level.
type Stats struct {
	Rows, Cols int
	Rooms      int
	Floor      int
	Reachable  int
	WallTiles  int
	Walls      int
	Crates     int
	Explosive  int
	Enemies    int
}

// Stats counts the level's contents.
func (l *Level) Stats() Stats {
	s := Stats{
		Rows:      l.Grid.Rows,
		Cols:      l.Grid.Cols,
		Rooms:     len(l.Rooms),
		Floor:     l.Grid.Count(grid.Floor),
		Reachable: l.ReachableCount(),
		WallTiles: l.Grid.Count(grid.Wall),
		Walls:     len(l.Walls),
		Crates:    len(l.Crates),
		Enemies:   len(l.Enemies),
	}
	for _, c := range l.Crates {
		if c.Explosive {
			s.Explosive++
		}
	}
	return s
}

// Fields returns s as structured log fields.
func (s Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":       s.Rows,
		"cols":       s.Cols,
		"rooms":      s.Rooms,
		"floor":      s.Floor,
		"reachable":  s.Reachable,
		"wall_tiles": s.WallTiles,
		"walls":      s.Walls,
		"crates":     s.Crates,
		"explosive":  s.Explosive,
		"enemies":    s.Enemies,
	}
}
