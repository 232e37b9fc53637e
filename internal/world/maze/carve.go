// Package maze fills the space between rooms with passages, joins every
// floor region into one and prunes dead ends.
package maze

import (
	"math/rand"

	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/grid"
)

const (
	// Tries before a frontier node is given up on.
	maxTries = 10
	// Lattice step between passage nodes.
	step = 2
)

// Carver grows passages over the odd lattice of a grid.
type Carver struct {
	grid     *grid.Grid
	rng      *rand.Rand
	frontier []geom.Coord
	lastDir  int // index into geom.Cardinal of the last successful step, -1 if none
}

// NewCarver creates a carver writing into g.
func NewCarver(g *grid.Grid, rng *rand.Rand) *Carver {
	return &Carver{grid: g, rng: rng, lastDir: -1}
}

// Carve runs the passage carver until every lattice node is Floor. The first
// passage leaves the spawn room from its centre.
func (c *Carver) Carve(spawnCentre geom.Coord) {
	c.frontier = c.frontier[:0]
	c.leaveSpawn(spawnCentre)

	for !c.filled() {
		c.lastDir = -1
		if len(c.frontier) == 0 {
			if node, ok := c.firstUncarved(); ok {
				c.frontier = append(c.frontier, node)
			}
		}
		for len(c.frontier) > 0 {
			c.advance()
		}
	}
}

// leaveSpawn carves one four-tile passage out of the spawn room.
func (c *Carver) leaveSpawn(centre geom.Coord) {
	for tries := 0; tries < maxTries; tries++ {
		d := geom.Cardinal[c.rng.Intn(len(geom.Cardinal))]
		target := geom.Coord{Row: centre.Row + 2*step*d.Row, Col: centre.Col + 2*step*d.Col}
		if c.carvable(target) {
			c.carveLine(centre, target)
			c.frontier = append(c.frontier, target)
			return
		}
	}
}

// advance takes one step from the head of the frontier. The head moves with
// each successful step while every carved node is also queued as a branch
// point. A step repeats the previous direction half the time; a failed try
// forgets it.
func (c *Carver) advance() {
	head := c.frontier[0]
	tries := 0
	for tries < maxTries {
		dir := c.lastDir
		if c.lastDir == -1 || c.rng.Intn(2) == 0 {
			dir = c.rng.Intn(len(geom.Cardinal))
		}
		d := geom.Cardinal[dir]
		target := geom.Coord{Row: head.Row + step*d.Row, Col: head.Col + step*d.Col}
		if c.carvable(target) {
			c.lastDir = dir
			c.carveLine(head, target)
			c.frontier = append(c.frontier, target)
			head = target
			c.frontier[0] = head
			break
		}
		c.lastDir = -1
		tries++
	}

	// A seed node handed in by firstUncarved is still Empty.
	if c.carvable(head) {
		c.grid.Set(head.Row, head.Col, grid.Floor)
	}
	if tries == maxTries {
		c.frontier = c.frontier[1:]
	}
}

func (c *Carver) carvable(at geom.Coord) bool {
	return c.grid.InBounds(at.Row, at.Col) && c.grid.TypeAt(at.Row, at.Col) == grid.Empty
}

// carveLine sets every tile on the straight segment from a to b to Floor.
func (c *Carver) carveLine(a, b geom.Coord) {
	dr, dc := sign(b.Row-a.Row), sign(b.Col-a.Col)
	for at := a; ; at = (geom.Coord{Row: at.Row + dr, Col: at.Col + dc}) {
		c.grid.Set(at.Row, at.Col, grid.Floor)
		if at == b {
			return
		}
	}
}

func (c *Carver) filled() bool {
	_, ok := c.firstUncarved()
	return !ok
}

// firstUncarved returns the first Empty lattice node in row-major order.
func (c *Carver) firstUncarved() (geom.Coord, bool) {
	for row := 1; row < c.grid.Rows; row += step {
		for col := 1; col < c.grid.Cols; col += step {
			if c.grid.TypeAt(row, col) == grid.Empty {
				return geom.Coord{Row: row, Col: col}, true
			}
		}
	}
	return geom.Coord{}, false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
