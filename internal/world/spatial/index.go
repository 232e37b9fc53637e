// Package spatial maps tiles to the walls and crates an actor standing on
// that tile can touch.
package spatial

import (
	"fmt"
	"slices"

	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/content"
	"chosenoffset.com/intruderalert/internal/world/grid"
	"chosenoffset.com/intruderalert/internal/world/walls"
)

// Index holds, per tile, the walls and crates to test against. It is not
// safe for concurrent use.
type Index struct {
	Rows, Cols int
	walls      [][]*walls.Wall
	crates     [][]*content.Crate
}

// Build indexes ws and cs over g. Building twice from the same inputs gives
// the same index.
func Build(g *grid.Grid, ws []*walls.Wall, cs []*content.Crate) *Index {
	ix := &Index{
		Rows:   g.Rows,
		Cols:   g.Cols,
		walls:  make([][]*walls.Wall, g.Rows*g.Cols),
		crates: make([][]*content.Crate, g.Rows*g.Cols),
	}

	owner := make([]*walls.Wall, g.Rows*g.Cols)
	for _, w := range ws {
		for _, t := range w.Tiles {
			owner[t.Row*g.Cols+t.Col] = w
		}
	}

	g.Each(func(t *grid.Tile) {
		i := t.Row*g.Cols + t.Col
		switch t.Type {
		case grid.Wall:
			if owner[i] != nil {
				ix.walls[i] = []*walls.Wall{owner[i]}
			}
		case grid.Floor:
			for _, d := range geom.Ring {
				r, c := t.Row+d.Row, t.Col+d.Col
				if !g.InBounds(r, c) {
					continue
				}
				w := owner[r*g.Cols+c]
				if w != nil && !slices.Contains(ix.walls[i], w) {
					ix.walls[i] = append(ix.walls[i], w)
				}
			}
		}
	})

	for _, c := range cs {
		ix.AddCrate(c)
	}
	return ix
}

// InBounds reports whether (row, col) is a cell of the index.
func (ix *Index) InBounds(row, col int) bool {
	return row >= 0 && row < ix.Rows && col >= 0 && col < ix.Cols
}

func (ix *Index) offset(row, col int) int {
	if !ix.InBounds(row, col) {
		panic(fmt.Sprintf("spatial: tile (%d,%d) outside %dx%d index", row, col, ix.Rows, ix.Cols))
	}
	return row*ix.Cols + col
}

// WallsAt returns the walls indexed at (row, col). The slice must not be
// modified.
func (ix *Index) WallsAt(row, col int) []*walls.Wall {
	return ix.walls[ix.offset(row, col)]
}

// CratesAt returns the crates indexed at (row, col). The slice must not be
// modified.
func (ix *Index) CratesAt(row, col int) []*content.Crate {
	return ix.crates[ix.offset(row, col)]
}

// AddCrate registers c on its tile and the eight around it.
func (ix *Index) AddCrate(c *content.Crate) {
	for r := c.Tile.Row - 1; r <= c.Tile.Row+1; r++ {
		for col := c.Tile.Col - 1; col <= c.Tile.Col+1; col++ {
			if !ix.InBounds(r, col) {
				continue
			}
			i := r*ix.Cols + col
			if !slices.Contains(ix.crates[i], c) {
				ix.crates[i] = append(ix.crates[i], c)
			}
		}
	}
}

// RemoveCrate drops c from every tile it was registered on.
func (ix *Index) RemoveCrate(c *content.Crate) {
	for r := c.Tile.Row - 1; r <= c.Tile.Row+1; r++ {
		for col := c.Tile.Col - 1; col <= c.Tile.Col+1; col++ {
			if !ix.InBounds(r, col) {
				continue
			}
			i := r*ix.Cols + col
			ix.crates[i] = slices.DeleteFunc(ix.crates[i], func(o *content.Crate) bool { return o == c })
		}
	}
}

// WallObstacles returns the walls at (row, col) as obstacles.
func (ix *Index) WallObstacles(row, col int) []collision.Obstacle {
	ws := ix.WallsAt(row, col)
	out := make([]collision.Obstacle, len(ws))
	for i, w := range ws {
		out[i] = w
	}
	return out
}

// CrateObstacles returns the crates at (row, col) as obstacles.
func (ix *Index) CrateObstacles(row, col int) []collision.Obstacle {
	cs := ix.CratesAt(row, col)
	out := make([]collision.Obstacle, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

// Blocked reports whether any wall or crate indexed at the tile holding
// world point (x, y) contains it. Points outside the index are open.
func (ix *Index) Blocked(x, y, tileSize float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	t := geom.TileOf(geom.Vec{X: x, Y: y}, tileSize)
	if !ix.InBounds(t.Row, t.Col) {
		return false
	}
	i := t.Row*ix.Cols + t.Col
	for _, w := range ix.walls[i] {
		if w.ContainsPoint(x, y) {
			return true
		}
	}
	for _, c := range ix.crates[i] {
		if c.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}
