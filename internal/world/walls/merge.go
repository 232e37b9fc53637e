package walls

import (
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/grid"
)

// MarkBoundary turns every Empty tile touching Floor, diagonals included,
// into Wall. It returns the number of tiles marked.
func MarkBoundary(g *grid.Grid) int {
	marked := 0
	g.Each(func(t *grid.Tile) {
		if t.Type == grid.Empty && g.Touching(t.Row, t.Col, grid.Floor) {
			t.Type = grid.Wall
			marked++
		}
	})
	return marked
}

// Merge marks the floor boundary and groups the Wall tiles into straight
// runs. Runs are found in row-major order of their first tile; a run is
// horizontal when its first tile has a Wall neighbour to the left or right,
// otherwise vertical. Every Wall tile ends up in exactly one run.
func Merge(g *grid.Grid, tileSize float64) []*Wall {
	MarkBoundary(g)

	scratch := g.Scratch()
	var walls []*Wall

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if scratch.Get(row, col) != grid.Wall {
				continue
			}
			start := geom.Coord{Row: row, Col: col}
			horizontal := scratch.Get(row, col-1) == grid.Wall || scratch.Get(row, col+1) == grid.Wall

			run := claimRun(&scratch, start, horizontal)
			tiles := make([]*grid.Tile, len(run))
			for i, c := range run {
				tiles[i] = g.At(c.Row, c.Col)
			}
			walls = append(walls, New(tiles, tileSize))
		}
	}
	return walls
}

// claimRun floods along one axis from start, clearing every Wall cell it
// reaches on the scratch plane, and returns them in visit order.
func claimRun(scratch *grid.Scratch, start geom.Coord, horizontal bool) []geom.Coord {
	axis := [2]geom.Coord{{Row: -1}, {Row: 1}}
	if horizontal {
		axis = [2]geom.Coord{{Col: -1}, {Col: 1}}
	}

	var run []geom.Coord
	queue := []geom.Coord{start}
	scratch.Set(start.Row, start.Col, grid.Empty)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		run = append(run, cur)

		for _, d := range axis {
			n := cur.Add(d)
			if scratch.Get(n.Row, n.Col) != grid.Wall {
				continue
			}
			scratch.Set(n.Row, n.Col, grid.Empty)
			queue = append(queue, n)
		}
	}
	return run
}
