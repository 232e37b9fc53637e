package maze

import "chosenoffset.com/intruderalert/internal/world/grid"

// PruneDeadEnds clears floor tiles with at most one open cardinal neighbour
// until none remain. Each pass scans in row-major order and sees the tiles
// it already cleared. It returns the number of tiles cleared.
func PruneDeadEnds(g *grid.Grid) int {
	removed := 0
	for {
		pass := 0
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				if g.TypeAt(row, col) == grid.Floor && g.OpenNeighbors(row, col) <= 1 {
					g.Set(row, col, grid.Empty)
					pass++
				}
			}
		}
		if pass == 0 {
			return removed
		}
		removed += pass
	}
}
