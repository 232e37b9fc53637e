// Package grid provides the tile grid every level generation stage writes into.
package grid

import (
	"fmt"
	"math/rand"

	"chosenoffset.com/intruderalert/internal/core/geom"
)

// Type is the state of a single tile.
type Type uint8

const (
	Empty Type = iota
	Floor
	Wall
)

func (t Type) String() string {
	switch t {
	case Empty:
		return "empty"
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Tile is one cell of the grid.
type Tile struct {
	Row, Col   int
	Type       Type
	Brightness float64 // cosmetic only
}

// Coord returns the tile's coordinate.
func (t *Tile) Coord() geom.Coord {
	return geom.Coord{Row: t.Row, Col: t.Col}
}

// Grid is a rows x cols array of tiles. Both dimensions are always odd.
type Grid struct {
	Rows, Cols int
	tiles      []Tile
}

// NormalizeOdd rounds n up to the next odd number.
func NormalizeOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// New allocates an all-Empty grid. Even dimensions are rounded up to odd.
func New(rows, cols int, rng *rand.Rand) *Grid {
	rows = NormalizeOdd(rows)
	cols = NormalizeOdd(cols)

	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.tiles[row*cols+col] = Tile{
				Row:        row,
				Col:        col,
				Type:       Empty,
				Brightness: 300 + rng.Float64()*50,
			}
		}
	}
	return g
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the tile at (row, col). It panics when out of bounds.
func (g *Grid) At(row, col int) *Tile {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: tile (%d,%d) outside %dx%d", row, col, g.Rows, g.Cols))
	}
	return &g.tiles[row*g.Cols+col]
}

// TypeAt returns the type at (row, col), treating out-of-bounds cells as Empty.
func (g *Grid) TypeAt(row, col int) Type {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.tiles[row*g.Cols+col].Type
}

// Set changes the type at (row, col).
func (g *Grid) Set(row, col int, t Type) {
	g.At(row, col).Type = t
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(t *Tile)) {
	for i := range g.tiles {
		fn(&g.tiles[i])
	}
}

// Count returns the number of tiles of type t.
func (g *Grid) Count(t Type) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Type == t {
			n++
		}
	}
	return n
}

// OpenNeighbors counts the cardinal neighbours of (row, col) that are Floor.
func (g *Grid) OpenNeighbors(row, col int) int {
	n := 0
	for _, d := range geom.Cardinal {
		if g.TypeAt(row+d.Row, col+d.Col) == Floor {
			n++
		}
	}
	return n
}

// Touching reports whether any of the eight tiles around (row, col) has type t.
func (g *Grid) Touching(row, col int, t Type) bool {
	for _, d := range geom.Ring {
		r, c := row+d.Row, col+d.Col
		if g.InBounds(r, c) && g.tiles[r*g.Cols+c].Type == t {
			return true
		}
	}
	return false
}

// Types returns a copy of the type plane, one row per slice, for rendering and tests.
func (g *Grid) Types() [][]Type {
	out := make([][]Type, g.Rows)
	for row := range out {
		out[row] = make([]Type, g.Cols)
		for col := range out[row] {
			out[row][col] = g.tiles[row*g.Cols+col].Type
		}
	}
	return out
}
