package grid

import "chosenoffset.com/intruderalert/internal/core/geom"

// Scratch is a throwaway copy of a grid's type plane. Generation stages that
// need to mark cells as visited work on a Scratch so the real grid is only
// written at explicit points.
type Scratch struct {
	Rows, Cols int
	types      []Type
}

// Scratch copies the current type plane of g.
func (g *Grid) Scratch() Scratch {
	s := Scratch{Rows: g.Rows, Cols: g.Cols, types: make([]Type, len(g.tiles))}
	for i := range g.tiles {
		s.types[i] = g.tiles[i].Type
	}
	return s
}

// Reset overwrites s with the current type plane of g, reusing its storage.
func (s *Scratch) Reset(g *Grid) {
	if len(s.types) != len(g.tiles) {
		*s = g.Scratch()
		return
	}
	s.Rows, s.Cols = g.Rows, g.Cols
	for i := range g.tiles {
		s.types[i] = g.tiles[i].Type
	}
}

// InBounds reports whether (row, col) lies inside the scratch plane.
func (s *Scratch) InBounds(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// Get returns the type at (row, col); out-of-bounds reads are Empty.
func (s *Scratch) Get(row, col int) Type {
	if !s.InBounds(row, col) {
		return Empty
	}
	return s.types[row*s.Cols+col]
}

// Set writes the type at (row, col).
func (s *Scratch) Set(row, col int, t Type) {
	s.types[row*s.Cols+col] = t
}

// First returns the first cell of type t in row-major order.
func (s *Scratch) First(t Type) (geom.Coord, bool) {
	for i, v := range s.types {
		if v == t {
			return geom.Coord{Row: i / s.Cols, Col: i % s.Cols}, true
		}
	}
	return geom.Coord{}, false
}
