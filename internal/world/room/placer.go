// Package room places rectangular rooms into a level grid.
package room

import (
	"math/rand"

	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/grid"
)

// Sizes a random room may take along either axis. Every value is 4k+1 so
// room edges stay on the odd maze lattice.
var Sizes = []int{5, 9, 13}

// PlacerConfig holds configuration for room placement
type PlacerConfig struct {
	Attempts  int // Rooms to place besides the spawn room
	FailCap   int // Consecutive rejections before giving up
	SpawnSize int // Spawn room edge length in tiles (odd)
}

// DefaultPlacerConfig returns the stock placement budget.
func DefaultPlacerConfig() PlacerConfig {
	return PlacerConfig{
		Attempts:  100,
		FailCap:   500,
		SpawnSize: 5,
	}
}

// Layout is the result of room placement.
type Layout struct {
	Spawn *Room   // Always Rooms[0]
	Rooms []*Room // All placed rooms, spawn first
}

// Placer stamps rooms into a grid
type Placer struct {
	grid   *grid.Grid
	config PlacerConfig
	rng    *rand.Rand
}

// NewPlacer creates a new room placer
func NewPlacer(g *grid.Grid, config PlacerConfig, rng *rand.Rand) *Placer {
	if config.SpawnSize <= 0 {
		config.SpawnSize = 5
	}
	if config.SpawnSize%2 == 0 {
		config.SpawnSize++
	}
	return &Placer{grid: g, config: config, rng: rng}
}

// Place stamps the spawn room and then tries to add config.Attempts more
// rooms. A candidate overlapping any floor tile is rejected; placement stops
// early after config.FailCap rejections in a row.
func (p *Placer) Place() Layout {
	size := p.config.SpawnSize

	// The spawn centre is drawn as if the room were three times larger so it
	// stays clear of the border.
	centre, _ := p.randomCentre(size*3, size*3)
	spawn := p.stamp(centre, size, size)
	layout := Layout{Spawn: spawn, Rooms: []*Room{spawn}}

	placed, fails := 0, 0
	for placed < p.config.Attempts && fails < p.config.FailCap {
		rows := Sizes[p.rng.Intn(len(Sizes))]
		cols := Sizes[p.rng.Intn(len(Sizes))]

		centre, ok := p.randomCentre(rows, cols)
		if !ok || p.overlapping(centre, rows, cols) {
			fails++
			continue
		}

		layout.Rooms = append(layout.Rooms, p.stamp(centre, rows, cols))
		placed++
		fails = 0
	}

	return layout
}

// randomCentre picks an odd-aligned centre that keeps a rows x cols room
// inside the grid with at least one tile of border.
func (p *Placer) randomCentre(rows, cols int) (geom.Coord, bool) {
	rowBoundary := rows/2 + 1
	colBoundary := cols/2 + 1

	rowSpan := p.grid.Rows - 2*rowBoundary
	colSpan := p.grid.Cols - 2*colBoundary
	if rowSpan <= 0 || colSpan <= 0 {
		// Room cannot fit; fall back to the grid centre.
		return geom.Coord{Row: p.grid.Rows/2 | 1, Col: p.grid.Cols/2 | 1}, false
	}

	row := rowBoundary + p.rng.Intn(rowSpan)
	if row%2 == 0 {
		row--
	}
	col := colBoundary + p.rng.Intn(colSpan)
	if col%2 == 0 {
		col--
	}
	return geom.Coord{Row: row, Col: col}, true
}

func (p *Placer) overlapping(centre geom.Coord, rows, cols int) bool {
	r := NewCentered(centre, rows, cols)
	for row := r.TopRow; row <= r.BottomRow; row++ {
		for col := r.LeftCol; col <= r.RightCol; col++ {
			if p.grid.TypeAt(row, col) == grid.Floor {
				return true
			}
		}
	}
	return false
}

func (p *Placer) stamp(centre geom.Coord, rows, cols int) *Room {
	r := NewCentered(centre, rows, cols)
	for row := r.TopRow; row <= r.BottomRow; row++ {
		for col := r.LeftCol; col <= r.RightCol; col++ {
			if p.grid.InBounds(row, col) {
				p.grid.Set(row, col, grid.Floor)
			}
		}
	}
	return r
}
