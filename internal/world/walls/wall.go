// Package walls turns the boundary of a level's floor into a small set of
// straight wall segments.
package walls

import (
	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/grid"
)

// MaxGlow is how many frames a struck wall stays lit.
const MaxGlow = 300

// Wall is a run of Wall tiles in a single row or column. It is not safe for
// concurrent use.
type Wall struct {
	Tiles     []*grid.Tile
	TopRow    int
	BottomRow int
	LeftCol   int
	RightCol  int

	rect geom.Rect
	glow int
}

// New builds a wall from tiles lying in one row or column.
func New(tiles []*grid.Tile, tileSize float64) *Wall {
	w := &Wall{Tiles: tiles}
	if len(tiles) == 0 {
		return w
	}
	w.TopRow, w.BottomRow = tiles[0].Row, tiles[0].Row
	w.LeftCol, w.RightCol = tiles[0].Col, tiles[0].Col
	for _, t := range tiles[1:] {
		w.TopRow = min(w.TopRow, t.Row)
		w.BottomRow = max(w.BottomRow, t.Row)
		w.LeftCol = min(w.LeftCol, t.Col)
		w.RightCol = max(w.RightCol, t.Col)
	}
	w.rect = geom.Rect{
		Left:   float64(w.LeftCol) * tileSize,
		Top:    float64(w.TopRow) * tileSize,
		Right:  float64(w.RightCol+1) * tileSize,
		Bottom: float64(w.BottomRow+1) * tileSize,
	}
	return w
}

// Horizontal reports whether the wall runs along a row.
func (w *Wall) Horizontal() bool {
	return w.TopRow == w.BottomRow && w.LeftCol != w.RightCol
}

// Bounds returns the wall's world rectangle.
func (w *Wall) Bounds() geom.Rect { return w.rect }

// ContainsPoint reports whether (x, y) lies on the wall, edges included.
func (w *Wall) ContainsPoint(x, y float64) bool {
	return w.rect.ContainsPoint(x, y)
}

// ContainsTile reports whether tile c is part of the wall.
func (w *Wall) ContainsTile(c geom.Coord) bool {
	return w.TopRow <= c.Row && c.Row <= w.BottomRow && w.LeftCol <= c.Col && c.Col <= w.RightCol
}

// Struck lights the wall up.
func (w *Wall) Struck(collision.Strike) {
	w.glow = MaxGlow
}

// Glow returns the frames of glow left.
func (w *Wall) Glow() int { return w.glow }

// Tick fades the glow by one frame.
func (w *Wall) Tick() {
	if w.glow > 0 {
		w.glow--
	}
}
