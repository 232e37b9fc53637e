package room

import "chosenoffset.com/intruderalert/internal/core/geom"

// Room is an axis-aligned rectangle of floor tiles. Bounds are inclusive.
type Room struct {
	TopRow    int
	BottomRow int
	LeftCol   int
	RightCol  int
}

// NewCentered builds a room of rows x cols tiles centred on centre.
func NewCentered(centre geom.Coord, rows, cols int) *Room {
	rowRad, colRad := rows/2, cols/2
	return &Room{
		TopRow:    centre.Row - rowRad,
		BottomRow: centre.Row + rowRad,
		LeftCol:   centre.Col - colRad,
		RightCol:  centre.Col + colRad,
	}
}

// Rows returns the room height in tiles.
func (r *Room) Rows() int { return r.BottomRow - r.TopRow + 1 }

// Cols returns the room width in tiles.
func (r *Room) Cols() int { return r.RightCol - r.LeftCol + 1 }

// Contains reports whether tile (row, col) is inside the room.
func (r *Room) Contains(row, col int) bool {
	return r.TopRow <= row && row <= r.BottomRow && r.LeftCol <= col && col <= r.RightCol
}

// CenterTile returns the tile at the middle of the room.
func (r *Room) CenterTile() geom.Coord {
	return geom.Coord{
		Row: (r.TopRow + r.BottomRow) / 2,
		Col: (r.LeftCol + r.RightCol) / 2,
	}
}

// CenterPos returns the world position of the centre of the room.
func (r *Room) CenterPos(tileSize float64) geom.Vec {
	return geom.Vec{
		X: float64(r.LeftCol+r.RightCol)*tileSize/2 + tileSize/2,
		Y: float64(r.TopRow+r.BottomRow)*tileSize/2 + tileSize/2,
	}
}

// Bounds returns the room's world rectangle.
func (r *Room) Bounds(tileSize float64) geom.Rect {
	return geom.Rect{
		Left:   float64(r.LeftCol) * tileSize,
		Top:    float64(r.TopRow) * tileSize,
		Right:  float64(r.RightCol+1) * tileSize,
		Bottom: float64(r.BottomRow+1) * tileSize,
	}
}

// InRoom reports whether world position (x, y) lies inside the room.
func (r *Room) InRoom(x, y, tileSize float64) bool {
	return r.Bounds(tileSize).ContainsPoint(x, y)
}
