// Package geom holds the small value types shared by the level builder and
// the collision engine.
package geom

import "math"

// Vec represents a point or velocity in world space (pixels).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dist returns the euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Polar returns a vector of the given magnitude pointing along angle (radians).
func Polar(magnitude, angle float64) Vec {
	return Vec{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}

// Coord represents a tile coordinate.
type Coord struct {
	Row, Col int
}

// TileOf returns the tile containing the world position p.
func TileOf(p Vec, tileSize float64) Coord {
	return Coord{Row: int(p.Y / tileSize), Col: int(p.X / tileSize)}
}

// TileCenter returns the world position at the centre of tile c.
func TileCenter(c Coord, tileSize float64) Vec {
	return Vec{
		X: float64(c.Col)*tileSize + tileSize/2,
		Y: float64(c.Row)*tileSize + tileSize/2,
	}
}

// Cardinal lists the four cardinal offsets in the order west, north, east, south.
// Flood fills in this module iterate neighbours in this order.
var Cardinal = [4]Coord{
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
}

// Ring lists the eight surrounding offsets, clockwise starting south-west.
// Per-tile wall lists are built in this order.
var Ring = [8]Coord{
	{Row: 1, Col: -1}, {Row: 0, Col: -1}, {Row: -1, Col: -1}, {Row: -1, Col: 0},
	{Row: -1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}
