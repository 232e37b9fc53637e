package maze

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/grid"
)

// candidate marks an Empty cell bordering a region that is not yet joined to
// the spawn region. It only ever appears on a scratch plane.
const candidate = grid.Wall

// Region is a maximal 4-connected set of floor tiles.
type Region struct {
	tiles mapset.Set[geom.Coord]
}

func newRegion() *Region {
	return &Region{tiles: mapset.New[geom.Coord]()}
}

// Contains reports whether c belongs to the region.
func (r *Region) Contains(c geom.Coord) bool { return r.tiles.Has(c) }

// Size returns the number of tiles in the region.
func (r *Region) Size() int { return r.tiles.Size() }

// Each calls fn once per tile in the region, in no particular order.
func (r *Region) Each(fn func(c geom.Coord)) { r.tiles.Each(fn) }

func (r *Region) absorb(o *Region) {
	o.tiles.Each(func(c geom.Coord) { r.tiles.Put(c) })
}

// FindRegions splits the floor of g into regions. The region holding spawn
// comes first; the rest are seeded at the first unclaimed floor tile in
// row-major order.
func FindRegions(g *grid.Grid, spawn geom.Coord) []*Region {
	scratch := g.Scratch()
	var regions []*Region

	start, ok := spawn, scratch.Get(spawn.Row, spawn.Col) == grid.Floor
	if !ok {
		start, ok = scratch.First(grid.Floor)
	}
	for ok {
		regions = append(regions, floodRegion(&scratch, start))
		start, ok = scratch.First(grid.Floor)
	}
	return regions
}

// floodRegion claims every floor tile 4-connected to start, clearing each
// on the scratch plane as it goes.
func floodRegion(scratch *grid.Scratch, start geom.Coord) *Region {
	region := newRegion()
	queue := []geom.Coord{start}
	scratch.Set(start.Row, start.Col, grid.Empty)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		region.tiles.Put(cur)

		for _, d := range geom.Cardinal {
			n := cur.Add(d)
			if scratch.Get(n.Row, n.Col) != grid.Floor {
				continue
			}
			scratch.Set(n.Row, n.Col, grid.Empty)
			queue = append(queue, n)
		}
	}
	return region
}

// Connect joins every floor region to the one holding spawn by opening one
// connector tile at a time. Connectors are chosen in breadth-first order from
// spawn, so the nearest unjoined region is always linked next. It returns the
// number of connectors opened.
func Connect(g *grid.Grid, spawn geom.Coord) int {
	regions := FindRegions(g, spawn)
	opened := 0

	var scratch grid.Scratch
	for len(regions) > 1 {
		scratch.Reset(g)
		for _, r := range regions[1:] {
			r.Each(func(c geom.Coord) {
				for _, d := range geom.Cardinal {
					n := c.Add(d)
					if scratch.InBounds(n.Row, n.Col) && scratch.Get(n.Row, n.Col) == grid.Empty {
						scratch.Set(n.Row, n.Col, candidate)
					}
				}
			})
		}

		connector, from, found := nearestCandidate(&scratch, spawn)
		if !found {
			// Only reachable on a hand-built grid whose regions are more than
			// one tile apart.
			break
		}

		g.Set(connector.Row, connector.Col, grid.Floor)
		idx := joinedRegion(regions, connector, from)
		regions[0].tiles.Put(connector)
		if idx > 0 {
			regions[0].absorb(regions[idx])
			regions = append(regions[:idx], regions[idx+1:]...)
		}
		opened++
	}
	return opened
}

// nearestCandidate floods out from spawn over floor and returns the first
// candidate cell touched together with the floor tile it was reached from.
func nearestCandidate(scratch *grid.Scratch, spawn geom.Coord) (connector, from geom.Coord, found bool) {
	queue := []geom.Coord{spawn}
	scratch.Set(spawn.Row, spawn.Col, grid.Empty)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range geom.Cardinal {
			n := cur.Add(d)
			switch scratch.Get(n.Row, n.Col) {
			case candidate:
				return n, cur, true
			case grid.Floor:
				scratch.Set(n.Row, n.Col, grid.Empty)
				queue = append(queue, n)
			}
		}
	}
	return geom.Coord{}, geom.Coord{}, false
}

// joinedRegion returns the index of the non-spawn region the connector opens
// onto. The tile straight across from the approach is checked first, then
// the connector's other neighbours. It returns 0 when none qualifies.
func joinedRegion(regions []*Region, connector, from geom.Coord) int {
	across := geom.Coord{Row: 2*connector.Row - from.Row, Col: 2*connector.Col - from.Col}
	if idx := regionIndex(regions, across); idx > 0 {
		return idx
	}
	for _, d := range geom.Cardinal {
		if idx := regionIndex(regions, connector.Add(d)); idx > 0 {
			return idx
		}
	}
	return 0
}

func regionIndex(regions []*Region, c geom.Coord) int {
	for i := 1; i < len(regions); i++ {
		if regions[i].Contains(c) {
			return i
		}
	}
	return 0
}
