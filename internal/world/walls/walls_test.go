package walls

import (
	"math/rand"
	"testing"

	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/grid"
	"chosenoffset.com/intruderalert/internal/world/maze"
	"chosenoffset.com/intruderalert/internal/world/room"
)

func TestMergeRingAroundBlock(t *testing.T) {
	g := grid.New(7, 7, rand.New(rand.NewSource(1)))
	for row := 2; row <= 4; row++ {
		for col := 2; col <= 4; col++ {
			g.Set(row, col, grid.Floor)
		}
	}

	walls := Merge(g, 50)
	if g.Count(grid.Wall) != 16 {
		t.Fatalf("Expected 16 boundary tiles, got %d", g.Count(grid.Wall))
	}

	want := []struct {
		top, bottom, left, right int
	}{
		{1, 1, 1, 5},
		{2, 5, 1, 1},
		{2, 5, 5, 5},
		{5, 5, 2, 4},
	}
	if len(walls) != len(want) {
		t.Fatalf("Expected %d walls, got %d", len(want), len(walls))
	}
	for i, w := range want {
		got := walls[i]
		if got.TopRow != w.top || got.BottomRow != w.bottom || got.LeftCol != w.left || got.RightCol != w.right {
			t.Errorf("wall %d: expected rows %d-%d cols %d-%d, got rows %d-%d cols %d-%d",
				i, w.top, w.bottom, w.left, w.right, got.TopRow, got.BottomRow, got.LeftCol, got.RightCol)
		}
	}

	top := walls[0]
	if !top.Horizontal() || walls[1].Horizontal() {
		t.Errorf("Expected first wall horizontal and second vertical")
	}
	r := top.Bounds()
	if r.Left != 50 || r.Top != 50 || r.Right != 300 || r.Bottom != 100 {
		t.Errorf("Unexpected bounds %+v", r)
	}
	if !top.ContainsPoint(300, 100) || top.ContainsPoint(301, 100) {
		t.Errorf("ContainsPoint should include edges only")
	}
}

func TestMergedWallsPartitionBoundary(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := grid.New(25, 41, rng)
		layout := room.NewPlacer(g, room.DefaultPlacerConfig(), rng).Place()
		spawn := layout.Spawn.CenterTile()
		maze.NewCarver(g, rng).Carve(spawn)
		maze.Connect(g, spawn)
		maze.PruneDeadEnds(g)

		walls := Merge(g, 50)
		seen := map[geom.Coord]int{}
		for i, w := range walls {
			if w.TopRow != w.BottomRow && w.LeftCol != w.RightCol {
				t.Fatalf("seed=%d: wall %d spans rows and columns", seed, i)
			}
			span := (w.BottomRow - w.TopRow + 1) * (w.RightCol - w.LeftCol + 1)
			if span != len(w.Tiles) {
				t.Fatalf("seed=%d: wall %d has %d tiles over a span of %d", seed, i, len(w.Tiles), span)
			}
			for _, tile := range w.Tiles {
				if tile.Type != grid.Wall {
					t.Fatalf("seed=%d: wall %d holds a %v tile", seed, i, tile.Type)
				}
				if prev, ok := seen[tile.Coord()]; ok {
					t.Fatalf("seed=%d: tile %v in walls %d and %d", seed, tile.Coord(), prev, i)
				}
				seen[tile.Coord()] = i
			}
		}
		if len(seen) != g.Count(grid.Wall) {
			t.Errorf("seed=%d: walls cover %d tiles, grid has %d", seed, len(seen), g.Count(grid.Wall))
		}
	}
}

func TestGlowFades(t *testing.T) {
	g := grid.New(3, 3, rand.New(rand.NewSource(1)))
	w := New([]*grid.Tile{g.At(0, 0), g.At(0, 1)}, 50)

	w.Struck(collision.Strike{Side: collision.SideTop})
	if w.Glow() != MaxGlow {
		t.Fatalf("Expected glow %d after strike, got %d", MaxGlow, w.Glow())
	}
	w.Tick()
	if w.Glow() != MaxGlow-1 {
		t.Errorf("Expected glow to fade by one, got %d", w.Glow())
	}
	for i := 0; i < MaxGlow*2; i++ {
		w.Tick()
	}
	if w.Glow() != 0 {
		t.Errorf("Expected glow to stop at 0, got %d", w.Glow())
	}
}
