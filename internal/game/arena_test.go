package game

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/core/collision"
	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/world/content"
	"chosenoffset.com/intruderalert/internal/world/grid"
	"chosenoffset.com/intruderalert/internal/world/level"
	"chosenoffset.com/intruderalert/internal/world/room"
	"chosenoffset.com/intruderalert/internal/world/spatial"
	"chosenoffset.com/intruderalert/internal/world/walls"
)

const tileSize = 50

// openArena builds a single 7x13 room walled on every side, with the
// player at tile (4,3) and no enemies.
func openArena(t *testing.T) *Arena {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	g := grid.New(9, 15, rng)
	r := &room.Room{TopRow: 1, BottomRow: 7, LeftCol: 1, RightCol: 13}
	for row := r.TopRow; row <= r.BottomRow; row++ {
		for col := r.LeftCol; col <= r.RightCol; col++ {
			g.Set(row, col, grid.Floor)
		}
	}
	ws := walls.Merge(g, tileSize)
	lvl := &level.Level{
		TileSize:    tileSize,
		Grid:        g,
		Rooms:       []*room.Room{r},
		SpawnRoom:   r,
		PlayerStart: geom.TileCenter(geom.Coord{Row: 4, Col: 3}, tileSize),
		Walls:       ws,
		Index:       spatial.Build(g, ws, nil),
	}
	return NewArena(config.DefaultConfig(), lvl, rng)
}

func (a *Arena) addEnemy(pos geom.Vec, health float64) *Character {
	e := NewEnemy(a.Config, content.EnemySpawn{
		Pos:      pos,
		Tile:     geom.TileOf(pos, tileSize),
		Health:   health,
		Size:     tileSize / 2,
		MaxSpeed: 3,
		Range:    15 * tileSize,
	})
	a.Enemies = append(a.Enemies, e)
	return e
}

func (a *Arena) addCrate(tile geom.Coord, explosive bool) *content.Crate {
	c := content.NewCrate(geom.TileCenter(tile, tileSize), tileSize/2, explosive, tile)
	a.Level.Crates = append(a.Level.Crates, c)
	a.Level.Index.AddCrate(c)
	return c
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSteerFromRest(t *testing.T) {
	c := &Character{MaxSpeed: 8}
	c.Steer(1, 0)
	if c.Vel.X != 2 || c.Vel.Y != 0 {
		t.Errorf("Expected velocity (2,0), got %v", c.Vel)
	}

	d := &Character{MaxSpeed: 8}
	d.Steer(1, -1)
	want := 8 * math.Cos(math.Pi/4) / 4
	if !approx(d.Vel.X, want) || !approx(d.Vel.Y, -want) {
		t.Errorf("Expected diagonal velocity (%v,%v), got %v", want, -want, d.Vel)
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	a := openArena(t)
	for range 200 {
		a.Step(Input{Right: true})
	}

	p := a.Player
	if !a.Completed {
		t.Error("Expected a level without enemies to be completed")
	}
	if !approx(p.Pos.X, 700-p.Size/2) {
		t.Errorf("Expected player flush against the east wall at x=%v, got %v", 700-p.Size/2, p.Pos.X)
	}
	if p.Pos.Y != a.Level.PlayerStart.Y {
		t.Errorf("Expected y to stay %v, got %v", a.Level.PlayerStart.Y, p.Pos.Y)
	}

	tile, ok := a.Level.TileOf(p.Pos)
	if !ok || a.Level.Grid.TypeAt(tile.Row, tile.Col) != grid.Floor {
		t.Fatalf("Player ended on tile %v (in grid: %v)", tile, ok)
	}
	for _, w := range a.Level.Walls {
		if p.Rect().Overlaps(w.Bounds()) {
			t.Errorf("Player overlaps wall %v", w.Bounds())
		}
	}
}

func TestBulletInWallSparesTarget(t *testing.T) {
	a := openArena(t)
	pos := geom.Vec{X: 725, Y: 225}
	e := a.addEnemy(pos, 20)
	b := &collision.Bullet{
		Body:     collision.Body{Pos: pos, Vel: geom.Vec{X: 10}, Size: 15},
		Team:     collision.TeamPlayer,
		Damage:   10,
		Lifespan: 36,
	}

	if a.stepBullet(b, []*Character{e}) {
		t.Fatal("Expected a bullet inside a wall to be destroyed")
	}
	if e.Health != 20 {
		t.Errorf("Expected the wall to absorb the bullet, enemy health %v", e.Health)
	}

	for _, w := range a.Level.Walls {
		if w.Glow() != 0 {
			t.Errorf("Expected a plain bullet to leave walls unlit, wall %v glows %d", w.Bounds(), w.Glow())
		}
	}
}

func TestBulletHitsEnemy(t *testing.T) {
	a := openArena(t)
	start := a.Level.PlayerStart
	e := a.addEnemy(start.Add(geom.Vec{X: 5}), 20)
	b := &collision.Bullet{
		Body:     collision.Body{Pos: start, Vel: geom.Vec{X: 10}, Size: 15},
		Team:     collision.TeamPlayer,
		Damage:   10,
		Force:    3,
		Lifespan: 36,
	}

	if a.stepBullet(b, []*Character{a.Player, e}) {
		t.Fatal("Expected the bullet to be spent on the enemy")
	}
	if e.Health != 10 {
		t.Errorf("Expected enemy health 10, got %v", e.Health)
	}
	if !approx(e.Vel.X, 3) || !approx(e.Vel.Y, 0) {
		t.Errorf("Expected knockback (3,0), got %v", e.Vel)
	}
	if a.Player.Health != a.Player.MaxHealth {
		t.Errorf("Bullet hurt its own team: player health %v", a.Player.Health)
	}
}

func TestBulletExpires(t *testing.T) {
	a := openArena(t)
	b := &collision.Bullet{
		Body:     collision.Body{Pos: a.Level.PlayerStart, Vel: geom.Vec{X: 1}, Size: 15},
		Lifespan: 3,
	}
	// Fired on frame 0, it is still in flight on frame 3.
	for frame := 0; frame <= 3; frame++ {
		if !a.stepBullet(b, nil) {
			t.Fatalf("Bullet removed early on frame %d", frame)
		}
	}
	if a.stepBullet(b, nil) {
		t.Error("Expected the bullet to expire once past its lifespan")
	}
}

func TestDetonateFalloff(t *testing.T) {
	a := openArena(t)
	centre := geom.Vec{X: 500, Y: 225}
	near := a.addEnemy(centre.Add(geom.Vec{X: 50}), 100)
	far := a.addEnemy(centre.Add(geom.Vec{X: 150}), 100)

	a.Detonate(Blast{Pos: centre, Radius: 100, Damage: 50})

	if !approx(near.Health, 75) {
		t.Errorf("Expected 25 damage at half radius, health %v", near.Health)
	}
	if !approx(near.Vel.X, 17.5) || !approx(near.Vel.Y, 0) {
		t.Errorf("Expected knockback (17.5,0), got %v", near.Vel)
	}
	if far.Health != 100 || far.Vel != (geom.Vec{}) {
		t.Errorf("Enemy outside the radius was affected: health %v vel %v", far.Health, far.Vel)
	}
	if a.Player.Health != a.Player.MaxHealth {
		t.Errorf("Player outside the radius was hurt: %v", a.Player.Health)
	}
	if len(a.Blasts) != 1 {
		t.Errorf("Expected 1 recorded blast, got %d", len(a.Blasts))
	}
}

func TestExplosiveCrateChain(t *testing.T) {
	a := openArena(t)
	a.addEnemy(geom.TileCenter(geom.Coord{Row: 1, Col: 13}, tileSize), 100)
	bomb := a.addCrate(geom.Coord{Row: 4, Col: 8}, true)
	plain := a.addCrate(geom.Coord{Row: 4, Col: 9}, false)
	bomb.Durability = 0

	a.Step(Input{})

	if len(a.Blasts) != 1 {
		t.Fatalf("Expected 1 blast, got %d", len(a.Blasts))
	}
	if len(a.Level.Crates) != 0 {
		t.Errorf("Expected both crates gone, %d left", len(a.Level.Crates))
	}
	for _, tile := range []geom.Coord{bomb.Tile, plain.Tile} {
		if n := len(a.Level.Index.CratesAt(tile.Row, tile.Col)); n != 0 {
			t.Errorf("Index still holds %d crates at %v", n, tile)
		}
	}
}

func TestEnemyHoldsFireDuringGrace(t *testing.T) {
	a := openArena(t)
	a.addEnemy(a.Level.PlayerStart.Add(geom.Vec{X: 75}), 100)

	a.Step(Input{})
	if len(a.Bullets) != 0 {
		t.Fatalf("Enemy fired on frame %d", a.Frame)
	}

	a.Frame = a.Config.Physics.GraceFrames
	a.Step(Input{})
	if len(a.Bullets) != 1 {
		t.Fatalf("Expected the enemy to fire after the grace period, got %d bullets", len(a.Bullets))
	}
	if a.Bullets[0].Team != collision.TeamEnemy {
		t.Errorf("Expected an enemy bullet, got team %v", a.Bullets[0].Team)
	}
}

func TestCrateBlocksSight(t *testing.T) {
	a := openArena(t)
	e := a.addEnemy(a.Level.PlayerStart.Add(geom.Vec{X: 100}), 100)

	if !a.CanSee(e, a.Player.Pos) {
		t.Fatal("Expected a clear line across the open room")
	}
	a.addCrate(geom.Coord{Row: 4, Col: 4}, false)
	if a.CanSee(e, a.Player.Pos) {
		t.Error("Expected the crate to block the line of sight")
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	a := openArena(t)
	a.addEnemy(geom.TileCenter(geom.Coord{Row: 1, Col: 13}, tileSize), 100)
	a.Player.Health = 0

	a.Step(Input{Fire: true})
	if !a.GameOver {
		t.Fatal("Expected game over once the player has no health")
	}
	if len(a.Bullets) != 0 {
		t.Errorf("Dead player fired %d bullets", len(a.Bullets))
	}
}

func TestWeaponCooldown(t *testing.T) {
	w := NewWeapon(config.WeaponConfig{Speed: 10, Size: 15, Lifespan: 36, Cooldown: 15})
	rng := rand.New(rand.NewSource(1))

	if b := w.Fire(1, collision.TeamPlayer, geom.Vec{}, 0, rng); b == nil || !approx(b.Vel.X, 10) {
		t.Fatalf("Expected a first shot heading east, got %+v", b)
	}
	if w.Fire(16, collision.TeamPlayer, geom.Vec{}, 0, rng) != nil {
		t.Error("Weapon fired inside its cooldown")
	}
	if w.Fire(17, collision.TeamPlayer, geom.Vec{}, 0, rng) == nil {
		t.Error("Weapon did not fire after its cooldown")
	}
}
