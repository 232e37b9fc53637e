package collision

import (
	"math"
	"testing"

	"chosenoffset.com/intruderalert/internal/core/geom"
)

// box is a minimal obstacle recording its strikes.
type box struct {
	rect    geom.Rect
	strikes []Strike
}

func (b *box) Bounds() geom.Rect                { return b.rect }
func (b *box) ContainsPoint(x, y float64) bool { return b.rect.ContainsPoint(x, y) }
func (b *box) Struck(s Strike)                 { b.strikes = append(b.strikes, s) }

// wallAt returns a 50x50 obstacle whose left edge is at x.
func wallAt(x float64) *box {
	return &box{rect: geom.Rect{Left: x, Top: 0, Right: x + 50, Bottom: 50}}
}

func TestResolveFlushAgainstWall(t *testing.T) {
	tests := []struct {
		name  string
		resp  Response
		wantX float64
	}{
		{"slide", Slide, 0},
		{"bounce", Bounce, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wallAt(100)
			// Right edge at 97, three units short of the wall.
			b := Body{Pos: geom.Vec{X: 87, Y: 25}, Vel: geom.Vec{X: 5, Y: 1.5}, Size: 20}

			if hits := b.Resolve([]Obstacle{w}, tt.resp, 0); hits != 1 {
				t.Fatalf("Expected 1 hit, got %d", hits)
			}
			if b.Rect().Right != 100 {
				t.Errorf("Expected flush right edge at 100, got %v", b.Rect().Right)
			}
			if b.Vel.X != tt.wantX {
				t.Errorf("Expected vx=%v, got %v", tt.wantX, b.Vel.X)
			}
			if b.Vel.Y != 1.5 {
				t.Errorf("Expected vy unchanged, got %v", b.Vel.Y)
			}
			if len(w.strikes) != 1 || w.strikes[0].Side != SideLeft {
				t.Errorf("Expected one strike on the left face, got %+v", w.strikes)
			}
		})
	}
}

func TestResolveIgnoresDistantAndReceding(t *testing.T) {
	w := wallAt(100)

	far := Body{Pos: geom.Vec{X: 10, Y: 25}, Vel: geom.Vec{X: 5}, Size: 20}
	if hits := far.Resolve([]Obstacle{w}, Slide, 0); hits != 0 {
		t.Errorf("Expected no hit for a distant body, got %d", hits)
	}

	receding := Body{Pos: geom.Vec{X: 87, Y: 25}, Vel: geom.Vec{X: -5}, Size: 20}
	if hits := receding.Resolve([]Obstacle{w}, Slide, 0); hits != 0 {
		t.Errorf("Expected no hit for a receding body, got %d", hits)
	}

	below := Body{Pos: geom.Vec{X: 87, Y: 200}, Vel: geom.Vec{X: 5}, Size: 20}
	if hits := below.Resolve([]Obstacle{w}, Slide, 0); hits != 0 {
		t.Errorf("Expected no hit for a body in another row band, got %d", hits)
	}
}

func TestResolveVerticalFaces(t *testing.T) {
	w := &box{rect: geom.Rect{Left: 0, Top: 100, Right: 50, Bottom: 150}}

	down := Body{Pos: geom.Vec{X: 25, Y: 88}, Vel: geom.Vec{Y: 4}, Size: 20}
	down.Resolve([]Obstacle{w}, Slide, 0)
	if down.Pos.Y != 90 || down.Vel.Y != 0 {
		t.Errorf("Expected flush on top face, got y=%v vy=%v", down.Pos.Y, down.Vel.Y)
	}

	up := Body{Pos: geom.Vec{X: 25, Y: 162}, Vel: geom.Vec{Y: -4}, Size: 20}
	up.Resolve([]Obstacle{w}, Bounce, 0)
	if up.Pos.Y != 160 || up.Vel.Y != 4 {
		t.Errorf("Expected bounce off bottom face, got y=%v vy=%v", up.Pos.Y, up.Vel.Y)
	}
}

func TestApplyFriction(t *testing.T) {
	v := ApplyFriction(geom.Vec{X: 10, Y: 0.01}, 0.85, 0.01)
	if math.Abs(v.X-8.5) > 1e-9 {
		t.Errorf("Expected vx=8.5, got %v", v.X)
	}
	if v.Y != 0 {
		t.Errorf("Expected vy snapped to 0, got %v", v.Y)
	}

	v = geom.Vec{X: 1}
	for i := 0; i < 200; i++ {
		v = ApplyFriction(v, 0.85, 0.01)
	}
	if v.X != 0 {
		t.Errorf("Expected velocity to settle at 0, got %v", v.X)
	}
}

func TestBulletWallDispositions(t *testing.T) {
	w := wallAt(100)

	plain := &Bullet{Body: Body{Pos: geom.Vec{X: 102, Y: 25}, Vel: geom.Vec{X: 10}, Size: 10}}
	if d := plain.ResolveWalls([]Obstacle{w}); d != Destroyed {
		t.Errorf("Expected overlapping bullet destroyed, got %v", d)
	}

	idle := &Bullet{Body: Body{Pos: geom.Vec{X: 20, Y: 25}, Vel: geom.Vec{X: 10}, Size: 10}}
	if d := idle.ResolveWalls([]Obstacle{w}); d != Passed {
		t.Errorf("Expected bullet in the open to pass, got %v", d)
	}

	bouncer := &Bullet{Body: Body{Pos: geom.Vec{X: 91, Y: 25}, Vel: geom.Vec{X: 10}, Size: 10}, Bounces: true}
	if d := bouncer.ResolveWalls([]Obstacle{w}); d != Blocked {
		t.Errorf("Expected bouncing bullet blocked, got %v", d)
	}
	if bouncer.Vel.X != -10 || bouncer.Pos.X != 95 {
		t.Errorf("Expected reflection flush at 95, got x=%v vx=%v", bouncer.Pos.X, bouncer.Vel.X)
	}
	if len(w.strikes) != 1 || w.strikes[0].Side != SideLeft {
		t.Errorf("Expected only the bounce to strike the wall, got %+v", w.strikes)
	}
}

func TestBouncingBulletStopsAtFirstOverlap(t *testing.T) {
	first := wallAt(100)
	behind := &box{rect: geom.Rect{Left: 60, Top: 0, Right: 88, Bottom: 50}}
	b := &Bullet{Body: Body{Pos: geom.Vec{X: 102, Y: 25}, Vel: geom.Vec{X: 10}, Size: 10}, Bounces: true}

	if d := b.ResolveWalls([]Obstacle{first, behind}); d != Blocked {
		t.Fatalf("Expected bouncing bullet blocked, got %v", d)
	}
	if b.Pos.X != 95 || b.Vel.X != -10 {
		t.Errorf("Expected reflection flush at 95, got x=%v vx=%v", b.Pos.X, b.Vel.X)
	}
	if len(behind.strikes) != 0 {
		t.Errorf("Expected walls after the overlapped one to be skipped, got %+v", behind.strikes)
	}
}

func TestBulletCrateDurability(t *testing.T) {
	crate := &box{rect: geom.Rect{Left: 100, Top: 0, Right: 125, Bottom: 25}}
	b := &Bullet{
		Body:        Body{Pos: geom.Vec{X: 104, Y: 12}, Vel: geom.Vec{X: 10}, Size: 10},
		CrateDamage: 3,
		Durability:  2,
	}

	if d := b.ResolveCrates([]Obstacle{crate}); d != Blocked {
		t.Fatalf("Expected first crate contact to block, got %v", d)
	}
	if d := b.ResolveCrates([]Obstacle{crate}); d != Destroyed {
		t.Fatalf("Expected spent bullet destroyed, got %v", d)
	}
	if len(crate.strikes) != 2 || crate.strikes[0].Damage != 3 {
		t.Errorf("Expected two damaging strikes, got %+v", crate.strikes)
	}
}

// dummy is a Target for bullet hit tests.
type dummy struct {
	pos    geom.Vec
	team   Team
	health float64
	push   geom.Vec
}

func (d *dummy) Bounds() geom.Rect { return geom.RectAround(d.pos, 20, 20) }
func (d *dummy) Team() Team        { return d.team }
func (d *dummy) TakeHit(damage float64, knockback geom.Vec) {
	d.health -= damage
	d.push = d.push.Add(knockback)
}

func TestHitTargetFiltersTeamAndKnocksBack(t *testing.T) {
	friend := &dummy{pos: geom.Vec{X: 100, Y: 100}, team: TeamPlayer, health: 100}
	foe := &dummy{pos: geom.Vec{X: 105, Y: 100}, team: TeamEnemy, health: 100}
	b := &Bullet{
		Body:   Body{Pos: geom.Vec{X: 98, Y: 100}, Size: 10},
		Team:   TeamPlayer,
		Damage: 15,
		Force:  4,
	}

	hit, ok := HitTarget(b, []*dummy{friend, foe})
	if !ok || hit != foe {
		t.Fatalf("Expected the enemy to be hit, got %v %v", hit, ok)
	}
	if friend.health != 100 {
		t.Errorf("Expected teammate untouched, got health %v", friend.health)
	}
	if foe.health != 85 {
		t.Errorf("Expected health 85, got %v", foe.health)
	}
	if math.Abs(foe.push.X-4) > 1e-9 || math.Abs(foe.push.Y) > 1e-9 {
		t.Errorf("Expected knockback (4,0) away from the bullet, got %+v", foe.push)
	}
}

func TestBulletExpiry(t *testing.T) {
	b := &Bullet{Lifespan: 2}
	if b.Expired() {
		t.Fatalf("Fresh bullet already expired")
	}
	b.Age = 2
	if b.Expired() {
		t.Errorf("Expected bullet alive at its lifespan")
	}
	b.Age = 3
	if !b.Expired() {
		t.Errorf("Expected bullet expired past its lifespan")
	}
}
