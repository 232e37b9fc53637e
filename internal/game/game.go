package game

import (
	"math"

	"chosenoffset.com/intruderalert/internal/render"
	"chosenoffset.com/intruderalert/pkg/logger"
)

// Game drives one Arena from real input and draws it.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Arena        *Arena
	Camera       Camera
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Floors are static, so they are drawn once and blitted every frame.
	LevelLayer render.Image

	// UI state
	Messages []Message
}

// NewGame wraps arena for play on a width x height screen.
func NewGame(r render.Renderer, input render.InputManager, arena *Arena, width, height int) *Game {
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Arena:        arena,
		Renderer:     r,
		InputMgr:     input,
	}
	g.UpdateCamera()
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	wasOver, wasDone := g.Arena.GameOver, g.Arena.Completed
	g.Arena.Step(g.ReadInput())

	if !wasOver && g.Arena.GameOver {
		g.ShowMessage("You died. Press R to restart")
	}
	if !wasDone && g.Arena.Completed {
		g.ShowMessage("Level cleared. Press N for the next level")
	}

	g.UpdateCamera()
	return nil
}

// ReadInput samples the keyboard and mouse. WASD moves. The left mouse
// button fires toward the cursor; the arrow keys fire in their direction and
// win over the mouse.
func (g *Game) ReadInput() Input {
	in := Input{
		Left:  g.InputMgr.IsKeyPressed(render.KeyA),
		Right: g.InputMgr.IsKeyPressed(render.KeyD),
		Up:    g.InputMgr.IsKeyPressed(render.KeyW),
		Down:  g.InputMgr.IsKeyPressed(render.KeyS),
	}

	h := axis(g.InputMgr.IsKeyPressed(render.KeyLeft), g.InputMgr.IsKeyPressed(render.KeyRight))
	v := axis(g.InputMgr.IsKeyPressed(render.KeyUp), g.InputMgr.IsKeyPressed(render.KeyDown))
	if h != 0 || v != 0 {
		in.Fire = true
		in.Aim = math.Atan2(float64(v), float64(h))
		return in
	}

	if g.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft) {
		mx, my := g.InputMgr.GetCursorPosition()
		p := g.Arena.Player.Pos
		in.Fire = true
		in.Aim = math.Atan2(float64(my)-(p.Y-g.Camera.Y), float64(mx)-(p.X-g.Camera.X))
	}
	return in
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	logger.For("game").WithField("level", g.Arena.Level.Num).Info(text)
}

// UpdateCamera centres the camera on the player, clamped to the level.
func (g *Game) UpdateCamera() {
	lvl := g.Arena.Level
	g.Camera.X = g.Arena.Player.Pos.X - float64(g.ScreenWidth)/2
	g.Camera.Y = g.Arena.Player.Pos.Y - float64(g.ScreenHeight)/2

	mapWidth := float64(lvl.Grid.Cols) * lvl.TileSize
	mapHeight := float64(lvl.Grid.Rows) * lvl.TileSize

	if g.Camera.X > mapWidth-float64(g.ScreenWidth) {
		g.Camera.X = mapWidth - float64(g.ScreenWidth)
	}
	if g.Camera.Y > mapHeight-float64(g.ScreenHeight) {
		g.Camera.Y = mapHeight - float64(g.ScreenHeight)
	}
	if g.Camera.X < 0 {
		g.Camera.X = 0
	}
	if g.Camera.Y < 0 {
		g.Camera.Y = 0
	}
}

// Dispose releases the cached level layer.
func (g *Game) Dispose() {
	if g.LevelLayer != nil {
		g.LevelLayer.Dispose()
		g.LevelLayer = nil
	}
}
