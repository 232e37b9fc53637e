package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/intruderalert/internal/core/geom"
	"chosenoffset.com/intruderalert/internal/render"
	"chosenoffset.com/intruderalert/internal/world/grid"
	"chosenoffset.com/intruderalert/internal/world/walls"
)

var (
	wallColor      = color.RGBA{60, 70, 90, 255}
	crateColor     = color.RGBA{140, 100, 50, 255}
	explosiveColor = color.RGBA{200, 40, 30, 255}
	playerColor    = color.RGBA{255, 255, 100, 255}
	enemyColor     = color.RGBA{230, 60, 60, 255}
	bulletColor    = color.RGBA{255, 240, 200, 255}
	blastColor     = color.RGBA{255, 160, 40, 200}
	crateEdge      = color.RGBA{40, 30, 20, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.Black)

	if g.LevelLayer == nil {
		g.LevelLayer = g.buildLevelLayer()
	}
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(-g.Camera.X, -g.Camera.Y)
	screen.DrawImage(g.LevelLayer, opts)

	g.drawWalls(screen)
	g.drawCrates(screen)
	g.drawCharacters(screen)
	g.drawBullets(screen)
	g.drawUI(screen)
}

// buildLevelLayer paints every floor tile once. Brightness varies per tile.
func (g *Game) buildLevelLayer() render.Image {
	lvl := g.Arena.Level
	ts := lvl.TileSize
	layer := g.Renderer.NewImage(int(float64(lvl.Grid.Cols)*ts), int(float64(lvl.Grid.Rows)*ts))
	lvl.Grid.Each(func(t *grid.Tile) {
		if t.Type != grid.Floor {
			return
		}
		shade := uint8(t.Brightness / 350 * 48)
		g.Renderer.FillRect(layer, float32(float64(t.Col)*ts), float32(float64(t.Row)*ts),
			float32(ts), float32(ts), color.RGBA{shade, shade, shade + 8, 255})
	})
	return layer
}

func (g *Game) drawWalls(screen render.Image) {
	for _, w := range g.Arena.Level.Walls {
		r := w.Bounds()
		if !g.visible(r) {
			continue
		}
		clr := wallColor
		if glow := w.Glow(); glow > 0 {
			boost := uint8(120 * glow / walls.MaxGlow)
			clr.R += boost / 2
			clr.G += boost
			clr.B += boost
		}
		g.fillRect(screen, r, clr)
	}
}

func (g *Game) drawCrates(screen render.Image) {
	for _, c := range g.Arena.Level.Crates {
		r := c.Bounds()
		if !g.visible(r) {
			continue
		}
		clr := crateColor
		if c.Explosive {
			clr = explosiveColor
		}
		g.fillRect(screen, r, clr)
		x, y := g.toScreen(geom.Vec{X: r.Left, Y: r.Top})
		g.Renderer.StrokeRect(screen, x, y, float32(r.Width()), float32(r.Height()), 2, crateEdge)
	}
}

func (g *Game) drawCharacters(screen render.Image) {
	for _, e := range g.Arena.Enemies {
		g.drawCharacter(screen, e, enemyColor)
	}
	if !g.Arena.GameOver {
		g.drawCharacter(screen, g.Arena.Player, playerColor)
	}
}

func (g *Game) drawCharacter(screen render.Image, c *Character, clr color.Color) {
	x, y := g.toScreen(c.Pos)
	radius := float32(c.Size / 2)
	g.Renderer.FillCircle(screen, x, y, radius, clr)

	// Health bar
	if c.Health < c.MaxHealth {
		w := float32(c.Size)
		g.Renderer.FillRect(screen, x-w/2, y-radius-6, w, 3, color.RGBA{80, 0, 0, 255})
		g.Renderer.FillRect(screen, x-w/2, y-radius-6, w*float32(c.Health/c.MaxHealth), 3, color.RGBA{0, 200, 0, 255})
	}
}

func (g *Game) drawBullets(screen render.Image) {
	for _, b := range g.Arena.Bullets {
		x, y := g.toScreen(b.Pos)
		g.Renderer.FillCircle(screen, x, y, float32(b.Size/4), bulletColor)
	}
	for _, bl := range g.Arena.Blasts {
		x, y := g.toScreen(bl.Pos)
		g.Renderer.StrokeCircle(screen, x, y, float32(bl.Radius), 4, blastColor)
	}
}

// drawUI puts the status line in the top-right corner and stacks messages
// centred under it.
func (g *Game) drawUI(screen render.Image) {
	sw, _ := screen.Size()
	p := g.Arena.Player
	status := fmt.Sprintf("Level %d  HP %.0f/%.0f  Enemies %d",
		g.Arena.Level.Num+1, max(p.Health, 0), p.MaxHealth, len(g.Arena.Enemies))
	w, h := g.Renderer.MeasureText(status, 1.0)
	g.Renderer.DrawText(screen, status, sw-w-20, 20, color.White, 1.0)

	y := 20 + 2*h
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		mw, mh := g.Renderer.MeasureText(msg.Text, 1.0)
		g.Renderer.DrawText(screen, msg.Text, (sw-mw)/2, y, color.RGBA{255, 255, 255, alpha}, 1.0)
		y += mh + 4
	}
}

func (g *Game) toScreen(p geom.Vec) (float32, float32) {
	return float32(p.X - g.Camera.X), float32(p.Y - g.Camera.Y)
}

func (g *Game) fillRect(screen render.Image, r geom.Rect, clr color.Color) {
	x, y := g.toScreen(geom.Vec{X: r.Left, Y: r.Top})
	g.Renderer.FillRect(screen, x, y, float32(r.Width()), float32(r.Height()), clr)
}

// visible reports whether r intersects the viewport.
func (g *Game) visible(r geom.Rect) bool {
	view := geom.Rect{
		Left:   g.Camera.X,
		Top:    g.Camera.Y,
		Right:  g.Camera.X + float64(g.ScreenWidth),
		Bottom: g.Camera.Y + float64(g.ScreenHeight),
	}
	return view.Overlaps(r)
}
