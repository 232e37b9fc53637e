// Package ebiten backs the render interfaces with Ebitengine.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/intruderalert/internal/render"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

func init() {
	render.NewGeoM = func() render.GeoM { return &transform{} }
}

// NewRenderer returns a render.Renderer drawing with the vector package.
func NewRenderer() render.Renderer { return renderer{} }

// NewInputManager returns a render.InputManager polling Ebitengine input.
func NewInputManager() render.InputManager { return input{} }

// NewEngine returns a render.Engine running the Ebitengine loop.
func NewEngine() render.Engine { return engine{} }

type renderer struct{}

func (renderer) NewImage(width, height int) render.Image {
	return &surface{img: ebiten.NewImage(width, height)}
}

func (renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(target(dst), x, y, width, height, clr, false)
}

func (renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(target(dst), x, y, width, height, strokeWidth, clr, false)
}

func (renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(target(dst), x, y, radius, clr, true)
}

func (renderer) StrokeCircle(dst render.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(target(dst), x, y, radius, strokeWidth, clr, true)
}

// DrawText prints with the debug font, which has a fixed colour and size.
func (renderer) DrawText(dst render.Image, str string, x, y int, _ color.Color, _ float64) {
	ebitenutil.DebugPrintAt(target(dst), str, x, y)
}

func (renderer) MeasureText(str string, _ float64) (width, height int) {
	return len(str) * glyphWidth, glyphHeight
}

func target(img render.Image) *ebiten.Image {
	return img.(*surface).img
}

type surface struct {
	img *ebiten.Image
}

func (s *surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *surface) Fill(clr color.Color) { s.img.Fill(clr) }

func (s *surface) Dispose() {
	if s.img != nil {
		s.img.Dispose()
		s.img = nil
	}
}

func (s *surface) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	var op ebiten.DrawImageOptions
	if opts != nil && opts.GeoM != nil {
		op.GeoM = opts.GeoM.(*transform).m
	}
	s.img.DrawImage(target(src), &op)
}

type transform struct {
	m ebiten.GeoM
}

func (t *transform) Translate(tx, ty float64) { t.m.Translate(tx, ty) }

var keys = map[render.Key]ebiten.Key{
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyS:      ebiten.KeyS,
	render.KeyD:      ebiten.KeyD,
	render.KeyN:      ebiten.KeyN,
	render.KeyR:      ebiten.KeyR,
	render.KeyUp:     ebiten.KeyArrowUp,
	render.KeyDown:   ebiten.KeyArrowDown,
	render.KeyLeft:   ebiten.KeyArrowLeft,
	render.KeyRight:  ebiten.KeyArrowRight,
	render.KeySpace:  ebiten.KeySpace,
	render.KeyEscape: ebiten.KeyEscape,
}

type input struct{}

func (input) IsKeyPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (input) IsKeyJustPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (input) GetCursorPosition() (x, y int) { return ebiten.CursorPosition() }

func (input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

type engine struct{}

func (engine) SetWindowSize(width, height int) { ebiten.SetWindowSize(width, height) }

func (engine) SetWindowTitle(title string) { ebiten.SetWindowTitle(title) }

func (engine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

// RunGame blocks until game's Update returns an error, such as
// game.ErrQuit, and hands that error back to the caller.
func (engine) RunGame(game render.Game) error {
	return ebiten.RunGame(adapter{game})
}

// adapter lets a render.Game satisfy ebiten.Game.
type adapter struct {
	game render.Game
}

func (a adapter) Update() error { return a.game.Update() }

func (a adapter) Draw(screen *ebiten.Image) { a.game.Draw(&surface{img: screen}) }

func (a adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
