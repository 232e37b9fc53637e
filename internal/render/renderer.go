// Package render is the narrow drawing and input surface the game draws
// through. The ebiten subpackage backs it with Ebitengine.
package render

import "image/color"

// Renderer draws shapes and text onto images.
type Renderer interface {
	NewImage(width, height int) Image

	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius, strokeWidth float32, clr color.Color)

	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	// MeasureText returns the pixel extent DrawText would cover.
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a surface that can be drawn to or blitted from.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	DrawImage(src Image, opts *DrawImageOptions)
	Dispose()
}

// DrawImageOptions positions a blit.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM is a 2D transform applied when blitting.
type GeoM interface {
	Translate(tx, ty float64)
}

// NewGeoM returns an identity transform. The backend installs it.
var NewGeoM func() GeoM

// InputManager reports keyboard and mouse state for the current tick.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key names a keyboard key the game listens to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyN // Next level
	KeyR // Restart
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// MouseButton names a mouse button.
type MouseButton int

const MouseButtonLeft MouseButton = 0

// Game is what an Engine drives once per tick.
type Game interface {
	Update() error
	Draw(screen Image)
	// Layout maps the window size to the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	// RunGame blocks until Update returns an error.
	RunGame(game Game) error
}
