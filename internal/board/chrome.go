package board

import (
	"image"
	"image/color"

	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/rendereriface"
)

const (
	StatusBarHeight = 20
	ButtonBarHeight = 32

	ButtonLabel = "Offside?"
)

var (
	statusBackground  = color.RGBA{R: 230, G: 230, B: 10, A: 255}
	statusForeground  = color.RGBA{R: 255, A: 255}
	buttonBarColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	buttonColor       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	buttonActiveColor = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	buttonText        = color.RGBA{A: 255}
)

// Chrome lays out the window: a status bar, the pitch canvas, then a bar
// holding the "Offside?" button
type Chrome struct {
	CanvasWidth, CanvasHeight int
}

func (chrome Chrome) ScreenSize() (int, int) {
	return chrome.CanvasWidth, StatusBarHeight + chrome.CanvasHeight + ButtonBarHeight
}

// CanvasBounds is where the pitch canvas sits in screen coordinates
func (chrome Chrome) CanvasBounds() image.Rectangle {
	return image.Rect(0, StatusBarHeight, chrome.CanvasWidth, StatusBarHeight+chrome.CanvasHeight)
}

func (chrome Chrome) ButtonBounds() image.Rectangle {
	const width, height = 80, 22
	top := StatusBarHeight + chrome.CanvasHeight + (ButtonBarHeight-height)/2
	left := (chrome.CanvasWidth - width) / 2
	return image.Rect(left, top, left+width, top+height)
}

// ToScene converts a screen position to scene-local coordinates
func (chrome Chrome) ToScene(x, y int) ent.Point {
	return ent.Point{X: x, Y: y - StatusBarHeight}
}

// InCanvas reports whether a screen position is over the pitch
func (chrome Chrome) InCanvas(x, y int) bool {
	return image.Pt(x, y).In(chrome.CanvasBounds())
}

func (chrome Chrome) InButton(x, y int) bool {
	return image.Pt(x, y).In(chrome.ButtonBounds())
}

func (chrome Chrome) DrawStatus(screen rendereriface.Screen, message string) {
	screen.FillRect(0, 0, float32(chrome.CanvasWidth), StatusBarHeight, statusBackground)
	x := (chrome.CanvasWidth - TextWidth(message)) / 2
	if x < 4 {
		x = 4
	}
	screen.DrawText(message, x, StatusBarHeight-6, statusForeground)
}

func (chrome Chrome) DrawButton(screen rendereriface.Screen, pressed bool) {
	top := float32(StatusBarHeight + chrome.CanvasHeight)
	screen.FillRect(0, top, float32(chrome.CanvasWidth), ButtonBarHeight, buttonBarColor)

	r := chrome.ButtonBounds()
	clr := buttonColor
	if pressed {
		clr = buttonActiveColor
	}
	screen.FillRect(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr)
	x := r.Min.X + (r.Dx()-TextWidth(ButtonLabel))/2
	screen.DrawText(ButtonLabel, x, r.Max.Y-6, buttonText)
}
