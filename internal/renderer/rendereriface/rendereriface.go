package rendereriface

import (
	"image"
	"image/color"
)

type ImageOptions struct {
	X, Y           float32
	ScaleX, ScaleY float32
}

type Image interface {
}

// Game interface was copy-pasted out of Ebiten
type Game interface {
	Update() error
	Draw(screen Screen)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

type App interface {
	SetRunnableOnUnfocused(v bool)
	SetWindowSize(screenWidth, screenHeight int)
	SetWindowTitle(title string)
	RunGame(game Game) error
	NewImageFromImage(img image.Image) Image
	NewCanvas(width, height int) Canvas
}

// ImageLoader turns a decoded image into something the driver can draw
type ImageLoader interface {
	NewImageFromImage(img image.Image) Image
}

type Screen interface {
	DrawImage(img Image, options ImageOptions)
	FillRect(x, y, width, height float32, clr color.Color)
	DrawLine(x1, y1, x2, y2 float32, clr color.Color)
	// DrawText draws a single line of text, y is the baseline
	DrawText(text string, x, y int, clr color.Color)
}

// Canvas is an offscreen Screen that can itself be drawn as an Image
type Canvas interface {
	Screen
	Image() Image
	Clear()
}
