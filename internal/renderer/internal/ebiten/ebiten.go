package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/rendereriface"
	"golang.org/x/image/font/basicfont"
)

var _ rendereriface.App = new(App)

type App struct {
}

type ebitenGameAndScreen struct {
	rendereriface.Game
	screenDriver Screen
}

func (game *ebitenGameAndScreen) Draw(screen *ebiten.Image) {
	game.screenDriver.screen = screen
	game.Game.Draw(&game.screenDriver)
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	ebiten.SetRunnableOnUnfocused(v)
}

func (app *App) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (app *App) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	return ebiten.NewImageFromImage(img)
}

func (app *App) NewCanvas(width, height int) rendereriface.Canvas {
	return &Screen{
		screen: ebiten.NewImage(width, height),
	}
}

func (app *App) RunGame(game rendereriface.Game) error {
	gameWrapper := ebitenGameAndScreen{}
	gameWrapper.Game = game
	return ebiten.RunGame(&gameWrapper)
}

type Screen struct {
	screen *ebiten.Image
}

var _ rendereriface.Canvas = new(Screen)

func (driver *Screen) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	op := &ebiten.DrawImageOptions{}
	if options.ScaleX != 0 && options.ScaleY != 0 {
		op.GeoM.Scale(float64(options.ScaleX), float64(options.ScaleY))
	}
	op.GeoM.Translate(float64(options.X), float64(options.Y))
	driver.screen.DrawImage(img.(*ebiten.Image), op)
}

func (driver *Screen) FillRect(x, y, width, height float32, clr color.Color) {
	ebitenutil.DrawRect(driver.screen, float64(x), float64(y), float64(width), float64(height), clr)
}

func (driver *Screen) DrawLine(x1, y1, x2, y2 float32, clr color.Color) {
	ebitenutil.DrawLine(driver.screen, float64(x1), float64(y1), float64(x2), float64(y2), clr)
}

func (driver *Screen) DrawText(s string, x, y int, clr color.Color) {
	text.Draw(driver.screen, s, basicfont.Face7x13, x, y, clr)
}

func (driver *Screen) Image() rendereriface.Image {
	return driver.screen
}

func (driver *Screen) Clear() {
	driver.screen.Clear()
}
