// headless is the headless mode driver so we can avoid building the
// ebiten library into binaries that never open a window
package headless

import (
	"image"
	"time"

	"github.com/silbinarywolf/toy-offside-board/internal/renderer/raster"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/rendereriface"
)

var _ rendereriface.App = new(App)

type App struct {
	width, height int
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	// n/a for headless
}

func (app *App) SetWindowSize(width, height int) {
	app.width = width
	app.height = height
}

func (app *App) SetWindowTitle(title string) {
	// n/a for headless
}

// RunGame calls Update then Draw at roughly 60 frames per second, drawing
// into an offscreen raster canvas. It only returns when Update fails.
func (app *App) RunGame(game rendereriface.Game) error {
	width, height := game.Layout(app.width, app.height)
	screen := raster.NewCanvas(width, height)

	// nothing on the board depends on exact frame timing
	tick := time.NewTicker(16 * time.Millisecond)
	defer tick.Stop()
	for range tick.C {
		if err := game.Update(); err != nil {
			return err
		}
		game.Draw(screen)
	}
	return nil
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	return raster.Loader{}.NewImageFromImage(img)
}

func (app *App) NewCanvas(width, height int) rendereriface.Canvas {
	return raster.NewCanvas(width, height)
}
