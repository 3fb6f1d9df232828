package app

import (
	"log"

	"github.com/silbinarywolf/toy-offside-board/internal/asset"
	"github.com/silbinarywolf/toy-offside-board/internal/board"
	"github.com/silbinarywolf/toy-offside-board/internal/config"
	"github.com/silbinarywolf/toy-offside-board/internal/drag"
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/input"
	"github.com/silbinarywolf/toy-offside-board/internal/offside"
	"github.com/silbinarywolf/toy-offside-board/internal/pointer"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer"
	"github.com/silbinarywolf/toy-offside-board/internal/world"
)

const (
	helpMessage   = "Drag the players into position, then press Offside?"
	noSelection   = "No player selected - switching to drawing mode"
	nothingToUndo = "Nothing to undo"
	undoneMessage = "Undid last move"
	resetMessage  = "Players back in their starting positions"
	movingPrefix  = "Moving "
)

// pointerOwner is the part of the window a gesture started on, the whole
// gesture goes to it even if the pointer wanders off
type pointerOwner int

const (
	ownerNone pointerOwner = iota
	ownerCanvas
	ownerButton
)

type App struct {
	renderer.App

	hasInitialized bool
	config         *config.Config
	chrome         board.Chrome
	board          board.Board
	scene          *world.Scene
	drag           *drag.Controller
	history        *world.History

	pointer      pointer.Tracker
	pointerOwner pointerOwner
	buttonDown   bool

	// frame is the retained, offscreen picture of the pitch. It's only
	// repainted when frameDirty, so annotations and the one-shot offside
	// line stay on screen until the scene next changes.
	frame      renderer.Canvas
	frameDirty bool
	status     string
}

func (app *App) Init() {
	cfg := app.config

	// Load assets
	{
		app.board.Border = cfg.Token.Border
		app.board.Sprites = board.LoadSprites(&app.App, cfg.TokenSize(), cfg.Token.Border)
		if cfg.PitchImage != "" {
			img, err := asset.LoadPitch(cfg.PitchImage, cfg.Canvas.Width, cfg.Canvas.Height)
			if err != nil {
				// fail fast, the board doesn't make sense without the pitch it was configured with
				panic(err)
			}
			app.board.Pitch = app.NewImageFromImage(img)
		} else {
			app.board.Pitch = app.NewImageFromImage(asset.Pitch(cfg.Canvas.Width, cfg.Canvas.Height))
		}
	}

	scene, err := cfg.NewScene()
	if err != nil {
		panic(err)
	}
	log.Printf("board is %dx%d with %d defenders and %d attackers", scene.Width, scene.Height, len(scene.Defenders), len(scene.Attackers))

	app.scene = scene
	app.drag = drag.New(scene, &dragHandler{app: app})
	app.history = world.NewHistory(cfg.History.MaxUndo)
	app.frame = app.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	app.frameDirty = true
	app.status = helpMessage

	app.SetRunnableOnUnfocused(true)
}

func (app *App) Update() error {
	if !app.hasInitialized {
		app.Init()
		app.hasInitialized = true
	}

	// Handle keyboard shortcuts
	if input.IsKeyJustPressed(input.KeyEnter) || input.IsKeyJustPressed(input.KeyO) {
		app.Evaluate()
	}
	if input.IsKeyJustPressed(input.KeyR) {
		app.Reset()
	}
	if input.IsKeyJustPressed(input.KeyZ) || input.IsKeyJustPressed(input.KeyBackspace) {
		app.Undo()
	}

	// Handle mouse / touch
	app.pollPointer(input.Pointer())
	return nil
}

// pollPointer feeds one frame of pointer state, in screen coordinates,
// through the tracker
func (app *App) pollPointer(pressed bool, id, x, y int) {
	for _, event := range app.pointer.Poll(pressed, id, app.chrome.ToScene(x, y)) {
		app.handlePointer(event, x, y)
	}
}

func (app *App) handlePointer(event pointer.Event, screenX, screenY int) {
	switch event.Kind {
	case pointer.Down:
		switch {
		case app.chrome.InButton(screenX, screenY):
			app.pointerOwner = ownerButton
			app.buttonDown = true
		case app.chrome.InCanvas(screenX, screenY):
			app.pointerOwner = ownerCanvas
			app.drag.PointerDown(event.Position)
		default:
			app.pointerOwner = ownerNone
		}
	case pointer.Move:
		if app.pointerOwner == ownerCanvas {
			app.drag.PointerMove(event.Position)
		}
	case pointer.Up:
		switch app.pointerOwner {
		case ownerButton:
			app.buttonDown = false
			// event.Position is scene-local, convert back for the button test
			if app.chrome.InButton(event.Position.X, event.Position.Y+board.StatusBarHeight) {
				app.Evaluate()
			}
		case ownerCanvas:
			app.drag.PointerUp(event.Position)
		}
		app.pointerOwner = ownerNone
	}
}

// Evaluate decides offside for the current scene, shows the result in
// the status bar and the offside line on the next repaint
func (app *App) Evaluate() {
	result, err := offside.Evaluate(app.scene, app.config.OffsideRules())
	app.status = offside.StatusText(result, err)
	if err != nil {
		log.Printf("unable to evaluate offside: %v", err)
		return
	}
	log.Printf("evaluated %s: foremost attacker %s with %d goal-side defenders, offside line at y=%d",
		result.Outcome, result.ForemostAttacker, result.GoalsideDefenders, result.ThresholdY)
	app.scene.ShowThreshold(result.ThresholdY)
	app.frameDirty = true
}

// Undo puts the scene back to how it was before the last grab or reset
func (app *App) Undo() {
	if app.drag.State() != drag.StateIdle {
		return
	}
	snapshot, ok := app.history.Pop()
	if !ok {
		app.status = nothingToUndo
		return
	}
	if err := app.scene.Restore(snapshot); err != nil {
		log.Printf("%+v", err)
		return
	}
	app.drag.Reset()
	app.status = undoneMessage
	app.frameDirty = true
}

// Reset moves every player back to the starting line-up
func (app *App) Reset() {
	if app.drag.State() != drag.StateIdle {
		return
	}
	fresh, err := app.config.NewScene()
	if err != nil {
		log.Printf("%+v", err)
		return
	}
	snapshot, err := fresh.Snapshot()
	if err != nil {
		log.Printf("%+v", err)
		return
	}
	app.pushHistory()
	if err := app.scene.Restore(snapshot); err != nil {
		log.Printf("%+v", err)
		return
	}
	app.drag.Reset()
	log.Println("reset board to the starting line-up")
	app.status = resetMessage
	app.frameDirty = true
}

func (app *App) pushHistory() {
	snapshot, err := app.scene.Snapshot()
	if err != nil {
		log.Printf("%+v", err)
		return
	}
	app.history.Push(snapshot)
}

func (app *App) Draw(screen renderer.Screen) {
	if !app.hasInitialized {
		return
	}

	// Repaint the pitch offscreen, then copy it to the screen in one go
	if app.frameDirty {
		app.frame.Clear()
		app.board.Draw(app.frame, app.scene)
		app.frameDirty = false
	}
	screen.DrawImage(app.frame.Image(), renderer.ImageOptions{
		Y: board.StatusBarHeight,
	})

	app.chrome.DrawStatus(screen, app.status)
	app.chrome.DrawButton(screen, app.buttonDown)
}

func (app *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return app.chrome.ScreenSize()
}

// dragHandler applies the drag controller's side effects to the app
type dragHandler struct {
	app *App
	// beforeGrab is the scene as it was when the current token was picked
	// up, it only goes onto the undo history once the token actually moves
	beforeGrab []byte
}

func (h *dragHandler) Selected(token *ent.Token) {
	snapshot, err := h.app.scene.Snapshot()
	if err != nil {
		log.Printf("%+v", err)
	}
	h.beforeGrab = snapshot
	h.app.status = movingPrefix + token.String()
}

func (h *dragHandler) Deselected() {
	h.beforeGrab = nil
	h.app.status = noSelection
}

func (h *dragHandler) Moved(token *ent.Token) {
	if h.beforeGrab != nil {
		h.app.history.Push(h.beforeGrab)
		h.beforeGrab = nil
	}
	h.app.frameDirty = true
}

// Annotate draws straight onto the retained frame, it's gone on the
// next repaint
func (h *dragHandler) Annotate(from, to ent.Point) {
	h.app.frame.DrawLine(float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), board.AnnotateColor)
}

func newApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		chrome: board.Chrome{
			CanvasWidth:  cfg.Canvas.Width,
			CanvasHeight: cfg.Canvas.Height,
		},
	}
}

func StartApp(cfg *config.Config) {
	app := newApp(cfg)
	width, height := app.chrome.ScreenSize()
	app.SetWindowSize(width*cfg.Window.Scale, height*cfg.Window.Scale)
	app.SetWindowTitle(cfg.Window.Title)
	if err := app.App.RunGame(app); err != nil {
		panic(err)
	}
}
