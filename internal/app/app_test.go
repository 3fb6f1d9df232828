// +build headless

package app

import (
	"testing"

	"github.com/silbinarywolf/toy-offside-board/internal/board"
	"github.com/silbinarywolf/toy-offside-board/internal/config"
	"github.com/silbinarywolf/toy-offside-board/internal/drag"
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/offside"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/raster"
)

// Screen positions for the default 640x480 board. Number 7 starts at
// (320, 160) on the pitch, which sits below the status bar.
var (
	grabSeven   = [2]int{335, board.StatusBarHeight + 175}
	emptyPitch  = [2]int{600, board.StatusBarHeight + 450}
	statusBar   = [2]int{10, 5}
	buttonPress = [2]int{320, board.StatusBarHeight + 480 + board.ButtonBarHeight/2}
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := newApp(config.Default())
	app.Init()
	app.hasInitialized = true
	return app
}

// click presses at from, drags through each point in path, then releases
func click(app *App, from [2]int, path ...[2]int) {
	app.pollPointer(true, 0, from[0], from[1])
	for _, p := range path {
		app.pollPointer(true, 0, p[0], p[1])
	}
	app.pollPointer(false, 0, 0, 0)
}

func TestEvaluateShowsThresholdAndStatus(t *testing.T) {
	app := newTestApp(t)
	screen := raster.NewCanvas(app.Layout(0, 0))
	app.Draw(screen)
	if app.frameDirty {
		t.Fatalf("frame should be clean after a draw")
	}

	app.scene.Find("9").MoveTo(ent.Point{X: 300, Y: 100})
	app.Evaluate()
	if app.status != "Player number 9 - OFFSIDE!" {
		t.Errorf("unexpected status %q", app.status)
	}
	if !app.frameDirty {
		t.Errorf("evaluating should ask for a repaint")
	}

	app.Draw(screen)
	// goalkeeper at 30, next defender at 120
	if got := screen.RGBA().RGBAAt(2, board.StatusBarHeight+120); got.R < 250 || got.G > 10 || got.B > 10 {
		t.Errorf("expected the offside line on screen, got %v", got)
	}
	if _, pending := app.scene.TakeThreshold(); pending {
		t.Errorf("drawing should consume the threshold")
	}

	// retained frame keeps the line until something changes
	app.Draw(screen)
	if got := screen.RGBA().RGBAAt(2, board.StatusBarHeight+120); got.R < 250 || got.G > 10 {
		t.Errorf("expected the offside line to survive a redraw, got %v", got)
	}
}

func TestButtonEvaluatesOnRelease(t *testing.T) {
	app := newTestApp(t)
	onside := offside.StatusText(offside.Result{Outcome: offside.OutcomeOnside}, nil)

	app.pollPointer(true, 0, buttonPress[0], buttonPress[1])
	if !app.buttonDown {
		t.Errorf("button should show as pressed")
	}
	if app.status == onside {
		t.Fatalf("pressing alone should not evaluate")
	}
	app.pollPointer(false, 0, 0, 0)
	if app.buttonDown {
		t.Errorf("button should be released")
	}
	if app.status != onside {
		t.Errorf("expected onside status after clicking the button, got %q", app.status)
	}
}

func TestButtonReleasedElsewhereDoesNothing(t *testing.T) {
	app := newTestApp(t)
	app.status = "unchanged"
	start := app.scene.Find("7").Position

	// drag off the button and over number 7
	click(app, buttonPress, grabSeven, [2]int{grabSeven[0], grabSeven[1] - 50})
	if app.status != "unchanged" {
		t.Errorf("releasing off the button should not evaluate, status %q", app.status)
	}
	if got := app.scene.Find("7").Position; got != start {
		t.Errorf("a gesture started on the button moved number 7 to %v", got)
	}
}

func TestPressOutsideCanvasIsIgnored(t *testing.T) {
	app := newTestApp(t)
	click(app, statusBar, grabSeven)
	if app.status != helpMessage {
		t.Errorf("expected status untouched, got %q", app.status)
	}
	if app.drag.State() != drag.StateIdle {
		t.Errorf("expected drag controller idle, got %s", app.drag.State())
	}
}

func TestDragThenUndo(t *testing.T) {
	app := newTestApp(t)
	start := app.scene.Find("7").Position

	click(app, grabSeven, [2]int{grabSeven[0], grabSeven[1] - 100})
	if got, want := app.scene.Find("7").Position, (ent.Point{X: 320, Y: 60}); got != want {
		t.Fatalf("number 7 dragged to %v, expected %v", got, want)
	}

	app.Undo()
	if got := app.scene.Find("7").Position; got != start {
		t.Errorf("undo left number 7 at %v, expected %v", got, start)
	}
	if app.status != undoneMessage {
		t.Errorf("unexpected status %q", app.status)
	}
	app.Undo()
	if app.status != nothingToUndo {
		t.Errorf("expected nothing left to undo, got %q", app.status)
	}
}

func TestClickWithoutMovingIsNotUndoable(t *testing.T) {
	app := newTestApp(t)
	click(app, grabSeven)
	if app.status != movingPrefix+"Player number 7" {
		t.Errorf("unexpected status %q", app.status)
	}
	app.Undo()
	if app.status != nothingToUndo {
		t.Errorf("a click that moved nothing should not be undoable, got %q", app.status)
	}
}

func TestUndoAndResetWaitForGestureToEnd(t *testing.T) {
	app := newTestApp(t)
	held := ent.Point{X: 320, Y: 115}

	app.pollPointer(true, 0, grabSeven[0], grabSeven[1])
	app.pollPointer(true, 0, grabSeven[0], grabSeven[1]-45)
	app.Reset()
	app.Undo()
	if got := app.scene.Find("7").Position; got != held {
		t.Fatalf("undo/reset mid-drag moved number 7 to %v", got)
	}
	if app.drag.State() != drag.StateDragging {
		t.Fatalf("drag should still be in progress, got %s", app.drag.State())
	}
	app.pollPointer(false, 0, 0, 0)

	app.Reset()
	if got := app.scene.Find("7").Position; got != (ent.Point{X: 320, Y: 160}) {
		t.Errorf("reset left number 7 at %v", got)
	}
	if app.status != resetMessage {
		t.Errorf("unexpected status %q", app.status)
	}
	app.Undo()
	if got := app.scene.Find("7").Position; got != held {
		t.Errorf("undoing the reset left number 7 at %v, expected %v", got, held)
	}
}

func TestPressOnEmptyPitchAnnotates(t *testing.T) {
	app := newTestApp(t)
	before, err := app.scene.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	click(app, emptyPitch, [2]int{emptyPitch[0] - 40, emptyPitch[1]})
	if app.status != noSelection {
		t.Errorf("unexpected status %q", app.status)
	}
	after, err := app.scene.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("annotating changed the scene")
	}
	// the stroke is drawn straight onto the retained frame, nothing else
	// has been painted on it yet
	frame := app.frame.(*raster.Canvas).RGBA()
	if got := frame.RGBAAt(580, 450); got.A == 0 || got.R > 10 || got.G > 10 || got.B > 10 {
		t.Errorf("expected a dark annotation stroke at (580, 450), got %v", got)
	}
}
