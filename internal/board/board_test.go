package board

import (
	"image"
	"testing"

	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/offside"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/raster"
	"github.com/silbinarywolf/toy-offside-board/internal/world"
)

var testTokenSize = ent.Size{Width: 30, Height: 30}

func newTestBoard() *Board {
	return &Board{
		Sprites: LoadSprites(raster.Loader{}, testTokenSize, 6),
		Border:  6,
	}
}

func TestDrawConsumesThreshold(t *testing.T) {
	scene := world.New(640, 480, testTokenSize, world.DefaultLayout(640, 480, testTokenSize))
	b := newTestBoard()
	canvas := raster.NewCanvas(scene.Width, scene.Height)

	result, err := offside.Evaluate(scene, offside.DefaultRules())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scene.ShowThreshold(result.ThresholdY)

	y, drawn := b.Draw(canvas, scene)
	if !drawn || y != result.ThresholdY {
		t.Fatalf("expected threshold at %d to be drawn, got %d (%v)", result.ThresholdY, y, drawn)
	}
	// the left edge has no token on it in the default line-up
	if got := canvas.RGBA().RGBAAt(2, y); got.R < 250 || got.G != 0 {
		t.Errorf("expected red threshold at (2, %d), got %v", y, got)
	}

	canvas.Clear()
	if _, drawn := b.Draw(canvas, scene); drawn {
		t.Errorf("threshold should only be drawn once")
	}
	if got := canvas.RGBA().RGBAAt(2, y); got.A != 0 {
		t.Errorf("expected no threshold on second draw, got %v", got)
	}
}

func TestDrawTokensUseRoleColour(t *testing.T) {
	layout := world.Layout{
		{Role: ent.RoleGoalkeeper, Identity: "1", Position: ent.Point{X: 10, Y: 10}},
		{Role: ent.RoleAttacker, Identity: "9", Position: ent.Point{X: 100, Y: 100}},
	}
	scene := world.New(200, 200, testTokenSize, layout)
	b := newTestBoard()
	canvas := raster.NewCanvas(scene.Width, scene.Height)
	b.Draw(canvas, scene)

	// sample inside the fill ring, away from the label in the middle
	img := canvas.RGBA()
	if got := img.RGBAAt(10+18, 10+7); got.G < GoalkeeperColor.G-3 || got.R > GoalkeeperColor.R+3 {
		t.Errorf("goalkeeper pixel %v, expected close to %v", got, GoalkeeperColor)
	}
	if got := img.RGBAAt(100+18, 100+7); got.B < AttackerColor.B-3 || got.R > AttackerColor.R+3 {
		t.Errorf("attacker pixel %v, expected close to %v", got, AttackerColor)
	}
	if got := img.RGBAAt(60, 60); got.A != 0 {
		t.Errorf("empty board with no pitch should be transparent, got %v", got)
	}
}

func TestChromeLayout(t *testing.T) {
	chrome := Chrome{CanvasWidth: 640, CanvasHeight: 480}
	w, h := chrome.ScreenSize()
	if w != 640 || h != 480+StatusBarHeight+ButtonBarHeight {
		t.Fatalf("unexpected screen size %dx%d", w, h)
	}
	if !chrome.InCanvas(0, StatusBarHeight) || chrome.InCanvas(0, StatusBarHeight-1) {
		t.Errorf("canvas should start right below the status bar")
	}
	if chrome.InCanvas(10, StatusBarHeight+480) {
		t.Errorf("button bar is not part of the canvas")
	}
	if got := chrome.ToScene(15, StatusBarHeight+40); got != (ent.Point{X: 15, Y: 40}) {
		t.Errorf("unexpected scene point %v", got)
	}
	button := chrome.ButtonBounds()
	if !button.In(image.Rect(0, StatusBarHeight+480, 640, h)) {
		t.Errorf("button %v should sit inside the button bar", button)
	}
	center := button.Min.Add(button.Size().Div(2))
	if !chrome.InButton(center.X, center.Y) {
		t.Errorf("button centre should be inside the button")
	}

	canvas := raster.NewCanvas(w, h)
	chrome.DrawStatus(canvas, "Player number 9 - OFFSIDE!")
	chrome.DrawButton(canvas, false)
	if got := canvas.RGBA().RGBAAt(1, 1); got != statusBackground {
		t.Errorf("status bar background %v", got)
	}
	if got := canvas.RGBA().RGBAAt(1, h-1); got != buttonBarColor {
		t.Errorf("button bar background %v", got)
	}
}
