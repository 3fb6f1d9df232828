package main

import (
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-offside-board/internal/asset"
	"github.com/silbinarywolf/toy-offside-board/internal/board"
	"github.com/silbinarywolf/toy-offside-board/internal/config"
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/offside"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/raster"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/rendereriface"
)

type move struct {
	Identity string
	Position ent.Point
}

// moveList implements flag.Value
type moveList []move

func (list *moveList) String() string {
	parts := make([]string, 0, len(*list))
	for _, m := range *list {
		parts = append(parts, m.Identity+"="+strconv.Itoa(m.Position.X)+","+strconv.Itoa(m.Position.Y))
	}
	return strings.Join(parts, " ")
}

func (list *moveList) Set(value string) error {
	m, err := parseMove(value)
	if err != nil {
		return err
	}
	*list = append(*list, m)
	return nil
}

func parseMove(value string) (move, error) {
	eq := strings.IndexByte(value, '=')
	if eq <= 0 {
		return move{}, errors.Errorf("invalid move %q, expected identity=x,y", value)
	}
	coords := strings.Split(value[eq+1:], ",")
	if len(coords) != 2 {
		return move{}, errors.Errorf("invalid move %q, expected identity=x,y", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(coords[0]))
	if err != nil {
		return move{}, errors.Wrapf(err, "invalid x in move %q", value)
	}
	y, err := strconv.Atoi(strings.TrimSpace(coords[1]))
	if err != nil {
		return move{}, errors.Wrapf(err, "invalid y in move %q", value)
	}
	return move{
		Identity: value[:eq],
		Position: ent.Point{X: x, Y: y},
	}, nil
}

type snapshot struct {
	Result offside.Result
	Status string
	Image  *image.RGBA
}

// takeSnapshot lays out the configured board, applies the moves, then
// paints the window the same way the interactive app would after
// pressing "Offside?"
func takeSnapshot(cfg *config.Config, moves []move) (*snapshot, error) {
	scene, err := cfg.NewScene()
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		token := scene.Find(m.Identity)
		if token == nil {
			return nil, errors.Errorf("no player with identity %q", m.Identity)
		}
		token.MoveTo(m.Position)
	}

	result, err := offside.Evaluate(scene, cfg.OffsideRules())
	status := offside.StatusText(result, err)
	if err == nil {
		scene.ShowThreshold(result.ThresholdY)
	}

	loader := raster.Loader{}
	b := board.Board{
		Sprites: board.LoadSprites(loader, cfg.TokenSize(), cfg.Token.Border),
		Border:  cfg.Token.Border,
	}
	if cfg.PitchImage != "" {
		img, err := asset.LoadPitch(cfg.PitchImage, cfg.Canvas.Width, cfg.Canvas.Height)
		if err != nil {
			return nil, err
		}
		b.Pitch = loader.NewImageFromImage(img)
	} else {
		b.Pitch = loader.NewImageFromImage(asset.Pitch(cfg.Canvas.Width, cfg.Canvas.Height))
	}

	frame := raster.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	b.Draw(frame, scene)

	chrome := board.Chrome{
		CanvasWidth:  cfg.Canvas.Width,
		CanvasHeight: cfg.Canvas.Height,
	}
	screen := raster.NewCanvas(chrome.ScreenSize())
	screen.DrawImage(frame.Image(), rendereriface.ImageOptions{
		Y: board.StatusBarHeight,
	})
	chrome.DrawStatus(screen, status)
	chrome.DrawButton(screen, false)

	return &snapshot{
		Result: result,
		Status: status,
		Image:  screen.RGBA(),
	}, nil
}
