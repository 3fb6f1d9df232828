// board paints a scene: pitch, tokens with their labels and, when one
// was requested, the offside line.
package board

import (
	"image/color"

	"github.com/silbinarywolf/toy-offside-board/internal/asset"
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/rendereriface"
	"github.com/silbinarywolf/toy-offside-board/internal/world"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	OutlineColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ThresholdColor  = color.RGBA{R: 255, A: 255}
	AttackerColor   = color.RGBA{R: 72, G: 100, B: 255, A: 255}
	DefenderColor   = color.RGBA{R: 255, G: 25, B: 16, A: 255}
	GoalkeeperColor = color.RGBA{R: 10, G: 150, B: 10, A: 255}
	AnnotateColor   = color.RGBA{A: 255}
)

// RoleColor is the shirt colour for a role
func RoleColor(role ent.Role) color.RGBA {
	switch role {
	case ent.RoleAttacker:
		return AttackerColor
	case ent.RoleGoalkeeper:
		return GoalkeeperColor
	}
	return DefenderColor
}

// Sprites holds one token icon per role
type Sprites map[ent.Role]rendereriface.Image

func LoadSprites(loader rendereriface.ImageLoader, size ent.Size, border int) Sprites {
	sprites := make(Sprites)
	for _, role := range []ent.Role{ent.RoleAttacker, ent.RoleDefender, ent.RoleGoalkeeper} {
		img := asset.TokenSprite(size.Width, size.Height, border, OutlineColor, RoleColor(role))
		sprites[role] = loader.NewImageFromImage(img)
	}
	return sprites
}

type Board struct {
	Pitch   rendereriface.Image
	Sprites Sprites
	// Border is the ring drawn around each token, the icon is this much
	// larger than the token's hit box
	Border int
}

// Draw paints the whole scene in scene-local coordinates. If the scene has
// a pending offside line it is taken (and so cleared) and drawn, drawn
// reports whether that happened.
func (b *Board) Draw(screen rendereriface.Screen, scene *world.Scene) (thresholdY int, drawn bool) {
	if b.Pitch != nil {
		screen.DrawImage(b.Pitch, rendereriface.ImageOptions{})
	}
	for _, token := range scene.Tokens() {
		b.drawToken(screen, token)
	}
	thresholdY, drawn = scene.TakeThreshold()
	if drawn {
		// +0.5 so the line covers exactly pixel row y
		y := float32(thresholdY) + 0.5
		screen.DrawLine(0, y, float32(scene.Width), y, ThresholdColor)
	}
	return thresholdY, drawn
}

func (b *Board) drawToken(screen rendereriface.Screen, token *ent.Token) {
	x, y := token.Position.X, token.Position.Y
	if sprite, ok := b.Sprites[token.Role]; ok {
		screen.DrawImage(sprite, rendereriface.ImageOptions{
			X: float32(x),
			Y: float32(y),
		})
	}
	iconW := token.Size.Width + b.Border
	iconH := token.Size.Height + b.Border
	labelX := x + iconW/2 - TextWidth(token.Identity)/2
	labelY := y + iconH/2 + labelBaselineOffset
	screen.DrawText(token.Identity, labelX, labelY, OutlineColor)
}

// labelBaselineOffset puts the 7x13 face's digits roughly on the centre line
const labelBaselineOffset = 5

// TextWidth is the width of s in the face every driver draws text with
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}
