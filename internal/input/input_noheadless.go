// +build !headless

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[Key]ebiten.Key{
	KeyO:         ebiten.KeyO,
	KeyEnter:     ebiten.KeyEnter,
	KeyR:         ebiten.KeyR,
	KeyZ:         ebiten.KeyZ,
	KeyBackspace: ebiten.KeyBackspace,
}

func isKeyJustPressed(key Key) bool {
	k, ok := ebitenKeys[key]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(k)
}

func isMouseButtonPressed(mouseButton MouseButton) bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton(mouseButton))
}

func mousePosition() (int, int) {
	x, y := ebiten.CursorPosition()
	return x, y
}

func touchIDs() []TouchID {
	touchIDs := ebiten.TouchIDs()
	if len(touchIDs) == 0 {
		return nil
	}
	r := make([]TouchID, len(touchIDs))
	for i, touchID := range touchIDs {
		r[i] = TouchID(touchID)
	}
	return r
}

func touchPosition(touchID TouchID) (int, int) {
	x, y := ebiten.TouchPosition(ebiten.TouchID(touchID))
	return x, y
}
