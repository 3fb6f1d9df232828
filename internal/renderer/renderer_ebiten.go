// +build !headless

package renderer

import (
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/internal/ebiten"
)

type appImplementation = ebiten.App
