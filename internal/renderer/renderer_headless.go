// +build headless

package renderer

import (
	"github.com/silbinarywolf/toy-offside-board/internal/renderer/internal/headless"
)

type appImplementation = headless.App
