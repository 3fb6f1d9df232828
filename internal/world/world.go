package world

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/packbuf"
)

// sceneSnapshot contains the token state we want to be able to
// capture and restore, ie. for undoing a drag
type sceneSnapshot struct {
	Defenders []*ent.Token
	Attackers []*ent.Token
}

// Scene is the board being edited. It is owned by a single goroutine,
// the game loop, and passed explicitly to anything that reads or mutates it.
type Scene struct {
	sceneSnapshot
	Width, Height int

	thresholdY       int
	thresholdPending bool
}

// New creates a scene of the given extent and places a token for each
// placement in the layout
func New(width, height int, tokenSize ent.Size, layout Layout) *Scene {
	scene := &Scene{
		Width:  width,
		Height: height,
	}
	for _, placement := range layout {
		token := &ent.Token{
			Role:     placement.Role,
			Identity: placement.Identity,
			Position: placement.Position,
			Size:     tokenSize,
		}
		if token.Role.IsDefending() {
			scene.Defenders = append(scene.Defenders, token)
		} else {
			scene.Attackers = append(scene.Attackers, token)
		}
	}
	return scene
}

// TokenAt returns the first token containing p, or nil.
//
// Defenders (including the goalkeeper) are tested before attackers, so when
// tokens overlap the defending token wins the grab. Changing this order
// changes which token a user picks up.
func (scene *Scene) TokenAt(p ent.Point) *ent.Token {
	for _, token := range scene.Defenders {
		if token.ContainsPoint(p) {
			return token
		}
	}
	for _, token := range scene.Attackers {
		if token.ContainsPoint(p) {
			return token
		}
	}
	return nil
}

// Find returns the first token with the given identity, defenders first
func (scene *Scene) Find(identity string) *ent.Token {
	for _, token := range scene.Tokens() {
		if token.Identity == identity {
			return token
		}
	}
	return nil
}

// Tokens returns every token in draw order, defenders then attackers
func (scene *Scene) Tokens() []*ent.Token {
	tokens := make([]*ent.Token, 0, len(scene.Defenders)+len(scene.Attackers))
	tokens = append(tokens, scene.Defenders...)
	tokens = append(tokens, scene.Attackers...)
	return tokens
}

// ShowThreshold asks the next render to draw the offside line at y
func (scene *Scene) ShowThreshold(y int) {
	scene.thresholdY = y
	scene.thresholdPending = true
}

// TakeThreshold returns the pending offside line, if any, and clears it.
// Only the render step should call this.
func (scene *Scene) TakeThreshold() (int, bool) {
	if !scene.thresholdPending {
		return 0, false
	}
	scene.thresholdPending = false
	return scene.thresholdY, true
}

// Snapshot encodes the current token state
func (scene *Scene) Snapshot() ([]byte, error) {
	w := bytes.NewBuffer(nil)
	if err := packbuf.Write(w, &scene.sceneSnapshot); err != nil {
		return nil, errors.Wrap(err, "unable to snapshot scene")
	}
	return w.Bytes(), nil
}

// Restore replaces the tokens with ones decoded from a Snapshot.
// Any *ent.Token held from before the call no longer belongs to the scene.
func (scene *Scene) Restore(data []byte) error {
	var snapshot sceneSnapshot
	if err := packbuf.Read(bytes.NewReader(data), &snapshot); err != nil {
		return errors.Wrap(err, "unable to restore scene")
	}
	scene.sceneSnapshot = snapshot
	return nil
}
