// drag turns pointer gestures into token moves on a scene.
//
// A press on a token starts dragging it. A press on empty board starts an
// annotation stroke instead, which never touches the scene.
package drag

import (
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/world"
)

type State int

const (
	StateIdle State = iota
	StateDragging
	StateAnnotating
)

func (state State) String() string {
	switch state {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateAnnotating:
		return "annotating"
	}
	return "unknown"
}

// Handler receives the side effects of a gesture. Every call happens
// synchronously inside the pointer method that caused it.
type Handler interface {
	// Selected is called when a press lands on a token, before it moves
	Selected(token *ent.Token)
	// Deselected is called when a press misses every token
	Deselected()
	// Moved is called after every drag step, the board needs redrawing
	Moved(token *ent.Token)
	// Annotate is called with each segment of a free-hand stroke
	Annotate(from, to ent.Point)
}

// Controller is the pointer state machine. It is not safe for concurrent
// use, it's expected to be driven from the game loop.
type Controller struct {
	scene   *world.Scene
	handler Handler

	state    State
	selected *ent.Token
	last     ent.Point
}

func New(scene *world.Scene, handler Handler) *Controller {
	return &Controller{
		scene:   scene,
		handler: handler,
	}
}

func (ctrl *Controller) State() State {
	return ctrl.state
}

// Selected returns the token being dragged, or nil
func (ctrl *Controller) Selected() *ent.Token {
	if ctrl.state != StateDragging {
		return nil
	}
	return ctrl.selected
}

// PointerDown starts a gesture. It's also accepted mid-gesture (ie. a
// release was missed) and simply starts a new one.
func (ctrl *Controller) PointerDown(p ent.Point) {
	ctrl.last = p
	ctrl.selected = ctrl.scene.TokenAt(p)
	if ctrl.selected == nil {
		ctrl.state = StateAnnotating
		ctrl.handler.Deselected()
		return
	}
	ctrl.state = StateDragging
	ctrl.handler.Selected(ctrl.selected)
}

// PointerMove moves the selected token by however far the pointer moved
// since the last event, or extends the annotation stroke
func (ctrl *Controller) PointerMove(p ent.Point) {
	switch ctrl.state {
	case StateDragging:
		ctrl.selected.Translate(p.Sub(ctrl.last))
		ctrl.last = p
		ctrl.handler.Moved(ctrl.selected)
	case StateAnnotating:
		from := ctrl.last
		ctrl.last = p
		ctrl.handler.Annotate(from, p)
	}
}

func (ctrl *Controller) PointerUp(p ent.Point) {
	ctrl.state = StateIdle
	ctrl.selected = nil
}

// Reset drops any gesture in progress, ie. after the scene's tokens
// were replaced
func (ctrl *Controller) Reset() {
	ctrl.state = StateIdle
	ctrl.selected = nil
}
