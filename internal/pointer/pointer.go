// pointer turns polled button/cursor state into down, move and up events.
//
// Ebiten reports input by polling once per frame, the drag controller
// wants discrete events.
package pointer

import "github.com/silbinarywolf/toy-offside-board/internal/ent"

type Kind int

const (
	Down Kind = iota + 1
	Move
	Up
)

func (kind Kind) String() string {
	switch kind {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return "none"
}

type Event struct {
	Kind     Kind
	Position ent.Point
}

// Tracker remembers last frame's pointer state
type Tracker struct {
	pressed bool
	id      int
	last    ent.Point
}

// Poll returns the events implied by this frame's state, if any.
//
// A press is reported as Down at the press position. While held, any
// change in position is a Move. A release is an Up at the last held position.
// id identifies what is pressing (ie. a touch), if it changes while held the
// old press was released and a new one started between frames, so that's
// reported as an Up followed by a Down rather than a Move.
func (tracker *Tracker) Poll(pressed bool, id int, p ent.Point) []Event {
	var events []Event
	switch {
	case pressed && tracker.pressed && id != tracker.id:
		events = append(events,
			Event{Kind: Up, Position: tracker.last},
			Event{Kind: Down, Position: p},
		)
	case pressed && !tracker.pressed:
		events = append(events, Event{Kind: Down, Position: p})
	case pressed && tracker.pressed && p != tracker.last:
		events = append(events, Event{Kind: Move, Position: p})
	case !pressed && tracker.pressed:
		events = append(events, Event{Kind: Up, Position: tracker.last})
	}
	tracker.pressed = pressed
	if pressed {
		tracker.id = id
		tracker.last = p
	}
	return events
}
