// offside decides whether the foremost attacker is in an offside position
// and where the offside line sits.
//
// Y grows downward and the attacked goal line is at y = 0, so a smaller y is
// further forward.
package offside

import (
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/world"
)

// DefaultMinGoalsideDefenders is the law as written: the goalkeeper plus
// at least one outfield player must be level with or behind the attacker.
const DefaultMinGoalsideDefenders = 2

type Rules struct {
	// MinGoalsideDefenders is how many defending tokens must be level with
	// or nearer their own goal line than the foremost attacker for play
	// to be onside
	MinGoalsideDefenders int
}

func DefaultRules() Rules {
	return Rules{
		MinGoalsideDefenders: DefaultMinGoalsideDefenders,
	}
}

type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeOnside
	OutcomeOffside
)

func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeOnside:
		return "onside"
	case OutcomeOffside:
		return "offside"
	}
	return "invalid"
}

type Result struct {
	Outcome Outcome
	// OffsideToken is the foremost attacker when it is offside, otherwise nil
	OffsideToken *ent.Token
	// ThresholdY is where the offside line should be drawn
	ThresholdY int

	ForemostAttacker  *ent.Token
	GoalsideDefenders int
}

// InvalidSceneError is returned when a scene can't be evaluated
type InvalidSceneError struct {
	Reason string
}

func (err *InvalidSceneError) Error() string {
	return "invalid scene: " + err.Reason
}

// Evaluate returns the offside decision for the scene. It does not modify
// the scene, callers decide whether to show the threshold.
func Evaluate(scene *world.Scene, rules Rules) (Result, error) {
	foremost := ForemostAttacker(scene.Attackers)
	if foremost == nil {
		return Result{}, &InvalidSceneError{Reason: "no attacking players"}
	}

	// level is considered onside (hence <=)
	goalside := 0
	for _, defender := range scene.Defenders {
		if defender.Position.Y <= foremost.Position.Y {
			goalside++
		}
	}

	result := Result{
		Outcome:           OutcomeOnside,
		ThresholdY:        ThresholdY(scene.Defenders, scene.Height),
		ForemostAttacker:  foremost,
		GoalsideDefenders: goalside,
	}
	if goalside < rules.MinGoalsideDefenders {
		result.Outcome = OutcomeOffside
		result.OffsideToken = foremost
	}
	return result, nil
}

// ForemostAttacker returns the attacker with the smallest y. When several
// share it, the first in slice order is returned. Returns nil for an
// empty slice.
func ForemostAttacker(attackers []*ent.Token) *ent.Token {
	if len(attackers) == 0 {
		return nil
	}
	foremost := attackers[0]
	for _, attacker := range attackers[1:] {
		if attacker.Position.Y < foremost.Position.Y {
			foremost = attacker
		}
	}
	return foremost
}

// ThresholdY is the y of the second-most-forward distinct defender position.
//
// note: when every defender shares the same y (or there are none) there is
// no second position and this falls back to the canvas height, which puts
// the line on the bottom edge. That keeps the board's historic behaviour
// but it is not what the law says; all-level defenders should really put
// the line at their shared y.
func ThresholdY(defenders []*ent.Token, canvasHeight int) int {
	if len(defenders) == 0 {
		return canvasHeight
	}
	last := defenders[0].Position.Y
	for _, defender := range defenders[1:] {
		if defender.Position.Y < last {
			last = defender.Position.Y
		}
	}
	threshold := canvasHeight
	found := false
	for _, defender := range defenders {
		y := defender.Position.Y
		if y > last && (!found || y < threshold) {
			threshold = y
			found = true
		}
	}
	return threshold
}

const onsideMessage = "Play is onside. Nothin' to see here..."

// StatusText is the message shown to the user for an evaluation
func StatusText(result Result, err error) string {
	if err != nil {
		return "Cannot evaluate offside: " + err.Error()
	}
	switch result.Outcome {
	case OutcomeOffside:
		return result.OffsideToken.String() + " - OFFSIDE!"
	case OutcomeOnside:
		return onsideMessage
	}
	return "Cannot evaluate offside"
}
