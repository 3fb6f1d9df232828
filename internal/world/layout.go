package world

import (
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
)

// Placement is where a token starts when a scene is built
type Placement struct {
	Role     ent.Role
	Identity string
	Position ent.Point
}

type Layout []Placement

// DefaultLayout is the starting line-up for a board of the given extent:
// four outfield defenders, a goalkeeper near the top goal line and
// two attackers.
func DefaultLayout(width, height int, tokenSize ent.Size) Layout {
	// positions are spread across the board in tenths of its width
	tenth := width / 10
	return Layout{
		{Role: ent.RoleDefender, Identity: "5", Position: ent.Point{X: tenth, Y: height / 2}},
		{Role: ent.RoleDefender, Identity: "3", Position: ent.Point{X: tenth * 3, Y: height / 3}},
		{Role: ent.RoleDefender, Identity: "2", Position: ent.Point{X: tenth * 6, Y: height / 4}},
		{Role: ent.RoleDefender, Identity: "4", Position: ent.Point{X: tenth * 8, Y: height / 2}},
		{Role: ent.RoleGoalkeeper, Identity: "1", Position: ent.Point{X: width/2 - tokenSize.Width, Y: tokenSize.Height}},
		{Role: ent.RoleAttacker, Identity: "9", Position: ent.Point{X: tenth * 4, Y: height / 2}},
		{Role: ent.RoleAttacker, Identity: "7", Position: ent.Point{X: width / 2, Y: height / 3}},
	}
}
