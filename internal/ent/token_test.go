package ent

import "testing"

type containsTestCase struct {
	Name   string
	Point  Point
	Output bool
}

var containsGoldenTests = []containsTestCase{
	{Name: "top-left corner", Point: Point{X: 100, Y: 200}, Output: true},
	{Name: "bottom-right corner", Point: Point{X: 130, Y: 230}, Output: true},
	{Name: "top-right corner", Point: Point{X: 130, Y: 200}, Output: true},
	{Name: "centre", Point: Point{X: 115, Y: 215}, Output: true},
	{Name: "one left", Point: Point{X: 99, Y: 215}, Output: false},
	{Name: "one right", Point: Point{X: 131, Y: 215}, Output: false},
	{Name: "one above", Point: Point{X: 115, Y: 199}, Output: false},
	{Name: "one below", Point: Point{X: 115, Y: 231}, Output: false},
	{Name: "diagonal outside", Point: Point{X: 131, Y: 231}, Output: false},
}

func TestTokenContainsPoint(t *testing.T) {
	token := &Token{
		Role:     RoleDefender,
		Identity: "5",
		Position: Point{X: 100, Y: 200},
		Size:     Size{Width: 30, Height: 30},
	}
	for _, test := range containsGoldenTests {
		if res := token.ContainsPoint(test.Point); res != test.Output {
			t.Errorf("%s: ContainsPoint(%v) returned %v but expected %v", test.Name, test.Point, res, test.Output)
		}
	}
}

func TestTokenTranslateRoundTrip(t *testing.T) {
	token := &Token{
		Role:     RoleAttacker,
		Identity: "9",
		Position: Point{X: 256, Y: 240},
		Size:     Size{Width: 30, Height: 30},
	}
	start := token.Position
	deltas := []Point{{X: 13, Y: -40}, {X: -300, Y: 900}, {X: 0, Y: 0}}
	for _, delta := range deltas {
		token.Translate(delta)
		token.Translate(Point{X: -delta.X, Y: -delta.Y})
		if token.Position != start {
			t.Fatalf("translating by %v and back moved token from %v to %v", delta, start, token.Position)
		}
	}
}

func TestTokenMoveToAllowsOutOfBounds(t *testing.T) {
	token := &Token{Size: Size{Width: 30, Height: 30}}
	token.MoveTo(Point{X: -50, Y: 10000})
	if token.Position != (Point{X: -50, Y: 10000}) {
		t.Errorf("expected position to be set unconditionally, got %v", token.Position)
	}
}

func TestRoleIsDefending(t *testing.T) {
	if RoleAttacker.IsDefending() {
		t.Errorf("attacker should not be in the defending group")
	}
	if !RoleDefender.IsDefending() || !RoleGoalkeeper.IsDefending() {
		t.Errorf("defender and goalkeeper should be in the defending group")
	}
}

func TestTokenString(t *testing.T) {
	token := &Token{Identity: "7"}
	if got := token.String(); got != "Player number 7" {
		t.Errorf("unexpected status label %q", got)
	}
}
