// ent is the entity package
package ent

// Role is what side of the ball a token plays on.
type Role int32

const (
	RoleAttacker Role = iota
	RoleDefender
	// RoleGoalkeeper belongs to the defending group. It is only drawn
	// differently, evaluation treats it like any other defender.
	RoleGoalkeeper
)

func (role Role) String() string {
	switch role {
	case RoleAttacker:
		return "attacker"
	case RoleDefender:
		return "defender"
	case RoleGoalkeeper:
		return "goalkeeper"
	}
	return "unknown"
}

// IsDefending reports whether the role counts towards the defending group
func (role Role) IsDefending() bool {
	return role == RoleDefender || role == RoleGoalkeeper
}

// Point is a position in scene-local pixels. Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

type Size struct {
	Width, Height int
}

// Token is a single player placed on the board
type Token struct {
	Role Role
	// Identity is the label drawn on the token, ie. the shirt number
	Identity string
	Position Point
	Size     Size
}

// ContainsPoint reports whether p is inside the token's bounding box.
// Both edges are inclusive, so a point on the border counts as a hit.
func (self *Token) ContainsPoint(p Point) bool {
	insideX := p.X >= self.Position.X && p.X <= self.Position.X+self.Size.Width
	if !insideX {
		return false
	}
	return p.Y >= self.Position.Y && p.Y <= self.Position.Y+self.Size.Height
}

// MoveTo sets the position, it's legal to move off the board
func (self *Token) MoveTo(p Point) {
	self.Position = p
}

// Translate moves the token by the given delta
func (self *Token) Translate(delta Point) {
	self.MoveTo(self.Position.Add(delta))
}

func (self *Token) String() string {
	return "Player number " + self.Identity
}
