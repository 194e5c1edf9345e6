package game

import "fmt"

// Action is a single step on the grid.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// Directions lists the moving actions in enumeration order.
var Directions = []Action{North, South, East, West}

var vectors = map[Action]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
	Stop:  {X: 0, Y: 0},
}

var reverses = map[Action]Action{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Stop:  Stop,
}

// Reverse returns the opposite direction; Stop reverses to itself.
func (a Action) Reverse() Action {
	if r, ok := reverses[a]; ok {
		return r
	}
	return a
}

// Position is a cell on the board. Y grows downwards, matching the row order of a layout.
type Position struct {
	X, Y int
}

// Move returns the position one step away in the given direction.
func (p Position) Move(a Action) Position {
	v, ok := vectors[a]
	if !ok {
		return p
	}
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Manhattan returns the grid distance to other.
func (p Position) Manhattan(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
