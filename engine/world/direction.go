package world

// Direction names an exit out of a room.
type Direction string

// The six directions actors can move in.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every direction in draw order for random enemy moves.
var Directions = []Direction{North, South, East, West, Up, Down}

// Opposite returns the reverse direction, or "" for a non-standard one.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return ""
	}
}

// Valid reports whether d is one of the six standard directions.
func (d Direction) Valid() bool {
	return d.Opposite() != ""
}
