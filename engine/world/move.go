package world

// MoveResult is the outcome of checking whether an actor can leave its
// room in some direction.
type MoveResult int

const (
	MovePossible MoveResult = iota
	MoveDoorClosed
	MoveNoExit
)

func (m MoveResult) String() string {
	switch m {
	case MovePossible:
		return "possible"
	case MoveDoorClosed:
		return "door closed"
	default:
		return "no exit"
	}
}

// Err converts a failed move into its sentinel error.
func (m MoveResult) Err() error {
	switch m {
	case MoveDoorClosed:
		return ErrDoorClosed
	case MoveNoExit:
		return ErrNoExit
	default:
		return nil
	}
}

// TryMove resolves a move of c in direction d without changing anything.
// The destination is nil unless the move is possible.
func TryMove(c *Character, d Direction) (*Room, MoveResult) {
	e, ok := c.Room.Exit(d)
	if !ok {
		return nil, MoveNoExit
	}
	if !e.Open {
		return nil, MoveDoorClosed
	}
	return e.To, MovePossible
}
