package world

import (
	"fmt"
	"sort"
	"strings"
)

// Exit is one door out of a room.
type Exit struct {
	To   *Room
	Open bool
}

// Room is a location in the castle. Open marks rooms eligible for capture
// destinations and random placements; it is unrelated to door state.
type Room struct {
	ID          string
	Description string
	Open        bool
	Items       *ItemSet

	exits map[Direction]*Exit
}

// NewRoom creates a room with no exits and no items.
func NewRoom(id, description string) *Room {
	return &Room{
		ID:          id,
		Description: description,
		Items:       NewItemSet(),
		exits:       make(map[Direction]*Exit),
	}
}

// SetExit adds or replaces the exit in direction d.
func (r *Room) SetExit(d Direction, to *Room, open bool) {
	r.exits[d] = &Exit{To: to, Open: open}
}

// Exit returns the exit in direction d.
func (r *Room) Exit(d Direction) (*Exit, bool) {
	e, ok := r.exits[d]
	return e, ok
}

// Directions returns the directions that have an exit, standard ones first
// in canonical order, then any others sorted.
func (r *Room) Directions() []Direction {
	out := make([]Direction, 0, len(r.exits))
	for _, d := range Directions {
		if _, ok := r.exits[d]; ok {
			out = append(out, d)
		}
	}
	var extra []Direction
	for d := range r.exits {
		if !d.Valid() {
			extra = append(extra, d)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// OpenExits opens every door of the room and, on each neighbour, the door
// facing the opposite way, wherever that door leads. Doors elsewhere in
// the castle are not touched.
func (r *Room) OpenExits() {
	for d, e := range r.exits {
		e.Open = true
		if back, ok := e.To.exits[d.Opposite()]; ok {
			back.Open = true
		}
	}
}

// ClosedNeighbours returns the rooms that sit behind a closed door of r.
func (r *Room) ClosedNeighbours() []*Room {
	var out []*Room
	for _, d := range r.Directions() {
		if e := r.exits[d]; !e.Open {
			out = append(out, e.To)
		}
	}
	return out
}

// ExitString lists the exits, e.g. "Exits: north east".
func (r *Room) ExitString() string {
	dirs := r.Directions()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	return "Exits: " + strings.Join(names, " ")
}

// LongDescription is the text printed when the player enters or looks.
func (r *Room) LongDescription() string {
	return fmt.Sprintf("You are %s.\n%s", r.Description, r.ExitString())
}

// ItemString lists what lies on the floor, or says the room is empty.
func (r *Room) ItemString() string {
	if r.Items.Len() == 0 {
		return "The room is empty."
	}
	return "Contents of the room:\n" + strings.Join(r.Items.Names(), "  ")
}
