// Package occupancy tracks which rooms hold a live enemy. At most one enemy
// may stand in a room; the player is never tracked.
package occupancy

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/nathoo/wawel/engine/world"
)

// Tracker is the set of occupied rooms.
type Tracker struct {
	rooms mapset.Set[*world.Room]
}

// New creates a tracker seeded with the rooms of the given enemies.
func New(enemies []*world.Character) *Tracker {
	t := &Tracker{rooms: mapset.New[*world.Room]()}
	for _, e := range enemies {
		t.Add(e.Room)
	}
	return t
}

// Occupied reports whether an enemy stands in r.
func (t *Tracker) Occupied(r *world.Room) bool {
	return t.rooms.Has(r)
}

// Add marks r as occupied.
func (t *Tracker) Add(r *world.Room) {
	t.rooms.Put(r)
}

// Remove marks r as free.
func (t *Tracker) Remove(r *world.Room) {
	t.rooms.Remove(r)
}

// Relocate moves an enemy to another room as one step: free the old room,
// move (healing included), occupy the new one. The caller must check
// Occupied(to) first.
func (t *Tracker) Relocate(c *world.Character, to *world.Room) {
	t.rooms.Remove(c.Room)
	c.MoveTo(to)
	t.rooms.Put(to)
}

// Len returns the number of occupied rooms.
func (t *Tracker) Len() int {
	return t.rooms.Size()
}

// Rooms returns the IDs of the occupied rooms, sorted.
func (t *Tracker) Rooms() []string {
	ids := make([]string, 0, t.rooms.Size())
	t.rooms.Each(func(r *world.Room) {
		ids = append(ids, r.ID)
	})
	sort.Strings(ids)
	return ids
}
