package world

import (
	"fmt"

	"github.com/nathoo/wawel/types"
)

// World is everything built at setup: the room graph, the actors and the
// list of target items. It is owned by the engine for the whole game.
type World struct {
	Game types.GameDef

	// Rooms and OpenRooms both start with the start room. Index 0 is never
	// a capture destination or random placement.
	Rooms     []*Room
	OpenRooms []*Room
	Start     *Room

	Player  *Player
	Enemies []*Character
	Artwork []string

	byID map[string]*Room
}

// Room returns the room with the given ID, or nil.
func (w *World) Room(id string) *Room {
	return w.byID[id]
}

// AddOpenRoom appends r to the open rooms unless it is already there.
func (w *World) AddOpenRoom(r *Room) bool {
	for _, o := range w.OpenRooms {
		if o == r {
			return false
		}
	}
	w.OpenRooms = append(w.OpenRooms, r)
	return true
}

// IsOpen reports whether r is in the open rooms list.
func (w *World) IsOpen(r *Room) bool {
	for _, o := range w.OpenRooms {
		if o == r {
			return true
		}
	}
	return false
}

// RemoveEnemy drops e from the roster.
func (w *World) RemoveEnemy(e *Character) {
	for i, o := range w.Enemies {
		if o == e {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return
		}
	}
}

// EnemyIn returns the live enemy standing in r, or nil.
func (w *World) EnemyIn(r *Room) *Character {
	for _, e := range w.Enemies {
		if e.Room == r {
			return e
		}
	}
	return nil
}

// Build turns loaded definitions into a playable world. Enemies are placed
// before items, and every random draw goes through rnd so a seeded source
// reproduces the same castle.
func Build(defs *types.Defs, rnd Rand) (*World, error) {
	w := &World{
		Game:    defs.Game,
		Artwork: append([]string(nil), defs.Game.Artwork...),
		byID:    make(map[string]*Room, len(defs.Rooms)),
	}

	for _, rd := range defs.Rooms {
		if _, dup := w.byID[rd.ID]; dup {
			return nil, fmt.Errorf("duplicate room %q", rd.ID)
		}
		r := NewRoom(rd.ID, rd.Description)
		r.Open = rd.Open
		w.byID[rd.ID] = r
	}

	w.Start = w.byID[defs.Game.Start]
	if w.Start == nil {
		return nil, fmt.Errorf("start room %q not defined", defs.Game.Start)
	}
	if !w.Start.Open {
		return nil, fmt.Errorf("start room %q must be open", defs.Game.Start)
	}
	w.Rooms = append(w.Rooms, w.Start)
	w.OpenRooms = append(w.OpenRooms, w.Start)
	for _, rd := range defs.Rooms {
		r := w.byID[rd.ID]
		if r == w.Start {
			continue
		}
		w.Rooms = append(w.Rooms, r)
		if r.Open {
			w.OpenRooms = append(w.OpenRooms, r)
		}
	}

	for _, rd := range defs.Rooms {
		r := w.byID[rd.ID]
		for dir, ed := range rd.Exits {
			to := w.byID[ed.To]
			if to == nil {
				return nil, fmt.Errorf("room %q: exit %s leads to unknown room %q", rd.ID, dir, ed.To)
			}
			r.SetExit(Direction(dir), to, !ed.Closed)
		}
	}

	w.Player = NewPlayer(w.Start, defs.Game.PlayerMaxInjuries, defs.Game.MaxWeight)

	if err := w.spawnEnemies(rnd); err != nil {
		return nil, err
	}
	if err := w.placeItems(defs.Items, rnd); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) spawnEnemies(rnd Rand) error {
	n := w.Game.Enemies
	if n == 0 {
		return nil
	}
	if n > len(w.OpenRooms)-1 {
		return fmt.Errorf("%d enemies need at least %d open rooms", n, n+1)
	}
	taken := make(map[*Room]bool, n)
	for i := 0; i < n; i++ {
		var r *Room
		for {
			r = w.OpenRooms[1+rnd.Intn(len(w.OpenRooms)-1)]
			if !taken[r] {
				break
			}
		}
		taken[r] = true
		w.Enemies = append(w.Enemies, NewCharacter(w.Game.EnemyName, r, w.Game.EnemyMaxInjuries, w.Game.MaxWeight))
	}
	return nil
}

func (w *World) placeItems(defs []types.ItemDef, rnd Rand) error {
	items := make(map[string]*Item, len(defs))
	for _, d := range defs {
		if _, dup := items[d.ID]; dup {
			return fmt.Errorf("duplicate item %q", d.ID)
		}
		it, err := w.newItem(d)
		if err != nil {
			return err
		}
		items[d.ID] = it
	}

	for _, d := range defs {
		it := items[d.ID]
		p := d.Place
		switch p.Kind {
		case types.PlaceRoom:
			r := w.byID[p.Target]
			if r == nil {
				return fmt.Errorf("item %q: unknown room %q", d.ID, p.Target)
			}
			r.Items.Add(it)
		case types.PlaceRandomRoom:
			w.randomRoom(w.Rooms, rnd).Items.Add(it)
		case types.PlaceRandomOpenRoom, "":
			w.randomRoom(w.OpenRooms, rnd).Items.Add(it)
		case types.PlaceChest:
			chest := items[p.Target]
			if chest == nil || chest.Kind != Chest {
				return fmt.Errorf("item %q: %q is not a chest", d.ID, p.Target)
			}
			chest.Contents.Add(it)
		case types.PlacePlayer:
			w.Player.AddItem(it)
		case types.PlaceEnemy:
			if p.Index < 1 {
				return fmt.Errorf("item %q: enemy index %d out of range", d.ID, p.Index)
			}
			// Fewer enemies than the content expects: the item stays out
			// of the game along with the soldier that would carry it.
			if p.Index > len(w.Enemies) {
				continue
			}
			w.Enemies[p.Index-1].AddItem(it)
		default:
			return fmt.Errorf("item %q: unknown placement %q", d.ID, p.Kind)
		}
	}
	return nil
}

func (w *World) newItem(d types.ItemDef) (*Item, error) {
	switch d.Kind {
	case types.KindItem, "":
		return NewItem(d.ID, d.Description, d.Weight), nil
	case types.KindWeapon:
		return NewWeapon(d.ID, d.Description, d.Weight, d.Bullets), nil
	case types.KindChest:
		return NewChest(d.ID, d.Description, d.Weight), nil
	case types.KindKey:
		r := w.byID[d.Opens]
		if r == nil {
			return nil, fmt.Errorf("key %q opens unknown room %q", d.ID, d.Opens)
		}
		return NewKey(d.ID, d.Description, d.Weight, r), nil
	default:
		return nil, fmt.Errorf("item %q: unknown kind %q", d.ID, d.Kind)
	}
}

// randomRoom draws from rooms skipping index 0, falling back to the start
// room when it is the only one.
func (w *World) randomRoom(rooms []*Room, rnd Rand) *Room {
	if len(rooms) < 2 {
		return rooms[0]
	}
	return rooms[1+rnd.Intn(len(rooms)-1)]
}
