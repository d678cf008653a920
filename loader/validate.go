package loader

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/nathoo/wawel/engine/parser"
	"github.com/nathoo/wawel/engine/world"
	"github.com/nathoo/wawel/types"
)

var validKinds = map[string]bool{
	types.KindItem:   true,
	types.KindWeapon: true,
	types.KindKey:    true,
	types.KindChest:  true,
}

// Validate checks compiled definitions for referential integrity and the
// constraints the engine relies on. Every problem is reported, not just
// the first.
func Validate(defs *types.Defs) error {
	el := errors.NewErrorList()

	rooms := make(map[string]types.RoomDef, len(defs.Rooms))
	open := 0
	for _, r := range defs.Rooms {
		if r.ID == "" {
			el.Add(fmt.Errorf("room with empty id"))
			continue
		}
		if _, dup := rooms[r.ID]; dup {
			el.Add(fmt.Errorf("duplicate room %q", r.ID))
		}
		rooms[r.ID] = r
		if r.Open {
			open++
		}
	}

	el.Add(validateGame(defs.Game, rooms, open))

	// Exit targets valid.
	for _, r := range defs.Rooms {
		for dir, exit := range r.Exits {
			if !world.Direction(dir).Valid() {
				el.Add(fmt.Errorf("room %q exit %q is not a direction", r.ID, dir))
			}
			if _, ok := rooms[exit.To]; !ok {
				el.Add(fmt.Errorf("room %q exit %q points to undefined room %q", r.ID, dir, exit.To))
			}
		}
	}

	items := make(map[string]types.ItemDef, len(defs.Items))
	for _, it := range defs.Items {
		if _, dup := items[it.ID]; dup {
			el.Add(fmt.Errorf("duplicate item %q", it.ID))
		}
		items[it.ID] = it
	}
	for _, it := range defs.Items {
		el.Add(validateItem(it, rooms, items, defs.Game.Enemies))
	}

	for _, name := range defs.Game.Artwork {
		if _, ok := items[name]; !ok {
			el.Add(fmt.Errorf("artwork %q is not a defined item", name))
		}
	}

	return el.Err()
}

func validateGame(g types.GameDef, rooms map[string]types.RoomDef, open int) error {
	el := errors.NewErrorList()
	if g.Title == "" {
		el.Add(fmt.Errorf("Game.title is required"))
	}
	if g.Start == "" {
		el.Add(fmt.Errorf("Game.start is required"))
	} else if r, ok := rooms[g.Start]; !ok {
		el.Add(fmt.Errorf("start room %q not found in defined rooms", g.Start))
	} else if !r.Open {
		el.Add(fmt.Errorf("start room %q must be open", g.Start))
	}
	if open < 2 {
		el.Add(fmt.Errorf("need at least 2 open rooms, have %d", open))
	}
	if g.Enemies < 0 {
		el.Add(fmt.Errorf("Game.enemies must not be negative"))
	} else if g.Enemies > open-1 {
		el.Add(fmt.Errorf("%d enemies need at least %d open rooms, have %d", g.Enemies, g.Enemies+1, open))
	}
	if g.PlayerMaxInjuries < 0 || g.EnemyMaxInjuries < 0 {
		el.Add(fmt.Errorf("injury ceilings must not be negative"))
	}
	if g.MaxWeight <= 0 {
		el.Add(fmt.Errorf("Game.max_weight must be positive"))
	}
	if len(g.Artwork) == 0 {
		el.Add(fmt.Errorf("Game.artwork must name at least one item"))
	}
	if g.EnemyName != "" && !parser.Addressable(g.EnemyName) {
		el.Add(fmt.Errorf("Game.enemy_name %q must be a single lowercase word", g.EnemyName))
	}
	return el.Err()
}

func validateItem(it types.ItemDef, rooms map[string]types.RoomDef, items map[string]types.ItemDef, enemies int) error {
	el := errors.NewErrorList()
	if !parser.Addressable(it.ID) {
		el.Add(fmt.Errorf("item %q: id must be a single lowercase word", it.ID))
	}
	if !validKinds[it.Kind] {
		el.Add(fmt.Errorf("item %q has unknown kind %q", it.ID, it.Kind))
	}
	if it.Weight < 0 {
		el.Add(fmt.Errorf("item %q has negative weight", it.ID))
	}
	if it.Kind == types.KindKey {
		if _, ok := rooms[it.Opens]; !ok {
			el.Add(fmt.Errorf("key %q opens undefined room %q", it.ID, it.Opens))
		}
	}

	p := it.Place
	switch p.Kind {
	case types.PlaceRoom:
		if _, ok := rooms[p.Target]; !ok {
			el.Add(fmt.Errorf("item %q placed in undefined room %q", it.ID, p.Target))
		}
	case types.PlaceChest:
		chest, ok := items[p.Target]
		switch {
		case !ok:
			el.Add(fmt.Errorf("item %q placed in undefined chest %q", it.ID, p.Target))
		case chest.Kind != types.KindChest:
			el.Add(fmt.Errorf("item %q placed in %q, which is not a chest", it.ID, p.Target))
		case p.Target == it.ID:
			el.Add(fmt.Errorf("chest %q cannot contain itself", it.ID))
		}
	case types.PlaceEnemy:
		if p.Index < 1 || p.Index > enemies {
			el.Add(fmt.Errorf("item %q carried by enemy %d, but there are %d enemies", it.ID, p.Index, enemies))
		}
	}
	return el.Err()
}
