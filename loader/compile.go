// Package loader turns world content (a sandboxed Lua DSL or a YAML file)
// into validated types.Defs. The Lua VM is discarded after loading.
package loader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/wawel/types"
)

// Defaults for Game fields the content leaves out.
const (
	defaultEnemyName         = "soldier"
	defaultEnemyMaxInjuries  = 1
	defaultPlayerMaxInjuries = 6
	defaultMaxWeight         = 45
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// rawItem holds an item table before compilation.
type rawItem struct {
	id    string
	kind  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStrings converts a Lua array of strings to a slice.
func tableToStrings(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*types.Defs, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs := &types.Defs{Game: compileGame(coll.game)}

	for _, raw := range coll.rooms {
		room, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room %s: %w", raw.id, err)
		}
		defs.Rooms = append(defs.Rooms, room)
	}

	for _, raw := range coll.items {
		item, err := compileItem(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling item %s: %w", raw.id, err)
		}
		defs.Items = append(defs.Items, item)
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	g := types.GameDef{
		Title:             getString(tbl, "title"),
		Author:            getString(tbl, "author"),
		Version:           getString(tbl, "version"),
		Start:             getString(tbl, "start"),
		Intro:             getString(tbl, "intro"),
		Help:              getString(tbl, "help"),
		Enemies:           getInt(tbl, "enemies", 0),
		EnemyName:         getString(tbl, "enemy_name"),
		EnemyMaxInjuries:  getInt(tbl, "enemy_max_injuries", defaultEnemyMaxInjuries),
		PlayerMaxInjuries: getInt(tbl, "player_max_injuries", defaultPlayerMaxInjuries),
		MaxWeight:         getInt(tbl, "max_weight", defaultMaxWeight),
		Artwork:           tableToStrings(getTable(tbl, "artwork")),
	}
	if g.EnemyName == "" {
		g.EnemyName = defaultEnemyName
	}
	return g
}

// compileRoom compiles a raw room. Exit values are either a room ID or a
// table built by Closed().
func compileRoom(raw rawRoom) (types.RoomDef, error) {
	tbl := raw.table
	room := types.RoomDef{
		ID:          raw.id,
		Description: getString(tbl, "description"),
		Open:        getBool(tbl, "open", false),
		Exits:       map[string]types.ExitDef{},
	}

	var err error
	if exits := getTable(tbl, "exits"); exits != nil {
		exits.ForEach(func(k, v lua.LValue) {
			dir, ok := k.(lua.LString)
			if !ok {
				err = fmt.Errorf("exit keys must be direction names")
				return
			}
			switch val := v.(type) {
			case lua.LString:
				room.Exits[string(dir)] = types.ExitDef{To: string(val)}
			case *lua.LTable:
				room.Exits[string(dir)] = types.ExitDef{
					To:     getString(val, "to"),
					Closed: getBool(val, "closed", false),
				}
			default:
				err = fmt.Errorf("exit %s: want a room ID or Closed(...)", dir)
			}
		})
	}
	return room, err
}

func compileItem(raw rawItem) (types.ItemDef, error) {
	tbl := raw.table
	place, err := parsePlacement(getString(tbl, "location"))
	if err != nil {
		return types.ItemDef{}, err
	}
	return types.ItemDef{
		ID:          raw.id,
		Kind:        raw.kind,
		Description: getString(tbl, "description"),
		Weight:      getInt(tbl, "weight", 0),
		Bullets:     getInt(tbl, "bullets", 0),
		Opens:       getString(tbl, "opens"),
		Place:       place,
	}, nil
}

// parsePlacement reads a location string: "random_room",
// "random_open_room", "player", "room:<id>", "chest:<id>" or "enemy:<n>".
// A bare word that is none of the fixed kinds names a room.
func parsePlacement(s string) (types.Placement, error) {
	switch s {
	case "":
		return types.Placement{}, fmt.Errorf("location is required")
	case types.PlaceRandomRoom, types.PlaceRandomOpenRoom, types.PlacePlayer:
		return types.Placement{Kind: s}, nil
	}

	kind, target, found := strings.Cut(s, ":")
	if !found {
		return types.Placement{Kind: types.PlaceRoom, Target: s}, nil
	}
	switch kind {
	case types.PlaceRoom, types.PlaceChest:
		return types.Placement{Kind: kind, Target: target}, nil
	case types.PlaceEnemy:
		n, err := strconv.Atoi(target)
		if err != nil {
			return types.Placement{}, fmt.Errorf("location %q: enemy number: %w", s, err)
		}
		return types.Placement{Kind: kind, Index: n}, nil
	default:
		return types.Placement{}, fmt.Errorf("location %q: unknown kind %q", s, kind)
	}
}

// sortedLuaFiles returns .lua files in a directory, with game.lua first
// and the rest sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
