package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/wawel/types"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerPlacementHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Room "id" { ... } is curried: Room("id") returns a function that takes a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Item, Weapon, Key and Chest share the curried shape and differ in kind.
	for name, kind := range map[string]string{
		"Item":   types.KindItem,
		"Weapon": types.KindWeapon,
		"Key":    types.KindKey,
		"Chest":  types.KindChest,
	} {
		kind := kind
		L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
			id := L.CheckString(1)
			L.Push(L.NewFunction(func(L *lua.LState) int {
				tbl := L.CheckTable(1)
				coll.items = append(coll.items, rawItem{id: id, kind: kind, table: tbl})
				return 0
			}))
			return 1
		}))
	}
}

// registerPlacementHelpers exposes Closed for exits and the location
// helpers. Locations compile to the same strings the YAML format uses.
func registerPlacementHelpers(L *lua.LState) {
	// Closed("room") marks an exit as locked.
	L.SetGlobal("Closed", L.NewFunction(func(L *lua.LState) int {
		to := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("to", lua.LString(to))
		tbl.RawSetString("closed", lua.LTrue)
		L.Push(tbl)
		return 1
	}))

	// InRoom("room")
	L.SetGlobal("InRoom", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(types.PlaceRoom + ":" + L.CheckString(1)))
		return 1
	}))

	// InChest("chest")
	L.SetGlobal("InChest", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(types.PlaceChest + ":" + L.CheckString(1)))
		return 1
	}))

	// EnemyCarries(n), 1-based.
	L.SetGlobal("EnemyCarries", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(fmt.Sprintf("%s:%d", types.PlaceEnemy, L.CheckInt(1))))
		return 1
	}))

	for name, place := range map[string]string{
		"RandomRoom":     types.PlaceRandomRoom,
		"RandomOpenRoom": types.PlaceRandomOpenRoom,
		"Carried":        types.PlacePlayer,
	} {
		place := place
		L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
			L.Push(lua.LString(place))
			return 1
		}))
	}
}
