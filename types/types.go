// Package types defines the shared data structures for the wawel engine.
// This package contains only type definitions: no logic, no methods.
package types

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
	Target string // optional
}

// Event is emitted when something noteworthy happens during a turn.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Events []Event
	Output []string
	Over   bool // the game has ended (won, lost or quit)
}

// GameDef holds game metadata and tuning knobs from the world content.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Intro   string
	Help    string // shown by the help command above the command list
	Start   string // starting (and exit) room ID

	Enemies           int    // number of enemies spawned at setup
	EnemyName         string // how enemies are addressed in commands
	EnemyMaxInjuries  int
	PlayerMaxInjuries int
	MaxWeight         int      // carry ceiling shared by all actors
	Artwork           []string // item IDs the player must bring out
}

// ExitDef is one directional exit of a room.
type ExitDef struct {
	To     string
	Closed bool
}

// RoomDef is the base definition of a room.
type RoomDef struct {
	ID          string
	Description string // short form, e.g. "in the ballroom"
	Open        bool   // eligible as a random spawn/teleport destination
	Exits       map[string]ExitDef
}

// Item kinds.
const (
	KindItem   = "item"
	KindWeapon = "weapon"
	KindKey    = "key"
	KindChest  = "chest"
)

// Placement kinds.
const (
	PlaceRoom           = "room"
	PlaceRandomRoom     = "random_room"
	PlaceRandomOpenRoom = "random_open_room"
	PlaceChest          = "chest"
	PlacePlayer         = "player"
	PlaceEnemy          = "enemy"
)

// Placement says where an item starts the game.
type Placement struct {
	Kind   string
	Target string // room or chest ID
	Index  int    // 1-based enemy number for PlaceEnemy
}

// ItemDef is the base definition of an item.
type ItemDef struct {
	ID          string
	Kind        string
	Description string
	Weight      int
	Bullets     int    // weapons only
	Opens       string // keys only: room whose doors the key unlocks
	Place       Placement
}

// Defs holds the immutable game definitions. Rooms and Items keep
// definition order, which drives random placement.
type Defs struct {
	Game  GameDef
	Rooms []RoomDef
	Items []ItemDef
}
