package world

// Kind tags the item variant.
type Kind int

const (
	Plain Kind = iota
	Weapon
	Key
	Chest
)

func (k Kind) String() string {
	switch k {
	case Weapon:
		return "weapon"
	case Key:
		return "key"
	case Chest:
		return "chest"
	default:
		return "item"
	}
}

// Item is anything that can lie in a room or be carried. Which of the
// variant fields are meaningful depends on Kind.
type Item struct {
	Name        string
	Description string
	Weight      int
	Kind        Kind

	Bullets  int      // Weapon
	Room     *Room    // Key: the room whose doors it unlocks
	Contents *ItemSet // Chest
	Opened   bool     // Chest
}

// NewItem creates a plain item.
func NewItem(name, description string, weight int) *Item {
	return &Item{Name: name, Description: description, Weight: weight, Kind: Plain}
}

// NewWeapon creates a weapon loaded with the given number of bullets.
func NewWeapon(name, description string, weight, bullets int) *Item {
	return &Item{Name: name, Description: description, Weight: weight, Kind: Weapon, Bullets: bullets}
}

// NewKey creates a key that unlocks the doors of room.
func NewKey(name, description string, weight int, room *Room) *Item {
	return &Item{Name: name, Description: description, Weight: weight, Kind: Key, Room: room}
}

// NewChest creates a closed, empty chest.
func NewChest(name, description string, weight int) *Item {
	return &Item{Name: name, Description: description, Weight: weight, Kind: Chest, Contents: NewItemSet()}
}

// Usable reports whether the item is a weapon with bullets left.
func (it *Item) Usable() bool {
	return it != nil && it.Kind == Weapon && it.Bullets > 0
}

// TargetKind says what an item is being used on.
type TargetKind int

const (
	TargetRoom TargetKind = iota
	TargetCharacter
)

// Target is the thing an item is used on.
type Target struct {
	Kind      TargetKind
	Room      *Room
	Character *Character
}

// RoomTarget aims an item at a room.
func RoomTarget(r *Room) Target {
	return Target{Kind: TargetRoom, Room: r}
}

// CharacterTarget aims an item at a character.
func CharacterTarget(c *Character) Target {
	return Target{Kind: TargetCharacter, Character: c}
}

// Use applies the item's effect to the target. Chests and keys act on
// rooms, weapons act on characters; any other pairing is ErrWrongTarget.
func (it *Item) Use(t Target) error {
	switch it.Kind {
	case Weapon:
		if t.Kind != TargetCharacter || t.Character == nil {
			return ErrWrongTarget
		}
		if it.Bullets <= 0 {
			return ErrNoBullets
		}
		it.Bullets--
		t.Character.Injure()
		return nil

	case Key:
		if t.Kind != TargetRoom || t.Room == nil {
			return ErrWrongTarget
		}
		if t.Room != it.Room {
			return ErrWrongRoom
		}
		t.Room.OpenExits()
		return nil

	case Chest:
		if t.Kind != TargetRoom || t.Room == nil {
			return ErrWrongTarget
		}
		if it.Opened {
			return ErrChestOpened
		}
		for _, content := range it.Contents.Clear() {
			t.Room.Items.Add(content)
		}
		it.Opened = true
		return nil

	default:
		return ErrNotUsable
	}
}
