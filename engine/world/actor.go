package world

import (
	"fmt"
	"strings"
)

// HealingRate is the number of moves that heal one injury.
const HealingRate = 2

// Rand is the randomness the world needs for placement and scattering.
type Rand interface {
	Intn(n int) int
}

// Character is the state shared by the player and enemy soldiers.
type Character struct {
	Name        string
	Room        *Room
	Items       *ItemSet
	Injuries    int
	MaxInjuries int
	Weight      int
	MaxWeight   int

	movesToHeal int
}

// NewCharacter creates an uninjured character with empty pockets.
func NewCharacter(name string, room *Room, maxInjuries, maxWeight int) *Character {
	return &Character{
		Name:        name,
		Room:        room,
		Items:       NewItemSet(),
		MaxInjuries: maxInjuries,
		MaxWeight:   maxWeight,
	}
}

// Dead reports whether injuries exceed the ceiling. Reaching the ceiling
// exactly is survivable.
func (c *Character) Dead() bool {
	return c.Injuries > c.MaxInjuries
}

// Injure adds one injury.
func (c *Character) Injure() {
	c.Injuries++
}

// MoveTo puts the character in room r and advances healing. Every
// HealingRate moves made while injured remove one injury.
func (c *Character) MoveTo(r *Room) {
	c.Room = r
	if c.Injuries == 0 {
		return
	}
	c.movesToHeal++
	if c.movesToHeal >= HealingRate {
		c.Injuries--
		c.movesToHeal = 0
	}
}

// AddItem gives the character an item without a weight check. It is used
// while setting up the world.
func (c *Character) AddItem(it *Item) {
	if c.Items.Add(it) {
		c.Weight += it.Weight
	}
}

// Collect picks up a named item from the current room.
func (c *Character) Collect(name string) (*Item, error) {
	it := c.Room.Items.Get(name)
	if it == nil {
		return nil, ErrItemNotFound
	}
	if c.Weight+it.Weight > c.MaxWeight {
		return nil, ErrTooHeavy
	}
	c.Room.Items.Remove(name)
	c.AddItem(it)
	return it, nil
}

// Drop puts a carried item down in the current room.
func (c *Character) Drop(name string) (*Item, error) {
	it := c.Items.Remove(name)
	if it == nil {
		return nil, ErrItemNotFound
	}
	c.Weight -= it.Weight
	c.Room.Items.Add(it)
	return it, nil
}

// DropAll empties the character's pockets into the current room.
func (c *Character) DropAll() []*Item {
	items := c.Items.Clear()
	for _, it := range items {
		c.Room.Items.Add(it)
	}
	c.Weight = 0
	return items
}

// Scatter empties the character's pockets, sending each item to a random
// room drawn from rooms.
func (c *Character) Scatter(rooms []*Room, rnd Rand) {
	for _, it := range c.Items.Clear() {
		rooms[rnd.Intn(len(rooms))].Items.Add(it)
	}
	c.Weight = 0
}

// Weapon returns the first carried weapon that still has bullets, or nil.
func (c *Character) Weapon() *Item {
	for _, it := range c.Items.items {
		if it.Usable() {
			return it
		}
	}
	return nil
}

// CanAttack reports why the character cannot attack, or nil if it can.
func (c *Character) CanAttack() error {
	armed := false
	for _, it := range c.Items.items {
		if it.Kind != Weapon {
			continue
		}
		if it.Bullets > 0 {
			return nil
		}
		armed = true
	}
	if armed {
		return ErrNoBullets
	}
	return ErrNoWeapon
}

// Status is the "list player" report.
func (c *Character) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Injuries: %d/%d  Weight: %d/%d\n", c.Injuries, c.MaxInjuries, c.Weight, c.MaxWeight)
	if c.Items.Len() == 0 {
		b.WriteString("You are not carrying any items.")
		return b.String()
	}
	b.WriteString("Your inventory:")
	for _, it := range c.Items.items {
		b.WriteString("\n  ")
		b.WriteString(describeCarried(it))
	}
	return b.String()
}

func describeCarried(it *Item) string {
	if it.Kind == Weapon {
		return fmt.Sprintf("%s (weight %d, %d bullets)", it.Name, it.Weight, it.Bullets)
	}
	return fmt.Sprintf("%s (weight %d)", it.Name, it.Weight)
}
