// Package combat implements a fight between the player and one enemy
// soldier. A fight is a sequence of rounds: the enemy fires first, then
// the player gets exactly one action.
package combat

import (
	"errors"

	"github.com/nathoo/wawel/engine/world"
)

// State is where a fight stands after the last action.
type State int

const (
	Ongoing State = iota
	PlayerDead
	EnemyDefeated
	Disengaged
)

func (s State) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case PlayerDead:
		return "player_dead"
	case EnemyDefeated:
		return "enemy_defeated"
	case Disengaged:
		return "disengaged"
	default:
		return "unknown"
	}
}

// Attack command failures.
var (
	ErrNoTarget     = errors.New("attack who?")
	ErrWrongEnemy   = errors.New("incorrect enemy name")
	ErrNoWeaponName = errors.New("you must specify the weapon")
)

// ErrFightOver is returned by Attack once the fight has reached a final
// state. The engine drops a Fight as soon as it ends, so only callers that
// keep a Fight around see it.
var ErrFightOver = errors.New("the fight is over")

// Fight is one encounter. Names are the words the enemy answers to.
type Fight struct {
	Player *world.Character
	Enemy  *world.Character
	Names  []string
	Round  int

	state State
}

// New starts a fight. "enemy" is always accepted as a target name.
func New(player, enemy *world.Character, names ...string) *Fight {
	return &Fight{
		Player: player,
		Enemy:  enemy,
		Names:  append([]string{"enemy"}, names...),
	}
}

// State returns the current fight state.
func (f *Fight) State() State {
	return f.state
}

// Over reports whether the fight reached a terminal state.
func (f *Fight) Over() bool {
	return f.state != Ongoing
}

// EnemyTurn opens a new round. The enemy fires its first loaded weapon, if
// it has one, and the fight ends if that kills the player. It returns the
// weapon fired, or nil.
func (f *Fight) EnemyTurn() *world.Item {
	if f.Over() {
		return nil
	}
	f.Round++
	w := f.Enemy.Weapon()
	if w == nil {
		return nil
	}
	if err := w.Use(world.CharacterTarget(f.Player)); err != nil {
		return nil
	}
	if f.Player.Dead() {
		f.state = PlayerDead
	}
	return w
}

// Attack is the player's "attack <target> <weapon>" action. The player's
// ability to attack at all is checked before the arguments.
func (f *Fight) Attack(target, weapon string) error {
	if f.Over() {
		return ErrFightOver
	}
	if err := f.Player.CanAttack(); err != nil {
		return err
	}
	if target == "" {
		return ErrNoTarget
	}
	if !f.answersTo(target) {
		return ErrWrongEnemy
	}
	if weapon == "" {
		return ErrNoWeaponName
	}
	w := f.Player.Items.Get(weapon)
	if !w.Usable() {
		return world.ErrNotUsable
	}
	if err := w.Use(world.CharacterTarget(f.Enemy)); err != nil {
		return err
	}
	if f.Enemy.Dead() {
		f.state = EnemyDefeated
	}
	return nil
}

// Disengage ends the fight because the player left the room.
func (f *Fight) Disengage() {
	if !f.Over() {
		f.state = Disengaged
	}
}

func (f *Fight) answersTo(name string) bool {
	for _, n := range f.Names {
		if n != "" && n == name {
			return true
		}
	}
	return false
}
