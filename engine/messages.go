package engine

import (
	"errors"

	"github.com/nathoo/wawel/engine/combat"
	"github.com/nathoo/wawel/engine/world"
)

// message renders an error as the text shown to the player.
func message(err error) string {
	switch {
	case errors.Is(err, world.ErrNoExit):
		return "There is no door!"
	case errors.Is(err, world.ErrDoorClosed):
		return "This door is closed!"
	case errors.Is(err, world.ErrNoWeapon):
		return "You do not have any weapons!"
	case errors.Is(err, world.ErrNoBullets):
		return "Your weapons are out of bullets!"
	case errors.Is(err, world.ErrNotUsable):
		return "This item is not a weapon or is not useable right now."
	case errors.Is(err, world.ErrTooHeavy):
		return "You cannot collect this item! It weighs too much."
	case errors.Is(err, world.ErrChestOpened):
		return "You have already opened this chest!"
	case errors.Is(err, world.ErrWrongRoom):
		return "This key cannot be used in this room!"
	case errors.Is(err, world.ErrWrongTarget):
		return "You cannot use it on that."
	case errors.Is(err, combat.ErrNoTarget):
		return "Attack who?"
	case errors.Is(err, combat.ErrWrongEnemy):
		return "Incorrect enemy name! Try using: enemy."
	case errors.Is(err, combat.ErrNoWeaponName):
		return "You must specify the weapon."
	case errors.Is(err, ErrIllegalCommand):
		return "You cannot use this command now!"
	case errors.Is(err, ErrUnknownCommand):
		return "I don't know what you mean..."
	default:
		return err.Error()
	}
}
