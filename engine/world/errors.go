package world

import "errors"

// Movement, combat and inventory failures. None of them end the game; the
// engine turns each one into a message for the player.
var (
	ErrNoExit       = errors.New("there is no door")
	ErrDoorClosed   = errors.New("this door is closed")
	ErrNoWeapon     = errors.New("you do not have any weapons")
	ErrNoBullets    = errors.New("your weapons are out of bullets")
	ErrItemNotFound = errors.New("no such item")
	ErrTooHeavy     = errors.New("it weighs too much")
	ErrWrongTarget  = errors.New("it cannot be used on that")
	ErrWrongRoom    = errors.New("this key cannot be used in this room")
	ErrChestOpened  = errors.New("the chest is already open")
	ErrNotUsable    = errors.New("this item is not a weapon or is not usable right now")
)
