package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/wawel/engine/combat"
	"github.com/nathoo/wawel/types"
)

// interaction starts an encounter if the player's room holds an enemy.
func (e *Engine) interaction(res *types.Result) {
	if e.Occupancy.Occupied(e.World.Player.Room) {
		e.interact(res)
	}
}

// interact resolves a collision between the player and the enemy in the
// player's room. A signed draw not divisible by five means a fight;
// otherwise the player is captured.
func (e *Engine) interact(res *types.Result) {
	p := e.World.Player
	enemy := e.World.EnemyIn(p.Room)
	res.Output = append(res.Output,
		"",
		fmt.Sprintf("You are %s.", p.Room.Description),
		"You have run across an enemy soldier!",
	)

	draw := e.RNG.Int32()
	if draw%5 != 0 && enemy != nil {
		e.fight = combat.New(&p.Character, enemy, e.World.Game.EnemyName)
		res.Output = append(res.Output,
			"You have been attacked! You have two choices: return fire or run away.",
			"Available commands:",
			"attack  go  back",
		)
		res.Events = append(res.Events, types.Event{
			Type: "fight_started",
			Data: map[string]any{"room": p.Room.ID},
		})
		e.Log.Info("fight started",
			zap.Int("turn", e.Turn),
			zap.String("room", p.Room.ID),
			zap.Int32("draw", draw),
		)
		return
	}

	e.capture(res)
}

// capture teleports the player to a random open room other than the first
// and scatters everything carried across the open rooms.
func (e *Engine) capture(res *types.Result) {
	p := e.World.Player
	open := e.World.OpenRooms
	from := p.Room
	dest := open[1+e.RNG.Intn(len(open)-1)]
	lost := p.Items.Len()

	p.Teleport(dest, open, e.RNG)

	res.Output = append(res.Output,
		"The soldier attacked you quietly from the back. You have been captured and moved to another room.",
		"All your items have been taken away from you and are now scattered around the building.",
	)
	res.Events = append(res.Events, types.Event{
		Type: "captured",
		Data: map[string]any{"from": from.ID, "to": dest.ID, "items": lost},
	})
	e.Log.Info("player captured",
		zap.Int("turn", e.Turn),
		zap.String("from", from.ID),
		zap.String("to", dest.ID),
		zap.Int("items_scattered", lost),
	)
}
