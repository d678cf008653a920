package engine

import (
	"go.uber.org/zap"

	"github.com/nathoo/wawel/engine/world"
	"github.com/nathoo/wawel/types"
)

// RunTurn is one movement phase: every enemy tries one random step, then
// the player's room is checked. It returns true when an encounter took
// the turn, in which case no exploration command should be read.
func (e *Engine) RunTurn(res *types.Result) bool {
	e.Turn++
	e.moveEnemies(res)
	if !e.Occupancy.Occupied(e.World.Player.Room) {
		return false
	}
	e.interact(res)
	return true
}

// moveEnemies gives each live enemy, in roster order, one move attempt in
// a uniformly drawn direction. Blocked or occupied destinations are a
// silent no-op.
func (e *Engine) moveEnemies(res *types.Result) {
	for i, enemy := range e.World.Enemies {
		d := world.Directions[e.RNG.Intn(len(world.Directions))]
		dest, move := world.TryMove(enemy, d)
		if move != world.MovePossible || e.Occupancy.Occupied(dest) {
			continue
		}
		from := enemy.Room
		e.Occupancy.Relocate(enemy, dest)
		res.Events = append(res.Events, types.Event{
			Type: "enemy_moved",
			Data: map[string]any{"enemy": i, "from": from.ID, "to": dest.ID},
		})
		e.Log.Debug("enemy moved",
			zap.Int("turn", e.Turn),
			zap.Int("enemy", i),
			zap.String("from", from.ID),
			zap.String("to", dest.ID),
		)
	}
}

// advance runs outer turns until the player must type something: either
// a fight round is open or the room is quiet and a command is due.
func (e *Engine) advance(res *types.Result) {
	for !e.Over() {
		if e.fight != nil {
			e.openRound(res)
			return
		}
		if !e.RunTurn(res) {
			res.Output = append(res.Output, "", e.World.Player.Room.LongDescription())
			return
		}
		if e.fight == nil {
			e.checkWin(res)
		}
	}
}
