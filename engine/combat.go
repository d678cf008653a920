package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/wawel/engine/combat"
	"github.com/nathoo/wawel/engine/world"
	"github.com/nathoo/wawel/types"
)

// combatVerbs are the commands allowed during combat.
var combatVerbs = map[string]bool{
	"attack": true,
	"go":     true,
	"back":   true,
}

// isCombatVerb returns true if the verb is allowed during combat.
func isCombatVerb(verb string) bool {
	return combatVerbs[verb]
}

// openRound starts a fight round: the enemy shoots first.
func (e *Engine) openRound(res *types.Result) {
	f := e.fight
	p := e.World.Player
	if w := f.EnemyTurn(); w != nil {
		res.Output = append(res.Output,
			"",
			"You have been hit!",
			fmt.Sprintf("Number of injuries: %d/%d", p.Injuries, p.MaxInjuries),
		)
		res.Events = append(res.Events, types.Event{
			Type: "player_hit",
			Data: map[string]any{"weapon": w.Name, "injuries": p.Injuries},
		})
		e.Log.Debug("enemy fired",
			zap.Int("turn", e.Turn),
			zap.Int("round", f.Round),
			zap.String("weapon", w.Name),
			zap.Int("bullets_left", w.Bullets),
			zap.Int("player_injuries", p.Injuries),
		)
	}
	if f.State() == combat.PlayerDead {
		res.Output = append(res.Output, "The enemy killed you! You lost!")
		e.fight = nil
		e.end(OutcomeLost, res)
	}
}

// fightCommand handles the player's single action in a round. Anything
// but attack, go or back is rejected and still costs the round.
func (e *Engine) fightCommand(intent types.Intent, res *types.Result) {
	if !isCombatVerb(intent.Verb) {
		if knownVerbs[intent.Verb] {
			res.Output = append(res.Output, message(ErrIllegalCommand))
		} else {
			res.Output = append(res.Output, message(ErrUnknownCommand))
		}
		return
	}

	p := e.World.Player
	f := e.fight

	switch intent.Verb {
	case "attack":
		if err := f.Attack(intent.Object, intent.Target); err != nil {
			res.Output = append(res.Output, message(err))
			return
		}
		res.Output = append(res.Output,
			"You have attacked the enemy.",
			fmt.Sprintf("Number of enemy's injuries: %d/%d", f.Enemy.Injuries, f.Enemy.MaxInjuries),
		)
		if f.State() == combat.EnemyDefeated {
			e.defeat(res)
		}

	case "go":
		if intent.Object == "" {
			res.Output = append(res.Output, "Go where?")
			return
		}
		if err := p.Go(world.Direction(intent.Object)); err != nil {
			res.Output = append(res.Output, message(err))
			return
		}
		e.disengage(res)

	case "back":
		p.Back()
		e.disengage(res)
	}
}

// disengage ends the fight because the player left, then checks the new
// room at once so one fight can chain into another.
func (e *Engine) disengage(res *types.Result) {
	f := e.fight
	f.Disengage()
	e.fight = nil
	res.Events = append(res.Events, types.Event{
		Type: "fight_left",
		Data: map[string]any{"room": e.World.Player.Room.ID, "round": f.Round},
	})
	e.Log.Info("player ran away",
		zap.Int("turn", e.Turn),
		zap.Int("round", f.Round),
		zap.String("room", e.World.Player.Room.ID),
	)
	e.interaction(res)
}

// defeat removes a dead enemy: its items fall where it stood and it leaves
// both the occupancy set and the roster.
func (e *Engine) defeat(res *types.Result) {
	enemy := e.fight.Enemy
	room := enemy.Room
	dropped := enemy.DropAll()
	e.Occupancy.Remove(room)
	e.World.RemoveEnemy(enemy)
	e.fight = nil

	res.Output = append(res.Output,
		"You eliminated the enemy soldier!",
		fmt.Sprintf("Enemies left: %d", len(e.World.Enemies)),
	)
	names := make([]string, len(dropped))
	for i, it := range dropped {
		names[i] = it.Name
	}
	res.Events = append(res.Events, types.Event{
		Type: "enemy_defeated",
		Data: map[string]any{"room": room.ID, "dropped": names},
	})
	e.Log.Info("enemy defeated",
		zap.Int("turn", e.Turn),
		zap.String("room", room.ID),
		zap.Strings("dropped", names),
		zap.Int("enemies_left", len(e.World.Enemies)),
	)
}
