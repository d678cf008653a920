// Package engine provides the turn engine: enemies roam, collisions with
// the player turn into fights or captures, and every step ends with a
// win/loss check. Step() is the single entry point the UIs drive.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nathoo/wawel/engine/combat"
	"github.com/nathoo/wawel/engine/occupancy"
	"github.com/nathoo/wawel/engine/parser"
	"github.com/nathoo/wawel/engine/world"
	"github.com/nathoo/wawel/types"
)

// Parser and turn-machine failures.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrIllegalCommand = errors.New("command not allowed now")
)

// Outcome is how a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "playing"
	}
}

// Engine owns the world, the occupancy set and the fight in progress.
type Engine struct {
	World     *world.World
	Occupancy *occupancy.Tracker
	RNG       Rand
	Log       *zap.Logger

	// Turn counts outer turns, one per enemy movement phase.
	Turn int

	fight   *combat.Fight
	outcome Outcome
}

// New creates an engine for a built world. A nil logger discards logs.
func New(w *world.World, rng Rand, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		World:     w,
		Occupancy: occupancy.New(w.Enemies),
		RNG:       rng,
		Log:       logger,
	}
}

// Start prints the welcome text and runs turns until the player is asked
// for the first command.
func (e *Engine) Start() types.Result {
	var res types.Result
	e.Log.Info("game started",
		zap.String("start", e.World.Start.ID),
		zap.Int("enemies", len(e.World.Enemies)),
		zap.Strings("artwork", e.World.Artwork),
	)
	res.Output = append(res.Output, e.welcome()...)
	e.advance(&res)
	res.Over = e.Over()
	return res
}

// Step processes one player command and runs turns until the next
// command is needed or the game ends.
func (e *Engine) Step(input string) types.Result {
	var res types.Result

	if e.Over() {
		res.Output = append(res.Output, "The game is over.")
		res.Over = true
		return res
	}

	// A blank line during a fight still costs the round.
	intent := parser.Parse(input)
	if intent.Verb == "" && e.fight == nil {
		res.Output = append(res.Output, "What do you want to do?")
		return res
	}

	e.Log.Debug("command",
		zap.Int("turn", e.Turn),
		zap.String("verb", intent.Verb),
		zap.String("object", intent.Object),
		zap.String("target", intent.Target),
		zap.Bool("combat", e.InCombat()),
	)

	if !e.ProcessCommand(intent, &res) && e.fight == nil {
		e.checkWin(&res)
	}
	e.advance(&res)

	res.Over = e.Over()
	return res
}

// ProcessCommand runs one command. While a fight is pending only the
// combat vocabulary applies. It reports whether the game is over.
func (e *Engine) ProcessCommand(intent types.Intent, res *types.Result) bool {
	if e.fight != nil {
		e.fightCommand(intent, res)
	} else {
		e.exploreCommand(intent, res)
	}
	return e.Over()
}

// CheckWin reports whether the player stands in the start room holding
// every artwork item.
func (e *Engine) CheckWin() bool {
	p := e.World.Player
	if p.Room != e.World.Start {
		return false
	}
	for _, name := range e.World.Artwork {
		if !p.Items.Has(name) {
			return false
		}
	}
	return true
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.outcome != OutcomeNone
}

// Outcome returns how the game ended, or OutcomeNone while it runs.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// InCombat reports whether a fight is waiting for the player's action.
func (e *Engine) InCombat() bool {
	return e.fight != nil
}

// Fight returns the fight in progress, or nil.
func (e *Engine) Fight() *combat.Fight {
	return e.fight
}

func (e *Engine) checkWin(res *types.Result) bool {
	if !e.CheckWin() {
		return false
	}
	res.Output = append(res.Output, "You win!")
	e.end(OutcomeWon, res)
	return true
}

func (e *Engine) end(o Outcome, res *types.Result) {
	e.outcome = o
	res.Events = append(res.Events, types.Event{
		Type: "game_over",
		Data: map[string]any{"outcome": o.String(), "turn": e.Turn},
	})
	e.Log.Info("game over",
		zap.Stringer("outcome", o),
		zap.Int("turn", e.Turn),
		zap.Int("injuries", e.World.Player.Injuries),
		zap.Int("enemies_left", len(e.World.Enemies)),
	)
}

func (e *Engine) welcome() []string {
	g := e.World.Game
	var out []string
	if g.Title != "" {
		out = append(out, fmt.Sprintf("Welcome to the %q game!", g.Title))
	}
	if g.Intro != "" {
		out = append(out, strings.Split(strings.TrimSpace(g.Intro), "\n")...)
	}
	out = append(out,
		"",
		fmt.Sprintf("Number of items you have to collect to win: %d", len(e.World.Artwork)),
		fmt.Sprintf("Number of enemies in the game: %d", len(e.World.Enemies)),
		fmt.Sprintf("Maximum number of injuries: %d", e.World.Player.MaxInjuries),
		"",
		"Type 'help' if you need help.",
	)
	return out
}
