package engine

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nathoo/wawel/engine/world"
	"github.com/nathoo/wawel/types"
)

// commandWords is the exploration vocabulary in help order.
var commandWords = []string{
	"go", "back", "look", "list", "collect", "drop", "open", "use", "attack", "help", "quit",
}

var knownVerbs = func() map[string]bool {
	m := make(map[string]bool, len(commandWords))
	for _, w := range commandWords {
		m[w] = true
	}
	return m
}()

// exploreCommand handles one command outside combat. Every command, even
// a rejected one, costs the player a turn.
func (e *Engine) exploreCommand(intent types.Intent, res *types.Result) {
	switch intent.Verb {
	case "help":
		e.help(res)
	case "go":
		e.goCommand(intent.Object, res)
	case "back":
		e.World.Player.Back()
		e.interaction(res)
	case "look":
		room := e.World.Player.Room
		res.Output = append(res.Output, room.LongDescription(), room.ItemString())
	case "list":
		e.list(intent.Object, res)
	case "collect":
		e.collect(intent.Object, res)
	case "drop":
		e.drop(intent.Object, res)
	case "open":
		e.open(intent.Object, res)
	case "use":
		e.use(intent.Object, res)
	case "quit":
		if intent.Object != "" {
			res.Output = append(res.Output, "Quit what?")
			return
		}
		e.end(OutcomeQuit, res)
	case "attack":
		res.Output = append(res.Output, message(ErrIllegalCommand))
	default:
		res.Output = append(res.Output, message(ErrUnknownCommand))
	}
}

func (e *Engine) goCommand(dir string, res *types.Result) {
	if dir == "" {
		res.Output = append(res.Output, "Go where?")
		return
	}
	p := e.World.Player
	from := p.Room
	if err := p.Go(world.Direction(dir)); err != nil {
		res.Output = append(res.Output, message(err))
		return
	}
	res.Events = append(res.Events, types.Event{
		Type: "player_moved",
		Data: map[string]any{"from": from.ID, "to": p.Room.ID},
	})
	e.interaction(res)
}

func (e *Engine) list(what string, res *types.Result) {
	switch what {
	case "":
		res.Output = append(res.Output, "What items do you want to list? Available: ", "player  room")
	case "player":
		res.Output = append(res.Output, e.World.Player.Status())
	case "room":
		res.Output = append(res.Output, e.World.Player.Room.ItemString())
	default:
		res.Output = append(res.Output, "The command's operand is incorrect.")
	}
}

func (e *Engine) collect(name string, res *types.Result) {
	if name == "" {
		res.Output = append(res.Output, "Collect what? You must specify the item!")
		return
	}
	_, err := e.World.Player.Collect(name)
	switch {
	case err == nil:
		res.Output = append(res.Output, fmt.Sprintf("You have collected %s.", name))
		res.Events = append(res.Events, types.Event{
			Type: "item_collected",
			Data: map[string]any{"item": name},
		})
	case errors.Is(err, world.ErrItemNotFound):
		res.Output = append(res.Output, "There is no such item in this room!")
	default:
		res.Output = append(res.Output, message(err))
	}
}

func (e *Engine) drop(name string, res *types.Result) {
	if name == "" {
		res.Output = append(res.Output, "Drop what? You must specify the item!")
		return
	}
	if _, err := e.World.Player.Drop(name); err != nil {
		res.Output = append(res.Output, "You do not have such an item!")
		return
	}
	res.Output = append(res.Output, fmt.Sprintf("You have dropped %s.", name))
	res.Events = append(res.Events, types.Event{
		Type: "item_dropped",
		Data: map[string]any{"item": name},
	})
}

// open spills a chest lying in the current room.
func (e *Engine) open(name string, res *types.Result) {
	if name == "" {
		res.Output = append(res.Output, "Open what?")
		return
	}
	room := e.World.Player.Room
	chest := room.Items.Get(name)
	switch {
	case chest == nil:
		res.Output = append(res.Output, "There is no such item in this room!")
		return
	case chest.Kind != world.Chest:
		res.Output = append(res.Output, "This item is not a chest.")
		return
	}
	if err := chest.Use(world.RoomTarget(room)); err != nil {
		res.Output = append(res.Output, message(err))
		return
	}
	res.Output = append(res.Output, "The chest is now open.", room.ItemString())
	res.Events = append(res.Events, types.Event{
		Type: "chest_opened",
		Data: map[string]any{"item": name, "room": room.ID},
	})
}

// use applies a carried key to the current room. Rooms behind the doors
// it opens become open rooms.
func (e *Engine) use(name string, res *types.Result) {
	if name == "" {
		res.Output = append(res.Output, "Use what?")
		return
	}
	p := e.World.Player
	key := p.Items.Get(name)
	switch {
	case key == nil:
		res.Output = append(res.Output, "You do not have such an item in your inventory!")
		return
	case key.Kind != world.Key:
		res.Output = append(res.Output, "This item is not a key.")
		return
	}

	behind := p.Room.ClosedNeighbours()
	if err := key.Use(world.RoomTarget(p.Room)); err != nil {
		res.Output = append(res.Output, message(err))
		return
	}
	var added []string
	for _, r := range behind {
		if e.World.AddOpenRoom(r) {
			added = append(added, r.ID)
		}
	}
	res.Output = append(res.Output, "You have opened all the exits in the room.")
	res.Events = append(res.Events, types.Event{
		Type: "doors_opened",
		Data: map[string]any{"room": p.Room.ID, "opened": added},
	})
	e.Log.Info("doors unlocked",
		zap.Int("turn", e.Turn),
		zap.String("room", p.Room.ID),
		zap.Strings("new_open_rooms", added),
	)
}

func (e *Engine) help(res *types.Result) {
	g := e.World.Game
	if g.Help != "" {
		res.Output = append(res.Output, strings.Split(strings.TrimSpace(g.Help), "\n")...)
	}
	p := e.World.Player
	res.Output = append(res.Output,
		"Items to bring out: "+strings.Join(e.World.Artwork, "  "),
		"",
		fmt.Sprintf("Number of enemies: %d", len(e.World.Enemies)),
		fmt.Sprintf("Number of injuries: %d/%d", p.Injuries, p.MaxInjuries),
		"",
		"Your command words are:",
		strings.Join(commandWords, "  "),
	)
}
