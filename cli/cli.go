// Package cli provides the line-mode interface: a prompt loop over any
// reader, wrapped output, and a few slash meta-commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/wawel/engine"
	"github.com/nathoo/wawel/types"
)

// DefaultWidth is the wrap column when none is configured.
const DefaultWidth = 80

// CLI handles line-oriented interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Width     int
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine on stdin/stdout.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
		Width:  DefaultWidth,
	}
}

// Run shows the welcome text, then loops: prompt, input, step, output.
// It returns when the game ends, the input runs out, or the player types
// /quit.
func (c *CLI) Run() {
	c.printResult(c.Engine.Start())
	if c.Engine.Over() {
		return
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else if input != "" {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if c.Trace {
			c.printTrace(result)
		}
		if result.Over {
			return
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the session should end.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit   Exit the game",
		"  /help   Show this help",
		"  /state  Debug: dump the current state",
		"  /trace  Toggle event trace output",
		"",
		"Type 'help' for the game commands. 'again' (g) repeats the last one.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	w := c.Engine.World
	p := w.Player

	c.printSystem(fmt.Sprintf("Turn: %d", c.Engine.Turn))
	c.printSystem(fmt.Sprintf("Location: %s", p.Room.ID))
	c.printSystem(fmt.Sprintf("Injuries: %d/%d  Weight: %d/%d", p.Injuries, p.MaxInjuries, p.Weight, p.MaxWeight))
	c.printSystem(fmt.Sprintf("Inventory: %v", p.Items.Names()))

	var track []string
	for _, r := range p.Track() {
		track = append(track, r.ID)
	}
	c.printSystem(fmt.Sprintf("Track: %v", track))

	enemies := make([]string, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		enemies = append(enemies, fmt.Sprintf("%s@%s(%d/%d)", e.Name, e.Room.ID, e.Injuries, e.MaxInjuries))
	}
	sort.Strings(enemies)
	c.printSystem(fmt.Sprintf("Enemies: %v", enemies))
	c.printSystem(fmt.Sprintf("Occupied: %v", c.Engine.Occupancy.Rooms()))

	if f := c.Engine.Fight(); f != nil {
		c.printSystem(fmt.Sprintf("Fight: round %d, %s", f.Round, f.State()))
	}
	if r, ok := c.Engine.RNG.(*engine.RNG); ok {
		c.printSystem(fmt.Sprintf("Seed: %d  RNG position: %d", r.Seed(), r.Position()))
	}
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	width := c.Width
	if width <= 0 {
		width = DefaultWidth
	}
	fmt.Fprintln(c.Out, wordwrap.String(text, width))
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
