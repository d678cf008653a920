package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathoo/wawel/engine"
	"github.com/nathoo/wawel/engine/world"
	"github.com/nathoo/wawel/types"
)

// testDefs returns a two-room world with no enemies, so every run is
// deterministic.
func testDefs() *types.Defs {
	return &types.Defs{
		Game: types.GameDef{
			Title:             "Test Game",
			Intro:             "Welcome to the test.",
			Start:             "hall",
			EnemyName:         "soldier",
			EnemyMaxInjuries:  1,
			PlayerMaxInjuries: 6,
			MaxWeight:         45,
			Artwork:           []string{"vase"},
		},
		Rooms: []types.RoomDef{
			{ID: "hall", Description: "in a grand hall", Open: true, Exits: map[string]types.ExitDef{"north": {To: "garden"}}},
			{ID: "garden", Description: "in a peaceful garden", Open: true, Exits: map[string]types.ExitDef{"south": {To: "hall"}}},
		},
		Items: []types.ItemDef{
			{ID: "vase", Kind: types.KindItem, Weight: 4, Place: types.Placement{Kind: types.PlaceRoom, Target: "garden"}},
		},
	}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	rng := engine.NewRNG(1)
	w, err := world.Build(testDefs(), rng)
	if err != nil {
		t.Fatalf("building world: %v", err)
	}
	var out bytes.Buffer
	c := &CLI{
		Engine: engine.New(w, rng, nil),
		In:     strings.NewReader(input),
		Out:    &out,
		Width:  DefaultWidth,
	}
	return c, &out
}

func TestCLI_IntroAndStartingRoom(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Welcome to the test.") {
		t.Error("expected intro text in output")
	}
	if !strings.Contains(output, "You are in a grand hall.") {
		t.Error("expected starting room description in output")
	}
	if !strings.Contains(output, "[Goodbye.]") {
		t.Error("expected goodbye on /quit")
	}
}

func TestCLI_PlayToWin(t *testing.T) {
	c, out := newTestCLI(t, "north\ncollect vase\nsouth\nlook\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "You have collected vase.") {
		t.Errorf("expected collect message, got:\n%s", output)
	}
	if !strings.Contains(output, "You win!") {
		t.Errorf("expected win, got:\n%s", output)
	}
	if c.Engine.Outcome() != engine.OutcomeWon {
		t.Errorf("Outcome = %v, want won", c.Engine.Outcome())
	}
	// The loop stops at the win; "look" is never read.
	if strings.Count(output, "> ") != 3 {
		t.Errorf("expected 3 prompts, got %d", strings.Count(output, "> "))
	}
}

func TestCLI_Again(t *testing.T) {
	c, out := newTestCLI(t, "g\nnorth\nsouth\nnorth\nagain\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Nothing to repeat.") {
		t.Error("expected 'Nothing to repeat.' before any command")
	}
	if c.Engine.World.Player.Room.ID != "garden" {
		t.Errorf("player in %s, want garden", c.Engine.World.Player.Room.ID)
	}
	if !strings.Contains(output, "There is no door!") {
		t.Error("repeated north from the garden should hit a wall")
	}
}

func TestCLI_CommentsAndEcho(t *testing.T) {
	c, out := newTestCLI(t, "# a comment\nlook\n/quit\n")
	c.EchoInput = true
	c.Run()

	output := out.String()
	if strings.Contains(output, "a comment") {
		t.Error("comment lines should be skipped")
	}
	if !strings.Contains(output, "> look\n") {
		t.Errorf("expected echoed input, got:\n%s", output)
	}
}

func TestCLI_MetaCommands(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/state\n/trace\nnorth\n/trace\n/bogus\n/quit\n")
	c.Run()

	output := out.String()
	for _, want := range []string{
		"/state  Debug",
		"[Location: hall]",
		"[Track: [hall]]",
		"[Seed: 1",
		"[Trace output enabled.]",
		"[[trace]   player_moved",
		"[Trace output disabled.]",
		"[Unknown command: /bogus.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestCLI_QuitCommand(t *testing.T) {
	c, out := newTestCLI(t, "quit\nlook\n")
	c.Run()

	if c.Engine.Outcome() != engine.OutcomeQuit {
		t.Errorf("Outcome = %v, want quit", c.Engine.Outcome())
	}
	if strings.Count(out.String(), "> ") != 1 {
		t.Error("loop should stop after quit")
	}
}

func TestCLI_Wraps(t *testing.T) {
	c, out := newTestCLI(t, "")
	c.Width = 20
	c.printLine("the quick brown fox jumps over the lazy dog")

	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}
