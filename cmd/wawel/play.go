package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nathoo/wawel/cli"
	"github.com/nathoo/wawel/config"
	"github.com/nathoo/wawel/engine"
	"github.com/nathoo/wawel/engine/world"
	"github.com/nathoo/wawel/loader"
	"github.com/nathoo/wawel/observability"
	"github.com/nathoo/wawel/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Game.World = args[0]
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger = logger.With(
		zap.String("game_id", uuid.NewString()),
		zap.Int64("seed", seed),
		zap.String("world", cfg.Game.World),
	)

	eng, err := newGame(cfg.Game.World, seed, logger)
	if err != nil {
		return err
	}

	// Script mode: open file, force plain, echo commands.
	if cfg.UI.Script != "" {
		f, err := os.Open(cfg.UI.Script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := newCLI(eng, cfg.UI)
		c.In = f
		c.EchoInput = true
		c.Run()
		return nil
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if cfg.UI.Plain || !isTerminal() {
		newCLI(eng, cfg.UI).Run()
		return nil
	}

	return tui.Run(eng, cfg.UI.Trace)
}

// newGame loads world content, builds the world from the seeded stream and
// wires the engine to the same stream.
func newGame(worldPath string, seed int64, logger *zap.Logger) (*engine.Engine, error) {
	defs, err := loader.Load(worldPath)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	rng := engine.NewRNG(seed)
	w, err := world.Build(defs, rng)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	logger.Debug("world built",
		zap.String("title", defs.Game.Title),
		zap.Int("rooms", len(w.Rooms)),
		zap.Int("open_rooms", len(w.OpenRooms)),
		zap.Int64("rng_position", rng.Position()),
	)
	return engine.New(w, rng, logger), nil
}

func newCLI(eng *engine.Engine, ui config.UIConfig) *cli.CLI {
	c := cli.New(eng)
	c.Trace = ui.Trace
	c.Width = ui.Width
	return c
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
