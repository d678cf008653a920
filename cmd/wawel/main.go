// Command wawel runs the Operation Wawel text adventure, or any world
// written in the same Lua or YAML format.
//
// Usage: wawel [--config file] [--world name|path] [--seed n] [--plain] [--script file] [--trace]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "wawel [world]",
	Short: "Operation Wawel, a turn-based text adventure",
	Long: `Sneak into Wawel castle, collect the stolen paintings and bring them
back outside while enemy soldiers roam the rooms. The optional argument
names a built-in world, a .lua or .yaml file, or a directory of Lua files.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wawel %s (commit %s, built %s)\n", version, commit, date)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML config file")
	f.String("world", "wawel", "built-in world name, .lua/.yaml file, or Lua directory")
	f.Int64("seed", 0, "random seed (0 picks one from the clock)")
	f.Bool("plain", false, "line-mode interface instead of the full-screen UI")
	f.String("script", "", "read commands from a file (implies --plain)")
	f.Bool("trace", false, "print engine events after each command")
	f.Int("width", 80, "wrap column for line-mode output")
	f.String("log-level", "warn", "log level: debug, info, warn, error")
	f.String("log-format", "console", "log format: json or console")
	f.String("log-output", "stderr", "log destination: stderr, stdout or a file path")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(worldsCmd)
}
