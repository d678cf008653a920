// Package config provides Viper-based configuration loading for the game binary.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// GameConfig selects the world and the random stream.
type GameConfig struct {
	// World is a built-in world name, a .lua/.yaml file, or a directory of Lua files.
	World string `mapstructure:"world"`
	// Seed fixes the random stream. Zero means derive one from the clock.
	Seed int64 `mapstructure:"seed"`
}

// UIConfig holds front-end settings.
type UIConfig struct {
	// Plain selects the line-mode interface instead of the full-screen TUI.
	Plain bool `mapstructure:"plain"`
	// Trace prints engine events after each command.
	Trace bool `mapstructure:"trace"`
	// Width is the wrap column for plain output.
	Width int `mapstructure:"width"`
	// Script is a file of commands fed to the plain interface.
	Script string `mapstructure:"script"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is "stderr", "stdout", or a file path.
	Output string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"world":      "game.world",
	"seed":       "game.seed",
	"plain":      "ui.plain",
	"trace":      "ui.trace",
	"width":      "ui.width",
	"script":     "ui.script",
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"log-output": "logging.output",
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if c.Game.Seed < 0 {
		errs = append(errs, fmt.Sprintf("game.seed must be >= 0, got %d", c.Game.Seed))
	}
	if c.UI.Width < 20 {
		errs = append(errs, fmt.Sprintf("ui.width must be >= 20, got %d", c.UI.Width))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

// Load builds the configuration from defaults, an optional YAML file,
// WAWEL_ environment variables and any flags that were set on the command
// line, in increasing order of precedence.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("WAWEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.world", "wawel")
	v.SetDefault("game.seed", 0)

	v.SetDefault("ui.plain", false)
	v.SetDefault("ui.trace", false)
	v.SetDefault("ui.width", 80)
	v.SetDefault("ui.script", "")

	// Play output goes to stdout; keep the log quiet on stderr by default.
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}
