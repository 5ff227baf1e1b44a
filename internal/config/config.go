// Package config loads game settings from an HCL file.
//
// A config file is optional. Every block and attribute may be omitted and
// falls back to DefaultConfig:
//
//	game {
//	  players = 4
//	}
//
//	log {
//	  level = "warn"
//	  file  = "jeopardy.log"
//	}
//
//	ui {
//	  no_color = false
//	}
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "jeopardy.hcl"

// MaxPlayers bounds the roster size.
const MaxPlayers = 16

// Config represents the complete game configuration
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	Log  *LogSettings  `hcl:"log,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings contains game rules
type GameSettings struct {
	Players int `hcl:"players,optional"`
}

// LogSettings contains logging settings. An empty file logs to stderr.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// UISettings contains terminal output settings
type UISettings struct {
	NoColor bool `hcl:"no_color,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			Players: 4,
		},
		Log: &LogSettings{
			Level: "warn",
		},
		UI: &UISettings{},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for anything missing.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Game == nil {
		config.Game = defaults.Game
	}
	if config.Game.Players == 0 {
		config.Game.Players = defaults.Game.Players
	}

	if config.Log == nil {
		config.Log = defaults.Log
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	if config.UI == nil {
		config.UI = defaults.UI
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Players < 1 || c.Game.Players > MaxPlayers {
		return fmt.Errorf("players must be between 1 and %d, got %d", MaxPlayers, c.Game.Players)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}

// LogLevel returns the parsed log level. Call Validate first.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
