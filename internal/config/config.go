// Package config loads the game's HCL configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/rockpaperscissors/internal/game"
)

const (
	DefaultMode        = "computer"
	DefaultRevealDelay = "1s"
	DefaultLogLevel    = "info"
	DefaultLogFile     = "rps.log"
)

// Config represents the complete configuration file
type Config struct {
	Game    *GameSettings    `hcl:"game,block"`
	Log     *LogSettings     `hcl:"log,block"`
	Display *DisplaySettings `hcl:"display,block"`
}

// GameSettings configures round behaviour
type GameSettings struct {
	Mode        string `hcl:"mode,optional"`
	RevealDelay string `hcl:"reveal_delay,optional"`
	Seed        int64  `hcl:"seed,optional"`
}

// LogSettings configures the debug log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DisplaySettings configures terminal rendering
type DisplaySettings struct {
	Color *bool `hcl:"color,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file is not an error
// and yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Display == nil {
		c.Display = &DisplaySettings{}
	}

	if c.Game.Mode == "" {
		c.Game.Mode = DefaultMode
	}
	if c.Game.RevealDelay == "" {
		c.Game.RevealDelay = DefaultRevealDelay
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
	if c.Display.Color == nil {
		color := true
		c.Display.Color = &color
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := game.ParseMode(c.Game.Mode); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	delay, err := time.ParseDuration(c.Game.RevealDelay)
	if err != nil {
		return fmt.Errorf("game: invalid reveal_delay %q: %w", c.Game.RevealDelay, err)
	}
	if delay <= 0 {
		return fmt.Errorf("game: reveal_delay must be positive, got %s", delay)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: invalid level %q: %w", c.Log.Level, err)
	}

	return nil
}

// Mode returns the configured opponent mode. Call Validate first.
func (c *Config) Mode() game.Mode {
	mode, _ := game.ParseMode(c.Game.Mode)
	return mode
}

// RevealDelay returns the configured reveal delay. Call Validate first.
func (c *Config) RevealDelay() time.Duration {
	delay, _ := time.ParseDuration(c.Game.RevealDelay)
	return delay
}

// LogLevel returns the configured log level. Call Validate first.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

// ColorEnabled reports whether coloured output is enabled
func (c *Config) ColorEnabled() bool {
	return c.Display.Color == nil || *c.Display.Color
}
