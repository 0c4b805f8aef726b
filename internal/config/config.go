// Package config loads the HCL settings file for pairs.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/fileutil"
	"github.com/lox/pairs/internal/game"
	"github.com/lox/pairs/internal/theme"
)

// Config represents the complete configuration file
type Config struct {
	Game GameSettings `hcl:"game,block"`
	Log  LogSettings  `hcl:"log,block"`
}

// GameSettings are the defaults a play session starts with
type GameSettings struct {
	VisualSet       string `hcl:"visual_set,optional"`
	Pairs           int    `hcl:"pairs,optional"`
	Locale          string `hcl:"locale,optional"`
	Theme           string `hcl:"theme,optional"`
	MatchDelayMS    int    `hcl:"match_delay_ms,optional"`
	MismatchDelayMS int    `hcl:"mismatch_delay_ms,optional"`
}

// LogSettings controls where the play session logs go
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			VisualSet:       deck.Animals.Name,
			Pairs:           8,
			Locale:          "en",
			Theme:           string(theme.Auto),
			MatchDelayMS:    int(game.DefaultMatchDelay / time.Millisecond),
			MismatchDelayMS: int(game.DefaultMismatchDelay / time.Millisecond),
		},
		Log: LogSettings{
			Level: "info",
			File:  "pairs.log",
		},
	}
}

// Load reads filename. A missing file yields the defaults; attributes left
// out of the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw struct {
		Game *GameSettings `hcl:"game,block"`
		Log  *LogSettings  `hcl:"log,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Game != nil {
		cfg.Game.merge(*raw.Game)
	}
	if raw.Log != nil {
		cfg.Log.merge(*raw.Log)
	}
	return cfg, nil
}

func (g *GameSettings) merge(o GameSettings) {
	if o.VisualSet != "" {
		g.VisualSet = o.VisualSet
	}
	if o.Pairs != 0 {
		g.Pairs = o.Pairs
	}
	if o.Locale != "" {
		g.Locale = o.Locale
	}
	if o.Theme != "" {
		g.Theme = o.Theme
	}
	if o.MatchDelayMS != 0 {
		g.MatchDelayMS = o.MatchDelayMS
	}
	if o.MismatchDelayMS != 0 {
		g.MismatchDelayMS = o.MismatchDelayMS
	}
}

func (l *LogSettings) merge(o LogSettings) {
	if o.Level != "" {
		l.Level = o.Level
	}
	if o.File != "" {
		l.File = o.File
	}
}

// Validate checks the settings can start a game
func (c *Config) Validate() error {
	set, err := deck.LookupSet(c.Game.VisualSet)
	if err != nil {
		return err
	}
	if c.Game.Pairs < 1 || c.Game.Pairs > set.Size() {
		return &deck.ConfigurationError{Set: set.Name, Pairs: c.Game.Pairs, Available: set.Size()}
	}
	if _, err := theme.ParseMode(c.Game.Theme); err != nil {
		return err
	}
	if c.Game.MatchDelayMS < 0 || c.Game.MismatchDelayMS < 0 {
		return fmt.Errorf("delays must not be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

// Settings returns the controller settings described by the file
func (c *Config) Settings() game.Settings {
	return game.Settings{
		VisualSet: c.Game.VisualSet,
		Pairs:     c.Game.Pairs,
		Locale:    c.Game.Locale,
	}
}

// MatchDelay returns how long a matched pair stays in the flipped window
func (c *Config) MatchDelay() time.Duration {
	return time.Duration(c.Game.MatchDelayMS) * time.Millisecond
}

// MismatchDelay returns how long a mismatched pair stays face-up
func (c *Config) MismatchDelay() time.Duration {
	return time.Duration(c.Game.MismatchDelayMS) * time.Millisecond
}

// Encode renders c as HCL
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return f.Bytes()
}

// Write stores c at filename, replacing it atomically.
func (c *Config) Write(filename string) error {
	return fileutil.WriteFileAtomic(filename, c.Encode(), 0o644)
}

// Create stores c at filename, failing with fileutil.ErrExists if the file
// is already there.
func (c *Config) Create(filename string) error {
	return fileutil.CreateFileAtomic(filename, c.Encode(), 0o644)
}
