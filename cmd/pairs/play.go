package main

import (
	"fmt"

	"github.com/lox/pairs/cmd/pairs/shared"
	"github.com/lox/pairs/internal/config"
	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/game"
	"github.com/lox/pairs/internal/randutil"
	"github.com/lox/pairs/internal/theme"
	"github.com/lox/pairs/internal/tui"
)

// PlayCmd starts an interactive session
type PlayCmd struct {
	Config     string `kong:"default='pairs.hcl',help='Configuration file',type='path'"`
	Pairs      int    `kong:"help='Number of pairs (overrides difficulty)'"`
	Difficulty string `kong:"help='Difficulty: easy, medium or hard'"`
	Set        string `kong:"help='Visual set: animals or glyphs'"`
	Locale     string `kong:"help='Language: en, es, fr or de'"`
	Theme      string `kong:"help='Display mode: auto, light or dark'"`
	Seed       *int64 `kong:"help='Deterministic deck seed (optional)'"`
	LogFile    string `kong:"help='Log file (defaults to the config value)'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := c.override(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := shared.OpenLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := shared.SetupLogger(logFile, cfg.Log.Level, c.Debug)
	if err != nil {
		return err
	}
	logger = logger.WithPrefix("pairs")

	opts := game.Options{
		Settings:      cfg.Settings(),
		MatchDelay:    cfg.MatchDelay(),
		MismatchDelay: cfg.MismatchDelay(),
		Logger:        logger,
	}
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		opts.Rand = randutil.New(*c.Seed)
	}

	ctrl, err := game.NewController(opts)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	mode, err := theme.ParseMode(cfg.Game.Theme)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	logger.Info("Starting session", "settings", cfg.Settings(), "theme", mode)
	if err := tui.Run(ctx, tui.New(ctrl, mode, logger)); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("Session ended", "round", ctrl.RoundID(), "moves", ctrl.Snapshot().Moves())
	return nil
}

// override applies command-line flags on top of the file values.
func (c *PlayCmd) override(cfg *config.Config) error {
	if c.Difficulty != "" {
		d, err := deck.ParseDifficulty(c.Difficulty)
		if err != nil {
			return err
		}
		cfg.Game.Pairs = d.Pairs
	}
	if c.Pairs != 0 {
		cfg.Game.Pairs = c.Pairs
	}
	if c.Set != "" {
		cfg.Game.VisualSet = c.Set
	}
	if c.Locale != "" {
		cfg.Game.Locale = c.Locale
	}
	if c.Theme != "" {
		cfg.Game.Theme = c.Theme
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	return nil
}
