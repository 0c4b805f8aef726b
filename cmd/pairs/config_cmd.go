package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/pairs/internal/config"
	"github.com/lox/pairs/internal/fileutil"
)

// ConfigCmd groups the configuration file commands
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a default configuration file"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
}

type ConfigInitCmd struct {
	File  string `arg:"" default:"pairs.hcl" help:"Configuration file to write" type:"path"`
	Force bool   `help:"Overwrite an existing file"`
}

func (c *ConfigInitCmd) Run() error {
	cfg := config.Default()
	if c.Force {
		if err := cfg.Write(c.File); err != nil {
			return err
		}
	} else if err := cfg.Create(c.File); err != nil {
		if errors.Is(err, fileutil.ErrExists) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", c.File)
		}
		return err
	}
	fmt.Printf("Wrote %s\n", c.File)
	return nil
}

type ConfigShowCmd struct {
	File string `arg:"" default:"pairs.hcl" help:"Configuration file to read" type:"path"`
}

func (c *ConfigShowCmd) Run() error {
	cfg, err := config.Load(c.File)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	_, err = os.Stdout.Write(cfg.Encode())
	return err
}
