package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/pairs/cmd/pairs/shared"
	"github.com/lox/pairs/internal/randutil"
	"github.com/lox/pairs/internal/simulator"
	"github.com/lox/pairs/internal/statistics"
)

// SimulateCmd plays rounds with an autoplayer
type SimulateCmd struct {
	Games    int    `kong:"default='1000',help='Number of rounds to play'"`
	Pairs    int    `kong:"default='8',help='Number of pairs'"`
	Set      string `kong:"default='animals',help='Visual set: animals or glyphs'"`
	Strategy string `kong:"enum='perfect,random',default='perfect',help='Autoplayer: perfect or random'"`
	Workers  int    `kong:"default='4',help='Parallel workers'"`
	Seed     *int64 `kong:"help='Base seed (random if not set)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger, err := shared.SetupLogger(os.Stderr, "info", c.Debug)
	if err != nil {
		return err
	}

	strategy, err := simulator.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}

	seed := randutil.Fresh().Int64()
	if c.Seed != nil {
		seed = *c.Seed
	}

	sim, err := simulator.New(simulator.Config{
		Rounds:    c.Games,
		Pairs:     c.Pairs,
		VisualSet: c.Set,
		Strategy:  strategy,
		Workers:   c.Workers,
		Seed:      seed,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	fmt.Printf("Starting simulation: %d rounds, %d pairs, %s player (seed: %d)\n",
		c.Games, c.Pairs, strategy, seed)

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Simulation finished", "duration", time.Since(start))

	printStats(os.Stdout, stats, time.Since(start))
	return nil
}

func printStats(w io.Writer, s *statistics.Statistics, took time.Duration) {
	low, high := s.ConfidenceInterval95()
	fmt.Fprintf(w, "\n=== %d ROUNDS COMPLETED in %s ===\n", s.Rounds, took.Round(time.Millisecond))
	fmt.Fprintf(w, "Moves: %.2f ± %.2f SE\n", s.Mean(), s.StdError())
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f]\n", low, high)
	fmt.Fprintf(w, "Median: %.1f  p90: %.1f  StdDev: %.2f\n", s.Median(), s.Percentile(90), s.StdDev())
	fmt.Fprintf(w, "Min: %d  Max: %d\n", s.MinMoves, s.MaxMoves)
	fmt.Fprintf(w, "Perfect rounds: %d\n", s.Perfect)
	fmt.Fprintf(w, "Miss rate: %.1f%%\n", s.MissRate()*100)
	if s.Incomplete > 0 {
		fmt.Fprintf(w, "Incomplete rounds: %d\n", s.Incomplete)
	}
}
