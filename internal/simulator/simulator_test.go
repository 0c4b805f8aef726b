package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestPerfectPlayerBounds(t *testing.T) {
	sim, err := New(Config{
		Rounds:    200,
		Pairs:     8,
		VisualSet: "glyphs",
		Strategy:  Perfect,
		Workers:   4,
		Seed:      1,
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Rounds)
	assert.Zero(t, stats.Incomplete)
	assert.GreaterOrEqual(t, stats.MinMoves, 8, "every pair takes at least one move")
	assert.LessOrEqual(t, stats.MaxMoves, 15, "perfect memory never needs more than 2n-1 moves")
}

func TestRandomPlayerFinishes(t *testing.T) {
	sim, err := New(Config{
		Rounds:    20,
		Pairs:     6,
		VisualSet: "animals",
		Strategy:  Random,
		Workers:   2,
		Seed:      3,
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Rounds+stats.Incomplete)
	assert.Greater(t, stats.Mean(), 6.0)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) []float64 {
		sim, err := New(Config{Rounds: 30, Pairs: 6, VisualSet: "glyphs", Strategy: Perfect, Workers: workers, Seed: 9, Logger: quietLogger()})
		require.NoError(t, err)
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return []float64{stats.Mean(), float64(stats.MinMoves), float64(stats.MaxMoves), float64(stats.SumMisses)}
	}
	assert.Equal(t, run(1), run(5))
}

func TestPlayRoundCountsMisses(t *testing.T) {
	sim, err := New(Config{Rounds: 1, Pairs: 6, VisualSet: "glyphs", Seed: 5, Logger: quietLogger()})
	require.NoError(t, err)

	result, err := sim.PlayRound(0)
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, 6, result.Pairs)
	assert.Equal(t, result.Moves-result.Pairs, result.Misses, "each move is a match or a miss")
}

func TestRunHonoursCancellation(t *testing.T) {
	sim, err := New(Config{Rounds: 100, Pairs: 6, VisualSet: "glyphs", Workers: 2, Logger: quietLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "unknown set", config: Config{Rounds: 1, Pairs: 6, VisualSet: "fruit"}},
		{name: "too many pairs", config: Config{Rounds: 1, Pairs: 30, VisualSet: "glyphs"}},
		{name: "no rounds", config: Config{Rounds: 0, Pairs: 6, VisualSet: "glyphs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			assert.Error(t, err)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("random")
	require.NoError(t, err)
	assert.Equal(t, Random, s)

	_, err = ParseStrategy("psychic")
	assert.Error(t, err)
}
