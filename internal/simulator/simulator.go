// Package simulator plays rounds headlessly with autoplayers and
// aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/game"
	"github.com/lox/pairs/internal/randutil"
	"github.com/lox/pairs/internal/statistics"
)

// maxFlipsPerPair bounds a round so a pathological player cannot spin
// forever.
const maxFlipsPerPair = 1000

// Config holds configuration for running simulations
type Config struct {
	Rounds    int
	Pairs     int
	VisualSet string
	Strategy  Strategy
	Workers   int
	Seed      int64
	Logger    *log.Logger
}

// Simulator runs rounds in parallel
type Simulator struct {
	config Config
	set    deck.VisualSet
}

// New validates config and returns a simulator
func New(config Config) (*Simulator, error) {
	set, err := deck.LookupSet(config.VisualSet)
	if err != nil {
		return nil, err
	}
	if config.Pairs < 1 || config.Pairs > set.Size() {
		return nil, &deck.ConfigurationError{Set: set.Name, Pairs: config.Pairs, Available: set.Size()}
	}
	if config.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Workers > config.Rounds {
		config.Workers = config.Rounds
	}
	if config.Strategy == "" {
		config.Strategy = Perfect
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config, set: set}, nil
}

// Run plays every round and returns the merged statistics. Rounds are
// split across workers by index, so results depend only on the seed.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	logger := s.config.Logger.WithPrefix("simulate")
	logger.Debug("Starting simulation",
		"rounds", s.config.Rounds,
		"pairs", s.config.Pairs,
		"strategy", s.config.Strategy,
		"workers", s.config.Workers)

	var mu sync.Mutex
	total := &statistics.Statistics{}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			local := &statistics.Statistics{}
			for round := w; round < s.config.Rounds; round += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.PlayRound(round)
				if err != nil {
					return fmt.Errorf("round %d: %w", round, err)
				}
				local.Add(result)
			}

			mu.Lock()
			total.Merge(local)
			mu.Unlock()
			logger.Debug("Worker finished", "worker", w, "rounds", local.Rounds)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return total, nil
}

// PlayRound plays round number n to completion.
func (s *Simulator) PlayRound(n int) (statistics.RoundResult, error) {
	seed := int64(n) + s.config.Seed
	d, err := deck.Build(s.set, s.config.Pairs, randutil.Derive(seed, 0))
	if err != nil {
		return statistics.RoundResult{}, err
	}

	player := NewPlayer(s.config.Strategy, randutil.Derive(seed, 1))
	result := statistics.RoundResult{Seed: seed, Pairs: d.Pairs()}

	state := game.NewState(d)
	for flips := 0; !state.Won(); flips++ {
		if flips >= maxFlipsPerPair*d.Pairs() {
			result.Moves = state.Moves()
			return result, nil
		}

		i := player.Choose(Board{state: state})
		if i < 0 {
			return result, fmt.Errorf("player found no tile to flip after %d moves", state.Moves())
		}

		var effects []game.Effect
		state, effects = game.Apply(state, game.Flip{Index: i})
		player.Observe(i, d.Tile(i).PairKey)

		for _, effect := range effects {
			if r, ok := effect.(game.ScheduleResolve); ok {
				if !r.Match {
					result.Misses++
				}
				state, _ = game.Apply(state, r.Resolution())
			}
		}
	}

	result.Moves = state.Moves()
	result.Complete = true
	return result, nil
}
