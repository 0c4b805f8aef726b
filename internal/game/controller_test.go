package game

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/gameid"
	"github.com/lox/pairs/internal/randutil"
)

func newTestController(t *testing.T) (*Controller, *quartz.Mock) {
	t.Helper()
	mockClock := quartz.NewMock(t)
	c, err := NewController(Options{
		Settings:      Settings{VisualSet: "glyphs", Pairs: 6, Locale: "en"},
		MatchDelay:    500 * time.Millisecond,
		MismatchDelay: time.Second,
		Clock:         mockClock,
		Rand:          randutil.New(42),
		Logger:        log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, mockClock
}

func mismatchPair(d deck.Deck) (int, int) {
	for j := 1; j < d.Len(); j++ {
		if d.Tile(0).PairKey != d.Tile(j).PairKey {
			return 0, j
		}
	}
	panic("deck has no mismatching pair")
}

func TestControllerMismatchFlipsBack(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, mockClock := newTestController(t)
	s := c.Snapshot()
	require.Equal(t, 12, s.Deck().Len())

	i, j := mismatchPair(s.Deck())
	c.Flip(i)
	c.Flip(j)

	s = c.Snapshot()
	assert.Equal(t, Evaluating, s.Phase())
	assert.Equal(t, 1, s.Moves())
	assert.Len(t, s.Flipped(), 2)

	// The mismatch delay and the first timer tick land together.
	mockClock.Advance(time.Second).MustWait(ctx)

	s = c.Snapshot()
	assert.Empty(t, s.Flipped())
	assert.Empty(t, s.MatchedKeys())
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, 1, s.Elapsed())
	assert.Equal(t, Running, s.Phase())
}

func TestControllerMatchStaysFaceUp(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, mockClock := newTestController(t)
	d := c.Snapshot().Deck()
	j := d.PartnerOf(0)

	c.Flip(0)
	c.Flip(j)
	mockClock.Advance(500 * time.Millisecond).MustWait(ctx)

	s := c.Snapshot()
	assert.Empty(t, s.Flipped())
	assert.True(t, s.IsFaceUp(0))
	assert.True(t, s.IsFaceUp(j))
	assert.Equal(t, 1, s.MatchedCount())
	assert.Equal(t, 0, s.Elapsed())

	mockClock.Advance(500 * time.Millisecond).MustWait(ctx)
	assert.Equal(t, 1, c.Snapshot().Elapsed())
}

func TestControllerWinStopsTimer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, mockClock := newTestController(t)
	d := c.Snapshot().Deck()

	done := map[int]bool{}
	for i := 0; i < d.Len(); i++ {
		if done[i] {
			continue
		}
		j := d.PartnerOf(i)
		done[i], done[j] = true, true
		c.Flip(i)
		c.Flip(j)
	}

	s := c.Snapshot()
	require.True(t, s.Won())
	assert.Equal(t, d.Pairs(), s.Moves())

	// Only the final resolution is still scheduled; the ticker is gone.
	mockClock.Advance(500 * time.Millisecond).MustWait(ctx)
	s = c.Snapshot()
	assert.Empty(t, s.Flipped())
	assert.Equal(t, 0, s.Elapsed())
	assert.True(t, s.Won())
}

func TestControllerResetCancelsPendingResolution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, mockClock := newTestController(t)
	before := c.Snapshot()
	i, j := mismatchPair(before.Deck())

	c.Flip(i)
	c.Flip(j)
	c.Reset()

	s := c.Snapshot()
	assert.Equal(t, before.Deck().Tiles(), s.Deck().Tiles())
	assert.Equal(t, Idle, s.Phase())
	assert.Equal(t, 0, s.Moves())
	assert.Empty(t, s.Flipped())

	// Start the new round, then let the old deadline pass.
	c.Flip(i)
	mockClock.Advance(time.Second).MustWait(ctx)

	s = c.Snapshot()
	assert.Equal(t, []int{i}, s.Flipped(), "stale resolution must not clear the new round")
	assert.Equal(t, 1, s.Elapsed())
}

func TestControllerNewGameReshuffles(t *testing.T) {
	c, _ := newTestController(t)
	before := c.Snapshot()

	c.Flip(0)
	require.NoError(t, c.NewGame())

	s := c.Snapshot()
	assert.Equal(t, Idle, s.Phase())
	assert.Empty(t, s.Flipped())
	assert.Greater(t, s.Generation(), before.Generation())
	assert.NotEqual(t, before.Deck().Tiles(), s.Deck().Tiles())
}

func TestControllerRoundIDChangesWithGeneration(t *testing.T) {
	c, _ := newTestController(t)

	first := c.RoundID()
	require.NoError(t, gameid.Validate(first))

	c.Flip(0)
	assert.Equal(t, first, c.RoundID(), "flips stay in the same round")

	c.Reset()
	afterReset := c.RoundID()
	assert.NotEqual(t, first, afterReset)

	require.NoError(t, c.NewGame())
	assert.NotEqual(t, afterReset, c.RoundID())
}

func TestControllerApplySettings(t *testing.T) {
	c, _ := newTestController(t)
	gen := c.Snapshot().Generation()

	t.Run("unchanged settings keep the round", func(t *testing.T) {
		require.NoError(t, c.ApplySettings(c.Settings()))
		assert.Equal(t, gen, c.Snapshot().Generation())
	})

	t.Run("locale change restarts the round", func(t *testing.T) {
		c.Flip(0)
		s := c.Settings()
		s.Locale = "fr"
		require.NoError(t, c.ApplySettings(s))

		snap := c.Snapshot()
		assert.Greater(t, snap.Generation(), gen)
		assert.Equal(t, Idle, snap.Phase())
		assert.Equal(t, "fr", c.Settings().Locale)
	})

	t.Run("pair count change resizes the deck", func(t *testing.T) {
		s := c.Settings()
		s.Pairs = 8
		require.NoError(t, c.ApplySettings(s))
		assert.Equal(t, 16, c.Snapshot().Deck().Len())
	})

	t.Run("visual set change redeals from the new set", func(t *testing.T) {
		s := c.Settings()
		s.VisualSet = "animals"
		require.NoError(t, c.ApplySettings(s))
		d := c.Snapshot().Deck()
		assert.Equal(t, "animals", d.Set())
		assert.Contains(t, deck.Animals.Symbols, d.Tile(0).Symbol)
	})

	t.Run("invalid settings leave the round alone", func(t *testing.T) {
		before := c.Snapshot()
		s := c.Settings()
		s.Pairs = 99
		err := c.ApplySettings(s)

		var cfgErr *deck.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, before.Generation(), c.Snapshot().Generation())
		assert.NotEqual(t, 99, c.Settings().Pairs)
	})

	t.Run("unknown set is rejected", func(t *testing.T) {
		s := c.Settings()
		s.VisualSet = "fruit"
		assert.Error(t, c.ApplySettings(s))
	})
}

func TestControllerPublishesLatestState(t *testing.T) {
	c, _ := newTestController(t)

	c.Flip(0)
	c.Flip(1)

	select {
	case s := <-c.Updates():
		assert.Equal(t, c.Snapshot().Moves(), s.Moves())
		assert.Len(t, s.Flipped(), 2)
	default:
		t.Fatal("expected a buffered update")
	}
}

func TestControllerCloseStopsUpdates(t *testing.T) {
	c, _ := newTestController(t)
	c.Close()
	c.Close()

	c.Flip(0)
	assert.Equal(t, Idle, c.Snapshot().Phase())

	for range c.Updates() {
	}
}

func TestNewControllerRejectsBadSettings(t *testing.T) {
	_, err := NewController(Options{
		Settings: Settings{VisualSet: "glyphs", Pairs: 40},
		Clock:    quartz.NewMock(t),
		Logger:   log.NewWithOptions(io.Discard, log.Options{}),
	})
	var cfgErr *deck.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}
