package game

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/gameid"
	"github.com/lox/pairs/internal/randutil"
)

const (
	DefaultMatchDelay    = 600 * time.Millisecond
	DefaultMismatchDelay = 1000 * time.Millisecond
)

// Settings are the player-selectable inputs that shape a deck. Changing any
// of them starts a new round.
type Settings struct {
	VisualSet string
	Pairs     int
	Locale    string
}

// Options configures a Controller. Zero values get defaults.
type Options struct {
	Settings      Settings
	MatchDelay    time.Duration
	MismatchDelay time.Duration
	Clock         quartz.Clock
	Rand          *rand.Rand
	Logger        *log.Logger
}

// Controller runs a round against a clock. It is safe for concurrent use;
// all events are applied one at a time.
type Controller struct {
	mu sync.Mutex

	settings      Settings
	state         State
	matchDelay    time.Duration
	mismatchDelay time.Duration
	clock         quartz.Clock
	rng           *rand.Rand
	logger        *log.Logger
	ids           *gameid.Generator
	roundID       string

	stopTicker context.CancelFunc
	pending    map[uint64]*quartz.Timer
	updates    chan State
	closed     bool
}

// NewController builds the first deck from opts.Settings and returns an
// idle controller. It fails with a *deck.ConfigurationError when the
// settings cannot produce a deck.
func NewController(opts Options) (*Controller, error) {
	if opts.MatchDelay <= 0 {
		opts.MatchDelay = DefaultMatchDelay
	}
	if opts.MismatchDelay <= 0 {
		opts.MismatchDelay = DefaultMismatchDelay
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Rand == nil {
		opts.Rand = randutil.Fresh()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	c := &Controller{
		settings:      opts.Settings,
		matchDelay:    opts.MatchDelay,
		mismatchDelay: opts.MismatchDelay,
		clock:         opts.Clock,
		rng:           opts.Rand,
		logger:        opts.Logger.WithPrefix("game"),
		ids:           gameid.NewGenerator(opts.Clock, randutil.Fresh()),
		pending:       make(map[uint64]*quartz.Timer),
		updates:       make(chan State, 1),
	}

	d, err := c.buildDeck(opts.Settings)
	if err != nil {
		return nil, err
	}
	c.state = NewState(d)
	c.roundID = c.ids.Generate()
	c.publish()

	c.logger.Debug("Controller ready", "round", c.roundID, "set", d.Set(), "pairs", d.Pairs(), "locale", opts.Settings.Locale)
	return c, nil
}

// Updates delivers the latest state after every change. Only the most
// recent state is buffered; the channel is closed by Close.
func (c *Controller) Updates() <-chan State {
	return c.updates
}

// Snapshot returns the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Settings returns the settings the current deck was built from
func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// RoundID identifies the current round in logs. It changes whenever the
// generation does.
func (c *Controller) RoundID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roundID
}

// Flip reveals the tile at position i.
func (c *Controller) Flip(i int) {
	c.dispatch(Flip{Index: i})
}

// NewGame deals a fresh deck with the current settings.
func (c *Controller) NewGame() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, err := c.buildDeck(c.settings)
	if err != nil {
		return err
	}
	c.cancelPending()
	c.apply(NewGame{Deck: d})
	c.roundID = c.ids.Generate()
	c.logger.Info("New game", "round", c.roundID, "set", d.Set(), "pairs", d.Pairs(), "generation", c.state.Generation())
	return nil
}

// Reset restarts the round on the same arrangement.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPending()
	c.apply(Reset{})
	c.roundID = c.ids.Generate()
	c.logger.Info("Round reset", "round", c.roundID, "generation", c.state.Generation())
}

// ApplySettings deals a new deck when s differs from the current settings.
// A locale change also restarts the round even though it does not change
// the deck's contents. On error the current round is left as it was.
func (c *Controller) ApplySettings(s Settings) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s == c.settings {
		return nil
	}
	d, err := c.buildDeck(s)
	if err != nil {
		return err
	}

	c.settings = s
	c.cancelPending()
	c.apply(NewGame{Deck: d})
	c.roundID = c.ids.Generate()
	c.logger.Info("Settings changed", "round", c.roundID, "settings", s)
	return nil
}

// Close stops all timers and closes the updates channel. Later events are
// ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.stopTimer()
	c.cancelPending()
	close(c.updates)
}

func (c *Controller) dispatch(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(e)
}

// apply runs e through the reducer and executes its effects. Callers hold mu.
func (c *Controller) apply(e Event) {
	if c.closed {
		return
	}

	prev := c.state
	next, effects := Apply(prev, e)
	c.state = next

	for _, effect := range effects {
		c.execute(effect)
	}

	if next.Moves() != prev.Moves() {
		c.logger.Debug("Reveal", "move", next.Moves(), "flipped", next.Flipped(), "matched", next.MatchedCount())
	}
	if next.Won() && !prev.Won() {
		c.logger.Info("Round won", "round", c.roundID, "moves", next.Moves(), "elapsed", next.Elapsed(), "pairs", next.Pairs())
	}

	c.publish()
}

func (c *Controller) execute(effect Effect) {
	switch effect := effect.(type) {
	case StartTimer:
		c.stopTimer()
		ctx, cancel := context.WithCancel(context.Background())
		c.stopTicker = cancel
		gen := effect.Generation
		c.clock.TickerFunc(ctx, time.Second, func() error {
			c.dispatch(Tick{Generation: gen})
			return nil
		}, "game", "tick")

	case StopTimer:
		c.stopTimer()

	case ScheduleResolve:
		delay := c.mismatchDelay
		if effect.Match {
			delay = c.matchDelay
		}
		resolution := effect.Resolution()
		c.pending[resolution.Reveal] = c.clock.AfterFunc(delay, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.pending, resolution.Reveal)
			c.apply(resolution)
		}, "game", "resolve")

	default:
		panic(fmt.Sprintf("game: unhandled effect %T", effect))
	}
}

func (c *Controller) stopTimer() {
	if c.stopTicker != nil {
		c.stopTicker()
		c.stopTicker = nil
	}
}

func (c *Controller) cancelPending() {
	for reveal, t := range c.pending {
		t.Stop()
		delete(c.pending, reveal)
	}
}

// publish replaces any unread state with the current one.
func (c *Controller) publish() {
	select {
	case <-c.updates:
	default:
	}
	select {
	case c.updates <- c.state:
	default:
	}
}

func (c *Controller) buildDeck(s Settings) (deck.Deck, error) {
	set, err := deck.LookupSet(s.VisualSet)
	if err != nil {
		return deck.Deck{}, err
	}
	return deck.Build(set, s.Pairs, c.rng)
}
