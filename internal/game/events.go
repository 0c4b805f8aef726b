package game

import "github.com/lox/pairs/internal/deck"

// Event is an input to Apply.
type Event interface {
	isEvent()
}

// Flip reveals the tile at Index.
type Flip struct {
	Index int
}

// Resolve clears the face-up pair of a completed reveal once its display
// delay has passed.
type Resolve struct {
	Generation uint64
	Reveal     uint64
}

// Tick advances the elapsed-time counter by one second.
type Tick struct {
	Generation uint64
}

// NewGame replaces the deck and starts a fresh round.
type NewGame struct {
	Deck deck.Deck
}

// Reset clears round progress and keeps the current arrangement.
type Reset struct{}

func (Flip) isEvent()    {}
func (Resolve) isEvent() {}
func (Tick) isEvent()    {}
func (NewGame) isEvent() {}
func (Reset) isEvent()   {}

// Effect is a side effect requested by Apply.
type Effect interface {
	isEffect()
}

// StartTimer starts the once-per-second elapsed timer for Generation.
type StartTimer struct {
	Generation uint64
}

// StopTimer cancels the elapsed timer.
type StopTimer struct{}

// ScheduleResolve asks for a Resolve event after the match or mismatch
// delay.
type ScheduleResolve struct {
	Generation uint64
	Reveal     uint64
	Match      bool
}

func (StartTimer) isEffect()      {}
func (StopTimer) isEffect()       {}
func (ScheduleResolve) isEffect() {}

// Resolution returns the Resolve event this effect schedules
func (s ScheduleResolve) Resolution() Resolve {
	return Resolve{Generation: s.Generation, Reveal: s.Reveal}
}
