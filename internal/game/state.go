package game

import (
	"fmt"
	"slices"

	"github.com/lox/pairs/internal/deck"
)

// Phase is the lifecycle position of a round.
type Phase int

const (
	// Idle: no flips yet, timer stopped.
	Idle Phase = iota
	// Running: timer active, zero or one tile awaiting a partner.
	Running
	// Evaluating: two tiles face-up, waiting for their resolution.
	Evaluating
	// Won: every pair matched. Terminal until NewGame or Reset.
	Won
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is one round of play. The zero value has no deck; use NewState.
// States are values: Apply returns a new State and never modifies the one
// it was given.
type State struct {
	deck       deck.Deck
	generation uint64
	reveal     uint64
	flipped    []int
	matched    []bool
	nMatched   int
	moves      int
	elapsed    int
	phase      Phase
}

// NewState starts the first round on d.
func NewState(d deck.Deck) State {
	return State{
		deck:       d,
		generation: 1,
		matched:    make([]bool, d.Pairs()),
	}
}

// Deck returns the round's arrangement
func (s State) Deck() deck.Deck { return s.deck }

// Generation identifies the deck instance; it advances on NewGame and Reset.
func (s State) Generation() uint64 { return s.generation }

// Reveal is the number of the most recent two-tile reveal.
func (s State) Reveal() uint64 { return s.reveal }

// Phase returns the current lifecycle phase
func (s State) Phase() Phase { return s.phase }

// Moves counts completed two-tile reveals.
func (s State) Moves() int { return s.moves }

// Elapsed is the number of seconds the round has been running.
func (s State) Elapsed() int { return s.elapsed }

// Pairs returns the number of pairs in play
func (s State) Pairs() int { return s.deck.Pairs() }

// MatchedCount returns how many pairs have been matched
func (s State) MatchedCount() int { return s.nMatched }

// AllMatched reports whether every pair is matched.
func (s State) AllMatched() bool { return s.nMatched == s.deck.Pairs() }

// Won reports whether the round is over
func (s State) Won() bool { return s.phase == Won }

// Flipped returns the positions revealed but not yet resolved, oldest first.
func (s State) Flipped() []int { return slices.Clone(s.flipped) }

// IsFlipped reports whether position i is in the flipped window
func (s State) IsFlipped(i int) bool { return slices.Contains(s.flipped, i) }

// IsMatched reports whether the pair with the given key has been matched.
func (s State) IsMatched(pairKey int) bool {
	return pairKey >= 0 && pairKey < len(s.matched) && s.matched[pairKey]
}

// IsTileMatched reports whether the tile at position i belongs to a
// matched pair.
func (s State) IsTileMatched(i int) bool {
	return s.deck.InRange(i) && s.IsMatched(s.deck.Tile(i).PairKey)
}

// IsFaceUp reports whether position i is currently shown.
func (s State) IsFaceUp(i int) bool {
	return s.IsFlipped(i) || s.IsTileMatched(i)
}

// Pending returns the flipped positions whose pair is not yet matched.
// There are never more than two.
func (s State) Pending() []int {
	var out []int
	for _, i := range s.flipped {
		if !s.IsTileMatched(i) {
			out = append(out, i)
		}
	}
	return out
}

// MatchedKeys lists the matched pair keys in ascending order
func (s State) MatchedKeys() []int {
	var keys []int
	for k, ok := range s.matched {
		if ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func (s State) clone() State {
	s.flipped = slices.Clone(s.flipped)
	s.matched = slices.Clone(s.matched)
	return s
}
