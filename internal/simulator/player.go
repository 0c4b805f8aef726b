package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/pairs/internal/game"
)

// Board is what an autoplayer may see of a round: which positions can be
// flipped, never the faces of tiles it has not been shown.
type Board struct {
	state game.State
}

// Len returns the number of positions
func (b Board) Len() int { return b.state.Deck().Len() }

// Pending returns the position flipped this move and awaiting a partner,
// or -1.
func (b Board) Pending() int {
	if p := b.state.Pending(); len(p) == 1 {
		return p[0]
	}
	return -1
}

// Available reports whether position i can be flipped
func (b Board) Available(i int) bool {
	return !b.state.IsTileMatched(i) && !b.state.IsFlipped(i)
}

// Player picks tiles to flip.
type Player interface {
	// Choose returns the next position to flip.
	Choose(b Board) int
	// Observe is called with the pair key revealed at position i.
	Observe(i, pairKey int)
}

// Strategy names a Player implementation.
type Strategy string

const (
	// Perfect remembers every tile it has seen.
	Perfect Strategy = "perfect"
	// Random remembers nothing and flips uniformly among available tiles.
	Random Strategy = "random"
)

// ParseStrategy validates a strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case Perfect, Random:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want perfect or random)", s)
	}
}

// NewPlayer returns a fresh player for one round
func NewPlayer(s Strategy, rng *rand.Rand) Player {
	switch s {
	case Random:
		return &randomPlayer{rng: rng}
	default:
		return &memoryPlayer{rng: rng, seen: map[int]int{}}
	}
}

type memoryPlayer struct {
	rng  *rand.Rand
	seen map[int]int // position -> pair key
}

func (p *memoryPlayer) Observe(i, pairKey int) {
	p.seen[i] = pairKey
}

func (p *memoryPlayer) Choose(b Board) int {
	if first := b.Pending(); first >= 0 {
		if j := p.knownPartner(b, first); j >= 0 {
			return j
		}
		return p.unseen(b)
	}

	// Play a fully known pair before exploring.
	for i := 0; i < b.Len(); i++ {
		if _, ok := p.seen[i]; ok && b.Available(i) && p.knownPartner(b, i) >= 0 {
			return i
		}
	}
	return p.unseen(b)
}

func (p *memoryPlayer) knownPartner(b Board, first int) int {
	key := p.seen[first]
	for j, other := range p.seen {
		if j != first && other == key && b.Available(j) {
			return j
		}
	}
	return -1
}

func (p *memoryPlayer) unseen(b Board) int {
	var candidates []int
	for i := 0; i < b.Len(); i++ {
		if _, ok := p.seen[i]; !ok && b.Available(i) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[p.rng.IntN(len(candidates))]
}

type randomPlayer struct {
	rng *rand.Rand
}

func (p *randomPlayer) Observe(int, int) {}

func (p *randomPlayer) Choose(b Board) int {
	var candidates []int
	for i := 0; i < b.Len(); i++ {
		if b.Available(i) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[p.rng.IntN(len(candidates))]
}
