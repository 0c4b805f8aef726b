package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// ConfigurationError reports a deck request the visual set cannot satisfy.
type ConfigurationError struct {
	Set       string
	Pairs     int
	Available int
}

func (e *ConfigurationError) Error() string {
	if e.Pairs < 1 {
		return fmt.Sprintf("pair count must be positive, got %d", e.Pairs)
	}
	return fmt.Sprintf("pair count %d exceeds available symbol count %d in set %q", e.Pairs, e.Available, e.Set)
}

// Deck is the shuffled sequence of tiles for one round. A deck is never
// mutated after Build; a new round gets a new deck.
type Deck struct {
	set   string
	tiles []Tile
}

// Build draws pairs random symbols from set and returns a shuffled deck of
// 2*pairs tiles, two per PairKey.
func Build(set VisualSet, pairs int, rng *rand.Rand) (Deck, error) {
	if pairs < 1 || pairs > set.Size() {
		return Deck{}, &ConfigurationError{Set: set.Name, Pairs: pairs, Available: set.Size()}
	}

	symbols := make([]string, set.Size())
	copy(symbols, set.Symbols)
	rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	tiles := make([]Tile, 0, pairs*2)
	for key, symbol := range symbols[:pairs] {
		tiles = append(tiles,
			Tile{ID: key * 2, PairKey: key, Symbol: symbol},
			Tile{ID: key*2 + 1, PairKey: key, Symbol: symbol},
		)
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	return Deck{set: set.Name, tiles: tiles}, nil
}

// FromTiles wraps an explicit arrangement. It is used to replay a known
// layout and does not check pairing.
func FromTiles(set string, tiles []Tile) Deck {
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)
	return Deck{set: set, tiles: cp}
}

// Set returns the name of the visual set the deck was drawn from
func (d Deck) Set() string {
	return d.set
}

// Len returns the number of tiles in the deck
func (d Deck) Len() int {
	return len(d.tiles)
}

// Pairs returns the number of pairs in the deck
func (d Deck) Pairs() int {
	return len(d.tiles) / 2
}

// Tile returns the tile at position i. Callers must keep i in range.
func (d Deck) Tile(i int) Tile {
	return d.tiles[i]
}

// Tiles returns a copy of the arrangement
func (d Deck) Tiles() []Tile {
	cp := make([]Tile, len(d.tiles))
	copy(cp, d.tiles)
	return cp
}

// InRange reports whether i addresses a tile in the deck
func (d Deck) InRange(i int) bool {
	return i >= 0 && i < len(d.tiles)
}

// PartnerOf returns the position of the other tile sharing i's PairKey,
// or -1 if there is none.
func (d Deck) PartnerOf(i int) int {
	if !d.InRange(i) {
		return -1
	}
	for j, t := range d.tiles {
		if j != i && t.PairKey == d.tiles[i].PairKey {
			return j
		}
	}
	return -1
}
