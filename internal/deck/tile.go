package deck

import "fmt"

// Tile is one face-down unit on the board. Two tiles share a PairKey and
// are the unique match for each other.
type Tile struct {
	ID      int
	PairKey int
	Symbol  string
}

// Matches reports whether t and other form a pair. A tile never matches
// itself.
func (t Tile) Matches(other Tile) bool {
	return t.ID != other.ID && t.PairKey == other.PairKey
}

// String returns a debug representation of the tile
func (t Tile) String() string {
	return fmt.Sprintf("%s#%d", t.Symbol, t.PairKey)
}
