package deck

import (
	"fmt"
	"strings"
)

// Difficulty maps a named level to a pair count.
type Difficulty struct {
	Name  string
	Pairs int
}

var difficulties = []Difficulty{
	{Name: "easy", Pairs: 6},
	{Name: "medium", Pairs: 8},
	{Name: "hard", Pairs: 12},
}

// Difficulties returns the known levels from easiest to hardest
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// ParseDifficulty resolves a level name to its definition.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}

// NextDifficulty returns the level after the one with the given pair count.
// Pair counts that match no level restart at the easiest.
func NextDifficulty(pairs int) Difficulty {
	for i, d := range difficulties {
		if d.Pairs == pairs {
			return difficulties[(i+1)%len(difficulties)]
		}
	}
	return difficulties[0]
}

// Columns picks a grid width for a deck of the given pair count: the
// smallest divisor of the tile count that is at least its square root.
func Columns(pairs int) int {
	n := pairs * 2
	best := n
	for c := 1; c*c <= n; c++ {
		if n%c == 0 {
			best = n / c
		}
	}
	return best
}
