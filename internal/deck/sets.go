package deck

import (
	"fmt"
	"strings"
)

// VisualSet is a named collection of symbols tiles are drawn from.
type VisualSet struct {
	Name    string
	Symbols []string
}

// Size returns the number of distinct symbols in the set
func (s VisualSet) Size() int {
	return len(s.Symbols)
}

var (
	// Animals is the emoji set, shown by default.
	Animals = VisualSet{
		Name: "animals",
		Symbols: []string{
			"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼",
			"🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐔",
		},
	}

	// Glyphs is a plain unicode set for terminals without emoji fonts.
	Glyphs = VisualSet{
		Name: "glyphs",
		Symbols: []string{
			"♠", "♥", "♦", "♣", "★", "●", "■", "▲",
			"◆", "✿", "☀", "☂", "♪", "✈", "☯", "⚓",
		},
	}
)

var sets = []VisualSet{Animals, Glyphs}

// LookupSet finds a visual set by name, case-insensitively.
func LookupSet(name string) (VisualSet, error) {
	for _, s := range sets {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return VisualSet{}, fmt.Errorf("unknown visual set %q (want one of %s)", name, strings.Join(SetNames(), ", "))
}

// SetNames lists the registered visual sets in display order
func SetNames() []string {
	names := make([]string, len(sets))
	for i, s := range sets {
		names[i] = s.Name
	}
	return names
}

// NextSet returns the set following name, wrapping around.
func NextSet(name string) VisualSet {
	for i, s := range sets {
		if s.Name == name {
			return sets[(i+1)%len(sets)]
		}
	}
	return sets[0]
}
