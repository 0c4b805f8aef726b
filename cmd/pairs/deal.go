package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/pairs/internal/deck"
	"github.com/lox/pairs/internal/randutil"
)

// DealCmd prints one shuffled deck as a grid
type DealCmd struct {
	Pairs int    `kong:"default='8',help='Number of pairs'"`
	Set   string `kong:"default='animals',help='Visual set: animals or glyphs'"`
	Seed  *int64 `kong:"help='Deterministic seed (optional)'"`
	Keys  bool   `kong:"help='Print pair keys under each symbol'"`
}

func (c *DealCmd) Run() error {
	set, err := deck.LookupSet(c.Set)
	if err != nil {
		return err
	}

	rng := randutil.Fresh()
	if c.Seed != nil {
		rng = randutil.New(*c.Seed)
	}
	d, err := deck.Build(set, c.Pairs, rng)
	if err != nil {
		return err
	}
	return printDeck(os.Stdout, d, c.Keys)
}

func printDeck(w io.Writer, d deck.Deck, keys bool) error {
	cols := deck.Columns(d.Pairs())
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %d pairs\n", d.Set(), d.Pairs())
	for row := 0; row*cols < d.Len(); row++ {
		var symbols, labels []string
		for i := row * cols; i < min((row+1)*cols, d.Len()); i++ {
			t := d.Tile(i)
			symbols = append(symbols, fmt.Sprintf("%-4s", t.Symbol))
			labels = append(labels, fmt.Sprintf("%-4d", t.PairKey))
		}
		b.WriteString(strings.TrimRight(strings.Join(symbols, " "), " "))
		b.WriteByte('\n')
		if keys {
			b.WriteString(strings.TrimRight(strings.Join(labels, " "), " "))
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
