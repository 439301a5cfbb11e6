package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/splendor/internal/card"
)

type CardsCmd struct {
	Level  int  `short:"l" help:"Only list cards of this level (1-3)"`
	Nobles bool `help:"List noble tiles instead of cards"`
}

func (c *CardsCmd) Run(g *Globals) error {
	s, err := load(g, log.WarnLevel)
	if err != nil {
		return err
	}
	if c.Level != 0 && !card.Level(c.Level).Valid() {
		return fmt.Errorf("level must be 1, 2 or 3, got %d", c.Level)
	}
	out := newRenderer(g, os.Stdout)

	if c.Nobles {
		for _, n := range s.nobles {
			fmt.Println(out.Noble(n))
		}
		fmt.Printf("%d nobles\n", len(s.nobles))
		return nil
	}

	counts := map[card.Level]int{}
	for _, cd := range s.cards {
		if c.Level != 0 && cd.Level != card.Level(c.Level) {
			continue
		}
		counts[cd.Level]++
		fmt.Printf("%s %s\n", cd.Level, out.Card(cd))
	}
	for _, l := range card.Levels {
		if counts[l] > 0 {
			fmt.Printf("%s: %d cards\n", l, counts[l])
		}
	}
	return nil
}
