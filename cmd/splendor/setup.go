package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/splendor/internal/bot"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/config"
	"github.com/lox/splendor/internal/render"
	"github.com/lox/splendor/internal/simulator"
	"github.com/muesli/termenv"
)

// setup is everything a command needs before playing.
type setup struct {
	config *config.Config
	cards  []card.Card
	nobles []card.Noble
	logger *log.Logger
}

func load(g *Globals, quiet log.Level) (*setup, error) {
	level := quiet
	if g.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Cards != "" {
		cfg.Cards = g.Cards
	}
	if g.Nobles != "" {
		cfg.Nobles = g.Nobles
	}

	s := &setup{config: cfg, logger: logger}
	if cfg.Cards == "" {
		s.cards, err = card.Default()
	} else {
		s.cards, err = card.LoadFile(cfg.Cards)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Nobles == "" {
		s.nobles, err = card.DefaultNobles()
	} else {
		s.nobles, err = card.LoadNoblesFile(cfg.Nobles)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded data", "config", g.Config, "cards", len(s.cards), "nobles", len(s.nobles))
	return s, nil
}

// players returns the configured players, replaced by overrides when any
// are given.
func (s *setup) players(overrides []string) ([]simulator.Player, error) {
	if len(overrides) > 0 {
		return parsePlayers(overrides)
	}
	var out []simulator.Player
	for i, p := range s.config.Players {
		out = append(out, simulator.Player{Name: p.Name, Strategy: s.config.Strategies()[i]})
	}
	return out, nil
}

// parsePlayers reads "name:strategy" or bare "strategy" entries.
func parsePlayers(specs []string) ([]simulator.Player, error) {
	var out []simulator.Player
	seen := map[string]bool{}
	for _, spec := range specs {
		name, strategy, found := strings.Cut(spec, ":")
		if !found {
			strategy = name
			name = fmt.Sprintf("%s-%d", strategy, len(out)+1)
		}
		st, err := bot.ParseStrategy(strategy)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", spec, err)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate player %q", name)
		}
		seen[name] = true
		out = append(out, simulator.Player{Name: name, Strategy: st})
	}
	return out, nil
}

func newRenderer(g *Globals, w io.Writer) *render.Renderer {
	if g.NoColor {
		return render.NewWithProfile(w, termenv.Ascii)
	}
	return render.New(w)
}
