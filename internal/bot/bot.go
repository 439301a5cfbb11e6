// Package bot provides the automated players: a uniform random sampler and
// a one-ply heuristic built on ActionRewardTable.
package bot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/splendor/internal/game"
)

// Strategy names a kind of automated player.
type Strategy string

const (
	Random    Strategy = "random"
	Heuristic Strategy = "heuristic"
)

// Strategies lists every known strategy.
func Strategies() []Strategy {
	return []Strategy{Random, Heuristic}
}

// ParseStrategy accepts a strategy name in any case.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Strategies() {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (want one of %v)", s, Strategies())
}

// New creates an agent for the strategy.
func New(strategy Strategy, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch strategy {
	case Random:
		return NewRandBot(rng, logger), nil
	case Heuristic:
		return NewHeuristicBot(rng, logger), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}
