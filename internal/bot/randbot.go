package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/splendor/internal/game"
)

// RandBot samples uniformly from the candidate move table, leaving the
// engine to reject and resample illegal picks.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) NextMove(_ *game.User, _ *game.Board, _ int) game.Move {
	m, _ := game.MoveFromIndex(r.rng.IntN(game.NumCandidates))
	return m
}
