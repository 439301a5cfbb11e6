package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/splendor/internal/game"
)

// HeuristicBot plays the reward table's choice on the first attempt of a
// turn and samples randomly when the table has no confident choice or the
// engine asks again.
type HeuristicBot struct {
	table    ActionRewardTable
	fallback *RandBot
	logger   *log.Logger
}

// NewHeuristicBot creates a new HeuristicBot instance
func NewHeuristicBot(rng *rand.Rand, logger *log.Logger) *HeuristicBot {
	return &HeuristicBot{
		fallback: NewRandBot(rng, logger),
		logger:   logger,
	}
}

func (h *HeuristicBot) NextMove(u *game.User, b *game.Board, trial int) game.Move {
	if trial == 0 {
		h.table.Estimate(u, b)
		m, ok := h.table.Choice()
		if ok {
			h.logger.Debug("heuristic choice", "player", u.ID(), "move", m)
			return m
		}
		h.logger.Debug("no confident choice, sampling", "player", u.ID())
	}
	return h.fallback.NextMove(u, b, trial)
}
