// Package simulator plays batches of independent seeded games between
// automated players and aggregates the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/splendor/internal/bot"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/game"
	"github.com/lox/splendor/internal/gameid"
	"github.com/lox/splendor/internal/randutil"
	"github.com/lox/splendor/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Player is one configured participant.
type Player struct {
	Name     string
	Strategy bot.Strategy
}

// Label identifies the player in reports.
func (p Player) Label() string {
	if p.Name == "" || p.Name == string(p.Strategy) {
		return string(p.Strategy)
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Strategy)
}

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Seed    int64
	Workers int // concurrent games; 0 means GOMAXPROCS
	Players []Player
	Rules   game.Rules
	Cards   []card.Card
	Nobles  []card.Noble
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Simulator runs game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

func (s *Simulator) validate() error {
	switch {
	case s.config.Games <= 0:
		return fmt.Errorf("games must be positive, got %d", s.config.Games)
	case len(s.config.Players) == 0:
		return errors.New("at least one player is required")
	case len(s.config.Cards) == 0:
		return errors.New("no cards loaded")
	}
	return s.config.Rules.Validate()
}

// Run plays every game and returns the aggregated statistics. Games run
// concurrently on up to Workers goroutines but never share state. The
// first fatal game error cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	start := s.config.Clock.Now()

	results := make([]statistics.GameResult, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Games {
		g.Go(func() error {
			r, err := s.PlayGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, r.Seed, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	labels := make([]string, len(s.config.Players))
	for i, p := range s.config.Players {
		labels[i] = p.Label()
	}
	stats := statistics.New(labels...)
	for _, r := range results {
		if err := stats.Add(r); err != nil {
			return nil, err
		}
	}
	stats.Elapsed = s.config.Clock.Since(start)

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// PlayGame plays game n of the batch. Seats rotate with n so that every
// player moves first equally often.
func (s *Simulator) PlayGame(ctx context.Context, n int) (statistics.GameResult, error) {
	seed := randutil.Derive(s.config.Seed, n)
	players := s.config.Players
	offset := n % len(players)
	result := statistics.GameResult{
		ID:        gameid.FromSeed(seed),
		Seed:      seed,
		Winner:    -1,
		FirstSeat: offset,
		Points:    make([]int, len(players)),
	}
	logger := s.config.Logger.With("game", result.ID)

	board := game.NewBoard(s.config.Cards, s.config.Nobles, len(players), s.config.Rules, randutil.New(seed))
	seats := make([]game.Seat, len(players))
	owner := make([]int, len(players))
	for i := range seats {
		idx := (i + offset) % len(players)
		p := players[idx]
		agent, err := bot.New(p.Strategy, randutil.New(randutil.Derive(seed, idx+1)), logger)
		if err != nil {
			return result, err
		}
		seats[i] = game.Seat{Name: p.Label(), Agent: agent}
		owner[i] = idx
	}

	engine, err := game.NewEngine(board, seats, logger)
	if err != nil {
		return result, err
	}
	res, err := engine.Run(ctx)
	if err != nil {
		return result, err
	}

	result.Reason = res.Reason.String()
	result.Rounds = res.Rounds
	result.Turns = res.Turns
	result.Forfeits = res.Forfeits
	for _, sc := range res.Scores {
		result.Points[owner[sc.Seat]] = sc.VP
	}
	if res.Winner >= 0 {
		result.Winner = owner[res.Winner]
	}
	logger.Debug("game finished", "reason", result.Reason, "rounds", res.Rounds, "winner", res.WinnerName())
	return result, nil
}
