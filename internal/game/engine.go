package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/token"
)

// Agent picks moves for one player. trial counts the rejected attempts
// already made this turn. Every attempt gets fresh private copies of the
// user and board, so an agent may simulate on them freely.
type Agent interface {
	NextMove(user *User, board *Board, trial int) Move
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(user *User, board *Board, trial int) Move

func (f AgentFunc) NextMove(user *User, board *Board, trial int) Move {
	return f(user, board, trial)
}

// Seat binds a player name to the agent that plays it.
type Seat struct {
	Name  string
	Agent Agent
}

// EndReason records why a game stopped.
type EndReason int

const (
	EndVictory EndReason = iota
	EndRoundLimit
	EndStalemate
	EndCancelled
)

func (r EndReason) String() string {
	switch r {
	case EndVictory:
		return "victory"
	case EndRoundLimit:
		return "round limit"
	case EndStalemate:
		return "stalemate"
	case EndCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TurnRecord is one entry of the game history.
type TurnRecord struct {
	Round   int
	Seat    int
	Player  string
	Trials  int // attempts used, including the accepted one
	Outcome Outcome
	Forfeit bool
	Err     error // ErrExhaustedRetries for a forfeited turn
}

// Score is a player's standing at the end of a game.
type Score struct {
	Seat   int
	Name   string
	VP     int
	Cards  int
	Nobles int
	Tokens int
}

// Result summarises a finished game.
type Result struct {
	Reason   EndReason
	Winner   int // seat index, -1 unless Reason is EndVictory
	Rounds   int
	Turns    int
	Forfeits int
	Scores   []Score
}

// WinnerName returns the winning player's name, or "" without a winner.
func (r *Result) WinnerName() string {
	if r.Winner < 0 || r.Winner >= len(r.Scores) {
		return ""
	}
	return r.Scores[r.Winner].Name
}

// Engine drives the turn loop for one game. It is not safe for concurrent
// use; independent games each get their own Engine.
type Engine struct {
	board   *Board
	users   []*User
	seats   []Seat
	rules   Rules
	logger  *log.Logger
	history []TurnRecord
	start   token.Stack
	round   int
}

// NewEngine seats players around board. Seat order is turn order.
func NewEngine(board *Board, seats []Seat, logger *log.Logger) (*Engine, error) {
	if len(seats) == 0 {
		return nil, errors.New("game needs at least one player")
	}
	if err := board.Rules().Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	users := make([]*User, len(seats))
	for i, s := range seats {
		if s.Agent == nil {
			return nil, fmt.Errorf("seat %d (%s) has no agent", i, s.Name)
		}
		users[i] = NewUser(i)
	}
	e := &Engine{
		board:  board,
		users:  users,
		seats:  seats,
		rules:  board.Rules(),
		logger: logger,
	}
	e.start = e.TokenTotals()
	return e, nil
}

// Board returns the live board.
func (e *Engine) Board() *Board { return e.board }

// Users returns the live players in seat order.
func (e *Engine) Users() []*User { return e.users }

// Seats returns the seat assignments.
func (e *Engine) Seats() []Seat { return e.seats }

// History returns every turn played so far.
func (e *Engine) History() []TurnRecord { return e.history }

// TokenTotals sums the bank and every player's tokens per color.
func (e *Engine) TokenTotals() token.Stack {
	total := e.board.Bank()
	for _, u := range e.users {
		for _, c := range gem.All {
			total.AddMany(c, u.tokens.Len(c))
		}
	}
	return total
}

func (e *Engine) checkConservation() error {
	now := e.TokenTotals()
	for _, c := range gem.All {
		if now[c] != e.start[c] {
			return &AccountingError{
				Op:  "conservation",
				Err: &token.CountMismatchError{Color: c, Have: now[c], Want: e.start[c]},
			}
		}
	}
	return nil
}

// PlayTurn asks the seat's agent for moves until one resolves or MaxTrials
// attempts have been rejected, in which case the turn is forfeited. The
// returned error is only ever fatal for the game.
func (e *Engine) PlayTurn(seat int) (TurnRecord, error) {
	if seat < 0 || seat >= len(e.seats) {
		return TurnRecord{}, fmt.Errorf("no seat %d", seat)
	}
	s, u := e.seats[seat], e.users[seat]
	rec := TurnRecord{Round: e.round, Seat: seat, Player: s.Name}

	for trial := 0; trial < e.rules.MaxTrials; trial++ {
		m := s.Agent.NextMove(u.Clone(), e.board.Clone(), trial)
		out, err := Resolve(m, u, e.board)
		if err != nil {
			if IsIllegalMove(err) {
				e.logger.Debug("move rejected", "player", s.Name, "trial", trial, "error", err)
				continue
			}
			return rec, fmt.Errorf("player %s: %w", s.Name, err)
		}
		rec.Trials = trial + 1
		rec.Outcome = out
		if err := e.checkConservation(); err != nil {
			return rec, fmt.Errorf("player %s after %s: %w", s.Name, m, err)
		}
		e.logger.Debug("move resolved", "round", e.round, "player", s.Name, "move", m, "trials", rec.Trials, "result", out.Message)
		e.history = append(e.history, rec)
		return rec, nil
	}

	rec.Trials = e.rules.MaxTrials
	rec.Forfeit = true
	rec.Err = fmt.Errorf("player %s after %d trials: %w", s.Name, e.rules.MaxTrials, ErrExhaustedRetries)
	e.logger.Debug("turn forfeited", "round", e.round, "player", s.Name, "error", rec.Err)
	e.history = append(e.history, rec)
	return rec, nil
}

// Run plays whole rounds until a player has reached the victory threshold
// at the end of a round, the round limit is hit, every player forfeits in
// the same round, or ctx is cancelled. A cancelled game returns its partial
// result alongside ctx's error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	for e.round < e.rules.MaxRounds {
		if err := ctx.Err(); err != nil {
			return e.result(EndCancelled), err
		}
		e.round++
		forfeits := 0
		for seat := range e.seats {
			rec, err := e.PlayTurn(seat)
			if err != nil {
				return nil, err
			}
			if rec.Forfeit {
				forfeits++
			}
		}
		if e.leaderVP() >= e.rules.VictoryPoints {
			return e.result(EndVictory), nil
		}
		if forfeits == len(e.seats) {
			return e.result(EndStalemate), nil
		}
	}
	return e.result(EndRoundLimit), nil
}

func (e *Engine) leaderVP() int {
	best := 0
	for _, u := range e.users {
		best = max(best, u.VP())
	}
	return best
}

func (e *Engine) result(reason EndReason) *Result {
	r := &Result{Reason: reason, Winner: -1, Rounds: e.round, Turns: len(e.history)}
	for _, rec := range e.history {
		if rec.Forfeit {
			r.Forfeits++
		}
	}
	for i, u := range e.users {
		r.Scores = append(r.Scores, Score{
			Seat:   i,
			Name:   e.seats[i].Name,
			VP:     u.VP(),
			Cards:  len(u.acquired),
			Nobles: len(u.nobles),
			Tokens: u.TokenTotal(),
		})
	}
	if reason == EndVictory {
		r.Winner = leader(r.Scores)
	}
	return r
}

// leader returns the seat with the most points, breaking ties by fewer
// acquired cards and then by earlier seat.
func leader(scores []Score) int {
	best := -1
	for i, s := range scores {
		if best < 0 {
			best = i
			continue
		}
		b := scores[best]
		if s.VP > b.VP || (s.VP == b.VP && s.Cards < b.Cards) {
			best = i
		}
	}
	return best
}
