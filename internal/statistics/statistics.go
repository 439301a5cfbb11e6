// Package statistics aggregates the results of many simulated games.
package statistics

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/lox/splendor/internal/game"
)

// GameResult is the outcome of one simulated game. Points and Players are
// indexed by configured player, not by seat.
type GameResult struct {
	ID        string `json:"id"`
	Seed      int64  `json:"seed"`
	Reason    string `json:"reason"` // game.EndReason.String()
	Winner    int    `json:"winner"` // configured player index, -1 without a winner
	Rounds    int    `json:"rounds"`
	Turns     int    `json:"turns"`
	Forfeits  int    `json:"forfeits"`
	FirstSeat int    `json:"first_seat"` // configured player who moved first
	Points    []int  `json:"points"`
}

// Series keeps running moments and raw values for one measurement.
type Series struct {
	N      int       `json:"n"`
	Sum    float64   `json:"sum"`
	SumSq  float64   `json:"sum_sq"`
	Values []float64 `json:"-"`
}

// Add records one observation.
func (s *Series) Add(v float64) {
	s.N++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean
func (s *Series) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Series) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return max(0, (s.SumSq-float64(s.N)*mean*mean)/float64(s.N-1))
}

// StdDev returns the sample standard deviation
func (s *Series) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Series) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Series) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median observation
func (s *Series) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the interpolated value at p, from 0.0 to 1.0
func (s *Series) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PlayerStats tracks one configured player across every game.
type PlayerStats struct {
	Label      string `json:"label"`
	Wins       int    `json:"wins"`
	FirstWins  int    `json:"first_wins"` // wins while moving first
	FirstGames int    `json:"first_games"`
	Points     Series `json:"points"`
}

// WinRate returns the fraction of games won.
func (p *PlayerStats) WinRate() float64 {
	if p.Points.N == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Points.N)
}

// Statistics tracks a batch of simulated games
type Statistics struct {
	Games       int           `json:"games"`
	Victories   int           `json:"victories"`
	Stalemates  int           `json:"stalemates"`
	RoundLimits int           `json:"round_limits"`
	Forfeits    int           `json:"forfeits"`
	Rounds      Series        `json:"rounds"`
	Turns       Series        `json:"turns"`
	Players     []PlayerStats `json:"players"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Results     []GameResult  `json:"results,omitempty"`
}

// New returns empty statistics for players with the given labels.
func New(labels ...string) *Statistics {
	s := &Statistics{}
	for _, l := range labels {
		s.Players = append(s.Players, PlayerStats{Label: l})
	}
	return s
}

// Add incorporates a game result.
func (s *Statistics) Add(r GameResult) error {
	if len(r.Points) != len(s.Players) {
		return fmt.Errorf("game %s has %d scores for %d players", r.ID, len(r.Points), len(s.Players))
	}
	switch r.Reason {
	case game.EndVictory.String():
		s.Victories++
	case game.EndStalemate.String():
		s.Stalemates++
	case game.EndRoundLimit.String():
		s.RoundLimits++
	default:
		return fmt.Errorf("game %s has unexpected end reason %q", r.ID, r.Reason)
	}
	s.Games++
	s.Forfeits += r.Forfeits
	s.Rounds.Add(float64(r.Rounds))
	s.Turns.Add(float64(r.Turns))

	for i := range s.Players {
		p := &s.Players[i]
		p.Points.Add(float64(r.Points[i]))
		if r.FirstSeat == i {
			p.FirstGames++
		}
		if r.Winner == i {
			p.Wins++
			if r.FirstSeat == i {
				p.FirstWins++
			}
		}
	}
	s.Results = append(s.Results, r)
	return nil
}

// Validate checks that the counters agree with each other.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if s.Rounds.N != s.Games || s.Turns.N != s.Games {
		return fmt.Errorf("series length (%d rounds, %d turns) does not match games count (%d)",
			s.Rounds.N, s.Turns.N, s.Games)
	}
	wins := 0
	for _, p := range s.Players {
		wins += p.Wins
		if p.Points.N != s.Games {
			return fmt.Errorf("player %s has %d scores for %d games", p.Label, p.Points.N, s.Games)
		}
	}
	if wins != s.Victories {
		return fmt.Errorf("player wins (%d) do not match victories (%d)", wins, s.Victories)
	}
	if s.Victories+s.Stalemates+s.RoundLimits > s.Games {
		return fmt.Errorf("more endings than games")
	}
	return nil
}

// Summary renders a plain-text report.
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Games played: %d (%d victories, %d stalemates, %d round limits)\n",
		s.Games, s.Victories, s.Stalemates, s.RoundLimits)
	if s.Elapsed > 0 {
		fmt.Fprintf(&b, "Elapsed: %s (%.1f games/s)\n", s.Elapsed.Round(time.Millisecond),
			float64(s.Games)/s.Elapsed.Seconds())
	}
	low, high := s.Rounds.ConfidenceInterval95()
	fmt.Fprintf(&b, "Rounds: mean %.2f, median %.1f, sd %.2f, 95%% CI [%.2f, %.2f]\n",
		s.Rounds.Mean(), s.Rounds.Median(), s.Rounds.StdDev(), low, high)
	fmt.Fprintf(&b, "Forfeited turns: %d\n", s.Forfeits)
	for _, p := range s.Players {
		low, high := p.Points.ConfidenceInterval95()
		fmt.Fprintf(&b, "%-16s wins %4d (%5.1f%%), first-seat wins %d/%d, points %.2f [%.2f, %.2f]\n",
			p.Label, p.Wins, p.WinRate()*100, p.FirstWins, p.FirstGames, p.Points.Mean(), low, high)
	}
	return b.String()
}
