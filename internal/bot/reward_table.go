package bot

import (
	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/game"
)

// scarcityWeight scales every color value.
const scarcityWeight = 0.3

// Values holds the heuristic worth of one token of each color.
type Values [gem.NumColors]float64

// ColorValues weighs each collectible color by how little of the visible
// demand for it the player's bonus already covers. A color nobody needs is
// worth 0. Gold is worth as much as the most valuable color.
func ColorValues(u *game.User, b *game.Board) Values {
	var v Values
	required := b.RequiredCost()
	bonus := u.Bonus()
	for _, c := range gem.Gems {
		if required[c] == 0 {
			continue
		}
		v[c] = scarcityWeight * (1 - float64(bonus[c])/float64(required[c]))
	}
	best := v[gem.Black]
	for _, c := range gem.Gems {
		best = max(best, v[c])
	}
	v[gem.Gold] = best
	return v
}

// Reward is the evaluation of one candidate move.
type Reward struct {
	Move  game.Move
	Legal bool
	Score float64
}

// ActionRewardTable scores the fixed candidate move table one ply ahead.
// A table is reused across decisions and is not safe for concurrent use.
type ActionRewardTable struct {
	values  Values
	rewards [game.NumCandidates]Reward
}

// Estimate plays every candidate against private copies of u and b and
// scores the legal ones. u and b are never modified.
func (t *ActionRewardTable) Estimate(u *game.User, b *game.Board) {
	t.values = ColorValues(u, b)
	for i, m := range game.CandidateMoves() {
		out, err := game.Resolve(m, u.Clone(), b.Clone())
		if err != nil {
			t.rewards[i] = Reward{Move: m}
			continue
		}
		t.rewards[i] = Reward{Move: m, Legal: true, Score: t.score(out)}
	}
}

func (t *ActionRewardTable) score(out game.Outcome) float64 {
	switch out.Move.Kind {
	case game.TakeTwo, game.TakeThree:
		total := 0.0
		for _, c := range gem.Gems {
			total += float64(out.Gained[c]) * t.values[c]
		}
		return total
	case game.BuyBoard, game.BuyHand:
		return float64(out.Card.Point) + t.values[out.Card.Color]
	case game.ReserveBoard:
		if out.Gained[gem.Gold] > 0 {
			return t.values[gem.Gold]
		}
	}
	return 0
}

// Values returns the color values of the last estimate.
func (t *ActionRewardTable) Values() Values {
	return t.values
}

// Rewards returns the last estimate in candidate table order.
func (t *ActionRewardTable) Rewards() []Reward {
	out := t.rewards
	return out[:]
}

// Choice returns the first candidate with the strictly highest positive
// score. When nothing scores above zero it returns ReserveBoardCard(0, 0)
// and false, whether or not that move is legal; callers should fall back
// to another way of picking a move.
func (t *ActionRewardTable) Choice() (game.Move, bool) {
	best, found := 0.0, -1
	for i, r := range t.rewards {
		if r.Legal && r.Score > best {
			best, found = r.Score, i
		}
	}
	if found < 0 {
		return game.ReserveBoardCard(0, 0), false
	}
	return t.rewards[found].Move, true
}

// Choose estimates and returns the chosen move.
func (t *ActionRewardTable) Choose(u *game.User, b *game.Board) game.Move {
	t.Estimate(u, b)
	m, _ := t.Choice()
	return m
}
