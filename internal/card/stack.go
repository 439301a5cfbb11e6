package card

import (
	"math/rand/v2"
	"slices"
)

// Stack is the set of three face-down draw piles, one per level.
// The top of a pile is the end of its slice.
type Stack struct {
	piles [len(Levels)][]Card
}

// NewStack partitions cards by level and shuffles each pile with rng.
// A nil rng keeps the input order, which tests rely on.
// Cards with an invalid level are dropped.
func NewStack(cards []Card, rng *rand.Rand) *Stack {
	s := &Stack{}
	for _, c := range cards {
		if !c.Level.Valid() {
			continue
		}
		idx := c.Level - Level1
		s.piles[idx] = append(s.piles[idx], c)
	}
	if rng != nil {
		for i := range s.piles {
			pile := s.piles[i]
			rng.Shuffle(len(pile), func(a, b int) {
				pile[a], pile[b] = pile[b], pile[a]
			})
		}
	}
	return s
}

// Draw pops the top card of the level's pile.
func (s *Stack) Draw(l Level) (Card, bool) {
	if !l.Valid() {
		return Card{}, false
	}
	idx := l - Level1
	pile := s.piles[idx]
	if len(pile) == 0 {
		return Card{}, false
	}
	top := pile[len(pile)-1]
	s.piles[idx] = pile[:len(pile)-1]
	return top, true
}

// Len returns the number of cards left in the level's pile.
func (s *Stack) Len(l Level) int {
	if !l.Valid() {
		return 0
	}
	return len(s.piles[l-Level1])
}

// Total returns the number of cards left across all piles.
func (s *Stack) Total() int {
	total := 0
	for _, pile := range s.piles {
		total += len(pile)
	}
	return total
}

// Clone returns an independent copy of every pile.
func (s *Stack) Clone() *Stack {
	out := &Stack{}
	for i, pile := range s.piles {
		out.piles[i] = slices.Clone(pile)
	}
	return out
}
