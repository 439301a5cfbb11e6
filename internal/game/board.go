package game

import (
	"math/rand/v2"
	"slices"

	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/token"
)

// Grid dimensions of the visible card area.
const (
	Rows = 3
	Cols = 4
)

// RowLevel returns the card level shown in a grid row. Row 0 holds the
// most valuable cards.
func RowLevel(row int) card.Level {
	return card.Level3 - card.Level(row)
}

type slot struct {
	card card.Card
	ok   bool
}

// Board is the shared game state: the visible grid, the face-down piles,
// the token bank and the remaining noble tiles.
type Board struct {
	rules  Rules
	grid   [Rows][Cols]slot
	piles  *card.Stack
	bank   token.Stack
	nobles []card.Noble
}

// NewBoard deals a fresh board. Cards are shuffled into their level piles
// and the grid is filled from them; the bank is filled to the rule
// capacities; the noble pool is shuffled and trimmed to the number kept
// for players. A nil rng keeps the input order.
func NewBoard(cards []card.Card, nobles []card.Noble, players int, rules Rules, rng *rand.Rand) *Board {
	b := &Board{
		rules: rules,
		piles: card.NewStack(cards, rng),
		bank:  token.Filled(rules.BankCapacity, rules.GoldCapacity),
	}
	for row := range Rows {
		for col := range Cols {
			b.refill(row, col)
		}
	}

	pool := slices.Clone(nobles)
	if rng != nil {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}
	keep := min(rules.NoblesFor(players), len(pool))
	b.nobles = pool[:keep]
	return b
}

func validSlot(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (b *Board) refill(row, col int) {
	c, ok := b.piles.Draw(RowLevel(row))
	b.grid[row][col] = slot{card: c, ok: ok}
}

// Rules returns the rule set the board was dealt with.
func (b *Board) Rules() Rules {
	return b.rules
}

// Peek returns the card at row, col without removing it.
func (b *Board) Peek(row, col int) (card.Card, bool) {
	if !validSlot(row, col) {
		return card.Card{}, false
	}
	s := b.grid[row][col]
	return s.card, s.ok
}

// Take removes the card at row, col and refills the slot from the row's
// pile. The slot stays empty once the pile runs out.
func (b *Board) Take(row, col int) (card.Card, bool) {
	c, ok := b.Peek(row, col)
	if !ok {
		return card.Card{}, false
	}
	b.refill(row, col)
	return c, true
}

// TakeFromPile draws the top face-down card of a level.
func (b *Board) TakeFromPile(l card.Level) (card.Card, bool) {
	return b.piles.Draw(l)
}

// PileLen returns the number of face-down cards left for a level.
func (b *Board) PileLen(l card.Level) int {
	return b.piles.Len(l)
}

// TakeBankToken removes one token of c from the bank, reporting whether
// one was available.
func (b *Board) TakeBankToken(c gem.Color) bool {
	return b.bank.Remove(c) == nil
}

// CanTakeTwo reports whether the bank holds enough of c for a double take.
func (b *Board) CanTakeTwo(c gem.Color) bool {
	return c.IsGem() && b.bank.Len(c) >= b.rules.DoubleTakeMinimum
}

// RequiredCost sums the costs of every visible card.
func (b *Board) RequiredCost() gem.Set {
	var total gem.Set
	for row := range Rows {
		for col := range Cols {
			if s := b.grid[row][col]; s.ok {
				total = total.Plus(s.card.Cost)
			}
		}
	}
	return total
}

// Bank returns a copy of the bank.
func (b *Board) Bank() token.Stack {
	return b.bank
}

// Nobles returns a copy of the remaining noble tiles.
func (b *Board) Nobles() []card.Noble {
	return slices.Clone(b.nobles)
}

// VisibleCards returns the number of filled grid slots.
func (b *Board) VisibleCards() int {
	n := 0
	for row := range Rows {
		for col := range Cols {
			if b.grid[row][col].ok {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy that shares no mutable state with b.
func (b *Board) Clone() *Board {
	return &Board{
		rules:  b.rules,
		grid:   b.grid,
		piles:  b.piles.Clone(),
		bank:   b.bank,
		nobles: slices.Clone(b.nobles),
	}
}
