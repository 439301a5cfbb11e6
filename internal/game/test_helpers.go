package game

import (
	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/token"
)

// TestBoardOption configures test board creation
type TestBoardOption func(*Board)

// WithRules replaces the rule set.
func WithRules(r Rules) TestBoardOption {
	return func(b *Board) { b.rules = r }
}

// WithSlot places c face up at row, col.
func WithSlot(row, col int, c card.Card) TestBoardOption {
	return func(b *Board) { b.grid[row][col] = slot{card: c, ok: true} }
}

// WithPile replaces the face-down pile for the cards' level. Cards are
// drawn from the end of the list first.
func WithPile(l card.Level, cards ...card.Card) TestBoardOption {
	return func(b *Board) {
		rest := make([]card.Card, 0)
		for _, lv := range card.Levels {
			if lv == l {
				continue
			}
			for b.piles.Len(lv) > 0 {
				c, _ := b.piles.Draw(lv)
				rest = append([]card.Card{c}, rest...)
			}
		}
		all := append(rest, cards...)
		for i := range all {
			if all[i].Level == 0 {
				all[i].Level = l
			}
		}
		b.piles = card.NewStack(all, nil)
	}
}

// WithBank sets the bank contents.
func WithBank(s token.Stack) TestBoardOption {
	return func(b *Board) { b.bank = s }
}

// WithNobles sets the noble tiles in play.
func WithNobles(nobles ...card.Noble) TestBoardOption {
	return func(b *Board) { b.nobles = append([]card.Noble(nil), nobles...) }
}

// NewTestBoard creates an empty board with a full bank and default rules.
// Grid slots, piles and nobles are empty unless set by options.
func NewTestBoard(opts ...TestBoardOption) *Board {
	rules := DefaultRules()
	b := &Board{
		rules: rules,
		piles: card.NewStack(nil, nil),
		bank:  token.Filled(rules.BankCapacity, rules.GoldCapacity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// TestUserOption configures test user creation
type TestUserOption func(*User)

// WithTokens sets the player's tokens.
func WithTokens(s token.Stack) TestUserOption {
	return func(u *User) { u.tokens = s }
}

// WithAcquired gives the player purchased cards and their points.
func WithAcquired(cards ...card.Card) TestUserOption {
	return func(u *User) {
		for _, c := range cards {
			u.obtain(c)
		}
	}
}

// WithBonus gives the player n zero-point level 1 cards of color c.
func WithBonus(c gem.Color, n int) TestUserOption {
	return func(u *User) {
		for range n {
			u.obtain(card.Card{Level: card.Level1, Color: c})
		}
	}
}

// WithHand gives the player reserved cards.
func WithHand(cards ...card.Card) TestUserOption {
	return func(u *User) { u.hand = append(u.hand, cards...) }
}

// NewTestUser creates a player for testing.
func NewTestUser(id int, opts ...TestUserOption) *User {
	u := NewUser(id)
	for _, opt := range opts {
		opt(u)
	}
	return u
}
