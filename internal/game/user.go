package game

import (
	"slices"

	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/token"
)

// User is one player's private state.
type User struct {
	id       int
	vp       int
	hand     []card.Card
	acquired []card.Card
	nobles   []card.Noble
	tokens   token.Stack
}

// NewUser returns a player with nothing in hand and no tokens.
func NewUser(id int) *User {
	return &User{id: id}
}

func (u *User) ID() int { return u.id }

// VP returns the victory points earned from cards and nobles.
func (u *User) VP() int { return u.vp }

// Hand returns a copy of the reserved cards.
func (u *User) Hand() []card.Card { return slices.Clone(u.hand) }

func (u *User) HandSize() int { return len(u.hand) }

// PeekHand returns the reserved card at index i.
func (u *User) PeekHand(i int) (card.Card, bool) {
	if i < 0 || i >= len(u.hand) {
		return card.Card{}, false
	}
	return u.hand[i], true
}

// Acquired returns a copy of the purchased cards in purchase order.
func (u *User) Acquired() []card.Card { return slices.Clone(u.acquired) }

// Nobles returns a copy of the noble tiles that visited this player.
func (u *User) Nobles() []card.Noble { return slices.Clone(u.nobles) }

// Tokens returns a copy of the player's tokens.
func (u *User) Tokens() token.Stack { return u.tokens }

func (u *User) TokenTotal() int { return u.tokens.Total() }

// Bonus counts acquired cards per color.
func (u *User) Bonus() gem.Set {
	var b gem.Set
	for _, c := range u.acquired {
		b.Add(c.Color, 1)
	}
	return b
}

func (u *User) obtain(c card.Card) {
	u.acquired = append(u.acquired, c)
	u.vp += c.Point
}

func (u *User) reserve(c card.Card) {
	u.hand = append(u.hand, c)
}

func (u *User) dropHand(i int) {
	u.hand = slices.Delete(u.hand, i, i+1)
}

// Clone returns a deep copy that shares no mutable state with u.
func (u *User) Clone() *User {
	return &User{
		id:       u.id,
		vp:       u.vp,
		hand:     slices.Clone(u.hand),
		acquired: slices.Clone(u.acquired),
		nobles:   slices.Clone(u.nobles),
		tokens:   u.tokens,
	}
}
