package game

import (
	"fmt"

	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/token"
)

// goldBalance starts from the user's gold tokens and subtracts, for each
// color, whatever tokens plus bonus leave uncovered. Gold is the only
// bridge between colors: a surplus in one color never pays another.
func goldBalance(u *User, c card.Card) int {
	bonus := u.Bonus()
	gold := u.tokens.Len(gem.Gold)
	for _, col := range gem.Gems {
		deficit := c.Cost[col] - (u.tokens.Len(col) + bonus[col])
		if deficit > 0 {
			gold -= deficit
		}
	}
	return gold
}

// CanAfford reports whether u can pay for c with tokens, bonuses and gold.
func CanAfford(u *User, c card.Card) bool {
	return goldBalance(u, c) >= 0
}

// Quote returns the tokens u would hand back to the bank to buy c: each
// color's own tokens first, then gold for the remainder. ok is false when
// the card is not affordable.
func Quote(u *User, c card.Card) (paid token.Stack, ok bool) {
	if !CanAfford(u, c) {
		return token.Stack{}, false
	}
	bonus := u.Bonus()
	for _, col := range gem.Gems {
		need := c.Cost[col] - bonus[col]
		if need <= 0 {
			continue
		}
		own := min(need, u.tokens.Len(col))
		paid[col] = own
		paid[gem.Gold] += need - own
	}
	return paid, true
}

// settle moves the quoted payment from the user to the bank. The whole
// payment is checked against the user's holdings before any token moves.
func settle(u *User, c card.Card, bank *token.Stack) (token.Stack, error) {
	paid, ok := Quote(u, c)
	if !ok {
		return token.Stack{}, &AccountingError{Op: "settle payment", Err: fmt.Errorf("%s is not affordable", c)}
	}
	for _, col := range gem.All {
		if have := u.tokens.Len(col); have < paid[col] {
			return token.Stack{}, &AccountingError{
				Op:  "settle payment",
				Err: &token.CountMismatchError{Color: col, Have: have, Want: paid[col]},
			}
		}
	}
	for _, col := range gem.All {
		if err := u.tokens.Transfer(bank, col, paid[col]); err != nil {
			return token.Stack{}, &AccountingError{Op: "settle payment", Err: err}
		}
	}
	return paid, nil
}
