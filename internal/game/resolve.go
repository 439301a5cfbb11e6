package game

import (
	"fmt"
	"strings"

	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/token"
)

// Outcome describes what a resolved move changed.
type Outcome struct {
	Move    Move
	Message string
	Gained  token.Stack  // moved from the bank to the player
	Paid    token.Stack  // moved from the player to the bank
	Card    *card.Card   // the card reserved or bought, if any
	Nobles  []card.Noble // tiles that visited after a purchase
}

// Resolve validates m against the current state and applies it to u and b.
// An illegal move returns an *IllegalMoveError and leaves both untouched.
// An *AccountingError means the state is no longer trustworthy.
func Resolve(m Move, u *User, b *Board) (Outcome, error) {
	var (
		out Outcome
		err error
	)
	switch m.Kind {
	case ReserveBoard:
		out, err = reserveBoardCard(m, u, b)
	case BuyBoard:
		out, err = buyBoardCard(m, u, b)
	case TakeTwo:
		out, err = takeTwoSame(m, u, b)
	case TakeThree:
		out, err = takeThreeDistinct(m, u, b)
	case ReservePile:
		out, err = reserveFromPile(m, u, b)
	case BuyHand:
		out, err = buyFromHand(m, u, b)
	default:
		return Outcome{}, illegal(m, ReasonInvalidArgument)
	}
	if err != nil {
		return Outcome{}, err
	}
	out.Move = m
	return out, nil
}

func reserveBoardCard(m Move, u *User, b *Board) (Outcome, error) {
	if !validSlot(m.Row, m.Col) {
		return Outcome{}, illegal(m, ReasonInvalidArgument)
	}
	if u.HandSize() >= b.rules.HandLimit {
		return Outcome{}, illegal(m, ReasonHandFull)
	}
	c, ok := b.Take(m.Row, m.Col)
	if !ok {
		return Outcome{}, illegal(m, ReasonEmptySlot)
	}
	return reserve(u, b, c), nil
}

func reserveFromPile(m Move, u *User, b *Board) (Outcome, error) {
	if !m.Level.Valid() {
		return Outcome{}, illegal(m, ReasonInvalidArgument)
	}
	if u.HandSize() >= b.rules.HandLimit {
		return Outcome{}, illegal(m, ReasonHandFull)
	}
	c, ok := b.TakeFromPile(m.Level)
	if !ok {
		return Outcome{}, illegal(m, ReasonEmptySlot)
	}
	return reserve(u, b, c), nil
}

// reserve puts c in the player's hand and grants one gold token when the
// bank still has one.
func reserve(u *User, b *Board, c card.Card) Outcome {
	u.reserve(c)
	out := Outcome{Card: &c}
	if b.TakeBankToken(gem.Gold) {
		u.tokens.Add(gem.Gold)
		out.Gained[gem.Gold] = 1
		out.Message = fmt.Sprintf("reserved %s and took a gold token", c)
	} else {
		out.Message = fmt.Sprintf("reserved %s, no gold left in the bank", c)
	}
	return out
}

func buyBoardCard(m Move, u *User, b *Board) (Outcome, error) {
	if !validSlot(m.Row, m.Col) {
		return Outcome{}, illegal(m, ReasonInvalidArgument)
	}
	c, ok := b.Peek(m.Row, m.Col)
	if !ok {
		return Outcome{}, illegal(m, ReasonEmptySlot)
	}
	if !CanAfford(u, c) {
		return Outcome{}, illegal(m, ReasonInsufficientFunds)
	}
	paid, err := settle(u, c, &b.bank)
	if err != nil {
		return Outcome{}, err
	}
	b.Take(m.Row, m.Col)
	return acquire(u, b, c, paid), nil
}

func buyFromHand(m Move, u *User, b *Board) (Outcome, error) {
	if m.Index < 0 || m.Index >= b.rules.HandLimit {
		return Outcome{}, illegal(m, ReasonInvalidArgument)
	}
	c, ok := u.PeekHand(m.Index)
	if !ok {
		return Outcome{}, illegal(m, ReasonEmptySlot)
	}
	if !CanAfford(u, c) {
		return Outcome{}, illegal(m, ReasonInsufficientFunds)
	}
	paid, err := settle(u, c, &b.bank)
	if err != nil {
		return Outcome{}, err
	}
	u.dropHand(m.Index)
	return acquire(u, b, c, paid), nil
}

func acquire(u *User, b *Board, c card.Card, paid token.Stack) Outcome {
	u.obtain(c)
	out := Outcome{Card: &c, Paid: paid, Nobles: visit(u, b)}

	var msg strings.Builder
	fmt.Fprintf(&msg, "bought %s", c)
	if paid.Total() > 0 {
		fmt.Fprintf(&msg, " paying %s", paid)
	}
	for _, n := range out.Nobles {
		fmt.Fprintf(&msg, ", visited by %s", n)
	}
	out.Message = msg.String()
	return out
}

// visit awards every remaining noble whose requirement the player's bonus
// now covers. Awarded tiles leave the board so each is granted once.
func visit(u *User, b *Board) []card.Noble {
	bonus := u.Bonus()
	var awarded []card.Noble
	kept := b.nobles[:0]
	for _, n := range b.nobles {
		if n.CanVisit(bonus) {
			awarded = append(awarded, n)
			u.nobles = append(u.nobles, n)
			u.vp += n.Point
			continue
		}
		kept = append(kept, n)
	}
	b.nobles = kept
	return awarded
}

func takeTwoSame(m Move, u *User, b *Board) (Outcome, error) {
	c := m.Colors[0]
	if !c.IsGem() {
		return Outcome{}, illegal(m, ReasonInvalidArgument)
	}
	if !b.CanTakeTwo(c) {
		return Outcome{}, illegal(m, ReasonBankScarce)
	}
	if u.TokenTotal()+2 > b.rules.TokenLimit {
		return Outcome{}, illegal(m, ReasonTokenLimit)
	}
	if err := b.bank.Transfer(&u.tokens, c, 2); err != nil {
		return Outcome{}, &AccountingError{Op: "take two", Err: err}
	}
	out := Outcome{Message: fmt.Sprintf("took two %s", c)}
	out.Gained[c] = 2
	return out, nil
}

func takeThreeDistinct(m Move, u *User, b *Board) (Outcome, error) {
	cs := m.Colors
	for _, c := range cs {
		if !c.IsGem() {
			return Outcome{}, illegal(m, ReasonInvalidArgument)
		}
	}
	if cs[0] == cs[1] || cs[0] == cs[2] || cs[1] == cs[2] {
		return Outcome{}, illegal(m, ReasonInvalidArgument)
	}
	if u.TokenTotal() >= b.rules.TokenLimit {
		return Outcome{}, illegal(m, ReasonTokenLimit)
	}

	var out Outcome
	for _, c := range cs {
		if u.TokenTotal() >= b.rules.TokenLimit {
			break
		}
		if b.TakeBankToken(c) {
			u.tokens.Add(c)
			out.Gained[c]++
		}
	}
	if out.Gained.Total() == 0 {
		return Outcome{}, illegal(m, ReasonNothingTaken)
	}
	out.Message = fmt.Sprintf("took %s", out.Gained)
	return out, nil
}
