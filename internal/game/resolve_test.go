package game

import (
	"errors"
	"testing"

	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blackThree() card.Card {
	return card.Card{Level: card.Level1, Color: gem.Red, Point: 1, Cost: gem.Set{gem.Black: 3}}
}

func requireReason(t *testing.T, err error, want Reason) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalMove), "expected illegal move, got %v", err)
	got, ok := ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, want, got, "reason")
}

func TestTakeTwoSameNeedsFourInBank(t *testing.T) {
	t.Parallel()

	b := NewTestBoard(WithBank(token.Stack{gem.Black: 4}))
	u := NewTestUser(0)

	_, err := Resolve(TakeTwoSame(gem.Black), u, b)
	require.NoError(t, err)
	bank := b.Bank()
	assert.Equal(t, 2, bank.Len(gem.Black))
	tokens := u.Tokens()
	assert.Equal(t, 2, tokens.Len(gem.Black))

	_, err = Resolve(TakeTwoSame(gem.Black), u, b)
	requireReason(t, err, ReasonBankScarce)
	bank = b.Bank()
	assert.Equal(t, 2, bank.Len(gem.Black), "failed move must not touch the bank")
	tokens = u.Tokens()
	assert.Equal(t, 2, tokens.Len(gem.Black))
}

func TestTakeTwoSameRespectsTokenLimit(t *testing.T) {
	t.Parallel()

	b := NewTestBoard()
	u := NewTestUser(0, WithTokens(token.Stack{gem.White: 5, gem.Red: 4}))

	_, err := Resolve(TakeTwoSame(gem.Black), u, b)
	requireReason(t, err, ReasonTokenLimit)
	assert.Equal(t, 9, u.TokenTotal())

	u = NewTestUser(0, WithTokens(token.Stack{gem.White: 5, gem.Red: 3}))
	_, err = Resolve(TakeTwoSame(gem.Black), u, b)
	require.NoError(t, err)
	assert.Equal(t, 10, u.TokenTotal())
}

func TestTakeTwoSameRejectsGold(t *testing.T) {
	t.Parallel()

	_, err := Resolve(TakeTwoSame(gem.Gold), NewTestUser(0), NewTestBoard())
	requireReason(t, err, ReasonInvalidArgument)
}

func TestTakeThreeDistinct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bank    token.Stack
		held    token.Stack
		move    Move
		gained  token.Stack
		reason  Reason
		illegal bool
	}{
		{
			name:   "all three available",
			bank:   token.Filled(5, 5),
			move:   TakeThreeDistinct(gem.Red, gem.Blue, gem.Green),
			gained: token.Stack{gem.Red: 1, gem.Blue: 1, gem.Green: 1},
		},
		{
			name:   "skips empty bank colors",
			bank:   token.Stack{gem.Red: 1},
			move:   TakeThreeDistinct(gem.Red, gem.Blue, gem.Green),
			gained: token.Stack{gem.Red: 1},
		},
		{
			name:   "stops at the cap",
			bank:   token.Filled(5, 5),
			held:   token.Stack{gem.Black: 9},
			move:   TakeThreeDistinct(gem.Red, gem.Blue, gem.Green),
			gained: token.Stack{gem.Red: 1},
		},
		{
			name:    "nothing available",
			bank:    token.Stack{gem.Black: 5},
			move:    TakeThreeDistinct(gem.Red, gem.Blue, gem.Green),
			reason:  ReasonNothingTaken,
			illegal: true,
		},
		{
			name:    "already at the cap",
			bank:    token.Filled(5, 5),
			held:    token.Stack{gem.Black: 10},
			move:    TakeThreeDistinct(gem.Red, gem.Blue, gem.Green),
			reason:  ReasonTokenLimit,
			illegal: true,
		},
		{
			name:    "repeated color",
			bank:    token.Filled(5, 5),
			move:    TakeThreeDistinct(gem.Red, gem.Red, gem.Green),
			reason:  ReasonInvalidArgument,
			illegal: true,
		},
		{
			name:    "gold",
			bank:    token.Filled(5, 5),
			move:    TakeThreeDistinct(gem.Red, gem.Gold, gem.Green),
			reason:  ReasonInvalidArgument,
			illegal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewTestBoard(WithBank(tt.bank))
			u := NewTestUser(0, WithTokens(tt.held))

			out, err := Resolve(tt.move, u, b)
			if tt.illegal {
				requireReason(t, err, tt.reason)
				assert.Equal(t, tt.bank, b.Bank())
				assert.Equal(t, tt.held, u.Tokens())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.gained, out.Gained)
			assert.LessOrEqual(t, u.TokenTotal(), b.Rules().TokenLimit)
		})
	}
}

func TestBuyBoardCardUnaffordableMovesNothing(t *testing.T) {
	t.Parallel()

	b := NewTestBoard(WithSlot(2, 0, blackThree()))
	u := NewTestUser(0, WithTokens(token.Stack{gem.Gold: 2}))
	bankBefore := b.Bank()

	assert.False(t, CanAfford(u, blackThree()))
	_, err := Resolve(BuyBoardCard(2, 0), u, b)
	requireReason(t, err, ReasonInsufficientFunds)

	assert.Equal(t, bankBefore, b.Bank())
	assert.Equal(t, token.Stack{gem.Gold: 2}, u.Tokens())
	c, ok := b.Peek(2, 0)
	require.True(t, ok)
	assert.Equal(t, blackThree(), c)
	assert.Empty(t, u.Acquired())
}

func TestBuyBoardCardWithBonus(t *testing.T) {
	t.Parallel()

	b := NewTestBoard(WithSlot(2, 0, blackThree()))
	u := NewTestUser(0, WithBonus(gem.Black, 2), WithTokens(token.Stack{gem.Black: 1}))
	bankBefore := b.Bank()

	paid, ok := Quote(u, blackThree())
	require.True(t, ok)
	assert.Equal(t, token.Stack{gem.Black: 1}, paid)

	out, err := Resolve(BuyBoardCard(2, 0), u, b)
	require.NoError(t, err)
	assert.Equal(t, token.Stack{gem.Black: 1}, out.Paid)
	assert.Equal(t, "bought "+blackThree().String()+" paying 1K", out.Message)
	assert.Equal(t, token.Stack{}, u.Tokens())
	bank := b.Bank()
	assert.Equal(t, bankBefore.Len(gem.Black)+1, bank.Len(gem.Black))
	assert.Equal(t, bankBefore.Len(gem.Gold), bank.Len(gem.Gold))
	assert.Len(t, u.Acquired(), 3)
	assert.Equal(t, 1, u.VP())
	_, ok = b.Peek(2, 0)
	assert.False(t, ok, "empty pile leaves the slot empty")
}

func TestGoldCoversOnlyDeficits(t *testing.T) {
	t.Parallel()

	c := card.Card{Level: card.Level2, Color: gem.Blue, Cost: gem.Set{gem.Black: 2, gem.White: 2}}

	// A surplus of white never pays for black.
	rich := NewTestUser(0, WithTokens(token.Stack{gem.White: 5, gem.Black: 1}))
	assert.False(t, CanAfford(rich, c))

	withGold := NewTestUser(0, WithTokens(token.Stack{gem.White: 5, gem.Black: 1, gem.Gold: 1}))
	paid, ok := Quote(withGold, c)
	require.True(t, ok)
	assert.Equal(t, token.Stack{gem.Black: 1, gem.White: 2, gem.Gold: 1}, paid)
}

func TestRefillFromPile(t *testing.T) {
	t.Parallel()

	next := card.Card{Level: card.Level1, Color: gem.Green, Cost: gem.Set{gem.Red: 4}}
	b := NewTestBoard(
		WithSlot(2, 1, card.Card{Level: card.Level1, Color: gem.White}),
		WithPile(card.Level1, next),
	)
	u := NewTestUser(0)

	_, err := Resolve(BuyBoardCard(2, 1), u, b)
	require.NoError(t, err)
	c, ok := b.Peek(2, 1)
	require.True(t, ok)
	assert.Equal(t, next, c)
	assert.Equal(t, 0, b.PileLen(card.Level1))
}

func TestReserveBoardCard(t *testing.T) {
	t.Parallel()

	target := card.Card{Level: card.Level3, Color: gem.Red, Point: 4, Cost: gem.Set{gem.Red: 7}}

	t.Run("grants gold", func(t *testing.T) {
		t.Parallel()
		b := NewTestBoard(WithSlot(0, 2, target))
		u := NewTestUser(0)

		out, err := Resolve(ReserveBoardCard(0, 2), u, b)
		require.NoError(t, err)
		assert.Equal(t, []card.Card{target}, u.Hand())
		assert.Equal(t, token.Stack{gem.Gold: 1}, out.Gained)
		bank := b.Bank()
		assert.Equal(t, 4, bank.Len(gem.Gold))
	})

	t.Run("no gold left", func(t *testing.T) {
		t.Parallel()
		b := NewTestBoard(WithSlot(0, 2, target), WithBank(token.Filled(5, 0)))
		u := NewTestUser(0)

		out, err := Resolve(ReserveBoardCard(0, 2), u, b)
		require.NoError(t, err)
		assert.Equal(t, 1, u.HandSize())
		assert.Equal(t, token.Stack{}, out.Gained)
	})

	t.Run("hand full", func(t *testing.T) {
		t.Parallel()
		b := NewTestBoard(WithSlot(0, 2, target))
		u := NewTestUser(0, WithHand(target, target, target))

		_, err := Resolve(ReserveBoardCard(0, 2), u, b)
		requireReason(t, err, ReasonHandFull)
		_, ok := b.Peek(0, 2)
		assert.True(t, ok)
	})

	t.Run("empty slot", func(t *testing.T) {
		t.Parallel()
		_, err := Resolve(ReserveBoardCard(1, 1), NewTestUser(0), NewTestBoard())
		requireReason(t, err, ReasonEmptySlot)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		_, err := Resolve(ReserveBoardCard(3, 0), NewTestUser(0), NewTestBoard())
		requireReason(t, err, ReasonInvalidArgument)
	})
}

func TestReserveFromPile(t *testing.T) {
	t.Parallel()

	top := card.Card{Level: card.Level2, Color: gem.Black, Point: 2, Cost: gem.Set{gem.Blue: 5}}
	b := NewTestBoard(WithPile(card.Level2, top))
	u := NewTestUser(0)

	_, err := Resolve(ReserveFromPile(card.Level2), u, b)
	require.NoError(t, err)
	assert.Equal(t, []card.Card{top}, u.Hand())

	_, err = Resolve(ReserveFromPile(card.Level2), u, b)
	requireReason(t, err, ReasonEmptySlot)

	_, err = Resolve(ReserveFromPile(card.Level(4)), u, b)
	requireReason(t, err, ReasonInvalidArgument)
}

func TestBuyFromHand(t *testing.T) {
	t.Parallel()

	cheap := card.Card{Level: card.Level1, Color: gem.Green, Point: 1, Cost: gem.Set{gem.Red: 1}}
	dear := card.Card{Level: card.Level3, Color: gem.Blue, Point: 5, Cost: gem.Set{gem.Red: 7}}
	b := NewTestBoard()
	u := NewTestUser(0, WithHand(dear, cheap), WithTokens(token.Stack{gem.Red: 1}))

	_, err := Resolve(BuyFromHand(0), u, b)
	requireReason(t, err, ReasonInsufficientFunds)

	_, err = Resolve(BuyFromHand(2), u, b)
	requireReason(t, err, ReasonEmptySlot)

	out, err := Resolve(BuyFromHand(1), u, b)
	require.NoError(t, err)
	require.NotNil(t, out.Card)
	assert.Equal(t, cheap, *out.Card)
	assert.Equal(t, []card.Card{dear}, u.Hand())
	assert.Equal(t, []card.Card{cheap}, u.Acquired())
	assert.Equal(t, 1, u.VP())
}

func TestNobleVisit(t *testing.T) {
	t.Parallel()

	first := card.Noble{ID: 1, Point: 3, Bonus: gem.Set{gem.Red: 2}}
	second := card.Noble{ID: 2, Point: 3, Bonus: gem.Set{gem.Red: 1, gem.Blue: 1}}
	other := card.Noble{ID: 3, Point: 3, Bonus: gem.Set{gem.Green: 4}}
	buy := card.Card{Level: card.Level1, Color: gem.Red}

	b := NewTestBoard(
		WithNobles(first, second, other),
		WithSlot(2, 0, buy),
		WithSlot(2, 1, buy),
	)
	u := NewTestUser(0, WithBonus(gem.Red, 1), WithBonus(gem.Blue, 1))

	out, err := Resolve(BuyBoardCard(2, 0), u, b)
	require.NoError(t, err)
	assert.Equal(t, []card.Noble{first, second}, out.Nobles, "several nobles may visit at once")
	assert.Equal(t, 6, u.VP())
	assert.Equal(t, []card.Noble{other}, b.Nobles())

	out, err = Resolve(BuyBoardCard(2, 1), u, b)
	require.NoError(t, err)
	assert.Empty(t, out.Nobles, "a noble visits only once")
	assert.Equal(t, 6, u.VP())
	assert.Len(t, u.Nobles(), 2)
}

func TestMoveTable(t *testing.T) {
	t.Parallel()

	moves := CandidateMoves()
	require.Len(t, moves, NumCandidates)

	assert.Equal(t, ReserveBoardCard(0, 0), moves[0])
	assert.Equal(t, ReserveBoardCard(2, 3), moves[11])
	assert.Equal(t, BuyBoardCard(0, 0), moves[12])
	assert.Equal(t, BuyBoardCard(2, 3), moves[23])
	assert.Equal(t, TakeTwoSame(gem.Black), moves[24])
	assert.Equal(t, TakeTwoSame(gem.Green), moves[28])
	assert.Equal(t, TakeThreeDistinct(gem.Black, gem.White, gem.Red), moves[29])
	assert.Equal(t, TakeThreeDistinct(gem.Black, gem.White, gem.Blue), moves[30])
	assert.Equal(t, TakeThreeDistinct(gem.Red, gem.Blue, gem.Green), moves[38])
	assert.Equal(t, ReserveFromPile(card.Level1), moves[39])
	assert.Equal(t, ReserveFromPile(card.Level3), moves[41])
	assert.Equal(t, BuyFromHand(0), moves[42])
	assert.Equal(t, BuyFromHand(2), moves[44])

	m, err := MoveFromIndex(30)
	require.NoError(t, err)
	assert.Equal(t, moves[30], m)
	_, err = MoveFromIndex(NumCandidates)
	assert.Error(t, err)

	moves[0] = BuyFromHand(1)
	assert.Equal(t, ReserveBoardCard(0, 0), CandidateMoves()[0], "table is returned by copy")
}

func TestParseMoveRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range CandidateMoves() {
		got, err := ParseMove(m.String())
		require.NoError(t, err, m.String())
		assert.Equal(t, m, got)
	}

	for _, bad := range []string{"", "fly 1", "buy 1", "take2 purple", "take3 red blue", "buy-hand x"} {
		_, err := ParseMove(bad)
		assert.Error(t, err, bad)
	}
}
