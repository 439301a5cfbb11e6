package render

import (
	"io"
	"strings"
	"testing"

	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/game"
	"github.com/lox/splendor/internal/token"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func plain() *Renderer {
	return NewWithProfile(io.Discard, termenv.Ascii)
}

func TestCard(t *testing.T) {
	t.Parallel()

	c := card.Card{Level: card.Level2, Color: gem.Red, Point: 2, Cost: gem.Set{gem.Black: 3, gem.White: 2}}
	assert.Equal(t, "[R 2pt] 3K 2W", plain().Card(c))

	free := card.Card{Level: card.Level1, Color: gem.Blue}
	assert.Equal(t, "[B 0pt] -", plain().Card(free))
}

func TestBoard(t *testing.T) {
	t.Parallel()

	b := game.NewTestBoard(
		game.WithSlot(0, 1, card.Card{Level: card.Level3, Color: gem.Green, Point: 4, Cost: gem.Set{gem.Blue: 7}}),
		game.WithNobles(card.Noble{ID: 3, Point: 3, Bonus: gem.Set{gem.Red: 4, gem.Green: 4}}),
	)
	out := plain().Board(b)

	assert.Contains(t, out, "[G 4pt] 7B")
	assert.Contains(t, out, "Bank: K5 W5 R5 B5 G5 *5")
	assert.Contains(t, out, "#3 3pt 4R 4G")
	assert.Contains(t, out, "L3")
	assert.Contains(t, out, "L1")
	assert.NotContains(t, out, "\x1b[", "ascii profile must not emit escapes")
}

func TestUser(t *testing.T) {
	t.Parallel()

	u := game.NewTestUser(1,
		game.WithTokens(token.Stack{gem.Red: 2, gem.Gold: 1}),
		game.WithBonus(gem.Blue, 2),
		game.WithHand(card.Card{Level: card.Level1, Color: gem.White, Cost: gem.Set{gem.Black: 1}}),
	)
	out := plain().User("alice", u)
	assert.Contains(t, out, "alice 0 VP")
	assert.Contains(t, out, "tokens (3): R2 *1")
	assert.Contains(t, out, "bonus: 2B")
	assert.Contains(t, out, "hand: [W 0pt] 1K")
}

func TestResultMarksWinner(t *testing.T) {
	t.Parallel()

	res := &game.Result{
		Reason: game.EndVictory,
		Winner: 1,
		Rounds: 24,
		Scores: []game.Score{{Seat: 0, Name: "alice", VP: 12}, {Seat: 1, Name: "bob", VP: 16}},
	}
	out := plain().Result(res)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "after 24 rounds (victory)")
	assert.NotContains(t, lines[1], "winner")
	assert.Contains(t, lines[2], "bob")
	assert.Contains(t, lines[2], "winner")
}

func TestTurn(t *testing.T) {
	t.Parallel()

	rec := game.TurnRecord{Round: 3, Player: "bob", Trials: 100, Forfeit: true}
	assert.Contains(t, plain().Turn(rec), "bob forfeits after 100 tries")

	rec = game.TurnRecord{Round: 3, Player: "bob", Outcome: game.Outcome{Move: game.TakeTwoSame(gem.Red), Message: "took two red"}}
	assert.Contains(t, plain().Turn(rec), "take2 red: took two red")
}
