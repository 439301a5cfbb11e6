package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
)

// MoveKind identifies one of the six move types.
type MoveKind uint8

const (
	ReserveBoard MoveKind = iota
	BuyBoard
	TakeTwo
	TakeThree
	ReservePile
	BuyHand
)

var moveKindNames = [...]string{
	ReserveBoard: "reserve",
	BuyBoard:     "buy",
	TakeTwo:      "take2",
	TakeThree:    "take3",
	ReservePile:  "reserve-pile",
	BuyHand:      "buy-hand",
}

func (k MoveKind) String() string {
	if int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "unknown"
}

// Move is a single player action. Only the fields relevant to Kind are set.
type Move struct {
	Kind   MoveKind
	Row    int
	Col    int
	Colors [3]gem.Color
	Level  card.Level
	Index  int
}

// ReserveBoardCard reserves the visible card at row, col.
func ReserveBoardCard(row, col int) Move {
	return Move{Kind: ReserveBoard, Row: row, Col: col}
}

// BuyBoardCard buys the visible card at row, col.
func BuyBoardCard(row, col int) Move {
	return Move{Kind: BuyBoard, Row: row, Col: col}
}

// TakeTwoSame takes two tokens of one color.
func TakeTwoSame(c gem.Color) Move {
	return Move{Kind: TakeTwo, Colors: [3]gem.Color{c, c, c}}
}

// TakeThreeDistinct takes one token of each of three different colors.
func TakeThreeDistinct(c1, c2, c3 gem.Color) Move {
	return Move{Kind: TakeThree, Colors: [3]gem.Color{c1, c2, c3}}
}

// ReserveFromPile reserves the top card of a level's draw pile.
func ReserveFromPile(l card.Level) Move {
	return Move{Kind: ReservePile, Level: l}
}

// BuyFromHand buys the reserved card at index.
func BuyFromHand(index int) Move {
	return Move{Kind: BuyHand, Index: index}
}

func (m Move) String() string {
	switch m.Kind {
	case ReserveBoard, BuyBoard:
		return fmt.Sprintf("%s %d %d", m.Kind, m.Row, m.Col)
	case TakeTwo:
		return fmt.Sprintf("%s %s", m.Kind, m.Colors[0])
	case TakeThree:
		return fmt.Sprintf("%s %s %s %s", m.Kind, m.Colors[0], m.Colors[1], m.Colors[2])
	case ReservePile:
		return fmt.Sprintf("%s %d", m.Kind, uint8(m.Level))
	case BuyHand:
		return fmt.Sprintf("%s %d", m.Kind, m.Index)
	default:
		return "unknown"
	}
}

// ParseMove reads the String form of a move, e.g. "buy 2 3" or
// "take3 red blue green".
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Move{}, fmt.Errorf("empty move")
	}
	args := fields[1:]

	ints := func(n int) ([]int, error) {
		if len(args) != n {
			return nil, fmt.Errorf("%s expects %d arguments, got %d", fields[0], n, len(args))
		}
		out := make([]int, n)
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("%s: bad number %q", fields[0], a)
			}
			out[i] = v
		}
		return out, nil
	}
	colors := func(n int) ([]gem.Color, error) {
		if len(args) != n {
			return nil, fmt.Errorf("%s expects %d colors, got %d", fields[0], n, len(args))
		}
		out := make([]gem.Color, n)
		for i, a := range args {
			c, err := gem.ParseColor(a)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}

	switch fields[0] {
	case "reserve", "buy":
		v, err := ints(2)
		if err != nil {
			return Move{}, err
		}
		if fields[0] == "reserve" {
			return ReserveBoardCard(v[0], v[1]), nil
		}
		return BuyBoardCard(v[0], v[1]), nil
	case "take2":
		c, err := colors(1)
		if err != nil {
			return Move{}, err
		}
		return TakeTwoSame(c[0]), nil
	case "take3":
		c, err := colors(3)
		if err != nil {
			return Move{}, err
		}
		return TakeThreeDistinct(c[0], c[1], c[2]), nil
	case "reserve-pile":
		v, err := ints(1)
		if err != nil {
			return Move{}, err
		}
		return ReserveFromPile(card.Level(v[0])), nil
	case "buy-hand":
		v, err := ints(1)
		if err != nil {
			return Move{}, err
		}
		return BuyFromHand(v[0]), nil
	}
	return Move{}, fmt.Errorf("unknown move %q", fields[0])
}

// NumCandidates is the size of the fixed candidate move table.
const NumCandidates = 45

// MaxHand is the most reserved cards the candidate table can address.
// Rules.HandLimit may not exceed it.
const MaxHand = 3

var candidates = buildCandidates()

// buildCandidates lays out the table as: 12 reserve-by-slot, 12
// buy-by-slot, 5 take-two, 10 take-three combinations, 3 reserve-by-level
// and 3 buy-from-hand.
func buildCandidates() [NumCandidates]Move {
	var out [NumCandidates]Move
	i := 0
	for row := range Rows {
		for col := range Cols {
			out[i] = ReserveBoardCard(row, col)
			i++
		}
	}
	for row := range Rows {
		for col := range Cols {
			out[i] = BuyBoardCard(row, col)
			i++
		}
	}
	for _, c := range gem.Gems {
		out[i] = TakeTwoSame(c)
		i++
	}
	for a := 0; a < gem.NumGems; a++ {
		for b := a + 1; b < gem.NumGems; b++ {
			for c := b + 1; c < gem.NumGems; c++ {
				out[i] = TakeThreeDistinct(gem.Gems[a], gem.Gems[b], gem.Gems[c])
				i++
			}
		}
	}
	for _, l := range card.Levels {
		out[i] = ReserveFromPile(l)
		i++
	}
	for idx := range MaxHand {
		out[i] = BuyFromHand(idx)
		i++
	}
	return out
}

// CandidateMoves returns the fixed 45-entry move table in index order.
func CandidateMoves() []Move {
	out := candidates
	return out[:]
}

// MoveFromIndex returns entry i of the candidate move table.
func MoveFromIndex(i int) (Move, error) {
	if i < 0 || i >= NumCandidates {
		return Move{}, fmt.Errorf("move index %d out of range [0,%d)", i, NumCandidates)
	}
	return candidates[i], nil
}
