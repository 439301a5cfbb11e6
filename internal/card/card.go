// Package card holds development cards, noble tiles, the three
// level-partitioned draw piles, and the JSON-lines loaders for both.
package card

import (
	"fmt"

	"github.com/lox/splendor/gem"
)

// Level is a development card tier, 1 through 3.
type Level uint8

const (
	Level1 Level = iota + 1
	Level2
	Level3
)

// Levels lists every level in ascending order.
var Levels = [3]Level{Level1, Level2, Level3}

// Valid reports whether l is 1, 2 or 3.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level3
}

// String returns "L1", "L2" or "L3".
func (l Level) String() string {
	return fmt.Sprintf("L%d", uint8(l))
}

// Card is a development card. It is a plain value: moving it between a pile,
// the board, a hand and a player's acquired cards copies it.
type Card struct {
	Level Level     `json:"level"`
	Color gem.Color `json:"color"`
	Point int       `json:"point"`
	Cost  gem.Set   `json:"cost"`
}

// Validate checks the card's level, bonus color, points and cost.
func (c Card) Validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("invalid level %d", c.Level)
	}
	if !c.Color.IsGem() {
		return fmt.Errorf("invalid card color %s", c.Color)
	}
	if c.Point < 0 {
		return fmt.Errorf("negative point value %d", c.Point)
	}
	for _, col := range gem.Gems {
		if c.Cost[col] < 0 {
			return fmt.Errorf("negative %s cost %d", col, c.Cost[col])
		}
	}
	return nil
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s %dpt [%s]", c.Level, c.Color, c.Point, c.Cost)
}
