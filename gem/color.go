// Package gem defines the six token colors and the fixed-size per-color
// vectors used for card costs, noble requirements and bonuses.
package gem

import (
	"fmt"
	"strings"
)

// Color is a resource tag. The five collectible colors come first so that
// their ordinal can index a Set directly; Gold is the wildcard.
type Color uint8

const (
	Black Color = iota
	White
	Red
	Blue
	Green
	Gold
)

const (
	// NumColors counts every color including the Gold wildcard.
	NumColors = 6
	// NumGems counts the collectible colors that can appear in a cost.
	NumGems = 5
)

// Gems lists the collectible colors in ordinal order.
var Gems = [NumGems]Color{Black, White, Red, Blue, Green}

// All lists every color in ordinal order, Gold last.
var All = [NumColors]Color{Black, White, Red, Blue, Green, Gold}

var colorNames = [NumColors]string{"black", "white", "red", "blue", "green", "gold"}

var colorSymbols = [NumColors]string{"K", "W", "R", "B", "G", "*"}

// String returns the lower-case color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Symbol returns a one-character abbreviation used in compact board output.
func (c Color) Symbol() string {
	if !c.Valid() {
		return "?"
	}
	return colorSymbols[c]
}

// Valid reports whether c is one of the six defined colors.
func (c Color) Valid() bool {
	return c < NumColors
}

// IsGem reports whether c is a collectible (non-wild) color.
func (c Color) IsGem() bool {
	return c < Gold
}

// ParseColor accepts a full color name or its one-letter symbol, case-insensitively.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	for _, c := range All {
		if strings.EqualFold(s, colorNames[c]) || strings.EqualFold(s, colorSymbols[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
