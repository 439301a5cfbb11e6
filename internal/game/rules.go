package game

import "fmt"

// Rules holds the tunable constants of a game. The zero value is not
// usable; start from DefaultRules.
type Rules struct {
	VictoryPoints     int // points that end the game at the end of a round
	MaxTrials         int // attempts per turn before the turn is forfeited
	MaxRounds         int // hard stop for games that never reach VictoryPoints
	BankCapacity      int // starting bank tokens per collectible color
	GoldCapacity      int // starting bank gold tokens
	TokenLimit        int // most tokens a player may hold after taking tokens
	HandLimit         int // most reserved cards a player may hold
	DoubleTakeMinimum int // bank count required before taking two of a color
	NobleCount        int // tiles kept on the board; 0 means players + 2
}

// DefaultRules returns the canonical rule set.
func DefaultRules() Rules {
	return Rules{
		VictoryPoints:     15,
		MaxTrials:         100,
		MaxRounds:         200,
		BankCapacity:      5,
		GoldCapacity:      5,
		TokenLimit:        10,
		HandLimit:         3,
		DoubleTakeMinimum: 4,
	}
}

// NoblesFor returns how many noble tiles a game with the given number of
// players keeps.
func (r Rules) NoblesFor(players int) int {
	if r.NobleCount > 0 {
		return r.NobleCount
	}
	return players + 2
}

// Validate rejects rule sets the engine cannot play.
func (r Rules) Validate() error {
	switch {
	case r.VictoryPoints <= 0:
		return fmt.Errorf("victory points must be positive, got %d", r.VictoryPoints)
	case r.MaxTrials <= 0:
		return fmt.Errorf("max trials must be positive, got %d", r.MaxTrials)
	case r.MaxRounds <= 0:
		return fmt.Errorf("max rounds must be positive, got %d", r.MaxRounds)
	case r.BankCapacity < 0 || r.GoldCapacity < 0:
		return fmt.Errorf("bank capacities must not be negative")
	case r.TokenLimit < 3:
		return fmt.Errorf("token limit must be at least 3, got %d", r.TokenLimit)
	case r.HandLimit <= 0 || r.HandLimit > MaxHand:
		return fmt.Errorf("hand limit must be between 1 and %d, got %d", MaxHand, r.HandLimit)
	case r.DoubleTakeMinimum < 2:
		return fmt.Errorf("double take minimum must be at least 2, got %d", r.DoubleTakeMinimum)
	case r.NobleCount < 0:
		return fmt.Errorf("noble count must not be negative, got %d", r.NobleCount)
	}
	return nil
}
