// Package game implements turn resolution for a gem-trading card game.
//
// A Board holds the shared state: a 3x4 grid of face-up development cards
// (row 0 is level 3, row 2 is level 1), the face-down piles that refill it,
// the token bank and the noble tiles still in play. A User holds one
// player's tokens, reserved hand and purchased cards.
//
// # Basic Usage
//
//	cards, _ := card.Default()
//	nobles, _ := card.DefaultNobles()
//	b := game.NewBoard(cards, nobles, 2, game.DefaultRules(), randutil.New(42))
//	u := game.NewUser(0)
//	out, err := game.Resolve(game.TakeThreeDistinct(gem.Red, gem.Blue, gem.Green), u, b)
//
// Resolve either applies a move completely or returns an *IllegalMoveError
// and changes nothing. Purchases settle payment per color first and cover
// the remainder with gold; a player's surplus in one color never pays for
// another.
//
// # Playing Games
//
// Engine runs the turn loop over a set of Seats, asking each Agent for moves
// until one is legal or Rules.MaxTrials attempts have been rejected. After
// every accepted move the engine checks that the bank plus all player
// holdings still add up to the starting token supply.
//
// # Deterministic Testing
//
// NewBoard with a nil *rand.Rand keeps card and noble input order. The
// NewTestBoard and NewTestUser helpers build arbitrary positions directly.
package game
