// Package token tracks per-color token counts for the shared bank and for
// each player's holdings.
package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/splendor/gem"
)

// ErrCountMismatch is matched by every CountMismatchError.
var ErrCountMismatch = errors.New("token count mismatch")

// CountMismatchError reports an attempt to remove more tokens than present.
// It always indicates a bookkeeping bug in the caller.
type CountMismatchError struct {
	Color gem.Color
	Have  int
	Want  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("token count mismatch: want %d %s, have %d", e.Want, e.Color, e.Have)
}

// Is lets errors.Is match ErrCountMismatch.
func (e *CountMismatchError) Is(target error) bool {
	return target == ErrCountMismatch
}

// Stack holds one non-negative count per color, Gold included.
type Stack [gem.NumColors]int

// Filled returns a stack with perGem tokens of every collectible color and
// gold gold tokens.
func Filled(perGem, gold int) Stack {
	var s Stack
	for _, c := range gem.Gems {
		s[c] = perGem
	}
	s[gem.Gold] = gold
	return s
}

// Len returns the count for c.
func (s *Stack) Len(c gem.Color) int {
	if !c.Valid() {
		return 0
	}
	return s[c]
}

// Total returns the number of tokens across all colors.
func (s *Stack) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Add puts a single token of color c on the stack.
func (s *Stack) Add(c gem.Color) {
	s.AddMany(c, 1)
}

// AddMany puts n tokens of color c on the stack. Non-positive n is a no-op.
func (s *Stack) AddMany(c gem.Color, n int) {
	if n <= 0 || !c.Valid() {
		return
	}
	s[c] += n
}

// Remove takes a single token of color c off the stack.
func (s *Stack) Remove(c gem.Color) error {
	return s.RemoveMany(c, 1)
}

// RemoveMany takes n tokens of color c off the stack. If fewer than n are
// present nothing is removed and a *CountMismatchError is returned.
func (s *Stack) RemoveMany(c gem.Color, n int) error {
	if n <= 0 {
		return nil
	}
	have := s.Len(c)
	if have < n {
		return &CountMismatchError{Color: c, Have: have, Want: n}
	}
	s[c] -= n
	return nil
}

// Transfer moves n tokens of color c from s to dst. Either all n move or none.
func (s *Stack) Transfer(dst *Stack, c gem.Color, n int) error {
	if err := s.RemoveMany(c, n); err != nil {
		return err
	}
	dst.AddMany(c, n)
	return nil
}

// Gems returns the collectible-color counts as a gem.Set.
func (s *Stack) Gems() gem.Set {
	var out gem.Set
	for _, c := range gem.Gems {
		out[c] = s[c]
	}
	return out
}

// String renders non-zero counts in ordinal order in the same form as
// gem.Set, e.g. "2K 1R 1*". An empty stack renders as "-".
func (s Stack) String() string {
	var parts []string
	for _, c := range gem.All {
		if s[c] != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", s[c], c.Symbol()))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
