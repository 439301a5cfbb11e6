package gem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Set holds one count per collectible color, indexed by Color ordinal.
// The zero value is an empty set.
type Set [NumGems]int

// Get returns the count for c. Gold and invalid colors always read as zero.
func (s Set) Get(c Color) int {
	if !c.IsGem() {
		return 0
	}
	return s[c]
}

// Add increases the count for c by n. It is a no-op for Gold.
func (s *Set) Add(c Color, n int) {
	if !c.IsGem() {
		return
	}
	s[c] += n
}

// Plus returns the element-wise sum of s and o.
func (s Set) Plus(o Set) Set {
	for i := range s {
		s[i] += o[i]
	}
	return s
}

// Total returns the sum of all counts.
func (s Set) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Covers reports whether every count in s is at least the matching count in req.
func (s Set) Covers(req Set) bool {
	for i := range s {
		if s[i] < req[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every count is zero.
func (s Set) IsZero() bool {
	return s == Set{}
}

// String renders non-zero counts as "2K 1W"; an empty set renders as "-".
func (s Set) String() string {
	var parts []string
	for _, c := range Gems {
		if s[c] != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", s[c], c.Symbol()))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the set as an object of non-zero counts keyed by color name.
func (s Set) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, NumGems)
	for _, c := range Gems {
		if s[c] != 0 {
			m[c.String()] = s[c]
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by color name. Gold, unknown colors
// and negative counts are rejected.
func (s *Set) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Set
	for name, n := range m {
		c, err := ParseColor(name)
		if err != nil {
			return err
		}
		if !c.IsGem() {
			return fmt.Errorf("color %s cannot appear in a cost", c)
		}
		if n < 0 {
			return fmt.Errorf("negative count %d for %s", n, c)
		}
		out[c] = n
	}
	*s = out
	return nil
}
