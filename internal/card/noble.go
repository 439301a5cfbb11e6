package card

import (
	"fmt"

	"github.com/lox/splendor/gem"
)

// Noble is an objective tile. A player whose bonuses meet every threshold
// receives its points once, after which the tile leaves the pool.
type Noble struct {
	ID    int     `json:"id,omitempty"`
	Point int     `json:"point"`
	Bonus gem.Set `json:"bonus"`
}

// CanVisit reports whether bonus meets every per-color threshold.
func (n Noble) CanVisit(bonus gem.Set) bool {
	return bonus.Covers(n.Bonus)
}

// Validate checks the point value and thresholds.
func (n Noble) Validate() error {
	if n.Point < 0 {
		return fmt.Errorf("negative point value %d", n.Point)
	}
	for _, col := range gem.Gems {
		if n.Bonus[col] < 0 {
			return fmt.Errorf("negative %s threshold %d", col, n.Bonus[col])
		}
	}
	return nil
}

func (n Noble) String() string {
	return fmt.Sprintf("noble#%d %dpt [%s]", n.ID, n.Point, n.Bonus)
}
