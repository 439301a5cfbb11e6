package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(99), New(99)
	for range 10 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Derive(5, 3), Derive(5, 3))
	seen := map[int64]bool{}
	for i := range 100 {
		seen[Derive(5, i)] = true
	}
	assert.Len(t, seen, 100)
	assert.NotEqual(t, Derive(5, 0), Derive(6, 0))
}

func TestSeedOrNow(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(12), SeedOrNow(12))
	assert.NotZero(t, SeedOrNow(0))
}
