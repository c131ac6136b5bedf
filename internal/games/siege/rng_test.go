package siege

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterminism(t *testing.T) {
	a, b := NewRNG(12345), NewRNG(12345)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRNGZeroSeed(t *testing.T) {
	assert.Equal(t, NewRNG(1).Next(), NewRNG(0).Next(), "seed 0 must behave like seed 1")
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := r.Intn(6)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 6)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestRNGIntnCoversRange(t *testing.T) {
	r := NewRNG(99)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[r.Intn(4)] = true
	}
	assert.Len(t, seen, 4)
}
