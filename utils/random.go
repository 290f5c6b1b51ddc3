package utils

import (
	"math/rand"
	"time"
)

// NewRandomSource returns a generator seeded from the wall clock.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// CoinFlip returns +1 or -1 with equal probability.
func CoinFlip(r *rand.Rand) float64 {
	if r.Intn(2) == 0 {
		return 1
	}
	return -1
}
