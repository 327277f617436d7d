package gatsp

import (
	"math/rand"
	"time"
)

// NewRNG returns the generator handed to every component that draws random
// numbers. seed == 0 seeds from the clock, so runs are not reproducible;
// any other value gives deterministic replay.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleInts performs an in-place Fisher-Yates shuffle.
func shuffleInts(a []int, rng *rand.Rand) {
	rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}

// identity returns 0..n-1 in order.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
