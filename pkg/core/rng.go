package core

import "math/rand/v2"

// RNG wraps a math/rand/v2 PCG source. A process creates one at startup and
// hands it to every simulation that needs randomness; simulations never seed
// a generator on their own.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports whether a uniform trial in [0, outOf) falls below n.
func (r *RNG) Chance(n, outOf int) bool {
	return r.IntN(outOf) < n
}
