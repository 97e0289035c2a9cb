package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the generator from the provided seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// IntN returns a uniform int in [0, n). n <= 0 yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a uniform float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Pick draws one element of vals uniformly. vals must not be empty.
func Pick[T any](r *RNG, vals []T) T {
	return vals[r.IntN(len(vals))]
}
