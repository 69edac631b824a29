package engine

import "math/rand"

// Rand is the injectable randomness source behind every engine roll
// (dodge/crit/variance, generation jitter, AI picks). Seeding it per battle
// makes the whole engine replay-deterministic.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source backed by math/rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
