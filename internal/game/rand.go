package game

import "math/rand/v2"

// Rand is the randomness the refinery draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed generator; equal seeds replay equal sessions.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|5)))
}
