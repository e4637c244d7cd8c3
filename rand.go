package main

import (
	"math/rand/v2"
)

// RandSource is what the game needs from a random number generator. Anything
// that produces numbers in [min, max] works, which lets tests decide exactly
// which pieces come out of the factory.
type RandSource interface {
	RInt(min, max int) int
}

// Rand is a deterministic random number generator. The same seed always gives
// the same sequence, which is what makes playthroughs replayable.
// The generator's state is held by value, so a copy of a Rand continues
// independently from the same point as the original.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) Rand {
	var r Rand
	r.pcg.Seed(uint64(seed), 0x9e3779b97f4a7c15)
	return r
}

// RInt returns a uniformly distributed number in [min, max].
func (r *Rand) RInt(min, max int) int {
	Assert(min <= max)
	if max <= min {
		return min
	}
	n := uint64(max-min) + 1
	// Reject the values at the top of the range that would make the modulo
	// biased.
	limit := -n % n
	for {
		v := r.pcg.Uint64()
		if v >= limit {
			return min + int(v%n)
		}
	}
}
