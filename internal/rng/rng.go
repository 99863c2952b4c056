// Package rng provides the seeded random source lent to games each frame.
package rng

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is a PCG random source. It is seeded once and never reseeds itself.
type Source struct {
	r *rand.Rand
}

// New creates a source seeded with seed.
func New(seed uint64) *Source {
	pcg := &rand.PCGSource{}
	pcg.Seed(seed)
	return &Source{r: rand.New(pcg)}
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Entropy returns a seed taken from the wall clock. Hosts call it once at
// startup when no explicit seed is configured.
func Entropy() uint64 {
	return uint64(time.Now().UnixNano())
}

// Seed returns seed unless it is zero, in which case it returns Entropy().
func Seed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return Entropy()
}
