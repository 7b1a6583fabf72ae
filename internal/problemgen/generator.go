package problemgen

import (
	"math/rand/v2"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

// Generator produces practice problems for one topic.
type Generator interface {
	// Generate builds a problem scaled to level. All randomness comes
	// from rng so that a seeded source reproduces the same problem.
	Generate(rng *rand.Rand, level difficulty.Level) Problem
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(rng *rand.Rand, level difficulty.Level) Problem

func (f GeneratorFunc) Generate(rng *rand.Rand, level difficulty.Level) Problem {
	return f(rng, level)
}

// NewRand returns a random source seeded with seed. A zero seed draws a
// fresh seed from the runtime.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// intIn returns a uniform integer in [lo, hi]. When hi < lo it returns lo.
func intIn(rng *rand.Rand, lo, hi int) int {
	return difficulty.Range{Min: lo, Max: hi}.Sample(rng)
}

// pick returns a uniformly chosen element of items.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// coin returns true or false with equal probability.
func coin(rng *rand.Rand) bool {
	return rng.IntN(2) == 0
}
