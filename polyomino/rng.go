package polyomino

import (
	"math/rand"
	"time"
)

// rngFromSeed returns the *rand.Rand a run samples with.
// Policy: seed==0 ⇒ seeded from the clock, so repeated requests differ;
// otherwise the seed is used verbatim and results are reproducible.
//
// math/rand.Rand is NOT goroutine-safe; each run owns its own.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed,
// so parallel runs started from one seed get independent streams.
// A zero parent stays zero (clock-seeded streams).
func DeriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		return 0
	}
	// SplitMix64 finalizer.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 1
	}
	return int64(x)
}
