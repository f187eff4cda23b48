package generator

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(normalizeSeed(seed)))
}

func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return DefaultSeed
	}
	return seed
}

// DeriveSeed mixes a parent seed and an attempt number into a new seed, for
// retry-with-new-seed loops. It applies the SplitMix64 finalizer so that
// consecutive attempts get well-separated streams.
//
// Complexity: O(1).
func DeriveSeed(parent int64, attempt uint64) int64 {
	x := uint64(parent) ^ (attempt + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
