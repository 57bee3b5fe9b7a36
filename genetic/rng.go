// SPDX-License-Identifier: MIT
//
// rng.go - deterministic random streams for the optimizer.
//
// Every stochastic step draws from an explicit *rand.Rand created from
// Options.Seed; nothing reads the global math/rand source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Fitness evaluation is the only
//     concurrent step and it never touches an RNG.
//   - deriveRNG splits independent streams (e.g. the constructive walk) so
//     consuming one stream never shifts another.

package genetic

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Stream identifiers for deriveRNG.
const (
	streamWalk uint64 = iota + 1
)

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes parent and stream with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent stream from base (consuming one Int63)
// and a stream id. base==nil uses defaultRNGSeed as the parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleStrings is an in-place Fisher–Yates shuffle.
func shuffleStrings(a []string, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// twoDistinct returns i < j drawn uniformly from [0, n); n must be ≥ 2.
func twoDistinct(n int, rng *rand.Rand) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}
	return i, j
}
