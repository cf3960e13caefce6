// Package dataset - RNG draw helper shared by generation.
//
// Goals:
//   - Determinism: same RNG state ⇒ identical draws across platforms.
//   - Correctness on extreme bounds: the span of [min,max] may not fit a
//     signed 64-bit value, so width arithmetic is done in uint64.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; derive one per worker if parallel generation is ever needed.
package dataset

import (
	"math"
	"math/rand"
)

// drawInt returns one integer sampled uniformly from [min,max].
// Precondition: min <= max (checked by Generate before the first draw).
//
// Complexity: O(1) expected; the rejection branch accepts with
// probability > 1/2 per iteration.
func drawInt(rng *rand.Rand, min, max int) int {
	// Two's-complement subtraction in uint64 yields the exact unsigned
	// distance between the bounds for any min <= max.
	span := uint64(max) - uint64(min) + 1

	switch {
	case span == 0:
		// [min,max] covers the entire int range; every word is in bounds.
		return int(rng.Uint64())
	case span <= math.MaxInt64:
		return min + int(rng.Int63n(int64(span)))
	default:
		// span exceeds Int63n's reach; rejection-sample the full word.
		for {
			if v := int(rng.Uint64()); v >= min && v <= max {
				return v
			}
		}
	}
}

// distinctValues returns the number of distinct integers in [min,max] as a
// uint64, with 0 standing for "the full int range" (2^64 values on 64-bit
// platforms, which no count can exceed).
// Precondition: min <= max.
func distinctValues(min, max int) uint64 {
	return uint64(max) - uint64(min) + 1
}
