package dataset

import "github.com/google/btree"

// btreeDegree is the branching factor of the uniqueness accumulator.
// 32 keeps nodes cache-friendly for the million-element datasets the
// benchmark driver generates by default.
const btreeDegree = 32

// Generate - uniform sampling without replacement.
//
// Description:
//
//	Generate produces count distinct integers sampled uniformly from
//	[min,max] and returns them sorted ascending. Uniqueness is enforced
//	during sampling: draws land in an ordered set accumulator that rejects
//	repeats on insertion, so duplicates may be drawn but never survive.
//	The same accumulator yields the ascending order directly - no separate
//	sort pass over the result.
//
// Determinism:
//
//	Same (count, min, max) and the same WithSeed/WithRand option produce
//	an identical dataset. Without an RNG option a clock-seeded generator
//	is created for this call alone (see newConfig).
//
// Complexity:
//
//	Expected O(count · log count) insertions when the range is comfortably
//	larger than count; the coupon-collector slowdown as count approaches
//	the range size is bounded because infeasible inputs are rejected.
//	Memory: O(count).
//
// Errors:
//   - ErrBadCount      — count < 0.
//   - ErrBadRange      — min > max.
//   - ErrRangeTooSmall — fewer than count distinct values in [min,max];
//     rejected up front, the sampling loop could otherwise never terminate.
func Generate(count, min, max int, opts ...Option) (Dataset, error) {
	if count < 0 {
		return nil, ErrBadCount
	}
	if min > max {
		return nil, ErrBadRange
	}
	if distinct := distinctValues(min, max); distinct != 0 && uint64(count) > distinct {
		return nil, ErrRangeTooSmall
	}
	if count == 0 {
		return Dataset{}, nil
	}

	cfg := newConfig(opts...)

	// Ordered set accumulator: ReplaceOrInsert is a no-op growth-wise on a
	// repeat, so Len() only advances on fresh values.
	seen := btree.NewOrderedG[int](btreeDegree)
	for seen.Len() < count {
		seen.ReplaceOrInsert(drawInt(cfg.rng, min, max))
	}

	// In-order traversal emits the sorted unique sequence directly.
	out := make(Dataset, 0, count)
	seen.Ascend(func(v int) bool {
		out = append(out, v)

		return true
	})

	return out, nil
}
