// Package nearest produces the ranked near-miss context shown after a failed
// lookup: the dataset values closest to the absent target.
//
// What:
//
//   - Closest returns up to MaxNeighbors (10) values drawn from a sorted,
//     duplicate-free slice, ordered by ascending absolute distance to the
//     target, ties broken by ascending value.
//   - ClosestN is the same with a caller-chosen window size.
//
// How:
//
//	The insertion point of the target is located by binary search, then a
//	window of consecutive indices around it — biased to cover up to half the
//	window before the insertion point and the rest at or after it — is slid
//	inward wherever it would run off an end. The window's values are ranked
//	by distance-then-value and returned.
//
// Contract:
//
//   - Precondition: input sorted strictly ascending (see package dataset).
//   - Pure read: the input slice is never retained or mutated.
//   - Empty input yields an empty result; there is no error channel.
//
// Complexity: O(log n) to locate + O(k·log k) to rank a window of k values.
package nearest
