package nearest

import "sort"

// MaxNeighbors is the window size used by Closest: at most this many values
// accompany a miss report.
const MaxNeighbors = 10

// Closest returns up to MaxNeighbors values from arr ranked by ascending
// absolute distance to target, ties by ascending value. Invoked after a
// confirmed miss; arr must be sorted strictly ascending.
func Closest(arr []int, target int) []int {
	return ClosestN(arr, target, MaxNeighbors)
}

// ClosestN is Closest with an explicit window size n. It returns nil when
// n < 1 or arr is empty.
//
// The window is chosen around the insertion point of target (first index
// whose value is >= target): up to n/2 elements before it, the remainder at
// or after it, slid inward when the dataset ends would truncate it. Because
// arr holds no duplicates the window values are already distinct; ranking
// never invents values absent from arr.
//
// Complexity: O(log len(arr)) + O(n·log n); O(n) space for the result.
func ClosestN(arr []int, target, n int) []int {
	if n < 1 || len(arr) == 0 {
		return nil
	}
	if n > len(arr) {
		n = len(arr)
	}

	// Insertion point: first index with arr[i] >= target.
	pos := sort.SearchInts(arr, target)

	// Window of n consecutive indices biased n/2-before the insertion point,
	// clamped so it never runs off either end.
	lo := pos - n/2
	if maxLo := len(arr) - n; lo > maxLo {
		lo = maxLo
	}
	if lo < 0 {
		lo = 0
	}

	out := make([]int, n)
	copy(out, arr[lo:lo+n])

	// Rank by absolute distance to the target, ties by value ascending.
	sort.Slice(out, func(i, j int) bool {
		di, dj := absDist(out[i], target), absDist(out[j], target)
		if di == dj {
			return out[i] < out[j]
		}

		return di < dj
	})

	return out
}

// absDist returns |a-b| as a uint64; the unsigned subtraction is exact for
// any int pair, including spans wider than the signed range.
func absDist(a, b int) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}
