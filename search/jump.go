package search

import "math"

// Jump - block-jump search.
//
// Description:
//
//	Jump scans a sorted slice coarsely in blocks of size √n: the element at
//	each block's end is compared against the target, and block boundaries
//	advance until a block that could contain the target is found or the
//	block start runs past the slice. A linear scan inside that block then
//	settles the outcome.
//
// Algorithm Outline:
//  1. n = len(arr); n == 0 → miss.
//  2. step = ⌊√n⌋, prev = 0.
//  3. While arr[min(step,n)-1] < target: prev = step, step += ⌊√n⌋;
//     prev ≥ n → miss.
//  4. Advance prev linearly while arr[prev] < target.
//  5. arr[prev] == target → Found(prev); otherwise miss.
//
// Precondition: arr is sorted strictly ascending (not re-checked).
//
// Complexity: O(√n) time, O(1) space.
func Jump(arr []int, target int) Result {
	n := len(arr)
	if n == 0 {
		return notFound
	}

	// Block size: √n, also the fixed increment between block boundaries.
	block := int(math.Sqrt(float64(n)))

	// Coarse phase: find the block whose last element is >= target.
	prev, step := 0, block
	for arr[min(step, n)-1] < target {
		prev = step
		step += block
		if prev >= n {
			return notFound
		}
	}

	// Fine phase: linear scan from the block start.
	for prev < n && arr[prev] < target {
		prev++
	}
	if prev < n && arr[prev] == target {
		return Result{Index: prev, Found: true}
	}

	return notFound
}
