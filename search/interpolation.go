package search

// Interpolation - value-proportional probing.
//
// Description:
//
//	Interpolation search estimates where the target should sit between the
//	current bounds by linear interpolation over the bound values, instead of
//	always bisecting like binary search. On near-uniform data each probe
//	cuts the remaining range dramatically; on skewed data it degrades
//	toward a linear scan but stays correct.
//
// Algorithm Outline:
//  1. low = 0, high = n-1.
//  2. Loop while low <= high and arr[low] <= target <= arr[high]:
//     a. low == high → resolve directly.
//     b. pos = low + ((high-low)/(arr[high]-arr[low]))·(target-arr[low]),
//     with the value deltas computed in uint64 so the arithmetic is exact
//     even when the dataset spans more than half the int range. The
//     divisor is non-zero inside the loop: once low != high, strict
//     increase gives arr[high] > arr[low].
//     c. pos outside [low,high] → definitive miss (no clamp-and-retry; a
//     mis-estimated probe means the interpolation assumption broke down
//     for this region).
//     d. Compare arr[pos]: equal → Found(pos); less → low = pos+1;
//     greater → high = pos-1.
//  3. Loop exit without a match → miss.
//
// Precondition: arr is sorted strictly ascending (not re-checked).
//
// Complexity: O(log log n) probes on uniform data, O(n) worst case; O(1) space.
func Interpolation(arr []int, target int) Result {
	low, high := 0, len(arr)-1

	for low <= high && target >= arr[low] && target <= arr[high] {
		if low == high {
			if arr[low] == target {
				return Result{Index: low, Found: true}
			}

			return notFound
		}

		// Unsigned subtraction is exact for any int pair, including value
		// spans wider than the signed range; signed deltas would overflow
		// here and send a valid probe through the miss branch below.
		span := uint64(arr[high]) - uint64(arr[low])
		delta := uint64(target) - uint64(arr[low])
		offset := uint64(high-low) / span * delta
		if offset > uint64(high-low) {
			return notFound
		}
		pos := low + int(offset)

		switch {
		case arr[pos] == target:
			return Result{Index: pos, Found: true}
		case arr[pos] < target:
			low = pos + 1
		default:
			high = pos - 1
		}
	}

	return notFound
}
