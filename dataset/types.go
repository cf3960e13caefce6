package dataset

import "fmt"

// Dataset is an ordered sequence of signed integers, strictly increasing
// (no duplicates). Construction functions in this package always return a
// Dataset satisfying that invariant; searches only ever read it.
//
// The package never retains a reference to a returned Dataset: callers own
// the slice and may swap datasets between operations without aliasing hazards.
type Dataset []int

// Validate reports whether d satisfies the strict-increase invariant.
// It returns nil for empty and single-element datasets, and an error
// wrapping ErrNotSorted naming the first offending index otherwise.
//
// Complexity: O(n) time, O(1) space.
func (d Dataset) Validate() error {
	for i := 1; i < len(d); i++ {
		if d[i-1] >= d[i] {
			return fmt.Errorf("dataset: adjacent pair at index %d: %w", i, ErrNotSorted)
		}
	}

	return nil
}
