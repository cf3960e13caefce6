// Package search implements two sub-linear lookup strategies over a sorted,
// duplicate-free integer slice: Jump Search and Interpolation Search.
//
// What:
//
//   - Jump probes block boundaries √n apart, then scans linearly inside the
//     located block.
//   - Interpolation estimates the target's position from the value spread of
//     the current bounds; excellent on near-uniform data, degrades toward
//     linear probing on skewed distributions.
//   - Strategy is a tagged selector over the two algorithms so harnesses can
//     time either one through a single call site.
//
// Contract:
//
//   - Precondition: the input slice is sorted strictly ascending. The caller
//     upholds it (see package dataset); searches never re-check or re-sort.
//   - Searches never fail and never panic: the only outcomes are
//     Result{Index, Found:true} with arr[Index] == target, or a miss
//     (Index == -1). Empty input is an immediate miss.
//   - Inputs are read-only; no search retains or mutates the slice.
//
// Complexity:
//
//   - Jump:          O(√n) probes worst case, O(1) memory.
//   - Interpolation: O(log log n) probes on uniform data, O(n) worst case,
//     O(1) memory.
package search
