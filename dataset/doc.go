// Package dataset builds the sorted, duplicate-free integer sequences that
// the search and timing packages consume.
//
// What:
//
//   - Generate draws N distinct integers uniformly from [min,max] and returns
//     them in ascending order; uniqueness is enforced during sampling by an
//     ordered set accumulator, never by post-hoc cleanup.
//   - LoadFile ingests a text file (one integer per line), skipping malformed
//     lines with per-line warnings, then sorts and collapses duplicates so the
//     strict-increase invariant holds regardless of file content.
//   - SaveFile writes a dataset back in the same one-integer-per-line format.
//   - Dataset.Validate checks the strict-increase invariant explicitly.
//
// Why:
//
//   - Both search algorithms require sortedness as a precondition they do not
//     re-check; centralizing construction keeps that contract in one place.
//   - Benchmark runs need reproducible inputs: every stochastic path takes an
//     explicit seed or RNG (WithSeed / WithRand), no package-level state.
//
// Complexity:
//
//   - Generate:  expected O(count · log count) insertions, O(count) memory.
//   - LoadFile:  O(L + P·log P) for L lines and P parsed values, O(P) memory.
//   - SaveFile:  O(n) time, O(1) extra memory.
//   - Validate:  O(n) time, O(1) memory.
//
// Errors:
//
//   - ErrBadCount: negative element count requested.
//   - ErrBadRange: min exceeds max.
//   - ErrRangeTooSmall: [min,max] holds fewer distinct values than requested;
//     rejected up front instead of sampling forever.
//   - ErrNoData: a file opened fine but no line parsed as an integer.
//   - ErrNotSorted: Validate found a non-increasing adjacent pair.
package dataset
