// Package bench is the timing harness: it wraps one search invocation with a
// high-resolution clock read and composes repeated trials into a stable
// average, so Jump and Interpolation numbers are directly comparable.
//
// What:
//
//   - Measure times a single search call and returns outcome + elapsed time.
//   - Average repeats the timed call over the same inputs and returns the
//     mean duration; DefaultTrials (1000) damps the noise of timing one
//     sub-millisecond operation.
//
// Why one primitive:
//
//	Measure times exactly one call; Average is a composition of that
//	primitive, not a separate internal loop. The harness therefore works
//	unchanged for any Strategy and never duplicates timing logic per
//	algorithm.
//
// Errors:
//
//   - ErrUnknownStrategy: the Strategy value names no implemented algorithm.
//   - ErrBadTrials: Average called with trials < 1.
package bench
