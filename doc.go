// Package seekbench is an in-memory playground for comparing sub-linear
// search strategies over sorted, duplicate-free integer datasets.
//
// 🚀 What is seekbench?
//
//	A small, deterministic benchmarking library that brings together:
//		• Dataset building: uniform random generation & text-file ingestion,
//		  both normalized to a strictly increasing unique sequence
//		• Jump Search: √n block scan + linear refinement
//		• Interpolation Search: value-proportional probing for uniform data
//		• Closest-Values: ranked near-miss context when a lookup fails
//		• Timing harness: one primitive, averaged trials, comparable numbers
//
// ✨ Why choose seekbench?
//
//   - Deterministic – every stochastic path takes an explicit seed or RNG
//   - Rock-solid guarantees – sentinel errors, no panics in algorithms
//   - Pure computation – immutable dataset snapshots, no hidden state
//
// Under the hood, everything is organized under four subpackages:
//
//	dataset/ — generation, file load/save, validation of the sorted-unique invariant
//	search/  — Jump & Interpolation searches + the Strategy selector
//	nearest/ — the ≤10 closest values to a missed target
//	bench/   — Measure (single timed call) and Average (repeated trials)
//
// Quick sketch:
//
//	d, _ := dataset.Generate(1_000_000, 1, 10_000_000, dataset.WithSeed(42))
//	res, avg, _ := bench.Average(search.InterpolationSearch, d, 4_242_424, bench.DefaultTrials)
//	if !res.Found {
//	    fmt.Println("closest:", nearest.Closest(d, 4_242_424))
//	}
//	fmt.Println("avg:", avg)
//
//	go get github.com/katalvlaran/seekbench
package seekbench
