package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/seekbench/search"
)

// DefaultTrials is the conventional trial count for Average: enough
// repetitions to damp scheduler and clock noise on a sub-millisecond search.
const DefaultTrials = 1000

// ErrUnknownStrategy indicates the Strategy value names no implemented
// algorithm. Searches themselves have no error channel, so the harness is
// where strategy selection is validated.
// Usage: if errors.Is(err, ErrUnknownStrategy) { /* fix the selector */ }.
var ErrUnknownStrategy = errors.New("bench: unknown search strategy")

// ErrBadTrials indicates Average was asked for fewer than one trial.
// Usage: if errors.Is(err, ErrBadTrials) { /* use DefaultTrials */ }.
var ErrBadTrials = errors.New("bench: trials must be positive")

// Measure runs one search of target in arr with the selected strategy and
// returns the outcome together with the elapsed wall time (monotonic clock).
//
// Complexity: the strategy's own cost + O(1) harness overhead.
func Measure(s search.Strategy, arr []int, target int) (search.Result, time.Duration, error) {
	if !s.Valid() {
		return search.Result{Index: -1}, 0, ErrUnknownStrategy
	}

	start := time.Now()
	res := s.Search(arr, target)

	return res, time.Since(start), nil
}

// Average repeats the timed search trials times over the same (arr, target)
// pair and returns the outcome plus the mean duration. The outcome is
// identical across trials (searches are pure), so the last one is returned.
//
// Complexity: trials × the strategy's cost.
func Average(s search.Strategy, arr []int, target, trials int) (search.Result, time.Duration, error) {
	if !s.Valid() {
		return search.Result{Index: -1}, 0, ErrUnknownStrategy
	}
	if trials < 1 {
		return search.Result{Index: -1}, 0, ErrBadTrials
	}

	var (
		res   search.Result
		total time.Duration
	)
	for i := 0; i < trials; i++ {
		start := time.Now()
		res = s.Search(arr, target)
		total += time.Since(start)
	}

	return res, total / time.Duration(trials), nil
}
