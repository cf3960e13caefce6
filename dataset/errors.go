package dataset

import "errors"

// Error policy (matches the rest of the module):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping at the call site.
//   - Construction functions return errors; they never panic. Validation
//     panics are confined to option constructors (WithRand).

// ErrBadCount indicates a negative element count was requested.
// Usage: if errors.Is(err, ErrBadCount) { /* reject the request */ }.
var ErrBadCount = errors.New("dataset: negative element count")

// ErrBadRange indicates min > max, an empty value range.
// Usage: if errors.Is(err, ErrBadRange) { /* swap or fix bounds */ }.
var ErrBadRange = errors.New("dataset: min exceeds max")

// ErrRangeTooSmall indicates [min,max] contains fewer distinct integers than
// the requested count. Sampling without replacement could never terminate, so
// the combination is rejected before any draw is made.
// Usage: if errors.Is(err, ErrRangeTooSmall) { /* widen range or shrink count */ }.
var ErrRangeTooSmall = errors.New("dataset: range cannot supply requested unique count")

// ErrNoData indicates a file was opened and read but zero lines parsed as
// integers; an empty dataset is not a valid load result.
// Usage: if errors.Is(err, ErrNoData) { /* keep the previous dataset */ }.
var ErrNoData = errors.New("dataset: no valid integers in file")

// ErrNotSorted indicates Validate found an adjacent pair that is not
// strictly increasing.
var ErrNotSorted = errors.New("dataset: sequence is not strictly increasing")
