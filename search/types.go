package search

// Result reports the outcome of one search: either the target was found at
// Index (0 <= Index < len(arr), arr[Index] == target) or it is absent and
// Index is -1. There is no partial-match state.
type Result struct {
	// Index is the position of the target in the searched slice, -1 on a miss.
	Index int

	// Found distinguishes a hit from a miss.
	Found bool
}

// notFound is the canonical miss value shared by both algorithms.
var notFound = Result{Index: -1}

// Strategy selects one of the implemented search algorithms. It exists so a
// timing harness can be written once and pointed at either algorithm, rather
// than duplicating measurement logic per function.
type Strategy int

const (
	// JumpSearch selects the √n block-jump algorithm.
	JumpSearch Strategy = iota

	// InterpolationSearch selects value-proportional probing.
	InterpolationSearch
)

// Valid reports whether s names an implemented algorithm.
func (s Strategy) Valid() bool {
	return s == JumpSearch || s == InterpolationSearch
}

// String returns the human-readable algorithm name.
func (s Strategy) String() string {
	switch s {
	case JumpSearch:
		return "Jump Search"
	case InterpolationSearch:
		return "Interpolation Search"
	default:
		return "Unknown Strategy"
	}
}

// Search runs the selected algorithm on arr. An invalid strategy is a miss:
// searches have no error channel, harnesses validate s beforehand.
func (s Strategy) Search(arr []int, target int) Result {
	switch s {
	case JumpSearch:
		return Jump(arr, target)
	case InterpolationSearch:
		return Interpolation(arr, target)
	default:
		return notFound
	}
}
