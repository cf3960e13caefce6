package nearest_test

import (
	"fmt"

	"github.com/katalvlaran/seekbench/nearest"
)

// ExampleClosest demonstrates the ranked near-miss context for an absent
// target: 10 and 20 tie at distance 5, so the smaller value leads.
func ExampleClosest() {
	fmt.Println(nearest.Closest([]int{10, 20, 30}, 15))
	// Output:
	// [10 20 30]
}

// ExampleClosestN demonstrates a narrower window than the default ten.
func ExampleClosestN() {
	arr := []int{5, 12, 19, 26, 33, 40}

	fmt.Println(nearest.ClosestN(arr, 21, 3))
	// Output:
	// [19 26 33]
}
