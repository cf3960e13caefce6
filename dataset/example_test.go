package dataset_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seekbench/dataset"
)

// ExampleGenerate demonstrates the boundary where the range holds exactly
// count distinct values: the output is forced regardless of the seed.
func ExampleGenerate() {
	d, err := dataset.Generate(5, 1, 5, dataset.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d)
	// Output:
	// [1 2 3 4 5]
}

// ExampleGenerate_rangeTooSmall demonstrates the fail-fast rejection of an
// infeasible request instead of a sampling loop that could never finish.
func ExampleGenerate_rangeTooSmall() {
	_, err := dataset.Generate(5, 1, 4)
	fmt.Println(errors.Is(err, dataset.ErrRangeTooSmall))
	// Output:
	// true
}

// ExampleDataset_Validate demonstrates the strict-increase invariant check.
func ExampleDataset_Validate() {
	fmt.Println(dataset.Dataset{1, 2, 3}.Validate())
	fmt.Println(errors.Is(dataset.Dataset{1, 1, 2}.Validate(), dataset.ErrNotSorted))
	// Output:
	// <nil>
	// true
}
