package combin_test

import (
	"fmt"

	"github.com/katalvlaran/ecgen/combin"
)

// ExampleSubsets prints the 2-subsets of four items as 0/1 words.
func ExampleSubsets() {
	for w := range combin.Subsets(4, 2) {
		fmt.Println(w)
	}
	// Output:
	// [1 1 0 0]
	// [1 0 1 0]
	// [0 1 1 0]
	// [0 1 0 1]
	// [1 0 0 1]
	// [0 0 1 1]
}
