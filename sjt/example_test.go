package sjt_test

import (
	"fmt"

	"github.com/katalvlaran/ecgen/sjt"
)

// ExampleCyclic walks all orderings of "abc" by adjacent swaps and comes
// back to the start.
func ExampleCyclic() {
	word := []byte("abc")
	for i := range sjt.Cyclic(3) {
		word[i], word[i+1] = word[i+1], word[i]
		fmt.Print(string(word), " ")
	}
	fmt.Println()
	// Output:
	// acb cab cba bca bac abc
}
