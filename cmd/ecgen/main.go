// Command ecgen prints minimal-change sequences of combinatorial objects.
//
//	ecgen gray 3
//	ecgen sjt 4 --plain --states
//	ecgen partition 5 2 --format yaml
//	ecgen count stirling 10 4
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ecgen:", err)
		os.Exit(1)
	}
}
