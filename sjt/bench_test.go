package sjt_test

import (
	"testing"

	"github.com/katalvlaran/ecgen/sjt"
)

// BenchmarkCyclic9 drains the 9! adjacent swaps of the closed loop.
func BenchmarkCyclic9(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range sjt.Cyclic(9) {
		}
	}
}
