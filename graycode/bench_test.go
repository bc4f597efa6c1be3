package graycode_test

import (
	"testing"

	"github.com/katalvlaran/ecgen/graycode"
)

// BenchmarkFlips16 drains the 65535 flips of the 16-bit code.
func BenchmarkFlips16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range graycode.Flips(16) {
		}
	}
}
