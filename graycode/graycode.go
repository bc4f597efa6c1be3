package graycode

import (
	"iter"

	"github.com/katalvlaran/ecgen/coro"
)

// Flips returns the bit indices to flip, in order, so that starting from
// the all-zero string of length n every one of the 2ⁿ strings is visited
// exactly once. The sequence has 2ⁿ−1 elements; n < 1 yields nothing.
//
// Example (n=4):
//
//	0 1 0 2 0 1 0 3 0 1 0 2 0 1 0
func Flips(n int) iter.Seq[int] {
	return coro.Seq(func() coro.Frame[int] {
		if n < 1 {
			return coro.Empty[int]()
		}
		return reflected(n)
	})
}

// reflected is the doubling step: code(n−1), flip n−1, code(n−1).
func reflected(n int) coro.Frame[int] {
	return coro.Proc(func(b *coro.Body[int]) {
		if n == 1 {
			b.Emit(0)
			return
		}
		b.Call(reflected(n - 1))
		b.Emit(n - 1)
		b.Call(reflected(n - 1))
	})
}

// Strings yields the binary strings of length n in Gray code order as 0/1
// vectors, beginning with all zeros. The vector is owned by the sequence
// and rewritten in place on the next step; clone it to keep it.
func Strings(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		bits := make([]int, max(n, 0))
		if !yield(bits) {
			return
		}
		for i := range Flips(n) {
			bits[i] ^= 1 // flip
			if !yield(bits) {
				return
			}
		}
	}
}
