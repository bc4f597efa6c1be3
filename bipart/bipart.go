package bipart

import (
	"iter"

	"github.com/katalvlaran/ecgen/coro"
)

// down lists S(n,2) forwards from the canonical start.
func down(n int) coro.Frame[int] {
	return coro.Proc(func(b *coro.Body[int]) {
		if n < 3 {
			return
		}
		b.Emit(n - 1)
		b.Call(up(n - 1))
		b.Emit(n)
		b.Call(negUp(n - 1))
	})
}

func up(n int) coro.Frame[int] {
	return coro.Proc(func(b *coro.Body[int]) {
		if n < 3 {
			return
		}
		b.Emit(2)
		b.Call(negUp(n - 1))
		b.Emit(n)
		b.Call(up(n - 1))
	})
}

// negUp is up in reverse.
func negUp(n int) coro.Frame[int] {
	return coro.Proc(func(b *coro.Body[int]) {
		if n < 3 {
			return
		}
		b.Call(negUp(n - 1))
		b.Emit(n)
		b.Call(up(n - 1))
		b.Emit(2)
	})
}

// Moves returns the elements (1-based) to switch blocks, one per step.
// n < 3 yields nothing: one or two elements admit a single bipartition.
func Moves(n int) iter.Seq[int] {
	return coro.Seq(func() coro.Frame[int] { return down(n) })
}

// Start returns the canonical bipartition of n elements: everything in
// block 0 except element n. For n < 2 no two-block partition exists and
// the single-block string is returned.
func Start(n int) []int {
	rgs := make([]int, max(n, 0))
	if n >= 2 {
		rgs[n-1] = 1
	}
	return rgs
}

// RGS yields Start(n) and then the string after each move of Moves(n).
// The slice is reused between steps; clone it to keep it.
func RGS(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		rgs := Start(n)
		if !yield(rgs) {
			return
		}
		for x := range Moves(n) {
			rgs[x-1] ^= 1
			if !yield(rgs) {
				return
			}
		}
	}
}
