package combin

import (
	"iter"

	"github.com/katalvlaran/ecgen/coro"
)

type body = coro.Body[Swap]

func sw(x, y int) Swap { return Swap{X: x, Y: y} }

// Swaps returns the revolving-door swaps over all k-subsets of n items,
// starting from Start(n, k).
func Swaps(n, k int) iter.Seq[Swap] {
	return coro.Seq(func() coro.Frame[Swap] {
		switch {
		case k <= 0 || k >= n:
			return coro.Empty[Swap]()
		case k == 1:
			return run(0, n-1, 1)
		case k%2 == 0:
			return genEven(n, k)
		default:
			return genOdd(n, k)
		}
	})
}

// run emits sw(i, i+dir) for i stepping from `from` towards `to`, `to`
// excluded, one at a time instead of listing them in a body.
func run(from, to, dir int) coro.Frame[Swap] {
	i := from
	return coro.FrameFunc[Swap](func() (coro.Instr[Swap], bool) {
		if (dir > 0 && i >= to) || (dir < 0 && i <= to) {
			return coro.Instr[Swap]{}, false
		}
		s := sw(i, i+dir)
		i += dir
		return coro.Emit(s), true
	})
}

func genEven(n, k int) coro.Frame[Swap] {
	return coro.Proc(func(b *body) {
		if k >= n-1 {
			b.Emit(sw(n-2, n-1))
		} else {
			b.Call(genEven(n-1, k))
			b.Emit(sw(n-2, n-1))
			if k == 2 {
				b.Call(run(n-3, 0, -1))
			} else {
				b.Call(negOdd(n-2, k-1))
			}
		}
		b.Emit(sw(k-2, n-2))
		if k != 2 {
			b.Call(genEven(n-2, k-2))
		}
	})
}

func genOdd(n, k int) coro.Frame[Swap] {
	return coro.Proc(func(b *body) {
		if k < n-1 {
			b.Call(genOdd(n-1, k))
			b.Emit(sw(n-2, n-1))
			b.Call(negEven(n-2, k-1))
		} else {
			b.Emit(sw(n-2, n-1))
		}
		b.Emit(sw(k-2, n-2))
		if k == 3 {
			b.Call(run(0, n-3, 1))
		} else {
			b.Call(genOdd(n-2, k-2))
		}
	})
}

// negEven is genEven in reverse.
func negEven(n, k int) coro.Frame[Swap] {
	return coro.Proc(func(b *body) {
		if k != 2 {
			b.Call(negEven(n-2, k-2))
		}
		b.Emit(sw(n-2, k-2))
		if k < n-1 {
			if k != 2 {
				b.Call(genOdd(n-2, k-1))
			} else {
				b.Call(run(0, n-3, 1))
			}
			b.Emit(sw(n-1, n-2))
			b.Call(negEven(n-1, k))
		} else {
			b.Emit(sw(n-1, n-2))
		}
	})
}

// negOdd is genOdd in reverse.
func negOdd(n, k int) coro.Frame[Swap] {
	return coro.Proc(func(b *body) {
		if k == 3 {
			b.Call(run(n-3, 0, -1))
		} else {
			b.Call(negOdd(n-2, k-2))
		}
		b.Emit(sw(n-2, k-2))
		if k >= n-1 {
			b.Emit(sw(n-1, n-2))
		} else {
			b.Call(genEven(n-2, k-1))
			b.Emit(sw(n-1, n-2))
			b.Call(negOdd(n-1, k))
		}
	})
}

// Start returns the first subset: k ones followed by n−k zeros, with k
// clamped to [0, n].
func Start(n, k int) []int {
	n = max(n, 0)
	k = min(max(k, 0), n)
	word := make([]int, n)
	for i := 0; i < k; i++ {
		word[i] = 1
	}
	return word
}

// Subsets yields Start(n, k) and then the word after each swap of
// Swaps(n, k). The slice is reused between steps; clone it to keep it.
func Subsets(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		word := Start(n, k)
		if !yield(word) {
			return
		}
		for s := range Swaps(n, k) {
			word[s.X], word[s.Y] = word[s.Y], word[s.X]
			if !yield(word) {
				return
			}
		}
	}
}
