package partition

import (
	"iter"

	"github.com/katalvlaran/ecgen/coro"
)

// body is the procedure builder every generator below fills.
type body = coro.Body[Move]

func mv(x, y int) Move { return Move{Element: x, Block: y} }

// Moves returns the moves that walk all partitions of n elements into k
// blocks, starting from Start(n, k). It yields nothing unless 1 < k < n.
func Moves(n, k int) iter.Seq[Move] {
	return coro.Seq(func() coro.Frame[Move] {
		if k <= 1 || k >= n {
			return coro.Empty[Move]()
		}
		if k%2 == 0 {
			return gen0Even(n, k)
		}
		return gen0Odd(n, k)
	})
}

// gen0Even lists S(n,k,0) for even k.
func gen0Even(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		if k > 2 {
			b.Call(gen0Odd(n-1, k-1))
		}
		b.Emit(mv(n-1, k-1))
		if k < n-1 {
			b.Call(gen1Even(n-1, k))
			b.Emit(mv(n, k-2))
			b.Call(neg1Even(n-1, k))
			for i := k - 3; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Call(gen1Even(n-1, k))
				b.Emit(mv(n, i-1))
				b.Call(neg1Even(n-1, k))
			}
		} else {
			b.Emit(mv(n, k-2))
			for i := k - 3; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i-1))
			}
		}
	})
}

// neg0Even lists S(n,k,0) backwards for even k.
func neg0Even(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		if k < n-1 {
			for i := 1; i < k-2; i += 2 {
				b.Call(gen1Even(n-1, k))
				b.Emit(mv(n, i))
				b.Call(neg1Even(n-1, k))
				b.Emit(mv(n, i+1))
			}
			b.Call(gen1Even(n-1, k))
			b.Emit(mv(n, k-1))
			b.Call(neg1Even(n-1, k))
		} else {
			for i := 1; i < k-2; i += 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i+1))
			}
			b.Emit(mv(n, k-1))
		}
		b.Emit(mv(n-1, 0))
		if k > 3 {
			b.Call(neg0Odd(n-1, k-1))
		}
	})
}

// gen1Even lists S(n,k,1) for even k.
func gen1Even(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		if k > 3 {
			b.Call(gen1Odd(n-1, k-1))
		}
		b.Emit(mv(k, k-1))
		if k < n-1 {
			b.Call(neg1Even(n-1, k))
			b.Emit(mv(n, k-2))
			b.Call(gen1Even(n-1, k))
			for i := k - 3; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Call(neg1Even(n-1, k))
				b.Emit(mv(n, i-1))
				b.Call(gen1Even(n-1, k))
			}
		} else {
			b.Emit(mv(n, k-2))
			for i := k - 3; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i-1))
			}
		}
	})
}

// neg1Even lists S(n,k,1) backwards for even k.
func neg1Even(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		if k < n-1 {
			for i := 1; i < k-2; i += 2 {
				b.Call(neg1Even(n-1, k))
				b.Emit(mv(n, i))
				b.Call(gen1Even(n-1, k))
				b.Emit(mv(n, i+1))
			}
			b.Call(neg1Even(n-1, k))
			b.Emit(mv(n, k-1))
			b.Call(gen1Even(n-1, k))
		} else {
			for i := 1; i < k-2; i += 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i+1))
			}
			b.Emit(mv(n, k-1))
		}
		b.Emit(mv(k, 0))
		if k > 3 {
			b.Call(neg1Odd(n-1, k-1))
		}
	})
}

// gen0Odd lists S(n,k,0) for odd k.
func gen0Odd(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		b.Call(gen1Even(n-1, k-1))
		b.Emit(mv(k, k-1))
		if k < n-1 {
			b.Call(neg1Odd(n-1, k))
			for i := k - 2; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Call(gen1Odd(n-1, k))
				b.Emit(mv(n, i-1))
				b.Call(neg1Odd(n-1, k))
			}
		} else {
			for i := k - 2; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i-1))
			}
		}
	})
}

// neg0Odd lists S(n,k,0) backwards for odd k.
func neg0Odd(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		if k < n-1 {
			for i := 1; i < k-1; i += 2 {
				b.Call(gen1Odd(n-1, k))
				b.Emit(mv(n, i))
				b.Call(neg1Odd(n-1, k))
				b.Emit(mv(n, i+1))
			}
			b.Call(gen1Odd(n-1, k))
		} else {
			for i := 1; i < k-1; i += 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i+1))
			}
		}
		b.Emit(mv(k, 0))
		b.Call(neg1Even(n-1, k-1))
	})
}

// gen1Odd lists S(n,k,1) for odd k.
func gen1Odd(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		b.Call(gen0Even(n-1, k-1))
		b.Emit(mv(n-1, k-1))
		if k < n-1 {
			b.Call(gen1Odd(n-1, k))
			for i := k - 2; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Call(neg1Odd(n-1, k))
				b.Emit(mv(n, i-1))
				b.Call(gen1Odd(n-1, k))
			}
		} else {
			for i := k - 2; i > 0; i -= 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i-1))
			}
		}
	})
}

// neg1Odd lists S(n,k,1) backwards for odd k.
func neg1Odd(n, k int) coro.Frame[Move] {
	return coro.Proc(func(b *body) {
		if k < n-1 {
			for i := 1; i < k-1; i += 2 {
				b.Call(neg1Odd(n-1, k))
				b.Emit(mv(n, i))
				b.Call(gen1Odd(n-1, k))
				b.Emit(mv(n, i+1))
			}
			b.Call(neg1Odd(n-1, k))
		} else {
			for i := 1; i < k-1; i += 2 {
				b.Emit(mv(n, i))
				b.Emit(mv(n, i+1))
			}
		}
		b.Emit(mv(n-1, 0))
		b.Call(neg0Even(n-1, k-1))
	})
}

// Start returns the canonical k-block partition of n elements:
// n−k zeros followed by 0, 1, …, k−1. k is clamped to [1, n].
func Start(n, k int) []int {
	n = max(n, 0)
	k = min(max(k, 1), n)
	rgs := make([]int, n)
	for i := 0; i < k; i++ {
		rgs[n-k+i] = i
	}
	return rgs
}

// RGS yields Start(n, k) and then the string after each move of
// Moves(n, k). The slice is reused between steps; clone it to keep it.
func RGS(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		rgs := Start(n, k)
		if !yield(rgs) {
			return
		}
		for m := range Moves(n, k) {
			rgs[m.Element-1] = m.Block
			if !yield(rgs) {
				return
			}
		}
	}
}
