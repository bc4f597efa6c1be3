package ehr

import (
	"iter"
	"slices"

	"github.com/katalvlaran/ecgen/coro"
)

// counter is the iterative state of one EHR pass.
type counter struct {
	n      int
	shadow []int // shadow[1..n) tracks which slot to exchange; shadow[0] unused
	digits []int // digits[1..n] mixed-radix counter; digits[0] unused
	done   bool
}

func newCounter(n int) *counter {
	c := &counter{
		n:      n,
		shadow: make([]int, n),
		digits: make([]int, n+1),
	}
	for i := range c.shadow {
		c.shadow[i] = i
	}
	return c
}

// Resume produces the next swap index, or reports exhaustion once every
// digit has rolled over.
func (c *counter) Resume() (coro.Instr[int], bool) {
	if c.done {
		return coro.Instr[int]{}, false
	}
	k := 1
	for c.digits[k] == k {
		c.digits[k] = 0
		k++
	}
	if k == c.n {
		c.done = true
		return coro.Instr[int]{}, false
	}
	c.digits[k]++
	out := c.shadow[k]
	slices.Reverse(c.shadow[1:k])

	return coro.Emit(out), true
}

// Swaps returns the indices k to exchange with position 0, step by step.
// Replayed over the identity it visits all n! permutations exactly once.
// n < 2 yields nothing; n == 2 yields the single swap 1.
func Swaps(n int) iter.Seq[int] {
	return coro.Seq(func() coro.Frame[int] {
		if n < 2 {
			return coro.Empty[int]()
		}
		return newCounter(n)
	})
}

// Permutations yields the identity ordering of 0..n−1 and then the ordering
// after each swap from Swaps. The slice is reused between steps.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		perm := make([]int, max(n, 0))
		for i := range perm {
			perm[i] = i
		}
		if !yield(perm) {
			return
		}
		for k := range Swaps(n) {
			perm[0], perm[k] = perm[k], perm[0]
			if !yield(perm) {
				return
			}
		}
	}
}
