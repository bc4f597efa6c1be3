package sjt

import (
	"iter"

	"github.com/katalvlaran/ecgen/coro"
)

// phase is the position of a sweep inside its step loop.
type phase int

const (
	phasePull phase = iota // cyclic: take the next inner swap before descending
	phaseDown              // largest item moving left
	phaseUp                // largest item moving right
	phaseDone
)

// sweep moves the largest of n items through all positions while the
// inner iterator supplies the plain-changes steps for the other n−1.
type sweep struct {
	n      int
	cyclic bool
	inner  *coro.Iterator[int]
	phase  phase
	pos    int
	held   int // inner swap taken in phasePull, emitted shifted after the descent
}

func newSweep(n int, cyclic bool, inner *coro.Iterator[int]) *sweep {
	s := &sweep{n: n, cyclic: cyclic, inner: inner, phase: phaseDown, pos: n - 2}
	if cyclic {
		s.phase = phasePull
	}
	return s
}

// Resume emits the next adjacent swap.
func (s *sweep) Resume() (coro.Instr[int], bool) {
	for {
		switch s.phase {
		case phasePull:
			x, ok := s.inner.Next()
			if !ok {
				s.phase = phaseDone
				continue
			}
			s.held = x
			s.pos = s.n - 2
			s.phase = phaseDown

		case phaseDown:
			if s.pos >= 0 {
				p := s.pos
				s.pos--
				return coro.Emit(p), true
			}
			x := s.held
			if !s.cyclic {
				var ok bool
				if x, ok = s.inner.Next(); !ok {
					s.phase = phaseDone
					continue
				}
			}
			// the inner swap lands one slot right: the largest item sits at 0
			s.pos = 0
			s.phase = phaseUp
			return coro.Emit(x + 1), true

		case phaseUp:
			if s.pos <= s.n-2 {
				p := s.pos
				s.pos++
				return coro.Emit(p), true
			}
			y, ok := s.inner.Next()
			if !ok {
				s.phase = phaseDone
				continue
			}
			if s.cyclic {
				s.phase = phasePull
			} else {
				s.pos = s.n - 2
				s.phase = phaseDown
			}
			return coro.Emit(y), true

		default:
			return coro.Instr[int]{}, false
		}
	}
}

// cyclic builds the closed-loop generator for n items.
func cyclic(n int) coro.Frame[int] {
	switch {
	case n < 2:
		return coro.Empty[int]()
	case n == 2:
		// swap down and back: the loop of two permutations
		return coro.Proc(func(b *coro.Body[int]) {
			b.Emit(0)
			b.Emit(0)
		})
	default:
		return newSweep(n, true, coro.New(cyclic(n-1)))
	}
}

// plain builds the open plain-changes generator for n items.
func plain(n int) coro.Frame[int] {
	if n < 1 {
		return coro.Empty[int]()
	}
	return newSweep(n, false, coro.New(plain(n-1)))
}

// Cyclic returns n! adjacent-swap positions visiting every permutation of
// n items and ending back on the starting one. Cyclic(2) is [0, 0].
func Cyclic(n int) iter.Seq[int] {
	return coro.Seq(func() coro.Frame[int] { return cyclic(n) })
}

// PlainChanges returns n!−1 adjacent-swap positions visiting every
// permutation of n items exactly once.
func PlainChanges(n int) iter.Seq[int] {
	return coro.Seq(func() coro.Frame[int] { return plain(n) })
}

// Swaps dispatches to Cyclic or PlainChanges according to mode.
// Unknown modes behave like ModePlain.
func Swaps(n int, mode Mode) iter.Seq[int] {
	if mode == ModeCyclic {
		return Cyclic(n)
	}
	return PlainChanges(n)
}

// Permutations yields the identity ordering of 0..n−1 followed by the
// ordering after every swap of Swaps(n, mode). In ModeCyclic the final
// ordering repeats the first. The slice is reused between steps.
func Permutations(n int, mode Mode) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		perm := make([]int, max(n, 0))
		for i := range perm {
			perm[i] = i
		}
		if !yield(perm) {
			return
		}
		for i := range Swaps(n, mode) {
			perm[i], perm[i+1] = perm[i+1], perm[i]
			if !yield(perm) {
				return
			}
		}
	}
}
